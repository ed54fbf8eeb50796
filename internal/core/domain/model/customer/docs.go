// Package customer models the person an order belongs to.
//
// Key business rules:
//   - An email is accepted only if it contains "@"
//   - A rejected email leaves the previously accepted one in place
//   - Customers are identified by email alone; the name is not part of identity
//
// A single Customer is usually shared by several orders, so it is always
// handled by pointer.
package customer
