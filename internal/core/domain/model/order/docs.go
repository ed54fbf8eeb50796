// Package order provides the Order entity and the ordered collection that holds orders.
//
// The package includes:
//   - Order: binds a customer-facing number, a delivery, a description and a customer
//   - ChangeDescription and IsSameOrder: operations over orders kept outside the type
//   - Collection: an append-only, indexable list of orders
//
// Key business rules:
//   - Order numbers are positive; a rejected update leaves the number unchanged
//   - An order owns its delivery but only references its customer
//   - Two orders are "the same" when their numbers match, regardless of content
//   - Collection indexes must be within [0, Count()); anything else is a boundary error
package order
