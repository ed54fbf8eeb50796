// Package delivery provides the ways an order can reach its customer.
//
// The package includes:
//   - Delivery: the sealed interface every variant implements
//   - HomeDelivery: a courier brings the order to an address
//   - PickPointDelivery: the customer collects the order at a pickup point with a code
//   - ShopDelivery: the order is handed over in a Shop
//   - Shop: a plain name/location value referenced by ShopDelivery
//
// Key business rules:
//   - Every delivery has a non-empty address
//   - A rejected address change keeps the previous address
//   - The variant set is closed; only this package can implement Delivery
package delivery
