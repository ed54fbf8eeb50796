// Package showcase drives the delivery domain through a fixed scenario and
// applies the reject-and-warn policy to operations that can be refused.
//
// The package includes:
//   - Clerk: wraps rejectable mutations, logs a warning on refusal and carries on
//   - Showcase: builds sample customers, deliveries and orders and narrates
//     every operation to an output stream
//
// Only a collection boundary error stops the scenario; every other refusal
// becomes a warning line on the same stream.
package showcase
