// Package kernel provides the shared value objects of the delivery domain.
//
// The package includes:
//   - UUID: an immutable surrogate identifier with validation and comparison
package kernel
