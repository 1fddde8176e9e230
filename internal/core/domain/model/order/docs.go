// Package order provides the domain model of a marketplace purchase: the
// Order aggregate root, its line items, and the coarse order status.
//
// The package includes:
//   - Order: The aggregate root recording buyer, destination, items, and total
//   - Item: A purchased line with quantity, unit price snapshot, and its
//     delivery-unit assignment
//   - Status: The coarse order lifecycle value, derived from delivery units
//
// Key business rules:
//   - Orders must contain at least one item
//   - The total equals the sum of item subtotals, fixed at creation time
//   - Once assigned, an item belongs to exactly one delivery unit
//   - Order status carries no transition logic of its own; it always follows
//     the delivery units
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
