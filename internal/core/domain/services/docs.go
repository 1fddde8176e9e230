// Package services provides domain services that orchestrate business
// operations across multiple aggregates of the fulfillment system. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DeliveryEstimator: Pure delivery-time estimation from origin, destination
//     and the chosen shipping method
//   - BrandDeliverySplitter: Atomic splitting of an order into per-brand
//     delivery units
//   - InvoiceGenerator: Per-unit billing record generation
//   - DeriveOrderStatus: Folding unit statuses into the coarse order status
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
