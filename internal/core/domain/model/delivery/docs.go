// Package delivery provides the domain model of a per-brand shipment: the
// DeliveryUnit aggregate, its lifecycle state machine, and the derived
// customer-facing tracking timeline.
//
// The package includes:
//   - DeliveryUnit: The aggregate root for one brand's shipment within an order
//   - Status: The shipment lifecycle with a strictly ordered happy path
//   - TransitionPolicy: Permissive (original behavior) or Strict transition checking
//   - TimelineSteps: Pure derivation of the tracking timeline from recorded state
//
// Key business rules:
//   - Units are created only when an order is split, one per brand
//   - Units are mutated only through lifecycle transitions and never deleted
//   - Marking a unit shipped requires a non-blank tracking number
//   - The version field supports optimistic concurrency between the
//     progression scheduler and manual operator transitions
package delivery
