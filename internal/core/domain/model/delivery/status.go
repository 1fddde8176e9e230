package delivery

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a per-brand delivery unit.
//
// The happy path is strictly ordered:
//
//	Pending -> Preparing -> Shipped -> InTransit -> OutForDelivery -> Delivered
//
// with Cancelled reachable from any non-terminal state. Delivered and
// Cancelled are terminal.
//
// Whether out-of-order transitions are rejected depends on the unit's
// TransitionPolicy: the permissive policy applies any requested transition
// (matching the behavior this engine replaces), the strict policy consults
// CanTransitionTo.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned when the order is split.
	Pending

	// Preparing indicates the vendor is assembling the parcel.
	Preparing

	// Shipped indicates the parcel left the vendor with a tracking number.
	Shipped

	// InTransit indicates the parcel is moving through the carrier network.
	InTransit

	// OutForDelivery indicates the parcel is on the last leg to the customer.
	OutForDelivery

	// Delivered indicates the parcel reached the customer. Terminal.
	Delivered

	// Cancelled indicates the delivery was called off. Terminal, reachable
	// from any non-terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Preparing:      "Preparing",
		Shipped:        "Shipped",
		InTransit:      "InTransit",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		Preparing:      "Preparing",
		Shipped:        "Shipped",
		InTransit:      "InTransit",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions can leave this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Next returns the following status on the happy path and true, or the zero
// status and false when the status is terminal or invalid. Used by the
// progression scheduler to decide which transition a unit is due for.
func (s Status) Next() (Status, bool) {
	switch s {
	case Pending:
		return Preparing, true
	case Preparing:
		return Shipped, true
	case Shipped:
		return InTransit, true
	case InTransit:
		return OutForDelivery, true
	case OutForDelivery:
		return Delivered, true
	default:
		return Unknown, false
	}
}

// CanTransitionTo reports whether moving to target respects the lifecycle
// ordering. Allowed moves are the single next step on the happy path, or
// Cancelled from any non-terminal state. This is the rule the strict
// transition policy enforces.
func (s Status) CanTransitionTo(target Status) bool {
	if target == Cancelled {
		return !s.IsTerminal()
	}

	next, ok := s.Next()
	return ok && next == target
}
