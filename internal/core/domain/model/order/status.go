package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the coarse lifecycle state of an order as a whole.
//
// Unlike the per-brand delivery lifecycle, Status defines no transitions of
// its own: it is always derived from the statuses of the order's delivery
// units (see the derivation in the services package) and merely stored here
// for cheap listing queries.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: no delivery unit has progressed yet.
	Pending

	// Processing indicates at least one delivery unit is being prepared
	// but the order is not fully shipped.
	Processing

	// Shipped indicates every active delivery unit has left its vendor.
	Shipped

	// Delivered indicates every active delivery unit reached the customer.
	Delivered

	// Cancelled indicates every delivery unit of the order was cancelled.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
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
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
