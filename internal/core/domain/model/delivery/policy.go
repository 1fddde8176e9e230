package delivery

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// TransitionPolicy selects how strictly a DeliveryUnit enforces its
// lifecycle ordering.
//
// The engine this one replaces applied every requested transition without
// checking the current status: a unit could be marked Delivered straight
// from Pending, or Shipped twice. Permissive reproduces that behavior and
// is the default; Strict rejects any transition for which
// Status.CanTransitionTo returns false.
type TransitionPolicy int

const (
	// Permissive applies any requested transition regardless of the
	// current status. Matches the original engine's behavior.
	Permissive TransitionPolicy = iota

	// Strict rejects transitions that skip or reverse the lifecycle
	// ordering with an InvalidStateTransitionError.
	Strict
)

// Validate checks if the TransitionPolicy value is valid.
func (p TransitionPolicy) Validate() error {
	if p != Permissive && p != Strict {
		return errs.NewValueIsInvalidErrorWithCause("transition policy is invalid",
			fmt.Errorf("%d is not a valid transition policy", p))
	}
	return nil
}

// String returns the human-readable name of the policy.
func (p TransitionPolicy) String() string {
	switch p {
	case Permissive:
		return "Permissive"
	case Strict:
		return "Strict"
	default:
		return "Unknown"
	}
}
