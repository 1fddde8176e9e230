package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/pkg/guard"
)

var ErrProgressDeliveriesCommandIsNotConstructed = errors.New(
	"ProgressDeliveriesCommand must be created via NewProgressDeliveriesCommand constructor",
)

// Default dwell times: how long a unit sits in a stage before the
// progression tick advances it.
const (
	DefaultPendingDwell        = 12 * time.Hour
	DefaultPreparingDwell      = 24 * time.Hour
	DefaultShippedDwell        = 48 * time.Hour
	DefaultInTransitDwell      = 24 * time.Hour
	DefaultOutForDeliveryDwell = 12 * time.Hour
)

// DwellSchedule maps each non-terminal stage to the time a unit must spend
// there before it is due for automatic progression.
type DwellSchedule map[delivery.Status]time.Duration

// DefaultDwellSchedule returns the built-in dwell times.
func DefaultDwellSchedule() DwellSchedule {
	return DwellSchedule{
		delivery.Pending:        DefaultPendingDwell,
		delivery.Preparing:      DefaultPreparingDwell,
		delivery.Shipped:        DefaultShippedDwell,
		delivery.InTransit:      DefaultInTransitDwell,
		delivery.OutForDelivery: DefaultOutForDeliveryDwell,
	}
}

// IsDue reports whether a unit that entered the given stage at enteredAt has
// dwelled long enough by now. Stages without a configured dwell never become
// due automatically.
func (s DwellSchedule) IsDue(status delivery.Status, enteredAt, now time.Time) bool {
	dwell, ok := s[status]
	if !ok {
		return false
	}
	return now.Sub(enteredAt) >= dwell
}

// ProgressDeliveriesCommand triggers one progression pass over all active
// delivery units. Units that dwelled long enough in their stage advance one
// step along the happy path.
//
// Example:
//
//	cmd := NewProgressDeliveriesCommand()
//	handler := NewProgressDeliveriesCommandHandler(uowFactory, notifier, schedule, logger)
//
//	// Run periodically to simulate carrier progress
//	ticker := time.NewTicker(time.Minute)
//	for range ticker.C {
//	    if err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("Progression pass failed: %v", err)
//	    }
//	}
type ProgressDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewProgressDeliveriesCommand creates a command to trigger one progression pass.
// This is a parameterless command that processes all active delivery units.
func NewProgressDeliveriesCommand() ProgressDeliveriesCommand {
	command := ProgressDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrProgressDeliveriesCommandIsNotConstructed if validation fails.
func (c *ProgressDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrProgressDeliveriesCommandIsNotConstructed)
}
