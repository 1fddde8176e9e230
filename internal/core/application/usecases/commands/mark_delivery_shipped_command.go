package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkDeliveryShippedCommandIsNotConstructed = errors.New(
	"MarkDeliveryShippedCommand must be created via NewMarkDeliveryShippedCommand constructor",
)

// MarkDeliveryShippedCommand represents an operator's request to mark a
// delivery unit as shipped with the carrier's tracking number.
type MarkDeliveryShippedCommand struct { //nolint:recvcheck //using for validation
	deliveryID     kernel.UUID
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewMarkDeliveryShippedCommand creates a command to ship a delivery unit.
// The tracking number must not be blank.
func NewMarkDeliveryShippedCommand(deliveryID kernel.UUID, trackingNumber string) (MarkDeliveryShippedCommand, error) {
	command := MarkDeliveryShippedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setTrackingNumber(trackingNumber),
	); err != nil {
		return MarkDeliveryShippedCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveryShippedCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveryShippedCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the unit to ship.
func (c MarkDeliveryShippedCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// TrackingNumber returns the carrier tracking number.
func (c MarkDeliveryShippedCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *MarkDeliveryShippedCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *MarkDeliveryShippedCommand) setTrackingNumber(trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	c.trackingNumber = trackingNumber
	return nil
}
