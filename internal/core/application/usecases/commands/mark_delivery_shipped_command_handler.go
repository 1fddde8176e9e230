package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/ports"
)

// MarkDeliveryShippedCommandHandler handles the manual operator path for
// shipping a delivery unit. Records the tracking number, bumps the unit
// through the version-guarded update, re-derives the order status, and sends
// the shipped notification after the transaction commits.
type MarkDeliveryShippedCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewMarkDeliveryShippedCommandHandler creates a handler for shipping operations.
func NewMarkDeliveryShippedCommandHandler(
	uowFactory DeliveryOrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) MarkDeliveryShippedCommandHandler {
	return MarkDeliveryShippedCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "MarkDeliveryShippedCommandHandler"),
	}
}

// Handle processes the shipping command.
// The unit transition and the derived order status are persisted atomically.
// A concurrent update of the same unit surfaces as a version conflict error.
// The notification is best effort: a send failure is logged, never returned.
func (h *MarkDeliveryShippedCommandHandler) Handle(ctx context.Context, cmd MarkDeliveryShippedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	unit, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = unit.MarkShipped(time.Now().UTC(), cmd.TrackingNumber()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, unit); err != nil {
		return err
	}

	ord, err := syncOrderStatus(ctx, uow, unit.OrderID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.SendShippedEmail(ctx, ord.UserID().String(), unit); err != nil {
		h.logger.Error("shipped notification failed",
			"deliveryId", unit.ID().String(),
			"error", err)
	}

	return nil
}
