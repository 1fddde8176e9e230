package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/pkg/errs"
)

// CancelDeliveryCommandHandler handles cancellation of a delivery unit.
// Cancelling never deletes the unit: it moves to the terminal Cancelled
// status and stays visible in tracking. The order's coarse status is
// re-derived in the same transaction.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
}

// NewCancelDeliveryCommandHandler creates a handler for cancellation operations.
func NewCancelDeliveryCommandHandler(uowFactory DeliveryOrderUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Cancelling a terminal unit fails with an invalid transition error under
// either transition policy.
func (h *CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
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

	// The permissive policy would let MarkCancelled succeed from Delivered;
	// cancellation is an operator action, so terminal units are off limits
	// regardless of policy.
	if unit.Status().IsTerminal() {
		return errs.NewInvalidStateTransitionError(
			unit.Status().String(), delivery.Cancelled.String())
	}

	if err = unit.MarkCancelled(time.Now().UTC()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, unit); err != nil {
		return err
	}

	if _, err = syncOrderStatus(ctx, uow, unit.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
