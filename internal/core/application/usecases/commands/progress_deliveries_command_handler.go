package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
)

// ProgressDeliveriesCommandHandler runs one progression pass over all active
// delivery units: the scheduler tick.
//
// Each pass scans the active units fresh from storage, never from a cache.
// Every due unit advances in its own transaction so one poisoned unit cannot
// hold back the rest of the batch; failures are logged per unit and the pass
// carries on. The context is checked between units so shutdown does not wait
// for the whole batch.
type ProgressDeliveriesCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
	notifier   ports.Notifier
	schedule   DwellSchedule
	logger     *slog.Logger
}

// NewProgressDeliveriesCommandHandler creates a handler for progression passes.
func NewProgressDeliveriesCommandHandler(
	uowFactory DeliveryOrderUoWFactory,
	notifier ports.Notifier,
	schedule DwellSchedule,
	logger *slog.Logger,
) ProgressDeliveriesCommandHandler {
	return ProgressDeliveriesCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		schedule:   schedule,
		logger:     logger.With("component", "ProgressDeliveriesCommandHandler"),
	}
}

// Handle processes one progression pass.
// Returns an error only when the pass itself cannot run (scan failure or
// cancelled context); individual unit failures are logged and skipped.
func (h *ProgressDeliveriesCommandHandler) Handle(ctx context.Context, cmd ProgressDeliveriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	units, err := h.scanActive(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, unit := range units {
		if err = ctx.Err(); err != nil {
			return err
		}

		if !h.schedule.IsDue(unit.Status(), unit.UpdatedAt(), now) {
			continue
		}

		if err = h.progressUnit(ctx, unit, now); err != nil {
			h.logger.Error("failed to progress delivery unit",
				"deliveryId", unit.ID().String(),
				"status", unit.Status().String(),
				"error", err)
		}
	}

	return nil
}

// scanActive reads the current set of non-terminal units in a short-lived
// read transaction.
func (h *ProgressDeliveriesCommandHandler) scanActive(ctx context.Context) ([]*delivery.DeliveryUnit, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	units, err := uow.DeliveryRepository().GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return units, nil
}

// progressUnit advances one unit a single step in its own transaction and
// sends the matching notification after commit. A version conflict here means
// an operator touched the unit since the scan; the unit is picked up again on
// the next pass.
func (h *ProgressDeliveriesCommandHandler) progressUnit(
	ctx context.Context,
	unit *delivery.DeliveryUnit,
	now time.Time,
) error {
	if err := h.advance(unit, now); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.DeliveryRepository().Update(ctx, unit); err != nil {
		return err
	}

	ord, err := syncOrderStatus(ctx, uow, unit.OrderID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notify(ctx, ord.UserID().String(), unit)
	return nil
}

// advance moves the unit one step along the happy path. Units shipped by the
// scheduler get a generated tracking number since no carrier supplied one.
func (h *ProgressDeliveriesCommandHandler) advance(unit *delivery.DeliveryUnit, now time.Time) error {
	next, ok := unit.Status().Next()
	if !ok {
		return fmt.Errorf("delivery unit %s has no next status after %s", unit.ID(), unit.Status())
	}

	switch next {
	case delivery.Preparing:
		return unit.MarkPreparing(now)
	case delivery.Shipped:
		return unit.MarkShipped(now, generateTrackingNumber())
	case delivery.InTransit:
		return unit.MarkInTransit(now)
	case delivery.OutForDelivery:
		return unit.MarkOutForDelivery(now)
	case delivery.Delivered:
		return unit.MarkDelivered(now)
	default:
		return fmt.Errorf("unexpected next status %s", next)
	}
}

// notify sends the stage notification best effort; failures are logged and
// never abort the batch.
func (h *ProgressDeliveriesCommandHandler) notify(ctx context.Context, userID string, unit *delivery.DeliveryUnit) {
	var err error
	switch unit.Status() {
	case delivery.Shipped:
		err = h.notifier.SendShippedEmail(ctx, userID, unit)
	case delivery.InTransit:
		err = h.notifier.SendInTransitEmail(ctx, userID, unit)
	case delivery.OutForDelivery:
		err = h.notifier.SendOutForDeliveryEmail(ctx, userID, unit)
	case delivery.Delivered:
		err = h.notifier.SendDeliveredEmail(ctx, userID, unit)
	default:
		return
	}

	if err != nil {
		h.logger.Error("delivery notification failed",
			"deliveryId", unit.ID().String(),
			"status", unit.Status().String(),
			"error", err)
	}
}

func generateTrackingNumber() string {
	return "TRK-" + uuid.NewString()[:8]
}
