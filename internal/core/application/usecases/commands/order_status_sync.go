package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// syncOrderStatus re-derives the order's coarse status from all of its
// delivery units and persists it when it changed. Must run inside the same
// transaction as the unit update it follows, so the derived status always
// reflects the committed unit states.
func syncOrderStatus(ctx context.Context, uow DeliveryOrderUoW, orderID kernel.UUID) (*order.Order, error) {
	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	units, err := uow.DeliveryRepository().GetByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	statuses := make([]delivery.Status, 0, len(units))
	for _, unit := range units {
		statuses = append(statuses, unit.Status())
	}

	derived := services.DeriveOrderStatus(statuses)
	if derived == ord.Status() {
		return ord, nil
	}

	if err = ord.ChangeStatus(derived); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}

	return ord, nil
}
