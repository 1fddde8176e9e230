package services

import (
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/order"
)

// DeriveOrderStatus folds the statuses of an order's delivery units into the
// coarse order status shown to the customer.
//
// Rules, in precedence order:
//   - No units at all: the order is still Pending
//   - Every unit cancelled: the order is Cancelled
//   - Otherwise cancelled units are ignored and the remaining units decide:
//     all Delivered -> Delivered; all at least Shipped -> Shipped; any unit
//     past Pending -> Processing; else Pending
func DeriveOrderStatus(statuses []delivery.Status) order.Status {
	if len(statuses) == 0 {
		return order.Pending
	}

	active := make([]delivery.Status, 0, len(statuses))
	for _, s := range statuses {
		if s != delivery.Cancelled {
			active = append(active, s)
		}
	}
	if len(active) == 0 {
		return order.Cancelled
	}

	allDelivered := true
	allShipped := true
	anyStarted := false
	for _, s := range active {
		if s != delivery.Delivered {
			allDelivered = false
		}
		if !atLeastShipped(s) {
			allShipped = false
		}
		if s != delivery.Pending {
			anyStarted = true
		}
	}

	switch {
	case allDelivered:
		return order.Delivered
	case allShipped:
		return order.Shipped
	case anyStarted:
		return order.Processing
	default:
		return order.Pending
	}
}

func atLeastShipped(s delivery.Status) bool {
	return s == delivery.Shipped || s == delivery.InTransit ||
		s == delivery.OutForDelivery || s == delivery.Delivered
}
