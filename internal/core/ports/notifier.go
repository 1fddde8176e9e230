package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
)

// Notifier sends shipment progress notifications to the customer.
//
// Notifications are best effort: callers log failures and move on, they never
// roll back the transition that triggered them.
type Notifier interface {
	// SendShippedEmail notifies the customer that a unit left the warehouse,
	// including its tracking number.
	SendShippedEmail(ctx context.Context, userID string, unit *delivery.DeliveryUnit) error

	// SendInTransitEmail notifies the customer that a unit is moving through
	// the carrier network.
	SendInTransitEmail(ctx context.Context, userID string, unit *delivery.DeliveryUnit) error

	// SendOutForDeliveryEmail notifies the customer that a unit is on the
	// last leg.
	SendOutForDeliveryEmail(ctx context.Context, userID string, unit *delivery.DeliveryUnit) error

	// SendDeliveredEmail notifies the customer that a unit arrived.
	SendDeliveredEmail(ctx context.Context, userID string, unit *delivery.DeliveryUnit) error
}
