// Package notify implements the customer notification port. The current
// transport is the application log: every email the engine would send is
// recorded as a structured entry, which keeps the progression flow complete
// until a mail provider is wired in.
package notify

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/delivery"
)

// LogNotifier writes shipment notifications to a structured logger.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// SendShippedEmail records a shipped notification with the tracking number.
func (n *LogNotifier) SendShippedEmail(ctx context.Context, userID string, unit *delivery.DeliveryUnit) error {
	n.log(ctx, "shipped", userID, unit,
		slog.String("tracking_number", unit.TrackingNumber()))
	return nil
}

// SendInTransitEmail records an in-transit notification.
func (n *LogNotifier) SendInTransitEmail(ctx context.Context, userID string, unit *delivery.DeliveryUnit) error {
	n.log(ctx, "in_transit", userID, unit)
	return nil
}

// SendOutForDeliveryEmail records an out-for-delivery notification.
func (n *LogNotifier) SendOutForDeliveryEmail(ctx context.Context, userID string, unit *delivery.DeliveryUnit) error {
	n.log(ctx, "out_for_delivery", userID, unit)
	return nil
}

// SendDeliveredEmail records a delivered notification.
func (n *LogNotifier) SendDeliveredEmail(ctx context.Context, userID string, unit *delivery.DeliveryUnit) error {
	n.log(ctx, "delivered", userID, unit)
	return nil
}

func (n *LogNotifier) log(ctx context.Context, event, userID string, unit *delivery.DeliveryUnit, extra ...any) {
	attrs := []any{
		slog.String("event", event),
		slog.String("user_id", userID),
		slog.String("delivery_id", unit.ID().String()),
		slog.String("order_id", unit.OrderID().String()),
		slog.String("status", unit.Status().String()),
	}
	attrs = append(attrs, extra...)
	n.logger.InfoContext(ctx, "delivery notification", attrs...)
}
