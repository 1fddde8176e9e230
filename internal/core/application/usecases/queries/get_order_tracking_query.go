package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
		"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
	)
)

// GetOrderTrackingQuery retrieves the consolidated tracking view of one order:
// the order header, every per-brand delivery with its invoice and timeline,
// and the derived overall status.
//
// Example:
//
//	query, err := NewGetOrderTrackingQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderTrackingQueryHandler(db)
//
//	tracking, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get tracking: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", tracking.OrderID, tracking.Status)
type GetOrderTrackingQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTrackingQuery creates a tracking query for the given order.
func NewGetOrderTrackingQuery(orderID kernel.UUID) (GetOrderTrackingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTrackingQuery{}, err
	}

	return GetOrderTrackingQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order being tracked.
func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderTrackingQueryIsNotConstructed if validation fails.
func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// GetOrderTrackingQueryResponse is the consolidated tracking view of an order.
//
// Status is derived from the delivery statuses at read time, and
// EstimatedDeliveryAt is the latest estimate over the non-cancelled
// deliveries, so the view stays correct even if the stored order row lags
// behind.
type GetOrderTrackingQueryResponse struct {
	OrderID             kernel.UUID
	Status              string
	Currency            string
	Total               int64
	PlacedAt            time.Time
	EstimatedDeliveryAt *time.Time
	Deliveries          []DeliveryTrackingResponse
}

// DeliveryTrackingResponse is the tracking view of one per-brand delivery.
type DeliveryTrackingResponse struct {
	DeliveryID          kernel.UUID
	BrandID             kernel.UUID
	BrandName           string
	Status              string
	Description         string
	TrackingNumber      string
	ShippingFee         int64
	EstimatedDeliveryAt *time.Time
	ShippedAt           *time.Time
	DeliveredAt         *time.Time
	InvoiceNumber       string
	InvoiceAmount       int64
	Items               []TrackedItemResponse
	Timeline            []TimelineStepResponse
}

// TrackedItemResponse is one line item within a tracked delivery.
type TrackedItemResponse struct {
	ItemID      kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   int64
}

// TimelineStepResponse is one milestone of a delivery's tracking timeline.
type TimelineStepResponse struct {
	Status      string
	Label       string
	Description string
	CompletedAt *time.Time
	IsCompleted bool
	IsCurrent   bool
}
