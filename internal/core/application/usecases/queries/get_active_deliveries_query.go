package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
		"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
	)
)

// GetActiveDeliveriesQuery retrieves every delivery unit that has not reached
// a terminal status. Provides operational visibility into the in-flight
// shipment workload.
//
// Example:
//
//	query := NewGetActiveDeliveriesQuery()
//	handler := NewGetActiveDeliveriesQueryHandler(db)
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active deliveries: %w", err)
//	}
//	fmt.Printf("%d deliveries in flight\n", len(active))
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a query for in-flight deliveries.
// This is a parameterless query that fetches all non-terminal units.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveDeliveriesQueryIsNotConstructed if validation fails.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// GetActiveDeliveriesQueryResponse represents one in-flight delivery unit.
type GetActiveDeliveriesQueryResponse struct {
	DeliveryID          kernel.UUID
	OrderID             kernel.UUID
	BrandID             kernel.UUID
	BrandName           string
	Status              string
	TrackingNumber      string
	ShippingFee         int64
	EstimatedDeliveryAt *time.Time
	UpdatedAt           time.Time
}
