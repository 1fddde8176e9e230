package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler retrieves in-flight delivery units from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active delivery queries.
// Requires a GORM database connection for query execution.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal delivery units.
// Results are sorted by last update so the longest-dwelling units come first.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			d.brand_id,
			b.name,
			d.status,
			d.tracking_number,
			d.shipping_fee,
			d.estimated_delivery_at,
			d.updated_at
		FROM deliveries d
		LEFT JOIN brands b ON b.id = d.brand_id
		WHERE d.status NOT IN (?, ?)
		ORDER BY d.updated_at
	`, int(delivery.Delivered), int(delivery.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveDeliveriesQueryResponse
		var id, orderID, brandID uuid.UUID
		var brandName sql.NullString
		var status int
		var estimatedAt sql.NullTime

		err = rows.Scan(&id, &orderID, &brandID, &brandName, &status,
			&resp.TrackingNumber, &resp.ShippingFee, &estimatedAt, &resp.UpdatedAt)
		if err != nil {
			return nil, err
		}

		resp.DeliveryID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.OrderID, err = kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return nil, err
		}
		resp.BrandID, err = kernel.UUIDFromBytes(brandID[:])
		if err != nil {
			return nil, err
		}

		resp.BrandName = brandName.String
		resp.Status = delivery.Status(status).String()
		resp.EstimatedDeliveryAt = timePtr(estimatedAt)
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
