package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler assembles the consolidated tracking view of an
// order from the orders, deliveries, order_items, invoices and brands tables.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// The per-delivery timelines are derived through the domain model so that the
// read side and the write side can never disagree about what a status means.
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackingQueryHandler creates a handler for order tracking queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

// Handle executes the query and assembles the tracking view.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	resp, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	deliveries, statuses, err := h.loadDeliveries(ctx, query.OrderID(), items)
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	resp.Deliveries = deliveries

	// The overall status and the order-level estimate follow the deliveries,
	// not the stored order row.
	resp.Status = services.DeriveOrderStatus(statuses).String()
	for _, d := range deliveries {
		if d.Status == delivery.Cancelled.String() || d.EstimatedDeliveryAt == nil {
			continue
		}
		if resp.EstimatedDeliveryAt == nil || d.EstimatedDeliveryAt.After(*resp.EstimatedDeliveryAt) {
			eta := *d.EstimatedDeliveryAt
			resp.EstimatedDeliveryAt = &eta
		}
	}

	return resp, nil
}

// loadOrder reads the order header row.
func (h GetOrderTrackingQueryHandler) loadOrder(
	ctx context.Context, orderID kernel.UUID,
) (GetOrderTrackingQueryResponse, error) {
	var resp GetOrderTrackingQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			currency,
			total,
			placed_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var id uuid.UUID
	err := row.Scan(&id, &resp.Currency, &resp.Total, &resp.PlacedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return resp, errs.NewObjectNotFoundError("order", orderID.String())
	}
	if err != nil {
		return resp, err
	}

	resp.OrderID, err = kernel.UUIDFromBytes(id[:])
	return resp, err
}

// loadItems reads the order's line items keyed by the delivery they were
// assigned to.
func (h GetOrderTrackingQueryHandler) loadItems(
	ctx context.Context, orderID kernel.UUID,
) (map[uuid.UUID][]TrackedItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_name,
			quantity,
			unit_price,
			delivery_id
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[uuid.UUID][]TrackedItemResponse)
	for rows.Next() {
		var id uuid.UUID
		var deliveryID uuid.NullUUID
		var item TrackedItemResponse

		if err = rows.Scan(&id, &item.ProductName, &item.Quantity, &item.UnitPrice, &deliveryID); err != nil {
			return nil, err
		}

		item.ItemID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		if !deliveryID.Valid {
			// Unassigned items cannot appear in the per-delivery view.
			continue
		}
		items[deliveryID.UUID] = append(items[deliveryID.UUID], item)
	}

	return items, rows.Err()
}

// loadDeliveries reads the order's delivery units joined with their brand
// names and invoices, and derives each unit's timeline.
func (h GetOrderTrackingQueryHandler) loadDeliveries(
	ctx context.Context,
	orderID kernel.UUID,
	items map[uuid.UUID][]TrackedItemResponse,
) ([]DeliveryTrackingResponse, []delivery.Status, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.brand_id,
			b.name,
			d.shipping_method_id,
			d.shipping_fee,
			d.description,
			d.tracking_number,
			d.status,
			d.created_at,
			d.updated_at,
			d.shipped_at,
			d.delivered_at,
			d.estimated_delivery_at,
			d.version,
			i.number,
			i.amount
		FROM deliveries d
		LEFT JOIN brands b ON b.id = d.brand_id
		LEFT JOIN invoices i ON i.order_id = d.order_id AND i.brand_id = d.brand_id
		WHERE d.order_id = ?
		ORDER BY d.created_at
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	deliveries := make([]DeliveryTrackingResponse, 0)
	statuses := make([]delivery.Status, 0)

	for rows.Next() {
		var (
			id, brandID            uuid.UUID
			brandName, number      sql.NullString
			amount                 sql.NullInt64
			methodID               uuid.NullUUID
			fee                    int64
			description, tracking  string
			status, version        int
			createdAt, updatedAt   sql.NullTime
			shippedAt, deliveredAt sql.NullTime
			estimatedAt            sql.NullTime
		)

		err = rows.Scan(&id, &brandID, &brandName, &methodID, &fee,
			&description, &tracking, &status, &createdAt, &updatedAt,
			&shippedAt, &deliveredAt, &estimatedAt, &version, &number, &amount)
		if err != nil {
			return nil, nil, err
		}

		unit, unitErr := restoreUnit(
			id, orderID, brandID, methodID, fee, description, tracking,
			status, version, createdAt, updatedAt, shippedAt, deliveredAt,
			estimatedAt, items[id])
		if unitErr != nil {
			return nil, nil, unitErr
		}

		deliveries = append(deliveries, DeliveryTrackingResponse{
			DeliveryID:          unit.ID(),
			BrandID:             unit.BrandID(),
			BrandName:           brandName.String,
			Status:              unit.Status().String(),
			Description:         unit.Description(),
			TrackingNumber:      unit.TrackingNumber(),
			ShippingFee:         unit.ShippingFee(),
			EstimatedDeliveryAt: unit.EstimatedDeliveryAt(),
			ShippedAt:           unit.ShippedAt(),
			DeliveredAt:         unit.DeliveredAt(),
			InvoiceNumber:       number.String,
			InvoiceAmount:       amount.Int64,
			Items:               items[id],
			Timeline:            timelineOf(unit),
		})
		statuses = append(statuses, unit.Status())
	}

	return deliveries, statuses, rows.Err()
}

// restoreUnit rebuilds the delivery unit domain object from the scanned
// columns so the timeline derivation runs through the domain model.
func restoreUnit(
	id uuid.UUID,
	orderID kernel.UUID,
	brandID uuid.UUID,
	methodID uuid.NullUUID,
	fee int64,
	description, tracking string,
	status, version int,
	createdAt, updatedAt, shippedAt, deliveredAt, estimatedAt sql.NullTime,
	items []TrackedItemResponse,
) (*delivery.DeliveryUnit, error) {
	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	brand, err := kernel.UUIDFromBytes(brandID[:])
	if err != nil {
		return nil, err
	}

	var method *kernel.UUID
	if methodID.Valid {
		m, methodErr := kernel.UUIDFromBytes(methodID.UUID[:])
		if methodErr != nil {
			return nil, methodErr
		}
		method = &m
	}

	itemIDs := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ItemID)
	}

	return delivery.RestoreDeliveryUnit(
		deliveryID, orderID, brand, method, fee, itemIDs, description,
		tracking, delivery.Status(status), createdAt.Time, updatedAt.Time,
		timePtr(shippedAt), timePtr(deliveredAt), timePtr(estimatedAt),
		version, delivery.Permissive)
}

// timelineOf converts the domain timeline into response steps.
func timelineOf(unit *delivery.DeliveryUnit) []TimelineStepResponse {
	steps := delivery.TimelineSteps(unit)
	timeline := make([]TimelineStepResponse, 0, len(steps))
	for _, step := range steps {
		timeline = append(timeline, TimelineStepResponse{
			Status:      step.Status.String(),
			Label:       step.Label,
			Description: step.Description,
			CompletedAt: step.CompletedAt,
			IsCompleted: step.IsCompleted,
			IsCurrent:   step.IsCurrent,
		})
	}
	return timeline
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
