package deliveryrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
// All restored units carry the transition policy the repository was
// configured with.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	policy  delivery.TransitionPolicy
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker, policy delivery.TransitionPolicy) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
		policy:  policy,
	}
}

// Add saves a new delivery unit to the database.
// Item assignments are owned by the order aggregate and are persisted with it.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.DeliveryUnit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists a lifecycle transition of an existing unit.
//
// The write is guarded by the version the aggregate was read with: the row is
// only updated when it still carries that version, and the version is bumped
// in the same statement. A row that was advanced by a concurrent writer in
// the meantime matches nothing, and the update fails with a version conflict
// instead of silently overwriting the other write.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.DeliveryUnit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":          dto.Status,
			"tracking_number": dto.TrackingNumber,
			"updated_at":      dto.UpdatedAt,
			"shipped_at":      dto.ShippedAt,
			"delivered_at":    dto.DeliveredAt,
			"version":         dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("delivery")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery unit by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.DeliveryUnit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	itemsByDelivery, err := r.loadItemIDs(ctx, []uuid.UUID{dto.ID})
	if err != nil {
		return nil, err
	}

	return toDomain(dto, itemsByDelivery[dto.ID], r.policy)
}

// GetByOrder retrieves all delivery units belonging to an order, in creation order.
func (r *GormDeliveryRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*delivery.DeliveryUnit, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainList(ctx, dtos)
}

// GetAllActive retrieves every unit in a non-terminal status, oldest first.
func (r *GormDeliveryRepository) GetAllActive(ctx context.Context) ([]*delivery.DeliveryUnit, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []int{int(delivery.Delivered), int(delivery.Cancelled)}).
		Order("updated_at ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainList(ctx, dtos)
}

// toDomainList restores a batch of DTOs, joining in the assigned item
// identifiers with a single query for the whole batch.
func (r *GormDeliveryRepository) toDomainList(ctx context.Context, dtos []DeliveryDTO) ([]*delivery.DeliveryUnit, error) {
	if len(dtos) == 0 {
		return []*delivery.DeliveryUnit{}, nil
	}

	deliveryIDs := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		deliveryIDs = append(deliveryIDs, dto.ID)
	}

	itemsByDelivery, err := r.loadItemIDs(ctx, deliveryIDs)
	if err != nil {
		return nil, err
	}

	units := make([]*delivery.DeliveryUnit, 0, len(dtos))
	for _, dto := range dtos {
		unit, unitErr := toDomain(dto, itemsByDelivery[dto.ID], r.policy)
		if unitErr != nil {
			return nil, unitErr
		}
		units = append(units, unit)
	}

	return units, nil
}

// loadItemIDs reads the order item identifiers assigned to each of the given
// delivery units from the order_items table.
func (r *GormDeliveryRepository) loadItemIDs(ctx context.Context, deliveryIDs []uuid.UUID) (map[uuid.UUID][]kernel.UUID, error) {
	var rows []struct {
		ID         uuid.UUID
		DeliveryID uuid.UUID
	}
	if err := r.db.WithContext(ctx).
		Table("order_items").
		Select("id, delivery_id").
		Where("delivery_id IN ?", deliveryIDs).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	itemsByDelivery := make(map[uuid.UUID][]kernel.UUID, len(deliveryIDs))
	for _, row := range rows {
		itemID, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		itemsByDelivery[row.DeliveryID] = append(itemsByDelivery[row.DeliveryID], itemID)
	}

	return itemsByDelivery, nil
}
