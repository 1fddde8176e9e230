package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery units.
// Units are created when an order is split and afterwards only change
// through lifecycle transitions; they are never deleted.
type DeliveryRepository interface {
	// Add persists a new delivery unit.
	// The unit must be valid and not already exist in the repository.
	Add(ctx context.Context, unit *delivery.DeliveryUnit) error

	// Update persists a lifecycle transition of an existing unit.
	// The write is guarded by the unit's version: if another writer
	// advanced the unit since it was read, Update fails with a
	// version conflict error and persists nothing.
	Update(ctx context.Context, unit *delivery.DeliveryUnit) error

	// Get retrieves a delivery unit by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.DeliveryUnit, error)

	// GetByOrder retrieves all delivery units belonging to an order,
	// in creation order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*delivery.DeliveryUnit, error)

	// GetAllActive retrieves every unit in a non-terminal status.
	// The progression scheduler calls this fresh on every tick.
	GetAllActive(ctx context.Context) ([]*delivery.DeliveryUnit, error)
}
