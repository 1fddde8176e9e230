// Package deliveryrepo provides data transfer objects and mapping functions for
// delivery unit persistence. This package implements the repository pattern for
// the delivery unit aggregate, handling the conversion between domain entities
// and database representations with optimistic concurrency control.
package deliveryrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery units.
// The assigned item identifiers are not stored here: they live on the
// order_items table as the delivery_id foreign key and are joined in on read.
//
// The version column is the optimistic-concurrency stamp; every successful
// update bumps it by one.
type DeliveryDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	BrandID             uuid.UUID  `gorm:"type:uuid;not null"`
	ShippingMethodID    *uuid.UUID `gorm:"type:uuid"`
	ShippingFee         int64      `gorm:"type:bigint;not null"`
	Description         string     `gorm:"type:text"`
	TrackingNumber      string     `gorm:"type:varchar(64)"`
	Status              int        `gorm:"type:int;not null;index"`
	CreatedAt           time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt           time.Time  `gorm:"not null;autoUpdateTime:false"`
	ShippedAt           *time.Time
	DeliveredAt         *time.Time
	EstimatedDeliveryAt *time.Time
	Version             int `gorm:"type:int;not null"`
}

// TableName specifies the database table name for delivery units.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery unit aggregate to its database representation.
func fromDomain(unit *delivery.DeliveryUnit) DeliveryDTO {
	var methodID *uuid.UUID
	if unit.ShippingMethodID() != nil {
		raw := unit.ShippingMethodID().Bytes()
		methodID = &raw
	}

	return DeliveryDTO{
		ID:                  unit.ID().Bytes(),
		OrderID:             unit.OrderID().Bytes(),
		BrandID:             unit.BrandID().Bytes(),
		ShippingMethodID:    methodID,
		ShippingFee:         unit.ShippingFee(),
		Description:         unit.Description(),
		TrackingNumber:      unit.TrackingNumber(),
		Status:              int(unit.Status()),
		CreatedAt:           unit.CreatedAt(),
		UpdatedAt:           unit.UpdatedAt(),
		ShippedAt:           unit.ShippedAt(),
		DeliveredAt:         unit.DeliveredAt(),
		EstimatedDeliveryAt: unit.EstimatedDeliveryAt(),
		Version:             unit.Version(),
	}
}

// toDomain converts a database DTO plus the item identifiers joined from
// order_items into a delivery unit aggregate.
func toDomain(dto DeliveryDTO, itemIDs []kernel.UUID, policy delivery.TransitionPolicy) (*delivery.DeliveryUnit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	brandID, err := kernel.UUIDFromBytes(dto.BrandID[:])
	if err != nil {
		return nil, err
	}

	var methodID *kernel.UUID
	if dto.ShippingMethodID != nil {
		mID, methodErr := kernel.UUIDFromBytes((*dto.ShippingMethodID)[:])
		if methodErr != nil {
			return nil, methodErr
		}
		methodID = &mID
	}

	return delivery.RestoreDeliveryUnit(
		id, orderID, brandID, methodID, dto.ShippingFee, itemIDs,
		dto.Description, dto.TrackingNumber, delivery.Status(dto.Status),
		dto.CreatedAt, dto.UpdatedAt, dto.ShippedAt, dto.DeliveredAt,
		dto.EstimatedDeliveryAt, dto.Version, policy)
}
