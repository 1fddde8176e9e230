// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables; line items live in
// their own table linked by foreign key.
type OrderDTO struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index"`
	ShippingAddressID uuid.UUID      `gorm:"type:uuid;not null"`
	Currency          string         `gorm:"type:varchar(3);not null"`
	Total             int64          `gorm:"type:bigint;not null"`
	PlacedAt          time.Time      `gorm:"not null"`
	Status            int            `gorm:"type:int;not null;index"`
	Items             []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order line items.
// Links to the order via foreign key and, once the order has been split,
// references the delivery unit the item was assigned to.
type OrderItemDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID  `gorm:"type:uuid;not null"`
	VariantID   *uuid.UUID `gorm:"type:uuid"`
	ProductName string     `gorm:"type:varchar(255);not null"`
	Quantity    int        `gorm:"type:int;not null"`
	UnitPrice   int64      `gorm:"type:bigint;not null"`
	DeliveryID  *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for order line items.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the order attributes and all line items including delivery assignments.
func fromDomain(ord *order.Order) OrderDTO {
	orderID := ord.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(ord.Items()))

	for _, item := range ord.Items() {
		var variantID *uuid.UUID
		if item.VariantID() != nil {
			raw := item.VariantID().Bytes()
			variantID = &raw
		}

		var deliveryID *uuid.UUID
		if item.DeliveryID() != nil {
			raw := item.DeliveryID().Bytes()
			deliveryID = &raw
		}

		items = append(items, OrderItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     orderID,
			ProductID:   item.ProductID().Bytes(),
			VariantID:   variantID,
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			DeliveryID:  deliveryID,
		})
	}

	return OrderDTO{
		ID:                orderID,
		UserID:            ord.UserID().Bytes(),
		ShippingAddressID: ord.ShippingAddressID().Bytes(),
		Currency:          ord.Currency(),
		Total:             ord.Total(),
		PlacedAt:          ord.PlacedAt(),
		Status:            int(ord.Status()),
		Items:             items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(dto.ShippingAddressID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, userID, addressID, dto.Currency, dto.Total,
		dto.PlacedAt, order.Status(dto.Status), items)
}

// itemToDomain converts a line item DTO to a domain entity.
// Uses RestoreItem to reconstruct the item with its delivery assignment.
func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var variantID *kernel.UUID
	if dto.VariantID != nil {
		vID, variantErr := kernel.UUIDFromBytes((*dto.VariantID)[:])
		if variantErr != nil {
			return nil, variantErr
		}
		variantID = &vID
	}

	var deliveryID *kernel.UUID
	if dto.DeliveryID != nil {
		dID, deliveryErr := kernel.UUIDFromBytes((*dto.DeliveryID)[:])
		if deliveryErr != nil {
			return nil, deliveryErr
		}
		deliveryID = &dID
	}

	return order.RestoreItem(id, productID, variantID, dto.ProductName,
		dto.Quantity, dto.UnitPrice, deliveryID)
}
