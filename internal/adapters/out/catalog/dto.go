// Package catalog provides read-only GORM adapters over the marketplace
// catalog tables: brands, products, shipping methods and shipping addresses.
// Fulfillment does not own this data, so the adapters only ever read, and no
// aggregate tracking is involved.
package catalog

import (
	"github.com/google/uuid"
)

// BrandDTO represents the database structure of a marketplace vendor.
type BrandDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	OriginCity    string    `gorm:"type:varchar(255);not null"`
	OriginCountry string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for brand entities.
// Overrides GORM's default naming convention to use "brands".
func (BrandDTO) TableName() string {
	return "brands"
}

// ProductDTO represents the database structure of a catalog product.
type ProductDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	BrandID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name    string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// ShippingMethodDTO represents the database structure of a carrier shipping
// method buyers can choose from.
type ShippingMethodDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Price     int64     `gorm:"type:bigint;not null"`
	MinDays   int       `gorm:"type:int;not null"`
	MaxDays   int       `gorm:"type:int;not null"`
	MaxWeight *int      `gorm:"type:int"`
}

// TableName specifies the database table name for shipping method entities.
// Overrides GORM's default naming convention to use "shipping_methods".
func (ShippingMethodDTO) TableName() string {
	return "shipping_methods"
}

// ShippingAddressDTO represents the database structure of a stored shipping
// address. Only the locality matters to delivery estimation; street-level
// fields are owned by the checkout flow.
type ShippingAddressDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	City    string    `gorm:"type:varchar(255);not null"`
	Country string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for shipping address entities.
// Overrides GORM's default naming convention to use "shipping_addresses".
func (ShippingAddressDTO) TableName() string {
	return "shipping_addresses"
}
