package catalog

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/brand"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogReader implements CatalogReader over the brands and products tables.
type GormCatalogReader struct {
	db *gorm.DB
}

// NewGormCatalogReader creates a read-only catalog adapter.
func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// GetProduct retrieves a product by ID.
func (r *GormCatalogReader) GetProduct(ctx context.Context, id kernel.UUID) (*brand.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	brandID, err := kernel.UUIDFromBytes(dto.BrandID[:])
	if err != nil {
		return nil, err
	}

	return brand.NewProduct(productID, brandID, dto.Name)
}

// GetBrand retrieves a brand with its shipping origin by ID.
func (r *GormCatalogReader) GetBrand(ctx context.Context, id kernel.UUID) (*brand.Brand, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BrandDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("brand", id.String())
		}
		return nil, err
	}

	brandID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	origin, err := kernel.NewLocality(dto.OriginCity, dto.OriginCountry)
	if err != nil {
		return nil, err
	}

	return brand.NewBrand(brandID, dto.Name, origin)
}

// GormShippingMethodReader implements ShippingMethodReader over the
// shipping_methods table.
type GormShippingMethodReader struct {
	db *gorm.DB
}

// NewGormShippingMethodReader creates a read-only shipping method adapter.
func NewGormShippingMethodReader(db *gorm.DB) *GormShippingMethodReader {
	return &GormShippingMethodReader{db: db}
}

// Get retrieves a shipping method by ID.
func (r *GormShippingMethodReader) Get(ctx context.Context, id kernel.UUID) (*shipping.Method, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShippingMethodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipping method", id.String())
		}
		return nil, err
	}

	methodID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return shipping.NewMethod(methodID, dto.Name, dto.Price, dto.MinDays, dto.MaxDays, dto.MaxWeight)
}

// GormAddressReader implements AddressReader over the shipping_addresses table.
type GormAddressReader struct {
	db *gorm.DB
}

// NewGormAddressReader creates a read-only shipping address adapter.
func NewGormAddressReader(db *gorm.DB) *GormAddressReader {
	return &GormAddressReader{db: db}
}

// GetLocality retrieves the city/country pair of a shipping address.
func (r *GormAddressReader) GetLocality(ctx context.Context, addressID kernel.UUID) (kernel.Locality, error) {
	if err := addressID.Validate(); err != nil {
		return kernel.Locality{}, err
	}

	var dto ShippingAddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", addressID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Locality{}, errs.NewObjectNotFoundError("shipping address", addressID.String())
		}
		return kernel.Locality{}, err
	}

	return kernel.NewLocality(dto.City, dto.Country)
}
