package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/brand"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
)

// CatalogReader provides read access to the product catalog owned by another
// part of the marketplace. The fulfillment flow uses it to resolve each order
// item's product and the brand that ships it.
type CatalogReader interface {
	// GetProduct retrieves a product by its identifier.
	// Returns an ObjectNotFound error for unknown products.
	GetProduct(ctx context.Context, id kernel.UUID) (*brand.Product, error)

	// GetBrand retrieves a brand with its shipping origin.
	// Returns an ObjectNotFound error for unknown brands.
	GetBrand(ctx context.Context, id kernel.UUID) (*brand.Brand, error)
}

// ShippingMethodReader provides read access to the carrier shipping methods
// buyers can choose from.
type ShippingMethodReader interface {
	// Get retrieves a shipping method by its identifier.
	// Returns an ObjectNotFound error for unknown methods.
	Get(ctx context.Context, id kernel.UUID) (*shipping.Method, error)
}

// AddressReader resolves a stored shipping address to the locality the
// delivery estimate depends on.
type AddressReader interface {
	// GetLocality retrieves the city/country pair of a shipping address.
	// Returns an ObjectNotFound error for unknown addresses.
	GetLocality(ctx context.Context, addressID kernel.UUID) (kernel.Locality, error)
}
