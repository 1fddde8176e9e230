// Package brand provides read models for marketplace vendors and their
// products. Both are catalog data owned elsewhere: the fulfillment flow
// reads them to resolve each order item's brand and shipping origin.
package brand

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrBrandIsNotConstructed indicates that the Brand was not created
	// through the NewBrand constructor function.
	ErrBrandIsNotConstructed = errors.New("Brand must be created via NewBrand constructor")

	// ErrProductIsNotConstructed indicates that the Product was not created
	// through the NewProduct constructor function.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Brand represents a marketplace vendor. Its origin locality is where the
// vendor ships from and drives the distance component of delivery estimates.
type Brand struct {
	// id uniquely identifies the brand
	id kernel.UUID

	// name is the vendor's display name
	name string

	// origin is the locality the vendor ships from
	origin kernel.Locality

	// guard ensures the entity was properly initialized
	guard guard.ConstructorGuard
}

// NewBrand creates a validated brand read model.
func NewBrand(id kernel.UUID, name string, origin kernel.Locality) (*Brand, error) {
	b := &Brand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(b.setID(id), b.setName(name), b.setOrigin(origin)); err != nil {
		return nil, err
	}

	return b, nil
}

// IsEqual compares two brands by identity.
func (b *Brand) IsEqual(other *Brand) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the unique identifier of the brand.
func (b *Brand) ID() kernel.UUID {
	return b.id
}

// Name returns the vendor's display name.
func (b *Brand) Name() string {
	return b.name
}

// Origin returns the locality the vendor ships from.
func (b *Brand) Origin() kernel.Locality {
	return b.origin
}

func (b *Brand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	b.id = id
	return nil
}

func (b *Brand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	b.name = name
	return nil
}

func (b *Brand) setOrigin(origin kernel.Locality) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("origin", err)
	}

	b.origin = origin
	return nil
}

// Validate checks that the brand was created through NewBrand.
func (b *Brand) Validate() error {
	if b == nil {
		return ErrBrandIsNotConstructed
	}
	return b.guard.Validate(ErrBrandIsNotConstructed)
}

// Product links a catalog product to its owning brand. The fulfillment
// flow only needs this association to group order items by vendor.
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID

	// brandID references the owning brand
	brandID kernel.UUID

	// name is the product's display name
	name string

	// guard ensures the entity was properly initialized
	guard guard.ConstructorGuard
}

// NewProduct creates a validated product read model.
func NewProduct(id kernel.UUID, brandID kernel.UUID, name string) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setID(id), p.setBrandID(brandID), p.setName(name)); err != nil {
		return nil, err
	}

	return p, nil
}

// ID returns the unique identifier of the product.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// BrandID returns the owning brand's identifier.
func (p *Product) BrandID() kernel.UUID {
	return p.brandID
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Product) setBrandID(brandID kernel.UUID) error {
	if err := brandID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("brandId", err)
	}

	p.brandID = brandID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	p.name = name
	return nil
}

// Validate checks that the product was created through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}
