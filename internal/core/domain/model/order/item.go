package order

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through
	// the NewItem or RestoreItem factory functions.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

	// ErrItemAlreadyAssigned is returned when assigning an item to a delivery
	// unit while it already belongs to a different one. An item belongs to
	// exactly one delivery unit.
	ErrItemAlreadyAssigned = errors.New("item is already assigned to another delivery")
)

// Item is a purchased line within an order: a product snapshot with quantity
// and the unit price at purchase time. Once the order is split, every item is
// assigned to exactly one delivery unit.
//
// Invariants:
//   - Quantity is greater than 0
//   - Unit price is not negative
//   - The product name snapshot is not blank
//   - Once assigned, the delivery reference never moves to another unit
type Item struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// productID references the purchased product in the external catalog
	productID kernel.UUID

	// variantID optionally references a product variant (nil if none)
	variantID *kernel.UUID

	// productName is the display name captured at purchase time
	productName string

	// quantity is the number of units purchased (must be positive)
	quantity int

	// unitPrice is the per-unit price in minor units (must not be negative)
	unitPrice int64

	// deliveryID is the delivery unit this item was assigned to (nil until split)
	deliveryID *kernel.UUID

	// isConstructed ensures the item was created via a factory function
	isConstructed bool
}

// NewItem creates a new, unassigned line item with validation.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	variantID *kernel.UUID,
	productName string,
	quantity int,
	unitPrice int64,
) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setVariantID(variantID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence, including its delivery
// assignment if the order has already been split.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	variantID *kernel.UUID,
	productName string,
	quantity int,
	unitPrice int64,
	deliveryID *kernel.UUID,
) (*Item, error) {
	item, err := NewItem(id, productID, variantID, productName, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	if deliveryID != nil {
		if err = deliveryID.Validate(); err != nil {
			return nil, err
		}
		item.deliveryID = deliveryID
	}

	return item, nil
}

// Validate ensures the Item was created through a factory function.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the purchased product's identifier.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// VariantID returns the product variant identifier, or nil if the item has no variant.
func (i *Item) VariantID() *kernel.UUID {
	return i.variantID
}

// ProductName returns the product name snapshot captured at purchase time.
func (i *Item) ProductName() string {
	return i.productName
}

// Quantity returns the number of units purchased.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price in minor units.
func (i *Item) UnitPrice() int64 {
	return i.unitPrice
}

// Subtotal returns quantity x unit price in minor units.
func (i *Item) Subtotal() int64 {
	return int64(i.quantity) * i.unitPrice
}

// DeliveryID returns the delivery unit this item is assigned to,
// or nil if the order has not been split yet.
func (i *Item) DeliveryID() *kernel.UUID {
	return i.deliveryID
}

// AssignToDelivery binds the item to a delivery unit.
//
// Assignment is idempotent for the same unit but an item can never move:
// assigning to a different unit returns ErrItemAlreadyAssigned.
func (i *Item) AssignToDelivery(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	if i.deliveryID != nil {
		if i.deliveryID.IsEqual(deliveryID) {
			return nil
		}
		return ErrItemAlreadyAssigned
	}

	i.deliveryID = &deliveryID
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("productId", err)
	}
	i.productID = productID
	return nil
}

func (i *Item) setVariantID(variantID *kernel.UUID) error {
	if variantID == nil {
		return nil
	}
	if err := variantID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("variantId", err)
	}
	i.variantID = variantID
	return nil
}

func (i *Item) setProductName(productName string) error {
	if strings.TrimSpace(productName) == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded"))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice int64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			errs.NewValueIsOutOfRangeError("unitPrice", unitPrice, 0, "unbounded"))
	}
	i.unitPrice = unitPrice
	return nil
}
