// Package invoice provides the Invoice aggregate: the immutable billing
// record generated once per delivery unit right after an order is split.
package invoice

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrInvoiceIsNotConstructed is returned when an Invoice was not created
// through NewInvoice or RestoreInvoice.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice or RestoreInvoice")

// Invoice is the billing record for one delivery unit: the items of one
// brand within one order. The amount covers the items only; the unit's
// shipping fee is tracked separately on the delivery unit.
//
// Invoices are created exactly once per delivery unit, immediately after
// splitting, and are immutable thereafter. The invoice number format
// INV-{yyyyMMdd}-{orderId}-{brandId} is unique as long as at most one
// invoice is created per delivery unit, which the creation flow enforces.
type Invoice struct {
	// id is the unique identifier for the invoice
	id kernel.UUID

	// orderID references the order being billed
	orderID kernel.UUID

	// brandID references the vendor the invoice belongs to
	brandID kernel.UUID

	// number is the generated invoice number
	number string

	// amount is the billed amount in minor units (must be positive)
	amount int64

	// issuedAt is the issuance timestamp
	issuedAt time.Time

	// isConstructed ensures the invoice was created via a factory function
	isConstructed bool
}

// NewInvoice creates a validated invoice.
// The amount must be positive and the number must not be blank.
func NewInvoice(
	id kernel.UUID,
	orderID kernel.UUID,
	brandID kernel.UUID,
	number string,
	amount int64,
	issuedAt time.Time,
) (*Invoice, error) {
	inv := &Invoice{
		issuedAt:      issuedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setOrderID(orderID),
		inv.setBrandID(brandID),
		inv.setNumber(number),
		inv.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// RestoreInvoice reconstructs an invoice from persistence.
// Same validation as NewInvoice; invoices never change after creation.
func RestoreInvoice(
	id kernel.UUID,
	orderID kernel.UUID,
	brandID kernel.UUID,
	number string,
	amount int64,
	issuedAt time.Time,
) (*Invoice, error) {
	return NewInvoice(id, orderID, brandID, number, amount, issuedAt)
}

// Validate ensures the invoice was created through a factory function.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// OrderID returns the billed order's identifier.
func (i *Invoice) OrderID() kernel.UUID {
	return i.orderID
}

// BrandID returns the vendor's identifier.
func (i *Invoice) BrandID() kernel.UUID {
	return i.brandID
}

// Number returns the generated invoice number.
func (i *Invoice) Number() string {
	return i.number
}

// Amount returns the billed amount in minor units.
func (i *Invoice) Amount() int64 {
	return i.amount
}

// IssuedAt returns the issuance timestamp.
func (i *Invoice) IssuedAt() time.Time {
	return i.issuedAt
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	i.orderID = orderID
	return nil
}

func (i *Invoice) setBrandID(brandID kernel.UUID) error {
	if err := brandID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("brandId", err)
	}
	i.brandID = brandID
	return nil
}

func (i *Invoice) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("invoiceNumber")
	}
	i.number = number
	return nil
}

func (i *Invoice) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			errs.NewValueIsOutOfRangeError("amount", amount, 1, "unbounded"))
	}
	i.amount = amount
	return nil
}
