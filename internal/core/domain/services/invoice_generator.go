package services

import (
	"fmt"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// InvoiceGenerator is a domain service that produces the billing record for
// one delivery unit right after an order has been split.
//
// Business rules:
//   - The amount is the sum of quantity x unit price over the unit's items;
//     the unit's shipping fee is never billed through the invoice
//   - The number format is INV-{yyyyMMdd}-{orderId}-{brandId}, dated by the
//     order's placement time
//   - Exactly one invoice exists per delivery unit
type InvoiceGenerator struct{}

// NewInvoiceGenerator creates a new InvoiceGenerator instance.
func NewInvoiceGenerator() InvoiceGenerator {
	return InvoiceGenerator{}
}

// Generate builds the invoice for the given delivery unit of the given order.
// The unit must belong to the order and its items must already be assigned,
// which is the state Split leaves them in.
func (g InvoiceGenerator) Generate(ord *order.Order, unit *delivery.DeliveryUnit) (*invoice.Invoice, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}
	if err := unit.Validate(); err != nil {
		return nil, err
	}

	var amount int64
	for _, item := range ord.ItemsForDelivery(unit.ID()) {
		amount += item.Subtotal()
	}

	number := g.number(ord, unit.BrandID())

	return invoice.NewInvoice(
		kernel.NewUUID(),
		ord.ID(),
		unit.BrandID(),
		number,
		amount,
		unit.CreatedAt(),
	)
}

func (g InvoiceGenerator) number(ord *order.Order, brandID kernel.UUID) string {
	return fmt.Sprintf("INV-%s-%s-%s", ord.PlacedAt().Format("20060102"), ord.ID(), brandID)
}
