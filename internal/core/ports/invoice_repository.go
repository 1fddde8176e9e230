package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoices.
// Invoices are immutable: they are added once and only ever read back.
type InvoiceRepository interface {
	// Add persists a new invoice. The invoice must be valid and not
	// already exist in the repository.
	Add(ctx context.Context, inv *invoice.Invoice) error

	// GetByOrder retrieves all invoices issued for an order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*invoice.Invoice, error)
}
