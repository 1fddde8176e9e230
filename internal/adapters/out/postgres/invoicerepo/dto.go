// Package invoicerepo provides data transfer objects and mapping functions for
// invoice persistence. Invoices are immutable once issued, so the repository
// only ever inserts and reads.
package invoicerepo

import (
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InvoiceDTO represents the database structure for persisting invoices.
type InvoiceDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	BrandID  uuid.UUID `gorm:"type:uuid;not null"`
	Number   string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	Amount   int64     `gorm:"type:bigint;not null"`
	IssuedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for invoices.
// Overrides GORM's default naming convention to use "invoices".
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// fromDomain converts an invoice aggregate to its database representation.
func fromDomain(inv *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:       inv.ID().Bytes(),
		OrderID:  inv.OrderID().Bytes(),
		BrandID:  inv.BrandID().Bytes(),
		Number:   inv.Number(),
		Amount:   inv.Amount(),
		IssuedAt: inv.IssuedAt(),
	}
}

// toDomain converts a database DTO to an invoice aggregate.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
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

	return invoice.RestoreInvoice(id, orderID, brandID, dto.Number, dto.Amount, dto.IssuedAt)
}
