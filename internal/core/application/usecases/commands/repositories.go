// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// DeliveryOrderUoW manages transactions that touch a delivery unit and the
	// coarse status of its order. Used by transition commands and the
	// progression tick.
	DeliveryOrderUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
	}

	// DeliveryOrderUoWFactory creates new delivery/order unit of work instances.
	DeliveryOrderUoWFactory interface {
		Create() DeliveryOrderUoW
	}

	// FulfillmentUoW manages transactions spanning all three fulfillment
	// aggregates. Order placement persists the order, its delivery units and
	// their invoices in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   deliveryRepo := uow.DeliveryRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		InvoiceRepoFactory
	}

	// FulfillmentUoWFactory creates new unit of work instances for order placement.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}
)
