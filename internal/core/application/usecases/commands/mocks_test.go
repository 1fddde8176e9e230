package commands_test

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/brand"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OrderRepoMock) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OrderRepoMock) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type DeliveryRepoMock struct{ mock.Mock }

func (m *DeliveryRepoMock) Add(ctx context.Context, unit *delivery.DeliveryUnit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *DeliveryRepoMock) Update(ctx context.Context, unit *delivery.DeliveryUnit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *DeliveryRepoMock) Get(ctx context.Context, id kernel.UUID) (*delivery.DeliveryUnit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.DeliveryUnit), args.Error(1)
}

func (m *DeliveryRepoMock) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*delivery.DeliveryUnit, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.DeliveryUnit), args.Error(1)
}

func (m *DeliveryRepoMock) GetAllActive(ctx context.Context) ([]*delivery.DeliveryUnit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.DeliveryUnit), args.Error(1)
}

type InvoiceRepoMock struct{ mock.Mock }

func (m *InvoiceRepoMock) Add(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *InvoiceRepoMock) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}

type UnitOfWorkMock struct{ mock.Mock }

func (m *UnitOfWorkMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWorkMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWorkMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWorkMock) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *UnitOfWorkMock) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *UnitOfWorkMock) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

type FulfillmentUoWFactoryMock struct{ mock.Mock }

func (m *FulfillmentUoWFactoryMock) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

type DeliveryOrderUoWFactoryMock struct{ mock.Mock }

func (m *DeliveryOrderUoWFactoryMock) Create() commands.DeliveryOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryOrderUoW)
}

type CatalogReaderMock struct{ mock.Mock }

func (m *CatalogReaderMock) GetProduct(ctx context.Context, id kernel.UUID) (*brand.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*brand.Product), args.Error(1)
}

func (m *CatalogReaderMock) GetBrand(ctx context.Context, id kernel.UUID) (*brand.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*brand.Brand), args.Error(1)
}

type ShippingMethodReaderMock struct{ mock.Mock }

func (m *ShippingMethodReaderMock) Get(ctx context.Context, id kernel.UUID) (*shipping.Method, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.Method), args.Error(1)
}

type AddressReaderMock struct{ mock.Mock }

func (m *AddressReaderMock) GetLocality(ctx context.Context, addressID kernel.UUID) (kernel.Locality, error) {
	args := m.Called(ctx, addressID)
	return args.Get(0).(kernel.Locality), args.Error(1)
}

type NotifierMock struct{ mock.Mock }

func (m *NotifierMock) SendShippedEmail(ctx context.Context, userID string, unit *delivery.DeliveryUnit) error {
	args := m.Called(ctx, userID, unit)
	return args.Error(0)
}

func (m *NotifierMock) SendInTransitEmail(ctx context.Context, userID string, unit *delivery.DeliveryUnit) error {
	args := m.Called(ctx, userID, unit)
	return args.Error(0)
}

func (m *NotifierMock) SendOutForDeliveryEmail(ctx context.Context, userID string, unit *delivery.DeliveryUnit) error {
	args := m.Called(ctx, userID, unit)
	return args.Error(0)
}

func (m *NotifierMock) SendDeliveredEmail(ctx context.Context, userID string, unit *delivery.DeliveryUnit) error {
	args := m.Called(ctx, userID, unit)
	return args.Error(0)
}
