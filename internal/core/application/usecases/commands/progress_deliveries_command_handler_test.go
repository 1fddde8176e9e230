package commands_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDwellSchedule_IsDue(t *testing.T) {
	schedule := commands.DefaultDwellSchedule()
	enteredAt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("due once the dwell has elapsed", func(t *testing.T) {
		assert.False(t, schedule.IsDue(delivery.Pending, enteredAt, enteredAt.Add(11*time.Hour)))
		assert.True(t, schedule.IsDue(delivery.Pending, enteredAt, enteredAt.Add(12*time.Hour)))
		assert.True(t, schedule.IsDue(delivery.Shipped, enteredAt, enteredAt.Add(48*time.Hour)))
	})

	t.Run("terminal stages are never due", func(t *testing.T) {
		assert.False(t, schedule.IsDue(delivery.Delivered, enteredAt, enteredAt.Add(1000*time.Hour)))
		assert.False(t, schedule.IsDue(delivery.Cancelled, enteredAt, enteredAt.Add(1000*time.Hour)))
	})
}

func TestProgressDeliveriesCommandHandler_Handle_AdvancesDueUnit(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewProgressDeliveriesCommand()
	ord, unit := newTestOrderWithUnit(t, delivery.Permissive) // created well in the past, due

	orderRepo := new(OrderRepoMock)
	deliveryRepo := new(DeliveryRepoMock)
	uow := new(UnitOfWorkMock)
	factory := new(DeliveryOrderUoWFactoryMock)
	notifier := new(NotifierMock)

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("OrderRepository").Return(orderRepo)
	deliveryRepo.On("GetAllActive", ctx).Return([]*delivery.DeliveryUnit{unit}, nil).Once()
	deliveryRepo.On("Update", ctx, unit).Return(nil).Once()
	orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil)
	deliveryRepo.On("GetByOrder", ctx, ord.ID()).Return([]*delivery.DeliveryUnit{unit}, nil)
	orderRepo.On("Update", ctx, ord).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewProgressDeliveriesCommandHandler(
		factory, notifier, commands.DefaultDwellSchedule(), discardLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Preparing, unit.Status())
	assert.Equal(t, order.Processing, ord.Status())
	// No notification for the preparing stage.
	notifier.AssertNotCalled(t, "SendShippedEmail", mock.Anything, mock.Anything, mock.Anything)
	deliveryRepo.AssertExpectations(t)
}

func TestProgressDeliveriesCommandHandler_Handle_GeneratesTrackingWhenShipping(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewProgressDeliveriesCommand()
	ord, unit := newTestOrderWithUnit(t, delivery.Permissive)
	require.NoError(t, unit.MarkPreparing(unit.CreatedAt().Add(time.Hour)))

	orderRepo := new(OrderRepoMock)
	deliveryRepo := new(DeliveryRepoMock)
	uow := new(UnitOfWorkMock)
	factory := new(DeliveryOrderUoWFactoryMock)
	notifier := new(NotifierMock)

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("OrderRepository").Return(orderRepo)
	deliveryRepo.On("GetAllActive", ctx).Return([]*delivery.DeliveryUnit{unit}, nil).Once()
	deliveryRepo.On("Update", ctx, unit).Return(nil).Once()
	orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil)
	deliveryRepo.On("GetByOrder", ctx, ord.ID()).Return([]*delivery.DeliveryUnit{unit}, nil)
	orderRepo.On("Update", ctx, ord).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	notifier.On("SendShippedEmail", ctx, ord.UserID().String(), unit).Return(nil).Once()

	handler := commands.NewProgressDeliveriesCommandHandler(
		factory, notifier, commands.DefaultDwellSchedule(), discardLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Shipped, unit.Status())
	assert.True(t, strings.HasPrefix(unit.TrackingNumber(), "TRK-"),
		"scheduler must generate a tracking number, got %q", unit.TrackingNumber())
	require.NotNil(t, unit.ShippedAt())
	notifier.AssertExpectations(t)
}

func TestProgressDeliveriesCommandHandler_Handle_SkipsUnitsStillDwelling(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewProgressDeliveriesCommand()

	// A unit updated just now has not dwelled long enough in any stage.
	_, fresh := newTestOrderWithUnit(t, delivery.Permissive)
	require.NoError(t, fresh.MarkPreparing(time.Now().UTC()))

	deliveryRepo := new(DeliveryRepoMock)
	uow := new(UnitOfWorkMock)
	factory := new(DeliveryOrderUoWFactoryMock)
	notifier := new(NotifierMock)

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	deliveryRepo.On("GetAllActive", ctx).Return([]*delivery.DeliveryUnit{fresh}, nil).Once()
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewProgressDeliveriesCommandHandler(
		factory, notifier, commands.DefaultDwellSchedule(), discardLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Preparing, fresh.Status())
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProgressDeliveriesCommandHandler_Handle_OneFailedUnitDoesNotStopTheBatch(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewProgressDeliveriesCommand()

	ordA, unitA := newTestOrderWithUnit(t, delivery.Permissive)
	ordB, unitB := newTestOrderWithUnit(t, delivery.Permissive)
	_ = ordA

	orderRepo := new(OrderRepoMock)
	deliveryRepo := new(DeliveryRepoMock)
	uow := new(UnitOfWorkMock)
	factory := new(DeliveryOrderUoWFactoryMock)
	notifier := new(NotifierMock)

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("OrderRepository").Return(orderRepo)
	deliveryRepo.On("GetAllActive", ctx).Return([]*delivery.DeliveryUnit{unitA, unitB}, nil).Once()
	// Unit A hits a stale version; unit B still progresses.
	deliveryRepo.On("Update", ctx, unitA).Return(errors.New("version conflict")).Once()
	deliveryRepo.On("Update", ctx, unitB).Return(nil).Once()
	orderRepo.On("Get", ctx, ordB.ID()).Return(ordB, nil)
	deliveryRepo.On("GetByOrder", ctx, ordB.ID()).Return([]*delivery.DeliveryUnit{unitB}, nil)
	orderRepo.On("Update", ctx, ordB).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewProgressDeliveriesCommandHandler(
		factory, notifier, commands.DefaultDwellSchedule(), discardLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err, "per-unit failures are logged, not returned")
	assert.Equal(t, delivery.Preparing, unitB.Status())
	deliveryRepo.AssertExpectations(t)
}

func TestProgressDeliveriesCommandHandler_Handle_NotificationFailureDoesNotStopTheBatch(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewProgressDeliveriesCommand()

	ordA, unitA := newTestOrderWithUnit(t, delivery.Permissive)
	ordB, unitB := newTestOrderWithUnit(t, delivery.Permissive)
	require.NoError(t, unitA.MarkPreparing(unitA.CreatedAt().Add(time.Hour)))
	require.NoError(t, unitB.MarkPreparing(unitB.CreatedAt().Add(time.Hour)))

	orderRepo := new(OrderRepoMock)
	deliveryRepo := new(DeliveryRepoMock)
	uow := new(UnitOfWorkMock)
	factory := new(DeliveryOrderUoWFactoryMock)
	notifier := new(NotifierMock)

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("OrderRepository").Return(orderRepo)
	deliveryRepo.On("GetAllActive", ctx).Return([]*delivery.DeliveryUnit{unitA, unitB}, nil).Once()
	deliveryRepo.On("Update", ctx, unitA).Return(nil).Once()
	deliveryRepo.On("Update", ctx, unitB).Return(nil).Once()
	orderRepo.On("Get", ctx, ordA.ID()).Return(ordA, nil)
	orderRepo.On("Get", ctx, ordB.ID()).Return(ordB, nil)
	deliveryRepo.On("GetByOrder", ctx, ordA.ID()).Return([]*delivery.DeliveryUnit{unitA}, nil)
	deliveryRepo.On("GetByOrder", ctx, ordB.ID()).Return([]*delivery.DeliveryUnit{unitB}, nil)
	orderRepo.On("Update", ctx, ordA).Return(nil)
	orderRepo.On("Update", ctx, ordB).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	notifier.On("SendShippedEmail", ctx, ordA.UserID().String(), unitA).
		Return(errors.New("smtp unavailable")).Once()
	notifier.On("SendShippedEmail", ctx, ordB.UserID().String(), unitB).Return(nil).Once()

	handler := commands.NewProgressDeliveriesCommandHandler(
		factory, notifier, commands.DefaultDwellSchedule(), discardLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Shipped, unitA.Status())
	assert.Equal(t, delivery.Shipped, unitB.Status())
	notifier.AssertExpectations(t)
}

func TestProgressDeliveriesCommandHandler_Handle_ScanErrorAbortsThePass(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewProgressDeliveriesCommand()

	deliveryRepo := new(DeliveryRepoMock)
	uow := new(UnitOfWorkMock)
	factory := new(DeliveryOrderUoWFactoryMock)

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	deliveryRepo.On("GetAllActive", ctx).Return(nil, errors.New("scan failed")).Once()
	uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewProgressDeliveriesCommandHandler(
		factory, new(NotifierMock), commands.DefaultDwellSchedule(), discardLogger())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan failed")
}
