package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DeliveryRepositoryIntegrationTestSuite provides integration tests for
// DeliveryRepository using PostgreSQL containers, with particular attention to
// the version-guarded update path.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// The repository joins assigned item identifiers in from order_items.
	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker, delivery.Strict)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	unit := suite.createTestUnit(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, unit))

	retrieved, err := suite.repository.Get(ctx, unit.ID())
	suite.Require().NoError(err)

	suite.Equal(unit.ID(), retrieved.ID())
	suite.Equal(unit.OrderID(), retrieved.OrderID())
	suite.Equal(unit.BrandID(), retrieved.BrandID())
	suite.Equal(unit.ShippingFee(), retrieved.ShippingFee())
	suite.Equal(delivery.Pending, retrieved.Status())
	suite.Equal(unit.Description(), retrieved.Description())
	suite.Len(retrieved.ItemIDs(), 2, "assigned items should be joined in from order_items")
	suite.Equal(0, retrieved.Version())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_NonExistentUnit_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_PersistsTransitionAndBumpsVersion() {
	ctx := context.Background()

	unit := suite.createTestUnit(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, unit))

	suite.Require().NoError(unit.MarkPreparing(time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, unit))

	retrieved, err := suite.repository.Get(ctx, unit.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Preparing, retrieved.Status())
	suite.Equal(1, retrieved.Version(), "successful update bumps the version stamp")
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionConflict() {
	ctx := context.Background()

	unit := suite.createTestUnit(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, unit))

	// Two readers pick up the same version of the unit.
	first, err := suite.repository.Get(ctx, unit.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, unit.ID())
	suite.Require().NoError(err)

	// The first writer wins.
	suite.Require().NoError(first.MarkPreparing(time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// The second writer holds a stale version and must fail.
	suite.Require().NoError(second.MarkPreparing(time.Now().UTC()))
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	retrieved, err := suite.repository.Get(ctx, unit.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Preparing, retrieved.Status())
	suite.Equal(1, retrieved.Version(), "losing write must not touch the row")
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_RecordsShipmentDetails() {
	ctx := context.Background()

	unit := suite.createTestUnit(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, unit))

	shippedAt := time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC)
	suite.Require().NoError(unit.MarkPreparing(shippedAt.Add(-time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, unit))

	reread, err := suite.repository.Get(ctx, unit.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(reread.MarkShipped(shippedAt, "TRK-abc123"))
	suite.Require().NoError(suite.repository.Update(ctx, reread))

	retrieved, err := suite.repository.Get(ctx, unit.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Shipped, retrieved.Status())
	suite.Equal("TRK-abc123", retrieved.TrackingNumber())
	suite.Require().NotNil(retrieved.ShippedAt())
	suite.True(shippedAt.Equal(*retrieved.ShippedAt()))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetByOrder_ReturnsUnitsInCreationOrder() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	first := suite.createTestUnitAt(orderID, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	second := suite.createTestUnitAt(orderID, time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC))
	other := suite.createTestUnit(kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	units, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)

	suite.Require().Len(units, 2)
	suite.Equal(first.ID(), units[0].ID())
	suite.Equal(second.ID(), units[1].ID())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetAllActive_ExcludesTerminalUnits() {
	ctx := context.Background()

	active := suite.createTestUnit(kernel.NewUUID())
	cancelled := suite.createTestUnit(kernel.NewUUID())
	suite.Require().NoError(cancelled.MarkCancelled(time.Now().UTC()))

	suite.Require().NoError(suite.repository.Add(ctx, active))
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	units, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(units, 1)
	suite.Equal(active.ID(), units[0].ID())
}

// createTestUnit creates a pending delivery unit with two assigned items,
// inserting the matching order_items rows the repository joins against.
func (suite *DeliveryRepositoryIntegrationTestSuite) createTestUnit(orderID kernel.UUID) *delivery.DeliveryUnit {
	return suite.createTestUnitAt(orderID, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) createTestUnitAt(
	orderID kernel.UUID, createdAt time.Time,
) *delivery.DeliveryUnit {
	deliveryID := kernel.NewUUID()
	itemIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	rawDeliveryID := deliveryID.Bytes()
	for _, itemID := range itemIDs {
		row := orderrepo.OrderItemDTO{
			ID:          itemID.Bytes(),
			OrderID:     orderID.Bytes(),
			ProductID:   kernel.NewUUID().Bytes(),
			ProductName: "Canvas Tote",
			Quantity:    1,
			UnitPrice:   1500,
			DeliveryID:  &rawDeliveryID,
		}
		suite.Require().NoError(suite.db.Create(&row).Error)
	}

	unit, err := delivery.NewDeliveryUnit(
		deliveryID, orderID, kernel.NewUUID(), nil, 0, itemIDs,
		"2 item(s) shipping from Berlin, Germany", nil, createdAt, delivery.Strict)
	suite.Require().NoError(err)
	return unit
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
