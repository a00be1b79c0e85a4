package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/inventoryrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/workerrepo"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/worker"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&workerrepo.WorkerDTO{}, &orderrepo.OrderDTO{}, &inventoryrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, workers, inventory_items").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.WorkerRepository(), "First instance should provide worker repository")
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.InventoryRepository(), "First instance should provide inventory repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Order persists after commit, visible to a fresh unit of work.
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_MultiRepositoryTransaction verifies multiple repository operations
// within a single transaction work atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testWorker := createTestWorker()
	testOrder := createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.WorkerRepository().Add(ctx, testWorker)
	suite.Require().NoError(err)

	exists, err := uow.WorkerRepository().Exists(ctx, testWorker.ID())
	suite.Require().NoError(err)
	suite.True(exists, "Worker added in the transaction should resolve in the same transaction")

	err = testOrder.AssignWorker(testWorker.ID())
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedOrder.Worker())
	suite.True(retrievedOrder.Worker().IsEqual(testWorker.ID()))

	retrievedWorker, err := newUow.WorkerRepository().Get(ctx, testWorker.ID())
	suite.Require().NoError(err)
	suite.Equal(testWorker.Name(), retrievedWorker.Name())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testWorker := createTestWorker()
	testItem := createTestItem()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.WorkerRepository().Add(ctx, testWorker)
	suite.Require().NoError(err)

	err = uow.InventoryRepository().Add(ctx, testItem)
	suite.Require().NoError(err)

	_, err = uow.WorkerRepository().Get(ctx, testWorker.ID())
	suite.Require().NoError(err)

	_, err = uow.InventoryRepository().Get(ctx, testItem.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.WorkerRepository().Get(ctx, testWorker.ID())
	suite.Require().Error(err, "Worker should not exist after rollback")

	_, err = newUow.InventoryRepository().Get(ctx, testItem.ID())
	suite.Require().Error(err, "Item should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder()
	order2 := createTestOrder()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_OrderFulfillmentWorkflow tests the complete pick-pack-ready
// workflow involving multiple aggregates within transactions.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderFulfillmentWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testWorker := createTestWorker()
	err = uow.WorkerRepository().Add(ctx, testWorker)
	suite.Require().NoError(err)

	testOrder := createTestOrder()
	err = testOrder.AssignWorker(testWorker.ID())
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// The order moves through the lifecycle in a second transaction.
	uow = suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	working, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = working.ChangeStatus(order.StatusPicked)
	suite.Require().NoError(err)
	err = working.RecordPickTime(38)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, working)
	suite.Require().NoError(err)

	err = working.ChangeStatus(order.StatusReady)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, working)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	final, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusReady, final.Status())
	suite.Require().NotNil(final.PickTimeMinutes())
	suite.Equal(38, *final.PickTimeMinutes())
	suite.True(final.IsOnTime())
}

// createTestWorker creates a valid worker for testing purposes.
func createTestWorker() *worker.Worker {
	testWorker, _ := worker.NewWorker(kernel.NewUUID(), "Test Worker", "", "")
	return testWorker
}

// createTestOrder creates a valid order for testing purposes.
func createTestOrder() *order.Order {
	testOrder, _ := order.NewOrder(
		kernel.NewUUID(), order.ChannelPickup, 60, nil, time.Now().UTC())
	return testOrder
}

// createTestItem creates a valid inventory item for testing purposes.
func createTestItem() *inventory.Item {
	testItem, _ := inventory.NewItem(
		kernel.NewUUID(), "TST-0001", "Test Item", 5, "Aisle 1")
	return testItem
}

// TestUnitOfWorkIntegrationTestSuite runs the integration test suite.
func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
