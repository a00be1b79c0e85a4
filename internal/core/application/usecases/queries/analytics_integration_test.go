package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/workerrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/worker"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AnalyticsIntegrationTestSuite exercises the KPI and worker performance
// query handlers against a real PostgreSQL database.
type AnalyticsIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *AnalyticsIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&workerrepo.WorkerDTO{}, &orderrepo.OrderDTO{})
	suite.Require().NoError(err)
}

func (suite *AnalyticsIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, workers").Error
	suite.Require().NoError(err)
}

func (suite *AnalyticsIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *AnalyticsIntegrationTestSuite) saveWorker(name string) *worker.Worker {
	w, err := worker.NewWorker(kernel.NewUUID(), name, "", "")
	suite.Require().NoError(err)

	repo := workerrepo.NewGormWorkerRepository(suite.db, nopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), w))
	return w
}

// saveReadyOrder stores an order completed with the given pick time.
func (suite *AnalyticsIntegrationTestSuite) saveReadyOrder(
	promisedMinutes int,
	pickTimeMinutes int,
	createdAt time.Time,
	workerID *kernel.UUID,
) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), order.ChannelPickup, promisedMinutes, workerID, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(o.RecordPickTime(pickTimeMinutes))
	suite.Require().NoError(o.ChangeStatus(order.StatusReady))

	repo := orderrepo.NewGormOrderRepository(suite.db, nopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), o))
	return o
}

func (suite *AnalyticsIntegrationTestSuite) savePendingOrder(createdAt time.Time) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), order.ChannelPickup, 60, nil, createdAt)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, nopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), o))
	return o
}

func (suite *AnalyticsIntegrationTestSuite) TestGetKpis_EmptyWindow() {
	handler := queries.NewGetKpisQueryHandler(suite.db)

	query, err := queries.NewGetKpisQuery(time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC), queries.DefaultKpiWindow)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(0, result.OrdersCount)
	suite.Equal(0, result.CompletedCount)
	suite.Equal(0, result.OnTimeCount)
	suite.Equal(0.0, result.OnTimeRate)
	suite.Nil(result.AvgPickTimeMinutes)
}

func (suite *AnalyticsIntegrationTestSuite) TestGetKpis_MixedOrders() {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	// On time: pick 38 against a 60 minute promise.
	suite.saveReadyOrder(60, 38, now.Add(-2*time.Hour), nil)
	// Late: pick 50 against a 45 minute promise.
	suite.saveReadyOrder(45, 50, now.Add(-3*time.Hour), nil)
	// Still pending, counts toward volume only.
	suite.savePendingOrder(now.Add(-time.Hour))

	handler := queries.NewGetKpisQueryHandler(suite.db)

	query, err := queries.NewGetKpisQuery(now, queries.DefaultKpiWindow)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(3, result.OrdersCount)
	suite.Equal(2, result.CompletedCount)
	suite.Equal(1, result.OnTimeCount)
	suite.InDelta(1.0/3.0, result.OnTimeRate, 0.0001)
	suite.Require().NotNil(result.AvgPickTimeMinutes)
	suite.InDelta(44.0, *result.AvgPickTimeMinutes, 0.0001)
}

func (suite *AnalyticsIntegrationTestSuite) TestGetKpis_WindowBoundaries() {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	lower := now.Add(-queries.DefaultKpiWindow)

	suite.savePendingOrder(lower) // exactly at the lower bound is included
	suite.savePendingOrder(lower.Add(-time.Second))
	suite.savePendingOrder(now) // at the upper bound is already the next window

	handler := queries.NewGetKpisQueryHandler(suite.db)

	query, err := queries.NewGetKpisQuery(now, queries.DefaultKpiWindow)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(1, result.OrdersCount)
}

func (suite *AnalyticsIntegrationTestSuite) TestGetWorkerPerformance_SummarizesOwnOrdersOnly() {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	w := suite.saveWorker("Dana")
	other := suite.saveWorker("Elliot")

	workerID := w.ID()
	otherID := other.ID()
	suite.saveReadyOrder(60, 38, now.Add(-2*time.Hour), &workerID)
	suite.saveReadyOrder(45, 50, now.Add(-3*time.Hour), &workerID)
	suite.saveReadyOrder(60, 10, now.Add(-time.Hour), &otherID)

	handler := queries.NewGetWorkerPerformanceQueryHandler(suite.db)

	query, err := queries.NewGetWorkerPerformanceQuery(w.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.WorkerID.IsEqual(w.ID()))
	suite.Equal(2, result.OrdersAssigned)
	suite.Equal(1, result.OnTimeOrders)
	suite.InDelta(0.5, result.OnTimeRate, 0.0001)
	suite.Require().NotNil(result.AvgPickTimeMinutes)
	suite.InDelta(44.0, *result.AvgPickTimeMinutes, 0.0001)
}

func (suite *AnalyticsIntegrationTestSuite) TestGetWorkerPerformance_WorkerWithoutOrders() {
	w := suite.saveWorker("Dana")

	handler := queries.NewGetWorkerPerformanceQueryHandler(suite.db)

	query, err := queries.NewGetWorkerPerformanceQuery(w.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(0, result.OrdersAssigned)
	suite.Equal(0.0, result.OnTimeRate)
	suite.Nil(result.AvgPickTimeMinutes)
}

func (suite *AnalyticsIntegrationTestSuite) TestGetWorkerPerformance_UnknownWorker() {
	handler := queries.NewGetWorkerPerformanceQueryHandler(suite.db)

	query, err := queries.NewGetWorkerPerformanceQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestAnalyticsIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(AnalyticsIntegrationTestSuite))
}
