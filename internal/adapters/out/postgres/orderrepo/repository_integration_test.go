package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"commerce/internal/adapters/out/postgres/orderrepo"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_lines CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(lineCount int) *order.Order {
	lines := make([]*order.Line, 0, lineCount)
	for i := range lineCount {
		line, err := order.NewLine(
			kernel.NewUUID(), kernel.NewUUID(), i+1, decimal.RequireFromString("9.99"),
		)
		suite.Require().NoError(err)
		lines = append(lines, line)
	}

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), lines)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	o := suite.newOrder(2)

	err := suite.repo.Add(ctx, o)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(o.ID()))
	suite.True(loaded.ClientID().IsEqual(o.ClientID()))
	suite.Equal(order.Pending, loaded.Status())
	suite.True(loaded.Total().Equal(o.Total()))
	suite.Len(loaded.Lines(), 2)

	want := make(map[string]*order.Line, len(o.Lines()))
	for _, line := range o.Lines() {
		want[line.ID().String()] = line
	}

	for _, line := range loaded.Lines() {
		suite.True(line.OrderID().IsEqual(o.ID()))

		expected, ok := want[line.ID().String()]
		suite.Require().True(ok)
		suite.True(expected.ProductID().IsEqual(line.ProductID()))
		suite.Equal(expected.Quantity(), line.Quantity())
		suite.True(expected.UnitPrice().Equal(line.UnitPrice()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatus() {
	ctx := context.Background()
	o := suite.newOrder(1)

	err := suite.repo.Add(ctx, o)
	suite.Require().NoError(err)

	err = o.UpdateStatus(order.Validated)
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, o)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Validated, loaded.Status())
	suite.Len(loaded.Lines(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrderReturnsNotFound() {
	ctx := context.Background()
	o := suite.newOrder(1)

	err := suite.repo.Update(ctx, o)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownOrderReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repo.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
