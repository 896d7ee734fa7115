package productrepo_test

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

	"commerce/internal/adapters/out/postgres/productrepo"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.repo = productrepo.NewGormProductRepository(db, &mockAggregateTracker{})
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ProductRepositoryIntegrationTestSuite) newProduct(stock int) *product.Product {
	p, err := product.NewProduct(
		kernel.NewUUID(), "widget", "a standard widget",
		decimal.RequireFromString("19.90"), stock, nil,
	)
	suite.Require().NoError(err)
	return p
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	p := suite.newProduct(5)

	err := suite.repo.Add(ctx, p)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(p.ID()))
	suite.Equal("widget", loaded.Name())
	suite.Equal("a standard widget", loaded.Description())
	suite.True(loaded.Price().Equal(p.Price()))
	suite.Equal(5, loaded.Stock())
	suite.Nil(loaded.Supplier())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_PersistsStockChange() {
	ctx := context.Background()
	p := suite.newProduct(5)

	err := suite.repo.Add(ctx, p)
	suite.Require().NoError(err)

	err = p.ReduceStock(3)
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, p)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(2, loaded.Stock())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetForUpdate_LoadsInsideTransaction() {
	ctx := context.Background()
	p := suite.newProduct(5)

	err := suite.repo.Add(ctx, p)
	suite.Require().NoError(err)

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := productrepo.NewGormProductRepository(tx, &mockAggregateTracker{})

	loaded, err := txRepo.GetForUpdate(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(5, loaded.Stock())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_UnknownProductReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repo.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_UnknownProductReturnsNotFound() {
	ctx := context.Background()
	p := suite.newProduct(1)

	err := suite.repo.Update(ctx, p)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
