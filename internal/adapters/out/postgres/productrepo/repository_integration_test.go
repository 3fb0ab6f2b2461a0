package productrepo_test

import (
	"context"
	"testing"
	"time"

	"comptoirs/internal/adapters/out/postgres/productrepo"
	"comptoirs/internal/core/domain/model/kernel"
	"comptoirs/internal/core/domain/model/product"
	"comptoirs/internal/pkg/errs"

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

// ProductRepositoryIntegrationTestSuite provides integration tests for
// ProductRepository using PostgreSQL containers.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_ExistingProduct_RoundTrips() {
	ctx := context.Background()

	testProduct := suite.createTestProduct(17, 4)
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()
	err := suite.repository.Add(ctx, testProduct)
	suite.Require().NoError(err)

	retrievedProduct, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)

	suite.True(testProduct.ID().IsEqual(retrievedProduct.ID()))
	suite.Equal("Chai", retrievedProduct.Name())
	suite.Equal(17, retrievedProduct.UnitsInStock())
	suite.Equal(4, retrievedProduct.UnitsOnOrder())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedProduct, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedProduct)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_CountersReachZero_Persisted() {
	ctx := context.Background()

	testProduct := suite.createTestProduct(5, 0)
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Twice()
	err := suite.repository.Add(ctx, testProduct)
	suite.Require().NoError(err)

	// Drain the stock completely; the zero value must still be written.
	suite.Require().NoError(testProduct.RemoveFromStock(5))

	err = suite.repository.Update(ctx, testProduct)
	suite.Require().NoError(err)

	retrievedProduct, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(0, retrievedProduct.UnitsInStock())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_NonExistentProduct_ReturnsError() {
	ctx := context.Background()

	nonExistentProduct := suite.createTestProduct(1, 0)

	err := suite.repository.Update(ctx, nonExistentProduct)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) createTestProduct(
	unitsInStock int, unitsOnOrder int,
) *product.Product {
	testProduct, err := product.RestoreProduct(kernel.NewUUID(), "Chai", unitsInStock, unitsOnOrder)
	suite.Require().NoError(err)
	return testProduct
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
