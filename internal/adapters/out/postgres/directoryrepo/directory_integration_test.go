package directoryrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/directoryrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DirectoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	directory *directoryrepo.GormDirectory
}

func (suite *DirectoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(directoryrepo.Models()...))
	suite.directory = directoryrepo.NewGormDirectory(db, 5*time.Second)
}

func (suite *DirectoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DirectoryIntegrationTestSuite) TestCustomer() {
	ctx := context.Background()
	id := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&directoryrepo.UserDTO{
		ID: id.Bytes(), Name: "Jose Rizal", Email: "jose@example.com", Phone: "0917",
	}).Error)

	customer, err := suite.directory.Customer(ctx, id)
	suite.Require().NoError(err)
	suite.Equal("Jose Rizal", customer.Name)
	suite.Equal("jose@example.com", customer.Email)
	suite.Equal(id, customer.ID)

	_, err = suite.directory.Customer(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DirectoryIntegrationTestSuite) TestShopAndServicePrice() {
	ctx := context.Background()
	shopID := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&directoryrepo.ShopDTO{ID: shopID.Bytes(), ShopName: "Bubbles"}).Error)
	suite.Require().NoError(suite.db.Create(&directoryrepo.ShopServiceDTO{
		ID: kernel.NewUUID().Bytes(), ShopID: shopID.Bytes(), ServiceName: "Dry Clean", Price: decimal.RequireFromString("120.50"),
	}).Error)

	shop, err := suite.directory.Shop(ctx, shopID)
	suite.Require().NoError(err)
	suite.Equal("Bubbles", shop.Name)

	price, err := suite.directory.ServicePrice(ctx, shopID, "Dry Clean")
	suite.Require().NoError(err)
	suite.True(price.Equal(decimal.RequireFromString("120.5")))

	_, err = suite.directory.ServicePrice(ctx, shopID, "Ironing")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.directory.Shop(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DirectoryIntegrationTestSuite) TestExpiredTimeout_ReturnsPersistenceError() {
	directory := directoryrepo.NewGormDirectory(suite.db, time.Nanosecond)

	_, err := directory.Shop(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrPersistence)
}

func TestDirectoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryIntegrationTestSuite))
}
