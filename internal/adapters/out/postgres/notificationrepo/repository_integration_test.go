package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/notificationrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *notificationrepo.GormNotificationRepository
	tracker    *MockAggregateTracker
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&notificationrepo.NotificationDTO{}))
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notifications").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = notificationrepo.NewGormNotificationRepository(suite.db, suite.tracker)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_ThenAnswer() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(),
		"The shop set the price per kilo to ₱50.00 for your order.", "Suds & Co", &orderID, time.Now())
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", n.ID(), n).Once()
	suite.Require().NoError(suite.repository.Add(ctx, n))

	loaded, err := suite.repository.GetForUpdate(ctx, n.ID())
	suite.Require().NoError(err)
	suite.Equal(notification.Pending, loaded.Status())
	suite.False(loaded.IsRead())
	suite.Equal("Suds & Co", loaded.FromName())
	suite.Require().NotNil(loaded.LinkedOrderID())
	suite.Equal(orderID, *loaded.LinkedOrderID())

	changed, err := loaded.Accept()
	suite.Require().NoError(err)
	suite.True(changed)
	suite.tracker.On("TrackAggregate", loaded.ID(), loaded).Once()
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.GetForUpdate(ctx, n.ID())
	suite.Require().NoError(err)
	suite.Equal(notification.Accepted, reloaded.Status())
	suite.True(reloaded.IsRead())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_WithoutLinkedOrder() {
	ctx := context.Background()
	n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(), "Welcome", "", nil, time.Now())
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", n.ID(), n).Once()
	suite.Require().NoError(suite.repository.Add(ctx, n))

	loaded, err := suite.repository.GetForUpdate(ctx, n.ID())
	suite.Require().NoError(err)
	suite.Nil(loaded.LinkedOrderID())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestMissingNotification() {
	ctx := context.Background()

	_, err := suite.repository.GetForUpdate(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(), "Hi", "", nil, time.Now())
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.repository.Update(ctx, n), errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
