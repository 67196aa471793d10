package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	"travelorders/internal/adapters/out/postgres/notificationrepo"
	"travelorders/internal/core/domain/model/actor"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/pkg/errs"

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

// NotificationRepositoryIntegrationTestSuite provides integration tests for
// NotificationRepository using PostgreSQL containers to verify persistence
// and visibility scoping behavior.
type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *notificationrepo.GormNotificationRepository
	tracker    *MockAggregateTracker
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&notificationrepo.NotificationDTO{}))
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notifications").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = notificationrepo.NewGormNotificationRepository(suite.db, suite.tracker)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_ValidNotification_Success() {
	ctx := context.Background()

	testNotification := suite.createUserNotification(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", testNotification.ID(), testNotification).Once()

	err := suite.repository.Add(ctx, testNotification)
	suite.Require().NoError(err)

	suite.assertNotificationCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGet_ExistingNotification_RoundTrips() {
	ctx := context.Background()

	userID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	recipient, err := notification.NewUserRecipient(userID)
	suite.Require().NoError(err)

	original, err := notification.NewNotification(
		kernel.NewUUID(), "Trip Approved", "Your trip to Lisbon has been approved!",
		notification.Success, recipient, &orderID, time.Now().UTC())
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("Trip Approved", retrieved.Title())
	suite.Equal("Your trip to Lisbon has been approved!", retrieved.Message())
	suite.Equal(notification.Success, retrieved.Type())
	suite.False(retrieved.Recipient().IsGlobal())
	suite.True(retrieved.Recipient().UserID().IsEqual(userID))
	suite.Require().NotNil(retrieved.OrderID())
	suite.True(retrieved.OrderID().IsEqual(orderID))
	suite.False(retrieved.IsRead())
	suite.Nil(retrieved.ReadAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGet_GlobalNotification_RoundTrips() {
	ctx := context.Background()

	original, err := notification.NewNotification(
		kernel.NewUUID(), "Announcement", "New travel policy in effect",
		notification.Info, notification.NewGlobalRecipient(), nil, time.Now().UTC())
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.Recipient().IsGlobal())
	suite.Nil(retrieved.OrderID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestUpdate_ReadStatePersists() {
	ctx := context.Background()

	testNotification := suite.createUserNotification(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", testNotification.ID(), testNotification).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testNotification))

	testNotification.MarkAsRead(time.Now().UTC())
	suite.Require().NoError(suite.repository.Update(ctx, testNotification))

	retrieved, err := suite.repository.Get(ctx, testNotification.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsRead())
	suite.NotNil(retrieved.ReadAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	testNotification := suite.createUserNotification(kernel.NewUUID())

	err := suite.repository.Update(ctx, testNotification)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestRemove_ExistingNotification_Deletes() {
	ctx := context.Background()

	testNotification := suite.createUserNotification(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", testNotification.ID(), testNotification).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testNotification))

	suite.Require().NoError(suite.repository.Remove(ctx, testNotification.ID()))

	suite.assertNotificationCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestRemove_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Remove(ctx, kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGetAllUnreadVisibleTo_UserScope() {
	ctx := context.Background()

	userID := kernel.NewUUID()
	user, err := actor.NewActor(userID, actor.RoleUser)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(5)

	own := suite.createUserNotification(userID)
	other := suite.createUserNotification(kernel.NewUUID())
	global := suite.createGlobalNotification()
	read := suite.createUserNotification(userID)
	read.MarkAsRead(time.Now().UTC())

	suite.Require().NoError(suite.repository.Add(ctx, own))
	suite.Require().NoError(suite.repository.Add(ctx, other))
	suite.Require().NoError(suite.repository.Add(ctx, global))
	suite.Require().NoError(suite.repository.Add(ctx, read))
	suite.Require().NoError(suite.repository.Update(ctx, read))

	visible, err := suite.repository.GetAllUnreadVisibleTo(ctx, user)
	suite.Require().NoError(err)

	suite.Len(visible, 2)
	for _, n := range visible {
		suite.False(n.IsRead())
		suite.True(n.IsVisibleTo(user))
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGetAllUnreadVisibleTo_AdminSeesAll() {
	ctx := context.Background()

	admin, err := actor.NewActor(kernel.NewUUID(), actor.RoleAdmin)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createUserNotification(kernel.NewUUID())))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createUserNotification(kernel.NewUUID())))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createGlobalNotification()))

	visible, err := suite.repository.GetAllUnreadVisibleTo(ctx, admin)
	suite.Require().NoError(err)

	suite.Len(visible, 3)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGetAllUnreadVisibleTo_NoMatches_ReturnsEmptySlice() {
	ctx := context.Background()

	user, err := actor.NewActor(kernel.NewUUID(), actor.RoleUser)
	suite.Require().NoError(err)

	visible, err := suite.repository.GetAllUnreadVisibleTo(ctx, user)
	suite.Require().NoError(err)

	suite.Empty(visible)
}

// createUserNotification creates an unread notification for the given user.
func (suite *NotificationRepositoryIntegrationTestSuite) createUserNotification(
	userID kernel.UUID,
) *notification.Notification {
	recipient, err := notification.NewUserRecipient(userID)
	suite.Require().NoError(err)

	n, err := notification.NewNotification(
		kernel.NewUUID(), "Trip Status Updated", "Your trip to Lisbon is now In Progress.",
		notification.Info, recipient, nil, time.Now().UTC())
	suite.Require().NoError(err)
	return n
}

// createGlobalNotification creates an unread notification visible to everyone.
func (suite *NotificationRepositoryIntegrationTestSuite) createGlobalNotification() *notification.Notification {
	n, err := notification.NewNotification(
		kernel.NewUUID(), "Announcement", "New travel policy in effect",
		notification.Info, notification.NewGlobalRecipient(), nil, time.Now().UTC())
	suite.Require().NoError(err)
	return n
}

// assertNotificationCount verifies the number of notifications in the database.
func (suite *NotificationRepositoryIntegrationTestSuite) assertNotificationCount(expected int) {
	var count int64
	err := suite.db.Model(&notificationrepo.NotificationDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
