package queries_test

import (
	"context"
	"testing"
	"time"

	"travelorders/internal/adapters/out/postgres/notificationrepo"
	"travelorders/internal/core/application/usecases/queries"
	"travelorders/internal/core/domain/model/actor"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetNotificationsQueryHandlerTestSuite struct {
	suite.Suite
	container        *postgres.PostgresContainer
	db               *gorm.DB
	handler          queries.GetNotificationsQueryHandler
	notificationRepo *notificationrepo.GormNotificationRepository
}

func (suite *GetNotificationsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&notificationrepo.NotificationDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetNotificationsQueryHandler(db)
	suite.notificationRepo = notificationrepo.NewGormNotificationRepository(db, &mockAggregateTracker{})
}

func (suite *GetNotificationsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetNotificationsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE notifications").Error
	suite.Require().NoError(err)
}

func (suite *GetNotificationsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	a := suite.newActor(actor.RoleUser)
	query, err := queries.NewGetNotificationsQuery(a, false)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetNotificationsQueryHandlerTestSuite) TestHandle_UserSeesOwnAndGlobal() {
	a := suite.newActor(actor.RoleUser)

	own := suite.seedUserNotification(a.ID(), time.Now().UTC())
	global := suite.seedGlobalNotification(time.Now().UTC())
	suite.seedUserNotification(kernel.NewUUID(), time.Now().UTC())

	query, err := queries.NewGetNotificationsQuery(a, false)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}
	suite.True(resultIDs[own.ID()], "Own notification should be visible")
	suite.True(resultIDs[global.ID()], "Global notification should be visible")
}

func (suite *GetNotificationsQueryHandlerTestSuite) TestHandle_AdminSeesAll() {
	admin := suite.newActor(actor.RoleAdmin)

	suite.seedUserNotification(kernel.NewUUID(), time.Now().UTC())
	suite.seedUserNotification(kernel.NewUUID(), time.Now().UTC())
	suite.seedGlobalNotification(time.Now().UTC())

	query, err := queries.NewGetNotificationsQuery(admin, false)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)
}

func (suite *GetNotificationsQueryHandlerTestSuite) TestHandle_UnreadOnlyExcludesRead() {
	a := suite.newActor(actor.RoleUser)

	unread := suite.seedUserNotification(a.ID(), time.Now().UTC())
	read := suite.seedUserNotification(a.ID(), time.Now().UTC())
	read.MarkAsRead(time.Now().UTC())
	suite.Require().NoError(suite.notificationRepo.Update(context.Background(), read))

	query, err := queries.NewGetNotificationsQuery(a, true)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(unread.ID(), result[0].ID)
	suite.False(result[0].Read)
}

func (suite *GetNotificationsQueryHandlerTestSuite) TestHandle_ResultsAreSortedNewestFirst() {
	a := suite.newActor(actor.RoleUser)

	now := time.Now().UTC()
	oldest := suite.seedUserNotification(a.ID(), now.Add(-2*time.Hour))
	newest := suite.seedUserNotification(a.ID(), now)

	query, err := queries.NewGetNotificationsQuery(a, false)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newest.ID(), result[0].ID)
	suite.Equal(oldest.ID(), result[1].ID)
}

func (suite *GetNotificationsQueryHandlerTestSuite) TestHandle_MapsAllReadModelFields() {
	a := suite.newActor(actor.RoleUser)

	orderID := kernel.NewUUID()
	recipient, err := notification.NewUserRecipient(a.ID())
	suite.Require().NoError(err)

	seeded, err := notification.NewNotification(
		kernel.NewUUID(), "Trip Approved", "Your trip to Lisbon has been approved!",
		notification.Success, recipient, &orderID, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.notificationRepo.Add(context.Background(), seeded))

	query, err := queries.NewGetNotificationsQuery(a, false)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Trip Approved", result[0].Title)
	suite.Equal("Your trip to Lisbon has been approved!", result[0].Message)
	suite.Equal(notification.Success, result[0].Type)
	suite.Require().NotNil(result[0].UserID)
	suite.True(result[0].UserID.IsEqual(a.ID()))
	suite.False(result[0].Global)
	suite.Require().NotNil(result[0].OrderID)
	suite.True(result[0].OrderID.IsEqual(orderID))
	suite.False(result[0].Read)
	suite.Nil(result[0].ReadAt)
}

func (suite *GetNotificationsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetNotificationsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetNotificationsQuery constructor")
}

func (suite *GetNotificationsQueryHandlerTestSuite) newActor(role actor.Role) actor.Actor {
	a, err := actor.NewActor(kernel.NewUUID(), role)
	suite.Require().NoError(err)
	return a
}

func (suite *GetNotificationsQueryHandlerTestSuite) seedUserNotification(
	userID kernel.UUID, createdAt time.Time,
) *notification.Notification {
	recipient, err := notification.NewUserRecipient(userID)
	suite.Require().NoError(err)

	seeded, err := notification.NewNotification(
		kernel.NewUUID(), "Trip Status Updated", "Your trip to Lisbon is now In Progress.",
		notification.Info, recipient, nil, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.notificationRepo.Add(context.Background(), seeded))
	return seeded
}

func (suite *GetNotificationsQueryHandlerTestSuite) seedGlobalNotification(
	createdAt time.Time,
) *notification.Notification {
	seeded, err := notification.NewNotification(
		kernel.NewUUID(), "Announcement", "New travel policy in effect",
		notification.Info, notification.NewGlobalRecipient(), nil, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.notificationRepo.Add(context.Background(), seeded))
	return seeded
}

func TestGetNotificationsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetNotificationsQueryHandlerTestSuite))
}
