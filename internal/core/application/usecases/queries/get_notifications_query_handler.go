package queries

import (
	"context"
	"database/sql"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNotificationsQueryHandler retrieves notification read models from the
// database. Store failures are wrapped as StoreUnavailableError so callers
// can fall back to the local cache.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for notification list queries.
// Requires a GORM database connection for query execution.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the query to retrieve the actor's visible notifications.
// Actors see their own notifications plus global ones; administrators see
// everything. Results are sorted newest first.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			title,
			message,
			ntype,
			user_id,
			global,
			order_id,
			read,
			read_at,
			created_at
		FROM notifications
	`
	args := make([]any, 0, 1)
	conditions := make([]string, 0, 2)

	if !query.Actor().IsAdmin() {
		conditions = append(conditions, "(global OR user_id = ?)")
		args = append(args, query.Actor().ID().Bytes())
	}
	if query.UnreadOnly() {
		conditions = append(conditions, "NOT read")
	}

	for i, condition := range conditions {
		if i == 0 {
			sqlQuery += " WHERE " + condition
		} else {
			sqlQuery += " AND " + condition
		}
	}
	sqlQuery += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableErrorWithCause("notifications", err)
	}
	defer rows.Close()

	notifications := make([]GetNotificationsQueryResponse, 0)
	for rows.Next() {
		notificationResp, scanErr := scanNotificationRow(rows)
		if scanErr != nil {
			return nil, errs.NewStoreUnavailableErrorWithCause("notifications", scanErr)
		}
		notifications = append(notifications, notificationResp)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreUnavailableErrorWithCause("notifications", err)
	}

	return notifications, nil
}

func scanNotificationRow(rows *sql.Rows) (GetNotificationsQueryResponse, error) {
	var notificationResp GetNotificationsQueryResponse
	var id uuid.UUID
	var userID, orderID uuid.NullUUID
	var ntype int

	err := rows.Scan(
		&id,
		&notificationResp.Title,
		&notificationResp.Message,
		&ntype,
		&userID,
		&notificationResp.Global,
		&orderID,
		&notificationResp.Read,
		&notificationResp.ReadAt,
		&notificationResp.CreatedAt,
	)
	if err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	notificationID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetNotificationsQueryResponse{}, err
	}
	notificationResp.ID = notificationID
	notificationResp.Type = notification.Type(ntype)

	if userID.Valid {
		scopedUserID, idErr := kernel.UUIDFromBytes(userID.UUID[:])
		if idErr != nil {
			return GetNotificationsQueryResponse{}, idErr
		}
		notificationResp.UserID = &scopedUserID
	}

	if orderID.Valid {
		relatedOrderID, idErr := kernel.UUIDFromBytes(orderID.UUID[:])
		if idErr != nil {
			return GetNotificationsQueryResponse{}, idErr
		}
		notificationResp.OrderID = &relatedOrderID
	}

	return notificationResp, nil
}
