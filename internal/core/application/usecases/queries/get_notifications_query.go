package queries

import (
	"errors"
	"time"

	"travelorders/internal/core/domain/model/actor"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/pkg/guard"
)

var (
	ErrGetNotificationsQueryIsNotConstructed = errors.New(
		"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
	)
)

// GetNotificationsQuery retrieves notifications visible to an actor: their
// own plus global ones, or everything for administrators. Optionally limited
// to unread notifications.
type GetNotificationsQuery struct {
	actor      actor.Actor
	unreadOnly bool

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for the actor's visible notifications.
func NewGetNotificationsQuery(a actor.Actor, unreadOnly bool) (GetNotificationsQuery, error) {
	q := GetNotificationsQuery{
		unreadOnly: unreadOnly,
		guard:      guard.NewConstructorGuard(),
	}

	if err := a.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}

	q.actor = a
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// Actor returns the actor whose visible notifications are listed.
func (q GetNotificationsQuery) Actor() actor.Actor {
	return q.actor
}

// UnreadOnly reports whether read notifications are excluded.
func (q GetNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

// GetNotificationsQueryResponse is the read model for a listed notification.
type GetNotificationsQueryResponse struct {
	ID        kernel.UUID
	Title     string
	Message   string
	Type      notification.Type
	UserID    *kernel.UUID
	Global    bool
	OrderID   *kernel.UUID
	Read      bool
	ReadAt    *time.Time
	CreatedAt time.Time
}
