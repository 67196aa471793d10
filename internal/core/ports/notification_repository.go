package ports

import (
	"context"

	"travelorders/internal/core/domain/model/actor"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notification
// aggregates. Provides methods for storing, retrieving, and querying
// notifications by recipient scope.
type NotificationRepository interface {
	// Add persists a new notification aggregate to storage.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification aggregate.
	// Only the read state ever changes after creation.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	// Returns an ObjectNotFoundError when no such notification exists.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetAllUnreadVisibleTo retrieves every unread notification within the
	// actor's visible scope (their own plus global; everything for admins).
	// Used to snapshot the target set of a mark-all-as-read operation.
	GetAllUnreadVisibleTo(ctx context.Context, a actor.Actor) ([]*notification.Notification, error)

	// Remove deletes a notification by identifier.
	// Returns an ObjectNotFoundError when no such notification exists.
	Remove(ctx context.Context, id kernel.UUID) error
}
