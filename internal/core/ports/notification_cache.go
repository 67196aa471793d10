package ports

import (
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
)

// NotificationCache is the local, non-authoritative fallback mirror used when
// the durable notification store is unreachable. It is bounded and ordered
// newest first; entries are purely a degraded-mode convenience for the acting
// session and carry no cross-session consistency guarantee.
type NotificationCache interface {
	// Append adds a notification at the head of the cache, dropping the
	// oldest entry once the bound is reached.
	Append(aggregate *notification.Notification)

	// GetAll returns the cached notifications, newest first.
	GetAll() []*notification.Notification

	// MarkAsRead flips the cached copy's read state, if present.
	MarkAsRead(id kernel.UUID)

	// Remove drops the cached copy, if present.
	Remove(id kernel.UUID)

	// Drain removes and returns every cached notification, oldest first,
	// so a replay can re-apply them to the durable store in creation order.
	Drain() []*notification.Notification
}
