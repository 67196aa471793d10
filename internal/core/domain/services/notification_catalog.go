package services

import (
	"fmt"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/domain/model/order"
)

// NotificationCatalog is a domain service mapping an order status change to
// the localized title, message and type of the notification announcing it.
//
// The mapping is pure: no side effects, no store access. It is used by the
// dispatcher to render the message before it is stored.
//
// Catalog:
//   - approved  -> "Trip Approved" (success)
//   - cancelled -> "Trip Cancelled" (error)
//   - anything else -> "Trip Status Updated" (info), interpolating the
//     status's human-readable label
type NotificationCatalog struct{}

// NewNotificationCatalog creates a new NotificationCatalog instance.
func NewNotificationCatalog() NotificationCatalog {
	return NotificationCatalog{}
}

// CatalogEntry is the rendered text for a status-change notification.
type CatalogEntry struct {
	Title   string
	Message string
	Type    notification.Type
}

// EntryFor resolves the catalog entry for a status change on the given order.
func (c NotificationCatalog) EntryFor(o *order.Order, newStatus order.Status) CatalogEntry {
	switch newStatus {
	case order.Approved:
		return CatalogEntry{
			Title:   "Trip Approved",
			Message: fmt.Sprintf("Your trip to %s has been approved!", o.Destination()),
			Type:    notification.Success,
		}
	case order.Cancelled:
		return CatalogEntry{
			Title:   "Trip Cancelled",
			Message: fmt.Sprintf("Your trip to %s has been cancelled.", o.Destination()),
			Type:    notification.Error,
		}
	default:
		return CatalogEntry{
			Title:   "Trip Status Updated",
			Message: fmt.Sprintf("Your trip to %s is now %s.", o.Destination(), newStatus.Label()),
			Type:    notification.Info,
		}
	}
}

// Compose resolves the catalog entry for the status change and builds the
// Notification announcing it, scoped to the order's owner.
//
// Parameters:
//   - o: The order whose status changed (must be valid)
//   - newStatus: The status the order transitioned to
//   - now: Creation timestamp for the notification
//
// Returns:
//   - *notification.Notification: The composed, unread notification
//   - error: Validation errors from the order or notification invariants
func (c NotificationCatalog) Compose(
	o *order.Order,
	newStatus order.Status,
	now time.Time,
) (*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	entry := c.EntryFor(o, newStatus)

	recipient, err := notification.NewUserRecipient(o.OwnerID())
	if err != nil {
		return nil, err
	}

	orderID := o.ID()
	return notification.NewNotification(
		kernel.NewUUID(),
		entry.Title,
		entry.Message,
		entry.Type,
		recipient,
		&orderID,
		now,
	)
}
