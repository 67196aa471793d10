// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence.
package notificationrepo

import (
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting
// notification aggregates. UserID is null for global notifications; OrderID
// is null when the notification is not tied to an order.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string
	Message   string
	Ntype     int        `gorm:"column:ntype"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Global    bool
	OrderID   *uuid.UUID `gorm:"type:uuid;index"`
	Read      bool       `gorm:"index"`
	ReadAt    *time.Time
	CreatedAt time.Time
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification domain aggregate to its database representation.
func fromDomain(n *notification.Notification) NotificationDTO {
	var userID *uuid.UUID
	if !n.Recipient().IsGlobal() {
		raw := n.Recipient().UserID().Bytes()
		userID = &raw
	}

	var orderID *uuid.UUID
	if id := n.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return NotificationDTO{
		ID:        n.ID().Bytes(),
		Title:     n.Title(),
		Message:   n.Message(),
		Ntype:     int(n.Type()),
		UserID:    userID,
		Global:    n.Recipient().IsGlobal(),
		OrderID:   orderID,
		Read:      n.IsRead(),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
	}
}

// toDomain converts a database DTO to a notification domain aggregate.
// Reconstructs the complete aggregate including read state using RestoreNotification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipient := notification.NewGlobalRecipient()
	if !dto.Global && dto.UserID != nil {
		userID, idErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if idErr != nil {
			return nil, idErr
		}

		recipient, err = notification.NewUserRecipient(userID)
		if err != nil {
			return nil, err
		}
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}

		orderID = &oID
	}

	return notification.RestoreNotification(
		id,
		dto.Title,
		dto.Message,
		notification.Type(dto.Ntype),
		recipient,
		orderID,
		dto.Read,
		dto.ReadAt,
		dto.CreatedAt,
	)
}
