package commands

import (
	"context"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
)

// CreateNotificationCommandHandler handles direct notification creation.
// The notification starts unread and its text, type and recipient scope are
// fixed at creation.
type CreateNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewCreateNotificationCommandHandler creates a handler for notification creation.
// Requires a NotificationUoWFactory for transactional persistence.
func NewCreateNotificationCommandHandler(uowFactory NotificationUoWFactory) CreateNotificationCommandHandler {
	return CreateNotificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the notification creation command.
// Uses a transaction to ensure the notification is properly persisted or
// rolled back on error, and returns the created notification.
func (h *CreateNotificationCommandHandler) Handle(
	ctx context.Context,
	cmd CreateNotificationCommand,
) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newNotification, err := notification.NewNotification(
		kernel.NewUUID(),
		cmd.Title(),
		cmd.Message(),
		cmd.Type(),
		cmd.Recipient(),
		cmd.OrderID(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.NotificationRepository().Add(ctx, newNotification); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newNotification, nil
}
