package commands

import (
	"context"
	"time"

	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/pkg/errs"
)

// MarkNotificationReadCommandHandler marks a single notification as read.
// Marking authorization equals read visibility.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for marking
// notifications as read.
func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-as-read command.
//
// Marking an already-read notification succeeds without changing readAt.
// Fails with an ObjectNotFoundError when the notification does not exist and
// a NotAuthorizedError when it is outside the actor's visible scope.
func (h *MarkNotificationReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkNotificationReadCommand,
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

	notificationRepo := uow.NotificationRepository()
	aggregate, err := notificationRepo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return nil, err
	}

	if !aggregate.IsVisibleTo(cmd.Actor()) {
		return nil, errs.NewNotAuthorizedError("notification is outside the actor's visible scope")
	}

	aggregate.MarkAsRead(time.Now().UTC())

	if err = notificationRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
