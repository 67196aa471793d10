package commands

import (
	"context"

	"travelorders/internal/pkg/errs"
)

// RemoveNotificationCommandHandler deletes a notification from the durable
// store. Deletion authorization equals read visibility.
type RemoveNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewRemoveNotificationCommandHandler creates a handler for notification removal.
func NewRemoveNotificationCommandHandler(uowFactory NotificationUoWFactory) RemoveNotificationCommandHandler {
	return RemoveNotificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
// Fails with an ObjectNotFoundError when the notification does not exist and
// a NotAuthorizedError when it is outside the actor's visible scope.
func (h *RemoveNotificationCommandHandler) Handle(ctx context.Context, cmd RemoveNotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notificationRepo := uow.NotificationRepository()
	aggregate, err := notificationRepo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	if !aggregate.IsVisibleTo(cmd.Actor()) {
		return errs.NewNotAuthorizedError("notification is outside the actor's visible scope")
	}

	if err = notificationRepo.Remove(ctx, cmd.NotificationID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
