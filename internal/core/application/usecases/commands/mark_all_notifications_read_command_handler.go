package commands

import (
	"context"
	"time"
)

// MarkAllNotificationsReadCommandHandler marks every unread notification in
// the actor's visible scope as read.
//
// The unread set is snapshotted inside the transaction, so notifications
// created concurrently with the sweep stay unread.
type MarkAllNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkAllNotificationsReadCommandHandler creates a handler for the
// mark-all-as-read sweep.
func NewMarkAllNotificationsReadCommandHandler(
	uowFactory NotificationUoWFactory,
) MarkAllNotificationsReadCommandHandler {
	return MarkAllNotificationsReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-all-as-read command.
// Returns the number of notifications transitioned to read. An empty unread
// set is a successful no-op.
func (h *MarkAllNotificationsReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkAllNotificationsReadCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notificationRepo := uow.NotificationRepository()
	unread, err := notificationRepo.GetAllUnreadVisibleTo(ctx, cmd.Actor())
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	for _, aggregate := range unread {
		aggregate.MarkAsRead(now)

		if err = notificationRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(unread), nil
}
