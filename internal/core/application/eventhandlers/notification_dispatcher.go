package eventhandlers

import (
	"context"
	"log/slog"
	"time"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/core/domain/services"
	"travelorders/internal/core/ports"
)

// NotificationDispatcher reacts to committed order status changes by
// rendering the catalog notification and writing it to the durable store.
//
// Delivery is best-effort: the order mutation has already committed when the
// dispatcher runs, so a storage failure is never surfaced to the caller.
// Instead the notification is appended to the local fallback cache and
// logged; the replay job later re-applies cached entries to the store.
type NotificationDispatcher struct {
	uowFactory commands.NotificationUoWFactory
	catalog    services.NotificationCatalog
	cache      ports.NotificationCache
	logger     *slog.Logger
}

// NewNotificationDispatcher creates a dispatcher for order status events.
func NewNotificationDispatcher(
	uowFactory commands.NotificationUoWFactory,
	catalog services.NotificationCatalog,
	cache ports.NotificationCache,
	logger *slog.Logger,
) *NotificationDispatcher {
	return &NotificationDispatcher{
		uowFactory: uowFactory,
		catalog:    catalog,
		cache:      cache,
		logger:     logger,
	}
}

// PublishOrderStatusChanged renders and stores the notification for a
// committed status change, scoped to the order's owner.
func (d *NotificationDispatcher) PublishOrderStatusChanged(
	ctx context.Context,
	aggregate *order.Order,
	newStatus order.Status,
) {
	newNotification, err := d.catalog.Compose(aggregate, newStatus, time.Now().UTC())
	if err != nil {
		d.logger.ErrorContext(ctx, "compose status notification",
			slog.String("orderId", aggregate.ID().String()),
			slog.String("status", newStatus.String()),
			slog.Any("error", err),
		)
		return
	}

	if err = d.store(ctx, newNotification); err != nil {
		d.cache.Append(newNotification)
		d.logger.WarnContext(ctx, "notification store unreachable, cached locally",
			slog.String("notificationId", newNotification.ID().String()),
			slog.String("orderId", aggregate.ID().String()),
			slog.Any("error", err),
		)
		return
	}

	d.logger.InfoContext(ctx, "status notification dispatched",
		slog.String("notificationId", newNotification.ID().String()),
		slog.String("orderId", aggregate.ID().String()),
		slog.String("status", newStatus.String()),
	)
}

func (d *NotificationDispatcher) store(ctx context.Context, n *notification.Notification) error {
	uow := d.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().Add(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
