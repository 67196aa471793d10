package commands

import (
	"context"
	"time"

	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/domain/services"
	"travelorders/internal/pkg/errs"
)

// CreateOrderStatusNotificationCommandHandler stores the catalog notification
// for an order status on behalf of a client. The order itself is read but
// never mutated, so both repositories share one unit of work.
type CreateOrderStatusNotificationCommandHandler struct {
	uowFactory UoWFactory
	catalog    services.NotificationCatalog
}

// NewCreateOrderStatusNotificationCommandHandler creates a handler for
// client-requested status notifications. Requires a cross-aggregate
// UoWFactory and the notification catalog.
func NewCreateOrderStatusNotificationCommandHandler(
	uowFactory UoWFactory,
	catalog services.NotificationCatalog,
) CreateOrderStatusNotificationCommandHandler {
	return CreateOrderStatusNotificationCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the status notification command.
//
// Fails with an ObjectNotFoundError when the order does not exist or is not
// visible to the actor. The notification is scoped to the order's owner.
func (h *CreateOrderStatusNotificationCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderStatusNotificationCommand,
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !aggregate.CanBeMutatedBy(cmd.Actor()) {
		return nil, errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	newNotification, err := h.catalog.Compose(aggregate, cmd.Status(), time.Now().UTC())
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
