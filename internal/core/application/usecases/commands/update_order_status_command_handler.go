package commands

import (
	"context"

	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/pkg/errs"
)

// OrderStatusChangedPublisher receives the workflow event fired after a
// status transition commits. The notification dispatcher implements this
// interface; publishing happens outside the transaction so a notification
// failure can never roll back an order mutation.
type OrderStatusChangedPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order, newStatus order.Status)
}

// UpdateOrderStatusCommandHandler enforces the status-transition rules of the
// approval workflow.
//
// Authorization policy: administrators may change any order's status; other
// actors only their own. The single hard business rule, that an approved
// order can never be cancelled, applies to every actor including
// administrators.
//
// The order row is read with a row-level lock so that two racing transitions
// cannot both pass the approved-to-cancelled check.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  OrderStatusChangedPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
// Requires an OrderUoWFactory for transactional persistence and a publisher
// notified after each committed transition.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher OrderStatusChangedPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status transition command.
//
// Fails with an ObjectNotFoundError when the order does not exist, a
// NotAuthorizedError when the actor may not mutate the order, and a
// ConflictError when cancelling an approved order. On success the mutation
// is committed and the order-status-changed event is published.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !aggregate.CanBeMutatedBy(cmd.Actor()) {
		return nil, errs.NewNotAuthorizedError("actor may not change this order's status")
	}

	if err = aggregate.ChangeStatus(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.PublishOrderStatusChanged(ctx, aggregate, cmd.NewStatus())

	return aggregate, nil
}
