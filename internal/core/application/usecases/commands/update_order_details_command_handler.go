package commands

import (
	"context"

	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/pkg/errs"
)

// UpdateOrderDetailsCommandHandler handles edits to a pending order's trip
// details. Only the order's owner or an administrator may edit, and only
// while the order is pending; the aggregate enforces the pending-only rule.
type UpdateOrderDetailsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderDetailsCommandHandler creates a handler for order detail edits.
func NewUpdateOrderDetailsCommandHandler(uowFactory OrderUoWFactory) UpdateOrderDetailsCommandHandler {
	return UpdateOrderDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the detail-edit command.
//
// Fails with an ObjectNotFoundError when the order does not exist and a
// NotAuthorizedError when the actor may not edit it or the order has left
// pending status. On any failure the order is left unchanged.
func (h *UpdateOrderDetailsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderDetailsCommand,
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
		return nil, errs.NewNotAuthorizedError("actor may not edit this order")
	}

	if err = aggregate.ChangeDetails(
		cmd.RequesterName(),
		cmd.Destination(),
		cmd.DepartureDate(),
		cmd.ReturnDate(),
		cmd.Description(),
	); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
