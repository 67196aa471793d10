package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/actor"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/pkg/guard"
)

var (
	ErrCreateOrderStatusNotificationCommandIsNotConstructed = errors.New(
		"CreateOrderStatusNotificationCommand must be created via " +
			"NewCreateOrderStatusNotificationCommand constructor",
	)
)

// CreateOrderStatusNotificationCommand represents a request to render and
// store the catalog notification for an order status, without transitioning
// the order itself. Used by clients replaying a status change they observed.
type CreateOrderStatusNotificationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	actor   actor.Actor

	guard guard.ConstructorGuard
}

// NewCreateOrderStatusNotificationCommand creates a command to store a
// status-change notification for an order.
func NewCreateOrderStatusNotificationCommand(
	orderID kernel.UUID,
	status string,
	a actor.Actor,
) (CreateOrderStatusNotificationCommand, error) {
	cmd := CreateOrderStatusNotificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setActor(a),
	); err != nil {
		return CreateOrderStatusNotificationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderStatusNotificationCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderStatusNotificationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order the notification announces.
func (c CreateOrderStatusNotificationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the status the notification announces.
func (c CreateOrderStatusNotificationCommand) Status() order.Status {
	return c.status
}

// Actor returns the actor requesting the notification.
func (c CreateOrderStatusNotificationCommand) Actor() actor.Actor {
	return c.actor
}

func (c *CreateOrderStatusNotificationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderStatusNotificationCommand) setStatus(status string) error {
	s, err := order.StatusFromString(status)
	if err != nil {
		return err
	}

	c.status = s
	return nil
}

func (c *CreateOrderStatusNotificationCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}
