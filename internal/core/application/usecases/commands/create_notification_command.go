package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/actor"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

var (
	ErrCreateNotificationCommandIsNotConstructed = errors.New(
		"CreateNotificationCommand must be created via NewCreateNotificationCommand constructor",
	)
)

// CreateNotificationCommand represents a request to create a notification
// directly, outside of the status-change pipeline. The recipient is either a
// specific user or the global scope when no user identity is given.
type CreateNotificationCommand struct { //nolint:recvcheck //using for validation
	title     string
	message   string
	ntype     notification.Type
	recipient notification.Recipient
	orderID   *kernel.UUID
	actor     actor.Actor

	guard guard.ConstructorGuard
}

// NewCreateNotificationCommand creates a command to store a notification.
//
// ntype is the wire code of the display classification; an empty string
// defaults to "info". userID scopes the notification to that user when
// non-nil, otherwise the notification is global. orderID is an optional
// back-reference to a related order.
func NewCreateNotificationCommand(
	title string,
	message string,
	ntype string,
	userID *kernel.UUID,
	orderID *kernel.UUID,
	a actor.Actor,
) (CreateNotificationCommand, error) {
	cmd := CreateNotificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTitle(title),
		cmd.setMessage(message),
		cmd.setType(ntype),
		cmd.setRecipient(userID),
		cmd.setOrderID(orderID),
		cmd.setActor(a),
	); err != nil {
		return CreateNotificationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateNotificationCommand) Validate() error {
	return c.guard.Validate(ErrCreateNotificationCommandIsNotConstructed)
}

// Title returns the display title.
func (c CreateNotificationCommand) Title() string {
	return c.title
}

// Message returns the display message.
func (c CreateNotificationCommand) Message() string {
	return c.message
}

// Type returns the display classification.
func (c CreateNotificationCommand) Type() notification.Type {
	return c.ntype
}

// Recipient returns the visibility scope of the notification to create.
func (c CreateNotificationCommand) Recipient() notification.Recipient {
	return c.recipient
}

// OrderID returns the optional order back-reference.
func (c CreateNotificationCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// Actor returns the actor creating the notification.
func (c CreateNotificationCommand) Actor() actor.Actor {
	return c.actor
}

func (c *CreateNotificationCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *CreateNotificationCommand) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	c.message = message
	return nil
}

func (c *CreateNotificationCommand) setType(ntype string) error {
	if ntype == "" {
		c.ntype = notification.Info
		return nil
	}

	t, err := notification.TypeFromString(ntype)
	if err != nil {
		return err
	}

	c.ntype = t
	return nil
}

func (c *CreateNotificationCommand) setRecipient(userID *kernel.UUID) error {
	if userID == nil {
		c.recipient = notification.NewGlobalRecipient()
		return nil
	}

	recipient, err := notification.NewUserRecipient(*userID)
	if err != nil {
		return err
	}

	c.recipient = recipient
	return nil
}

func (c *CreateNotificationCommand) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}

	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateNotificationCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}
