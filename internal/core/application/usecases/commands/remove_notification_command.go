package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/actor"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/guard"
)

var (
	ErrRemoveNotificationCommandIsNotConstructed = errors.New(
		"RemoveNotificationCommand must be created via NewRemoveNotificationCommand constructor",
	)
)

// RemoveNotificationCommand represents a request to delete a notification.
type RemoveNotificationCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	actor          actor.Actor

	guard guard.ConstructorGuard
}

// NewRemoveNotificationCommand creates a command to delete a notification.
func NewRemoveNotificationCommand(
	notificationID kernel.UUID,
	a actor.Actor,
) (RemoveNotificationCommand, error) {
	cmd := RemoveNotificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNotificationID(notificationID),
		cmd.setActor(a),
	); err != nil {
		return RemoveNotificationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveNotificationCommand) Validate() error {
	return c.guard.Validate(ErrRemoveNotificationCommandIsNotConstructed)
}

// NotificationID returns the identifier of the notification to delete.
func (c RemoveNotificationCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

// Actor returns the actor deleting the notification.
func (c RemoveNotificationCommand) Actor() actor.Actor {
	return c.actor
}

func (c *RemoveNotificationCommand) setNotificationID(notificationID kernel.UUID) error {
	if err := notificationID.Validate(); err != nil {
		return err
	}

	c.notificationID = notificationID
	return nil
}

func (c *RemoveNotificationCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}
