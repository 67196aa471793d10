package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/actor"
	"travelorders/internal/pkg/guard"
)

var (
	ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
		"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
	)
)

// MarkAllNotificationsReadCommand represents a request to mark every unread
// notification in the actor's visible scope as read.
type MarkAllNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a command to mark all visible
// notifications as read.
func NewMarkAllNotificationsReadCommand(a actor.Actor) (MarkAllNotificationsReadCommand, error) {
	cmd := MarkAllNotificationsReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setActor(a); err != nil {
		return MarkAllNotificationsReadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

// Actor returns the actor whose visible notifications are marked.
func (c MarkAllNotificationsReadCommand) Actor() actor.Actor {
	return c.actor
}

func (c *MarkAllNotificationsReadCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}
