package commands

import (
	"errors"
	"time"

	"travelorders/internal/core/domain/model/actor"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to submit a new travel order.
// Encapsulates the trip details plus the actor who will own the order.
//
// The initial status is optional: an empty string defaults to pending, and
// the legacy localized vocabulary ("solicitado", "aprovado", "cancelado",
// "em_andamento") is accepted here, and only here, then normalized to the
// canonical status before anything is persisted.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor         actor.Actor
	requesterName string
	destination   string
	departureDate time.Time
	returnDate    time.Time
	description   string
	initialStatus order.Status

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to submit a new travel order.
// Validates the actor, the required trip fields, and the optional initial
// status. Returns an error if any validation fails.
func NewCreateOrderCommand(
	a actor.Actor,
	requesterName string,
	destination string,
	departureDate time.Time,
	returnDate time.Time,
	description string,
	initialStatus string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(a),
		cmd.setRequesterName(requesterName),
		cmd.setDestination(destination),
		cmd.setDates(departureDate, returnDate),
		cmd.setInitialStatus(initialStatus),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the actor submitting the order; they become its owner.
func (c CreateOrderCommand) Actor() actor.Actor {
	return c.actor
}

// RequesterName returns the name of the person travelling.
func (c CreateOrderCommand) RequesterName() string {
	return c.requesterName
}

// Destination returns the trip destination.
func (c CreateOrderCommand) Destination() string {
	return c.destination
}

// DepartureDate returns the trip's departure date.
func (c CreateOrderCommand) DepartureDate() time.Time {
	return c.departureDate
}

// ReturnDate returns the trip's return date.
func (c CreateOrderCommand) ReturnDate() time.Time {
	return c.returnDate
}

// Description returns the optional free-form trip detail.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// InitialStatus returns the normalized starting status for the order.
func (c CreateOrderCommand) InitialStatus() order.Status {
	return c.initialStatus
}

func (c *CreateOrderCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *CreateOrderCommand) setRequesterName(requesterName string) error {
	if requesterName == "" {
		return errs.NewValueIsRequiredError("requesterName")
	}

	c.requesterName = requesterName
	return nil
}

func (c *CreateOrderCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}

	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setDates(departureDate time.Time, returnDate time.Time) error {
	if departureDate.IsZero() {
		return errs.NewValueIsRequiredError("departureDate")
	}
	if returnDate.IsZero() {
		return errs.NewValueIsRequiredError("returnDate")
	}

	c.departureDate = departureDate
	c.returnDate = returnDate
	return nil
}

func (c *CreateOrderCommand) setInitialStatus(initialStatus string) error {
	if initialStatus == "" {
		c.initialStatus = order.Pending
		return nil
	}

	status, err := order.StatusFromAlias(initialStatus)
	if err != nil {
		return err
	}

	c.initialStatus = status
	return nil
}
