package commands

import (
	"errors"
	"time"

	"travelorders/internal/core/domain/model/actor"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

var (
	ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
		"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
	)
)

// UpdateOrderDetailsCommand represents a request to edit a pending order's
// trip details. The same required-field rules as creation apply; the order's
// status is never touched.
type UpdateOrderDetailsCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	requesterName string
	destination   string
	departureDate time.Time
	returnDate    time.Time
	description   string
	actor         actor.Actor

	guard guard.ConstructorGuard
}

// NewUpdateOrderDetailsCommand creates a command to edit a pending order.
// Validates the order identifier, the required trip fields, and the actor.
func NewUpdateOrderDetailsCommand(
	orderID kernel.UUID,
	requesterName string,
	destination string,
	departureDate time.Time,
	returnDate time.Time,
	description string,
	a actor.Actor,
) (UpdateOrderDetailsCommand, error) {
	cmd := UpdateOrderDetailsCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequesterName(requesterName),
		cmd.setDestination(destination),
		cmd.setDates(departureDate, returnDate),
		cmd.setActor(a),
	); err != nil {
		return UpdateOrderDetailsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c UpdateOrderDetailsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterName returns the updated requester name.
func (c UpdateOrderDetailsCommand) RequesterName() string {
	return c.requesterName
}

// Destination returns the updated destination.
func (c UpdateOrderDetailsCommand) Destination() string {
	return c.destination
}

// DepartureDate returns the updated departure date.
func (c UpdateOrderDetailsCommand) DepartureDate() time.Time {
	return c.departureDate
}

// ReturnDate returns the updated return date.
func (c UpdateOrderDetailsCommand) ReturnDate() time.Time {
	return c.returnDate
}

// Description returns the updated description.
func (c UpdateOrderDetailsCommand) Description() string {
	return c.description
}

// Actor returns the actor requesting the edit.
func (c UpdateOrderDetailsCommand) Actor() actor.Actor {
	return c.actor
}

func (c *UpdateOrderDetailsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderDetailsCommand) setRequesterName(requesterName string) error {
	if requesterName == "" {
		return errs.NewValueIsRequiredError("requesterName")
	}

	c.requesterName = requesterName
	return nil
}

func (c *UpdateOrderDetailsCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}

	c.destination = destination
	return nil
}

func (c *UpdateOrderDetailsCommand) setDates(departureDate time.Time, returnDate time.Time) error {
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

func (c *UpdateOrderDetailsCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}
