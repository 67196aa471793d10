package order

import (
	"errors"
	"time"

	"travelorders/internal/core/domain/model/actor"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a travel-expense request in the system. It is the aggregate
// root that manages the request lifecycle from submission through approval.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owner
//   - Requester name, destination and both travel dates are required
//   - Status only changes through validated transitions
//   - Owner never changes after creation
//   - Detail fields are mutable only while the status is Pending
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerID is the identity of the requester; immutable after creation
	ownerID kernel.UUID

	// requesterName is the person travelling
	requesterName string

	// destination is where the trip goes
	destination string

	// departureDate and returnDate bound the trip
	departureDate time.Time
	returnDate    time.Time

	// description is optional free-form trip detail
	description string

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the immutable creation timestamp
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order from scratch, ensuring all business invariants hold.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - ownerID: Identity of the requester (must be a valid UUID)
//   - requesterName: Name of the person travelling (required)
//   - destination: Trip destination (required)
//   - departureDate, returnDate: Trip dates (required, non-zero)
//   - description: Optional free-form detail
//   - initialStatus: Starting status (Pending unless the caller supplied one)
//   - createdAt: Creation timestamp
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	requesterName string,
	destination string,
	departureDate time.Time,
	returnDate time.Time,
	description string,
	initialStatus Status,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		description:   description,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwnerID(ownerID),
		order.setRequesterName(requesterName),
		order.setDestination(destination),
		order.setDates(departureDate, returnDate),
		order.setStatus(initialStatus),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running
// creation-time rules. The stored state is trusted to have been validated
// when it was first written, but structural invariants are still checked.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	requesterName string,
	destination string,
	departureDate time.Time,
	returnDate time.Time,
	description string,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	return NewOrder(id, ownerID, requesterName, destination, departureDate, returnDate,
		description, status, createdAt)
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identity of the requester who owns the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// RequesterName returns the name of the person travelling.
func (o *Order) RequesterName() string {
	return o.requesterName
}

// Destination returns the trip destination.
func (o *Order) Destination() string {
	return o.destination
}

// DepartureDate returns the trip's departure date.
func (o *Order) DepartureDate() time.Time {
	return o.departureDate
}

// ReturnDate returns the trip's return date.
func (o *Order) ReturnDate() time.Time {
	return o.returnDate
}

// Description returns the optional free-form trip detail.
func (o *Order) Description() string {
	return o.description
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsOwnedBy reports whether the given actor is the order's owner.
func (o *Order) IsOwnedBy(a actor.Actor) bool {
	return o.ownerID.IsEqual(a.ID())
}

// CanBeMutatedBy reports whether the given actor may mutate this order.
// Administrators may mutate any order; other actors only their own.
func (o *Order) CanBeMutatedBy(a actor.Actor) bool {
	return a.IsAdmin() || o.IsOwnedBy(a)
}

// ChangeStatus transitions the order to newStatus.
//
// This method enforces the single hard business rule of the workflow:
// an approved order can never be cancelled, regardless of actor role.
// Every other transition between valid statuses is permitted.
//
// Returns:
//   - nil on a successful transition
//   - *errs.ConflictError when cancelling an approved order
//   - *errs.ValueIsInvalidError when newStatus is not a valid status
func (o *Order) ChangeStatus(newStatus Status) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// ChangeDetails updates the order's detail fields.
//
// Allowed only while the order is Pending; any other status returns a
// NotAuthorizedError ("only pending orders are editable"). The same
// required-field rules as creation apply. Status is never touched.
func (o *Order) ChangeDetails(
	requesterName string,
	destination string,
	departureDate time.Time,
	returnDate time.Time,
	description string,
) error {
	if o.status != Pending {
		return errs.NewNotAuthorizedError("only pending orders are editable")
	}

	if err := errors.Join(
		o.setRequesterName(requesterName),
		o.setDestination(destination),
		o.setDates(departureDate, returnDate),
	); err != nil {
		return err
	}

	o.description = description
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOwnerID validates and sets the owning requester's identity.
// This is a private method used only during construction.
func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setRequesterName(requesterName string) error {
	if requesterName == "" {
		return errs.NewValueIsRequiredError("requesterName")
	}
	o.requesterName = requesterName
	return nil
}

func (o *Order) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	o.destination = destination
	return nil
}

func (o *Order) setDates(departureDate time.Time, returnDate time.Time) error {
	if departureDate.IsZero() {
		return errs.NewValueIsRequiredError("departureDate")
	}
	if returnDate.IsZero() {
		return errs.NewValueIsRequiredError("returnDate")
	}
	o.departureDate = departureDate
	o.returnDate = returnDate
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
