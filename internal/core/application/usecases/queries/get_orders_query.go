package queries

import (
	"errors"
	"time"

	"travelorders/internal/core/domain/model/actor"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves travel orders visible to an actor, optionally
// filtered by status. Administrators see every order; other actors only
// their own.
type GetOrdersQuery struct {
	actor        actor.Actor
	statusFilter order.Status
	hasFilter    bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the actor's visible orders.
// statusFilter is a canonical status code; an empty string disables the filter.
func NewGetOrdersQuery(a actor.Actor, statusFilter string) (GetOrdersQuery, error) {
	q := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := a.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	q.actor = a

	if statusFilter != "" {
		status, err := order.StatusFromString(statusFilter)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		q.statusFilter = status
		q.hasFilter = true
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the actor whose visible orders are listed.
func (q GetOrdersQuery) Actor() actor.Actor {
	return q.actor
}

// StatusFilter returns the status filter and whether one was set.
func (q GetOrdersQuery) StatusFilter() (order.Status, bool) {
	return q.statusFilter, q.hasFilter
}

// GetOrdersQueryResponse is the read model for a listed order.
type GetOrdersQueryResponse struct {
	ID            kernel.UUID
	OwnerID       kernel.UUID
	RequesterName string
	Destination   string
	DepartureDate time.Time
	ReturnDate    time.Time
	Description   string
	Status        order.Status
	CreatedAt     time.Time
}
