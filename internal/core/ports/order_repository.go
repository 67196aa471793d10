// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the notification
// fallback cache. These interfaces enable dependency inversion and
// testability.
package ports

import (
	"context"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// by owner and status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order by identifier while taking a row-level
	// lock for the duration of the surrounding transaction. Status
	// transitions read through this method so that two racing updates cannot
	// both pass the approved-to-cancelled check.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByOwner retrieves every order owned by the given requester,
	// most recent first.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error)

	// GetAllByStatus retrieves every order currently in the given status,
	// most recent first.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
