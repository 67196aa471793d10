// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order domain
// aggregate, handling the conversion between domain entities and database
// representations.
package orderrepo

import (
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by owner and status for the list queries.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index"`
	RequesterName string
	Destination   string
	DepartureDate time.Time
	ReturnDate    time.Time
	Description   string
	Status        int `gorm:"index"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID().Bytes(),
		OwnerID:       o.OwnerID().Bytes(),
		RequesterName: o.RequesterName(),
		Destination:   o.Destination(),
		DepartureDate: o.DepartureDate(),
		ReturnDate:    o.ReturnDate(),
		Description:   o.Description(),
		Status:        int(o.Status()),
		CreatedAt:     o.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		ownerID,
		dto.RequesterName,
		dto.Destination,
		dto.DepartureDate,
		dto.ReturnDate,
		dto.Description,
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}
