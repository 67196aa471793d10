package queries

import (
	"context"
	"database/sql"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order read models from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the actor's visible orders.
// Administrators see every order; other actors only their own. Results are
// sorted newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			owner_id,
			requester_name,
			destination,
			departure_date,
			return_date,
			description,
			status,
			created_at
		FROM orders
	`
	args := make([]any, 0, 2)
	conditions := make([]string, 0, 2)

	if !query.Actor().IsAdmin() {
		conditions = append(conditions, "owner_id = ?")
		args = append(args, query.Actor().ID().Bytes())
	}
	if status, ok := query.StatusFilter(); ok {
		conditions = append(conditions, "status = ?")
		args = append(args, status)
	}

	for i, condition := range conditions {
		if i == 0 {
			sqlQuery += " WHERE " + condition
		} else {
			sqlQuery += " AND " + condition
		}
	}
	sqlQuery += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrderRow(rows *sql.Rows) (GetOrdersQueryResponse, error) {
	var orderResp GetOrdersQueryResponse
	var id, ownerID uuid.UUID
	var status int

	err := rows.Scan(
		&id,
		&ownerID,
		&orderResp.RequesterName,
		&orderResp.Destination,
		&orderResp.DepartureDate,
		&orderResp.ReturnDate,
		&orderResp.Description,
		&status,
		&orderResp.CreatedAt,
	)
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	orderResp.ID = orderID

	orderOwnerID, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	orderResp.OwnerID = orderOwnerID

	orderResp.Status = order.Status(status)
	return orderResp, nil
}
