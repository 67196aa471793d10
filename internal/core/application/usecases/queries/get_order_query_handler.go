package queries

import (
	"context"
	"database/sql"
	"errors"

	"travelorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order.
// Returns an ObjectNotFoundError both when the order does not exist and when
// it is outside the actor's visible scope.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
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
		WHERE id = ?
	`
	args := []any{query.OrderID().Bytes()}

	if !query.Actor().IsAdmin() {
		sqlQuery += " AND owner_id = ?"
		args = append(args, query.Actor().ID().Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrdersQueryResponse{}, err
		}
		return GetOrdersQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	orderResp, err := scanOrderRow(rows)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrdersQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrdersQueryResponse{}, err
	}

	return orderResp, nil
}
