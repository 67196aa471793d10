package http

import (
	"errors"
	"net/http"
	"time"

	"travelorders/internal/core/application/usecases/queries"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/pkg/errs"

	"github.com/google/uuid"
)

// dateLayout is the wire format of trip dates.
const dateLayout = "2006-01-02"

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderRequest is the JSON body for creating or editing an order.
type OrderRequest struct {
	RequesterName string `json:"requesterName"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate"`
	Description   string `json:"description"`
	Status        string `json:"status,omitempty"`
}

// OrderStatusRequest is the JSON body for a status transition.
type OrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the JSON representation of an order.
type OrderResponse struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"ownerId"`
	RequesterName string    `json:"requesterName"`
	Destination   string    `json:"destination"`
	DepartureDate string    `json:"departureDate"`
	ReturnDate    string    `json:"returnDate"`
	Description   string    `json:"description,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NotificationRequest is the JSON body for creating a notification.
type NotificationRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	UserID  string `json:"userId,omitempty"`
	OrderID string `json:"orderId,omitempty"`
}

// OrderStatusNotificationRequest is the JSON body for a client-requested
// status-change notification.
type OrderStatusNotificationRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// NotificationResponse is the JSON representation of a notification.
type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	UserID    *uuid.UUID `json:"userId,omitempty"`
	Global    bool       `json:"global"`
	OrderID   *uuid.UUID `json:"orderId,omitempty"`
	Read      bool       `json:"read"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// MarkAllReadResponse reports how many notifications a sweep marked.
type MarkAllReadResponse struct {
	Marked int `json:"marked"`
}

// statusCodeFor maps domain errors to HTTP status codes: missing objects to
// 404, authorization failures to 403, validation and business-rule conflicts
// to 422, everything else to 500.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrConflict):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(err error) (int, ErrorResponse) {
	code := statusCodeFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "Internal server error"
	}
	return code, ErrorResponse{Code: code, Message: message}
}

func orderResponseFromAggregate(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID().Bytes(),
		OwnerID:       o.OwnerID().Bytes(),
		RequesterName: o.RequesterName(),
		Destination:   o.Destination(),
		DepartureDate: o.DepartureDate().Format(dateLayout),
		ReturnDate:    o.ReturnDate().Format(dateLayout),
		Description:   o.Description(),
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
	}
}

func orderResponseFromReadModel(resp queries.GetOrdersQueryResponse) OrderResponse {
	return OrderResponse{
		ID:            resp.ID.Bytes(),
		OwnerID:       resp.OwnerID.Bytes(),
		RequesterName: resp.RequesterName,
		Destination:   resp.Destination,
		DepartureDate: resp.DepartureDate.Format(dateLayout),
		ReturnDate:    resp.ReturnDate.Format(dateLayout),
		Description:   resp.Description,
		Status:        resp.Status.String(),
		CreatedAt:     resp.CreatedAt,
	}
}

func notificationResponseFromAggregate(n *notification.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID().Bytes(),
		Title:     n.Title(),
		Message:   n.Message(),
		Type:      n.Type().String(),
		Global:    n.Recipient().IsGlobal(),
		Read:      n.IsRead(),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
	}

	if !n.Recipient().IsGlobal() {
		userID := n.Recipient().UserID().Bytes()
		resp.UserID = &userID
	}
	if id := n.OrderID(); id != nil {
		orderID := id.Bytes()
		resp.OrderID = &orderID
	}

	return resp
}

func notificationResponseFromReadModel(resp queries.GetNotificationsQueryResponse) NotificationResponse {
	out := NotificationResponse{
		ID:        resp.ID.Bytes(),
		Title:     resp.Title,
		Message:   resp.Message,
		Type:      resp.Type.String(),
		Global:    resp.Global,
		Read:      resp.Read,
		ReadAt:    resp.ReadAt,
		CreatedAt: resp.CreatedAt,
	}

	if resp.UserID != nil {
		userID := resp.UserID.Bytes()
		out.UserID = &userID
	}
	if resp.OrderID != nil {
		orderID := resp.OrderID.Bytes()
		out.OrderID = &orderID
	}

	return out
}
