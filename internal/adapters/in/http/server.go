// Package http exposes the service's REST API via echo handlers.
// It coordinates between HTTP requests and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/application/usecases/queries"
	"travelorders/internal/core/domain/model/actor"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/ports"
	"travelorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the REST API for the travel order workflow and its
// notification engine.
type Server struct {
	// Command handlers
	createOrderHandler                   commands.CreateOrderCommandHandler
	updateOrderStatusHandler             commands.UpdateOrderStatusCommandHandler
	updateOrderDetailsHandler            commands.UpdateOrderDetailsCommandHandler
	createNotificationHandler            commands.CreateNotificationCommandHandler
	markNotificationReadHandler          commands.MarkNotificationReadCommandHandler
	markAllNotificationsReadHandler      commands.MarkAllNotificationsReadCommandHandler
	removeNotificationHandler            commands.RemoveNotificationCommandHandler
	createOrderStatusNotificationHandler commands.CreateOrderStatusNotificationCommandHandler

	// Query handlers
	getOrdersHandler        queries.GetOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getNotificationsHandler queries.GetNotificationsQueryHandler

	// fallbackCache serves degraded notification reads while the durable
	// store is unreachable.
	fallbackCache ports.NotificationCache
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	updateOrderDetailsHandler commands.UpdateOrderDetailsCommandHandler,
	createNotificationHandler commands.CreateNotificationCommandHandler,
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler,
	markAllNotificationsReadHandler commands.MarkAllNotificationsReadCommandHandler,
	removeNotificationHandler commands.RemoveNotificationCommandHandler,
	createOrderStatusNotificationHandler commands.CreateOrderStatusNotificationCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
	fallbackCache ports.NotificationCache,
) *Server {
	return &Server{
		createOrderHandler:                   createOrderHandler,
		updateOrderStatusHandler:             updateOrderStatusHandler,
		updateOrderDetailsHandler:            updateOrderDetailsHandler,
		createNotificationHandler:            createNotificationHandler,
		markNotificationReadHandler:          markNotificationReadHandler,
		markAllNotificationsReadHandler:      markAllNotificationsReadHandler,
		removeNotificationHandler:            removeNotificationHandler,
		createOrderStatusNotificationHandler: createOrderStatusNotificationHandler,
		getOrdersHandler:                     getOrdersHandler,
		getOrderHandler:                      getOrderHandler,
		getNotificationsHandler:              getNotificationsHandler,
		fallbackCache:                        fallbackCache,
	}
}

// RegisterRoutes wires every API route onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", ActorMiddleware())

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrderDetails)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)

	api.GET("/notifications", s.GetNotifications)
	api.POST("/notifications", s.CreateNotification)
	api.PATCH("/notifications/read-all", s.MarkAllNotificationsRead)
	api.PATCH("/notifications/:id/read", s.MarkNotificationRead)
	api.DELETE("/notifications/:id", s.DeleteNotification)
	api.POST("/notifications/order-status", s.CreateOrderStatusNotification)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - submits a new travel order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	a, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing actor identity",
		})
	}

	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	departureDate, err := parseDate("departureDate", req.DepartureDate)
	if err != nil {
		return respondError(ctx, err)
	}
	returnDate, err := parseDate("returnDate", req.ReturnDate)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		a,
		req.RequesterName,
		req.Destination,
		departureDate,
		returnDate,
		req.Description,
		req.Status,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(created))
}

// GetOrders handles GET /api/v1/orders - lists the actor's visible orders,
// optionally filtered by status.
func (s *Server) GetOrders(ctx echo.Context) error {
	a, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing actor identity",
		})
	}

	query, err := queries.NewGetOrdersQuery(a, ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderResponseFromReadModel(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one visible order.
func (s *Server) GetOrder(ctx echo.Context) error {
	a, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing actor identity",
		})
	}

	orderID, err := parseID(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, a)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromReadModel(o))
}

// UpdateOrderDetails handles PUT /api/v1/orders/:id - edits a pending order.
func (s *Server) UpdateOrderDetails(ctx echo.Context) error {
	a, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing actor identity",
		})
	}

	orderID, err := parseID(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req OrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	departureDate, err := parseDate("departureDate", req.DepartureDate)
	if err != nil {
		return respondError(ctx, err)
	}
	returnDate, err := parseDate("returnDate", req.ReturnDate)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderDetailsCommand(
		orderID,
		req.RequesterName,
		req.Destination,
		departureDate,
		returnDate,
		req.Description,
		a,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateOrderDetailsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - moves an order
// through the approval workflow.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	a, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing actor identity",
		})
	}

	orderID, err := parseID(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req OrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, req.Status, a)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// GetNotifications handles GET /api/v1/notifications - lists the actor's
// visible notifications. While the durable store is unreachable the handler
// serves the local fallback cache instead of failing.
func (s *Server) GetNotifications(ctx echo.Context) error {
	a, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing actor identity",
		})
	}

	unreadOnly := ctx.QueryParam("unread") == "true"

	query, err := queries.NewGetNotificationsQuery(a, unreadOnly)
	if err != nil {
		return respondError(ctx, err)
	}

	notifications, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrStoreUnavailable) {
			return ctx.JSON(http.StatusOK, s.cachedNotificationsFor(a, unreadOnly))
		}
		return respondError(ctx, err)
	}

	response := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		response[i] = notificationResponseFromReadModel(n)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateNotification handles POST /api/v1/notifications - creates a
// notification directly.
func (s *Server) CreateNotification(ctx echo.Context) error {
	a, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing actor identity",
		})
	}

	var req NotificationRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	userID, err := parseOptionalID("userId", req.UserID)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := parseOptionalID("orderId", req.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateNotificationCommand(req.Title, req.Message, req.Type, userID, orderID, a)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createNotificationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, notificationResponseFromAggregate(created))
}

// MarkNotificationRead handles PATCH /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	a, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing actor identity",
		})
	}

	notificationID, err := parseID(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, a)
	if err != nil {
		return respondError(ctx, err)
	}

	marked, err := s.markNotificationReadHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	s.fallbackCache.MarkAsRead(notificationID)
	return ctx.JSON(http.StatusOK, notificationResponseFromAggregate(marked))
}

// MarkAllNotificationsRead handles PATCH /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	a, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing actor identity",
		})
	}

	cmd, err := commands.NewMarkAllNotificationsReadCommand(a)
	if err != nil {
		return respondError(ctx, err)
	}

	marked, err := s.markAllNotificationsReadHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MarkAllReadResponse{Marked: marked})
}

// DeleteNotification handles DELETE /api/v1/notifications/:id.
func (s *Server) DeleteNotification(ctx echo.Context) error {
	a, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing actor identity",
		})
	}

	notificationID, err := parseID(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveNotificationCommand(notificationID, a)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.removeNotificationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.fallbackCache.Remove(notificationID)
	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrderStatusNotification handles POST /api/v1/notifications/order-status.
func (s *Server) CreateOrderStatusNotification(ctx echo.Context) error {
	a, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing actor identity",
		})
	}

	var req OrderStatusNotificationRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := parseID(req.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderStatusNotificationCommand(orderID, req.Status, a)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderStatusNotificationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, notificationResponseFromAggregate(created))
}

func (s *Server) cachedNotificationsFor(a actor.Actor, unreadOnly bool) []NotificationResponse {
	cached := s.fallbackCache.GetAll()
	response := make([]NotificationResponse, 0, len(cached))
	for _, n := range cached {
		if !n.IsVisibleTo(a) {
			continue
		}
		if unreadOnly && n.IsRead() {
			continue
		}
		response = append(response, notificationResponseFromAggregate(n))
	}

	return response
}

func respondError(ctx echo.Context, err error) error {
	code, body := errorJSON(err)
	return ctx.JSON(code, body)
}

func parseID(raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

func parseOptionalID(field string, raw string) (*kernel.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return &id, nil
}

func parseDate(field string, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return parsed, nil
}
