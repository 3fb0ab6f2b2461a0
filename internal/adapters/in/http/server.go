// Package http exposes the order operations over an Echo HTTP server.
package http

import (
	"errors"
	"net/http"
	"time"

	"comptoirs/internal/core/application/usecases/commands"
	"comptoirs/internal/core/application/usecases/queries"
	"comptoirs/internal/core/domain/model/kernel"
	"comptoirs/internal/core/domain/model/order"
	"comptoirs/internal/core/domain/model/product"
	"comptoirs/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	addOrderLineHandler commands.AddOrderLineCommandHandler
	shipOrderHandler    commands.ShipOrderCommandHandler

	// Query handlers
	getNotShippedOrdersHandler queries.GetNotShippedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderLineHandler commands.AddOrderLineCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	getNotShippedOrdersHandler queries.GetNotShippedOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		addOrderLineHandler:        addOrderLineHandler,
		shipOrderHandler:           shipOrderHandler,
		getNotShippedOrdersHandler: getNotShippedOrdersHandler,
	}
}

// RegisterRoutes wires the server's handlers into the Echo router.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders/open", s.GetOpenOrders)
	e.POST("/api/v1/orders/:orderID/lines", s.AddOrderLine)
	e.POST("/api/v1/orders/:orderID/ship", s.ShipOrder)
}

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the request body for order creation.
type NewOrderRequest struct {
	ClientID string `json:"clientId"`
}

// NewOrderLineRequest is the request body for line addition.
type NewOrderLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID              string              `json:"id"`
	ClientID        string              `json:"clientId"`
	DeliveryAddress AddressResponse     `json:"deliveryAddress"`
	Discount        float64             `json:"discount"`
	ShippedOn       *string             `json:"shippedOn"`
	Lines           []OrderLineResponse `json:"lines"`
}

// AddressResponse represents a postal address in API responses.
type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// OrderLineResponse represents an order line in API responses.
type OrderLineResponse struct {
	ID        string `json:"id"`
	OrderID   string `json:"orderId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OpenOrderResponse represents an order awaiting shipment.
type OpenOrderResponse struct {
	ID           string `json:"id"`
	DeliveryCity string `json:"deliveryCity"`
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - creates a new order for a client.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request NewOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(request.ClientID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid client identifier: "+request.ClientID)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), clientID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	createdOrder, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(createdOrder))
}

// AddOrderLine handles POST /api/v1/orders/:orderID/lines - appends a line
// to an open order.
func (s *Server) AddOrderLine(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order identifier: "+ctx.Param("orderID"))
	}

	var request NewOrderLineRequest
	if err = ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid product identifier: "+request.ProductID)
	}

	cmd, err := commands.NewAddOrderLineCommand(orderID, productID, request.Quantity)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid line data: "+err.Error())
	}

	line, err := s.addOrderLineHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderLineResponse(line))
}

// ShipOrder handles POST /api/v1/orders/:orderID/ship - finalizes the
// one-time shipment of an order.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order identifier: "+ctx.Param("orderID"))
	}

	cmd, err := commands.NewShipOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid ship request: "+err.Error())
	}

	shippedOrder, err := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(shippedOrder))
}

// GetOpenOrders handles GET /api/v1/orders/open - lists orders awaiting shipment.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	query := queries.NewGetNotShippedOrdersQuery()

	openOrders, err := s.getNotShippedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve open orders")
	}

	response := make([]OpenOrderResponse, len(openOrders))
	for i, openOrder := range openOrders {
		response[i] = OpenOrderResponse{
			ID:           openOrder.ID.String(),
			DeliveryCity: openOrder.DeliveryCity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// domainErrorResponse maps domain errors to HTTP status codes:
// missing objects map to 404, state conflicts to 409, bad values to 400,
// everything else to 500.
func domainErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrOrderAlreadyShipped),
		errors.Is(err, product.ErrInsufficientStock):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}

func toOrderResponse(o *order.Order) OrderResponse {
	var shippedOn *string
	if o.ShippedOn() != nil {
		formatted := o.ShippedOn().Format(time.DateOnly)
		shippedOn = &formatted
	}

	lines := make([]OrderLineResponse, len(o.Lines()))
	for i, line := range o.Lines() {
		lines[i] = toOrderLineResponse(line)
	}

	return OrderResponse{
		ID:       o.ID().String(),
		ClientID: o.ClientID().String(),
		DeliveryAddress: AddressResponse{
			Street:     o.DeliveryAddress().Street(),
			City:       o.DeliveryAddress().City(),
			PostalCode: o.DeliveryAddress().PostalCode(),
		},
		Discount:  o.Discount().Rate(),
		ShippedOn: shippedOn,
		Lines:     lines,
	}
}

func toOrderLineResponse(line *order.Line) OrderLineResponse {
	return OrderLineResponse{
		ID:        line.ID().String(),
		OrderID:   line.OrderID().String(),
		ProductID: line.ProductID().String(),
		Quantity:  line.Quantity(),
	}
}
