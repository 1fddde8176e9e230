// Package http exposes the fulfillment engine over a REST API. Handlers
// translate JSON payloads into commands and queries and map domain errors to
// HTTP status codes; no business rules live here.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the payload of POST /api/v1/orders.
type CreateOrderRequest struct {
	UserID            string                   `json:"user_id"`
	ShippingAddressID string                   `json:"shipping_address_id"`
	Currency          string                   `json:"currency"`
	Items             []CreateOrderItemRequest `json:"items"`
	// DeliveryChoices maps a brand ID to the shipping method picked for
	// that brand's parcel. Brands without an entry ship with the default
	// estimate.
	DeliveryChoices map[string]string `json:"delivery_choices,omitempty"`
}

// CreateOrderItemRequest is one requested line item.
type CreateOrderItemRequest struct {
	ProductID   string  `json:"product_id"`
	VariantID   *string `json:"variant_id,omitempty"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   int64   `json:"unit_price"`
}

// CreateOrderResponse is the representation of a freshly placed order: its
// identity, line items, totals, status and the per-brand invoices generated
// by the split.
type CreateOrderResponse struct {
	OrderID  string              `json:"order_id"`
	Status   string              `json:"status"`
	Currency string              `json:"currency"`
	Total    int64               `json:"total"`
	PlacedAt time.Time           `json:"placed_at"`
	Items    []OrderItemResponse `json:"items"`
	Invoices []InvoiceResponse   `json:"invoices"`
}

// OrderItemResponse is one line item of a placed order, with the delivery it
// was assigned to.
type OrderItemResponse struct {
	ItemID      string `json:"item_id"`
	DeliveryID  string `json:"delivery_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

// InvoiceResponse is one per-brand invoice generated at order placement.
type InvoiceResponse struct {
	DeliveryID string `json:"delivery_id"`
	BrandID    string `json:"brand_id"`
	BrandName  string `json:"brand_name"`
	Number     string `json:"number"`
	Amount     int64  `json:"amount"`
}

// NewCreateOrderResponse flattens the consolidated tracking view of a freshly
// created order into the creation response.
func NewCreateOrderResponse(view queries.GetOrderTrackingQueryResponse) CreateOrderResponse {
	resp := CreateOrderResponse{
		OrderID:  view.OrderID.String(),
		Status:   view.Status,
		Currency: view.Currency,
		Total:    view.Total,
		PlacedAt: view.PlacedAt,
		Items:    make([]OrderItemResponse, 0),
		Invoices: make([]InvoiceResponse, 0, len(view.Deliveries)),
	}

	for _, d := range view.Deliveries {
		for _, item := range d.Items {
			resp.Items = append(resp.Items, OrderItemResponse{
				ItemID:      item.ItemID.String(),
				DeliveryID:  d.DeliveryID.String(),
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
			})
		}
		resp.Invoices = append(resp.Invoices, InvoiceResponse{
			DeliveryID: d.DeliveryID.String(),
			BrandID:    d.BrandID.String(),
			BrandName:  d.BrandName,
			Number:     d.InvoiceNumber,
			Amount:     d.InvoiceAmount,
		})
	}

	return resp
}

// ShipDeliveryRequest is the payload of POST /api/v1/deliveries/:id/ship.
type ShipDeliveryRequest struct {
	TrackingNumber string `json:"tracking_number"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler
	markShippedHandler commands.MarkDeliveryShippedCommandHandler
	cancelHandler      commands.CancelDeliveryCommandHandler
	trackingHandler    queries.GetOrderTrackingQueryHandler
	activeListHandler  queries.GetActiveDeliveriesQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	markShippedHandler commands.MarkDeliveryShippedCommandHandler,
	cancelHandler commands.CancelDeliveryCommandHandler,
	trackingHandler queries.GetOrderTrackingQueryHandler,
	activeListHandler queries.GetActiveDeliveriesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		markShippedHandler: markShippedHandler,
		cancelHandler:      cancelHandler,
		trackingHandler:    trackingHandler,
		activeListHandler:  activeListHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id/tracking", s.GetOrderTracking)
	v1.POST("/deliveries/:id/ship", s.ShipDelivery)
	v1.POST("/deliveries/:id/cancel", s.CancelDelivery)
	v1.GET("/deliveries/active", s.GetActiveDeliveries)
}

// CreateOrder handles POST /api/v1/orders - places an order and splits it
// into per-brand deliveries.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user_id: "+err.Error())
	}
	addressID, err := kernel.UUIDFromString(req.ShippingAddressID)
	if err != nil {
		return badRequest(ctx, "Invalid shipping_address_id: "+err.Error())
	}

	lines := make([]commands.ItemLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, lineErr := kernel.UUIDFromString(item.ProductID)
		if lineErr != nil {
			return badRequest(ctx, "Invalid product_id: "+lineErr.Error())
		}

		var variantID *kernel.UUID
		if item.VariantID != nil {
			id, variantErr := kernel.UUIDFromString(*item.VariantID)
			if variantErr != nil {
				return badRequest(ctx, "Invalid variant_id: "+variantErr.Error())
			}
			variantID = &id
		}

		line, lineErr := commands.NewItemLine(
			productID, variantID, item.ProductName, item.Quantity, item.UnitPrice)
		if lineErr != nil {
			return badRequest(ctx, "Invalid item: "+lineErr.Error())
		}
		lines = append(lines, line)
	}

	choices := make(map[kernel.UUID]kernel.UUID, len(req.DeliveryChoices))
	for brandRaw, methodRaw := range req.DeliveryChoices {
		brandID, choiceErr := kernel.UUIDFromString(brandRaw)
		if choiceErr != nil {
			return badRequest(ctx, "Invalid delivery_choices brand ID: "+choiceErr.Error())
		}
		methodID, choiceErr := kernel.UUIDFromString(methodRaw)
		if choiceErr != nil {
			return badRequest(ctx, "Invalid delivery_choices method ID: "+choiceErr.Error())
		}
		choices[brandID] = methodID
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, userID, addressID, req.Currency, lines, choices)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	// Read the committed order back so the response carries the split
	// results: assigned items and the generated per-brand invoices.
	trackingQuery, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return domainError(ctx, err)
	}

	view, err := s.trackingHandler.Handle(ctx.Request().Context(), trackingQuery)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, NewCreateOrderResponse(view))
}

// GetOrderTracking handles GET /api/v1/orders/:id/tracking - returns the
// consolidated tracking view of an order.
func (s *Server) GetOrderTracking(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	tracking, err := s.trackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tracking)
}

// ShipDelivery handles POST /api/v1/deliveries/:id/ship - records a vendor
// handing a parcel to the carrier.
func (s *Server) ShipDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID: "+err.Error())
	}

	var req ShipDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewMarkDeliveryShippedCommand(deliveryID, req.TrackingNumber)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if handleErr := s.markShippedHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDelivery handles POST /api/v1/deliveries/:id/cancel - cancels a
// single delivery unit of an order.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID: "+err.Error())
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID: "+err.Error())
	}

	if handleErr := s.cancelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active - lists every
// unit the progression scheduler still owns.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	query := queries.NewGetActiveDeliveriesQuery()

	deliveries, err := s.activeListHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveries)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application errors onto HTTP status codes: missing
// aggregates are 404, stale versions and rejected transitions are 409,
// validation failures are 400, anything else is a 500.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, errs.ErrInvalidStateTransition):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
