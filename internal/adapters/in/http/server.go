package http

import (
	"errors"
	"net/http"

	"dinedash/internal/core/application/usecases/commands"
	"dinedash/internal/core/application/usecases/queries"
	"dinedash/internal/core/domain/model/account"
	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/payment"
	"dinedash/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the fronting gateway. The service trusts them
// as-is; authenticating the caller is the gateway's job.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

// Server wires HTTP routes to command and query handlers. It owns request
// decoding, identity extraction, and the error-to-status mapping; all
// business rules stay behind the handlers.
type Server struct {
	// Command handlers
	addOrderItemHandler            commands.AddOrderItemCommandHandler
	updateOrderItemQuantityHandler commands.UpdateOrderItemQuantityCommandHandler
	placeOrderHandler              commands.PlaceOrderCommandHandler
	markOrderReadyHandler          commands.MarkOrderReadyCommandHandler
	acceptDeliveryHandler          commands.AcceptDeliveryCommandHandler
	rejectDeliveryHandler          commands.RejectDeliveryCommandHandler
	markDeliveredHandler           commands.MarkDeliveredCommandHandler
	updateDeliveryEtaHandler       commands.UpdateDeliveryEtaCommandHandler
	updateLocationHandler          commands.UpdateLocationCommandHandler

	// Query handlers
	getCartHandler               queries.GetCartQueryHandler
	getDeliveryQueueHandler      queries.GetDeliveryQueueQueryHandler
	getAcceptedDeliveriesHandler queries.GetAcceptedDeliveriesQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	updateOrderItemQuantityHandler commands.UpdateOrderItemQuantityCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	rejectDeliveryHandler commands.RejectDeliveryCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	updateDeliveryEtaHandler commands.UpdateDeliveryEtaCommandHandler,
	updateLocationHandler commands.UpdateLocationCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getDeliveryQueueHandler queries.GetDeliveryQueueQueryHandler,
	getAcceptedDeliveriesHandler queries.GetAcceptedDeliveriesQueryHandler,
) *Server {
	return &Server{
		addOrderItemHandler:            addOrderItemHandler,
		updateOrderItemQuantityHandler: updateOrderItemQuantityHandler,
		placeOrderHandler:              placeOrderHandler,
		markOrderReadyHandler:          markOrderReadyHandler,
		acceptDeliveryHandler:          acceptDeliveryHandler,
		rejectDeliveryHandler:          rejectDeliveryHandler,
		markDeliveredHandler:           markDeliveredHandler,
		updateDeliveryEtaHandler:       updateDeliveryEtaHandler,
		updateLocationHandler:          updateLocationHandler,
		getCartHandler:                 getCartHandler,
		getDeliveryQueueHandler:        getDeliveryQueueHandler,
		getAcceptedDeliveriesHandler:   getAcceptedDeliveriesHandler,
	}
}

// RegisterRoutes attaches all routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	// Customer: cart and checkout
	api.GET("/carts/:restaurantID", s.GetCart)
	api.POST("/carts/:restaurantID/items", s.AddOrderItem)
	api.PUT("/orders/:orderID/items/:menuItemID", s.UpdateOrderItemQuantity)
	api.POST("/orders/:orderID/place", s.PlaceOrder)

	// Restaurant: kitchen
	api.POST("/orders/:orderID/ready", s.MarkOrderReady)

	// Courier: matching and delivery
	api.GET("/deliveries/queue", s.GetDeliveryQueue)
	api.GET("/deliveries", s.GetAcceptedDeliveries)
	api.POST("/deliveries/:orderID/accept", s.AcceptDelivery)
	api.POST("/deliveries/:orderID/reject", s.RejectDelivery)
	api.POST("/deliveries/:orderID/delivered", s.MarkDelivered)
	api.PUT("/deliveries/:orderID/eta", s.UpdateDeliveryEta)

	// Any role: profile
	api.PUT("/profile/location", s.UpdateLocation)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AddOrderItem handles POST /api/v1/carts/:restaurantID/items - adds a menu
// item to the caller's cart, creating the cart on first use. Re-adding an
// item replaces its quantity.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	p, err := principalFrom(ctx, account.RoleCustomer)
	if err != nil {
		return respondError(ctx, err)
	}

	restaurantID, err := pathUUID(ctx, "restaurantID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req addOrderItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(req.MenuItemID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("menu item id", err))
	}

	cmd, err := commands.NewAddOrderItemCommand(p.id, restaurantID, menuItemID, req.Quantity)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderItemQuantity handles PUT /api/v1/orders/:orderID/items/:menuItemID -
// changes a line quantity. Zero removes the line; an emptied unplaced cart
// disappears entirely.
func (s *Server) UpdateOrderItemQuantity(ctx echo.Context) error {
	p, err := principalFrom(ctx, account.RoleCustomer)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	menuItemID, err := pathUUID(ctx, "menuItemID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateOrderItemQuantityRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderItemQuantityCommand(p.id, orderID, menuItemID, req.Quantity)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.updateOrderItemQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders/:orderID/place - checks out the
// cart, freezing its total and recording the payment.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	p, err := principalFrom(ctx, account.RoleCustomer)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req placeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	method, err := payment.ParseMethod(req.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	card, err := payment.NewCard(
		method,
		req.CardholderName,
		req.BillingAddress,
		req.CardNumber,
		req.ExpirationMonth,
		req.ExpirationYear,
		req.CVV,
	)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewPlaceOrderCommand(p.id, orderID, card)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderReady handles POST /api/v1/orders/:orderID/ready - the restaurant
// signals the order is cooked and waiting for a courier.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	p, err := principalFrom(ctx, account.RoleRestaurant)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderReadyCommand(p.id, orderID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptDelivery handles POST /api/v1/deliveries/:orderID/accept - claims a
// delivery for the calling courier. Exactly one courier wins per order.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	p, err := principalFrom(ctx, account.RoleCourier)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptDeliveryCommand(p.id, orderID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectDelivery handles POST /api/v1/deliveries/:orderID/reject - hides the
// order from the calling courier's queue for good.
func (s *Server) RejectDelivery(ctx echo.Context) error {
	p, err := principalFrom(ctx, account.RoleCourier)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRejectDeliveryCommand(p.id, orderID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.rejectDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/deliveries/:orderID/delivered - the
// assigned courier completes the delivery.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	p, err := principalFrom(ctx, account.RoleCourier)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(p.id, orderID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryEta handles PUT /api/v1/deliveries/:orderID/eta - sets or
// clears the minutes-away estimate. Non-numeric input clears it.
func (s *Server) UpdateDeliveryEta(ctx echo.Context) error {
	p, err := principalFrom(ctx, account.RoleCourier)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateDeliveryEtaRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryEtaCommand(p.id, orderID, req.MinutesAway)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.updateDeliveryEtaHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateLocation handles PUT /api/v1/profile/location - updates the calling
// principal's address and geocoded coordinates, whatever their role.
func (s *Server) UpdateLocation(ctx echo.Context) error {
	p, err := anyPrincipalFrom(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateLocationCommand(p.id, p.role, req.Address)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.updateLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCart handles GET /api/v1/carts/:restaurantID - returns the caller's
// unplaced cart against the restaurant, priced from the live menu.
func (s *Server) GetCart(ctx echo.Context) error {
	p, err := principalFrom(ctx, account.RoleCustomer)
	if err != nil {
		return respondError(ctx, err)
	}

	restaurantID, err := pathUUID(ctx, "restaurantID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCartQuery(p.id, restaurantID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cart, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]cartLine, len(cart.Lines))
	for i, line := range cart.Lines {
		lines[i] = cartLine{
			MenuItemID: line.MenuItemID.String(),
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
			LineTotal:  line.LineTotal,
		}
	}

	return ctx.JSON(http.StatusOK, cartResponse{
		OrderID:      cart.OrderID.String(),
		Lines:        lines,
		RunningTotal: cart.RunningTotal,
	})
}

// GetDeliveryQueue handles GET /api/v1/deliveries/queue - lists orders the
// calling courier could take, nearest combined distance first. The
// max_distance query parameter narrows the radius.
func (s *Server) GetDeliveryQueue(ctx echo.Context) error {
	p, err := principalFrom(ctx, account.RoleCourier)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDeliveryQueueQuery(p.id, ctx.QueryParam("max_distance"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	queue, err := s.getDeliveryQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]deliveryQueueEntry, len(queue))
	for i, entry := range queue {
		response[i] = deliveryQueueEntry{
			OrderID:         entry.OrderID.String(),
			RestaurantName:  entry.RestaurantName,
			TotalCost:       entry.TotalCost,
			RestaurantMiles: entry.RestaurantMiles,
			CustomerMiles:   entry.CustomerMiles,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAcceptedDeliveries handles GET /api/v1/deliveries - lists the calling
// courier's in-transit deliveries.
func (s *Server) GetAcceptedDeliveries(ctx echo.Context) error {
	p, err := principalFrom(ctx, account.RoleCourier)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAcceptedDeliveriesQuery(p.id)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	deliveries, err := s.getAcceptedDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]acceptedDelivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = acceptedDelivery{
			OrderID:           d.OrderID.String(),
			RestaurantName:    d.RestaurantName,
			RestaurantAddress: d.RestaurantAddress,
			CustomerName:      d.CustomerName,
			CustomerAddress:   d.CustomerAddress,
			TotalCost:         d.TotalCost,
			MinutesAway:       d.MinutesAway,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type principal struct {
	id   kernel.UUID
	role account.Role
}

// anyPrincipalFrom extracts the caller's identity from the gateway headers
// without restricting the role.
func anyPrincipalFrom(ctx echo.Context) (principal, error) {
	rawID := ctx.Request().Header.Get(HeaderUserID)
	if rawID == "" {
		return principal{}, errs.NewValueIsRequiredError(HeaderUserID)
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return principal{}, errs.NewValueIsInvalidErrorWithCause(HeaderUserID, err)
	}

	role, err := account.ParseRole(ctx.Request().Header.Get(HeaderUserRole))
	if err != nil {
		return principal{}, errs.NewValueIsInvalidErrorWithCause(HeaderUserRole, err)
	}

	return principal{id: id, role: role}, nil
}

// principalFrom extracts the caller's identity and requires the given role.
func principalFrom(ctx echo.Context, required account.Role) (principal, error) {
	p, err := anyPrincipalFrom(ctx)
	if err != nil {
		return principal{}, err
	}

	if err := p.role.Require(required); err != nil {
		return principal{}, err
	}

	return p, nil
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return id, nil
}

// respondError maps domain errors to HTTP statuses. Anything unrecognized
// is treated as an internal failure.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, errorResponse{Code: status, Message: err.Error()})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
