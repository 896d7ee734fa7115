// Package http exposes the application's commands and queries over a
// JSON REST API.
package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/payment"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createClientHandler         commands.CreateClientCommandHandler
	createProductHandler        commands.CreateProductCommandHandler
	addStockHandler             commands.AddStockCommandHandler
	placeOrderHandler           commands.PlaceOrderCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	createTransporterHandler    commands.CreateTransporterCommandHandler
	createDeliveryHandler       commands.CreateDeliveryCommandHandler
	updateDeliveryHandler       commands.UpdateDeliveryCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	assignTransporterHandler    commands.AssignTransporterCommandHandler
	recordPaymentHandler        commands.RecordPaymentCommandHandler
	updatePaymentStatusHandler  commands.UpdatePaymentStatusCommandHandler
	processPaymentHandler       commands.ProcessPaymentCommandHandler

	// Query handlers
	getClientOrdersHandler       queries.GetClientOrdersQueryHandler
	searchProductsHandler        queries.SearchProductsQueryHandler
	getDeliveriesByStatusHandler queries.GetDeliveriesByStatusQueryHandler
	getUpcomingDeliveriesHandler queries.GetUpcomingDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createClientHandler commands.CreateClientCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	addStockHandler commands.AddStockCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	createTransporterHandler commands.CreateTransporterCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	updateDeliveryHandler commands.UpdateDeliveryCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	assignTransporterHandler commands.AssignTransporterCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	updatePaymentStatusHandler commands.UpdatePaymentStatusCommandHandler,
	processPaymentHandler commands.ProcessPaymentCommandHandler,
	getClientOrdersHandler queries.GetClientOrdersQueryHandler,
	searchProductsHandler queries.SearchProductsQueryHandler,
	getDeliveriesByStatusHandler queries.GetDeliveriesByStatusQueryHandler,
	getUpcomingDeliveriesHandler queries.GetUpcomingDeliveriesQueryHandler,
) *Server {
	return &Server{
		createClientHandler:          createClientHandler,
		createProductHandler:         createProductHandler,
		addStockHandler:              addStockHandler,
		placeOrderHandler:            placeOrderHandler,
		updateOrderStatusHandler:     updateOrderStatusHandler,
		createTransporterHandler:     createTransporterHandler,
		createDeliveryHandler:        createDeliveryHandler,
		updateDeliveryHandler:        updateDeliveryHandler,
		updateDeliveryStatusHandler:  updateDeliveryStatusHandler,
		assignTransporterHandler:     assignTransporterHandler,
		recordPaymentHandler:         recordPaymentHandler,
		updatePaymentStatusHandler:   updatePaymentStatusHandler,
		processPaymentHandler:        processPaymentHandler,
		getClientOrdersHandler:       getClientOrdersHandler,
		searchProductsHandler:        searchProductsHandler,
		getDeliveriesByStatusHandler: getDeliveriesByStatusHandler,
		getUpcomingDeliveriesHandler: getUpcomingDeliveriesHandler,
	}
}

// RegisterRoutes wires all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/clients", s.CreateClient)
	api.GET("/clients/:id/orders", s.GetClientOrders)

	api.POST("/products", s.CreateProduct)
	api.POST("/products/:id/stock", s.AddStock)
	api.GET("/products", s.SearchProducts)

	api.POST("/orders", s.PlaceOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)

	api.POST("/transporters", s.CreateTransporter)

	api.POST("/deliveries", s.CreateDelivery)
	api.PATCH("/deliveries/:id", s.UpdateDelivery)
	api.PATCH("/deliveries/:id/status", s.UpdateDeliveryStatus)
	api.POST("/deliveries/:id/transporter", s.AssignTransporter)
	api.GET("/deliveries", s.GetDeliveriesByStatus)
	api.GET("/deliveries/upcoming", s.GetUpcomingDeliveries)

	api.POST("/payments", s.RecordPayment)
	api.PATCH("/payments/:id/status", s.UpdatePaymentStatus)
	api.POST("/payments/:id/process", s.ProcessPayment)
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var req CreateClientRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := parseUUID(req.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateClientCommand(clientID, req.Name, req.Email, req.Address)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createClientHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, clientResponse(created))
}

// GetClientOrders handles GET /api/v1/clients/:id/orders.
func (s *Server) GetClientOrders(ctx echo.Context) error {
	clientID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetClientOrdersQuery(clientID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getClientOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderSummaryResponse{
			ID:        o.ID.String(),
			Status:    o.Status,
			Total:     o.Total,
			CreatedAt: o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID, err := parseUUID(req.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	supplierID, err := parseOptionalUUID(req.SupplierID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(
		productID, req.Name, req.Description, req.Price, req.Stock, supplierID,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productResponse(created))
}

// AddStock handles POST /api/v1/products/:id/stock.
func (s *Server) AddStock(ctx echo.Context) error {
	productID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AddStockRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddStockCommand(productID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.addStockHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productResponse(updated))
}

// SearchProducts handles GET /api/v1/products?search=term.
func (s *Server) SearchProducts(ctx echo.Context) error {
	query, err := queries.NewSearchProductsQuery(ctx.QueryParam("search"))
	if err != nil {
		return respondError(ctx, err)
	}

	products, err := s.searchProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ProductSummaryResponse, len(products))
	for i, p := range products {
		response[i] = ProductSummaryResponse{
			ID:    p.ID.String(),
			Name:  p.Name,
			Price: p.Price,
			Stock: p.Stock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := parseUUID(req.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	clientID, err := parseUUID(req.ClientID)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]commands.PlaceOrderLineInput, len(req.Lines))
	for i, line := range req.Lines {
		// A malformed product ID becomes the zero UUID so that line
		// integrity checks run in admission order, not here.
		productID, _ := kernel.UUIDFromString(line.ProductID)
		lines[i] = commands.PlaceOrderLineInput{
			ProductID: productID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
	}

	cmd, err := commands.NewPlaceOrderCommand(orderID, clientID, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse(placed))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(updated))
}

// CreateTransporter handles POST /api/v1/transporters.
func (s *Server) CreateTransporter(ctx echo.Context) error {
	var req CreateTransporterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	transporterID, err := parseUUID(req.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateTransporterCommand(transporterID, req.Name, req.Phone, req.Rating)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createTransporterHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, transporterResponse(created))
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	deliveryID, err := parseUUID(req.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseUUID(req.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	transporterID, err := parseOptionalUUID(req.TransporterID)
	if err != nil {
		return respondError(ctx, err)
	}

	status := delivery.Unknown
	if req.Status != nil {
		status, err = delivery.StatusFromString(*req.Status)
		if err != nil {
			return respondError(ctx, err)
		}
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID, orderID, transporterID, req.ScheduledAt, req.Address, req.Cost, status,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, deliveryResponse(created))
}

// UpdateDelivery handles PATCH /api/v1/deliveries/:id. Absent fields are
// left untouched except for the transporter, which is cleared when the
// request carries no transporter_id.
func (s *Server) UpdateDelivery(ctx echo.Context) error {
	deliveryID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := parseOptionalUUID(req.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	transporterID, err := parseOptionalUUID(req.TransporterID)
	if err != nil {
		return respondError(ctx, err)
	}

	var status *delivery.Status
	if req.Status != nil {
		parsed, parseErr := delivery.StatusFromString(*req.Status)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateDeliveryCommand(
		deliveryID, orderID, transporterID, req.ScheduledAt, req.Address, req.Cost, status,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryResponse(updated))
}

// UpdateDeliveryStatus handles PATCH /api/v1/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateDeliveryStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryResponse(updated))
}

// AssignTransporter handles POST /api/v1/deliveries/:id/transporter.
func (s *Server) AssignTransporter(ctx echo.Context) error {
	deliveryID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AssignTransporterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	transporterID, err := parseUUID(req.TransporterID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignTransporterCommand(deliveryID, transporterID)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.assignTransporterHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryResponse(updated))
}

// GetDeliveriesByStatus handles GET /api/v1/deliveries?status=EnRoute.
func (s *Server) GetDeliveriesByStatus(ctx echo.Context) error {
	status, err := delivery.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDeliveriesByStatusQuery(status)
	if err != nil {
		return respondError(ctx, err)
	}

	deliveries, err := s.getDeliveriesByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryQueryResponses(deliveries))
}

// GetUpcomingDeliveries handles GET /api/v1/deliveries/upcoming?from=&to=.
// Bounds are RFC 3339 timestamps.
func (s *Server) GetUpcomingDeliveries(ctx echo.Context) error {
	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "invalid 'from' timestamp")
	}

	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "invalid 'to' timestamp")
	}

	query, err := queries.NewGetUpcomingDeliveriesQuery(from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	deliveries, err := s.getUpcomingDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryQueryResponses(deliveries))
}

// RecordPayment handles POST /api/v1/payments.
func (s *Server) RecordPayment(ctx echo.Context) error {
	var req RecordPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	paymentID, err := parseUUID(req.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseUUID(req.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	method, err := payment.MethodFromString(req.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	status := payment.StatusUnknown
	if req.Status != nil {
		status, err = payment.StatusFromString(*req.Status)
		if err != nil {
			return respondError(ctx, err)
		}
	}

	var occurredAt time.Time
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	cmd, err := commands.NewRecordPaymentCommand(
		paymentID, orderID, occurredAt, req.Amount, method, status,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	recorded, err := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, paymentResponse(recorded))
}

// UpdatePaymentStatus handles PATCH /api/v1/payments/:id/status.
func (s *Server) UpdatePaymentStatus(ctx echo.Context) error {
	paymentID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdatePaymentStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := payment.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(paymentID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updatePaymentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentResponse(updated))
}

// ProcessPayment handles POST /api/v1/payments/:id/process.
func (s *Server) ProcessPayment(ctx echo.Context) error {
	paymentID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewProcessPaymentCommand(paymentID)
	if err != nil {
		return respondError(ctx, err)
	}

	processed, err := s.processPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentResponse(processed))
}

func parseUUID(raw string) (kernel.UUID, error) {
	return kernel.UUIDFromString(raw)
}

func parseOptionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func deliveryQueryResponses(rows []queries.DeliveryQueryResponse) []DeliveryResponse {
	response := make([]DeliveryResponse, len(rows))
	for i, d := range rows {
		response[i] = DeliveryResponse{
			ID:          d.ID.String(),
			OrderID:     d.OrderID.String(),
			ScheduledAt: d.ScheduledAt,
			Address:     d.Address,
			Cost:        d.Cost,
			Status:      d.Status,
		}
		if d.TransporterID != nil {
			t := d.TransporterID.String()
			response[i].TransporterID = &t
		}
	}
	return response
}
