package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/patch"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP surface of the fulfillment service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createWorkerHandler        commands.CreateWorkerCommandHandler
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderHandler         commands.UpdateOrderCommandHandler
	createInventoryItemHandler commands.CreateInventoryItemCommandHandler
	updateInventoryItemHandler commands.UpdateInventoryItemCommandHandler

	// Query handlers
	getAllWorkersHandler        queries.GetAllWorkersQueryHandler
	getWorkerHandler            queries.GetWorkerQueryHandler
	getWorkerPerformanceHandler queries.GetWorkerPerformanceQueryHandler
	getOrdersHandler            queries.GetOrdersQueryHandler
	getAllInventoryHandler      queries.GetAllInventoryQueryHandler
	getLowStockItemsHandler     queries.GetLowStockItemsQueryHandler
	getKpisHandler              queries.GetKpisQueryHandler

	// Threshold used by the low-stock endpoint when the request omits one.
	lowStockThreshold int
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createWorkerHandler commands.CreateWorkerCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	createInventoryItemHandler commands.CreateInventoryItemCommandHandler,
	updateInventoryItemHandler commands.UpdateInventoryItemCommandHandler,
	getAllWorkersHandler queries.GetAllWorkersQueryHandler,
	getWorkerHandler queries.GetWorkerQueryHandler,
	getWorkerPerformanceHandler queries.GetWorkerPerformanceQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getAllInventoryHandler queries.GetAllInventoryQueryHandler,
	getLowStockItemsHandler queries.GetLowStockItemsQueryHandler,
	getKpisHandler queries.GetKpisQueryHandler,
	lowStockThreshold int,
) *Server {
	return &Server{
		createWorkerHandler:         createWorkerHandler,
		createOrderHandler:          createOrderHandler,
		updateOrderHandler:          updateOrderHandler,
		createInventoryItemHandler:  createInventoryItemHandler,
		updateInventoryItemHandler:  updateInventoryItemHandler,
		getAllWorkersHandler:        getAllWorkersHandler,
		getWorkerHandler:            getWorkerHandler,
		getWorkerPerformanceHandler: getWorkerPerformanceHandler,
		getOrdersHandler:            getOrdersHandler,
		getAllInventoryHandler:      getAllInventoryHandler,
		getLowStockItemsHandler:     getLowStockItemsHandler,
		getKpisHandler:              getKpisHandler,
		lowStockThreshold:           lowStockThreshold,
	}
}

// RegisterRoutes mounts the API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/workers", s.CreateWorker)
	e.GET("/workers", s.GetWorkers)
	e.GET("/workers/:id", s.GetWorker)
	e.GET("/workers/:id/performance", s.GetWorkerPerformance)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetOrders)
	e.PATCH("/orders/:id", s.UpdateOrder)

	e.POST("/inventory", s.CreateInventoryItem)
	e.GET("/inventory", s.GetInventory)
	e.PATCH("/inventory/:id", s.UpdateInventoryItem)
	e.GET("/inventory/low-stock", s.GetLowStockItems)

	e.GET("/kpis/today", s.GetKpisToday)
}

// CreateWorker handles POST /workers - registers a new worker.
func (s *Server) CreateWorker(ctx echo.Context) error {
	var req CreateWorkerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateWorkerCommand(kernel.NewUUID(), req.Name, req.Role, req.Shift)
	if err != nil {
		return badRequest(ctx, "Invalid worker data: "+err.Error())
	}

	created, err := s.createWorkerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, WorkerResponse{
		ID:    created.ID().String(),
		Name:  created.Name(),
		Role:  created.Role(),
		Shift: created.Shift(),
	})
}

// GetWorkers handles GET /workers - retrieves the worker roster.
func (s *Server) GetWorkers(ctx echo.Context) error {
	query := queries.NewGetAllWorkersQuery()

	workers, err := s.getAllWorkersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]WorkerResponse, len(workers))
	for i, w := range workers {
		response[i] = WorkerResponse{
			ID:    w.ID.String(),
			Name:  w.Name,
			Role:  w.Role,
			Shift: w.Shift,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorker handles GET /workers/:id - retrieves a single worker.
func (s *Server) GetWorker(ctx echo.Context) error {
	workerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid worker id")
	}

	query, err := queries.NewGetWorkerQuery(workerID)
	if err != nil {
		return badRequest(ctx, "Invalid worker id")
	}

	w, err := s.getWorkerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WorkerResponse{
		ID:    w.ID.String(),
		Name:  w.Name,
		Role:  w.Role,
		Shift: w.Shift,
	})
}

// GetWorkerPerformance handles GET /workers/:id/performance - all-time
// performance figures for one worker.
func (s *Server) GetWorkerPerformance(ctx echo.Context) error {
	workerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid worker id")
	}

	query, err := queries.NewGetWorkerPerformanceQuery(workerID)
	if err != nil {
		return badRequest(ctx, "Invalid worker id")
	}

	performance, err := s.getWorkerPerformanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WorkerPerformanceResponse{
		WorkerID:           performance.WorkerID.String(),
		OrdersAssigned:     performance.OrdersAssigned,
		OnTimeOrders:       performance.OnTimeOrders,
		OnTimeRate:         performance.OnTimeRate,
		AvgPickTimeMinutes: performance.AvgPickTimeMinutes,
	})
}

// CreateOrder handles POST /orders - creates a new order in pending status.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	channel := order.ChannelUnknown
	if req.Channel != "" {
		parsed, err := order.ChannelFromString(req.Channel)
		if err != nil {
			return badRequest(ctx, "Invalid channel: "+req.Channel)
		}
		channel = parsed
	}

	var workerID *kernel.UUID
	if req.WorkerID != nil {
		parsed, err := kernel.UUIDFromString(*req.WorkerID)
		if err != nil {
			return badRequest(ctx, "Invalid worker id")
		}
		workerID = &parsed
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		channel,
		req.PromisedMinutes,
		workerID,
		time.Now().UTC(),
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrders handles GET /orders - retrieves orders, optionally filtered by
// a ?status= query parameter, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status: "+raw)
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(status)
	if err != nil {
		return badRequest(ctx, "Invalid status filter")
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		var workerID *string
		if o.WorkerID != nil {
			v := o.WorkerID.String()
			workerID = &v
		}

		response[i] = OrderResponse{
			ID:              o.ID.String(),
			Status:          o.Status.String(),
			Channel:         o.Channel.String(),
			PromisedMinutes: o.PromisedMinutes,
			PickTimeMinutes: o.PickTimeMinutes,
			CreatedAt:       o.CreatedAt,
			WorkerID:        workerID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PATCH /orders/:id - partially updates an order.
// Omitted body fields are left untouched; explicit null clears pick time or
// the worker assignment.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status *order.Status
	if req.Status != nil {
		parsed, parseErr := order.StatusFromString(*req.Status)
		if parseErr != nil {
			return badRequest(ctx, "Invalid status: "+*req.Status)
		}
		status = &parsed
	}

	var pickTime patch.Field[int]
	if req.PickTimeMinutes.Defined {
		if req.PickTimeMinutes.Value != nil {
			pickTime = patch.Set(*req.PickTimeMinutes.Value)
		} else {
			pickTime = patch.Clear[int]()
		}
	}

	var workerID patch.Field[kernel.UUID]
	if req.WorkerID.Defined {
		if req.WorkerID.Value != nil {
			parsed, parseErr := kernel.UUIDFromString(*req.WorkerID.Value)
			if parseErr != nil {
				return badRequest(ctx, "Invalid worker id")
			}
			workerID = patch.Set(parsed)
		} else {
			workerID = patch.Clear[kernel.UUID]()
		}
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, status, pickTime, workerID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// CreateInventoryItem handles POST /inventory - adds a new inventory item.
func (s *Server) CreateInventoryItem(ctx echo.Context) error {
	var req CreateInventoryItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateInventoryItemCommand(
		kernel.NewUUID(),
		req.Sku,
		req.Name,
		req.Quantity,
		req.Location,
	)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	created, err := s.createInventoryItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, itemToResponse(created))
}

// GetInventory handles GET /inventory - retrieves all inventory items.
func (s *Server) GetInventory(ctx echo.Context) error {
	query := queries.NewGetAllInventoryQuery()

	items, err := s.getAllInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemReadModelsToResponse(items))
}

// UpdateInventoryItem handles PATCH /inventory/:id - partially updates an item.
func (s *Server) UpdateInventoryItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var req UpdateInventoryItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateInventoryItemCommand(itemID, req.Name, req.Quantity, req.Location)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	updated, err := s.updateInventoryItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemToResponse(updated))
}

// GetLowStockItems handles GET /inventory/low-stock - items at or below a
// quantity threshold. The ?threshold= parameter overrides the configured one.
func (s *Server) GetLowStockItems(ctx echo.Context) error {
	threshold := s.lowStockThreshold
	if raw := ctx.QueryParam("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid threshold: "+raw)
		}
		threshold = parsed
	}

	query, err := queries.NewGetLowStockItemsQuery(threshold)
	if err != nil {
		return badRequest(ctx, "Invalid threshold")
	}

	items, err := s.getLowStockItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemReadModelsToResponse(items))
}

// GetKpisToday handles GET /kpis/today - KPIs over the trailing 24 hours.
func (s *Server) GetKpisToday(ctx echo.Context) error {
	query, err := queries.NewGetKpisQuery(time.Now().UTC(), queries.DefaultKpiWindow)
	if err != nil {
		return domainError(ctx, err)
	}

	kpis, err := s.getKpisHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, KpisResponse{
		OrdersCount:        kpis.OrdersCount,
		CompletedCount:     kpis.CompletedCount,
		OnTimeCount:        kpis.OnTimeCount,
		OnTimeRate:         kpis.OnTimeRate,
		AvgPickTimeMinutes: kpis.AvgPickTimeMinutes,
	})
}

func orderToResponse(o *order.Order) OrderResponse {
	var workerID *string
	if w := o.Worker(); w != nil {
		v := w.String()
		workerID = &v
	}

	return OrderResponse{
		ID:              o.ID().String(),
		Status:          o.Status().String(),
		Channel:         o.Channel().String(),
		PromisedMinutes: o.PromisedMinutes(),
		PickTimeMinutes: o.PickTimeMinutes(),
		CreatedAt:       o.CreatedAt(),
		WorkerID:        workerID,
	}
}

func itemToResponse(item *inventory.Item) InventoryItemResponse {
	return InventoryItemResponse{
		ID:       item.ID().String(),
		Sku:      item.Sku(),
		Name:     item.Name(),
		Quantity: item.Quantity(),
		Location: item.Location(),
	}
}

func itemReadModelsToResponse(items []queries.GetAllInventoryQueryResponse) []InventoryItemResponse {
	response := make([]InventoryItemResponse, len(items))
	for i, item := range items {
		response[i] = InventoryItemResponse{
			ID:       item.ID.String(),
			Sku:      item.Sku,
			Name:     item.Name,
			Quantity: item.Quantity,
			Location: item.Location,
		}
	}
	return response
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError translates use case errors into HTTP responses: unresolved ids
// map to 404, validation and reference failures to 400, everything else to 500.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidReference),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
