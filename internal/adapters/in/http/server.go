// Package http is the echo REST surface of the order service. Handlers are
// thin: they bind the request, build a command or query and translate the
// result.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

const BaseURL = "/api/v1"

// Use case ports consumed by the server.
type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	OrderTransitioner interface {
		Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (*order.Order, error)
	}
	OrderActor interface {
		Handle(ctx context.Context, cmd commands.OrderActionCommand) (*order.Order, error)
	}
	OrderReader interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.GetOrderQueryResponse, error)
	}
	CustomerOrdersReader interface {
		Handle(ctx context.Context, query queries.GetCustomerOrdersQuery) ([]queries.GetCustomerOrdersQueryResponse, error)
	}
	AvailableTransitionsReader interface {
		Handle(ctx context.Context, query queries.GetAvailableTransitionsQuery) (*queries.GetAvailableTransitionsQueryResponse, error)
	}
	OrderHistoryReader interface {
		Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.HistoryEntryResponse, error)
	}
	OperatorHistoryReader interface {
		Handle(ctx context.Context, query queries.GetHistoryByOperatorQuery) ([]queries.HistoryEntryResponse, error)
	}
	TimeRangeHistoryReader interface {
		Handle(ctx context.Context, query queries.GetHistoryByTimeRangeQuery) ([]queries.HistoryEntryResponse, error)
	}
	HistorySummaryReader interface {
		Handle(ctx context.Context, query queries.GetHistorySummaryQuery) (*queries.GetHistorySummaryQueryResponse, error)
	}
	StatusReachedReader interface {
		Handle(ctx context.Context, query queries.HasReachedStatusQuery) (bool, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder      OrderCreator
	TransitionOrder  OrderTransitioner
	OrderAction      OrderActor
	GetOrder         OrderReader
	CustomerOrders   CustomerOrdersReader
	Transitions      AvailableTransitionsReader
	OrderHistory     OrderHistoryReader
	OperatorHistory  OperatorHistoryReader
	TimeRangeHistory TimeRangeHistoryReader
	HistorySummary   HistorySummaryReader
	StatusReached    StatusReachedReader
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	metrics  *metrics.ServerMetrics
	logger   *slog.Logger
}

func NewServer(handlers Handlers, serverMetrics *metrics.ServerMetrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  serverMetrics,
		logger:   logger.With("component", "http_server"),
	}
}

// RegisterHandlers mounts every route under BaseURL.
func (s *Server) RegisterHandlers(e *echo.Echo) {
	g := e.Group(BaseURL)

	g.POST("/orders", s.CreateOrder)
	g.GET("/orders/:orderId", s.GetOrder)
	g.GET("/customers/:customerId/orders", s.GetCustomerOrders)

	g.POST("/orders/:orderId/transitions", s.TransitionOrder)
	for _, action := range []commands.Action{
		commands.ActionPay,
		commands.ActionStartDelivery,
		commands.ActionConfirmDelivery,
		commands.ActionCancel,
		commands.ActionRequestRefund,
		commands.ActionCompleteRefund,
	} {
		g.POST("/orders/:orderId/"+action.String(), s.orderAction(action))
	}

	g.GET("/orders/:orderId/available-transitions", s.GetAvailableTransitions)
	g.GET("/orders/:orderId/history", s.GetOrderHistory)
	g.GET("/orders/:orderId/history/summary", s.GetHistorySummary)
	g.GET("/orders/:orderId/history/reached", s.HasReachedStatus)
	g.GET("/history", s.SearchHistory)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.CreateOrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, commands.CreateOrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerID, lines, req.Address, req.Phone)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	s.metrics.Created.Inc()
	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQuery(resp))
}

// GetCustomerOrders handles GET /api/v1/customers/:customerId/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(ctx.Param("customerId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.handlers.CustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			OrderID:           o.OrderID,
			Total:             o.Total.StringFixed(2),
			Status:            o.Status.Code(),
			StatusDescription: o.StatusDescription,
			CreatedAt:         o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionOrder handles POST /api/v1/orders/:orderId/transitions.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	var req TransitionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if req.TargetStatus == nil {
		return badRequest(ctx, "targetStatus is required")
	}

	cmd, err := commands.NewTransitionOrderCommand(ctx.Param("orderId"), *req.TargetStatus,
		req.Reason, req.Operator, req.Remarks)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.handlers.TransitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	s.metrics.ObserveTransition(updated.Status().String())
	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// orderAction handles POST /api/v1/orders/:orderId/{action}.
func (s *Server) orderAction(action commands.Action) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var req ActionRequest
		if err := ctx.Bind(&req); err != nil {
			return badRequest(ctx, "Invalid request body")
		}

		cmd, err := commands.NewOrderActionCommand(ctx.Param("orderId"), action, req.Reason, req.Operator)
		if err != nil {
			return s.writeError(ctx, err)
		}

		updated, err := s.handlers.OrderAction.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return s.writeError(ctx, err)
		}

		s.metrics.ObserveTransition(updated.Status().String())
		return ctx.JSON(http.StatusOK, orderFromDomain(updated))
	}
}

// GetAvailableTransitions handles GET /api/v1/orders/:orderId/available-transitions.
func (s *Server) GetAvailableTransitions(ctx echo.Context) error {
	query, err := queries.NewGetAvailableTransitionsQuery(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.handlers.Transitions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	available := make([]StatusRef, 0, len(resp.Available))
	for _, st := range resp.Available {
		available = append(available, statusRef(st))
	}

	return ctx.JSON(http.StatusOK, AvailableTransitions{
		OrderID:     resp.OrderID,
		Current:     statusRef(resp.Current),
		Available:   available,
		IsFinal:     resp.IsFinal,
		Cancellable: resp.Cancellable,
		Refundable:  resp.Refundable,
	})
}

// GetOrderHistory handles GET /api/v1/orders/:orderId/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	query, err := queries.NewGetOrderHistoryQuery(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	entries, err := s.handlers.OrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, historyListFromQuery(entries))
}

// GetHistorySummary handles GET /api/v1/orders/:orderId/history/summary.
func (s *Server) GetHistorySummary(ctx echo.Context) error {
	query, err := queries.NewGetHistorySummaryQuery(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.handlers.HistorySummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	summary := HistorySummary{OrderID: resp.OrderID, Count: resp.Count}
	if resp.Latest != nil {
		latest := historyFromQuery(*resp.Latest)
		summary.Latest = &latest
	}

	return ctx.JSON(http.StatusOK, summary)
}

// HasReachedStatus handles GET /api/v1/orders/:orderId/history/reached?status=<code>.
func (s *Server) HasReachedStatus(ctx echo.Context) error {
	var code int
	if err := echo.QueryParamsBinder(ctx).MustInt("status", &code).BindError(); err != nil {
		return badRequest(ctx, "status must be an integer status code")
	}

	query, err := queries.NewHasReachedStatusQuery(ctx.Param("orderId"), code)
	if err != nil {
		return s.writeError(ctx, err)
	}

	reached, err := s.handlers.StatusReached.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ReachedStatus{
		OrderID: query.OrderID().String(),
		Status:  statusRef(query.Status()),
		Reached: reached,
	})
}

// SearchHistory handles GET /api/v1/history?operator=... and
// GET /api/v1/history?from=...&to=... (RFC 3339).
func (s *Server) SearchHistory(ctx echo.Context) error {
	if operator := ctx.QueryParam("operator"); operator != "" {
		query, err := queries.NewGetHistoryByOperatorQuery(operator)
		if err != nil {
			return s.writeError(ctx, err)
		}
		entries, err := s.handlers.OperatorHistory.Handle(ctx.Request().Context(), query)
		if err != nil {
			return s.writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, historyListFromQuery(entries))
	}

	var from, to time.Time
	err := echo.QueryParamsBinder(ctx).
		MustTime("from", &from, time.RFC3339).
		MustTime("to", &to, time.RFC3339).
		BindError()
	if err != nil {
		return badRequest(ctx, "either operator or from and to (RFC 3339) are required")
	}

	query, err := queries.NewGetHistoryByTimeRangeQuery(from, to)
	if err != nil {
		return s.writeError(ctx, err)
	}

	entries, err := s.handlers.TimeRangeHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, historyListFromQuery(entries))
}
