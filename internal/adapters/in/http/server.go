package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/Mearylis/Restaurant-Controller/internal/core/application/dispatch"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/customer"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/menu"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/order"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/table"
	"github.com/Mearylis/Restaurant-Controller/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the restaurant over HTTP.
// It translates requests into facade calls and domain objects into JSON.
type Server struct {
	facade  *dispatch.Facade
	catalog *menu.Catalog
}

// NewServer creates a new HTTP server over the dispatch facade and the menu.
func NewServer(facade *dispatch.Facade, catalog *menu.Catalog) *Server {
	return &Server{facade: facade, catalog: catalog}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/tables", s.GetTables)
	api.POST("/tables/:number/occupy", s.OccupyTable)
	api.POST("/tables/:number/free", s.FreeTable)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/ready", s.MarkOrderReady)
	api.POST("/orders/:id/served", s.MarkOrderServed)
	api.POST("/orders/:id/complete", s.CompleteOrder)

	api.GET("/menu", s.GetMenu)
	api.POST("/menu", s.AddDish)
	api.DELETE("/menu/:name", s.RemoveDish)

	api.GET("/staff", s.GetStaff)
	api.GET("/statistics", s.GetStatistics)
	api.PUT("/pricing-policy", s.SetPricingPolicy)
}

// GetTables handles GET /api/v1/tables - lists all tables.
func (s *Server) GetTables(ctx echo.Context) error {
	tables := s.facade.Tables().All()
	response := make([]TableResponse, len(tables))
	for i, tbl := range tables {
		response[i] = toTableResponse(tbl)
	}
	return ctx.JSON(http.StatusOK, response)
}

// OccupyTable handles POST /api/v1/tables/:number/occupy - seats a guest.
func (s *Server) OccupyTable(ctx echo.Context) error {
	number, err := intParam(ctx, "number")
	if err != nil {
		return badRequest(ctx, "Invalid table number")
	}

	var request OccupyTableRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	guest, err := customer.NewCustomer(request.Name, request.Phone, request.Email)
	if err != nil {
		return badRequest(ctx, "Invalid guest data: "+err.Error())
	}

	if err := s.facade.OccupyTable(number, guest); err != nil {
		return domainError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// FreeTable handles POST /api/v1/tables/:number/free - releases a table.
func (s *Server) FreeTable(ctx echo.Context) error {
	number, err := intParam(ctx, "number")
	if err != nil {
		return badRequest(ctx, "Invalid table number")
	}
	if err := s.facade.FreeTable(number); err != nil {
		return domainError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders - creates an order for a seated guest.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]order.LineItem, 0, len(request.Items))
	for _, it := range request.Items {
		item, err := order.NewLineItem(it.Name, kernel.MoneyFromFloat(it.Price), it.Category)
		if err != nil {
			return badRequest(ctx, "Invalid item: "+err.Error())
		}
		items = append(items, item)
	}

	o, err := s.facade.PlaceOrder(request.TableNumber, items, request.Instructions)
	if err != nil {
		return domainError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toOrderResponse(o))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	o, err := s.facade.GetOrder(id)
	if err != nil {
		return domainError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// MarkOrderReady handles POST /api/v1/orders/:id/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	return s.transition(ctx, s.facade.MarkOrderReady)
}

// MarkOrderServed handles POST /api/v1/orders/:id/served.
func (s *Server) MarkOrderServed(ctx echo.Context) error {
	return s.transition(ctx, s.facade.MarkOrderServed)
}

func (s *Server) transition(ctx echo.Context, fn func(kernel.OrderID) error) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	if err := fn(id); err != nil {
		return domainError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete - settles an order.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request CompleteOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if request.Method == "" {
		request.Method = "Cash"
	}

	if err := s.facade.CompleteOrder(ctx.Request().Context(), id, request.Method); err != nil {
		return domainError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetMenu handles GET /api/v1/menu - lists the catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	dishes := s.catalog.All()
	response := make([]DishResponse, len(dishes))
	for i, d := range dishes {
		response[i] = DishResponse{
			Name:     d.Name(),
			Price:    d.Price().Float64(),
			Category: d.Category(),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddDish handles POST /api/v1/menu - adds a dish to the catalog.
func (s *Server) AddDish(ctx echo.Context) error {
	var request DishRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	dish, err := menu.NewDish(request.Name, kernel.MoneyFromFloat(request.Price), request.Category)
	if err != nil {
		return badRequest(ctx, "Invalid dish data: "+err.Error())
	}
	s.catalog.Add(dish)
	return ctx.NoContent(http.StatusCreated)
}

// RemoveDish handles DELETE /api/v1/menu/:name.
func (s *Server) RemoveDish(ctx echo.Context) error {
	if !s.catalog.Remove(ctx.Param("name")) {
		return notFound(ctx, "Dish not found")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetStaff handles GET /api/v1/staff - lists the roster.
func (s *Server) GetStaff(ctx echo.Context) error {
	members := s.facade.Directory().All()
	response := make([]StaffResponse, len(members))
	for i, m := range members {
		response[i] = StaffResponse{
			ID:             m.ID().String(),
			Name:           m.Name(),
			Role:           m.Role().String(),
			OnDuty:         m.IsOnDuty(),
			Workload:       m.Workload().String(),
			AssignedOrders: m.CurrentWorkload(),
			CompletedToday: m.CompletedToday(),
			Efficiency:     m.Efficiency(),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetStatistics handles GET /api/v1/statistics.
func (s *Server) GetStatistics(ctx echo.Context) error {
	stats := s.facade.Statistics()

	counts := make(map[string]int, len(stats.Store.CountsByStatus))
	for status, n := range stats.Store.CountsByStatus {
		counts[status.String()] = n
	}

	return ctx.JSON(http.StatusOK, StatisticsResponse{
		TotalOrders:    stats.Store.TotalOrders,
		OpenOrders:     stats.Store.OpenOrders,
		ActiveOrders:   stats.Store.ActiveOrders,
		ArchivedOrders: stats.Store.ArchivedOrders,
		CountsByStatus: counts,
		TotalRevenue:   stats.Store.TotalRevenue.Float64(),
		TotalStaff:     stats.Staff.TotalStaff,
		StaffOnDuty:    stats.Staff.OnDuty,
		AssignedOrders: stats.Staff.AssignedOrders,
		CompletedToday: stats.Staff.CompletedToday,
	})
}

// SetPricingPolicy handles PUT /api/v1/pricing-policy.
func (s *Server) SetPricingPolicy(ctx echo.Context) error {
	var request PricingPolicyRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.facade.SetPricingPolicy(request.Name); err != nil {
		return badRequest(ctx, "Unknown pricing policy: "+request.Name)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func toTableResponse(tbl *table.Table) TableResponse {
	response := TableResponse{
		Number:   tbl.Number(),
		Seats:    tbl.Seats(),
		Occupied: tbl.IsOccupied(),
	}
	if guest := tbl.Guest(); guest != nil {
		response.Guest = guest.Name()
	}
	if orderID := tbl.OrderID(); orderID != nil {
		response.OrderID = orderID.Int64()
	}
	return response
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := o.Items()
	itemResponses := make([]OrderItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = OrderItemResponse{
			Name:     item.Name(),
			Price:    item.Price().Float64(),
			Category: item.Category(),
		}
	}

	history := o.History()
	historyResponses := make([]StatusChangeResponse, len(history))
	for i, change := range history {
		entry := StatusChangeResponse{
			To: change.To().String(),
			At: change.At().Format(time.RFC3339),
		}
		if from := change.From(); from != nil {
			entry.From = from.String()
		}
		historyResponses[i] = entry
	}

	response := OrderResponse{
		ID:           o.ID().Int64(),
		TableNumber:  o.TableNumber(),
		Customer:     o.Customer().Name(),
		Status:       o.Status().String(),
		Total:        o.Total().Float64(),
		Items:        itemResponses,
		Instructions: o.SpecialInstructions(),
		History:      historyResponses,
	}
	if completedAt := o.CompletedAt(); completedAt != nil {
		response.CompletedAt = completedAt.Format(time.RFC3339)
	}
	return response
}

func intParam(ctx echo.Context, name string) (int, error) {
	var value int
	if err := echo.PathParamsBinder(ctx).Int(name, &value).BindError(); err != nil {
		return 0, err
	}
	return value, nil
}

func orderIDParam(ctx echo.Context) (kernel.OrderID, error) {
	var value int64
	if err := echo.PathParamsBinder(ctx).Int64("id", &value).BindError(); err != nil {
		return kernel.OrderID{}, err
	}
	return kernel.OrderIDFromInt(value)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, table.ErrTableNotFound):
		return notFound(ctx, err.Error())
	case errors.Is(err, table.ErrTableIsOccupied),
		errors.Is(err, dispatch.ErrOrderNotPreparing),
		errors.Is(err, dispatch.ErrOrderNotReady),
		errors.Is(err, dispatch.ErrOrderNotServed):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, dispatch.ErrPaymentDeclined):
		return ctx.JSON(http.StatusPaymentRequired, Error{
			Code:    http.StatusPaymentRequired,
			Message: err.Error(),
		})
	default:
		return badRequest(ctx, err.Error())
	}
}
