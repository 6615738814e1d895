package http

import (
	"net/http"

	"enquiry/internal/core/application/usecases/commands"
	"enquiry/internal/core/application/usecases/queries"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/saleorder"

	"github.com/labstack/echo/v4"
)

// CreateSaleOrder handles POST /api/v1/sale-orders.
func (s *Server) CreateSaleOrder(ctx echo.Context) error {
	var body NewSaleOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	partnerID, err := requireUUID("partnerId", body.PartnerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	lines, err := lineRequests(body.Lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateSaleOrderCommand(id, partnerID, dateOrDefault(body.DateOrder), lines)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.CreateSaleOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondSaleOrder(ctx, http.StatusCreated, id)
}

// ListSaleOrders handles GET /api/v1/sale-orders?partnerId=&state=&fromEnquiry=.
func (s *Server) ListSaleOrders(ctx echo.Context) error {
	partnerID, err := queryUUID(ctx, "partnerId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	var (
		state       *string
		fromEnquiry *bool
	)
	if err := queryParam(ctx, "state", &state); err != nil {
		return badRequest(ctx, err.Error())
	}
	if err := queryParam(ctx, "fromEnquiry", &fromEnquiry); err != nil {
		return badRequest(ctx, err.Error())
	}

	filter := queries.ListSaleOrdersFilter{PartnerID: partnerID, HasEnquiry: fromEnquiry}
	if state != nil {
		st := saleorder.State(*state)
		filter.State = &st
	}
	query, err := queries.NewListSaleOrdersQuery(filter)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.h.ListSaleOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromSaleOrderSummaries(orders))
}

// GetSaleOrder handles GET /api/v1/sale-orders/{saleOrderId}.
func (s *Server) GetSaleOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "saleOrderId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return s.respondSaleOrder(ctx, http.StatusOK, id)
}

func (s *Server) respondSaleOrder(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetSaleOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.h.GetSaleOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, fromSaleOrderView(view))
}
