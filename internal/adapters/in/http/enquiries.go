package http

import (
	"net/http"

	"enquiry/internal/core/application/usecases/commands"
	"enquiry/internal/core/application/usecases/queries"
	"enquiry/internal/core/domain/model/enquiry"
	"enquiry/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateEnquiry handles POST /api/v1/enquiries.
func (s *Server) CreateEnquiry(ctx echo.Context) error {
	var body NewEnquiry
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	partnerID, err := requireUUID("partnerId", body.PartnerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	userID, err := toOptionalUUID(body.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}
	lines, err := lineRequests(body.Lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateEnquiryCommand(id, commands.CreateEnquiryParams{
		Name:       body.Name,
		Sequence:   body.Sequence,
		PartnerID:  partnerID,
		UserID:     userID,
		DateOrder:  dateOrDefault(body.DateOrder),
		MultiOrder: body.MultiOrder,
		Lines:      lines,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.CreateEnquiry.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondEnquiry(ctx, http.StatusCreated, id)
}

// ListEnquiries handles GET /api/v1/enquiries?state=pending&partnerId=...
func (s *Server) ListEnquiries(ctx echo.Context) error {
	var state *string
	if err := queryParam(ctx, "state", &state); err != nil {
		return badRequest(ctx, err.Error())
	}
	partnerID, err := queryUUID(ctx, "partnerId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var filter *enquiry.State
	if state != nil {
		st := enquiry.State(*state)
		filter = &st
	}
	query, err := queries.NewListEnquiriesQuery(filter, partnerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	enquiries, err := s.h.ListEnquiries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromEnquirySummaries(enquiries))
}

// GetEnquiry handles GET /api/v1/enquiries/{enquiryId}.
func (s *Server) GetEnquiry(ctx echo.Context) error {
	id, err := pathUUID(ctx, "enquiryId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return s.respondEnquiry(ctx, http.StatusOK, id)
}

// UpdateEnquiry handles PATCH /api/v1/enquiries/{enquiryId}.
func (s *Server) UpdateEnquiry(ctx echo.Context) error {
	id, err := pathUUID(ctx, "enquiryId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	var body EnquiryPatch
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	partnerID, err := toOptionalUUID(body.PartnerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	userID, err := toOptionalUUID(body.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewUpdateEnquiryCommand(id, commands.EnquiryHeaderPatch{
		PartnerID:  partnerID,
		DateOrder:  body.DateOrder,
		UserID:     userID,
		Sequence:   body.Sequence,
		MultiOrder: body.MultiOrder,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.UpdateEnquiry.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondEnquiry(ctx, http.StatusOK, id)
}

// AddEnquiryLine handles POST /api/v1/enquiries/{enquiryId}/lines.
func (s *Server) AddEnquiryLine(ctx echo.Context) error {
	id, err := pathUUID(ctx, "enquiryId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	var body Line
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	line, err := body.request()
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddEnquiryLineCommand(id, kernel.NewUUID(), line)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.AddEnquiryLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondEnquiry(ctx, http.StatusCreated, id)
}

// UpdateEnquiryLine handles PUT /api/v1/enquiries/{enquiryId}/lines/{lineId}.
// The line is replaced by the body.
func (s *Server) UpdateEnquiryLine(ctx echo.Context) error {
	id, err := pathUUID(ctx, "enquiryId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	lineID, err := pathUUID(ctx, "lineId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	var body Line
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	line, err := body.request()
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateEnquiryLineCommand(id, lineID, line)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.UpdateEnquiryLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondEnquiry(ctx, http.StatusOK, id)
}

// RemoveEnquiryLine handles DELETE /api/v1/enquiries/{enquiryId}/lines/{lineId}.
func (s *Server) RemoveEnquiryLine(ctx echo.Context) error {
	id, err := pathUUID(ctx, "enquiryId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	lineID, err := pathUUID(ctx, "lineId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRemoveEnquiryLineCommand(id, lineID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.RemoveEnquiryLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmEnquiry handles POST /api/v1/enquiries/{enquiryId}/confirm and
// answers with the created quotation.
func (s *Server) ConfirmEnquiry(ctx echo.Context) error {
	id, err := pathUUID(ctx, "enquiryId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewConfirmEnquiryCommand(id, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.ConfirmEnquiry.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondSaleOrder(ctx, http.StatusCreated, orderID)
}

// CreateAdditionalOrder handles POST /api/v1/enquiries/{enquiryId}/additional-orders.
func (s *Server) CreateAdditionalOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "enquiryId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateAdditionalOrderCommand(id, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.CreateAdditionalOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondSaleOrder(ctx, http.StatusCreated, orderID)
}

// CancelEnquiry handles POST /api/v1/enquiries/{enquiryId}/cancel.
func (s *Server) CancelEnquiry(ctx echo.Context) error {
	id, err := pathUUID(ctx, "enquiryId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelEnquiryCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.CancelEnquiry.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondEnquiry(ctx, http.StatusOK, id)
}

// ListEnquirySaleOrders handles GET /api/v1/enquiries/{enquiryId}/sale-orders.
func (s *Server) ListEnquirySaleOrders(ctx echo.Context) error {
	id, err := pathUUID(ctx, "enquiryId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewListEnquirySaleOrdersQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	orders, err := s.h.ListEnquirySaleOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromSaleOrderSummaries(orders))
}

func (s *Server) respondEnquiry(ctx echo.Context, status int, id kernel.UUID) error {
	view, err := s.enquiryView(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, fromEnquiryView(view))
}

func (s *Server) enquiryView(ctx echo.Context, id kernel.UUID) (queries.EnquiryView, error) {
	query, err := queries.NewGetEnquiryQuery(id)
	if err != nil {
		return queries.EnquiryView{}, err
	}
	return s.h.GetEnquiry.Handle(ctx.Request().Context(), query)
}
