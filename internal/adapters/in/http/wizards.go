package http

import (
	"net/http"

	"enquiry/internal/core/application/usecases/commands"
	"enquiry/internal/core/application/usecases/queries"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/wizard"

	"github.com/labstack/echo/v4"
)

// OpenSaleLineWizard handles POST /api/v1/wizards/sale-lines.
func (s *Server) OpenSaleLineWizard(ctx echo.Context) error {
	var body OpenSaleLineWizard
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	activeID, err := requireUUID("activeId", body.ActiveID)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewOpenSaleLineWizardCommand(id,
		wizard.SourceType(body.Type), wizard.TargetModel(body.ActiveModel), activeID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.OpenSaleLineWizard.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, SaleLineWizard{
		ID:          id.Bytes(),
		Type:        string(cmd.SourceType()),
		ActiveModel: string(cmd.TargetModel()),
		ActiveID:    activeID.Bytes(),
	})
}

// ListSaleLineWizardCandidates handles GET /api/v1/wizards/sale-lines/{wizardId}/candidates.
func (s *Server) ListSaleLineWizardCandidates(ctx echo.Context) error {
	return s.listCandidates(ctx, queries.SaleLineWizardKind)
}

// ApplySaleLineWizard handles POST /api/v1/wizards/sale-lines/{wizardId}/apply.
func (s *Server) ApplySaleLineWizard(ctx echo.Context) error {
	id, err := pathUUID(ctx, "wizardId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	var body ApplySaleLineWizard
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	saleOrderID, err := toOptionalUUID(body.SaleOrderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	saleOrderIDs, err := toUUIDs(body.SaleOrderIDs)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewApplySaleLineWizardCommand(id, wizard.SaleLineSelection{
		SaleOrderID:  saleOrderID,
		MultiOrder:   body.MultiOrder,
		ClearAdd:     body.ClearAdd,
		SaleOrderIDs: saleOrderIDs,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.ApplySaleLineWizard.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// OpenProductAddWizard handles POST /api/v1/wizards/product-add and answers
// with the wizard defaults.
func (s *Server) OpenProductAddWizard(ctx echo.Context) error {
	var body OpenProductAddWizard
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	productID, err := requireUUID("productId", body.ProductID)
	if err != nil {
		return s.fail(ctx, err)
	}
	taxIDs, err := toUUIDs(body.TaxIDs)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewOpenProductAddWizardCommand(id, commands.ProductAddRequest{
		OrderType: wizard.OrderType(body.OrderType),
		ProductID: productID,
		PriceUnit: body.PriceUnit,
		Quantity:  body.Quantity,
		UoM:       body.UoM,
		TaxIDs:    taxIDs,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.OpenProductAddWizard.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetProductAddWizardQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.h.GetProductAddWizard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, fromProductAddWizardView(view))
}

// ListProductAddWizardCandidates handles GET /api/v1/wizards/product-add/{wizardId}/candidates.
func (s *Server) ListProductAddWizardCandidates(ctx echo.Context) error {
	return s.listCandidates(ctx, queries.ProductAddWizardKind)
}

// ApplyProductAddWizard handles POST /api/v1/wizards/product-add/{wizardId}/apply.
func (s *Server) ApplyProductAddWizard(ctx echo.Context) error {
	id, err := pathUUID(ctx, "wizardId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	var body ApplyProductAddWizard
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	saleOrderID, err := toOptionalUUID(body.SaleOrderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	saleOrderIDs, err := toUUIDs(body.SaleOrderIDs)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewApplyProductAddWizardCommand(id, wizard.ProductAddSelection{
		OrderType:    wizard.OrderType(body.OrderType),
		SaleOrderID:  saleOrderID,
		SaleOrderIDs: saleOrderIDs,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.ApplyProductAddWizard.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) listCandidates(ctx echo.Context, kind queries.WizardKind) error {
	id, err := pathUUID(ctx, "wizardId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewListWizardCandidatesQuery(kind, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	orders, err := s.h.ListWizardCandidates.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromSaleOrderSummaries(orders))
}
