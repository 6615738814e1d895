package commands

import (
	"context"

	"enquiry/internal/core/domain/model/orderline"
	"enquiry/internal/core/domain/model/wizard"
)

// ApplySaleLineWizardCommandHandler copies source order lines into the target
// enquiry or sales order, clearing the target first when asked to.
//
// Business rules:
//   - Source orders must be among the wizard candidates
//   - Section and note lines are copied too
//   - The target amounts are recomputed
//   - A wizard is applied once
type ApplySaleLineWizardCommandHandler struct {
	uowFactory UoWFactory
	settings   Settings
}

func NewApplySaleLineWizardCommandHandler(uowFactory UoWFactory, settings Settings) ApplySaleLineWizardCommandHandler {
	return ApplySaleLineWizardCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
	}
}

func (h ApplySaleLineWizardCommandHandler) Handle(ctx context.Context, cmd ApplySaleLineWizardCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	wizards := uow.SaleLineWizardRepository()
	w, err := wizards.Get(ctx, cmd.WizardID())
	if err != nil {
		return err
	}
	if err = w.Select(cmd.Selection()); err != nil {
		return err
	}

	sourceIDs := w.SourceOrderIDs()
	if len(sourceIDs) == 0 {
		return wizard.ErrNoSourceOrderSelected
	}
	sources, err := uow.SaleOrderRepository().GetMany(ctx, sourceIDs)
	if err != nil {
		return err
	}
	values, err := w.CollectLines(sources)
	if err != nil {
		return err
	}

	if w.Target().Model == wizard.TargetSaleOrder {
		err = h.copyToSaleOrder(ctx, uow, w, values)
	} else {
		err = h.copyToEnquiry(ctx, uow, w, values)
	}
	if err != nil {
		return err
	}

	if err = w.MarkApplied(); err != nil {
		return err
	}
	if err = wizards.Update(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ApplySaleLineWizardCommandHandler) copyToEnquiry(ctx context.Context, uow UoW, w *wizard.SaleLineWizard, values []orderline.Values) error {
	repo := uow.EnquiryRepository()
	e, err := repo.Get(ctx, w.Target().ID)
	if err != nil {
		return err
	}

	if w.ClearAdd() {
		if err = e.ClearLines(); err != nil {
			return err
		}
	}
	if err = e.AppendLines(values); err != nil {
		return err
	}
	if err = recomputeEnquiry(ctx, uow, e, h.settings); err != nil {
		return err
	}
	return repo.Update(ctx, e)
}

func (h ApplySaleLineWizardCommandHandler) copyToSaleOrder(ctx context.Context, uow UoW, w *wizard.SaleLineWizard, values []orderline.Values) error {
	repo := uow.SaleOrderRepository()
	order, err := repo.Get(ctx, w.Target().ID)
	if err != nil {
		return err
	}

	if w.ClearAdd() {
		if err = order.ClearLines(); err != nil {
			return err
		}
	}
	if err = order.AddLines(values); err != nil {
		return err
	}
	if err = recomputeSaleOrder(ctx, uow, order, h.settings); err != nil {
		return err
	}
	return repo.Update(ctx, order)
}
