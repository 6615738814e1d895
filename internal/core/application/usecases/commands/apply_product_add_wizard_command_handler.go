package commands

import (
	"context"
)

// ApplyProductAddWizardCommandHandler adds one product line to each selected
// quotation and recomputes their amounts.
type ApplyProductAddWizardCommandHandler struct {
	uowFactory UoWFactory
	settings   Settings
}

func NewApplyProductAddWizardCommandHandler(uowFactory UoWFactory, settings Settings) ApplyProductAddWizardCommandHandler {
	return ApplyProductAddWizardCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
	}
}

func (h ApplyProductAddWizardCommandHandler) Handle(ctx context.Context, cmd ApplyProductAddWizardCommand) error {
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

	wizards := uow.ProductAddWizardRepository()
	w, err := wizards.Get(ctx, cmd.WizardID())
	if err != nil {
		return err
	}
	if err = w.Select(cmd.Selection()); err != nil {
		return err
	}

	targetIDs, err := w.TargetOrderIDs()
	if err != nil {
		return err
	}
	orders := uow.SaleOrderRepository()
	targets, err := orders.GetMany(ctx, targetIDs)
	if err != nil {
		return err
	}
	if err = w.AddTo(targets); err != nil {
		return err
	}

	for _, order := range targets {
		if err = recomputeSaleOrder(ctx, uow, order, h.settings); err != nil {
			return err
		}
		if err = orders.Update(ctx, order); err != nil {
			return err
		}
	}

	if err = w.MarkApplied(); err != nil {
		return err
	}
	if err = wizards.Update(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
