package commands

import (
	"context"
)

// PurgeExpiredWizardsCommandHandler deletes expired wizards of both kinds in
// one transaction and reports how many were removed.
type PurgeExpiredWizardsCommandHandler struct {
	uowFactory WizardCleanupUoWFactory
}

func NewPurgeExpiredWizardsCommandHandler(uowFactory WizardCleanupUoWFactory) PurgeExpiredWizardsCommandHandler {
	return PurgeExpiredWizardsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h PurgeExpiredWizardsCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredWizardsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	saleLines, err := uow.SaleLineWizardRepository().DeleteCreatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}
	productAdds, err := uow.ProductAddWizardRepository().DeleteCreatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return saleLines + productAdds, nil
}
