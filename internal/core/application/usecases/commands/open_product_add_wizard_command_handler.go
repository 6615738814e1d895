package commands

import (
	"context"
	"time"

	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/wizard"
)

// OpenProductAddWizardCommandHandler stores a product add wizard with the
// product defaults filled in.
type OpenProductAddWizardCommandHandler struct {
	uowFactory UoWFactory
	settings   Settings
	now        func() time.Time
}

func NewOpenProductAddWizardCommandHandler(uowFactory UoWFactory, settings Settings) OpenProductAddWizardCommandHandler {
	return OpenProductAddWizardCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
		now:        time.Now,
	}
}

func (h OpenProductAddWizardCommandHandler) Handle(ctx context.Context, cmd OpenProductAddWizardCommand) error {
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

	request := cmd.Request()
	product, err := uow.ProductRepository().Get(ctx, request.ProductID)
	if err != nil {
		return err
	}

	set, err := loadSaleTaxes(ctx, uow, request.TaxIDs)
	if err != nil {
		return err
	}
	taxes := make([]*catalog.Tax, 0, len(request.TaxIDs))
	for _, id := range request.TaxIDs {
		taxes = append(taxes, set[id])
	}

	w, err := wizard.NewProductAddWizard(cmd.WizardID(), wizard.ProductAddParams{
		OrderType: request.OrderType,
		Product:   product,
		PriceUnit: request.PriceUnit,
		Quantity:  request.Quantity,
		UoM:       request.UoM,
		Taxes:     taxes,
		Currency:  h.settings.Currency,
	}, h.now())
	if err != nil {
		return err
	}

	if err = uow.ProductAddWizardRepository().Add(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
