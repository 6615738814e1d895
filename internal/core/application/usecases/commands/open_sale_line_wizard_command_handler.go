package commands

import (
	"context"
	"time"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/wizard"
)

// OpenSaleLineWizardCommandHandler stores a new sale line wizard bound to its
// target record and the target customer.
type OpenSaleLineWizardCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

func NewOpenSaleLineWizardCommandHandler(uowFactory UoWFactory) OpenSaleLineWizardCommandHandler {
	return OpenSaleLineWizardCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h OpenSaleLineWizardCommandHandler) Handle(ctx context.Context, cmd OpenSaleLineWizardCommand) error {
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

	customerID, err := targetCustomer(ctx, uow, cmd.TargetModel(), cmd.TargetID())
	if err != nil {
		return err
	}

	w, err := wizard.NewSaleLineWizard(cmd.WizardID(), cmd.SourceType(), wizard.Target{
		Model:      cmd.TargetModel(),
		ID:         cmd.TargetID(),
		CustomerID: &customerID,
	}, h.now())
	if err != nil {
		return err
	}

	if err = uow.SaleLineWizardRepository().Add(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func targetCustomer(ctx context.Context, uow UoW, model wizard.TargetModel, id kernel.UUID) (kernel.UUID, error) {
	if model == wizard.TargetSaleOrder {
		order, err := uow.SaleOrderRepository().Get(ctx, id)
		if err != nil {
			return kernel.UUID{}, err
		}
		return order.PartnerID(), nil
	}

	e, err := uow.EnquiryRepository().Get(ctx, id)
	if err != nil {
		return kernel.UUID{}, err
	}
	return e.PartnerID(), nil
}
