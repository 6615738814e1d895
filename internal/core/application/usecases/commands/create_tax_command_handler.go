package commands

import (
	"context"

	"enquiry/internal/core/domain/model/catalog"
)

// CreateTaxCommandHandler stores a new tax.
type CreateTaxCommandHandler struct {
	uowFactory MasterDataUoWFactory
}

func NewCreateTaxCommandHandler(uowFactory MasterDataUoWFactory) CreateTaxCommandHandler {
	return CreateTaxCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateTaxCommandHandler) Handle(ctx context.Context, cmd CreateTaxCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	tax, err := catalog.NewTax(cmd.TaxID(), cmd.Params())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TaxRepository().Add(ctx, tax); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
