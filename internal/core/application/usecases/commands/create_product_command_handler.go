package commands

import (
	"context"

	"enquiry/internal/core/domain/model/catalog"
)

// CreateProductCommandHandler stores a new product. Its default taxes must
// exist and be sale taxes.
type CreateProductCommandHandler struct {
	uowFactory MasterDataUoWFactory
}

func NewCreateProductCommandHandler(uowFactory MasterDataUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := catalog.NewProduct(cmd.ProductID(), cmd.Params())
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

	if _, err = loadSaleTaxes(ctx, uow, product.TaxIDs()); err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
