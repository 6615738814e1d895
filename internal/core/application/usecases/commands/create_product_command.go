package commands

import (
	"errors"

	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand registers a catalog product.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	params    catalog.ProductParams

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(productID kernel.UUID, params catalog.ProductParams) (CreateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return CreateProductCommand{}, err
	}
	params.TaxIDs = append([]kernel.UUID(nil), params.TaxIDs...)
	return CreateProductCommand{
		productID: productID,
		params:    params,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID { return c.productID }
func (c CreateProductCommand) Params() catalog.ProductParams { return c.params }
