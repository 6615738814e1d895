package commands

import (
	"errors"

	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/guard"
)

var ErrCreateTaxCommandIsNotConstructed = errors.New(
	"CreateTaxCommand must be created via NewCreateTaxCommand constructor",
)

// CreateTaxCommand registers a tax.
type CreateTaxCommand struct { //nolint:recvcheck //using for validation
	taxID  kernel.UUID
	params catalog.TaxParams

	guard guard.ConstructorGuard
}

func NewCreateTaxCommand(taxID kernel.UUID, params catalog.TaxParams) (CreateTaxCommand, error) {
	if err := taxID.Validate(); err != nil {
		return CreateTaxCommand{}, err
	}
	return CreateTaxCommand{
		taxID:  taxID,
		params: params,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CreateTaxCommand) Validate() error {
	return c.guard.Validate(ErrCreateTaxCommandIsNotConstructed)
}

func (c CreateTaxCommand) TaxID() kernel.UUID { return c.taxID }
func (c CreateTaxCommand) Params() catalog.TaxParams { return c.params }
