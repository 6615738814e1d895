package commands

import (
	"errors"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/wizard"
	"enquiry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrOpenProductAddWizardCommandIsNotConstructed = errors.New(
	"OpenProductAddWizardCommand must be created via NewOpenProductAddWizardCommand constructor",
)

// ProductAddRequest are the values the product add wizard is opened with.
// Nil price and quantity and an empty unit take the product defaults.
type ProductAddRequest struct {
	OrderType wizard.OrderType
	ProductID kernel.UUID
	PriceUnit *decimal.Decimal
	Quantity  *decimal.Decimal
	UoM       string
	TaxIDs    []kernel.UUID
}

// OpenProductAddWizardCommand opens the "add product to quotations" wizard.
type OpenProductAddWizardCommand struct { //nolint:recvcheck //using for validation
	wizardID kernel.UUID
	request  ProductAddRequest

	guard guard.ConstructorGuard
}

func NewOpenProductAddWizardCommand(wizardID kernel.UUID, request ProductAddRequest) (OpenProductAddWizardCommand, error) {
	if request.OrderType == "" {
		request.OrderType = wizard.SingleSale
	}
	if err := errors.Join(
		wizardID.Validate(),
		request.ProductID.Validate(),
		request.OrderType.Validate(),
	); err != nil {
		return OpenProductAddWizardCommand{}, err
	}
	request.TaxIDs = append([]kernel.UUID(nil), request.TaxIDs...)
	return OpenProductAddWizardCommand{
		wizardID: wizardID,
		request:  request,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c OpenProductAddWizardCommand) Validate() error {
	return c.guard.Validate(ErrOpenProductAddWizardCommandIsNotConstructed)
}

func (c OpenProductAddWizardCommand) WizardID() kernel.UUID { return c.wizardID }
func (c OpenProductAddWizardCommand) Request() ProductAddRequest { return c.request }
