package queries

import (
	"errors"
	"time"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/errs"
	"enquiry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetProductAddWizardQueryIsNotConstructed = errors.New(
		"GetProductAddWizardQuery must be created via NewGetProductAddWizardQuery constructor",
	)
)

// GetProductAddWizardQuery reads the values a product add wizard was opened
// with, defaults included.
type GetProductAddWizardQuery struct {
	wizardID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetProductAddWizardQuery(wizardID kernel.UUID) (GetProductAddWizardQuery, error) {
	if err := wizardID.Validate(); err != nil {
		return GetProductAddWizardQuery{}, errs.NewValueIsRequiredErrorWithCause("wizardID", err)
	}
	return GetProductAddWizardQuery{wizardID: wizardID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductAddWizardQuery) Validate() error {
	return q.guard.Validate(ErrGetProductAddWizardQueryIsNotConstructed)
}

func (q GetProductAddWizardQuery) WizardID() kernel.UUID { return q.wizardID }

type ProductAddWizardView struct {
	ID           kernel.UUID
	OrderType    string
	ProductID    kernel.UUID
	ProductName  string
	PriceUnit    decimal.Decimal
	Quantity     decimal.Decimal
	UoM          string
	TaxIDs       []kernel.UUID
	Currency     kernel.Currency
	SaleOrderID  *kernel.UUID
	SaleOrderIDs []kernel.UUID
	Applied      bool
	CreatedAt    time.Time
}
