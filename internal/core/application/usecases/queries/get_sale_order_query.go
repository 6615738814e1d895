package queries

import (
	"errors"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/errs"
	"enquiry/internal/pkg/guard"
)

var (
	ErrGetSaleOrderQueryIsNotConstructed = errors.New(
		"GetSaleOrderQuery must be created via NewGetSaleOrderQuery constructor",
	)
)

type GetSaleOrderQuery struct {
	saleOrderID kernel.UUID
	guard       guard.ConstructorGuard
}

func NewGetSaleOrderQuery(saleOrderID kernel.UUID) (GetSaleOrderQuery, error) {
	if err := saleOrderID.Validate(); err != nil {
		return GetSaleOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("saleOrderID", err)
	}
	return GetSaleOrderQuery{saleOrderID: saleOrderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSaleOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetSaleOrderQueryIsNotConstructed)
}

func (q GetSaleOrderQuery) SaleOrderID() kernel.UUID { return q.saleOrderID }

// SaleOrderView is a sales order with its lines and tax breakdown.
type SaleOrderView struct {
	SaleOrderSummary
	Lines     []LineView
	TaxTotals []TaxTotalView
}
