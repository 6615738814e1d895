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
	ErrGetEnquiryQueryIsNotConstructed = errors.New(
		"GetEnquiryQuery must be created via NewGetEnquiryQuery constructor",
	)
)

// GetEnquiryQuery retrieves one enquiry with its lines and tax breakdown.
//
// Example:
//
//	query, err := NewGetEnquiryQuery(id)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetEnquiryQuery struct {
	enquiryID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetEnquiryQuery(enquiryID kernel.UUID) (GetEnquiryQuery, error) {
	if err := enquiryID.Validate(); err != nil {
		return GetEnquiryQuery{}, errs.NewValueIsRequiredErrorWithCause("enquiryID", err)
	}
	return GetEnquiryQuery{enquiryID: enquiryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEnquiryQuery) Validate() error {
	return q.guard.Validate(ErrGetEnquiryQueryIsNotConstructed)
}

func (q GetEnquiryQuery) EnquiryID() kernel.UUID { return q.enquiryID }

// EnquiryView is the full read model of an enquiry.
type EnquiryView struct {
	ID            kernel.UUID
	Name          string
	Sequence      int
	PartnerID     kernel.UUID
	PartnerName   string
	Email         string
	UserID        *kernel.UUID
	DateOrder     time.Time
	State         string
	MultiOrder    bool
	SaleOrderID   *kernel.UUID
	SaleOrderIDs  []kernel.UUID
	SaleCount     int
	Currency      kernel.Currency
	AmountUntaxed decimal.Decimal
	AmountTax     decimal.Decimal
	AmountTotal   decimal.Decimal
	Lines         []LineView
	TaxTotals     []TaxTotalView
}
