package queries

import (
	"errors"
	"time"

	"enquiry/internal/core/domain/model/enquiry"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListEnquiriesQueryIsNotConstructed = errors.New(
		"ListEnquiriesQuery must be created via NewListEnquiriesQuery constructor",
	)
)

// ListEnquiriesQuery lists enquiries ordered by sequence, date and id.
// A nil state or partner does not filter.
type ListEnquiriesQuery struct {
	state     *enquiry.State
	partnerID *kernel.UUID
	guard     guard.ConstructorGuard
}

func NewListEnquiriesQuery(state *enquiry.State, partnerID *kernel.UUID) (ListEnquiriesQuery, error) {
	if state != nil {
		if err := state.Validate(); err != nil {
			return ListEnquiriesQuery{}, err
		}
	}
	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return ListEnquiriesQuery{}, err
		}
	}
	return ListEnquiriesQuery{state: state, partnerID: partnerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListEnquiriesQuery) Validate() error {
	return q.guard.Validate(ErrListEnquiriesQueryIsNotConstructed)
}

func (q ListEnquiriesQuery) State() *enquiry.State { return q.state }
func (q ListEnquiriesQuery) PartnerID() *kernel.UUID { return q.partnerID }

// EnquirySummary is a list row.
type EnquirySummary struct {
	ID          kernel.UUID
	Name        string
	Sequence    int
	PartnerID   kernel.UUID
	PartnerName string
	DateOrder   time.Time
	State       string
	MultiOrder  bool
	SaleCount   int
	Currency    kernel.Currency
	AmountTotal decimal.Decimal
}
