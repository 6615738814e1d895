package queries

import (
	"errors"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/errs"
	"enquiry/internal/pkg/guard"
)

var (
	ErrListEnquirySaleOrdersQueryIsNotConstructed = errors.New(
		"ListEnquirySaleOrdersQuery must be created via NewListEnquirySaleOrdersQuery constructor",
	)
)

// ListEnquirySaleOrdersQuery lists the sales orders created from an enquiry.
type ListEnquirySaleOrdersQuery struct {
	enquiryID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewListEnquirySaleOrdersQuery(enquiryID kernel.UUID) (ListEnquirySaleOrdersQuery, error) {
	if err := enquiryID.Validate(); err != nil {
		return ListEnquirySaleOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("enquiryID", err)
	}
	return ListEnquirySaleOrdersQuery{enquiryID: enquiryID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListEnquirySaleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListEnquirySaleOrdersQueryIsNotConstructed)
}

func (q ListEnquirySaleOrdersQuery) EnquiryID() kernel.UUID { return q.enquiryID }
