package queries

import (
	"errors"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/saleorder"
	"enquiry/internal/pkg/guard"
)

var (
	ErrListSaleOrdersQueryIsNotConstructed = errors.New(
		"ListSaleOrdersQuery must be created via NewListSaleOrdersQuery constructor",
	)
)

// ListSaleOrdersFilter narrows the listing. Nil fields do not filter.
type ListSaleOrdersFilter struct {
	PartnerID  *kernel.UUID
	State      *saleorder.State
	HasEnquiry *bool
}

// ListSaleOrdersQuery lists sales orders, newest first.
type ListSaleOrdersQuery struct {
	filter ListSaleOrdersFilter
	guard  guard.ConstructorGuard
}

func NewListSaleOrdersQuery(filter ListSaleOrdersFilter) (ListSaleOrdersQuery, error) {
	if filter.State != nil {
		if err := filter.State.Validate(); err != nil {
			return ListSaleOrdersQuery{}, err
		}
	}
	if filter.PartnerID != nil {
		if err := filter.PartnerID.Validate(); err != nil {
			return ListSaleOrdersQuery{}, err
		}
	}
	return ListSaleOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListSaleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListSaleOrdersQueryIsNotConstructed)
}

func (q ListSaleOrdersQuery) Filter() ListSaleOrdersFilter { return q.filter }
