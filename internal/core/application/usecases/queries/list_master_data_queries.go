package queries

import (
	"errors"

	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListPartnersQueryIsNotConstructed = errors.New(
		"ListPartnersQuery must be created via NewListPartnersQuery constructor",
	)
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
	ErrListTaxesQueryIsNotConstructed = errors.New(
		"ListTaxesQuery must be created via NewListTaxesQuery constructor",
	)
)

// ListPartnersQuery lists partners by name.
type ListPartnersQuery struct {
	guard guard.ConstructorGuard
}

func NewListPartnersQuery() ListPartnersQuery {
	return ListPartnersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListPartnersQuery) Validate() error {
	return q.guard.Validate(ErrListPartnersQueryIsNotConstructed)
}

type PartnerView struct {
	ID    kernel.UUID
	Name  string
	Email string
	Type  string
}

// ListProductsQuery lists products by name. With saleOnly set only sellable
// products are returned.
type ListProductsQuery struct {
	saleOnly bool
	guard    guard.ConstructorGuard
}

func NewListProductsQuery(saleOnly bool) ListProductsQuery {
	return ListProductsQuery{saleOnly: saleOnly, guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) SaleOnly() bool { return q.saleOnly }

type ProductView struct {
	ID          kernel.UUID
	DefaultCode string
	Name        string
	DisplayName string
	ListPrice   decimal.Decimal
	UoM         string
	TaxIDs      []kernel.UUID
	SaleOK      bool
}

// ListTaxesQuery lists taxes in computation order. A nil use does not filter.
type ListTaxesQuery struct {
	use   *catalog.TaxUse
	guard guard.ConstructorGuard
}

func NewListTaxesQuery(use *catalog.TaxUse) (ListTaxesQuery, error) {
	if use != nil {
		if err := use.Validate(); err != nil {
			return ListTaxesQuery{}, err
		}
	}
	return ListTaxesQuery{use: use, guard: guard.NewConstructorGuard()}, nil
}

func (q ListTaxesQuery) Validate() error {
	return q.guard.Validate(ErrListTaxesQueryIsNotConstructed)
}

func (q ListTaxesQuery) Use() *catalog.TaxUse { return q.use }

type TaxView struct {
	ID           kernel.UUID
	Name         string
	AmountType   string
	Amount       decimal.Decimal
	PriceInclude bool
	TypeTaxUse   string
	Sequence     int
}
