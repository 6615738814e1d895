package queries_test

import (
	"testing"

	"enquiry/internal/core/application/usecases/queries"
	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/enquiry"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	tests := []struct {
		name  string
		query interface{ Validate() error }
		want  error
	}{
		{"get enquiry", queries.GetEnquiryQuery{}, queries.ErrGetEnquiryQueryIsNotConstructed},
		{"list enquiries", queries.ListEnquiriesQuery{}, queries.ErrListEnquiriesQueryIsNotConstructed},
		{"enquiry sale orders", queries.ListEnquirySaleOrdersQuery{}, queries.ErrListEnquirySaleOrdersQueryIsNotConstructed},
		{"get sale order", queries.GetSaleOrderQuery{}, queries.ErrGetSaleOrderQueryIsNotConstructed},
		{"list sale orders", queries.ListSaleOrdersQuery{}, queries.ErrListSaleOrdersQueryIsNotConstructed},
		{"list partners", queries.ListPartnersQuery{}, queries.ErrListPartnersQueryIsNotConstructed},
		{"list products", queries.ListProductsQuery{}, queries.ErrListProductsQueryIsNotConstructed},
		{"list taxes", queries.ListTaxesQuery{}, queries.ErrListTaxesQueryIsNotConstructed},
		{"wizard candidates", queries.ListWizardCandidatesQuery{}, queries.ErrListWizardCandidatesQueryIsNotConstructed},
		{"product add wizard", queries.GetProductAddWizardQuery{}, queries.ErrGetProductAddWizardQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewGetEnquiryQuery_WhenIDIsZero_ShouldReturnError(t *testing.T) {
	_, err := queries.NewGetEnquiryQuery(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewListEnquiriesQuery_WhenStateIsUnknown_ShouldReturnError(t *testing.T) {
	state := enquiry.State("draft")
	_, err := queries.NewListEnquiriesQuery(&state, nil)
	require.Error(t, err)
}

func TestNewListEnquiriesQuery_WithoutFilters(t *testing.T) {
	query, err := queries.NewListEnquiriesQuery(nil, nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.State())
	assert.Nil(t, query.PartnerID())
}

func TestNewListTaxesQuery_WhenUseIsUnknown_ShouldReturnError(t *testing.T) {
	use := catalog.TaxUse("adjustment")
	_, err := queries.NewListTaxesQuery(&use)
	require.Error(t, err)
}

func TestNewListWizardCandidatesQuery_WhenKindIsUnknown_ShouldReturnError(t *testing.T) {
	_, err := queries.NewListWizardCandidatesQuery("invoice", kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
