package saleorder_test

import (
	"testing"

	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/orderline"
	"enquiry/internal/core/domain/model/partner"
	"enquiry/internal/core/domain/model/saleorder"
	"enquiry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(kernel.NewUUID(), "Gemini Furniture", "", partner.TypeContact)
	require.NoError(t, err)
	return p
}

func chairLine() orderline.Values {
	productID := kernel.NewUUID()
	return orderline.Values{
		ProductID: &productID,
		Name:      "Chair",
		PriceUnit: decimal.NewFromInt(40),
		Quantity:  decimal.NewFromInt(4),
		UoM:       "Units",
	}
}

func restore(t *testing.T, state saleorder.State) *saleorder.SaleOrder {
	t.Helper()
	o, err := saleorder.RestoreSaleOrder(kernel.NewUUID(), saleorder.Snapshot{
		Name:      "S00042",
		PartnerID: kernel.NewUUID(),
		State:     state,
		Currency:  kernel.MustNewCurrency("EUR"),
	})
	require.NoError(t, err)
	return o
}

func TestNewSaleOrder(t *testing.T) {
	t.Run("should create a draft quotation with lines", func(t *testing.T) {
		enquiryID := kernel.NewUUID()

		o, err := saleorder.NewSaleOrder(kernel.NewUUID(), saleorder.Params{
			Name:      "S00001",
			Customer:  newCustomer(t),
			EnquiryID: &enquiryID,
			Currency:  kernel.MustNewCurrency("EUR"),
			Lines:     []orderline.Values{chairLine(), {DisplayType: orderline.DisplayNote, Name: "Fragile"}},
		})

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, saleorder.Draft, o.State())
		assert.True(t, o.IsQuotation())
		assert.True(t, o.FromEnquiry())
		assert.Len(t, o.Lines(), 2)
		assert.False(t, o.DateOrder().IsZero())
	})

	t.Run("should require a name and a customer", func(t *testing.T) {
		_, err := saleorder.NewSaleOrder(kernel.NewUUID(), saleorder.Params{Currency: kernel.MustNewCurrency("EUR")})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "partnerId")
	})
}

func TestSaleOrder_States(t *testing.T) {
	cases := map[saleorder.State]bool{
		saleorder.Draft:     true,
		saleorder.Sent:      true,
		saleorder.Sale:      false,
		saleorder.Done:      false,
		saleorder.Cancelled: false,
	}
	for state, quotation := range cases {
		t.Run(state.String(), func(t *testing.T) {
			assert.Equal(t, quotation, restore(t, state).IsQuotation())
		})
	}

	require.ErrorIs(t, saleorder.State("lost").Validate(), errs.ErrValueIsInvalid)
}

func TestSaleOrder_Lines(t *testing.T) {
	t.Run("confirmed orders accept copied lines but not products from the wizard", func(t *testing.T) {
		o := restore(t, saleorder.Sale)

		require.NoError(t, o.AddLines([]orderline.Values{chairLine()}))
		require.ErrorIs(t, o.AddProductLine(chairLine()), saleorder.ErrSaleOrderIsNotQuotation)
		require.ErrorIs(t, o.AddProductLine(chairLine()), errs.ErrStateConflict)
	})

	t.Run("cancelled orders are locked", func(t *testing.T) {
		o := restore(t, saleorder.Cancelled)

		require.ErrorIs(t, o.AddLines([]orderline.Values{chairLine()}), errs.ErrStateConflict)
		require.ErrorIs(t, o.ClearLines(), errs.ErrStateConflict)
	})

	t.Run("clear then recompute", func(t *testing.T) {
		vat, err := catalog.NewTax(kernel.NewUUID(), catalog.TaxParams{Name: "VAT 10%", Amount: decimal.NewFromInt(10)})
		require.NoError(t, err)
		o := restore(t, saleorder.Draft)
		line := chairLine()
		line.TaxIDs = []kernel.UUID{vat.ID()}

		require.NoError(t, o.AddProductLine(line))
		require.NoError(t, o.RecomputeAmounts(catalog.NewTaxSet(vat), catalog.RoundPerLine))
		assert.True(t, o.AmountUntaxed().Equal(decimal.NewFromInt(160)))
		assert.True(t, o.AmountTax().Equal(decimal.NewFromInt(16)))
		assert.True(t, o.AmountTotal().Equal(decimal.NewFromInt(176)))

		require.NoError(t, o.ClearLines())
		require.NoError(t, o.RecomputeAmounts(catalog.NewTaxSet(vat), catalog.RoundPerLine))
		assert.Empty(t, o.Lines())
		assert.True(t, o.AmountTotal().IsZero())
	})
}
