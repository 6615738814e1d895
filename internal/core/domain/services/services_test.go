package services_test

import (
	"testing"
	"time"

	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/enquiry"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/orderline"
	"enquiry/internal/core/domain/model/partner"
	"enquiry/internal/core/domain/model/saleorder"
	"enquiry/internal/core/domain/services"
	"enquiry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(kernel.NewUUID(), "Deco Addict", "deco@example.com", partner.TypeContact)
	require.NoError(t, err)
	return p
}

func newEnquiry(t *testing.T, customer *partner.Partner, multi bool) *enquiry.Enquiry {
	t.Helper()
	e, err := enquiry.NewEnquiry(kernel.NewUUID(), enquiry.Params{
		Name:       "ENQ00001",
		Customer:   customer,
		DateOrder:  time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC),
		MultiOrder: multi,
		Currency:   kernel.MustNewCurrency("EUR"),
	})
	require.NoError(t, err)
	return e
}

func TestEnquiryConfirmer_Confirm(t *testing.T) {
	t.Run("should copy the enquiry into a draft order", func(t *testing.T) {
		customer := newCustomer(t)
		e := newEnquiry(t, customer, false)
		productID := kernel.NewUUID()
		taxID := kernel.NewUUID()
		_, err := e.AddLine(orderline.Values{
			Sequence:  30,
			ProductID: &productID,
			Name:      "[DESK] Desk",
			PriceUnit: decimal.NewFromInt(100),
			Quantity:  decimal.NewFromInt(2),
			UoM:       "Units",
			TaxIDs:    []kernel.UUID{taxID},
		})
		require.NoError(t, err)
		_, err = e.AddLine(orderline.Values{Sequence: 5, DisplayType: orderline.DisplaySection, Name: "Office"})
		require.NoError(t, err)
		orderID := kernel.NewUUID()

		order, err := services.NewEnquiryConfirmer().Confirm(e, customer, services.NewOrder{ID: orderID, Name: "S00001"})

		require.NoError(t, err)
		assert.Equal(t, orderID, order.ID())
		assert.Equal(t, "S00001", order.Name())
		assert.Equal(t, saleorder.Draft, order.State())
		assert.Equal(t, e.DateOrder(), order.DateOrder())
		require.NotNil(t, order.EnquiryID())
		assert.Equal(t, e.ID(), *order.EnquiryID())

		lines := order.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, orderline.DisplaySection, lines[0].DisplayType())
		assert.Equal(t, 5, lines[0].Sequence())
		assert.Equal(t, 30, lines[1].Sequence())
		assert.Equal(t, productID, *lines[1].ProductID())
		assert.True(t, lines[1].Quantity().Equal(decimal.NewFromInt(2)))
		assert.Equal(t, []kernel.UUID{taxID}, lines[1].TaxIDs())

		assert.Equal(t, enquiry.Confirm, e.State())
		assert.Equal(t, orderID, *e.SaleOrderID())
		assert.Equal(t, 1, e.SaleCount())
	})

	t.Run("should refuse an enquiry without lines", func(t *testing.T) {
		customer := newCustomer(t)
		e := newEnquiry(t, customer, false)

		order, err := services.NewEnquiryConfirmer().Confirm(e, customer, services.NewOrder{ID: kernel.NewUUID(), Name: "S00001"})

		require.ErrorIs(t, err, enquiry.ErrEnquiryHasNoLines)
		assert.Nil(t, order)
		assert.Equal(t, enquiry.Pending, e.State())
	})

	t.Run("should refuse another customer", func(t *testing.T) {
		e := newEnquiry(t, newCustomer(t), false)
		_, err := e.AddLine(orderline.Values{DisplayType: orderline.DisplayNote, Name: "Call first"})
		require.NoError(t, err)

		_, err = services.NewEnquiryConfirmer().Confirm(e, newCustomer(t), services.NewOrder{ID: kernel.NewUUID(), Name: "S00001"})

		require.ErrorIs(t, err, services.ErrCustomerMismatch)
		assert.Equal(t, enquiry.Pending, e.State())
	})
}

func TestEnquiryConfirmer_CreateAdditionalOrder(t *testing.T) {
	customer := newCustomer(t)
	confirmer := services.NewEnquiryConfirmer()

	t.Run("should append orders for multi order enquiries", func(t *testing.T) {
		e := newEnquiry(t, customer, true)
		_, err := e.AddLine(orderline.Values{DisplayType: orderline.DisplayNote, Name: "Fragile"})
		require.NoError(t, err)
		first, err := confirmer.Confirm(e, customer, services.NewOrder{ID: kernel.NewUUID(), Name: "S00001"})
		require.NoError(t, err)

		second, err := confirmer.CreateAdditionalOrder(e, customer, services.NewOrder{ID: kernel.NewUUID(), Name: "S00002"})

		require.NoError(t, err)
		assert.Equal(t, []kernel.UUID{first.ID(), second.ID()}, e.SaleOrderIDs())
		assert.Equal(t, second.ID(), *e.SaleOrderID())
		assert.Equal(t, 2, e.SaleCount())
	})

	t.Run("should refuse without the multi order flag", func(t *testing.T) {
		e := newEnquiry(t, customer, false)
		_, err := e.AddLine(orderline.Values{DisplayType: orderline.DisplayNote, Name: "Fragile"})
		require.NoError(t, err)
		_, err = confirmer.Confirm(e, customer, services.NewOrder{ID: kernel.NewUUID(), Name: "S00001"})
		require.NoError(t, err)

		_, err = confirmer.CreateAdditionalOrder(e, customer, services.NewOrder{ID: kernel.NewUUID(), Name: "S00002"})

		require.ErrorIs(t, err, enquiry.ErrMultiOrderIsDisabled)
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, 1, e.SaleCount())
	})
}

func TestLineComposer_Compose(t *testing.T) {
	taxID := kernel.NewUUID()
	desk, err := catalog.NewProduct(kernel.NewUUID(), catalog.ProductParams{
		DefaultCode: "DESK",
		Name:        "Desk",
		ListPrice:   decimal.RequireFromString("320.50"),
		UoM:         "Units",
		TaxIDs:      []kernel.UUID{taxID},
		SaleOK:      true,
	})
	require.NoError(t, err)
	composer := services.NewLineComposer()

	t.Run("should default from the product", func(t *testing.T) {
		v, err := composer.Compose(desk, services.LineInput{})

		require.NoError(t, err)
		assert.Equal(t, desk.ID(), *v.ProductID)
		assert.Equal(t, "[DESK] Desk", v.Name)
		assert.True(t, v.PriceUnit.Equal(decimal.RequireFromString("320.50")))
		assert.True(t, v.Quantity.Equal(decimal.NewFromInt(1)))
		assert.Equal(t, "Units", v.UoM)
		assert.Equal(t, []kernel.UUID{taxID}, v.TaxIDs)
		assert.Equal(t, orderline.DisplayProduct, v.DisplayType)
	})

	t.Run("should keep typed values", func(t *testing.T) {
		name := "Desk, oak"
		price := decimal.NewFromInt(300)
		qty := decimal.NewFromInt(3)

		v, err := composer.Compose(desk, services.LineInput{
			Sequence: 20, Name: &name, PriceUnit: &price, Quantity: &qty, TaxIDs: []kernel.UUID{},
		})

		require.NoError(t, err)
		assert.Equal(t, 20, v.Sequence)
		assert.Equal(t, "Desk, oak", v.Name)
		assert.True(t, v.PriceUnit.Equal(price))
		assert.True(t, v.Quantity.Equal(qty))
		assert.Empty(t, v.TaxIDs)
	})

	t.Run("should build layout lines without product", func(t *testing.T) {
		label := "Delivery notes"

		v, err := composer.Compose(desk, services.LineInput{DisplayType: orderline.DisplayNote, Name: &label})

		require.NoError(t, err)
		assert.Nil(t, v.ProductID)
		assert.Equal(t, "Delivery notes", v.Name)
	})

	t.Run("should require a sellable product", func(t *testing.T) {
		internal, err := catalog.NewProduct(kernel.NewUUID(), catalog.ProductParams{Name: "Internal"})
		require.NoError(t, err)

		_, err = composer.Compose(nil, services.LineInput{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = composer.Compose(internal, services.LineInput{})
		require.ErrorIs(t, err, catalog.ErrProductIsNotSellable)
	})
}

func TestSaleTaxes(t *testing.T) {
	vat, err := catalog.NewTax(kernel.NewUUID(), catalog.TaxParams{Name: "VAT 21%", Amount: decimal.NewFromInt(21)})
	require.NoError(t, err)
	purchase, err := catalog.NewTax(kernel.NewUUID(), catalog.TaxParams{
		Name: "Purchase 21%", Amount: decimal.NewFromInt(21), TypeTaxUse: catalog.TaxUsePurchase,
	})
	require.NoError(t, err)

	t.Run("should index sale taxes", func(t *testing.T) {
		set, err := services.SaleTaxes([]kernel.UUID{vat.ID()}, []*catalog.Tax{vat})

		require.NoError(t, err)
		assert.Same(t, vat, set[vat.ID()])
	})

	t.Run("should report missing taxes", func(t *testing.T) {
		_, err := services.SaleTaxes([]kernel.UUID{kernel.NewUUID()}, []*catalog.Tax{vat})

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should refuse purchase taxes", func(t *testing.T) {
		_, err := services.SaleTaxes([]kernel.UUID{purchase.ID()}, []*catalog.Tax{vat, purchase})

		require.ErrorIs(t, err, catalog.ErrTaxIsNotForSale)
	})
}
