package commands_test

import (
	"errors"
	"testing"

	"enquiry/internal/core/application/usecases/commands"
	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/enquiry"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/orderline"
	"enquiry/internal/core/domain/model/partner"
	"enquiry/internal/core/domain/services"
	"enquiry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateEnquiryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := newCustomer(t)
	vat := newTax(t, "VAT 15%", 15)
	chair := newProduct(t, 100, vat)
	qty := decimal.NewFromInt(2)
	note := "Deliver before noon"
	enquiryID := kernel.NewUUID()

	cmd, err := commands.NewCreateEnquiryCommand(enquiryID, commands.CreateEnquiryParams{
		PartnerID: customer.ID(),
		Lines: []commands.LineRequest{
			{ProductID: &[]kernel.UUID{chair.ID()}[0], Input: services.LineInput{Quantity: &qty}},
			{Input: services.LineInput{DisplayType: orderline.DisplayNote, Name: &note}},
		},
	})
	require.NoError(t, err)

	partners := new(MockPartnerRepository)
	products := new(MockProductRepository)
	taxes := new(MockTaxRepository)
	sequences := new(MockSequenceGenerator)
	enquiries := new(MockEnquiryRepository)
	uow := begun(ctx)
	uow.On("PartnerRepository").Return(partners).Once()
	uow.On("ProductRepository").Return(products).Once()
	uow.On("TaxRepository").Return(taxes).Once()
	uow.On("Sequences").Return(sequences).Once()
	uow.On("EnquiryRepository").Return(enquiries).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	partners.On("Get", mock.Anything, customer.ID()).Return(customer, nil).Once()
	products.On("Get", mock.Anything, chair.ID()).Return(chair, nil).Once()
	taxes.On("GetMany", mock.Anything, []kernel.UUID{vat.ID()}).Return([]*catalog.Tax{vat}, nil).Once()
	sequences.On("NextValue", mock.Anything, enquiry.NumberSequenceCode).Return("ENQ00001", nil).Once()

	var saved *enquiry.Enquiry
	enquiries.On("Add", mock.Anything, mock.AnythingOfType("*enquiry.Enquiry")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*enquiry.Enquiry) }).
		Return(nil).Once()

	factory := new(MockEnquiryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateEnquiryCommandHandler(factory, testSettings())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, enquiryID, saved.ID())
	assert.Equal(t, "ENQ00001", saved.Name())
	assert.Equal(t, enquiry.Pending, saved.State())
	assert.Equal(t, "azure@example.com", saved.Email())
	require.Len(t, saved.Lines(), 2)
	assert.Equal(t, "[FURN_0001] Office Chair", saved.Lines()[0].Name())
	assert.True(t, saved.AmountUntaxed().Equal(decimal.NewFromInt(200)))
	assert.True(t, saved.AmountTax().Equal(decimal.NewFromInt(30)))
	assert.True(t, saved.AmountTotal().Equal(decimal.NewFromInt(230)))
	uow.AssertExpectations(t)
	enquiries.AssertExpectations(t)
	sequences.AssertExpectations(t)
}

func TestCreateEnquiryCommandHandler_Handle_ExplicitName(t *testing.T) {
	ctx := t.Context()
	customer := newCustomer(t)
	cmd, err := commands.NewCreateEnquiryCommand(kernel.NewUUID(), commands.CreateEnquiryParams{
		Name:      "Trade fair lead",
		PartnerID: customer.ID(),
	})
	require.NoError(t, err)

	partners := new(MockPartnerRepository)
	enquiries := new(MockEnquiryRepository)
	uow := begun(ctx)
	uow.On("PartnerRepository").Return(partners).Once()
	uow.On("EnquiryRepository").Return(enquiries).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	partners.On("Get", mock.Anything, customer.ID()).Return(customer, nil).Once()
	enquiries.On("Add", mock.Anything, mock.MatchedBy(func(e *enquiry.Enquiry) bool {
		return e.Name() == "Trade fair lead" && e.AmountTotal().IsZero()
	})).Return(nil).Once()
	factory := new(MockEnquiryUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewCreateEnquiryCommandHandler(factory, testSettings()).Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertNotCalled(t, "Sequences")
	uow.AssertExpectations(t)
}

func TestCreateEnquiryCommandHandler_Handle_PrivateCustomer(t *testing.T) {
	ctx := t.Context()
	private, err := partner.NewPartner(kernel.NewUUID(), "Home", "", partner.TypePrivate)
	require.NoError(t, err)
	cmd, err := commands.NewCreateEnquiryCommand(kernel.NewUUID(), commands.CreateEnquiryParams{PartnerID: private.ID()})
	require.NoError(t, err)

	partners := new(MockPartnerRepository)
	uow := begun(ctx)
	uow.On("PartnerRepository").Return(partners).Once()
	partners.On("Get", mock.Anything, private.ID()).Return(private, nil).Once()
	factory := new(MockEnquiryUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewCreateEnquiryCommandHandler(factory, testSettings()).Handle(ctx, cmd)

	require.ErrorIs(t, err, partner.ErrPartnerIsNotCustomer)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateEnquiryCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateEnquiryCommand(kernel.NewUUID(), commands.CreateEnquiryParams{PartnerID: kernel.NewUUID()})
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockEnquiryUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	err = commands.NewCreateEnquiryCommandHandler(factory, testSettings()).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.AssertExpectations(t)
}

func TestUpdateEnquiryCommandHandler_Handle(t *testing.T) {
	t.Run("should change customer and flags", func(t *testing.T) {
		ctx := t.Context()
		e := newEnquiry(t, newCustomer(t), false)
		other, err := partner.NewPartner(kernel.NewUUID(), "Lumber Inc", "lumber@example.com", partner.TypeContact)
		require.NoError(t, err)
		multi := true
		sequence := 3
		otherID := other.ID()
		cmd, err := commands.NewUpdateEnquiryCommand(e.ID(), commands.EnquiryHeaderPatch{
			PartnerID: &otherID, MultiOrder: &multi, Sequence: &sequence,
		})
		require.NoError(t, err)

		enquiries := new(MockEnquiryRepository)
		partners := new(MockPartnerRepository)
		uow := begun(ctx)
		uow.On("EnquiryRepository").Return(enquiries).Once()
		uow.On("PartnerRepository").Return(partners).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		enquiries.On("Get", mock.Anything, e.ID()).Return(e, nil).Once()
		partners.On("Get", mock.Anything, other.ID()).Return(other, nil).Once()
		enquiries.On("Update", mock.Anything, e).Return(nil).Once()
		factory := new(MockEnquiryUoWFactory)
		factory.On("Create").Return(uow).Once()

		err = commands.NewUpdateEnquiryCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, other.ID(), e.PartnerID())
		assert.Equal(t, "lumber@example.com", e.Email())
		assert.True(t, e.MultiOrder())
		assert.Equal(t, 3, e.Sequence())
		uow.AssertExpectations(t)
	})

	t.Run("should report a missing enquiry", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewUpdateEnquiryCommand(id, commands.EnquiryHeaderPatch{})
		require.NoError(t, err)

		enquiries := new(MockEnquiryRepository)
		uow := begun(ctx)
		uow.On("EnquiryRepository").Return(enquiries).Once()
		enquiries.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("enquiry", id.String())).Once()
		factory := new(MockEnquiryUoWFactory)
		factory.On("Create").Return(uow).Once()

		err = commands.NewUpdateEnquiryCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestAddEnquiryLineCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	vat := newTax(t, "VAT 10%", 10)
	chair := newProduct(t, 80, vat)
	e := newEnquiry(t, newCustomer(t), false)
	lineID := kernel.NewUUID()
	chairID := chair.ID()
	cmd, err := commands.NewAddEnquiryLineCommand(e.ID(), lineID, commands.LineRequest{ProductID: &chairID})
	require.NoError(t, err)

	enquiries := new(MockEnquiryRepository)
	products := new(MockProductRepository)
	taxes := new(MockTaxRepository)
	uow := begun(ctx)
	uow.On("EnquiryRepository").Return(enquiries).Once()
	uow.On("ProductRepository").Return(products).Once()
	uow.On("TaxRepository").Return(taxes).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	enquiries.On("Get", mock.Anything, e.ID()).Return(e, nil).Once()
	products.On("Get", mock.Anything, chair.ID()).Return(chair, nil).Once()
	taxes.On("GetMany", mock.Anything, []kernel.UUID{vat.ID()}).Return([]*catalog.Tax{vat}, nil).Once()
	enquiries.On("Update", mock.Anything, e).Return(nil).Once()
	factory := new(MockEnquiryUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAddEnquiryLineCommandHandler(factory, testSettings()).Handle(ctx, cmd)

	require.NoError(t, err)
	line, err := e.Line(lineID)
	require.NoError(t, err)
	assert.True(t, line.PriceTotal().Equal(decimal.NewFromInt(88)))
	assert.True(t, e.AmountTotal().Equal(decimal.NewFromInt(88)))
	uow.AssertExpectations(t)
}

func TestAddEnquiryLineCommandHandler_Handle_PurchaseTax(t *testing.T) {
	ctx := t.Context()
	purchase, err := catalog.NewTax(kernel.NewUUID(), catalog.TaxParams{
		Name: "Purchase", Amount: decimal.NewFromInt(10), TypeTaxUse: catalog.TaxUsePurchase,
	})
	require.NoError(t, err)
	chair := newProduct(t, 80)
	e := newEnquiry(t, newCustomer(t), false)
	chairID := chair.ID()
	cmd, err := commands.NewAddEnquiryLineCommand(e.ID(), kernel.NewUUID(), commands.LineRequest{
		ProductID: &chairID,
		Input:     services.LineInput{TaxIDs: []kernel.UUID{purchase.ID()}},
	})
	require.NoError(t, err)

	enquiries := new(MockEnquiryRepository)
	products := new(MockProductRepository)
	taxes := new(MockTaxRepository)
	uow := begun(ctx)
	uow.On("EnquiryRepository").Return(enquiries).Once()
	uow.On("ProductRepository").Return(products).Once()
	uow.On("TaxRepository").Return(taxes).Once()
	enquiries.On("Get", mock.Anything, e.ID()).Return(e, nil).Once()
	products.On("Get", mock.Anything, chair.ID()).Return(chair, nil).Once()
	taxes.On("GetMany", mock.Anything, []kernel.UUID{purchase.ID()}).Return([]*catalog.Tax{purchase}, nil).Once()
	factory := new(MockEnquiryUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAddEnquiryLineCommandHandler(factory, testSettings()).Handle(ctx, cmd)

	require.ErrorIs(t, err, catalog.ErrTaxIsNotForSale)
	enquiries.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateEnquiryLineCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	e := newEnquiry(t, newCustomer(t), false, orderline.Values{DisplayType: orderline.DisplaySection, Name: "Chairs"})
	lineID := e.Lines()[0].ID()
	label := "Desks"
	cmd, err := commands.NewUpdateEnquiryLineCommand(e.ID(), lineID, commands.LineRequest{
		Input: services.LineInput{DisplayType: orderline.DisplaySection, Name: &label},
	})
	require.NoError(t, err)

	enquiries := new(MockEnquiryRepository)
	uow := begun(ctx)
	uow.On("EnquiryRepository").Return(enquiries).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	enquiries.On("Get", mock.Anything, e.ID()).Return(e, nil).Once()
	enquiries.On("Update", mock.Anything, e).Return(nil).Once()
	factory := new(MockEnquiryUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewUpdateEnquiryLineCommandHandler(factory, testSettings()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Desks", e.Lines()[0].Name())
	uow.AssertNotCalled(t, "TaxRepository")
}

func TestRemoveEnquiryLineCommandHandler_Handle(t *testing.T) {
	t.Run("should remove the line and recompute", func(t *testing.T) {
		ctx := t.Context()
		e := newEnquiry(t, newCustomer(t), false, productValues(10, 1), productValues(20, 1))
		require.NoError(t, e.RecomputeAmounts(catalog.NewTaxSet(), catalog.RoundPerLine))
		removed := e.Lines()[0].ID()
		cmd, err := commands.NewRemoveEnquiryLineCommand(e.ID(), removed)
		require.NoError(t, err)

		enquiries := new(MockEnquiryRepository)
		uow := begun(ctx)
		uow.On("EnquiryRepository").Return(enquiries).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		enquiries.On("Get", mock.Anything, e.ID()).Return(e, nil).Once()
		enquiries.On("Update", mock.Anything, e).Return(nil).Once()
		factory := new(MockEnquiryUoWFactory)
		factory.On("Create").Return(uow).Once()

		err = commands.NewRemoveEnquiryLineCommandHandler(factory, testSettings()).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Len(t, e.Lines(), 1)
		assert.True(t, e.AmountTotal().Equal(decimal.NewFromInt(20)))
	})

	t.Run("should report an unknown line", func(t *testing.T) {
		ctx := t.Context()
		e := newEnquiry(t, newCustomer(t), false)
		cmd, err := commands.NewRemoveEnquiryLineCommand(e.ID(), kernel.NewUUID())
		require.NoError(t, err)

		enquiries := new(MockEnquiryRepository)
		uow := begun(ctx)
		uow.On("EnquiryRepository").Return(enquiries).Once()
		enquiries.On("Get", mock.Anything, e.ID()).Return(e, nil).Once()
		factory := new(MockEnquiryUoWFactory)
		factory.On("Create").Return(uow).Once()

		err = commands.NewRemoveEnquiryLineCommandHandler(factory, testSettings()).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		enquiries.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestCancelEnquiryCommandHandler_Handle(t *testing.T) {
	t.Run("should cancel a pending enquiry", func(t *testing.T) {
		ctx := t.Context()
		e := newEnquiry(t, newCustomer(t), false)
		cmd, err := commands.NewCancelEnquiryCommand(e.ID())
		require.NoError(t, err)

		enquiries := new(MockEnquiryRepository)
		uow := begun(ctx)
		uow.On("EnquiryRepository").Return(enquiries).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		enquiries.On("Get", mock.Anything, e.ID()).Return(e, nil).Once()
		enquiries.On("Update", mock.Anything, e).Return(nil).Once()
		factory := new(MockEnquiryUoWFactory)
		factory.On("Create").Return(uow).Once()

		err = commands.NewCancelEnquiryCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, enquiry.Cancel, e.State())
	})

	t.Run("should refuse a confirmed enquiry", func(t *testing.T) {
		ctx := t.Context()
		e := newEnquiry(t, newCustomer(t), false, productValues(10, 1))
		require.NoError(t, e.Confirm(kernel.NewUUID()))
		cmd, err := commands.NewCancelEnquiryCommand(e.ID())
		require.NoError(t, err)

		enquiries := new(MockEnquiryRepository)
		uow := begun(ctx)
		uow.On("EnquiryRepository").Return(enquiries).Once()
		enquiries.On("Get", mock.Anything, e.ID()).Return(e, nil).Once()
		factory := new(MockEnquiryUoWFactory)
		factory.On("Create").Return(uow).Once()

		err = commands.NewCancelEnquiryCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, enquiry.Confirm, e.State())
	})
}
