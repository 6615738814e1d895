package commands_test

import (
	"context"
	"testing"
	"time"

	"enquiry/internal/core/application/usecases/commands"
	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/enquiry"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/orderline"
	"enquiry/internal/core/domain/model/partner"
	"enquiry/internal/core/domain/model/saleorder"
	"enquiry/internal/core/domain/model/wizard"
	"enquiry/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEnquiryRepository struct{ mock.Mock }

func (m *MockEnquiryRepository) Add(ctx context.Context, e *enquiry.Enquiry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEnquiryRepository) Update(ctx context.Context, e *enquiry.Enquiry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEnquiryRepository) Get(ctx context.Context, id kernel.UUID) (*enquiry.Enquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*enquiry.Enquiry), args.Error(1)
}

type MockSaleOrderRepository struct{ mock.Mock }

func (m *MockSaleOrderRepository) Add(ctx context.Context, o *saleorder.SaleOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockSaleOrderRepository) Update(ctx context.Context, o *saleorder.SaleOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockSaleOrderRepository) Get(ctx context.Context, id kernel.UUID) (*saleorder.SaleOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*saleorder.SaleOrder), args.Error(1)
}

func (m *MockSaleOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*saleorder.SaleOrder, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*saleorder.SaleOrder), args.Error(1)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

type MockTaxRepository struct{ mock.Mock }

func (m *MockTaxRepository) Add(ctx context.Context, t *catalog.Tax) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTaxRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Tax, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Tax), args.Error(1)
}

func (m *MockTaxRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.Tax, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Tax), args.Error(1)
}

type MockSaleLineWizardRepository struct{ mock.Mock }

func (m *MockSaleLineWizardRepository) Add(ctx context.Context, w *wizard.SaleLineWizard) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockSaleLineWizardRepository) Update(ctx context.Context, w *wizard.SaleLineWizard) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockSaleLineWizardRepository) Get(ctx context.Context, id kernel.UUID) (*wizard.SaleLineWizard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wizard.SaleLineWizard), args.Error(1)
}

func (m *MockSaleLineWizardRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductAddWizardRepository struct{ mock.Mock }

func (m *MockProductAddWizardRepository) Add(ctx context.Context, w *wizard.ProductAddWizard) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockProductAddWizardRepository) Update(ctx context.Context, w *wizard.ProductAddWizard) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockProductAddWizardRepository) Get(ctx context.Context, id kernel.UUID) (*wizard.ProductAddWizard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wizard.ProductAddWizard), args.Error(1)
}

func (m *MockProductAddWizardRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockSequenceGenerator struct{ mock.Mock }

func (m *MockSequenceGenerator) NextValue(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) EnquiryRepository() ports.EnquiryRepository {
	return m.Called().Get(0).(ports.EnquiryRepository)
}

func (m *MockUoW) SaleOrderRepository() ports.SaleOrderRepository {
	return m.Called().Get(0).(ports.SaleOrderRepository)
}

func (m *MockUoW) PartnerRepository() ports.PartnerRepository {
	return m.Called().Get(0).(ports.PartnerRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUoW) TaxRepository() ports.TaxRepository {
	return m.Called().Get(0).(ports.TaxRepository)
}

func (m *MockUoW) SaleLineWizardRepository() ports.SaleLineWizardRepository {
	return m.Called().Get(0).(ports.SaleLineWizardRepository)
}

func (m *MockUoW) ProductAddWizardRepository() ports.ProductAddWizardRepository {
	return m.Called().Get(0).(ports.ProductAddWizardRepository)
}

func (m *MockUoW) Sequences() ports.SequenceGenerator {
	return m.Called().Get(0).(ports.SequenceGenerator)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockEnquiryUoWFactory struct{ mock.Mock }

func (m *MockEnquiryUoWFactory) Create() commands.EnquiryUoW {
	return m.Called().Get(0).(commands.EnquiryUoW)
}

type MockMasterDataUoWFactory struct{ mock.Mock }

func (m *MockMasterDataUoWFactory) Create() commands.MasterDataUoW {
	return m.Called().Get(0).(commands.MasterDataUoW)
}

type MockSaleOrderUoWFactory struct{ mock.Mock }

func (m *MockSaleOrderUoWFactory) Create() commands.SaleOrderUoW {
	return m.Called().Get(0).(commands.SaleOrderUoW)
}

type MockWizardCleanupUoWFactory struct{ mock.Mock }

func (m *MockWizardCleanupUoWFactory) Create() commands.WizardCleanupUoW {
	return m.Called().Get(0).(commands.WizardCleanupUoW)
}

var eur = kernel.MustNewCurrency("EUR")

func testSettings() commands.Settings {
	return commands.Settings{Currency: eur, Rounding: catalog.RoundPerLine}
}

// begun returns a unit of work expecting Begin and the deferred Rollback.
func begun(ctx context.Context) *MockUoW {
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	return uow
}

func newCustomer(t *testing.T) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(kernel.NewUUID(), "Azure Interior", "azure@example.com", partner.TypeContact)
	require.NoError(t, err)
	return p
}

func newTax(t *testing.T, name string, percent int64) *catalog.Tax {
	t.Helper()
	tax, err := catalog.NewTax(kernel.NewUUID(), catalog.TaxParams{Name: name, Amount: decimal.NewFromInt(percent)})
	require.NoError(t, err)
	return tax
}

func newProduct(t *testing.T, price int64, taxes ...*catalog.Tax) *catalog.Product {
	t.Helper()
	ids := make([]kernel.UUID, 0, len(taxes))
	for _, tax := range taxes {
		ids = append(ids, tax.ID())
	}
	p, err := catalog.NewProduct(kernel.NewUUID(), catalog.ProductParams{
		DefaultCode: "FURN_0001",
		Name:        "Office Chair",
		ListPrice:   decimal.NewFromInt(price),
		TaxIDs:      ids,
		SaleOK:      true,
	})
	require.NoError(t, err)
	return p
}

func newEnquiry(t *testing.T, customer *partner.Partner, multi bool, lines ...orderline.Values) *enquiry.Enquiry {
	t.Helper()
	e, err := enquiry.NewEnquiry(kernel.NewUUID(), enquiry.Params{
		Name:       "ENQ00007",
		Customer:   customer,
		MultiOrder: multi,
		Currency:   eur,
	})
	require.NoError(t, err)
	require.NoError(t, e.AppendLines(lines))
	return e
}

func productValues(price, qty int64, taxes ...kernel.UUID) orderline.Values {
	productID := kernel.NewUUID()
	return orderline.Values{
		ProductID: &productID,
		Name:      "[FURN_0001] Office Chair",
		PriceUnit: decimal.NewFromInt(price),
		Quantity:  decimal.NewFromInt(qty),
		UoM:       "Units",
		TaxIDs:    taxes,
	}
}

func newSaleOrder(t *testing.T, customer *partner.Partner, state saleorder.State, lines ...orderline.Values) *saleorder.SaleOrder {
	t.Helper()
	o, err := saleorder.NewSaleOrder(kernel.NewUUID(), saleorder.Params{
		Name:     "S00003",
		Customer: customer,
		Currency: eur,
		Lines:    lines,
	})
	require.NoError(t, err)
	if state == saleorder.Draft {
		return o
	}
	restored, err := saleorder.RestoreSaleOrder(o.ID(), saleorder.Snapshot{
		Name:      o.Name(),
		PartnerID: o.PartnerID(),
		DateOrder: o.DateOrder(),
		State:     state,
		Currency:  eur,
		Lines:     o.Lines(),
	})
	require.NoError(t, err)
	return restored
}
