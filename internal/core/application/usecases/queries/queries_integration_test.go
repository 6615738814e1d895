package queries_test

import (
	"context"
	"strings"
	"testing"
	"time"

	postgres_adapter "enquiry/internal/adapters/out/postgres"
	"enquiry/internal/core/application/usecases/queries"
	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/enquiry"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/orderline"
	"enquiry/internal/core/domain/model/partner"
	"enquiry/internal/core/domain/model/saleorder"
	"enquiry/internal/core/domain/model/wizard"
	"enquiry/internal/pkg/errs"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var eur = kernel.MustNewCurrency("EUR")

type QueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	reader    *sqlx.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory

	azure    *partner.Partner
	deco     *partner.Partner
	vat      *catalog.Tax
	purchase *catalog.Tax
}

func (suite *QueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db
	suite.Require().NoError(postgres_adapter.Migrate(db))

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	suite.reader = sqlx.NewDb(sqlDB, "pgx")
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, nil)
}

func (suite *QueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + strings.Join(postgres_adapter.TableNames, ", ")).Error)

	uow := suite.factory.Create()
	var err error
	suite.azure, err = partner.NewPartner(kernel.NewUUID(), "Azure Interior", "azure@example.com", partner.TypeContact)
	suite.Require().NoError(err)
	suite.deco, err = partner.NewPartner(kernel.NewUUID(), "Deco Addict", "", partner.TypeContact)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.PartnerRepository().Add(ctx, suite.azure))
	suite.Require().NoError(uow.PartnerRepository().Add(ctx, suite.deco))

	suite.vat, err = catalog.NewTax(kernel.NewUUID(), catalog.TaxParams{
		Name:       "VAT 15%",
		AmountType: catalog.AmountPercent,
		Amount:     decimal.NewFromInt(15),
		TypeTaxUse: catalog.TaxUseSale,
	})
	suite.Require().NoError(err)
	suite.purchase, err = catalog.NewTax(kernel.NewUUID(), catalog.TaxParams{
		Name:       "Purchase 10%",
		AmountType: catalog.AmountPercent,
		Amount:     decimal.NewFromInt(10),
		TypeTaxUse: catalog.TaxUsePurchase,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TaxRepository().Add(ctx, suite.vat))
	suite.Require().NoError(uow.TaxRepository().Add(ctx, suite.purchase))
}

func (suite *QueriesTestSuite) TestGetEnquiry() {
	ctx := context.Background()
	e := suite.addEnquiry(ctx, suite.azure, "ENQ00001", 10, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))

	query, err := queries.NewGetEnquiryQuery(e.ID())
	suite.Require().NoError(err)

	view, err := queries.NewGetEnquiryQueryHandler(suite.reader, catalog.RoundPerLine).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("ENQ00001", view.Name)
	suite.Equal("Azure Interior", view.PartnerName)
	suite.Equal("azure@example.com", view.Email)
	suite.Equal("pending", view.State)
	suite.Equal("EUR", view.Currency.Code())
	suite.Zero(view.SaleCount)
	suite.True(view.AmountTotal.Equal(decimal.NewFromInt(230)))
	suite.Require().Len(view.Lines, 2)
	suite.True(view.Lines[0].IsLayout())
	suite.Equal("[FURN_0001] Office Chair", view.Lines[1].Name)
	suite.Require().Len(view.TaxTotals, 1)
	suite.Equal("VAT 15%", view.TaxTotals[0].Name)
	suite.True(view.TaxTotals[0].Base.Equal(decimal.NewFromInt(200)))
	suite.True(view.TaxTotals[0].Amount.Equal(decimal.NewFromInt(30)))
}

func (suite *QueriesTestSuite) TestGetEnquiry_NotFound() {
	query, err := queries.NewGetEnquiryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetEnquiryQueryHandler(suite.reader, catalog.RoundPerLine).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesTestSuite) TestListEnquiries() {
	ctx := context.Background()
	day := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	late := suite.addEnquiry(ctx, suite.azure, "ENQ00001", 20, day)
	early := suite.addEnquiry(ctx, suite.azure, "ENQ00002", 10, day.Add(24*time.Hour))
	other := suite.addEnquiry(ctx, suite.deco, "ENQ00003", 10, day)

	all, err := suite.listEnquiries(nil, nil)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal(other.ID(), all[0].ID, "Same sequence, earlier date first")
	suite.Equal(early.ID(), all[1].ID)
	suite.Equal(late.ID(), all[2].ID)

	partnerID := suite.azure.ID()
	mine, err := suite.listEnquiries(nil, &partnerID)
	suite.Require().NoError(err)
	suite.Len(mine, 2)

	suite.Require().NoError(other.Cancel())
	suite.Require().NoError(suite.factory.Create().EnquiryRepository().Update(ctx, other))
	cancelled := enquiry.Cancel
	gone, err := suite.listEnquiries(&cancelled, nil)
	suite.Require().NoError(err)
	suite.Require().Len(gone, 1)
	suite.Equal("Deco Addict", gone[0].PartnerName)
}

func (suite *QueriesTestSuite) TestEnquirySaleOrders() {
	ctx := context.Background()
	e := suite.addEnquiry(ctx, suite.azure, "ENQ00001", 10, time.Now())
	multi := true
	suite.Require().NoError(e.UpdateHeader(enquiry.HeaderChanges{MultiOrder: &multi}))
	first := suite.addSaleOrder(ctx, suite.azure, "S00001", saleorder.Draft, e)
	suite.Require().NoError(e.Confirm(first.ID()))
	second := suite.addSaleOrder(ctx, suite.azure, "S00002", saleorder.Draft, e)
	suite.Require().NoError(e.CreateAdditionalOrder(second.ID()))
	suite.Require().NoError(suite.factory.Create().EnquiryRepository().Update(ctx, e))

	query, err := queries.NewListEnquirySaleOrdersQuery(e.ID())
	suite.Require().NoError(err)
	orders, err := queries.NewListEnquirySaleOrdersQueryHandler(suite.reader).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal("S00001", orders[0].Name)
	suite.Equal("S00002", orders[1].Name)
	suite.Equal(e.ID(), *orders[0].EnquiryID)

	getQuery, err := queries.NewGetEnquiryQuery(e.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetEnquiryQueryHandler(suite.reader, catalog.RoundPerLine).Handle(ctx, getQuery)
	suite.Require().NoError(err)
	suite.Equal(2, view.SaleCount)
	suite.Equal(second.ID(), *view.SaleOrderID)
}

func (suite *QueriesTestSuite) TestEnquirySaleOrders_UnknownEnquiry() {
	query, err := queries.NewListEnquirySaleOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewListEnquirySaleOrdersQueryHandler(suite.reader).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesTestSuite) TestSaleOrders() {
	ctx := context.Background()
	e := suite.addEnquiry(ctx, suite.azure, "ENQ00001", 10, time.Now())
	fromEnquiry := suite.addSaleOrder(ctx, suite.azure, "S00001", saleorder.Draft, e)
	suite.addSaleOrder(ctx, suite.deco, "S00002", saleorder.Sale, nil)

	get, err := queries.NewGetSaleOrderQuery(fromEnquiry.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetSaleOrderQueryHandler(suite.reader, catalog.RoundPerLine).Handle(ctx, get)
	suite.Require().NoError(err)
	suite.Equal("S00001", view.Name)
	suite.Len(view.Lines, 2)
	suite.Require().Len(view.TaxTotals, 1)
	suite.True(view.AmountTotal.Equal(decimal.NewFromInt(230)))

	hasEnquiry := true
	list, err := suite.listSaleOrders(queries.ListSaleOrdersFilter{HasEnquiry: &hasEnquiry})
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(fromEnquiry.ID(), list[0].ID)

	sale := saleorder.Sale
	list, err = suite.listSaleOrders(queries.ListSaleOrdersFilter{State: &sale})
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal("Deco Addict", list[0].PartnerName)

	missing, err := queries.NewGetSaleOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetSaleOrderQueryHandler(suite.reader, catalog.RoundPerLine).Handle(ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesTestSuite) TestMasterData() {
	ctx := context.Background()
	chair, err := catalog.NewProduct(kernel.NewUUID(), catalog.ProductParams{
		DefaultCode: "FURN_0001",
		Name:        "Office Chair",
		ListPrice:   decimal.NewFromInt(100),
		TaxIDs:      []kernel.UUID{suite.vat.ID()},
		SaleOK:      true,
	})
	suite.Require().NoError(err)
	service, err := catalog.NewProduct(kernel.NewUUID(), catalog.ProductParams{Name: "Assembly", ListPrice: decimal.Zero})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().ProductRepository().Add(ctx, chair))
	suite.Require().NoError(suite.factory.Create().ProductRepository().Add(ctx, service))

	partners, err := queries.NewListPartnersQueryHandler(suite.reader).Handle(ctx, queries.NewListPartnersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(partners, 2)
	suite.Equal("Azure Interior", partners[0].Name)

	products, err := queries.NewListProductsQueryHandler(suite.reader).Handle(ctx, queries.NewListProductsQuery(true))
	suite.Require().NoError(err)
	suite.Require().Len(products, 1)
	suite.Equal("[FURN_0001] Office Chair", products[0].DisplayName)
	suite.Equal([]kernel.UUID{suite.vat.ID()}, products[0].TaxIDs)

	products, err = queries.NewListProductsQueryHandler(suite.reader).Handle(ctx, queries.NewListProductsQuery(false))
	suite.Require().NoError(err)
	suite.Len(products, 2)

	use := catalog.TaxUseSale
	taxQuery, err := queries.NewListTaxesQuery(&use)
	suite.Require().NoError(err)
	taxes, err := queries.NewListTaxesQueryHandler(suite.reader).Handle(ctx, taxQuery)
	suite.Require().NoError(err)
	suite.Require().Len(taxes, 1)
	suite.Equal(suite.vat.ID(), taxes[0].ID)
}

func (suite *QueriesTestSuite) TestWizardCandidates_SaleLine() {
	ctx := context.Background()
	e := suite.addEnquiry(ctx, suite.azure, "ENQ00001", 10, time.Now())
	target := suite.addSaleOrder(ctx, suite.azure, "S00001", saleorder.Draft, nil)
	sibling := suite.addSaleOrder(ctx, suite.azure, "S00002", saleorder.Sale, e)
	suite.addSaleOrder(ctx, suite.deco, "S00003", saleorder.Draft, e)

	customerID := suite.azure.ID()
	byCustomer := suite.addSaleLineWizard(ctx, wizard.BasedOnCustomer, wizard.Target{
		Model:      wizard.TargetSaleOrder,
		ID:         target.ID(),
		CustomerID: &customerID,
	})
	candidates, err := suite.candidates(queries.SaleLineWizardKind, byCustomer.ID())
	suite.Require().NoError(err)
	suite.Require().Len(candidates, 1, "The target order itself is excluded")
	suite.Equal(sibling.ID(), candidates[0].ID)

	byEnquiry := suite.addSaleLineWizard(ctx, wizard.BasedOnEnquiry, wizard.Target{
		Model:      wizard.TargetEnquiry,
		ID:         e.ID(),
		CustomerID: &customerID,
	})
	candidates, err = suite.candidates(queries.SaleLineWizardKind, byEnquiry.ID())
	suite.Require().NoError(err)
	suite.Len(candidates, 2)

	_, err = suite.candidates(queries.SaleLineWizardKind, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesTestSuite) TestWizardCandidates_ProductAdd() {
	ctx := context.Background()
	draft := suite.addSaleOrder(ctx, suite.azure, "S00001", saleorder.Draft, nil)
	sent := suite.addSaleOrder(ctx, suite.deco, "S00002", saleorder.Sent, nil)
	suite.addSaleOrder(ctx, suite.deco, "S00003", saleorder.Sale, nil)

	chair, err := catalog.NewProduct(kernel.NewUUID(), catalog.ProductParams{
		Name:      "Office Chair",
		ListPrice: decimal.NewFromInt(75),
		SaleOK:    true,
	})
	suite.Require().NoError(err)
	w, err := wizard.NewProductAddWizard(kernel.NewUUID(), wizard.ProductAddParams{
		Product:  chair,
		Currency: eur,
	}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().ProductAddWizardRepository().Add(ctx, w))

	candidates, err := suite.candidates(queries.ProductAddWizardKind, w.ID())
	suite.Require().NoError(err)
	suite.Require().Len(candidates, 2)
	ids := []kernel.UUID{candidates[0].ID, candidates[1].ID}
	suite.ElementsMatch([]kernel.UUID{draft.ID(), sent.ID()}, ids)

	query, err := queries.NewGetProductAddWizardQuery(w.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetProductAddWizardQueryHandler(suite.reader).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("single_sale", view.OrderType)
	suite.Equal("Office Chair", view.ProductName)
	suite.True(view.PriceUnit.Equal(decimal.NewFromInt(75)))
	suite.True(view.Quantity.Equal(decimal.NewFromInt(1)))
	suite.Equal("EUR", view.Currency.Code())
	suite.False(view.Applied)

	query, err = queries.NewGetProductAddWizardQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetProductAddWizardQueryHandler(suite.reader).Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// addEnquiry stores a section and 2 x 100 at 15%.
func (suite *QueriesTestSuite) addEnquiry(
	ctx context.Context,
	customer *partner.Partner,
	name string,
	sequence int,
	date time.Time,
) *enquiry.Enquiry {
	e, err := enquiry.NewEnquiry(kernel.NewUUID(), enquiry.Params{
		Name:      name,
		Sequence:  &sequence,
		Customer:  customer,
		DateOrder: date,
		Currency:  eur,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(e.AppendLines(suite.lines()))
	suite.Require().NoError(e.RecomputeAmounts(catalog.NewTaxSet(suite.vat), catalog.RoundPerLine))
	suite.Require().NoError(suite.factory.Create().EnquiryRepository().Add(ctx, e))
	return e
}

func (suite *QueriesTestSuite) addSaleOrder(
	ctx context.Context,
	customer *partner.Partner,
	name string,
	state saleorder.State,
	from *enquiry.Enquiry,
) *saleorder.SaleOrder {
	params := saleorder.Params{Name: name, Customer: customer, Currency: eur, Lines: suite.lines()}
	if from != nil {
		id := from.ID()
		params.EnquiryID = &id
	}
	o, err := saleorder.NewSaleOrder(kernel.NewUUID(), params)
	suite.Require().NoError(err)
	suite.Require().NoError(o.RecomputeAmounts(catalog.NewTaxSet(suite.vat), catalog.RoundPerLine))

	if state != saleorder.Draft {
		o, err = saleorder.RestoreSaleOrder(o.ID(), saleorder.Snapshot{
			Name:          o.Name(),
			PartnerID:     o.PartnerID(),
			DateOrder:     o.DateOrder(),
			State:         state,
			EnquiryID:     o.EnquiryID(),
			Currency:      o.Currency(),
			Lines:         o.Lines(),
			AmountUntaxed: o.AmountUntaxed(),
			AmountTax:     o.AmountTax(),
			AmountTotal:   o.AmountTotal(),
		})
		suite.Require().NoError(err)
	}

	suite.Require().NoError(suite.factory.Create().SaleOrderRepository().Add(ctx, o))
	return o
}

func (suite *QueriesTestSuite) addSaleLineWizard(
	ctx context.Context,
	source wizard.SourceType,
	target wizard.Target,
) *wizard.SaleLineWizard {
	w, err := wizard.NewSaleLineWizard(kernel.NewUUID(), source, target, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().SaleLineWizardRepository().Add(ctx, w))
	return w
}

func (suite *QueriesTestSuite) lines() []orderline.Values {
	productID := kernel.NewUUID()
	return []orderline.Values{
		{Name: "Chairs", DisplayType: orderline.DisplaySection},
		{
			ProductID: &productID,
			Name:      "[FURN_0001] Office Chair",
			PriceUnit: decimal.NewFromInt(100),
			Quantity:  decimal.NewFromInt(2),
			UoM:       "Units",
			TaxIDs:    []kernel.UUID{suite.vat.ID()},
		},
	}
}

func (suite *QueriesTestSuite) listEnquiries(state *enquiry.State, partnerID *kernel.UUID) ([]queries.EnquirySummary, error) {
	query, err := queries.NewListEnquiriesQuery(state, partnerID)
	suite.Require().NoError(err)
	return queries.NewListEnquiriesQueryHandler(suite.reader).Handle(context.Background(), query)
}

func (suite *QueriesTestSuite) listSaleOrders(filter queries.ListSaleOrdersFilter) ([]queries.SaleOrderSummary, error) {
	query, err := queries.NewListSaleOrdersQuery(filter)
	suite.Require().NoError(err)
	return queries.NewListSaleOrdersQueryHandler(suite.reader).Handle(context.Background(), query)
}

func (suite *QueriesTestSuite) candidates(kind queries.WizardKind, id kernel.UUID) ([]queries.SaleOrderSummary, error) {
	query, err := queries.NewListWizardCandidatesQuery(kind, id)
	suite.Require().NoError(err)
	return queries.NewListWizardCandidatesQueryHandler(suite.reader).Handle(context.Background(), query)
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}
