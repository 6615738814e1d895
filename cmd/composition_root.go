package cmd

import (
	"enquiry/internal/adapters/in/http"
	"enquiry/internal/adapters/out/postgres"
	"enquiry/internal/core/application/usecases/commands"
	"enquiry/internal/core/application/usecases/queries"
	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/jobs"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	settings   commands.Settings
	gormDB     *gorm.DB
	reader     *sqlx.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) (CompositionRoot, error) {
	settings, err := config.Settings()
	if err != nil {
		return CompositionRoot{}, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		settings:   settings,
		gormDB:     gormDB,
		reader:     sqlx.NewDb(sqlDB, "pgx"),
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, nil),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) masterDataUoWFactory() commands.MasterDataUoWFactory {
	return FuncMasterDataUoWFactory(func() commands.MasterDataUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) enquiryUoWFactory() commands.EnquiryUoWFactory {
	return FuncEnquiryUoWFactory(func() commands.EnquiryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) saleOrderUoWFactory() commands.SaleOrderUoWFactory {
	return FuncSaleOrderUoWFactory(func() commands.SaleOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) wizardCleanupUoWFactory() commands.WizardCleanupUoWFactory {
	return FuncWizardCleanupUoWFactory(func() commands.WizardCleanupUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) unitOfWorkFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) rounding() catalog.RoundingMethod {
	return c.settings.Rounding
}

// HTTPHandlers wires every use case served over HTTP.
func (c *CompositionRoot) HTTPHandlers() http.Handlers {
	return http.Handlers{
		CreatePartner:         commands.NewCreatePartnerCommandHandler(c.masterDataUoWFactory()),
		CreateTax:             commands.NewCreateTaxCommandHandler(c.masterDataUoWFactory()),
		CreateProduct:         commands.NewCreateProductCommandHandler(c.masterDataUoWFactory()),
		CreateEnquiry:         commands.NewCreateEnquiryCommandHandler(c.enquiryUoWFactory(), c.settings),
		UpdateEnquiry:         commands.NewUpdateEnquiryCommandHandler(c.enquiryUoWFactory()),
		AddEnquiryLine:        commands.NewAddEnquiryLineCommandHandler(c.enquiryUoWFactory(), c.settings),
		UpdateEnquiryLine:     commands.NewUpdateEnquiryLineCommandHandler(c.enquiryUoWFactory(), c.settings),
		RemoveEnquiryLine:     commands.NewRemoveEnquiryLineCommandHandler(c.enquiryUoWFactory(), c.settings),
		ConfirmEnquiry:        commands.NewConfirmEnquiryCommandHandler(c.unitOfWorkFactory(), c.settings),
		CreateAdditionalOrder: commands.NewCreateAdditionalOrderCommandHandler(c.unitOfWorkFactory(), c.settings),
		CancelEnquiry:         commands.NewCancelEnquiryCommandHandler(c.enquiryUoWFactory()),
		CreateSaleOrder:       commands.NewCreateSaleOrderCommandHandler(c.saleOrderUoWFactory(), c.settings),
		OpenSaleLineWizard:    commands.NewOpenSaleLineWizardCommandHandler(c.unitOfWorkFactory()),
		ApplySaleLineWizard:   commands.NewApplySaleLineWizardCommandHandler(c.unitOfWorkFactory(), c.settings),
		OpenProductAddWizard:  commands.NewOpenProductAddWizardCommandHandler(c.unitOfWorkFactory(), c.settings),
		ApplyProductAddWizard: commands.NewApplyProductAddWizardCommandHandler(c.unitOfWorkFactory(), c.settings),

		ListPartners:          queries.NewListPartnersQueryHandler(c.reader),
		ListTaxes:             queries.NewListTaxesQueryHandler(c.reader),
		ListProducts:          queries.NewListProductsQueryHandler(c.reader),
		GetEnquiry:            queries.NewGetEnquiryQueryHandler(c.reader, c.rounding()),
		ListEnquiries:         queries.NewListEnquiriesQueryHandler(c.reader),
		ListEnquirySaleOrders: queries.NewListEnquirySaleOrdersQueryHandler(c.reader),
		GetSaleOrder:          queries.NewGetSaleOrderQueryHandler(c.reader, c.rounding()),
		ListSaleOrders:        queries.NewListSaleOrdersQueryHandler(c.reader),
		ListWizardCandidates:  queries.NewListWizardCandidatesQueryHandler(c.reader),
		GetProductAddWizard:   queries.NewGetProductAddWizardQueryHandler(c.reader),
	}
}

func (c *CompositionRoot) CreatePurgeExpiredWizardsCommandHandler() commands.PurgeExpiredWizardsCommandHandler {
	return commands.NewPurgeExpiredWizardsCommandHandler(c.wizardCleanupUoWFactory())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePurgeExpiredWizardsCommandHandler(),
		jobs.WizardCleanupConfig{
			Schedule: c.config.WizardCleanupSchedule,
			TTL:      c.config.WizardTTL,
		},
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(c.HTTPHandlers(), c.logger)
}

type FuncMasterDataUoWFactory func() commands.MasterDataUoW

func (f FuncMasterDataUoWFactory) Create() commands.MasterDataUoW {
	return f()
}

type FuncEnquiryUoWFactory func() commands.EnquiryUoW

func (f FuncEnquiryUoWFactory) Create() commands.EnquiryUoW {
	return f()
}

type FuncSaleOrderUoWFactory func() commands.SaleOrderUoW

func (f FuncSaleOrderUoWFactory) Create() commands.SaleOrderUoW {
	return f()
}

type FuncWizardCleanupUoWFactory func() commands.WizardCleanupUoW

func (f FuncWizardCleanupUoWFactory) Create() commands.WizardCleanupUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
