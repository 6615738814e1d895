package http

import (
	"context"

	"enquiry/internal/core/application/usecases/commands"
	"enquiry/internal/core/application/usecases/queries"

	"github.com/flosch/pongo2"
	"go.uber.org/zap"
)

// CommandHandler executes one use case.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler reads one view.
type QueryHandler[Q any, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers are the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreatePartner         CommandHandler[commands.CreatePartnerCommand]
	CreateTax             CommandHandler[commands.CreateTaxCommand]
	CreateProduct         CommandHandler[commands.CreateProductCommand]
	CreateEnquiry         CommandHandler[commands.CreateEnquiryCommand]
	UpdateEnquiry         CommandHandler[commands.UpdateEnquiryCommand]
	AddEnquiryLine        CommandHandler[commands.AddEnquiryLineCommand]
	UpdateEnquiryLine     CommandHandler[commands.UpdateEnquiryLineCommand]
	RemoveEnquiryLine     CommandHandler[commands.RemoveEnquiryLineCommand]
	ConfirmEnquiry        CommandHandler[commands.ConfirmEnquiryCommand]
	CreateAdditionalOrder CommandHandler[commands.CreateAdditionalOrderCommand]
	CancelEnquiry         CommandHandler[commands.CancelEnquiryCommand]
	CreateSaleOrder       CommandHandler[commands.CreateSaleOrderCommand]
	OpenSaleLineWizard    CommandHandler[commands.OpenSaleLineWizardCommand]
	ApplySaleLineWizard   CommandHandler[commands.ApplySaleLineWizardCommand]
	OpenProductAddWizard  CommandHandler[commands.OpenProductAddWizardCommand]
	ApplyProductAddWizard CommandHandler[commands.ApplyProductAddWizardCommand]

	// Query handlers
	ListPartners          QueryHandler[queries.ListPartnersQuery, []queries.PartnerView]
	ListTaxes             QueryHandler[queries.ListTaxesQuery, []queries.TaxView]
	ListProducts          QueryHandler[queries.ListProductsQuery, []queries.ProductView]
	GetEnquiry            QueryHandler[queries.GetEnquiryQuery, queries.EnquiryView]
	ListEnquiries         QueryHandler[queries.ListEnquiriesQuery, []queries.EnquirySummary]
	ListEnquirySaleOrders QueryHandler[queries.ListEnquirySaleOrdersQuery, []queries.SaleOrderSummary]
	GetSaleOrder          QueryHandler[queries.GetSaleOrderQuery, queries.SaleOrderView]
	ListSaleOrders        QueryHandler[queries.ListSaleOrdersQuery, []queries.SaleOrderSummary]
	ListWizardCandidates  QueryHandler[queries.ListWizardCandidatesQuery, []queries.SaleOrderSummary]
	GetProductAddWizard   QueryHandler[queries.GetProductAddWizardQuery, queries.ProductAddWizardView]
}

// Server handles the HTTP requests of the /api/v1 routes.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	print  *pongo2.Template
	logger *zap.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	return &Server{
		h:      handlers,
		print:  pongo2.Must(pongo2.FromString(enquiryPrintTemplate)),
		logger: logger.With(zap.String("component", "http")),
	}
}
