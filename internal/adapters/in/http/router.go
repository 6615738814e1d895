package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const (
	apiPrefix       = "/api/v1"
	swaggerInstance = "enquiry"
)

// Route is one operation of the API: the echo handler and its OpenAPI description.
type Route struct {
	Method  string
	Path    string
	Handler echo.HandlerFunc
	Spec    *openapi3.Operation
}

// Routes lists the /api/v1 operations. Paths use the OpenAPI template syntax.
func (s *Server) Routes() []Route {
	route := func(method, path string, handler echo.HandlerFunc, sp spec) Route {
		return Route{Method: method, Path: path, Handler: handler, Spec: sp.op}
	}
	bad, missing, conflict := http.StatusBadRequest, http.StatusNotFound, http.StatusConflict

	return []Route{
		route(http.MethodPost, "/partners", s.CreatePartner,
			operation("createPartner", "master data", "Create a partner").
				body(newPartnerSchema()).respond(http.StatusCreated, "Created", createdSchema()).errors(bad)),
		route(http.MethodGet, "/partners", s.ListPartners,
			operation("listPartners", "master data", "List partners").
				respond(http.StatusOK, "Partners", listOf(partnerSchema())).errors()),
		route(http.MethodPost, "/taxes", s.CreateTax,
			operation("createTax", "master data", "Create a tax").
				body(newTaxSchema()).respond(http.StatusCreated, "Created", createdSchema()).errors(bad)),
		route(http.MethodGet, "/taxes", s.ListTaxes,
			operation("listTaxes", "master data", "List taxes in computation order").
				queryParam("typeTaxUse", taxUseSchema()).
				respond(http.StatusOK, "Taxes", listOf(taxSchema())).errors(bad)),
		route(http.MethodPost, "/products", s.CreateProduct,
			operation("createProduct", "master data", "Create a product").
				body(newProductSchema()).respond(http.StatusCreated, "Created", createdSchema()).errors(bad, missing)),
		route(http.MethodGet, "/products", s.ListProducts,
			operation("listProducts", "master data", "List products").
				queryParam("saleOk", openapi3.NewBoolSchema()).
				respond(http.StatusOK, "Products", listOf(productSchema())).errors(bad)),

		route(http.MethodPost, "/enquiries", s.CreateEnquiry,
			operation("createEnquiry", "enquiries", "Record an enquiry").
				body(newEnquirySchema()).respond(http.StatusCreated, "Enquiry", enquirySchema()).errors(bad, missing)),
		route(http.MethodGet, "/enquiries", s.ListEnquiries,
			operation("listEnquiries", "enquiries", "List enquiries").
				queryParam("state", enquiryStateSchema()).queryParam("partnerId", openapi3.NewUUIDSchema()).
				respond(http.StatusOK, "Enquiries", listOf(enquirySummarySchema())).errors(bad)),
		route(http.MethodGet, "/enquiries/{enquiryId}", s.GetEnquiry,
			operation("getEnquiry", "enquiries", "Get an enquiry").pathParams("enquiryId").
				respond(http.StatusOK, "Enquiry", enquirySchema()).errors(bad, missing)),
		route(http.MethodPatch, "/enquiries/{enquiryId}", s.UpdateEnquiry,
			operation("updateEnquiry", "enquiries", "Change the enquiry header").pathParams("enquiryId").
				body(enquiryPatchSchema()).respond(http.StatusOK, "Enquiry", enquirySchema()).errors(bad, missing, conflict)),
		route(http.MethodPost, "/enquiries/{enquiryId}/lines", s.AddEnquiryLine,
			operation("addEnquiryLine", "enquiries", "Add a line").pathParams("enquiryId").
				body(lineSchema()).respond(http.StatusCreated, "Enquiry", enquirySchema()).errors(bad, missing, conflict)),
		route(http.MethodPut, "/enquiries/{enquiryId}/lines/{lineId}", s.UpdateEnquiryLine,
			operation("updateEnquiryLine", "enquiries", "Replace a line").pathParams("enquiryId", "lineId").
				body(lineSchema()).respond(http.StatusOK, "Enquiry", enquirySchema()).errors(bad, missing, conflict)),
		route(http.MethodDelete, "/enquiries/{enquiryId}/lines/{lineId}", s.RemoveEnquiryLine,
			operation("removeEnquiryLine", "enquiries", "Remove a line").pathParams("enquiryId", "lineId").
				respond(http.StatusNoContent, "Removed", nil).errors(bad, missing, conflict)),
		route(http.MethodPost, "/enquiries/{enquiryId}/confirm", s.ConfirmEnquiry,
			operation("confirmEnquiry", "enquiries", "Create the quotation of an enquiry").pathParams("enquiryId").
				respond(http.StatusCreated, "Quotation", saleOrderSchema()).errors(bad, missing, conflict)),
		route(http.MethodPost, "/enquiries/{enquiryId}/additional-orders", s.CreateAdditionalOrder,
			operation("createAdditionalOrder", "enquiries", "Create another quotation").pathParams("enquiryId").
				respond(http.StatusCreated, "Quotation", saleOrderSchema()).errors(bad, missing, conflict)),
		route(http.MethodPost, "/enquiries/{enquiryId}/cancel", s.CancelEnquiry,
			operation("cancelEnquiry", "enquiries", "Cancel a pending enquiry").pathParams("enquiryId").
				respond(http.StatusOK, "Enquiry", enquirySchema()).errors(bad, missing, conflict)),
		route(http.MethodGet, "/enquiries/{enquiryId}/sale-orders", s.ListEnquirySaleOrders,
			operation("listEnquirySaleOrders", "enquiries", "Sales orders created from an enquiry").pathParams("enquiryId").
				respond(http.StatusOK, "Sales orders", listOf(saleOrderSummarySchema())).errors(bad, missing)),
		route(http.MethodGet, "/enquiries/{enquiryId}/print", s.PrintEnquiry,
			operation("printEnquiry", "enquiries", "HTML summary of an enquiry").pathParams("enquiryId").
				respondHTML(http.StatusOK, "Printable enquiry").errors(bad, missing)),

		route(http.MethodPost, "/sale-orders", s.CreateSaleOrder,
			operation("createSaleOrder", "sale orders", "Create a draft quotation").
				body(newSaleOrderSchema()).respond(http.StatusCreated, "Quotation", saleOrderSchema()).errors(bad, missing)),
		route(http.MethodGet, "/sale-orders", s.ListSaleOrders,
			operation("listSaleOrders", "sale orders", "List sales orders").
				queryParam("partnerId", openapi3.NewUUIDSchema()).queryParam("state", saleOrderStateSchema()).
				queryParam("fromEnquiry", openapi3.NewBoolSchema()).
				respond(http.StatusOK, "Sales orders", listOf(saleOrderSummarySchema())).errors(bad)),
		route(http.MethodGet, "/sale-orders/{saleOrderId}", s.GetSaleOrder,
			operation("getSaleOrder", "sale orders", "Get a sales order").pathParams("saleOrderId").
				respond(http.StatusOK, "Sales order", saleOrderSchema()).errors(bad, missing)),

		route(http.MethodPost, "/wizards/sale-lines", s.OpenSaleLineWizard,
			operation("openSaleLineWizard", "wizards", "Open the add lines from sales orders wizard").
				body(openSaleLineWizardSchema()).respond(http.StatusCreated, "Wizard", saleLineWizardSchema()).errors(bad, missing)),
		route(http.MethodGet, "/wizards/sale-lines/{wizardId}/candidates", s.ListSaleLineWizardCandidates,
			operation("listSaleLineWizardCandidates", "wizards", "Sales orders the lines can be copied from").pathParams("wizardId").
				respond(http.StatusOK, "Sales orders", listOf(saleOrderSummarySchema())).errors(bad, missing)),
		route(http.MethodPost, "/wizards/sale-lines/{wizardId}/apply", s.ApplySaleLineWizard,
			operation("applySaleLineWizard", "wizards", "Copy the lines of the selected orders").pathParams("wizardId").
				body(applySaleLineWizardSchema()).respond(http.StatusNoContent, "Applied", nil).errors(bad, missing, conflict)),
		route(http.MethodPost, "/wizards/product-add", s.OpenProductAddWizard,
			operation("openProductAddWizard", "wizards", "Open the add product to quotations wizard").
				body(openProductAddWizardSchema()).respond(http.StatusCreated, "Wizard", productAddWizardSchema()).errors(bad, missing)),
		route(http.MethodGet, "/wizards/product-add/{wizardId}/candidates", s.ListProductAddWizardCandidates,
			operation("listProductAddWizardCandidates", "wizards", "Quotations the product can be added to").pathParams("wizardId").
				respond(http.StatusOK, "Quotations", listOf(saleOrderSummarySchema())).errors(bad, missing)),
		route(http.MethodPost, "/wizards/product-add/{wizardId}/apply", s.ApplyProductAddWizard,
			operation("applyProductAddWizard", "wizards", "Add the product to the selected quotations").pathParams("wizardId").
				body(applyProductAddWizardSchema()).respond(http.StatusNoContent, "Applied", nil).errors(bad, missing, conflict)),
	}
}

// Register mounts /health, /openapi.json, /swagger/* and the /api/v1 routes.
func (s *Server) Register(e *echo.Echo) error {
	routes := s.Routes()
	doc, err := json.Marshal(Document(routes))
	if err != nil {
		return errors.Wrap(err, "marshal openapi document")
	}
	registerSwagger(doc)

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "healthy")
	})
	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSONBlob(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(swaggerInstance)))

	api := e.Group(apiPrefix)
	for _, r := range routes {
		api.Add(r.Method, echoPath(r.Path), r.Handler)
	}
	return nil
}

// echoPath turns /enquiries/{enquiryId} into /enquiries/:enquiryId.
func echoPath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			segments[i] = ":" + strings.TrimSuffix(strings.TrimPrefix(segment, "{"), "}")
		}
	}
	return strings.Join(segments, "/")
}

type swaggerDoc struct {
	doc []byte
}

func (d swaggerDoc) ReadDoc() string {
	return string(d.doc)
}

var swaggerOnce sync.Once

// registerSwagger hands the document to the swagger UI. swag refuses a second
// registration under the same name.
func registerSwagger(doc []byte) {
	swaggerOnce.Do(func() {
		swag.Register(swaggerInstance, swaggerDoc{doc: doc})
	})
}
