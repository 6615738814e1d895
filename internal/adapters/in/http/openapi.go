package http

import (
	"net/http"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
)

const apiVersion = "1.0.0"

// Schemas of the request and response bodies. Decimals travel as strings.

func decimalSchema() *openapi3.Schema {
	s := openapi3.NewStringSchema()
	s.Description = "decimal number"
	return s
}

func uuidListSchema() *openapi3.Schema {
	return openapi3.NewArraySchema().WithItems(openapi3.NewUUIDSchema())
}

func objectSchema(required []string, properties map[string]*openapi3.Schema) *openapi3.Schema {
	s := openapi3.NewObjectSchema()
	for name, property := range properties {
		s.WithProperty(name, property)
	}
	s.Required = required
	return s
}

func listOf(item *openapi3.Schema) *openapi3.Schema {
	return openapi3.NewArraySchema().WithItems(item)
}

func errorSchema() *openapi3.Schema {
	return objectSchema([]string{"code", "message"}, map[string]*openapi3.Schema{
		"code":    openapi3.NewIntegerSchema(),
		"message": openapi3.NewStringSchema(),
	})
}

func createdSchema() *openapi3.Schema {
	return objectSchema([]string{"id"}, map[string]*openapi3.Schema{"id": openapi3.NewUUIDSchema()})
}

func partnerTypeSchema() *openapi3.Schema {
	return openapi3.NewStringSchema().WithEnum("contact", "invoice", "delivery", "private")
}

func taxUseSchema() *openapi3.Schema {
	return openapi3.NewStringSchema().WithEnum("sale", "purchase", "none")
}

func newPartnerSchema() *openapi3.Schema {
	return objectSchema([]string{"name"}, map[string]*openapi3.Schema{
		"name":  openapi3.NewStringSchema(),
		"email": openapi3.NewStringSchema(),
		"type":  partnerTypeSchema(),
	})
}

func partnerSchema() *openapi3.Schema {
	return objectSchema([]string{"id", "name", "type"}, map[string]*openapi3.Schema{
		"id":    openapi3.NewUUIDSchema(),
		"name":  openapi3.NewStringSchema(),
		"email": openapi3.NewStringSchema(),
		"type":  partnerTypeSchema(),
	})
}

func taxProperties() map[string]*openapi3.Schema {
	return map[string]*openapi3.Schema{
		"name":         openapi3.NewStringSchema(),
		"amountType":   openapi3.NewStringSchema().WithEnum("percent", "fixed"),
		"amount":       decimalSchema(),
		"priceInclude": openapi3.NewBoolSchema(),
		"typeTaxUse":   taxUseSchema(),
		"sequence":     openapi3.NewIntegerSchema(),
	}
}

func newTaxSchema() *openapi3.Schema {
	return objectSchema([]string{"name", "amountType", "amount", "typeTaxUse"}, taxProperties())
}

func taxSchema() *openapi3.Schema {
	properties := taxProperties()
	properties["id"] = openapi3.NewUUIDSchema()
	return objectSchema([]string{"id", "name", "amountType", "amount", "typeTaxUse"}, properties)
}

func newProductSchema() *openapi3.Schema {
	return objectSchema([]string{"name"}, map[string]*openapi3.Schema{
		"defaultCode": openapi3.NewStringSchema(),
		"name":        openapi3.NewStringSchema(),
		"listPrice":   decimalSchema(),
		"uom":         openapi3.NewStringSchema(),
		"taxIds":      uuidListSchema(),
		"saleOk":      openapi3.NewBoolSchema(),
	})
}

func productSchema() *openapi3.Schema {
	return objectSchema([]string{"id", "name", "displayName"}, map[string]*openapi3.Schema{
		"id":          openapi3.NewUUIDSchema(),
		"defaultCode": openapi3.NewStringSchema(),
		"name":        openapi3.NewStringSchema(),
		"displayName": openapi3.NewStringSchema(),
		"listPrice":   decimalSchema(),
		"uom":         openapi3.NewStringSchema(),
		"taxIds":      uuidListSchema(),
		"saleOk":      openapi3.NewBoolSchema(),
	})
}

func displayTypeSchema() *openapi3.Schema {
	return openapi3.NewStringSchema().WithEnum("", "line_section", "line_note")
}

func lineSchema() *openapi3.Schema {
	return objectSchema(nil, map[string]*openapi3.Schema{
		"productId":   openapi3.NewUUIDSchema(),
		"sequence":    openapi3.NewIntegerSchema(),
		"displayType": displayTypeSchema(),
		"name":        openapi3.NewStringSchema(),
		"priceUnit":   decimalSchema(),
		"quantity":    decimalSchema(),
		"uom":         openapi3.NewStringSchema(),
		"taxIds":      uuidListSchema(),
	})
}

func orderLineSchema() *openapi3.Schema {
	return objectSchema([]string{"id", "sequence", "name"}, map[string]*openapi3.Schema{
		"id":            openapi3.NewUUIDSchema(),
		"sequence":      openapi3.NewIntegerSchema(),
		"productId":     openapi3.NewUUIDSchema().WithNullable(),
		"name":          openapi3.NewStringSchema(),
		"displayType":   displayTypeSchema(),
		"priceUnit":     decimalSchema(),
		"quantity":      decimalSchema(),
		"uom":           openapi3.NewStringSchema(),
		"taxIds":        uuidListSchema(),
		"priceSubtotal": decimalSchema(),
		"priceTax":      decimalSchema(),
		"priceTotal":    decimalSchema(),
	})
}

func taxTotalSchema() *openapi3.Schema {
	return objectSchema([]string{"taxId", "name", "base", "amount"}, map[string]*openapi3.Schema{
		"taxId":  openapi3.NewUUIDSchema(),
		"name":   openapi3.NewStringSchema(),
		"base":   decimalSchema(),
		"amount": decimalSchema(),
	})
}

func enquiryStateSchema() *openapi3.Schema {
	return openapi3.NewStringSchema().WithEnum("pending", "confirm", "cancel")
}

func saleOrderStateSchema() *openapi3.Schema {
	return openapi3.NewStringSchema().WithEnum("draft", "sent", "sale", "done", "cancel")
}

func newEnquirySchema() *openapi3.Schema {
	return objectSchema([]string{"partnerId"}, map[string]*openapi3.Schema{
		"name":       openapi3.NewStringSchema(),
		"sequence":   openapi3.NewIntegerSchema(),
		"partnerId":  openapi3.NewUUIDSchema(),
		"userId":     openapi3.NewUUIDSchema(),
		"dateOrder":  openapi3.NewDateTimeSchema(),
		"multiOrder": openapi3.NewBoolSchema(),
		"lines":      listOf(lineSchema()),
	})
}

func enquiryPatchSchema() *openapi3.Schema {
	return objectSchema(nil, map[string]*openapi3.Schema{
		"partnerId":  openapi3.NewUUIDSchema(),
		"dateOrder":  openapi3.NewDateTimeSchema(),
		"userId":     openapi3.NewUUIDSchema(),
		"sequence":   openapi3.NewIntegerSchema(),
		"multiOrder": openapi3.NewBoolSchema(),
	})
}

func enquirySchema() *openapi3.Schema {
	return objectSchema([]string{"id", "name", "partnerId", "dateOrder", "state"}, map[string]*openapi3.Schema{
		"id":            openapi3.NewUUIDSchema(),
		"name":          openapi3.NewStringSchema(),
		"sequence":      openapi3.NewIntegerSchema(),
		"partnerId":     openapi3.NewUUIDSchema(),
		"partnerName":   openapi3.NewStringSchema(),
		"email":         openapi3.NewStringSchema(),
		"userId":        openapi3.NewUUIDSchema().WithNullable(),
		"dateOrder":     openapi3.NewDateTimeSchema(),
		"state":         enquiryStateSchema(),
		"multiOrder":    openapi3.NewBoolSchema(),
		"saleOrderId":   openapi3.NewUUIDSchema().WithNullable(),
		"saleOrderIds":  uuidListSchema(),
		"saleCount":     openapi3.NewIntegerSchema(),
		"currency":      openapi3.NewStringSchema(),
		"amountUntaxed": decimalSchema(),
		"amountTax":     decimalSchema(),
		"amountTotal":   decimalSchema(),
		"lines":         listOf(orderLineSchema()),
		"taxTotals":     listOf(taxTotalSchema()),
	})
}

func enquirySummarySchema() *openapi3.Schema {
	return objectSchema([]string{"id", "name", "partnerId", "dateOrder", "state"}, map[string]*openapi3.Schema{
		"id":          openapi3.NewUUIDSchema(),
		"name":        openapi3.NewStringSchema(),
		"sequence":    openapi3.NewIntegerSchema(),
		"partnerId":   openapi3.NewUUIDSchema(),
		"partnerName": openapi3.NewStringSchema(),
		"dateOrder":   openapi3.NewDateTimeSchema(),
		"state":       enquiryStateSchema(),
		"multiOrder":  openapi3.NewBoolSchema(),
		"saleCount":   openapi3.NewIntegerSchema(),
		"currency":    openapi3.NewStringSchema(),
		"amountTotal": decimalSchema(),
	})
}

func saleOrderProperties() map[string]*openapi3.Schema {
	return map[string]*openapi3.Schema{
		"id":            openapi3.NewUUIDSchema(),
		"name":          openapi3.NewStringSchema(),
		"partnerId":     openapi3.NewUUIDSchema(),
		"partnerName":   openapi3.NewStringSchema(),
		"dateOrder":     openapi3.NewDateTimeSchema(),
		"state":         saleOrderStateSchema(),
		"enquiryId":     openapi3.NewUUIDSchema().WithNullable(),
		"currency":      openapi3.NewStringSchema(),
		"amountUntaxed": decimalSchema(),
		"amountTax":     decimalSchema(),
		"amountTotal":   decimalSchema(),
	}
}

func saleOrderSummarySchema() *openapi3.Schema {
	return objectSchema([]string{"id", "name", "partnerId", "state"}, saleOrderProperties())
}

func saleOrderSchema() *openapi3.Schema {
	properties := saleOrderProperties()
	properties["lines"] = listOf(orderLineSchema())
	properties["taxTotals"] = listOf(taxTotalSchema())
	return objectSchema([]string{"id", "name", "partnerId", "state"}, properties)
}

func newSaleOrderSchema() *openapi3.Schema {
	return objectSchema([]string{"partnerId"}, map[string]*openapi3.Schema{
		"partnerId": openapi3.NewUUIDSchema(),
		"dateOrder": openapi3.NewDateTimeSchema(),
		"lines":     listOf(lineSchema()),
	})
}

func saleLineWizardProperties() map[string]*openapi3.Schema {
	return map[string]*openapi3.Schema{
		"type":        openapi3.NewStringSchema().WithEnum("sale", "customer", "order_enq"),
		"activeModel": openapi3.NewStringSchema().WithEnum("order.enq", "sale.order"),
		"activeId":    openapi3.NewUUIDSchema(),
	}
}

func openSaleLineWizardSchema() *openapi3.Schema {
	return objectSchema([]string{"activeModel", "activeId"}, saleLineWizardProperties())
}

func saleLineWizardSchema() *openapi3.Schema {
	properties := saleLineWizardProperties()
	properties["id"] = openapi3.NewUUIDSchema()
	return objectSchema([]string{"id", "type", "activeModel", "activeId"}, properties)
}

func applySaleLineWizardSchema() *openapi3.Schema {
	return objectSchema(nil, map[string]*openapi3.Schema{
		"saleOrderId":  openapi3.NewUUIDSchema(),
		"multiOrder":   openapi3.NewBoolSchema(),
		"clearAdd":     openapi3.NewBoolSchema(),
		"saleOrderIds": uuidListSchema(),
	})
}

func orderTypeSchema() *openapi3.Schema {
	return openapi3.NewStringSchema().WithEnum("single_sale", "multi_sale")
}

func openProductAddWizardSchema() *openapi3.Schema {
	return objectSchema([]string{"productId"}, map[string]*openapi3.Schema{
		"orderType": orderTypeSchema(),
		"productId": openapi3.NewUUIDSchema(),
		"priceUnit": decimalSchema(),
		"quantity":  decimalSchema(),
		"uom":       openapi3.NewStringSchema(),
		"taxIds":    uuidListSchema(),
	})
}

func productAddWizardSchema() *openapi3.Schema {
	return objectSchema([]string{"id", "orderType", "productId", "priceUnit", "quantity"}, map[string]*openapi3.Schema{
		"id":           openapi3.NewUUIDSchema(),
		"orderType":    orderTypeSchema(),
		"productId":    openapi3.NewUUIDSchema(),
		"productName":  openapi3.NewStringSchema(),
		"priceUnit":    decimalSchema(),
		"quantity":     decimalSchema(),
		"uom":          openapi3.NewStringSchema(),
		"taxIds":       uuidListSchema(),
		"currency":     openapi3.NewStringSchema(),
		"saleOrderId":  openapi3.NewUUIDSchema().WithNullable(),
		"saleOrderIds": uuidListSchema(),
		"applied":      openapi3.NewBoolSchema(),
	})
}

func applyProductAddWizardSchema() *openapi3.Schema {
	return objectSchema(nil, map[string]*openapi3.Schema{
		"orderType":    orderTypeSchema(),
		"saleOrderId":  openapi3.NewUUIDSchema(),
		"saleOrderIds": uuidListSchema(),
	})
}

// Operation builders

type spec struct {
	op *openapi3.Operation
}

func operation(id, tag, summary string) spec {
	op := openapi3.NewOperation()
	op.OperationID = id
	op.Tags = []string{tag}
	op.Summary = summary
	op.Responses = openapi3.NewResponsesWithCapacity(4)
	return spec{op: op}
}

func (s spec) pathParams(names ...string) spec {
	for _, name := range names {
		p := openapi3.NewPathParameter(name).WithSchema(openapi3.NewUUIDSchema())
		s.op.Parameters = append(s.op.Parameters, &openapi3.ParameterRef{Value: p})
	}
	return s
}

func (s spec) queryParam(name string, schema *openapi3.Schema) spec {
	p := openapi3.NewQueryParameter(name).WithSchema(schema)
	s.op.Parameters = append(s.op.Parameters, &openapi3.ParameterRef{Value: p})
	return s
}

func (s spec) body(schema *openapi3.Schema) spec {
	s.op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(schema),
	}
	return s
}

func (s spec) respond(status int, description string, schema *openapi3.Schema) spec {
	response := openapi3.NewResponse().WithDescription(description)
	if schema != nil {
		response = response.WithJSONSchema(schema)
	}
	s.op.Responses.Set(strconv.Itoa(status), &openapi3.ResponseRef{Value: response})
	return s
}

func (s spec) respondHTML(status int, description string) spec {
	response := openapi3.NewResponse().WithDescription(description).
		WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{"text/html"}))
	s.op.Responses.Set(strconv.Itoa(status), &openapi3.ResponseRef{Value: response})
	return s
}

// errors adds the error responses of the given statuses.
func (s spec) errors(statuses ...int) spec {
	for _, status := range statuses {
		s.respond(status, http.StatusText(status), errorSchema())
	}
	return s.respond(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), errorSchema())
}

// Document describes the routes served under /api/v1.
func Document(routes []Route) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Enquiry API",
			Description: "Customer enquiries converted into sales quotations.",
			Version:     apiVersion,
		},
		Servers: openapi3.Servers{{URL: apiPrefix}},
		Paths:   openapi3.NewPaths(),
	}

	for _, r := range routes {
		item := doc.Paths.Value(r.Path)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(r.Path, item)
		}
		item.SetOperation(r.Method, r.Spec)
	}
	return doc
}
