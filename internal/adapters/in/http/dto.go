package http

import (
	"time"

	"enquiry/internal/core/application/usecases/commands"
	"enquiry/internal/core/application/usecases/queries"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/orderline"
	"enquiry/internal/core/domain/services"
	"enquiry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Requests

type NewPartner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type"`
}

type NewTax struct {
	Name         string          `json:"name"`
	AmountType   string          `json:"amountType"`
	Amount       decimal.Decimal `json:"amount"`
	PriceInclude bool            `json:"priceInclude"`
	TypeTaxUse   string          `json:"typeTaxUse"`
	Sequence     int             `json:"sequence"`
}

type NewProduct struct {
	DefaultCode string          `json:"defaultCode"`
	Name        string          `json:"name"`
	ListPrice   decimal.Decimal `json:"listPrice"`
	UoM         string          `json:"uom"`
	TaxIDs      []uuid.UUID     `json:"taxIds"`
	SaleOK      *bool           `json:"saleOk"`
}

// Line is a line as typed by the user. Omitted fields take the product
// defaults; an omitted taxIds takes the product taxes.
type Line struct {
	ProductID   *uuid.UUID       `json:"productId"`
	Sequence    int              `json:"sequence"`
	DisplayType string           `json:"displayType"`
	Name        *string          `json:"name"`
	PriceUnit   *decimal.Decimal `json:"priceUnit"`
	Quantity    *decimal.Decimal `json:"quantity"`
	UoM         *string          `json:"uom"`
	TaxIDs      *[]uuid.UUID     `json:"taxIds"`
}

type NewEnquiry struct {
	Name       string     `json:"name"`
	Sequence   *int       `json:"sequence"`
	PartnerID  uuid.UUID  `json:"partnerId"`
	UserID     *uuid.UUID `json:"userId"`
	DateOrder  *time.Time `json:"dateOrder"`
	MultiOrder bool       `json:"multiOrder"`
	Lines      []Line     `json:"lines"`
}

type EnquiryPatch struct {
	PartnerID  *uuid.UUID `json:"partnerId"`
	DateOrder  *time.Time `json:"dateOrder"`
	UserID     *uuid.UUID `json:"userId"`
	Sequence   *int       `json:"sequence"`
	MultiOrder *bool      `json:"multiOrder"`
}

type NewSaleOrder struct {
	PartnerID uuid.UUID  `json:"partnerId"`
	DateOrder *time.Time `json:"dateOrder"`
	Lines     []Line     `json:"lines"`
}

type OpenSaleLineWizard struct {
	Type        string    `json:"type"`
	ActiveModel string    `json:"activeModel"`
	ActiveID    uuid.UUID `json:"activeId"`
}

type ApplySaleLineWizard struct {
	SaleOrderID  *uuid.UUID  `json:"saleOrderId"`
	MultiOrder   bool        `json:"multiOrder"`
	ClearAdd     bool        `json:"clearAdd"`
	SaleOrderIDs []uuid.UUID `json:"saleOrderIds"`
}

type OpenProductAddWizard struct {
	OrderType string           `json:"orderType"`
	ProductID uuid.UUID        `json:"productId"`
	PriceUnit *decimal.Decimal `json:"priceUnit"`
	Quantity  *decimal.Decimal `json:"quantity"`
	UoM       string           `json:"uom"`
	TaxIDs    []uuid.UUID      `json:"taxIds"`
}

type ApplyProductAddWizard struct {
	OrderType    string      `json:"orderType"`
	SaleOrderID  *uuid.UUID  `json:"saleOrderId"`
	SaleOrderIDs []uuid.UUID `json:"saleOrderIds"`
}

// Responses

type Created struct {
	ID uuid.UUID `json:"id"`
}

type Partner struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Type  string    `json:"type"`
}

type Tax struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	AmountType   string          `json:"amountType"`
	Amount       decimal.Decimal `json:"amount"`
	PriceInclude bool            `json:"priceInclude"`
	TypeTaxUse   string          `json:"typeTaxUse"`
	Sequence     int             `json:"sequence"`
}

type Product struct {
	ID          uuid.UUID       `json:"id"`
	DefaultCode string          `json:"defaultCode"`
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"`
	ListPrice   decimal.Decimal `json:"listPrice"`
	UoM         string          `json:"uom"`
	TaxIDs      []uuid.UUID     `json:"taxIds"`
	SaleOK      bool            `json:"saleOk"`
}

type OrderLine struct {
	ID            uuid.UUID       `json:"id"`
	Sequence      int             `json:"sequence"`
	ProductID     *uuid.UUID      `json:"productId"`
	Name          string          `json:"name"`
	DisplayType   string          `json:"displayType"`
	PriceUnit     decimal.Decimal `json:"priceUnit"`
	Quantity      decimal.Decimal `json:"quantity"`
	UoM           string          `json:"uom"`
	TaxIDs        []uuid.UUID     `json:"taxIds"`
	PriceSubtotal decimal.Decimal `json:"priceSubtotal"`
	PriceTax      decimal.Decimal `json:"priceTax"`
	PriceTotal    decimal.Decimal `json:"priceTotal"`
}

type TaxTotal struct {
	TaxID  uuid.UUID       `json:"taxId"`
	Name   string          `json:"name"`
	Base   decimal.Decimal `json:"base"`
	Amount decimal.Decimal `json:"amount"`
}

type Enquiry struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Sequence      int             `json:"sequence"`
	PartnerID     uuid.UUID       `json:"partnerId"`
	PartnerName   string          `json:"partnerName"`
	Email         string          `json:"email"`
	UserID        *uuid.UUID      `json:"userId"`
	DateOrder     time.Time       `json:"dateOrder"`
	State         string          `json:"state"`
	MultiOrder    bool            `json:"multiOrder"`
	SaleOrderID   *uuid.UUID      `json:"saleOrderId"`
	SaleOrderIDs  []uuid.UUID     `json:"saleOrderIds"`
	SaleCount     int             `json:"saleCount"`
	Currency      string          `json:"currency"`
	AmountUntaxed decimal.Decimal `json:"amountUntaxed"`
	AmountTax     decimal.Decimal `json:"amountTax"`
	AmountTotal   decimal.Decimal `json:"amountTotal"`
	Lines         []OrderLine     `json:"lines"`
	TaxTotals     []TaxTotal      `json:"taxTotals"`
}

type EnquirySummary struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Sequence    int             `json:"sequence"`
	PartnerID   uuid.UUID       `json:"partnerId"`
	PartnerName string          `json:"partnerName"`
	DateOrder   time.Time       `json:"dateOrder"`
	State       string          `json:"state"`
	MultiOrder  bool            `json:"multiOrder"`
	SaleCount   int             `json:"saleCount"`
	Currency    string          `json:"currency"`
	AmountTotal decimal.Decimal `json:"amountTotal"`
}

type SaleOrderSummary struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	PartnerID     uuid.UUID       `json:"partnerId"`
	PartnerName   string          `json:"partnerName"`
	DateOrder     time.Time       `json:"dateOrder"`
	State         string          `json:"state"`
	EnquiryID     *uuid.UUID      `json:"enquiryId"`
	Currency      string          `json:"currency"`
	AmountUntaxed decimal.Decimal `json:"amountUntaxed"`
	AmountTax     decimal.Decimal `json:"amountTax"`
	AmountTotal   decimal.Decimal `json:"amountTotal"`
}

type SaleOrder struct {
	SaleOrderSummary
	Lines     []OrderLine `json:"lines"`
	TaxTotals []TaxTotal  `json:"taxTotals"`
}

type SaleLineWizard struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	ActiveModel string    `json:"activeModel"`
	ActiveID    uuid.UUID `json:"activeId"`
}

type ProductAddWizard struct {
	ID           uuid.UUID       `json:"id"`
	OrderType    string          `json:"orderType"`
	ProductID    uuid.UUID       `json:"productId"`
	ProductName  string          `json:"productName"`
	PriceUnit    decimal.Decimal `json:"priceUnit"`
	Quantity     decimal.Decimal `json:"quantity"`
	UoM          string          `json:"uom"`
	TaxIDs       []uuid.UUID     `json:"taxIds"`
	Currency     string          `json:"currency"`
	SaleOrderID  *uuid.UUID      `json:"saleOrderId"`
	SaleOrderIDs []uuid.UUID     `json:"saleOrderIds"`
	Applied      bool            `json:"applied"`
}

// Request mapping

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

// requireUUID reports a missing identifier under its JSON name.
func requireUUID(field string, id uuid.UUID) (kernel.UUID, error) {
	if id == uuid.Nil {
		return kernel.UUID{}, errs.NewValueIsRequiredError(field)
	}
	return toUUID(id)
}

func toOptionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	out, err := toUUID(*id)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func toUUIDs(ids []uuid.UUID) ([]kernel.UUID, error) {
	if ids == nil {
		return nil, nil
	}
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		k, err := toUUID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func (l Line) request() (commands.LineRequest, error) {
	productID, err := toOptionalUUID(l.ProductID)
	if err != nil {
		return commands.LineRequest{}, err
	}
	input := services.LineInput{
		Sequence:    l.Sequence,
		DisplayType: orderline.DisplayType(l.DisplayType),
		Name:        l.Name,
		PriceUnit:   l.PriceUnit,
		Quantity:    l.Quantity,
		UoM:         l.UoM,
	}
	if l.TaxIDs != nil {
		taxIDs, err := toUUIDs(*l.TaxIDs)
		if err != nil {
			return commands.LineRequest{}, err
		}
		if taxIDs == nil {
			taxIDs = []kernel.UUID{}
		}
		input.TaxIDs = taxIDs
	}
	return commands.LineRequest{ProductID: productID, Input: input}, nil
}

func lineRequests(lines []Line) ([]commands.LineRequest, error) {
	out := make([]commands.LineRequest, 0, len(lines))
	for _, l := range lines {
		r, err := l.request()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func dateOrDefault(date *time.Time) time.Time {
	if date == nil {
		return time.Time{}
	}
	return *date
}

// Response mapping

func fromUUIDs(ids []kernel.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Bytes())
	}
	return out
}

func fromOptionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func currencyCode(c kernel.Currency) string {
	if c.Validate() != nil {
		return ""
	}
	return c.Code()
}

func fromLines(lines []queries.LineView) []OrderLine {
	out := make([]OrderLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, OrderLine{
			ID:            l.ID.Bytes(),
			Sequence:      l.Sequence,
			ProductID:     fromOptionalUUID(l.ProductID),
			Name:          l.Name,
			DisplayType:   l.DisplayType,
			PriceUnit:     l.PriceUnit,
			Quantity:      l.Quantity,
			UoM:           l.UoM,
			TaxIDs:        fromUUIDs(l.TaxIDs),
			PriceSubtotal: l.PriceSubtotal,
			PriceTax:      l.PriceTax,
			PriceTotal:    l.PriceTotal,
		})
	}
	return out
}

func fromTaxTotals(totals []queries.TaxTotalView) []TaxTotal {
	out := make([]TaxTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, TaxTotal{TaxID: t.TaxID.Bytes(), Name: t.Name, Base: t.Base, Amount: t.Amount})
	}
	return out
}

func fromEnquiryView(v queries.EnquiryView) Enquiry {
	return Enquiry{
		ID:            v.ID.Bytes(),
		Name:          v.Name,
		Sequence:      v.Sequence,
		PartnerID:     v.PartnerID.Bytes(),
		PartnerName:   v.PartnerName,
		Email:         v.Email,
		UserID:        fromOptionalUUID(v.UserID),
		DateOrder:     v.DateOrder,
		State:         v.State,
		MultiOrder:    v.MultiOrder,
		SaleOrderID:   fromOptionalUUID(v.SaleOrderID),
		SaleOrderIDs:  fromUUIDs(v.SaleOrderIDs),
		SaleCount:     v.SaleCount,
		Currency:      currencyCode(v.Currency),
		AmountUntaxed: v.AmountUntaxed,
		AmountTax:     v.AmountTax,
		AmountTotal:   v.AmountTotal,
		Lines:         fromLines(v.Lines),
		TaxTotals:     fromTaxTotals(v.TaxTotals),
	}
}

func fromEnquirySummaries(views []queries.EnquirySummary) []EnquirySummary {
	out := make([]EnquirySummary, 0, len(views))
	for _, v := range views {
		out = append(out, EnquirySummary{
			ID:          v.ID.Bytes(),
			Name:        v.Name,
			Sequence:    v.Sequence,
			PartnerID:   v.PartnerID.Bytes(),
			PartnerName: v.PartnerName,
			DateOrder:   v.DateOrder,
			State:       v.State,
			MultiOrder:  v.MultiOrder,
			SaleCount:   v.SaleCount,
			Currency:    currencyCode(v.Currency),
			AmountTotal: v.AmountTotal,
		})
	}
	return out
}

func fromSaleOrderSummary(v queries.SaleOrderSummary) SaleOrderSummary {
	return SaleOrderSummary{
		ID:            v.ID.Bytes(),
		Name:          v.Name,
		PartnerID:     v.PartnerID.Bytes(),
		PartnerName:   v.PartnerName,
		DateOrder:     v.DateOrder,
		State:         v.State,
		EnquiryID:     fromOptionalUUID(v.EnquiryID),
		Currency:      currencyCode(v.Currency),
		AmountUntaxed: v.AmountUntaxed,
		AmountTax:     v.AmountTax,
		AmountTotal:   v.AmountTotal,
	}
}

func fromSaleOrderSummaries(views []queries.SaleOrderSummary) []SaleOrderSummary {
	out := make([]SaleOrderSummary, 0, len(views))
	for _, v := range views {
		out = append(out, fromSaleOrderSummary(v))
	}
	return out
}

func fromSaleOrderView(v queries.SaleOrderView) SaleOrder {
	return SaleOrder{
		SaleOrderSummary: fromSaleOrderSummary(v.SaleOrderSummary),
		Lines:            fromLines(v.Lines),
		TaxTotals:        fromTaxTotals(v.TaxTotals),
	}
}

func fromProductAddWizardView(v queries.ProductAddWizardView) ProductAddWizard {
	return ProductAddWizard{
		ID:           v.ID.Bytes(),
		OrderType:    v.OrderType,
		ProductID:    v.ProductID.Bytes(),
		ProductName:  v.ProductName,
		PriceUnit:    v.PriceUnit,
		Quantity:     v.Quantity,
		UoM:          v.UoM,
		TaxIDs:       fromUUIDs(v.TaxIDs),
		Currency:     currencyCode(v.Currency),
		SaleOrderID:  fromOptionalUUID(v.SaleOrderID),
		SaleOrderIDs: fromUUIDs(v.SaleOrderIDs),
		Applied:      v.Applied,
	}
}
