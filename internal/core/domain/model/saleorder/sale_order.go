package saleorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/orderline"
	"enquiry/internal/core/domain/model/partner"
	"enquiry/internal/pkg/errs"
	"enquiry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// NumberSequenceCode is the sequence sales order numbers are drawn from.
const NumberSequenceCode = "sale.order"

var (
	ErrSaleOrderIsNotConstructed = errors.New("SaleOrder must be created via NewSaleOrder constructor")
	ErrSaleOrderIsNotQuotation   = errs.NewStateConflictErrorWithCause(
		"add product", "non-quotation", errors.New("only draft and sent orders accept new products"),
	)
)

// SaleOrder is a sales order, the document an enquiry is confirmed into.
type SaleOrder struct {
	id        kernel.UUID
	name      string
	partnerID kernel.UUID
	dateOrder time.Time
	state     State
	enquiryID *kernel.UUID
	currency  kernel.Currency
	lines     []*orderline.Line

	amountUntaxed decimal.Decimal
	amountTax     decimal.Decimal
	amountTotal   decimal.Decimal

	guard guard.ConstructorGuard
}

// Params are the values of a new draft sales order.
type Params struct {
	Name      string
	Customer  *partner.Partner
	DateOrder time.Time
	EnquiryID *kernel.UUID
	Currency  kernel.Currency
	Lines     []orderline.Values
}

// NewSaleOrder creates a draft sales order. The name must already be drawn from
// the sale.order sequence.
func NewSaleOrder(id kernel.UUID, params Params) (*SaleOrder, error) {
	o := &SaleOrder{
		dateOrder:     params.DateOrder,
		state:         Draft,
		lines:         make([]*orderline.Line, 0, len(params.Lines)),
		amountUntaxed: decimal.Zero,
		amountTax:     decimal.Zero,
		amountTotal:   decimal.Zero,
		guard:         guard.NewConstructorGuard(),
	}
	if o.dateOrder.IsZero() {
		o.dateOrder = time.Now().UTC()
	}

	if err := errors.Join(
		o.setID(id),
		o.setName(params.Name),
		o.setCustomer(params.Customer),
		o.setEnquiryID(params.EnquiryID),
		o.setCurrency(params.Currency),
	); err != nil {
		return nil, err
	}

	if err := o.AddLines(params.Lines); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot carries the persisted state of a sales order.
type Snapshot struct {
	Name          string
	PartnerID     kernel.UUID
	DateOrder     time.Time
	State         State
	EnquiryID     *kernel.UUID
	Currency      kernel.Currency
	Lines         []*orderline.Line
	AmountUntaxed decimal.Decimal
	AmountTax     decimal.Decimal
	AmountTotal   decimal.Decimal
}

// RestoreSaleOrder rebuilds a sales order loaded from storage.
func RestoreSaleOrder(id kernel.UUID, s Snapshot) (*SaleOrder, error) {
	o := &SaleOrder{
		dateOrder:     s.DateOrder,
		amountUntaxed: s.AmountUntaxed,
		amountTax:     s.AmountTax,
		amountTotal:   s.AmountTotal,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setName(s.Name),
		s.PartnerID.Validate(),
		s.State.Validate(),
		o.setEnquiryID(s.EnquiryID),
		o.setCurrency(s.Currency),
	); err != nil {
		return nil, err
	}
	o.partnerID = s.PartnerID
	o.state = s.State

	o.lines = make([]*orderline.Line, 0, len(s.Lines))
	for _, l := range s.Lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		o.lines = append(o.lines, l)
	}

	return o, nil
}

func (o *SaleOrder) Validate() error {
	if o == nil {
		return ErrSaleOrderIsNotConstructed
	}
	return o.guard.Validate(ErrSaleOrderIsNotConstructed)
}

func (o *SaleOrder) IsEqual(other *SaleOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *SaleOrder) ID() kernel.UUID { return o.id }
func (o *SaleOrder) Name() string { return o.name }
func (o *SaleOrder) PartnerID() kernel.UUID { return o.partnerID }
func (o *SaleOrder) DateOrder() time.Time { return o.dateOrder }
func (o *SaleOrder) State() State { return o.state }
func (o *SaleOrder) EnquiryID() *kernel.UUID { return o.enquiryID }
func (o *SaleOrder) Currency() kernel.Currency { return o.currency }
func (o *SaleOrder) AmountUntaxed() decimal.Decimal { return o.amountUntaxed }
func (o *SaleOrder) AmountTax() decimal.Decimal { return o.amountTax }
func (o *SaleOrder) AmountTotal() decimal.Decimal { return o.amountTotal }
func (o *SaleOrder) Lines() []*orderline.Line { return orderline.Sorted(o.lines) }

// IsQuotation is true in draft and sent states.
func (o *SaleOrder) IsQuotation() bool {
	return o.state.IsQuotation()
}

// FromEnquiry reports whether the order was created by confirming an enquiry.
func (o *SaleOrder) FromEnquiry() bool {
	return o.enquiryID != nil
}

// AddLines appends lines built from values.
func (o *SaleOrder) AddLines(values []orderline.Values) error {
	if err := o.ensureLinesEditable("add lines"); err != nil {
		return err
	}

	for _, v := range values {
		l, err := orderline.NewLine(kernel.NewUUID(), v)
		if err != nil {
			return err
		}
		o.lines = append(o.lines, l)
	}
	return nil
}

// AddProductLine appends a product line to a quotation.
func (o *SaleOrder) AddProductLine(values orderline.Values) error {
	if !o.IsQuotation() {
		return fmt.Errorf("%w: %s is %s", ErrSaleOrderIsNotQuotation, o.name, o.state)
	}
	return o.AddLines([]orderline.Values{values})
}

// ClearLines removes every line.
func (o *SaleOrder) ClearLines() error {
	if err := o.ensureLinesEditable("clear lines"); err != nil {
		return err
	}
	o.lines = make([]*orderline.Line, 0)
	return nil
}

// RecomputeAmounts refreshes line amounts and order totals.
func (o *SaleOrder) RecomputeAmounts(taxes catalog.TaxSet, method catalog.RoundingMethod) error {
	totals, err := orderline.ComputeAmounts(o.lines, taxes, o.currency, method)
	if err != nil {
		return err
	}

	o.amountUntaxed = totals.AmountUntaxed
	o.amountTax = totals.AmountTax
	o.amountTotal = totals.AmountTotal
	return nil
}

func (o *SaleOrder) ensureLinesEditable(operation string) error {
	if !o.state.AllowsLineChanges() {
		return errs.NewStateConflictError(operation, o.state.String())
	}
	return nil
}

func (o *SaleOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *SaleOrder) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	o.name = name
	return nil
}

func (o *SaleOrder) setCustomer(customer *partner.Partner) error {
	if customer == nil {
		return errs.NewValueIsRequiredError("partnerId")
	}
	if err := customer.EnsureCustomer(); err != nil {
		return err
	}
	o.partnerID = customer.ID()
	return nil
}

func (o *SaleOrder) setEnquiryID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	enquiryID := *id
	o.enquiryID = &enquiryID
	return nil
}

func (o *SaleOrder) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	o.currency = currency
	return nil
}
