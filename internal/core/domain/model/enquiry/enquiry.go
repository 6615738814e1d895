package enquiry

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

const (
	// DefaultName is the enquiry number placeholder until a number is assigned.
	DefaultName = "New"
	// DefaultSequence orders enquiries created without an explicit position.
	DefaultSequence = 10
	// NumberSequenceCode is the sequence enquiry numbers are drawn from.
	NumberSequenceCode = "order.enq.sequence"
)

var (
	// ErrEnquiryIsNotConstructed is returned when an Enquiry was not created
	// through NewEnquiry or RestoreEnquiry.
	ErrEnquiryIsNotConstructed = errors.New("Enquiry must be created via NewEnquiry constructor")

	// ErrEnquiryHasNoLines is returned when confirming an enquiry without lines.
	ErrEnquiryHasNoLines = errs.NewValueIsRequiredErrorWithCause(
		"lines", errors.New("Before Confirm Please Add Product"),
	)

	// ErrMultiOrderIsDisabled is returned when asking for another sales order
	// from an enquiry that is not flagged "multi orders".
	ErrMultiOrderIsDisabled = errs.NewStateConflictErrorWithCause(
		"create additional order", "multiOrder=false", errors.New("multi orders is not enabled"),
	)
)

// Enquiry is a pre-sale record tracking a potential sale to a customer.
// It is the aggregate root of its lines.
//
// Enquiry follows these invariants:
//   - The customer is required and cannot be a private address
//   - Amounts are always recomputed from the current lines
//   - Section and note lines never count in the amounts
//   - Nothing changes once the enquiry is cancelled
//   - SaleCount is the number of created sales orders, or 0 when none was created
type Enquiry struct {
	id           kernel.UUID
	name         string
	sequence     int
	partnerID    kernel.UUID
	email        string
	userID       *kernel.UUID
	dateOrder    time.Time
	state        State
	lines        []*orderline.Line
	saleOrderID  *kernel.UUID
	saleOrderIDs []kernel.UUID
	multiOrder   bool
	currency     kernel.Currency

	amountUntaxed decimal.Decimal
	amountTax     decimal.Decimal
	amountTotal   decimal.Decimal
	taxTotals     catalog.Totals

	guard guard.ConstructorGuard
}

// Params are the header values of a new enquiry.
type Params struct {
	Name       string
	Sequence   *int
	Customer   *partner.Partner
	UserID     *kernel.UUID
	DateOrder  time.Time
	MultiOrder bool
	Currency   kernel.Currency
}

// NewEnquiry creates a pending enquiry without lines.
//
// An empty name becomes DefaultName, a nil sequence becomes DefaultSequence and
// a zero date becomes the current time.
func NewEnquiry(id kernel.UUID, params Params) (*Enquiry, error) {
	e := &Enquiry{
		name:          DefaultName,
		sequence:      DefaultSequence,
		dateOrder:     params.DateOrder,
		state:         Pending,
		lines:         make([]*orderline.Line, 0),
		saleOrderIDs:  make([]kernel.UUID, 0),
		multiOrder:    params.MultiOrder,
		amountUntaxed: decimal.Zero,
		amountTax:     decimal.Zero,
		amountTotal:   decimal.Zero,
		guard:         guard.NewConstructorGuard(),
	}
	if name := strings.TrimSpace(params.Name); name != "" {
		e.name = name
	}
	if params.Sequence != nil {
		e.sequence = *params.Sequence
	}
	if e.dateOrder.IsZero() {
		e.dateOrder = time.Now().UTC()
	}

	if err := errors.Join(
		e.setID(id),
		e.setCustomer(params.Customer),
		e.setUserID(params.UserID),
		e.setCurrency(params.Currency),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Snapshot carries the persisted state of an enquiry.
type Snapshot struct {
	Name          string
	Sequence      int
	PartnerID     kernel.UUID
	Email         string
	UserID        *kernel.UUID
	DateOrder     time.Time
	State         State
	Lines         []*orderline.Line
	SaleOrderID   *kernel.UUID
	SaleOrderIDs  []kernel.UUID
	MultiOrder    bool
	Currency      kernel.Currency
	AmountUntaxed decimal.Decimal
	AmountTax     decimal.Decimal
	AmountTotal   decimal.Decimal
}

// RestoreEnquiry rebuilds an enquiry loaded from storage.
func RestoreEnquiry(id kernel.UUID, s Snapshot) (*Enquiry, error) {
	e := &Enquiry{
		name:          s.Name,
		sequence:      s.Sequence,
		email:         s.Email,
		dateOrder:     s.DateOrder,
		saleOrderID:   s.SaleOrderID,
		saleOrderIDs:  append(make([]kernel.UUID, 0, len(s.SaleOrderIDs)), s.SaleOrderIDs...),
		multiOrder:    s.MultiOrder,
		amountUntaxed: s.AmountUntaxed,
		amountTax:     s.AmountTax,
		amountTotal:   s.AmountTotal,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		s.PartnerID.Validate(),
		e.setUserID(s.UserID),
		e.setCurrency(s.Currency),
		s.State.Validate(),
	); err != nil {
		return nil, err
	}
	e.partnerID = s.PartnerID
	e.state = s.State

	e.lines = make([]*orderline.Line, 0, len(s.Lines))
	for _, l := range s.Lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		e.lines = append(e.lines, l)
	}

	return e, nil
}

func (e *Enquiry) Validate() error {
	if e == nil {
		return ErrEnquiryIsNotConstructed
	}
	return e.guard.Validate(ErrEnquiryIsNotConstructed)
}

func (e *Enquiry) IsEqual(other *Enquiry) bool {
	return other != nil && e.id.IsEqual(other.id)
}

func (e *Enquiry) ID() kernel.UUID { return e.id }
func (e *Enquiry) Name() string { return e.name }
func (e *Enquiry) Sequence() int { return e.sequence }
func (e *Enquiry) PartnerID() kernel.UUID { return e.partnerID }
func (e *Enquiry) Email() string { return e.email }
func (e *Enquiry) UserID() *kernel.UUID { return e.userID }
func (e *Enquiry) DateOrder() time.Time { return e.dateOrder }
func (e *Enquiry) State() State { return e.state }
func (e *Enquiry) SaleOrderID() *kernel.UUID { return e.saleOrderID }
func (e *Enquiry) MultiOrder() bool { return e.multiOrder }
func (e *Enquiry) Currency() kernel.Currency { return e.currency }
func (e *Enquiry) AmountUntaxed() decimal.Decimal { return e.amountUntaxed }
func (e *Enquiry) AmountTax() decimal.Decimal { return e.amountTax }
func (e *Enquiry) AmountTotal() decimal.Decimal { return e.amountTotal }

// TaxTotals is the per-tax breakdown of the last recomputation. It is not stored.
func (e *Enquiry) TaxTotals() catalog.Totals { return e.taxTotals }

// SaleOrderIDs returns every sales order created from the enquiry, oldest first.
func (e *Enquiry) SaleOrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), e.saleOrderIDs...)
}

// SaleCount is the number of created sales orders. It stays 0 until the
// enquiry points at a sales order.
func (e *Enquiry) SaleCount() int {
	if e.saleOrderID == nil {
		return 0
	}
	return len(e.saleOrderIDs)
}

// Lines returns the lines ordered by sequence.
func (e *Enquiry) Lines() []*orderline.Line {
	return orderline.Sorted(e.lines)
}

// Line finds a line by id.
func (e *Enquiry) Line(id kernel.UUID) (*orderline.Line, error) {
	for _, l := range e.lines {
		if l.ID().IsEqual(id) {
			return l, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("lineId", id.String())
}

// HasDefaultName reports whether the enquiry still waits for its number.
func (e *Enquiry) HasDefaultName() bool {
	return e.name == DefaultName
}

// AssignNumber replaces the placeholder name with a sequence number.
func (e *Enquiry) AssignNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if !e.HasDefaultName() {
		return nil
	}
	e.name = number
	return nil
}

// HeaderChanges lists the header fields to update; nil fields are kept.
type HeaderChanges struct {
	Customer   *partner.Partner
	DateOrder  *time.Time
	UserID     *kernel.UUID
	Sequence   *int
	MultiOrder *bool
}

// UpdateHeader applies changes to the header of a non-cancelled enquiry.
func (e *Enquiry) UpdateHeader(changes HeaderChanges) error {
	if err := e.ensureEditable("update"); err != nil {
		return err
	}

	if changes.Customer != nil {
		if err := e.setCustomer(changes.Customer); err != nil {
			return err
		}
	}
	if changes.DateOrder != nil {
		if changes.DateOrder.IsZero() {
			return errs.NewValueIsRequiredError("dateOrder")
		}
		e.dateOrder = *changes.DateOrder
	}
	if changes.UserID != nil {
		if err := e.setUserID(changes.UserID); err != nil {
			return err
		}
	}
	if changes.Sequence != nil {
		e.sequence = *changes.Sequence
	}
	if changes.MultiOrder != nil {
		e.multiOrder = *changes.MultiOrder
	}
	return nil
}

// AddLine appends a new line. Amounts must be recomputed afterwards.
func (e *Enquiry) AddLine(values orderline.Values) (*orderline.Line, error) {
	return e.InsertLine(kernel.NewUUID(), values)
}

// InsertLine appends a new line with a caller chosen id.
func (e *Enquiry) InsertLine(id kernel.UUID, values orderline.Values) (*orderline.Line, error) {
	if err := e.ensureEditable("add line"); err != nil {
		return nil, err
	}
	if _, err := e.Line(id); err == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("lineId", fmt.Errorf("line %s already exists", id))
	}

	l, err := orderline.NewLine(id, values)
	if err != nil {
		return nil, err
	}
	e.lines = append(e.lines, l)
	return l, nil
}

// AppendLines adds several lines at once, as done when copying lines from
// sales orders.
func (e *Enquiry) AppendLines(values []orderline.Values) error {
	for _, v := range values {
		if _, err := e.AddLine(v); err != nil {
			return err
		}
	}
	return nil
}

// UpdateLine replaces the values of an existing line.
func (e *Enquiry) UpdateLine(id kernel.UUID, values orderline.Values) error {
	if err := e.ensureEditable("update line"); err != nil {
		return err
	}

	l, err := e.Line(id)
	if err != nil {
		return err
	}
	return l.Update(values)
}

// RemoveLine deletes a line.
func (e *Enquiry) RemoveLine(id kernel.UUID) error {
	if err := e.ensureEditable("remove line"); err != nil {
		return err
	}

	for i, l := range e.lines {
		if l.ID().IsEqual(id) {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("lineId", id.String())
}

// ClearLines removes every line.
func (e *Enquiry) ClearLines() error {
	if err := e.ensureEditable("clear lines"); err != nil {
		return err
	}
	e.lines = make([]*orderline.Line, 0)
	return nil
}

// RecomputeAmounts refreshes line amounts, header totals and the tax breakdown.
// taxes must contain every tax referenced by the lines.
func (e *Enquiry) RecomputeAmounts(taxes catalog.TaxSet, method catalog.RoundingMethod) error {
	totals, err := orderline.ComputeAmounts(e.lines, taxes, e.currency, method)
	if err != nil {
		return err
	}

	e.amountUntaxed = totals.AmountUntaxed
	e.amountTax = totals.AmountTax
	e.amountTotal = totals.AmountTotal
	e.taxTotals = totals
	return nil
}

// EnsureConfirmable checks the enquiry can be turned into its first sales order.
func (e *Enquiry) EnsureConfirmable() error {
	if len(e.lines) == 0 {
		return ErrEnquiryHasNoLines
	}
	_, err := e.state.Confirm()
	return err
}

// Confirm records the sales order created from the enquiry and moves it to Confirm.
func (e *Enquiry) Confirm(saleOrderID kernel.UUID) error {
	if err := e.EnsureConfirmable(); err != nil {
		return err
	}
	state, err := e.state.Confirm()
	if err != nil {
		return err
	}
	if err = e.registerSaleOrder(saleOrderID); err != nil {
		return err
	}
	e.state = state
	return nil
}

// EnsureCanCreateAdditionalOrder checks another sales order may be created from
// a confirmed multi orders enquiry.
func (e *Enquiry) EnsureCanCreateAdditionalOrder() error {
	if !e.multiOrder {
		return ErrMultiOrderIsDisabled
	}
	if _, err := e.state.AdditionalOrder(); err != nil {
		return err
	}
	if len(e.lines) == 0 {
		return ErrEnquiryHasNoLines
	}
	return nil
}

// CreateAdditionalOrder records one more sales order created from the enquiry.
func (e *Enquiry) CreateAdditionalOrder(saleOrderID kernel.UUID) error {
	if err := e.EnsureCanCreateAdditionalOrder(); err != nil {
		return err
	}
	return e.registerSaleOrder(saleOrderID)
}

// Cancel drops a pending enquiry.
func (e *Enquiry) Cancel() error {
	state, err := e.state.Cancel()
	if err != nil {
		return err
	}
	e.state = state
	return nil
}

func (e *Enquiry) registerSaleOrder(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.saleOrderID = &id
	if !kernel.ContainsUUID(e.saleOrderIDs, id) {
		e.saleOrderIDs = append(e.saleOrderIDs, id)
	}
	return nil
}

func (e *Enquiry) ensureEditable(operation string) error {
	if !e.state.AllowsEditing() {
		return errs.NewStateConflictError(operation, e.state.String())
	}
	return nil
}

func (e *Enquiry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Enquiry) setCustomer(customer *partner.Partner) error {
	if customer == nil {
		return errs.NewValueIsRequiredError("partnerId")
	}
	if err := customer.EnsureCustomer(); err != nil {
		return err
	}
	e.partnerID = customer.ID()
	e.email = customer.Email()
	return nil
}

func (e *Enquiry) setUserID(userID *kernel.UUID) error {
	if userID == nil {
		e.userID = nil
		return nil
	}
	if err := userID.Validate(); err != nil {
		return err
	}
	id := *userID
	e.userID = &id
	return nil
}

func (e *Enquiry) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	e.currency = currency
	return nil
}
