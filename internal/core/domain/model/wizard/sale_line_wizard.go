package wizard

import (
	"errors"
	"fmt"
	"time"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/orderline"
	"enquiry/internal/core/domain/model/saleorder"
	"enquiry/internal/pkg/errs"
	"enquiry/internal/pkg/guard"
)

var (
	ErrSaleLineWizardIsNotConstructed = errors.New("SaleLineWizard must be created via NewSaleLineWizard constructor")

	// ErrCustomerIsRequired is returned when the target record has no customer.
	ErrCustomerIsRequired = errs.NewValueIsRequiredErrorWithCause(
		"customerId", errors.New("Sorry, Please Select The Customer First"),
	)

	// ErrNoSourceOrderSelected is returned when applying without any source order.
	ErrNoSourceOrderSelected = errs.NewValueIsRequiredErrorWithCause(
		"saleOrderIds", errors.New("select at least one sales order to copy lines from"),
	)

	// ErrSourceOrderIsNotCandidate is returned when a selected order is outside
	// the candidate domain of the wizard.
	ErrSourceOrderIsNotCandidate = errs.NewValueIsInvalidErrorWithCause(
		"saleOrderIds", errors.New("sales order is not offered by this wizard"),
	)
)

// SourceType decides which sales orders are offered as sources.
type SourceType string

const (
	// BasedOnSale offers every sales order.
	BasedOnSale SourceType = "sale"
	// BasedOnCustomer offers the orders of the target's customer.
	BasedOnCustomer SourceType = "customer"
	// BasedOnEnquiry offers orders that were created from an enquiry.
	BasedOnEnquiry SourceType = "order_enq"
)

func (s SourceType) Validate() error {
	switch s {
	case BasedOnSale, BasedOnCustomer, BasedOnEnquiry:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid wizard type", string(s)))
	}
}

// TargetModel is the kind of record the lines are copied into.
type TargetModel string

const (
	TargetEnquiry   TargetModel = "order.enq"
	TargetSaleOrder TargetModel = "sale.order"
)

func (m TargetModel) Validate() error {
	if m != TargetEnquiry && m != TargetSaleOrder {
		return errs.NewValueIsInvalidErrorWithCause("activeModel", fmt.Errorf("%q is not a valid target model", string(m)))
	}
	return nil
}

// Target is the record the wizard was opened from.
type Target struct {
	Model      TargetModel
	ID         kernel.UUID
	CustomerID *kernel.UUID
}

// CandidateCriteria describe the sales orders a wizard offers.
type CandidateCriteria struct {
	PartnerID       *kernel.UUID
	FromEnquiryOnly bool
	ExcludeID       *kernel.UUID
	QuotationsOnly  bool
}

// SaleLineSelection is what the user picks in the wizard.
type SaleLineSelection struct {
	SaleOrderID  *kernel.UUID
	MultiOrder   bool
	ClearAdd     bool
	SaleOrderIDs []kernel.UUID
}

// SaleLineWizard copies the lines of one or several sales orders into an
// enquiry or into another sales order.
type SaleLineWizard struct {
	transient

	id         kernel.UUID
	sourceType SourceType
	target     Target
	selection  SaleLineSelection

	guard guard.ConstructorGuard
}

// NewSaleLineWizard opens the wizard on target. The target must have a
// customer. An empty source type defaults to BasedOnCustomer.
func NewSaleLineWizard(id kernel.UUID, sourceType SourceType, target Target, now time.Time) (*SaleLineWizard, error) {
	w := &SaleLineWizard{
		transient: newTransient(now),
		guard:     guard.NewConstructorGuard(),
	}
	if sourceType == "" {
		sourceType = BasedOnCustomer
	}

	if err := errors.Join(
		w.setID(id),
		w.setSourceType(sourceType),
		w.setTarget(target),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// SaleLineSnapshot carries the persisted state of a sale line wizard.
type SaleLineSnapshot struct {
	SourceType SourceType
	Target     Target
	Selection  SaleLineSelection
	Applied    bool
	CreatedAt  time.Time
}

func RestoreSaleLineWizard(id kernel.UUID, s SaleLineSnapshot) (*SaleLineWizard, error) {
	w, err := NewSaleLineWizard(id, s.SourceType, s.Target, s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err = w.setSelection(s.Selection); err != nil {
		return nil, err
	}
	w.applied = s.Applied
	return w, nil
}

func (w *SaleLineWizard) Validate() error {
	if w == nil {
		return ErrSaleLineWizardIsNotConstructed
	}
	return w.guard.Validate(ErrSaleLineWizardIsNotConstructed)
}

func (w *SaleLineWizard) ID() kernel.UUID { return w.id }
func (w *SaleLineWizard) SourceType() SourceType { return w.sourceType }
func (w *SaleLineWizard) Target() Target { return w.target }
func (w *SaleLineWizard) Selection() SaleLineSelection { return w.selection }

// Select records the user choice. It replaces any previous selection.
func (w *SaleLineWizard) Select(selection SaleLineSelection) error {
	if err := w.ensureOpen(); err != nil {
		return err
	}
	return w.setSelection(selection)
}

// Criteria returns the candidate domain of the source orders.
func (w *SaleLineWizard) Criteria() CandidateCriteria {
	var c CandidateCriteria
	switch {
	case w.sourceType == BasedOnCustomer && w.target.CustomerID != nil:
		id := *w.target.CustomerID
		c.PartnerID = &id
	case w.sourceType == BasedOnEnquiry:
		c.FromEnquiryOnly = true
	}

	if w.target.Model == TargetSaleOrder {
		id := w.target.ID
		c.ExcludeID = &id
	}
	return c
}

// Accepts reports whether order is one of the candidate source orders.
func (w *SaleLineWizard) Accepts(order *saleorder.SaleOrder) bool {
	return matches(w.Criteria(), order)
}

// SourceOrderIDs are the orders lines are copied from: the single selected
// order unless multiple orders were asked for, else the selected list.
func (w *SaleLineWizard) SourceOrderIDs() []kernel.UUID {
	if !w.selection.MultiOrder && w.selection.SaleOrderID != nil {
		return []kernel.UUID{*w.selection.SaleOrderID}
	}
	return append([]kernel.UUID(nil), w.selection.SaleOrderIDs...)
}

// ClearAdd tells whether the target lines are removed before copying.
func (w *SaleLineWizard) ClearAdd() bool {
	return w.selection.ClearAdd
}

// CollectLines checks sources against the candidate domain and returns the
// values of every source line, in source order then line order.
func (w *SaleLineWizard) CollectLines(sources []*saleorder.SaleOrder) ([]orderline.Values, error) {
	if err := w.ensureOpen(); err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, ErrNoSourceOrderSelected
	}

	values := make([]orderline.Values, 0)
	for _, order := range sources {
		if !w.Accepts(order) {
			return nil, fmt.Errorf("%w: %s", ErrSourceOrderIsNotCandidate, order.Name())
		}
		for _, l := range order.Lines() {
			v := l.Values()
			// The source position is not carried over.
			v.Sequence = orderline.DefaultSequence
			values = append(values, v)
		}
	}
	return values, nil
}

// MarkApplied closes the wizard. A wizard is applied once.
func (w *SaleLineWizard) MarkApplied() error {
	return w.markApplied()
}

func (w *SaleLineWizard) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *SaleLineWizard) setSourceType(sourceType SourceType) error {
	if err := sourceType.Validate(); err != nil {
		return err
	}
	w.sourceType = sourceType
	return nil
}

func (w *SaleLineWizard) setTarget(target Target) error {
	if err := target.Model.Validate(); err != nil {
		return err
	}
	if err := target.ID.Validate(); err != nil {
		return err
	}
	if target.CustomerID == nil {
		return ErrCustomerIsRequired
	}
	if err := target.CustomerID.Validate(); err != nil {
		return ErrCustomerIsRequired
	}
	customerID := *target.CustomerID
	target.CustomerID = &customerID
	w.target = target
	return nil
}

func (w *SaleLineWizard) setSelection(s SaleLineSelection) error {
	if s.SaleOrderID != nil {
		if err := s.SaleOrderID.Validate(); err != nil {
			return err
		}
		id := *s.SaleOrderID
		s.SaleOrderID = &id
	}

	ids := make([]kernel.UUID, 0, len(s.SaleOrderIDs))
	for _, id := range s.SaleOrderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if !kernel.ContainsUUID(ids, id) {
			ids = append(ids, id)
		}
	}
	s.SaleOrderIDs = ids
	w.selection = s
	return nil
}

func matches(c CandidateCriteria, order *saleorder.SaleOrder) bool {
	if order == nil {
		return false
	}
	if c.PartnerID != nil && !order.PartnerID().IsEqual(*c.PartnerID) {
		return false
	}
	if c.FromEnquiryOnly && !order.FromEnquiry() {
		return false
	}
	if c.ExcludeID != nil && order.ID().IsEqual(*c.ExcludeID) {
		return false
	}
	if c.QuotationsOnly && !order.IsQuotation() {
		return false
	}
	return true
}
