package services

import (
	"errors"
	"fmt"

	"enquiry/internal/core/domain/model/enquiry"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/orderline"
	"enquiry/internal/core/domain/model/partner"
	"enquiry/internal/core/domain/model/saleorder"
	"enquiry/internal/pkg/errs"
)

// ErrCustomerMismatch is returned when the customer given to the confirmer is
// not the customer of the enquiry.
var ErrCustomerMismatch = errs.NewValueIsInvalidErrorWithCause(
	"partnerId", errors.New("customer does not match the enquiry"),
)

// NewOrder identifies the sales order to create: its id and the number drawn
// from the sale.order sequence.
type NewOrder struct {
	ID   kernel.UUID
	Name string
}

// EnquiryConfirmer is a domain service creating sales orders from enquiries.
//
// Business rules:
//   - An enquiry without lines cannot be confirmed
//   - The order is a draft for the enquiry customer, dated like the enquiry
//   - Every enquiry line is copied with its position, product, display type,
//     description, price, unit, quantity and taxes
//   - The enquiry records the order as its last one and in its order list
//
// Example usage:
//
//	confirmer := NewEnquiryConfirmer()
//	order, err := confirmer.Confirm(enq, customer, NewOrder{ID: kernel.NewUUID(), Name: "S00001"})
//	if errors.Is(err, enquiry.ErrEnquiryHasNoLines) {
//	    // ask for at least one line
//	}
type EnquiryConfirmer struct{}

func NewEnquiryConfirmer() EnquiryConfirmer {
	return EnquiryConfirmer{}
}

// Confirm creates the first sales order of a pending enquiry and moves it to confirm.
func (c EnquiryConfirmer) Confirm(e *enquiry.Enquiry, customer *partner.Partner, order NewOrder) (*saleorder.SaleOrder, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := e.EnsureConfirmable(); err != nil {
		return nil, err
	}

	created, err := c.build(e, customer, order)
	if err != nil {
		return nil, err
	}
	if err = e.Confirm(created.ID()); err != nil {
		return nil, err
	}
	return created, nil
}

// CreateAdditionalOrder creates one more sales order from a confirmed multi
// order enquiry.
func (c EnquiryConfirmer) CreateAdditionalOrder(e *enquiry.Enquiry, customer *partner.Partner, order NewOrder) (*saleorder.SaleOrder, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := e.EnsureCanCreateAdditionalOrder(); err != nil {
		return nil, err
	}

	created, err := c.build(e, customer, order)
	if err != nil {
		return nil, err
	}
	if err = e.CreateAdditionalOrder(created.ID()); err != nil {
		return nil, err
	}
	return created, nil
}

func (c EnquiryConfirmer) build(e *enquiry.Enquiry, customer *partner.Partner, order NewOrder) (*saleorder.SaleOrder, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if !customer.ID().IsEqual(e.PartnerID()) {
		return nil, fmt.Errorf("%w: %s", ErrCustomerMismatch, customer.Name())
	}

	lines := make([]orderline.Values, 0, len(e.Lines()))
	for _, l := range e.Lines() {
		lines = append(lines, l.Values())
	}

	enquiryID := e.ID()
	return saleorder.NewSaleOrder(order.ID, saleorder.Params{
		Name:      order.Name,
		Customer:  customer,
		DateOrder: e.DateOrder(),
		EnquiryID: &enquiryID,
		Currency:  e.Currency(),
		Lines:     lines,
	})
}
