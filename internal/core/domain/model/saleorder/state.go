package saleorder

import (
	"fmt"

	"enquiry/internal/pkg/errs"
)

// State is the lifecycle state of a sales order.
type State string

const (
	Draft     State = "draft"
	Sent      State = "sent"
	Sale      State = "sale"
	Done      State = "done"
	Cancelled State = "cancel"
)

func (s State) Validate() error {
	switch s {
	case Draft, Sent, Sale, Done, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a valid sales order state", string(s)))
	}
}

func (s State) String() string {
	return string(s)
}

// IsQuotation is true while the order has not been confirmed by the customer.
func (s State) IsQuotation() bool {
	return s == Draft || s == Sent
}

// AllowsLineChanges is false once the order is locked or cancelled.
func (s State) AllowsLineChanges() bool {
	return s != Done && s != Cancelled
}
