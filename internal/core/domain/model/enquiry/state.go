package enquiry

import (
	"fmt"

	"enquiry/internal/pkg/errs"
)

// State represents the lifecycle state of an enquiry.
// Transitions only happen on explicit user actions:
//
//	Pending ──┬──> Confirm ──> Confirm (additional orders)
//	          │
//	          └──> Cancel
//
// A cancelled enquiry is final. A confirmed enquiry cannot go back to pending.
type State string

const (
	// Pending is the initial state. Lines are edited while pending.
	Pending State = "pending"

	// Confirm means at least one sales order was created from the enquiry.
	Confirm State = "confirm"

	// Cancel means the enquiry was dropped before any sales order existed.
	Cancel State = "cancel"
)

// Validate checks the state is one of Pending, Confirm or Cancel.
func (s State) Validate() error {
	switch s {
	case Pending, Confirm, Cancel:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a valid state", string(s)))
	}
}

func (s State) String() string {
	return string(s)
}

// Confirm transitions the state to Confirm.
//
// Valid transitions:
//   - Pending -> Confirm (first sales order)
//
// Confirm -> Confirm is handled by AdditionalOrder, which also checks the multi
// orders flag.
func (s State) Confirm() (State, error) {
	if s != Pending {
		return "", errs.NewStateConflictError("confirm", s.String())
	}
	return Confirm, nil
}

// AdditionalOrder keeps the state at Confirm for another sales order.
func (s State) AdditionalOrder() (State, error) {
	if s != Confirm {
		return "", errs.NewStateConflictError("create additional order", s.String())
	}
	return Confirm, nil
}

// Cancel transitions the state to Cancel. Only a pending enquiry can be cancelled.
func (s State) Cancel() (State, error) {
	if s != Pending {
		return "", errs.NewStateConflictError("cancel", s.String())
	}
	return Cancel, nil
}

// AllowsEditing reports whether the header and lines may still change.
func (s State) AllowsEditing() bool {
	return s != Cancel
}
