package commands

import (
	"errors"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/guard"
)

var ErrConfirmEnquiryCommandIsNotConstructed = errors.New(
	"ConfirmEnquiryCommand must be created via NewConfirmEnquiryCommand constructor",
)

// ConfirmEnquiryCommand turns a pending enquiry into its first sales order.
// The caller chooses the id of the order to create.
//
// Example:
//
//	cmd, _ := NewConfirmEnquiryCommand(enquiryID, kernel.NewUUID())
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, enquiry.ErrEnquiryHasNoLines) {
//	    // "Before Confirm Please Add Product"
//	}
type ConfirmEnquiryCommand struct { //nolint:recvcheck //using for validation
	enquiryID   kernel.UUID
	saleOrderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewConfirmEnquiryCommand(enquiryID, saleOrderID kernel.UUID) (ConfirmEnquiryCommand, error) {
	if err := errors.Join(enquiryID.Validate(), saleOrderID.Validate()); err != nil {
		return ConfirmEnquiryCommand{}, err
	}
	return ConfirmEnquiryCommand{
		enquiryID:   enquiryID,
		saleOrderID: saleOrderID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmEnquiryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmEnquiryCommandIsNotConstructed)
}

func (c ConfirmEnquiryCommand) EnquiryID() kernel.UUID { return c.enquiryID }
func (c ConfirmEnquiryCommand) SaleOrderID() kernel.UUID { return c.saleOrderID }
