package commands

import (
	"errors"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/guard"
)

var ErrCancelEnquiryCommandIsNotConstructed = errors.New(
	"CancelEnquiryCommand must be created via NewCancelEnquiryCommand constructor",
)

// CancelEnquiryCommand drops a pending enquiry.
type CancelEnquiryCommand struct { //nolint:recvcheck //using for validation
	enquiryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelEnquiryCommand(enquiryID kernel.UUID) (CancelEnquiryCommand, error) {
	if err := enquiryID.Validate(); err != nil {
		return CancelEnquiryCommand{}, err
	}
	return CancelEnquiryCommand{
		enquiryID: enquiryID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CancelEnquiryCommand) Validate() error {
	return c.guard.Validate(ErrCancelEnquiryCommandIsNotConstructed)
}

func (c CancelEnquiryCommand) EnquiryID() kernel.UUID { return c.enquiryID }
