package commands

import (
	"errors"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/guard"
)

var ErrRemoveEnquiryLineCommandIsNotConstructed = errors.New(
	"RemoveEnquiryLineCommand must be created via NewRemoveEnquiryLineCommand constructor",
)

// RemoveEnquiryLineCommand deletes a line of an enquiry.
type RemoveEnquiryLineCommand struct { //nolint:recvcheck //using for validation
	enquiryID kernel.UUID
	lineID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveEnquiryLineCommand(enquiryID, lineID kernel.UUID) (RemoveEnquiryLineCommand, error) {
	if err := errors.Join(enquiryID.Validate(), lineID.Validate()); err != nil {
		return RemoveEnquiryLineCommand{}, err
	}
	return RemoveEnquiryLineCommand{
		enquiryID: enquiryID,
		lineID:    lineID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveEnquiryLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveEnquiryLineCommandIsNotConstructed)
}

func (c RemoveEnquiryLineCommand) EnquiryID() kernel.UUID { return c.enquiryID }
func (c RemoveEnquiryLineCommand) LineID() kernel.UUID { return c.lineID }
