package commands

import (
	"errors"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/guard"
)

var ErrAddEnquiryLineCommandIsNotConstructed = errors.New(
	"AddEnquiryLineCommand must be created via NewAddEnquiryLineCommand constructor",
)

// AddEnquiryLineCommand appends a line to an enquiry.
type AddEnquiryLineCommand struct { //nolint:recvcheck //using for validation
	enquiryID kernel.UUID
	lineID    kernel.UUID
	line      LineRequest

	guard guard.ConstructorGuard
}

func NewAddEnquiryLineCommand(enquiryID, lineID kernel.UUID, line LineRequest) (AddEnquiryLineCommand, error) {
	if err := errors.Join(enquiryID.Validate(), lineID.Validate(), line.Validate()); err != nil {
		return AddEnquiryLineCommand{}, err
	}
	return AddEnquiryLineCommand{
		enquiryID: enquiryID,
		lineID:    lineID,
		line:      line,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddEnquiryLineCommand) Validate() error {
	return c.guard.Validate(ErrAddEnquiryLineCommandIsNotConstructed)
}

func (c AddEnquiryLineCommand) EnquiryID() kernel.UUID { return c.enquiryID }
func (c AddEnquiryLineCommand) LineID() kernel.UUID { return c.lineID }
func (c AddEnquiryLineCommand) Line() LineRequest { return c.line }
