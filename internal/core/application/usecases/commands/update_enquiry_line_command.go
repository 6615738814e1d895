package commands

import (
	"errors"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/guard"
)

var ErrUpdateEnquiryLineCommandIsNotConstructed = errors.New(
	"UpdateEnquiryLineCommand must be created via NewUpdateEnquiryLineCommand constructor",
)

// UpdateEnquiryLineCommand replaces the values of an enquiry line. Values left
// out take the product defaults again.
type UpdateEnquiryLineCommand struct { //nolint:recvcheck //using for validation
	enquiryID kernel.UUID
	lineID    kernel.UUID
	line      LineRequest

	guard guard.ConstructorGuard
}

func NewUpdateEnquiryLineCommand(enquiryID, lineID kernel.UUID, line LineRequest) (UpdateEnquiryLineCommand, error) {
	if err := errors.Join(enquiryID.Validate(), lineID.Validate(), line.Validate()); err != nil {
		return UpdateEnquiryLineCommand{}, err
	}
	return UpdateEnquiryLineCommand{
		enquiryID: enquiryID,
		lineID:    lineID,
		line:      line,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateEnquiryLineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEnquiryLineCommandIsNotConstructed)
}

func (c UpdateEnquiryLineCommand) EnquiryID() kernel.UUID { return c.enquiryID }
func (c UpdateEnquiryLineCommand) LineID() kernel.UUID { return c.lineID }
func (c UpdateEnquiryLineCommand) Line() LineRequest { return c.line }
