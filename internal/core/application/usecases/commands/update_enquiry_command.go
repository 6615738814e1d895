package commands

import (
	"errors"
	"time"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/errs"
	"enquiry/internal/pkg/guard"
)

var ErrUpdateEnquiryCommandIsNotConstructed = errors.New(
	"UpdateEnquiryCommand must be created via NewUpdateEnquiryCommand constructor",
)

// EnquiryHeaderPatch lists the header fields to change; nil fields are kept.
type EnquiryHeaderPatch struct {
	PartnerID  *kernel.UUID
	DateOrder  *time.Time
	UserID     *kernel.UUID
	Sequence   *int
	MultiOrder *bool
}

// UpdateEnquiryCommand changes the header of an enquiry.
type UpdateEnquiryCommand struct { //nolint:recvcheck //using for validation
	enquiryID kernel.UUID
	patch     EnquiryHeaderPatch

	guard guard.ConstructorGuard
}

func NewUpdateEnquiryCommand(enquiryID kernel.UUID, patch EnquiryHeaderPatch) (UpdateEnquiryCommand, error) {
	c := UpdateEnquiryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setEnquiryID(enquiryID),
		c.setPatch(patch),
	); err != nil {
		return UpdateEnquiryCommand{}, err
	}

	return c, nil
}

func (c UpdateEnquiryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEnquiryCommandIsNotConstructed)
}

func (c UpdateEnquiryCommand) EnquiryID() kernel.UUID { return c.enquiryID }
func (c UpdateEnquiryCommand) Patch() EnquiryHeaderPatch { return c.patch }

func (c *UpdateEnquiryCommand) setEnquiryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.enquiryID = id
	return nil
}

func (c *UpdateEnquiryCommand) setPatch(p EnquiryHeaderPatch) error {
	if p.PartnerID != nil {
		if err := p.PartnerID.Validate(); err != nil {
			return err
		}
	}
	if p.UserID != nil {
		if err := p.UserID.Validate(); err != nil {
			return err
		}
	}
	if p.DateOrder != nil && p.DateOrder.IsZero() {
		return errs.NewValueIsRequiredError("dateOrder")
	}
	c.patch = p
	return nil
}
