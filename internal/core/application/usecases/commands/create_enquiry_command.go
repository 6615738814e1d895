package commands

import (
	"errors"
	"time"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/guard"
)

var ErrCreateEnquiryCommandIsNotConstructed = errors.New(
	"CreateEnquiryCommand must be created via NewCreateEnquiryCommand constructor",
)

// CreateEnquiryParams are the values a new enquiry is created with. Name,
// sequence and date are optional.
type CreateEnquiryParams struct {
	Name       string
	Sequence   *int
	PartnerID  kernel.UUID
	UserID     *kernel.UUID
	DateOrder  time.Time
	MultiOrder bool
	Lines      []LineRequest
}

// CreateEnquiryCommand represents a request to record a new enquiry.
//
// Example:
//
//	cmd, err := NewCreateEnquiryCommand(kernel.NewUUID(), CreateEnquiryParams{
//	    PartnerID: customerID,
//	    Lines:     []LineRequest{{ProductID: &deskID}},
//	})
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateEnquiryCommand struct { //nolint:recvcheck //using for validation
	enquiryID kernel.UUID
	params    CreateEnquiryParams

	guard guard.ConstructorGuard
}

func NewCreateEnquiryCommand(enquiryID kernel.UUID, params CreateEnquiryParams) (CreateEnquiryCommand, error) {
	c := CreateEnquiryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setEnquiryID(enquiryID),
		c.setParams(params),
	); err != nil {
		return CreateEnquiryCommand{}, err
	}

	return c, nil
}

func (c CreateEnquiryCommand) Validate() error {
	return c.guard.Validate(ErrCreateEnquiryCommandIsNotConstructed)
}

func (c CreateEnquiryCommand) EnquiryID() kernel.UUID { return c.enquiryID }
func (c CreateEnquiryCommand) PartnerID() kernel.UUID { return c.params.PartnerID }
func (c CreateEnquiryCommand) Lines() []LineRequest { return copyLineRequests(c.params.Lines) }

// Params returns the header values. Lines are returned by Lines.
func (c CreateEnquiryCommand) Params() CreateEnquiryParams {
	p := c.params
	p.Lines = nil
	return p
}

func (c *CreateEnquiryCommand) setEnquiryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.enquiryID = id
	return nil
}

func (c *CreateEnquiryCommand) setParams(p CreateEnquiryParams) error {
	if err := p.PartnerID.Validate(); err != nil {
		return err
	}
	if p.UserID != nil {
		if err := p.UserID.Validate(); err != nil {
			return err
		}
	}
	if err := validateLineRequests(p.Lines); err != nil {
		return err
	}
	p.Lines = copyLineRequests(p.Lines)
	c.params = p
	return nil
}
