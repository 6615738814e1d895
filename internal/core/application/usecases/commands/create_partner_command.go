package commands

import (
	"errors"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/partner"
	"enquiry/internal/pkg/guard"
)

var ErrCreatePartnerCommandIsNotConstructed = errors.New(
	"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
)

// CreatePartnerCommand registers a customer or one of its addresses.
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID   kernel.UUID
	name        string
	email       string
	partnerType partner.Type

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates the command. An empty type means contact.
func NewCreatePartnerCommand(partnerID kernel.UUID, name, email string, partnerType partner.Type) (CreatePartnerCommand, error) {
	c := CreatePartnerCommand{
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}
	if partnerType == "" {
		partnerType = partner.TypeContact
	}

	if err := errors.Join(
		c.setPartnerID(partnerID),
		c.setType(partnerType),
	); err != nil {
		return CreatePartnerCommand{}, err
	}

	return c, nil
}

func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

func (c CreatePartnerCommand) PartnerID() kernel.UUID { return c.partnerID }
func (c CreatePartnerCommand) Name() string { return c.name }
func (c CreatePartnerCommand) Email() string { return c.email }
func (c CreatePartnerCommand) Type() partner.Type { return c.partnerType }

func (c *CreatePartnerCommand) setPartnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.partnerID = id
	return nil
}

func (c *CreatePartnerCommand) setType(partnerType partner.Type) error {
	if err := partnerType.Validate(); err != nil {
		return err
	}
	c.partnerType = partnerType
	return nil
}
