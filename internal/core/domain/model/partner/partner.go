// Package partner models the customers an enquiry or a sales order is made for.
package partner

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/errs"
	"enquiry/internal/pkg/guard"
)

var (
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")
	ErrPartnerIsNotCustomer    = errs.NewValueIsInvalidErrorWithCause(
		"partnerId", errors.New("private addresses cannot be used as customer"),
	)
)

// Type classifies a partner address. Private addresses are never offered as customers.
type Type string

const (
	TypeContact  Type = "contact"
	TypeInvoice  Type = "invoice"
	TypeDelivery Type = "delivery"
	TypePrivate  Type = "private"
)

func (t Type) Validate() error {
	switch t {
	case TypeContact, TypeInvoice, TypeDelivery, TypePrivate:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid partner type", string(t)))
	}
}

// Partner is a customer of the company.
type Partner struct {
	id          kernel.UUID
	name        string
	email       string
	partnerType Type

	guard guard.ConstructorGuard
}

// NewPartner validates and creates a partner. An empty type defaults to contact.
func NewPartner(id kernel.UUID, name, email string, partnerType Type) (*Partner, error) {
	p := &Partner{guard: guard.NewConstructorGuard()}
	if partnerType == "" {
		partnerType = TypeContact
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setEmail(email),
		p.setType(partnerType),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePartner rebuilds a partner loaded from storage.
func RestorePartner(id kernel.UUID, name, email string, partnerType Type) (*Partner, error) {
	return NewPartner(id, name, email, partnerType)
}

func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

func (p *Partner) ID() kernel.UUID { return p.id }
func (p *Partner) Name() string { return p.name }
func (p *Partner) Email() string { return p.email }
func (p *Partner) Type() Type { return p.partnerType }

// CanBeCustomer is false for private addresses.
func (p *Partner) CanBeCustomer() bool {
	return p.partnerType != TypePrivate
}

// EnsureCustomer validates p and checks it may be used as the customer of a document.
func (p *Partner) EnsureCustomer() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !p.CanBeCustomer() {
		return fmt.Errorf("%w: %s", ErrPartnerIsNotCustomer, p.name)
	}
	return nil
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Partner) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("email", err)
		}
	}
	p.email = email
	return nil
}

func (p *Partner) setType(partnerType Type) error {
	if err := partnerType.Validate(); err != nil {
		return err
	}
	p.partnerType = partnerType
	return nil
}
