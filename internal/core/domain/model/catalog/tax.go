package catalog

import (
	"errors"
	"fmt"
	"strings"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/errs"
	"enquiry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrTaxIsNotConstructed = errors.New("Tax must be created via NewTax constructor")
	ErrTaxIsNotForSale     = errs.NewValueIsInvalidErrorWithCause("taxIds", errors.New("tax cannot be used on sales lines"))
)

// AmountType tells how a tax amount is derived from a line.
type AmountType string

const (
	// AmountPercent applies Amount percent of the untaxed line amount.
	AmountPercent AmountType = "percent"
	// AmountFixed applies Amount once per unit of quantity.
	AmountFixed AmountType = "fixed"
)

func (t AmountType) Validate() error {
	if t != AmountPercent && t != AmountFixed {
		return errs.NewValueIsInvalidErrorWithCause("amountType", fmt.Errorf("%q is not a valid amount type", string(t)))
	}
	return nil
}

// TaxUse scopes a tax to sales or purchases.
type TaxUse string

const (
	TaxUseSale     TaxUse = "sale"
	TaxUsePurchase TaxUse = "purchase"
	TaxUseNone     TaxUse = "none"
)

func (u TaxUse) Validate() error {
	switch u {
	case TaxUseSale, TaxUsePurchase, TaxUseNone:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("typeTaxUse", fmt.Errorf("%q is not a valid tax scope", string(u)))
	}
}

var hundred = decimal.NewFromInt(100)

// Tax is a sales or purchase tax.
type Tax struct {
	id           kernel.UUID
	name         string
	amountType   AmountType
	amount       decimal.Decimal
	priceInclude bool
	typeTaxUse   TaxUse
	sequence     int

	guard guard.ConstructorGuard
}

// TaxParams groups the attributes of a tax.
type TaxParams struct {
	Name         string
	AmountType   AmountType
	Amount       decimal.Decimal
	PriceInclude bool
	TypeTaxUse   TaxUse
	Sequence     int
}

func NewTax(id kernel.UUID, params TaxParams) (*Tax, error) {
	t := &Tax{
		priceInclude: params.PriceInclude,
		sequence:     params.Sequence,
		guard:        guard.NewConstructorGuard(),
	}
	if params.AmountType == "" {
		params.AmountType = AmountPercent
	}
	if params.TypeTaxUse == "" {
		params.TypeTaxUse = TaxUseSale
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(params.Name),
		t.setAmount(params.AmountType, params.Amount),
		t.setTypeTaxUse(params.TypeTaxUse),
	); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Tax) Validate() error {
	if t == nil {
		return ErrTaxIsNotConstructed
	}
	return t.guard.Validate(ErrTaxIsNotConstructed)
}

func (t *Tax) ID() kernel.UUID { return t.id }
func (t *Tax) Name() string { return t.name }
func (t *Tax) AmountType() AmountType { return t.amountType }
func (t *Tax) Amount() decimal.Decimal { return t.amount }
func (t *Tax) PriceInclude() bool { return t.priceInclude }
func (t *Tax) TypeTaxUse() TaxUse { return t.typeTaxUse }
func (t *Tax) Sequence() int { return t.sequence }
func (t *Tax) Rate() decimal.Decimal { return t.amount.Div(hundred) }
func (t *Tax) IsEqual(other *Tax) bool { return other != nil && t.id.IsEqual(other.id) }
func (t *Tax) IsPercent() bool { return t.amountType == AmountPercent }
func (t *Tax) CanBeUsedOnSaleLines() bool { return t.typeTaxUse == TaxUseSale }

// EnsureSale fails with ErrTaxIsNotForSale for purchase-only taxes.
func (t *Tax) EnsureSale() error {
	if !t.CanBeUsedOnSaleLines() {
		return fmt.Errorf("%w: %s is a %s tax", ErrTaxIsNotForSale, t.name, t.typeTaxUse)
	}
	return nil
}

func (t *Tax) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tax) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}

func (t *Tax) setAmount(amountType AmountType, amount decimal.Decimal) error {
	if err := amountType.Validate(); err != nil {
		return err
	}
	if amount.IsNegative() {
		return errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, "∞")
	}
	if amountType == AmountPercent && amount.GreaterThan(hundred) {
		return errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, 100)
	}
	t.amountType = amountType
	t.amount = amount
	return nil
}

func (t *Tax) setTypeTaxUse(use TaxUse) error {
	if err := use.Validate(); err != nil {
		return err
	}
	t.typeTaxUse = use
	return nil
}
