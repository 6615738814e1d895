package kernel

import (
	"fmt"
	"strings"

	"enquiry/internal/pkg/errs"
	"enquiry/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrCurrencyIsNotConstructed is returned when validating a zero-value Currency.
var ErrCurrencyIsNotConstructed = errs.NewValueIsRequiredError("Currency must be created via NewCurrency")

// Currency is the ISO 4217 currency of the company. It decides the scale
// monetary amounts are rounded to.
type Currency struct {
	unit  currency.Unit
	scale int32
	guard guard.ConstructorGuard
}

// NewCurrency parses an ISO 4217 code such as "EUR" or "JPY".
func NewCurrency(code string) (Currency, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return Currency{}, errs.NewValueIsInvalidErrorWithCause("currency", err)
	}

	scale, _ := currency.Standard.Rounding(unit)
	return Currency{
		unit:  unit,
		scale: int32(scale), //nolint:gosec // ISO scales are 0..4
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MustNewCurrency is NewCurrency for compile-time constants and tests.
func MustNewCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Currency) Validate() error {
	return c.guard.Validate(ErrCurrencyIsNotConstructed)
}

// Code returns the ISO 4217 code.
func (c Currency) Code() string {
	return c.unit.String()
}

// Scale is the number of decimals amounts in this currency are rounded to.
func (c Currency) Scale() int32 {
	return c.scale
}

// Round rounds half away from zero to the currency scale.
func (c Currency) Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(c.scale)
}

// IsZero reports whether amount rounds to zero in this currency.
func (c Currency) IsZero(amount decimal.Decimal) bool {
	return c.Round(amount).IsZero()
}

// Format renders amount with the currency symbol, e.g. "€ 1,234.50".
func (c Currency) Format(amount decimal.Decimal) string {
	value, _ := c.Round(amount).Float64()
	p := message.NewPrinter(language.English)
	return p.Sprint(currency.Symbol(c.unit.Amount(value)))
}

func (c Currency) IsEqual(other Currency) bool {
	return c.unit == other.unit
}

func (c Currency) String() string {
	return fmt.Sprintf("%s(%d)", c.Code(), c.scale)
}
