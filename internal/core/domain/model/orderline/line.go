package orderline

import (
	"errors"
	"fmt"
	"strings"

	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/errs"
	"enquiry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultSequence is the position given to lines created without one.
const DefaultSequence = 10

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// DisplayType distinguishes product lines from layout lines.
type DisplayType string

const (
	// DisplayProduct is a regular priced line.
	DisplayProduct DisplayType = ""
	// DisplaySection is a title grouping the following lines.
	DisplaySection DisplayType = "line_section"
	// DisplayNote is free text.
	DisplayNote DisplayType = "line_note"
)

func (d DisplayType) Validate() error {
	switch d {
	case DisplayProduct, DisplaySection, DisplayNote:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("displayType", fmt.Errorf("%q is not a valid display type", string(d)))
	}
}

// IsLayout reports section and note lines, which never carry amounts.
func (d DisplayType) IsLayout() bool {
	return d == DisplaySection || d == DisplayNote
}

// Values are the editable attributes of a line.
type Values struct {
	Sequence    int
	ProductID   *kernel.UUID
	Name        string
	DisplayType DisplayType
	PriceUnit   decimal.Decimal
	Quantity    decimal.Decimal
	UoM         string
	TaxIDs      []kernel.UUID
}

// Line is a line of an enquiry or of a sales order.
type Line struct {
	id      kernel.UUID
	values  Values
	amounts catalog.LineAmounts

	guard guard.ConstructorGuard
}

func NewLine(id kernel.UUID, values Values) (*Line, error) {
	l := &Line{
		amounts: catalog.ZeroLineAmounts(),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setValues(values),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLine rebuilds a persisted line together with its stored amounts.
func RestoreLine(id kernel.UUID, values Values, amounts catalog.LineAmounts) (*Line, error) {
	l, err := NewLine(id, values)
	if err != nil {
		return nil, err
	}
	l.amounts = amounts
	return l, nil
}

func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l *Line) ID() kernel.UUID { return l.id }
func (l *Line) Sequence() int { return l.values.Sequence }
func (l *Line) ProductID() *kernel.UUID { return l.values.ProductID }
func (l *Line) Name() string { return l.values.Name }
func (l *Line) DisplayType() DisplayType { return l.values.DisplayType }
func (l *Line) PriceUnit() decimal.Decimal { return l.values.PriceUnit }
func (l *Line) Quantity() decimal.Decimal { return l.values.Quantity }
func (l *Line) UoM() string { return l.values.UoM }
func (l *Line) PriceSubtotal() decimal.Decimal { return l.amounts.Subtotal }
func (l *Line) PriceTax() decimal.Decimal { return l.amounts.Tax }
func (l *Line) PriceTotal() decimal.Decimal { return l.amounts.Total }
func (l *Line) Amounts() catalog.LineAmounts { return l.amounts }
func (l *Line) IsLayout() bool { return l.values.DisplayType.IsLayout() }
func (l *Line) IsEqual(other *Line) bool { return other != nil && l.id.IsEqual(other.id) }
func (l *Line) TaxIDs() []kernel.UUID { return append([]kernel.UUID(nil), l.values.TaxIDs...) }

// Values returns a copy of the line attributes, suitable for copying the line
// to another document.
func (l *Line) Values() Values {
	v := l.values
	v.TaxIDs = l.TaxIDs()
	if l.values.ProductID != nil {
		id := *l.values.ProductID
		v.ProductID = &id
	}
	return v
}

// Update replaces the editable attributes. Amounts are recomputed by the owning document.
func (l *Line) Update(values Values) error {
	return l.setValues(values)
}

// Compute refreshes the stored amounts of the line on its own, rounding per line.
func (l *Line) Compute(taxes catalog.TaxSet, currency kernel.Currency) error {
	if l.IsLayout() {
		l.amounts = catalog.ZeroLineAmounts()
		return nil
	}

	base, err := l.BaseLine(taxes)
	if err != nil {
		return err
	}
	l.amounts = catalog.ComputeLine(base, currency)
	return nil
}

// BaseLine is the input of the tax computation for this line.
func (l *Line) BaseLine(taxes catalog.TaxSet) (catalog.BaseLine, error) {
	resolved, err := taxes.Resolve(l.values.TaxIDs)
	if err != nil {
		return catalog.BaseLine{}, err
	}
	return catalog.BaseLine{
		PriceUnit: l.values.PriceUnit,
		Quantity:  l.values.Quantity,
		Taxes:     resolved,
	}, nil
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setValues(v Values) error {
	if err := v.DisplayType.Validate(); err != nil {
		return err
	}

	v.Name = strings.TrimSpace(v.Name)
	v.UoM = strings.TrimSpace(v.UoM)

	if v.DisplayType.IsLayout() {
		if v.Name == "" {
			return errs.NewValueIsRequiredErrorWithCause("name", fmt.Errorf("%s lines need a label", v.DisplayType))
		}
		v.ProductID = nil
		v.PriceUnit = decimal.Zero
		v.Quantity = decimal.Zero
		v.UoM = ""
		v.TaxIDs = nil
	} else {
		if v.Quantity.IsNegative() {
			return errs.NewValueIsOutOfRangeError("quantity", v.Quantity.String(), 0, "∞")
		}
		if v.ProductID != nil {
			if err := v.ProductID.Validate(); err != nil {
				return err
			}
		}
	}

	if v.Sequence == 0 {
		v.Sequence = DefaultSequence
	}

	taxIDs := make([]kernel.UUID, 0, len(v.TaxIDs))
	for _, id := range v.TaxIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if !kernel.ContainsUUID(taxIDs, id) {
			taxIDs = append(taxIDs, id)
		}
	}
	v.TaxIDs = taxIDs

	l.values = v
	return nil
}
