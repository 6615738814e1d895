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

// DefaultUoM is the unit of measure used when a product does not specify one.
const DefaultUoM = "Units"

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	ErrProductIsNotSellable    = errs.NewValueIsInvalidErrorWithCause("productId", errors.New("product cannot be sold"))
)

// Product is a sellable catalog item (a product template).
type Product struct {
	id          kernel.UUID
	defaultCode string
	name        string
	listPrice   decimal.Decimal
	uom         string
	taxIDs      []kernel.UUID
	saleOK      bool

	guard guard.ConstructorGuard
}

// ProductParams groups the attributes of a product.
type ProductParams struct {
	DefaultCode string
	Name        string
	ListPrice   decimal.Decimal
	UoM         string
	TaxIDs      []kernel.UUID
	SaleOK      bool
}

func NewProduct(id kernel.UUID, params ProductParams) (*Product, error) {
	p := &Product{
		defaultCode: strings.TrimSpace(params.DefaultCode),
		saleOK:      params.SaleOK,
		guard:       guard.NewConstructorGuard(),
	}

	uom := strings.TrimSpace(params.UoM)
	if uom == "" {
		uom = DefaultUoM
	}
	p.uom = uom

	if err := errors.Join(
		p.setID(id),
		p.setName(params.Name),
		p.setListPrice(params.ListPrice),
		p.setTaxIDs(params.TaxIDs),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID { return p.id }
func (p *Product) DefaultCode() string { return p.defaultCode }
func (p *Product) Name() string { return p.name }
func (p *Product) ListPrice() decimal.Decimal { return p.listPrice }
func (p *Product) UoM() string { return p.uom }
func (p *Product) SaleOK() bool { return p.saleOK }

// TaxIDs returns the default customer taxes of the product.
func (p *Product) TaxIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(p.taxIDs))
	copy(ids, p.taxIDs)
	return ids
}

// DisplayName is "[code] name", or the bare name without a default code.
func (p *Product) DisplayName() string {
	if p.defaultCode == "" {
		return p.name
	}
	return fmt.Sprintf("[%s] %s", p.defaultCode, p.name)
}

// LineDescription is the description proposed when the product is picked on an
// enquiry line. The code brackets are always present, even when empty.
func (p *Product) LineDescription() string {
	return fmt.Sprintf("[%s] %s", p.defaultCode, p.name)
}

// EnsureSellable fails with ErrProductIsNotSellable unless SaleOK is set.
func (p *Product) EnsureSellable() error {
	if !p.saleOK {
		return fmt.Errorf("%w: %s", ErrProductIsNotSellable, p.DisplayName())
	}
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setListPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("listPrice", price.String(), 0, "∞")
	}
	p.listPrice = price
	return nil
}

func (p *Product) setTaxIDs(ids []kernel.UUID) error {
	result := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if !kernel.ContainsUUID(result, id) {
			result = append(result, id)
		}
	}
	p.taxIDs = result
	return nil
}
