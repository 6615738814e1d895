package wizard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/orderline"
	"enquiry/internal/core/domain/model/saleorder"
	"enquiry/internal/pkg/errs"
	"enquiry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrProductAddWizardIsNotConstructed = errors.New("ProductAddWizard must be created via NewProductAddWizard constructor")

	// ErrNoTargetOrderSelected is returned when applying without a target quotation.
	ErrNoTargetOrderSelected = errs.NewValueIsRequiredErrorWithCause(
		"saleOrderId", errors.New("select the quotation to add the product to"),
	)

	// ErrTargetOrderIsNotQuotation is returned when a selected order is not in
	// draft or sent state.
	ErrTargetOrderIsNotQuotation = errs.NewValueIsInvalidErrorWithCause(
		"saleOrderIds", errors.New("products can only be added to quotations"),
	)
)

// OrderType tells whether the product goes to one or several quotations.
type OrderType string

const (
	SingleSale OrderType = "single_sale"
	MultiSale  OrderType = "multi_sale"
)

func (t OrderType) Validate() error {
	if t != SingleSale && t != MultiSale {
		return errs.NewValueIsInvalidErrorWithCause("orderType", fmt.Errorf("%q is not a valid order type", string(t)))
	}
	return nil
}

// ProductAddParams are the values the wizard is opened with. Nil price and
// quantity take the product list price and 1; an empty unit takes the product unit.
type ProductAddParams struct {
	OrderType OrderType
	Product   *catalog.Product
	PriceUnit *decimal.Decimal
	Quantity  *decimal.Decimal
	UoM       string
	Taxes     []*catalog.Tax
	Currency  kernel.Currency
}

// ProductAddSelection is the choice of target quotations.
type ProductAddSelection struct {
	OrderType    OrderType
	SaleOrderID  *kernel.UUID
	SaleOrderIDs []kernel.UUID
}

// ProductAddWizard adds one catalog product as a new line to one or several quotations.
type ProductAddWizard struct {
	transient

	id           kernel.UUID
	orderType    OrderType
	productID    kernel.UUID
	productName  string
	priceUnit    decimal.Decimal
	quantity     decimal.Decimal
	uom          string
	taxIDs       []kernel.UUID
	currency     kernel.Currency
	saleOrderID  *kernel.UUID
	saleOrderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewProductAddWizard(id kernel.UUID, params ProductAddParams, now time.Time) (*ProductAddWizard, error) {
	w := &ProductAddWizard{
		transient:    newTransient(now),
		saleOrderIDs: make([]kernel.UUID, 0),
		guard:        guard.NewConstructorGuard(),
	}
	if params.OrderType == "" {
		params.OrderType = SingleSale
	}

	if err := errors.Join(
		w.setID(id),
		w.setOrderType(params.OrderType),
		w.setProduct(params.Product, params.PriceUnit, params.UoM),
		w.setQuantity(params.Quantity),
		w.setTaxes(params.Taxes),
		w.setCurrency(params.Currency),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// ProductAddSnapshot carries the persisted state of a product add wizard.
type ProductAddSnapshot struct {
	OrderType    OrderType
	ProductID    kernel.UUID
	ProductName  string
	PriceUnit    decimal.Decimal
	Quantity     decimal.Decimal
	UoM          string
	TaxIDs       []kernel.UUID
	Currency     kernel.Currency
	SaleOrderID  *kernel.UUID
	SaleOrderIDs []kernel.UUID
	Applied      bool
	CreatedAt    time.Time
}

func RestoreProductAddWizard(id kernel.UUID, s ProductAddSnapshot) (*ProductAddWizard, error) {
	w := &ProductAddWizard{
		transient:   newTransient(s.CreatedAt),
		productName: s.ProductName,
		priceUnit:   s.PriceUnit,
		quantity:    s.Quantity,
		uom:         s.UoM,
		guard:       guard.NewConstructorGuard(),
	}
	w.applied = s.Applied

	if err := errors.Join(
		w.setID(id),
		w.setOrderType(s.OrderType),
		s.ProductID.Validate(),
		w.setCurrency(s.Currency),
	); err != nil {
		return nil, err
	}
	w.productID = s.ProductID
	w.taxIDs = append(make([]kernel.UUID, 0, len(s.TaxIDs)), s.TaxIDs...)

	if err := w.setSelection(ProductAddSelection{
		OrderType:    s.OrderType,
		SaleOrderID:  s.SaleOrderID,
		SaleOrderIDs: s.SaleOrderIDs,
	}); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *ProductAddWizard) Validate() error {
	if w == nil {
		return ErrProductAddWizardIsNotConstructed
	}
	return w.guard.Validate(ErrProductAddWizardIsNotConstructed)
}

func (w *ProductAddWizard) ID() kernel.UUID { return w.id }
func (w *ProductAddWizard) OrderType() OrderType { return w.orderType }
func (w *ProductAddWizard) ProductID() kernel.UUID { return w.productID }
func (w *ProductAddWizard) ProductName() string { return w.productName }
func (w *ProductAddWizard) PriceUnit() decimal.Decimal { return w.priceUnit }
func (w *ProductAddWizard) Quantity() decimal.Decimal { return w.quantity }
func (w *ProductAddWizard) UoM() string { return w.uom }
func (w *ProductAddWizard) Currency() kernel.Currency { return w.currency }
func (w *ProductAddWizard) SaleOrderID() *kernel.UUID { return w.saleOrderID }

func (w *ProductAddWizard) TaxIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), w.taxIDs...)
}

func (w *ProductAddWizard) SaleOrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), w.saleOrderIDs...)
}

// Select records the target quotations. An empty order type keeps the current one.
func (w *ProductAddWizard) Select(selection ProductAddSelection) error {
	if err := w.ensureOpen(); err != nil {
		return err
	}
	if selection.OrderType == "" {
		selection.OrderType = w.orderType
	}
	return w.setSelection(selection)
}

// Criteria returns the candidate domain: quotations only.
func (w *ProductAddWizard) Criteria() CandidateCriteria {
	return CandidateCriteria{QuotationsOnly: true}
}

// Accepts reports whether order may receive the product.
func (w *ProductAddWizard) Accepts(order *saleorder.SaleOrder) bool {
	return matches(w.Criteria(), order)
}

// TargetOrderIDs returns the selected quotation in single mode, or the selected
// list in multi mode.
func (w *ProductAddWizard) TargetOrderIDs() ([]kernel.UUID, error) {
	if w.orderType == SingleSale {
		if w.saleOrderID == nil {
			return nil, ErrNoTargetOrderSelected
		}
		return []kernel.UUID{*w.saleOrderID}, nil
	}

	if len(w.saleOrderIDs) == 0 {
		return nil, ErrNoTargetOrderSelected
	}
	return w.SaleOrderIDs(), nil
}

// LineValues is the line added to every target: named after the product,
// without the default code.
func (w *ProductAddWizard) LineValues() orderline.Values {
	productID := w.productID
	return orderline.Values{
		ProductID:   &productID,
		Name:        w.productName,
		DisplayType: orderline.DisplayProduct,
		PriceUnit:   w.priceUnit,
		Quantity:    w.quantity,
		UoM:         w.uom,
		TaxIDs:      w.TaxIDs(),
	}
}

// AddTo appends the product line to each target after checking they are quotations.
func (w *ProductAddWizard) AddTo(targets []*saleorder.SaleOrder) error {
	if err := w.ensureOpen(); err != nil {
		return err
	}
	if len(targets) == 0 {
		return ErrNoTargetOrderSelected
	}

	for _, order := range targets {
		if !w.Accepts(order) {
			return fmt.Errorf("%w: %s is %s", ErrTargetOrderIsNotQuotation, order.Name(), order.State())
		}
	}
	for _, order := range targets {
		if err := order.AddProductLine(w.LineValues()); err != nil {
			return err
		}
	}
	return nil
}

// MarkApplied closes the wizard. A wizard is applied once.
func (w *ProductAddWizard) MarkApplied() error {
	return w.markApplied()
}

func (w *ProductAddWizard) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *ProductAddWizard) setOrderType(orderType OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	w.orderType = orderType
	return nil
}

func (w *ProductAddWizard) setProduct(product *catalog.Product, price *decimal.Decimal, uom string) error {
	if product == nil {
		return errs.NewValueIsRequiredError("productId")
	}
	if err := product.Validate(); err != nil {
		return err
	}
	if err := product.EnsureSellable(); err != nil {
		return err
	}

	w.productID = product.ID()
	w.productName = product.Name()
	w.priceUnit = product.ListPrice()
	if price != nil {
		if price.IsNegative() {
			return errs.NewValueIsOutOfRangeError("priceUnit", price.String(), 0, "∞")
		}
		w.priceUnit = *price
	}
	w.uom = product.UoM()
	if uom = strings.TrimSpace(uom); uom != "" {
		w.uom = uom
	}
	return nil
}

func (w *ProductAddWizard) setQuantity(quantity *decimal.Decimal) error {
	w.quantity = decimal.NewFromInt(1)
	if quantity == nil {
		return nil
	}
	if !quantity.IsPositive() {
		return errs.NewValueIsOutOfRangeError("quantity", quantity.String(), "0 (excluded)", "∞")
	}
	w.quantity = *quantity
	return nil
}

func (w *ProductAddWizard) setTaxes(taxes []*catalog.Tax) error {
	ids := make([]kernel.UUID, 0, len(taxes))
	for _, t := range taxes {
		if err := t.Validate(); err != nil {
			return err
		}
		if err := t.EnsureSale(); err != nil {
			return err
		}
		if !kernel.ContainsUUID(ids, t.ID()) {
			ids = append(ids, t.ID())
		}
	}
	w.taxIDs = ids
	return nil
}

func (w *ProductAddWizard) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	w.currency = currency
	return nil
}

func (w *ProductAddWizard) setSelection(s ProductAddSelection) error {
	if err := s.OrderType.Validate(); err != nil {
		return err
	}

	var saleOrderID *kernel.UUID
	if s.SaleOrderID != nil {
		if err := s.SaleOrderID.Validate(); err != nil {
			return err
		}
		id := *s.SaleOrderID
		saleOrderID = &id
	}

	ids := make([]kernel.UUID, 0, len(s.SaleOrderIDs))
	for _, id := range s.SaleOrderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if !kernel.ContainsUUID(ids, id) {
			ids = append(ids, id)
		}
	}

	w.orderType = s.OrderType
	w.saleOrderID = saleOrderID
	w.saleOrderIDs = ids
	return nil
}
