package services

import (
	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/orderline"
	"enquiry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineInput is what a user types on an enquiry line. Nil fields take the
// product defaults; a nil TaxIDs slice takes the product taxes while an empty
// one means no tax.
type LineInput struct {
	Sequence    int
	DisplayType orderline.DisplayType
	Name        *string
	PriceUnit   *decimal.Decimal
	Quantity    *decimal.Decimal
	UoM         *string
	TaxIDs      []kernel.UUID
}

// LineComposer applies the product onchange of enquiry lines.
type LineComposer struct{}

func NewLineComposer() LineComposer {
	return LineComposer{}
}

// Compose returns the line values for input. Product lines need a sellable
// product; section and note lines ignore it.
func (c LineComposer) Compose(product *catalog.Product, input LineInput) (orderline.Values, error) {
	if input.DisplayType.IsLayout() {
		v := orderline.Values{
			Sequence:    input.Sequence,
			DisplayType: input.DisplayType,
		}
		if input.Name != nil {
			v.Name = *input.Name
		}
		return v, nil
	}

	if err := input.DisplayType.Validate(); err != nil {
		return orderline.Values{}, err
	}
	if product == nil {
		return orderline.Values{}, errs.NewValueIsRequiredError("productId")
	}
	if err := product.Validate(); err != nil {
		return orderline.Values{}, err
	}
	if err := product.EnsureSellable(); err != nil {
		return orderline.Values{}, err
	}

	productID := product.ID()
	v := orderline.Values{
		Sequence:    input.Sequence,
		ProductID:   &productID,
		Name:        product.LineDescription(),
		DisplayType: orderline.DisplayProduct,
		PriceUnit:   product.ListPrice(),
		Quantity:    decimal.NewFromInt(1),
		UoM:         product.UoM(),
		TaxIDs:      product.TaxIDs(),
	}
	if input.Name != nil {
		v.Name = *input.Name
	}
	if input.PriceUnit != nil {
		v.PriceUnit = *input.PriceUnit
	}
	if input.Quantity != nil {
		v.Quantity = *input.Quantity
	}
	if input.UoM != nil && *input.UoM != "" {
		v.UoM = *input.UoM
	}
	if input.TaxIDs != nil {
		v.TaxIDs = append(make([]kernel.UUID, 0, len(input.TaxIDs)), input.TaxIDs...)
	}
	return v, nil
}
