package commands

import (
	"context"
	"fmt"

	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/enquiry"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/orderline"
	"enquiry/internal/core/domain/model/saleorder"
	"enquiry/internal/core/domain/services"
)

// LineRequest is a line as typed by the user: the picked product plus the
// values overriding the product defaults.
type LineRequest struct {
	ProductID *kernel.UUID
	Input     services.LineInput
}

// Validate checks the product id and the display type.
func (r LineRequest) Validate() error {
	if err := r.Input.DisplayType.Validate(); err != nil {
		return err
	}
	if r.ProductID != nil {
		return r.ProductID.Validate()
	}
	return nil
}

func validateLineRequests(requests []LineRequest) error {
	for i, r := range requests {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return nil
}

func copyLineRequests(requests []LineRequest) []LineRequest {
	return append(make([]LineRequest, 0, len(requests)), requests...)
}

// composeLine loads the product of a product line and applies its defaults.
func composeLine(ctx context.Context, uow ProductRepoFactory, request LineRequest) (orderline.Values, error) {
	var product *catalog.Product
	if request.ProductID != nil && !request.Input.DisplayType.IsLayout() {
		p, err := uow.ProductRepository().Get(ctx, *request.ProductID)
		if err != nil {
			return orderline.Values{}, err
		}
		product = p
	}
	return services.NewLineComposer().Compose(product, request.Input)
}

func composeLines(ctx context.Context, uow ProductRepoFactory, requests []LineRequest) ([]orderline.Values, error) {
	values := make([]orderline.Values, 0, len(requests))
	for _, r := range requests {
		v, err := composeLine(ctx, uow, r)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// loadSaleTaxes loads the taxes referenced by a document and checks they are
// sale taxes.
func loadSaleTaxes(ctx context.Context, uow TaxRepoFactory, ids []kernel.UUID) (catalog.TaxSet, error) {
	if len(ids) == 0 {
		return catalog.NewTaxSet(), nil
	}

	loaded, err := uow.TaxRepository().GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	return services.SaleTaxes(ids, loaded)
}

func recomputeEnquiry(ctx context.Context, uow TaxRepoFactory, e *enquiry.Enquiry, settings Settings) error {
	taxes, err := loadSaleTaxes(ctx, uow, orderline.TaxIDs(e.Lines()))
	if err != nil {
		return err
	}
	return e.RecomputeAmounts(taxes, settings.Rounding)
}

func recomputeSaleOrder(ctx context.Context, uow TaxRepoFactory, o *saleorder.SaleOrder, settings Settings) error {
	taxes, err := loadSaleTaxes(ctx, uow, orderline.TaxIDs(o.Lines()))
	if err != nil {
		return err
	}
	return o.RecomputeAmounts(taxes, settings.Rounding)
}
