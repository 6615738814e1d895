package queries

import (
	"context"

	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/errs"

	"github.com/jmoiron/sqlx"
)

type GetSaleOrderQueryHandler struct {
	db       *sqlx.DB
	rounding catalog.RoundingMethod
}

func NewGetSaleOrderQueryHandler(db *sqlx.DB, rounding catalog.RoundingMethod) GetSaleOrderQueryHandler {
	return GetSaleOrderQueryHandler{db: db, rounding: rounding}
}

func (h GetSaleOrderQueryHandler) Handle(ctx context.Context, query GetSaleOrderQuery) (SaleOrderView, error) {
	if err := query.Validate(); err != nil {
		return SaleOrderView{}, err
	}

	found, err := selectSaleOrders(ctx, h.db, saleOrderFilter{IDs: []kernel.UUID{query.SaleOrderID()}})
	if err != nil {
		return SaleOrderView{}, err
	}
	if len(found) == 0 {
		return SaleOrderView{}, errs.NewObjectNotFoundError("sale order", query.SaleOrderID().String())
	}

	view := SaleOrderView{SaleOrderSummary: found[0]}
	view.Lines, err = selectLines(ctx, h.db, "sale_order_lines", "sale_order_id", view.ID)
	if err != nil {
		return SaleOrderView{}, err
	}
	view.TaxTotals, err = taxTotals(ctx, h.db, view.Lines, view.Currency, h.rounding)
	if err != nil {
		return SaleOrderView{}, err
	}
	return view, nil
}
