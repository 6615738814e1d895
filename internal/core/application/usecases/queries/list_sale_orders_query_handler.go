package queries

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type ListSaleOrdersQueryHandler struct {
	db *sqlx.DB
}

func NewListSaleOrdersQueryHandler(db *sqlx.DB) ListSaleOrdersQueryHandler {
	return ListSaleOrdersQueryHandler{db: db}
}

func (h ListSaleOrdersQueryHandler) Handle(ctx context.Context, query ListSaleOrdersQuery) ([]SaleOrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	f := query.Filter()
	filter := saleOrderFilter{PartnerID: f.PartnerID, HasEnquiry: f.HasEnquiry}
	if f.State != nil {
		filter.States = []string{f.State.String()}
	}
	return selectSaleOrders(ctx, h.db, filter)
}
