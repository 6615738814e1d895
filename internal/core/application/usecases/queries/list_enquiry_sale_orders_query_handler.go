package queries

import (
	"context"
	"database/sql"
	"errors"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/errs"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ListEnquirySaleOrdersQueryHandler returns the orders recorded on the enquiry,
// in the order they were created.
type ListEnquirySaleOrdersQueryHandler struct {
	db *sqlx.DB
}

func NewListEnquirySaleOrdersQueryHandler(db *sqlx.DB) ListEnquirySaleOrdersQueryHandler {
	return ListEnquirySaleOrdersQueryHandler{db: db}
}

func (h ListEnquirySaleOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListEnquirySaleOrdersQuery,
) ([]SaleOrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var raw pq.StringArray
	err := h.db.GetContext(ctx, &raw,
		h.db.Rebind(`SELECT sale_order_ids FROM enquiries WHERE id = ?`), query.EnquiryID().String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("enquiry", query.EnquiryID().String())
		}
		return nil, err
	}

	ids, err := kernel.UUIDsFromStrings(raw)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []SaleOrderSummary{}, nil
	}

	found, err := selectSaleOrders(ctx, h.db, saleOrderFilter{IDs: ids})
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]SaleOrderSummary, len(found))
	for _, o := range found {
		byID[o.ID] = o
	}
	orders := make([]SaleOrderSummary, 0, len(ids))
	for _, id := range ids {
		if o, ok := byID[id]; ok {
			orders = append(orders, o)
		}
	}
	return orders, nil
}
