package queries

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type ListEnquiriesQueryHandler struct {
	db *sqlx.DB
}

func NewListEnquiriesQueryHandler(db *sqlx.DB) ListEnquiriesQueryHandler {
	return ListEnquiriesQueryHandler{db: db}
}

func (h ListEnquiriesQueryHandler) Handle(ctx context.Context, query ListEnquiriesQuery) ([]EnquirySummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if query.State() != nil {
		where = append(where, "e.state = ?")
		args = append(args, query.State().String())
	}
	if query.PartnerID() != nil {
		where = append(where, "e.partner_id = ?")
		args = append(args, query.PartnerID().String())
	}

	var rows []enquiryRow
	sqlQuery := h.db.Rebind(enquirySelect + whereClause(where) + ` ORDER BY e.sequence, e.date_order, e.id`)
	if err := h.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, err
	}

	enquiries := make([]EnquirySummary, 0, len(rows))
	for _, row := range rows {
		v, err := row.view()
		if err != nil {
			return nil, err
		}
		enquiries = append(enquiries, EnquirySummary{
			ID:          v.ID,
			Name:        v.Name,
			Sequence:    v.Sequence,
			PartnerID:   v.PartnerID,
			PartnerName: v.PartnerName,
			DateOrder:   v.DateOrder,
			State:       v.State,
			MultiOrder:  v.MultiOrder,
			SaleCount:   v.SaleCount,
			Currency:    v.Currency,
			AmountTotal: v.AmountTotal,
		})
	}

	return enquiries, nil
}
