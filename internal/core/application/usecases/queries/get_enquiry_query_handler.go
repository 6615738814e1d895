package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// GetEnquiryQueryHandler reads an enquiry, its lines and recomputes the tax
// breakdown with the configured rounding method.
type GetEnquiryQueryHandler struct {
	db       *sqlx.DB
	rounding catalog.RoundingMethod
}

func NewGetEnquiryQueryHandler(db *sqlx.DB, rounding catalog.RoundingMethod) GetEnquiryQueryHandler {
	return GetEnquiryQueryHandler{db: db, rounding: rounding}
}

type enquiryRow struct {
	ID            uuid.UUID       `db:"id"`
	Name          string          `db:"name"`
	Sequence      int             `db:"sequence"`
	PartnerID     uuid.UUID       `db:"partner_id"`
	PartnerName   string          `db:"partner_name"`
	Email         *string         `db:"email"`
	UserID        *uuid.UUID      `db:"user_id"`
	DateOrder     time.Time       `db:"date_order"`
	State         string          `db:"state"`
	MultiOrder    bool            `db:"multi_order"`
	SaleOrderID   *uuid.UUID      `db:"sale_order_id"`
	SaleOrderIDs  pq.StringArray  `db:"sale_order_ids"`
	Currency      string          `db:"currency"`
	AmountUntaxed decimal.Decimal `db:"amount_untaxed"`
	AmountTax     decimal.Decimal `db:"amount_tax"`
	AmountTotal   decimal.Decimal `db:"amount_total"`
}

const enquirySelect = `SELECT e.id, e.name, e.sequence, e.partner_id, COALESCE(p.name, '') AS partner_name,
	e.email, e.user_id, e.date_order, e.state, e.multi_order, e.sale_order_id, e.sale_order_ids,
	e.currency, e.amount_untaxed, e.amount_tax, e.amount_total
	FROM enquiries e
	LEFT JOIN partners p ON p.id = e.partner_id`

func (h GetEnquiryQueryHandler) Handle(ctx context.Context, query GetEnquiryQuery) (EnquiryView, error) {
	if err := query.Validate(); err != nil {
		return EnquiryView{}, err
	}

	var row enquiryRow
	err := h.db.GetContext(ctx, &row, h.db.Rebind(enquirySelect+` WHERE e.id = ?`), query.EnquiryID().String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EnquiryView{}, errs.NewObjectNotFoundError("enquiry", query.EnquiryID().String())
		}
		return EnquiryView{}, err
	}

	view, err := row.view()
	if err != nil {
		return EnquiryView{}, err
	}

	view.Lines, err = selectLines(ctx, h.db, "enquiry_lines", "enquiry_id", view.ID)
	if err != nil {
		return EnquiryView{}, err
	}

	view.TaxTotals, err = taxTotals(ctx, h.db, view.Lines, view.Currency, h.rounding)
	if err != nil {
		return EnquiryView{}, err
	}

	return view, nil
}

func (r enquiryRow) view() (EnquiryView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return EnquiryView{}, err
	}
	partnerID, err := kernel.UUIDFromBytes(r.PartnerID[:])
	if err != nil {
		return EnquiryView{}, err
	}
	userID, err := optionalUUID(r.UserID)
	if err != nil {
		return EnquiryView{}, err
	}
	saleOrderID, err := optionalUUID(r.SaleOrderID)
	if err != nil {
		return EnquiryView{}, err
	}
	saleOrderIDs, err := kernel.UUIDsFromStrings(r.SaleOrderIDs)
	if err != nil {
		return EnquiryView{}, err
	}
	currency, err := kernel.NewCurrency(r.Currency)
	if err != nil {
		return EnquiryView{}, err
	}

	v := EnquiryView{
		ID:            id,
		Name:          r.Name,
		Sequence:      r.Sequence,
		PartnerID:     partnerID,
		PartnerName:   r.PartnerName,
		UserID:        userID,
		DateOrder:     r.DateOrder,
		State:         r.State,
		MultiOrder:    r.MultiOrder,
		SaleOrderID:   saleOrderID,
		SaleOrderIDs:  saleOrderIDs,
		Currency:      currency,
		AmountUntaxed: r.AmountUntaxed,
		AmountTax:     r.AmountTax,
		AmountTotal:   r.AmountTotal,
	}
	if r.Email != nil {
		v.Email = *r.Email
	}
	if saleOrderID != nil {
		v.SaleCount = len(saleOrderIDs)
	}
	return v, nil
}
