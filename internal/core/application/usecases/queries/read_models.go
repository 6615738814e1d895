// Package queries contains the read side of the service. Handlers read the
// tables written by the postgres adapters directly with sqlx and never load
// aggregates, except where a domain rule decides what to return.
package queries

import (
	"context"
	"strings"
	"time"

	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// LineView is an enquiry line or a sales order line.
type LineView struct {
	ID            kernel.UUID
	Sequence      int
	ProductID     *kernel.UUID
	Name          string
	DisplayType   string
	PriceUnit     decimal.Decimal
	Quantity      decimal.Decimal
	UoM           string
	TaxIDs        []kernel.UUID
	PriceSubtotal decimal.Decimal
	PriceTax      decimal.Decimal
	PriceTotal    decimal.Decimal
}

// IsLayout reports a section or note line.
func (l LineView) IsLayout() bool {
	return l.DisplayType != ""
}

// TaxTotalView is the amount of one tax over a document.
type TaxTotalView struct {
	TaxID  kernel.UUID
	Name   string
	Base   decimal.Decimal
	Amount decimal.Decimal
}

// SaleOrderSummary is a sales order without its lines.
type SaleOrderSummary struct {
	ID            kernel.UUID
	Name          string
	PartnerID     kernel.UUID
	PartnerName   string
	DateOrder     time.Time
	State         string
	EnquiryID     *kernel.UUID
	Currency      kernel.Currency
	AmountUntaxed decimal.Decimal
	AmountTax     decimal.Decimal
	AmountTotal   decimal.Decimal
}

type lineRow struct {
	ID            uuid.UUID       `db:"id"`
	Sequence      int             `db:"sequence"`
	ProductID     *uuid.UUID      `db:"product_id"`
	Name          string          `db:"name"`
	DisplayType   string          `db:"display_type"`
	PriceUnit     decimal.Decimal `db:"price_unit"`
	Quantity      decimal.Decimal `db:"quantity"`
	UoM           *string         `db:"uom"`
	TaxIDs        pq.StringArray  `db:"tax_ids"`
	PriceSubtotal decimal.Decimal `db:"price_subtotal"`
	PriceTax      decimal.Decimal `db:"price_tax"`
	PriceTotal    decimal.Decimal `db:"price_total"`
}

const lineColumns = `id, sequence, product_id, name, display_type, price_unit, quantity,
	uom, tax_ids, price_subtotal, price_tax, price_total`

func (r lineRow) view() (LineView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return LineView{}, err
	}
	productID, err := optionalUUID(r.ProductID)
	if err != nil {
		return LineView{}, err
	}
	taxIDs, err := kernel.UUIDsFromStrings(r.TaxIDs)
	if err != nil {
		return LineView{}, err
	}

	v := LineView{
		ID:            id,
		Sequence:      r.Sequence,
		ProductID:     productID,
		Name:          r.Name,
		DisplayType:   r.DisplayType,
		PriceUnit:     r.PriceUnit,
		Quantity:      r.Quantity,
		TaxIDs:        taxIDs,
		PriceSubtotal: r.PriceSubtotal,
		PriceTax:      r.PriceTax,
		PriceTotal:    r.PriceTotal,
	}
	if r.UoM != nil {
		v.UoM = *r.UoM
	}
	return v, nil
}

// selectLines loads the lines of one document from table, parentColumn naming
// the document key.
func selectLines(ctx context.Context, db *sqlx.DB, table, parentColumn string, parentID kernel.UUID) ([]LineView, error) {
	var rows []lineRow
	query := db.Rebind(`SELECT ` + lineColumns + ` FROM ` + table + ` WHERE ` + parentColumn + ` = ? ORDER BY line_no`)
	if err := db.SelectContext(ctx, &rows, query, parentID.String()); err != nil {
		return nil, err
	}

	lines := make([]LineView, 0, len(rows))
	for _, row := range rows {
		l, err := row.view()
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, nil
}

type taxRow struct {
	ID           uuid.UUID       `db:"id"`
	Name         string          `db:"name"`
	AmountType   string          `db:"amount_type"`
	Amount       decimal.Decimal `db:"amount"`
	PriceInclude bool            `db:"price_include"`
	TypeTaxUse   string          `db:"type_tax_use"`
	Sequence     int             `db:"sequence"`
}

const taxColumns = `id, name, amount_type, amount, price_include, type_tax_use, sequence`

func (r taxRow) tax() (*catalog.Tax, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewTax(id, catalog.TaxParams{
		Name:         r.Name,
		AmountType:   catalog.AmountType(r.AmountType),
		Amount:       r.Amount,
		PriceInclude: r.PriceInclude,
		TypeTaxUse:   catalog.TaxUse(r.TypeTaxUse),
		Sequence:     r.Sequence,
	})
}

// taxTotals recomputes the per-tax breakdown of lines. It is not stored.
func taxTotals(
	ctx context.Context,
	db *sqlx.DB,
	lines []LineView,
	currency kernel.Currency,
	method catalog.RoundingMethod,
) ([]TaxTotalView, error) {
	ids := make([]string, 0)
	for _, l := range lines {
		for _, id := range l.TaxIDs {
			ids = append(ids, id.String())
		}
	}
	if len(ids) == 0 {
		return []TaxTotalView{}, nil
	}

	var rows []taxRow
	query := db.Rebind(`SELECT ` + taxColumns + ` FROM taxes WHERE id = ANY(?::uuid[])`)
	if err := db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return nil, err
	}

	taxes := make([]*catalog.Tax, 0, len(rows))
	for _, row := range rows {
		t, err := row.tax()
		if err != nil {
			return nil, err
		}
		taxes = append(taxes, t)
	}
	set := catalog.NewTaxSet(taxes...)

	bases := make([]catalog.BaseLine, 0, len(lines))
	for _, l := range lines {
		if l.IsLayout() {
			continue
		}
		resolved, err := set.Resolve(l.TaxIDs)
		if err != nil {
			return nil, err
		}
		bases = append(bases, catalog.BaseLine{PriceUnit: l.PriceUnit, Quantity: l.Quantity, Taxes: resolved})
	}

	totals := catalog.ComputeTotals(bases, currency, method)
	views := make([]TaxTotalView, 0, len(totals.Groups))
	for _, g := range totals.Groups {
		views = append(views, TaxTotalView{TaxID: g.TaxID, Name: g.Name, Base: g.Base, Amount: g.Amount})
	}
	return views, nil
}

type saleOrderRow struct {
	ID            uuid.UUID       `db:"id"`
	Name          string          `db:"name"`
	PartnerID     uuid.UUID       `db:"partner_id"`
	PartnerName   string          `db:"partner_name"`
	DateOrder     time.Time       `db:"date_order"`
	State         string          `db:"state"`
	EnquiryID     *uuid.UUID      `db:"enquiry_id"`
	Currency      string          `db:"currency"`
	AmountUntaxed decimal.Decimal `db:"amount_untaxed"`
	AmountTax     decimal.Decimal `db:"amount_tax"`
	AmountTotal   decimal.Decimal `db:"amount_total"`
}

const saleOrderSelect = `SELECT o.id, o.name, o.partner_id, COALESCE(p.name, '') AS partner_name,
	o.date_order, o.state, o.enquiry_id, o.currency, o.amount_untaxed, o.amount_tax, o.amount_total
	FROM sale_orders o
	LEFT JOIN partners p ON p.id = o.partner_id`

func (r saleOrderRow) summary() (SaleOrderSummary, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return SaleOrderSummary{}, err
	}
	partnerID, err := kernel.UUIDFromBytes(r.PartnerID[:])
	if err != nil {
		return SaleOrderSummary{}, err
	}
	enquiryID, err := optionalUUID(r.EnquiryID)
	if err != nil {
		return SaleOrderSummary{}, err
	}
	currency, err := kernel.NewCurrency(r.Currency)
	if err != nil {
		return SaleOrderSummary{}, err
	}

	return SaleOrderSummary{
		ID:            id,
		Name:          r.Name,
		PartnerID:     partnerID,
		PartnerName:   r.PartnerName,
		DateOrder:     r.DateOrder,
		State:         r.State,
		EnquiryID:     enquiryID,
		Currency:      currency,
		AmountUntaxed: r.AmountUntaxed,
		AmountTax:     r.AmountTax,
		AmountTotal:   r.AmountTotal,
	}, nil
}

// saleOrderFilter narrows sales order listings. Zero fields do not filter.
type saleOrderFilter struct {
	IDs        []kernel.UUID
	PartnerID  *kernel.UUID
	States     []string
	HasEnquiry *bool
	ExcludeID  *kernel.UUID
}

func selectSaleOrders(ctx context.Context, db *sqlx.DB, f saleOrderFilter) ([]SaleOrderSummary, error) {
	var (
		where []string
		args  []any
	)
	if f.IDs != nil {
		where = append(where, "o.id = ANY(?::uuid[])")
		args = append(args, pq.Array(uuidStrings(f.IDs)))
	}
	if f.PartnerID != nil {
		where = append(where, "o.partner_id = ?")
		args = append(args, f.PartnerID.String())
	}
	if len(f.States) > 0 {
		where = append(where, "o.state = ANY(?)")
		args = append(args, pq.Array(f.States))
	}
	if f.HasEnquiry != nil {
		if *f.HasEnquiry {
			where = append(where, "o.enquiry_id IS NOT NULL")
		} else {
			where = append(where, "o.enquiry_id IS NULL")
		}
	}
	if f.ExcludeID != nil {
		where = append(where, "o.id <> ?")
		args = append(args, f.ExcludeID.String())
	}

	var rows []saleOrderRow
	query := db.Rebind(saleOrderSelect + whereClause(where) + ` ORDER BY o.date_order DESC, o.name DESC, o.id`)
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	orders := make([]SaleOrderSummary, 0, len(rows))
	for _, row := range rows {
		o, err := row.summary()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func whereClause(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func uuidStrings(ids []kernel.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
