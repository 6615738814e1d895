package queries

import (
	"context"

	"enquiry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type ListPartnersQueryHandler struct {
	db *sqlx.DB
}

func NewListPartnersQueryHandler(db *sqlx.DB) ListPartnersQueryHandler {
	return ListPartnersQueryHandler{db: db}
}

func (h ListPartnersQueryHandler) Handle(ctx context.Context, query ListPartnersQuery) ([]PartnerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		ID    uuid.UUID `db:"id"`
		Name  string    `db:"name"`
		Email *string   `db:"email"`
		Type  string    `db:"type"`
	}
	if err := h.db.SelectContext(ctx, &rows, `SELECT id, name, email, type FROM partners ORDER BY name, id`); err != nil {
		return nil, err
	}

	partners := make([]PartnerView, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		p := PartnerView{ID: id, Name: row.Name, Type: row.Type}
		if row.Email != nil {
			p.Email = *row.Email
		}
		partners = append(partners, p)
	}
	return partners, nil
}

type ListProductsQueryHandler struct {
	db *sqlx.DB
}

func NewListProductsQueryHandler(db *sqlx.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `SELECT id, default_code, name, list_price, uom, tax_ids, sale_ok FROM products`
	if query.SaleOnly() {
		sqlQuery += ` WHERE sale_ok`
	}
	sqlQuery += ` ORDER BY name, id`

	var rows []struct {
		ID          uuid.UUID       `db:"id"`
		DefaultCode *string         `db:"default_code"`
		Name        string          `db:"name"`
		ListPrice   decimal.Decimal `db:"list_price"`
		UoM         *string         `db:"uom"`
		TaxIDs      pq.StringArray  `db:"tax_ids"`
		SaleOK      bool            `db:"sale_ok"`
	}
	if err := h.db.SelectContext(ctx, &rows, sqlQuery); err != nil {
		return nil, err
	}

	products := make([]ProductView, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		taxIDs, err := kernel.UUIDsFromStrings(row.TaxIDs)
		if err != nil {
			return nil, err
		}

		p := ProductView{
			ID:          id,
			Name:        row.Name,
			DisplayName: row.Name,
			ListPrice:   row.ListPrice,
			TaxIDs:      taxIDs,
			SaleOK:      row.SaleOK,
		}
		if row.DefaultCode != nil && *row.DefaultCode != "" {
			p.DefaultCode = *row.DefaultCode
			p.DisplayName = "[" + p.DefaultCode + "] " + row.Name
		}
		if row.UoM != nil {
			p.UoM = *row.UoM
		}
		products = append(products, p)
	}
	return products, nil
}

type ListTaxesQueryHandler struct {
	db *sqlx.DB
}

func NewListTaxesQueryHandler(db *sqlx.DB) ListTaxesQueryHandler {
	return ListTaxesQueryHandler{db: db}
}

func (h ListTaxesQueryHandler) Handle(ctx context.Context, query ListTaxesQuery) ([]TaxView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if query.Use() != nil {
		where = append(where, "type_tax_use = ?")
		args = append(args, string(*query.Use()))
	}

	var rows []taxRow
	sqlQuery := h.db.Rebind(`SELECT ` + taxColumns + ` FROM taxes` + whereClause(where) + ` ORDER BY sequence, name, id`)
	if err := h.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, err
	}

	taxes := make([]TaxView, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		taxes = append(taxes, TaxView{
			ID:           id,
			Name:         row.Name,
			AmountType:   row.AmountType,
			Amount:       row.Amount,
			PriceInclude: row.PriceInclude,
			TypeTaxUse:   row.TypeTaxUse,
			Sequence:     row.Sequence,
		})
	}
	return taxes, nil
}
