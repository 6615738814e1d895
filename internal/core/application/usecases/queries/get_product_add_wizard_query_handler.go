package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type GetProductAddWizardQueryHandler struct {
	db *sqlx.DB
}

func NewGetProductAddWizardQueryHandler(db *sqlx.DB) GetProductAddWizardQueryHandler {
	return GetProductAddWizardQueryHandler{db: db}
}

type productAddWizardRow struct {
	ID           uuid.UUID       `db:"id"`
	OrderType    string          `db:"order_type"`
	ProductID    uuid.UUID       `db:"product_id"`
	ProductName  string          `db:"product_name"`
	PriceUnit    decimal.Decimal `db:"price_unit"`
	Quantity     decimal.Decimal `db:"quantity"`
	UoM          *string         `db:"uom"`
	TaxIDs       pq.StringArray  `db:"tax_ids"`
	Currency     string          `db:"currency"`
	SaleOrderID  *uuid.UUID      `db:"sale_order_id"`
	SaleOrderIDs pq.StringArray  `db:"sale_order_ids"`
	Applied      bool            `db:"applied"`
	CreatedAt    time.Time       `db:"created_at"`
}

func (h GetProductAddWizardQueryHandler) Handle(
	ctx context.Context,
	query GetProductAddWizardQuery,
) (ProductAddWizardView, error) {
	if err := query.Validate(); err != nil {
		return ProductAddWizardView{}, err
	}

	var row productAddWizardRow
	err := h.db.GetContext(ctx, &row, h.db.Rebind(`SELECT id, order_type, product_id, product_name,
		price_unit, quantity, uom, tax_ids, currency, sale_order_id, sale_order_ids, applied, created_at
		FROM product_add_wizards WHERE id = ?`), query.WizardID().String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProductAddWizardView{}, errs.NewObjectNotFoundError("wizard", query.WizardID().String())
		}
		return ProductAddWizardView{}, err
	}
	return row.view()
}

func (r productAddWizardRow) view() (ProductAddWizardView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return ProductAddWizardView{}, err
	}
	productID, err := kernel.UUIDFromBytes(r.ProductID[:])
	if err != nil {
		return ProductAddWizardView{}, err
	}
	taxIDs, err := kernel.UUIDsFromStrings(r.TaxIDs)
	if err != nil {
		return ProductAddWizardView{}, err
	}
	currency, err := kernel.NewCurrency(r.Currency)
	if err != nil {
		return ProductAddWizardView{}, err
	}
	saleOrderID, err := optionalUUID(r.SaleOrderID)
	if err != nil {
		return ProductAddWizardView{}, err
	}
	saleOrderIDs, err := kernel.UUIDsFromStrings(r.SaleOrderIDs)
	if err != nil {
		return ProductAddWizardView{}, err
	}

	view := ProductAddWizardView{
		ID:           id,
		OrderType:    r.OrderType,
		ProductID:    productID,
		ProductName:  r.ProductName,
		PriceUnit:    r.PriceUnit,
		Quantity:     r.Quantity,
		TaxIDs:       taxIDs,
		Currency:     currency,
		SaleOrderID:  saleOrderID,
		SaleOrderIDs: saleOrderIDs,
		Applied:      r.Applied,
		CreatedAt:    r.CreatedAt,
	}
	if r.UoM != nil {
		view.UoM = *r.UoM
	}
	return view, nil
}
