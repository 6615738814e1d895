// Package pgconv holds the column mappings shared by the postgres repositories:
// identifier arrays, optional identifiers and the order line columns used by
// both enquiries and sales orders.
package pgconv

import (
	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/orderline"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// UUIDArray stores identifiers in a postgres text[] column.
func UUIDArray(ids []kernel.UUID) pq.StringArray {
	arr := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		arr = append(arr, id.String())
	}
	return arr
}

// UUIDsFromArray reads identifiers stored with UUIDArray.
func UUIDsFromArray(arr pq.StringArray) ([]kernel.UUID, error) {
	return kernel.UUIDsFromStrings(arr)
}

// OptionalUUID maps an optional identifier to a nullable uuid column.
func OptionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// UUIDFromOptional reads a nullable uuid column.
func UUIDFromOptional(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// LineColumns are the columns of an enquiry line or a sales order line.
// Position keeps the display order of lines sharing a sequence.
type LineColumns struct {
	Position      int             `gorm:"column:line_no;type:int;not null"`
	Sequence      int             `gorm:"type:int;not null"`
	ProductID     *uuid.UUID      `gorm:"type:uuid;index"`
	Name          string          `gorm:"type:text;not null"`
	DisplayType   string          `gorm:"type:varchar(16);not null;default:''"`
	PriceUnit     decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	Quantity      decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	UoM           string          `gorm:"column:uom;type:varchar(64)"`
	TaxIDs        pq.StringArray  `gorm:"column:tax_ids;type:text[]"`
	PriceSubtotal decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	PriceTax      decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	PriceTotal    decimal.Decimal `gorm:"type:numeric(20,6);not null"`
}

// LineFromDomain maps a line at position.
func LineFromDomain(position int, l *orderline.Line) LineColumns {
	v := l.Values()
	return LineColumns{
		Position:      position,
		Sequence:      v.Sequence,
		ProductID:     OptionalUUID(v.ProductID),
		Name:          v.Name,
		DisplayType:   string(v.DisplayType),
		PriceUnit:     v.PriceUnit,
		Quantity:      v.Quantity,
		UoM:           v.UoM,
		TaxIDs:        UUIDArray(v.TaxIDs),
		PriceSubtotal: l.PriceSubtotal(),
		PriceTax:      l.PriceTax(),
		PriceTotal:    l.PriceTotal(),
	}
}

// LineToDomain restores the line id with its stored amounts.
func LineToDomain(id uuid.UUID, c LineColumns) (*orderline.Line, error) {
	lineID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	productID, err := UUIDFromOptional(c.ProductID)
	if err != nil {
		return nil, err
	}
	taxIDs, err := UUIDsFromArray(c.TaxIDs)
	if err != nil {
		return nil, err
	}

	return orderline.RestoreLine(lineID, orderline.Values{
		Sequence:    c.Sequence,
		ProductID:   productID,
		Name:        c.Name,
		DisplayType: orderline.DisplayType(c.DisplayType),
		PriceUnit:   c.PriceUnit,
		Quantity:    c.Quantity,
		UoM:         c.UoM,
		TaxIDs:      taxIDs,
	}, catalog.LineAmounts{
		Subtotal: c.PriceSubtotal,
		Tax:      c.PriceTax,
		Total:    c.PriceTotal,
	})
}
