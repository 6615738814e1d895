// Package wizardrepo stores the transient wizard records until they are applied
// or purged.
package wizardrepo

import (
	"time"

	"enquiry/internal/adapters/out/postgres/pgconv"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/wizard"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type SaleLineWizardDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SourceType   string         `gorm:"type:varchar(16);not null"`
	TargetModel  string         `gorm:"type:varchar(32);not null"`
	TargetID     uuid.UUID      `gorm:"type:uuid;not null"`
	CustomerID   *uuid.UUID     `gorm:"type:uuid"`
	SaleOrderID  *uuid.UUID     `gorm:"type:uuid"`
	MultiOrder   bool           `gorm:"not null;default:false"`
	ClearAdd     bool           `gorm:"not null;default:false"`
	SaleOrderIDs pq.StringArray `gorm:"column:sale_order_ids;type:text[]"`
	Applied      bool           `gorm:"not null;default:false"`
	CreatedAt    time.Time      `gorm:"not null;index"`
}

func (SaleLineWizardDTO) TableName() string {
	return "sale_line_wizards"
}

type ProductAddWizardDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderType    string          `gorm:"type:varchar(16);not null"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName  string          `gorm:"type:text;not null"`
	PriceUnit    decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	Quantity     decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	UoM          string          `gorm:"column:uom;type:varchar(64)"`
	TaxIDs       pq.StringArray  `gorm:"column:tax_ids;type:text[]"`
	Currency     string          `gorm:"type:char(3);not null"`
	SaleOrderID  *uuid.UUID      `gorm:"type:uuid"`
	SaleOrderIDs pq.StringArray  `gorm:"column:sale_order_ids;type:text[]"`
	Applied      bool            `gorm:"not null;default:false"`
	CreatedAt    time.Time       `gorm:"not null;index"`
}

func (ProductAddWizardDTO) TableName() string {
	return "product_add_wizards"
}

func saleLineFromDomain(w *wizard.SaleLineWizard) SaleLineWizardDTO {
	target := w.Target()
	selection := w.Selection()
	return SaleLineWizardDTO{
		ID:           w.ID().Bytes(),
		SourceType:   string(w.SourceType()),
		TargetModel:  string(target.Model),
		TargetID:     target.ID.Bytes(),
		CustomerID:   pgconv.OptionalUUID(target.CustomerID),
		SaleOrderID:  pgconv.OptionalUUID(selection.SaleOrderID),
		MultiOrder:   selection.MultiOrder,
		ClearAdd:     selection.ClearAdd,
		SaleOrderIDs: pgconv.UUIDArray(selection.SaleOrderIDs),
		Applied:      w.IsApplied(),
		CreatedAt:    w.CreatedAt(),
	}
}

func saleLineToDomain(dto SaleLineWizardDTO) (*wizard.SaleLineWizard, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	targetID, err := kernel.UUIDFromBytes(dto.TargetID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := pgconv.UUIDFromOptional(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	saleOrderID, err := pgconv.UUIDFromOptional(dto.SaleOrderID)
	if err != nil {
		return nil, err
	}
	saleOrderIDs, err := pgconv.UUIDsFromArray(dto.SaleOrderIDs)
	if err != nil {
		return nil, err
	}

	return wizard.RestoreSaleLineWizard(id, wizard.SaleLineSnapshot{
		SourceType: wizard.SourceType(dto.SourceType),
		Target: wizard.Target{
			Model:      wizard.TargetModel(dto.TargetModel),
			ID:         targetID,
			CustomerID: customerID,
		},
		Selection: wizard.SaleLineSelection{
			SaleOrderID:  saleOrderID,
			MultiOrder:   dto.MultiOrder,
			ClearAdd:     dto.ClearAdd,
			SaleOrderIDs: saleOrderIDs,
		},
		Applied:   dto.Applied,
		CreatedAt: dto.CreatedAt,
	})
}

func productAddFromDomain(w *wizard.ProductAddWizard) ProductAddWizardDTO {
	return ProductAddWizardDTO{
		ID:           w.ID().Bytes(),
		OrderType:    string(w.OrderType()),
		ProductID:    w.ProductID().Bytes(),
		ProductName:  w.ProductName(),
		PriceUnit:    w.PriceUnit(),
		Quantity:     w.Quantity(),
		UoM:          w.UoM(),
		TaxIDs:       pgconv.UUIDArray(w.TaxIDs()),
		Currency:     w.Currency().Code(),
		SaleOrderID:  pgconv.OptionalUUID(w.SaleOrderID()),
		SaleOrderIDs: pgconv.UUIDArray(w.SaleOrderIDs()),
		Applied:      w.IsApplied(),
		CreatedAt:    w.CreatedAt(),
	}
}

func productAddToDomain(dto ProductAddWizardDTO) (*wizard.ProductAddWizard, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	taxIDs, err := pgconv.UUIDsFromArray(dto.TaxIDs)
	if err != nil {
		return nil, err
	}
	currency, err := kernel.NewCurrency(dto.Currency)
	if err != nil {
		return nil, err
	}
	saleOrderID, err := pgconv.UUIDFromOptional(dto.SaleOrderID)
	if err != nil {
		return nil, err
	}
	saleOrderIDs, err := pgconv.UUIDsFromArray(dto.SaleOrderIDs)
	if err != nil {
		return nil, err
	}

	return wizard.RestoreProductAddWizard(id, wizard.ProductAddSnapshot{
		OrderType:    wizard.OrderType(dto.OrderType),
		ProductID:    productID,
		ProductName:  dto.ProductName,
		PriceUnit:    dto.PriceUnit,
		Quantity:     dto.Quantity,
		UoM:          dto.UoM,
		TaxIDs:       taxIDs,
		Currency:     currency,
		SaleOrderID:  saleOrderID,
		SaleOrderIDs: saleOrderIDs,
		Applied:      dto.Applied,
		CreatedAt:    dto.CreatedAt,
	})
}
