// Package masterdatarepo persists partners, products and taxes.
package masterdatarepo

import (
	"enquiry/internal/adapters/out/postgres/pgconv"
	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type PartnerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Email string    `gorm:"type:varchar(255)"`
	Type  string    `gorm:"type:varchar(16);not null"`
}

func (PartnerDTO) TableName() string {
	return "partners"
}

type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DefaultCode string          `gorm:"type:varchar(64)"`
	Name        string          `gorm:"type:varchar(255);not null"`
	ListPrice   decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	UoM         string          `gorm:"column:uom;type:varchar(64)"`
	TaxIDs      pq.StringArray  `gorm:"column:tax_ids;type:text[]"`
	SaleOK      bool            `gorm:"not null;default:true"`
}

func (ProductDTO) TableName() string {
	return "products"
}

type TaxDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null"`
	AmountType   string          `gorm:"type:varchar(16);not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	PriceInclude bool            `gorm:"not null;default:false"`
	TypeTaxUse   string          `gorm:"type:varchar(16);not null"`
	Sequence     int             `gorm:"type:int;not null"`
}

func (TaxDTO) TableName() string {
	return "taxes"
}

func partnerFromDomain(p *partner.Partner) PartnerDTO {
	return PartnerDTO{
		ID:    p.ID().Bytes(),
		Name:  p.Name(),
		Email: p.Email(),
		Type:  string(p.Type()),
	}
}

func partnerToDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return partner.RestorePartner(id, dto.Name, dto.Email, partner.Type(dto.Type))
}

func productFromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID().Bytes(),
		DefaultCode: p.DefaultCode(),
		Name:        p.Name(),
		ListPrice:   p.ListPrice(),
		UoM:         p.UoM(),
		TaxIDs:      pgconv.UUIDArray(p.TaxIDs()),
		SaleOK:      p.SaleOK(),
	}
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	taxIDs, err := pgconv.UUIDsFromArray(dto.TaxIDs)
	if err != nil {
		return nil, err
	}
	return catalog.NewProduct(id, catalog.ProductParams{
		DefaultCode: dto.DefaultCode,
		Name:        dto.Name,
		ListPrice:   dto.ListPrice,
		UoM:         dto.UoM,
		TaxIDs:      taxIDs,
		SaleOK:      dto.SaleOK,
	})
}

func taxFromDomain(t *catalog.Tax) TaxDTO {
	return TaxDTO{
		ID:           t.ID().Bytes(),
		Name:         t.Name(),
		AmountType:   string(t.AmountType()),
		Amount:       t.Amount(),
		PriceInclude: t.PriceInclude(),
		TypeTaxUse:   string(t.TypeTaxUse()),
		Sequence:     t.Sequence(),
	}
}

func taxToDomain(dto TaxDTO) (*catalog.Tax, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewTax(id, catalog.TaxParams{
		Name:         dto.Name,
		AmountType:   catalog.AmountType(dto.AmountType),
		Amount:       dto.Amount,
		PriceInclude: dto.PriceInclude,
		TypeTaxUse:   catalog.TaxUse(dto.TypeTaxUse),
		Sequence:     dto.Sequence,
	})
}
