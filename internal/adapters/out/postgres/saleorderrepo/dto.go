// Package saleorderrepo persists sales orders and their lines.
package saleorderrepo

import (
	"time"

	"enquiry/internal/adapters/out/postgres/pgconv"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/orderline"
	"enquiry/internal/core/domain/model/saleorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleOrderDTO struct {
	ID            uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Name          string             `gorm:"type:varchar(64);not null;index"`
	PartnerID     uuid.UUID          `gorm:"type:uuid;not null;index"`
	DateOrder     time.Time          `gorm:"not null"`
	State         string             `gorm:"type:varchar(16);not null;index"`
	EnquiryID     *uuid.UUID         `gorm:"type:uuid;index"`
	Currency      string             `gorm:"type:char(3);not null"`
	AmountUntaxed decimal.Decimal    `gorm:"type:numeric(20,6);not null"`
	AmountTax     decimal.Decimal    `gorm:"type:numeric(20,6);not null"`
	AmountTotal   decimal.Decimal    `gorm:"type:numeric(20,6);not null"`
	Lines         []SaleOrderLineDTO `gorm:"foreignKey:SaleOrderID;constraint:OnDelete:CASCADE"`
}

func (SaleOrderDTO) TableName() string {
	return "sale_orders"
}

type SaleOrderLineDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	SaleOrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	pgconv.LineColumns `gorm:"embedded"`
}

func (SaleOrderLineDTO) TableName() string {
	return "sale_order_lines"
}

func fromDomain(o *saleorder.SaleOrder) SaleOrderDTO {
	orderID := o.ID().Bytes()
	lines := make([]SaleOrderLineDTO, 0, len(o.Lines()))
	for i, l := range o.Lines() {
		lines = append(lines, SaleOrderLineDTO{
			ID:          l.ID().Bytes(),
			SaleOrderID: orderID,
			LineColumns: pgconv.LineFromDomain(i, l),
		})
	}

	return SaleOrderDTO{
		ID:            orderID,
		Name:          o.Name(),
		PartnerID:     o.PartnerID().Bytes(),
		DateOrder:     o.DateOrder(),
		State:         string(o.State()),
		EnquiryID:     pgconv.OptionalUUID(o.EnquiryID()),
		Currency:      o.Currency().Code(),
		AmountUntaxed: o.AmountUntaxed(),
		AmountTax:     o.AmountTax(),
		AmountTotal:   o.AmountTotal(),
		Lines:         lines,
	}
}

func toDomain(dto SaleOrderDTO) (*saleorder.SaleOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	partnerID, err := kernel.UUIDFromBytes(dto.PartnerID[:])
	if err != nil {
		return nil, err
	}
	enquiryID, err := pgconv.UUIDFromOptional(dto.EnquiryID)
	if err != nil {
		return nil, err
	}
	currency, err := kernel.NewCurrency(dto.Currency)
	if err != nil {
		return nil, err
	}

	lines := make([]*orderline.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		l, lineErr := pgconv.LineToDomain(lineDTO.ID, lineDTO.LineColumns)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, l)
	}

	return saleorder.RestoreSaleOrder(id, saleorder.Snapshot{
		Name:          dto.Name,
		PartnerID:     partnerID,
		DateOrder:     dto.DateOrder,
		State:         saleorder.State(dto.State),
		EnquiryID:     enquiryID,
		Currency:      currency,
		Lines:         lines,
		AmountUntaxed: dto.AmountUntaxed,
		AmountTax:     dto.AmountTax,
		AmountTotal:   dto.AmountTotal,
	})
}
