// Package enquiryrepo persists enquiry aggregates and their lines with GORM.
// This package implements the repository pattern for the enquiry domain aggregate, handling
// the conversion between domain entities and database representations.
package enquiryrepo

import (
	"time"

	"enquiry/internal/adapters/out/postgres/pgconv"
	"enquiry/internal/core/domain/model/enquiry"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/orderline"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// EnquiryDTO represents the database structure for persisting enquiry aggregates.
type EnquiryDTO struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name          string           `gorm:"type:varchar(64);not null;index"`
	Sequence      int              `gorm:"type:int;not null"`
	PartnerID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	Email         string           `gorm:"type:varchar(255)"`
	UserID        *uuid.UUID       `gorm:"type:uuid"`
	DateOrder     time.Time        `gorm:"not null"`
	State         string           `gorm:"type:varchar(16);not null;index"`
	SaleOrderID   *uuid.UUID       `gorm:"type:uuid"`
	SaleOrderIDs  pq.StringArray   `gorm:"column:sale_order_ids;type:text[]"`
	MultiOrder    bool             `gorm:"not null;default:false"`
	Currency      string           `gorm:"type:char(3);not null"`
	AmountUntaxed decimal.Decimal  `gorm:"type:numeric(20,6);not null"`
	AmountTax     decimal.Decimal  `gorm:"type:numeric(20,6);not null"`
	AmountTotal   decimal.Decimal  `gorm:"type:numeric(20,6);not null"`
	Lines         []EnquiryLineDTO `gorm:"foreignKey:EnquiryID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "enquiry_dtos".
func (EnquiryDTO) TableName() string {
	return "enquiries"
}

// EnquiryLineDTO is a line of an enquiry.
type EnquiryLineDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	EnquiryID          uuid.UUID `gorm:"type:uuid;not null;index"`
	pgconv.LineColumns `gorm:"embedded"`
}

func (EnquiryLineDTO) TableName() string {
	return "enquiry_lines"
}

func fromDomain(e *enquiry.Enquiry) EnquiryDTO {
	enquiryID := e.ID().Bytes()
	lines := make([]EnquiryLineDTO, 0, len(e.Lines()))
	for i, l := range e.Lines() {
		lines = append(lines, EnquiryLineDTO{
			ID:          l.ID().Bytes(),
			EnquiryID:   enquiryID,
			LineColumns: pgconv.LineFromDomain(i, l),
		})
	}

	return EnquiryDTO{
		ID:            enquiryID,
		Name:          e.Name(),
		Sequence:      e.Sequence(),
		PartnerID:     e.PartnerID().Bytes(),
		Email:         e.Email(),
		UserID:        pgconv.OptionalUUID(e.UserID()),
		DateOrder:     e.DateOrder(),
		State:         string(e.State()),
		SaleOrderID:   pgconv.OptionalUUID(e.SaleOrderID()),
		SaleOrderIDs:  pgconv.UUIDArray(e.SaleOrderIDs()),
		MultiOrder:    e.MultiOrder(),
		Currency:      e.Currency().Code(),
		AmountUntaxed: e.AmountUntaxed(),
		AmountTax:     e.AmountTax(),
		AmountTotal:   e.AmountTotal(),
		Lines:         lines,
	}
}

// toDomain rebuilds the aggregate. dto.Lines must be ordered by position.
func toDomain(dto EnquiryDTO) (*enquiry.Enquiry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	partnerID, err := kernel.UUIDFromBytes(dto.PartnerID[:])
	if err != nil {
		return nil, err
	}
	userID, err := pgconv.UUIDFromOptional(dto.UserID)
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

	return enquiry.RestoreEnquiry(id, enquiry.Snapshot{
		Name:          dto.Name,
		Sequence:      dto.Sequence,
		PartnerID:     partnerID,
		Email:         dto.Email,
		UserID:        userID,
		DateOrder:     dto.DateOrder,
		State:         enquiry.State(dto.State),
		Lines:         lines,
		SaleOrderID:   saleOrderID,
		SaleOrderIDs:  saleOrderIDs,
		MultiOrder:    dto.MultiOrder,
		Currency:      currency,
		AmountUntaxed: dto.AmountUntaxed,
		AmountTax:     dto.AmountTax,
		AmountTotal:   dto.AmountTotal,
	})
}
