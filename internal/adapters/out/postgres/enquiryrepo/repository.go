package enquiryrepo

import (
	"context"
	"errors"

	"enquiry/internal/core/domain/model/enquiry"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEnquiryRepository implements EnquiryRepository using GORM.
type GormEnquiryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEnquiryRepository creates a new GORM enquiry repository.
func NewGormEnquiryRepository(db *gorm.DB, tracker aggregateTracker) *GormEnquiryRepository {
	return &GormEnquiryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new enquiry with its lines.
func (r *GormEnquiryRepository) Add(ctx context.Context, aggregate *enquiry.Enquiry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the header and replaces the stored lines.
func (r *GormEnquiryRepository) Update(ctx context.Context, aggregate *enquiry.Enquiry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&EnquiryDTO{}).Where("id = ?", dto.ID).Select("*").Omit("Lines").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("enquiry", aggregate.ID().String())
	}

	if err := db.Where("enquiry_id = ?", dto.ID).Delete(&EnquiryLineDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Lines) > 0 {
		if err := db.Create(&dto.Lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an enquiry by ID with its lines.
func (r *GormEnquiryRepository) Get(ctx context.Context, id kernel.UUID) (*enquiry.Enquiry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EnquiryDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("line_no") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("enquiry", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
