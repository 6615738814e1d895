package wizardrepo

import (
	"context"
	"errors"
	"time"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/wizard"
	"enquiry/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormSaleLineWizardRepository implements SaleLineWizardRepository using GORM.
type GormSaleLineWizardRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormSaleLineWizardRepository(db *gorm.DB, tracker aggregateTracker) *GormSaleLineWizardRepository {
	return &GormSaleLineWizardRepository{db: db, tracker: tracker}
}

func (r *GormSaleLineWizardRepository) Add(ctx context.Context, aggregate *wizard.SaleLineWizard) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := saleLineFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSaleLineWizardRepository) Update(ctx context.Context, aggregate *wizard.SaleLineWizard) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := saleLineFromDomain(aggregate)
	if err := update(ctx, r.db, &SaleLineWizardDTO{}, &dto, aggregate.ID()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSaleLineWizardRepository) Get(ctx context.Context, id kernel.UUID) (*wizard.SaleLineWizard, error) {
	var dto SaleLineWizardDTO
	if err := first(ctx, r.db, &dto, id); err != nil {
		return nil, err
	}
	return saleLineToDomain(dto)
}

func (r *GormSaleLineWizardRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return deleteCreatedBefore(ctx, r.db, &SaleLineWizardDTO{}, cutoff)
}

// GormProductAddWizardRepository implements ProductAddWizardRepository using GORM.
type GormProductAddWizardRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormProductAddWizardRepository(db *gorm.DB, tracker aggregateTracker) *GormProductAddWizardRepository {
	return &GormProductAddWizardRepository{db: db, tracker: tracker}
}

func (r *GormProductAddWizardRepository) Add(ctx context.Context, aggregate *wizard.ProductAddWizard) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productAddFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductAddWizardRepository) Update(ctx context.Context, aggregate *wizard.ProductAddWizard) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productAddFromDomain(aggregate)
	if err := update(ctx, r.db, &ProductAddWizardDTO{}, &dto, aggregate.ID()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductAddWizardRepository) Get(ctx context.Context, id kernel.UUID) (*wizard.ProductAddWizard, error) {
	var dto ProductAddWizardDTO
	if err := first(ctx, r.db, &dto, id); err != nil {
		return nil, err
	}
	return productAddToDomain(dto)
}

func (r *GormProductAddWizardRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return deleteCreatedBefore(ctx, r.db, &ProductAddWizardDTO{}, cutoff)
}

func first(ctx context.Context, db *gorm.DB, dest any, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	err := db.WithContext(ctx).First(dest, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("wizard", id.String())
	}
	return err
}

func update(ctx context.Context, db *gorm.DB, model, dto any, id kernel.UUID) error {
	result := db.WithContext(ctx).Model(model).Where("id = ?", id.Bytes()).Select("*").Updates(dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("wizard", id.String())
	}
	return nil
}

func deleteCreatedBefore(ctx context.Context, db *gorm.DB, model any, cutoff time.Time) (int64, error) {
	result := db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(model)
	return result.RowsAffected, result.Error
}
