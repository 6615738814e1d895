package masterdatarepo

import (
	"context"
	"errors"

	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/partner"
	"enquiry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormPartnerRepository implements PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{db: db, tracker: tracker}
}

func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := partnerFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	var dto PartnerDTO
	if err := first(ctx, r.db, &dto, "partner", id); err != nil {
		return nil, err
	}
	return partnerToDomain(dto)
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{db: db, tracker: tracker}
}

func (r *GormProductRepository) Add(ctx context.Context, aggregate *catalog.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	var dto ProductDTO
	if err := first(ctx, r.db, &dto, "product", id); err != nil {
		return nil, err
	}
	return productToDomain(dto)
}

// GormTaxRepository implements TaxRepository using GORM.
type GormTaxRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormTaxRepository(db *gorm.DB, tracker aggregateTracker) *GormTaxRepository {
	return &GormTaxRepository{db: db, tracker: tracker}
}

func (r *GormTaxRepository) Add(ctx context.Context, aggregate *catalog.Tax) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := taxFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTaxRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Tax, error) {
	var dto TaxDTO
	if err := first(ctx, r.db, &dto, "tax", id); err != nil {
		return nil, err
	}
	return taxToDomain(dto)
}

// GetMany skips unknown ids. Taxes come back in sequence order.
func (r *GormTaxRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.Tax, error) {
	if len(ids) == 0 {
		return []*catalog.Tax{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []TaxDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Order("sequence, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	taxes := make([]*catalog.Tax, 0, len(dtos))
	for _, dto := range dtos {
		t, err := taxToDomain(dto)
		if err != nil {
			return nil, err
		}
		taxes = append(taxes, t)
	}
	return taxes, nil
}

func first(ctx context.Context, db *gorm.DB, dest any, object string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	err := db.WithContext(ctx).First(dest, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(object, id.String())
	}
	return err
}
