package saleorderrepo

import (
	"context"
	"errors"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/saleorder"
	"enquiry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSaleOrderRepository implements SaleOrderRepository using GORM.
type GormSaleOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormSaleOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormSaleOrderRepository {
	return &GormSaleOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormSaleOrderRepository) Add(ctx context.Context, aggregate *saleorder.SaleOrder) error {
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
func (r *GormSaleOrderRepository) Update(ctx context.Context, aggregate *saleorder.SaleOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&SaleOrderDTO{}).Where("id = ?", dto.ID).Select("*").Omit("Lines").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("sale order", aggregate.ID().String())
	}

	if err := db.Where("sale_order_id = ?", dto.ID).Delete(&SaleOrderLineDTO{}).Error; err != nil {
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

func (r *GormSaleOrderRepository) Get(ctx context.Context, id kernel.UUID) (*saleorder.SaleOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SaleOrderDTO
	err := r.withLines(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sale order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany loads the orders in the order of ids.
func (r *GormSaleOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*saleorder.SaleOrder, error) {
	if len(ids) == 0 {
		return []*saleorder.SaleOrder{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []SaleOrderDTO
	if err := r.withLines(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]SaleOrderDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	orders := make([]*saleorder.SaleOrder, 0, len(ids))
	for _, id := range ids {
		dto, ok := byID[id.Bytes()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("sale order", id.String())
		}
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormSaleOrderRepository) withLines(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("line_no") })
}
