// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, nil)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.EnquiryRepository().Update(ctx, e); err != nil {
//	    return err
//	}
//	if err := uow.SaleOrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns at most one transaction. Goroutines must not
// share an instance.
package postgres

import (
	"context"

	"enquiry/internal/adapters/out/postgres/enquiryrepo"
	"enquiry/internal/adapters/out/postgres/masterdatarepo"
	"enquiry/internal/adapters/out/postgres/saleorderrepo"
	"enquiry/internal/adapters/out/postgres/sequencerepo"
	"enquiry/internal/adapters/out/postgres/wizardrepo"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/ports"

	"gorm.io/gorm"
)

// TrackedAggregate is an aggregate added or updated during the unit of work.
type TrackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

var _ ports.UnitOfWorkFactory = (*GormUnitOfWorkFactory)(nil)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db      *gorm.DB
	formats map[string]sequencerepo.Format
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// A nil formats map uses sequencerepo.DefaultFormats.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db, nil)
func NewGormUnitOfWorkFactory(db *gorm.DB, formats map[string]sequencerepo.Format) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, formats: formats}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create returning the concrete type.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		formats:           f.formats,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the repositories
// it hands out. Repositories obtained before Begin run outside the transaction.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	formats           map[string]sequencerepo.Format
	trackedAggregates []TrackedAggregate
}

// Begin starts a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when
// no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when
// no transaction is open, which is the case after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) EnquiryRepository() ports.EnquiryRepository {
	return enquiryrepo.NewGormEnquiryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SaleOrderRepository() ports.SaleOrderRepository {
	return saleorderrepo.NewGormSaleOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PartnerRepository() ports.PartnerRepository {
	return masterdatarepo.NewGormPartnerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return masterdatarepo.NewGormProductRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TaxRepository() ports.TaxRepository {
	return masterdatarepo.NewGormTaxRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SaleLineWizardRepository() ports.SaleLineWizardRepository {
	return wizardrepo.NewGormSaleLineWizardRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductAddWizardRepository() ports.ProductAddWizardRepository {
	return wizardrepo.NewGormProductAddWizardRepository(uow.conn(), uow)
}

// Sequences draws numbers inside the current transaction. PostgreSQL
// sequences are not transactional, so a rolled back operation leaves a gap.
func (uow *GormUnitOfWork) Sequences() ports.SequenceGenerator {
	return sequencerepo.NewPostgresSequenceGenerator(uow.conn(), uow.formats)
}

// TrackAggregate registers an aggregate written by one of the repositories.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates written since the unit of work was
// created or last rolled back.
func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	return append([]TrackedAggregate(nil), uow.trackedAggregates...)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
