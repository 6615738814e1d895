package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a command. Repositories obtained
// after Begin share its transaction; the caller commits or rolls back.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit fails when no transaction is open.
	Commit(ctx context.Context) error
	// Rollback fails when no transaction is open, e.g. after Commit.
	Rollback(ctx context.Context) error

	EnquiryRepository() EnquiryRepository
	SaleOrderRepository() SaleOrderRepository
	PartnerRepository() PartnerRepository
	ProductRepository() ProductRepository
	TaxRepository() TaxRepository
	SaleLineWizardRepository() SaleLineWizardRepository
	ProductAddWizardRepository() ProductAddWizardRepository

	// Sequences returns the document number generator.
	Sequences() SequenceGenerator
}
