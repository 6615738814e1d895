// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"enquiry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it uses.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	EnquiryRepoFactory interface {
		EnquiryRepository() ports.EnquiryRepository
	}

	SaleOrderRepoFactory interface {
		SaleOrderRepository() ports.SaleOrderRepository
	}

	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	TaxRepoFactory interface {
		TaxRepository() ports.TaxRepository
	}

	WizardRepoFactory interface {
		SaleLineWizardRepository() ports.SaleLineWizardRepository
		ProductAddWizardRepository() ports.ProductAddWizardRepository
	}

	SequenceFactory interface {
		Sequences() ports.SequenceGenerator
	}

	// MasterDataUoW manages partner, product and tax creation.
	MasterDataUoW interface {
		TxManager
		PartnerRepoFactory
		ProductRepoFactory
		TaxRepoFactory
	}

	MasterDataUoWFactory interface {
		Create() MasterDataUoW
	}

	// EnquiryUoW manages operations touching a single enquiry: creation,
	// header and line edits, cancellation.
	EnquiryUoW interface {
		TxManager
		EnquiryRepoFactory
		PartnerRepoFactory
		ProductRepoFactory
		TaxRepoFactory
		SequenceFactory
	}

	EnquiryUoWFactory interface {
		Create() EnquiryUoW
	}

	// SaleOrderUoW manages the creation of standalone sales orders.
	SaleOrderUoW interface {
		TxManager
		SaleOrderRepoFactory
		PartnerRepoFactory
		ProductRepoFactory
		TaxRepoFactory
		SequenceFactory
	}

	SaleOrderUoWFactory interface {
		Create() SaleOrderUoW
	}

	// WizardCleanupUoW manages the purge of expired wizards.
	WizardCleanupUoW interface {
		TxManager
		WizardRepoFactory
	}

	WizardCleanupUoWFactory interface {
		Create() WizardCleanupUoW
	}

	// UoW manages operations spanning enquiries, sales orders and wizards.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   enquiries := uow.EnquiryRepository()
	//   orders := uow.SaleOrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		EnquiryRepoFactory
		SaleOrderRepoFactory
		PartnerRepoFactory
		ProductRepoFactory
		TaxRepoFactory
		WizardRepoFactory
		SequenceFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
