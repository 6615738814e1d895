package ports

import (
	"context"
	"time"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/wizard"
)

// SaleLineWizardRepository stores open sale line wizards.
type SaleLineWizardRepository interface {
	Add(ctx context.Context, aggregate *wizard.SaleLineWizard) error
	Update(ctx context.Context, aggregate *wizard.SaleLineWizard) error
	Get(ctx context.Context, id kernel.UUID) (*wizard.SaleLineWizard, error)

	// DeleteCreatedBefore removes wizards created before cutoff and returns
	// how many were removed.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ProductAddWizardRepository stores open product add wizards.
type ProductAddWizardRepository interface {
	Add(ctx context.Context, aggregate *wizard.ProductAddWizard) error
	Update(ctx context.Context, aggregate *wizard.ProductAddWizard) error
	Get(ctx context.Context, id kernel.UUID) (*wizard.ProductAddWizard, error)
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
