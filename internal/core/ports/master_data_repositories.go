package ports

import (
	"context"

	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/partner"
)

// PartnerRepository stores customers and their addresses.
type PartnerRepository interface {
	Add(ctx context.Context, aggregate *partner.Partner) error
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)
}

// ProductRepository stores catalog products.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *catalog.Product) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)
}

// TaxRepository stores taxes.
type TaxRepository interface {
	Add(ctx context.Context, aggregate *catalog.Tax) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Tax, error)

	// GetMany loads the existing taxes among ids. Unknown ids are skipped;
	// callers decide whether a missing tax is an error.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.Tax, error)
}
