package ports

import (
	"context"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/saleorder"
)

// SaleOrderRepository defines the persistence contract for sales orders.
type SaleOrderRepository interface {
	Add(ctx context.Context, aggregate *saleorder.SaleOrder) error

	// Update persists the header of an existing order and replaces its lines.
	Update(ctx context.Context, aggregate *saleorder.SaleOrder) error

	Get(ctx context.Context, id kernel.UUID) (*saleorder.SaleOrder, error)

	// GetMany loads the orders in ids order. A missing id is an ObjectNotFoundError.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*saleorder.SaleOrder, error)
}
