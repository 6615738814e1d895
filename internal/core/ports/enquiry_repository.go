// Package ports defines the persistence contracts of the enquiry domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"enquiry/internal/core/domain/model/enquiry"
	"enquiry/internal/core/domain/model/kernel"
)

// EnquiryRepository defines the persistence contract for enquiry aggregates.
// An enquiry is always stored and loaded together with its lines.
type EnquiryRepository interface {
	// Add persists a new enquiry with its lines.
	Add(ctx context.Context, aggregate *enquiry.Enquiry) error

	// Update persists the header of an existing enquiry and replaces its lines.
	Update(ctx context.Context, aggregate *enquiry.Enquiry) error

	// Get retrieves an enquiry with its lines and created sales orders.
	Get(ctx context.Context, id kernel.UUID) (*enquiry.Enquiry, error)
}
