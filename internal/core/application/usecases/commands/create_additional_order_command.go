package commands

import (
	"errors"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/guard"
)

var ErrCreateAdditionalOrderCommandIsNotConstructed = errors.New(
	"CreateAdditionalOrderCommand must be created via NewCreateAdditionalOrderCommand constructor",
)

// CreateAdditionalOrderCommand creates one more sales order from a confirmed
// multi orders enquiry.
type CreateAdditionalOrderCommand struct { //nolint:recvcheck //using for validation
	enquiryID   kernel.UUID
	saleOrderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateAdditionalOrderCommand(enquiryID, saleOrderID kernel.UUID) (CreateAdditionalOrderCommand, error) {
	if err := errors.Join(enquiryID.Validate(), saleOrderID.Validate()); err != nil {
		return CreateAdditionalOrderCommand{}, err
	}
	return CreateAdditionalOrderCommand{
		enquiryID:   enquiryID,
		saleOrderID: saleOrderID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateAdditionalOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateAdditionalOrderCommandIsNotConstructed)
}

func (c CreateAdditionalOrderCommand) EnquiryID() kernel.UUID { return c.enquiryID }
func (c CreateAdditionalOrderCommand) SaleOrderID() kernel.UUID { return c.saleOrderID }
