package commands

import (
	"errors"
	"time"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/guard"
)

var ErrCreateSaleOrderCommandIsNotConstructed = errors.New(
	"CreateSaleOrderCommand must be created via NewCreateSaleOrderCommand constructor",
)

// CreateSaleOrderCommand creates a draft quotation outside of any enquiry.
type CreateSaleOrderCommand struct { //nolint:recvcheck //using for validation
	saleOrderID kernel.UUID
	partnerID   kernel.UUID
	dateOrder   time.Time
	lines       []LineRequest

	guard guard.ConstructorGuard
}

// NewCreateSaleOrderCommand creates the command. A zero date means now.
func NewCreateSaleOrderCommand(saleOrderID, partnerID kernel.UUID, dateOrder time.Time, lines []LineRequest) (CreateSaleOrderCommand, error) {
	if err := errors.Join(
		saleOrderID.Validate(),
		partnerID.Validate(),
		validateLineRequests(lines),
	); err != nil {
		return CreateSaleOrderCommand{}, err
	}
	return CreateSaleOrderCommand{
		saleOrderID: saleOrderID,
		partnerID:   partnerID,
		dateOrder:   dateOrder,
		lines:       copyLineRequests(lines),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateSaleOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateSaleOrderCommandIsNotConstructed)
}

func (c CreateSaleOrderCommand) SaleOrderID() kernel.UUID { return c.saleOrderID }
func (c CreateSaleOrderCommand) PartnerID() kernel.UUID { return c.partnerID }
func (c CreateSaleOrderCommand) DateOrder() time.Time { return c.dateOrder }
func (c CreateSaleOrderCommand) Lines() []LineRequest { return copyLineRequests(c.lines) }
