package commands

import (
	"context"

	"enquiry/internal/core/domain/model/saleorder"
)

// CreateSaleOrderCommandHandler stores a numbered draft sales order.
type CreateSaleOrderCommandHandler struct {
	uowFactory SaleOrderUoWFactory
	settings   Settings
}

func NewCreateSaleOrderCommandHandler(uowFactory SaleOrderUoWFactory, settings Settings) CreateSaleOrderCommandHandler {
	return CreateSaleOrderCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
	}
}

func (h CreateSaleOrderCommandHandler) Handle(ctx context.Context, cmd CreateSaleOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.PartnerRepository().Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}
	if err = customer.EnsureCustomer(); err != nil {
		return err
	}

	lines, err := composeLines(ctx, uow, cmd.Lines())
	if err != nil {
		return err
	}

	number, err := uow.Sequences().NextValue(ctx, saleorder.NumberSequenceCode)
	if err != nil {
		return err
	}

	order, err := saleorder.NewSaleOrder(cmd.SaleOrderID(), saleorder.Params{
		Name:      number,
		Customer:  customer,
		DateOrder: cmd.DateOrder(),
		Currency:  h.settings.Currency,
		Lines:     lines,
	})
	if err != nil {
		return err
	}
	if err = recomputeSaleOrder(ctx, uow, order, h.settings); err != nil {
		return err
	}

	if err = uow.SaleOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
