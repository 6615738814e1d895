package commands

import (
	"context"

	"enquiry/internal/core/domain/model/enquiry"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/partner"
	"enquiry/internal/core/domain/model/saleorder"
	"enquiry/internal/core/domain/services"
)

// ConfirmEnquiryCommandHandler creates the first sales order of an enquiry.
//
// The enquiry is checked before a sales order number is drawn, so a refused
// confirmation does not consume a number.
type ConfirmEnquiryCommandHandler struct {
	uowFactory UoWFactory
	settings   Settings
}

func NewConfirmEnquiryCommandHandler(uowFactory UoWFactory, settings Settings) ConfirmEnquiryCommandHandler {
	return ConfirmEnquiryCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
	}
}

func (h ConfirmEnquiryCommandHandler) Handle(ctx context.Context, cmd ConfirmEnquiryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return createOrderFromEnquiry(ctx, h.uowFactory, h.settings, cmd.EnquiryID(), cmd.SaleOrderID(),
		(*enquiry.Enquiry).EnsureConfirmable,
		services.EnquiryConfirmer.Confirm,
	)
}

// createOrderFromEnquiry runs the shared flow of confirmation and additional
// orders: load, check, number, build, compute, store.
func createOrderFromEnquiry(
	ctx context.Context,
	uowFactory UoWFactory,
	settings Settings,
	enquiryID, saleOrderID kernel.UUID,
	ensure func(*enquiry.Enquiry) error,
	create func(services.EnquiryConfirmer, *enquiry.Enquiry, *partner.Partner, services.NewOrder) (*saleorder.SaleOrder, error),
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	enquiries := uow.EnquiryRepository()
	e, err := enquiries.Get(ctx, enquiryID)
	if err != nil {
		return err
	}
	if err = ensure(e); err != nil {
		return err
	}

	customer, err := uow.PartnerRepository().Get(ctx, e.PartnerID())
	if err != nil {
		return err
	}

	number, err := uow.Sequences().NextValue(ctx, saleorder.NumberSequenceCode)
	if err != nil {
		return err
	}

	order, err := create(services.NewEnquiryConfirmer(), e, customer, services.NewOrder{ID: saleOrderID, Name: number})
	if err != nil {
		return err
	}
	if err = recomputeSaleOrder(ctx, uow, order, settings); err != nil {
		return err
	}

	if err = uow.SaleOrderRepository().Add(ctx, order); err != nil {
		return err
	}
	if err = enquiries.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
