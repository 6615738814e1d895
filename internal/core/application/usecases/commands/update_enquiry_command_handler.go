package commands

import (
	"context"

	"enquiry/internal/core/domain/model/enquiry"
)

// UpdateEnquiryCommandHandler applies header changes to a non-cancelled enquiry.
type UpdateEnquiryCommandHandler struct {
	uowFactory EnquiryUoWFactory
}

func NewUpdateEnquiryCommandHandler(uowFactory EnquiryUoWFactory) UpdateEnquiryCommandHandler {
	return UpdateEnquiryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateEnquiryCommandHandler) Handle(ctx context.Context, cmd UpdateEnquiryCommand) error {
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

	repo := uow.EnquiryRepository()
	e, err := repo.Get(ctx, cmd.EnquiryID())
	if err != nil {
		return err
	}

	patch := cmd.Patch()
	changes := enquiry.HeaderChanges{
		DateOrder:  patch.DateOrder,
		UserID:     patch.UserID,
		Sequence:   patch.Sequence,
		MultiOrder: patch.MultiOrder,
	}
	if patch.PartnerID != nil {
		customer, err := uow.PartnerRepository().Get(ctx, *patch.PartnerID)
		if err != nil {
			return err
		}
		changes.Customer = customer
	}

	if err = e.UpdateHeader(changes); err != nil {
		return err
	}

	if err = repo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
