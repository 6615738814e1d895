package commands

import (
	"context"

	"enquiry/internal/core/domain/model/enquiry"
)

// CreateEnquiryCommandHandler records a pending enquiry, fills its lines from
// the picked products and gives it the next enquiry number.
type CreateEnquiryCommandHandler struct {
	uowFactory EnquiryUoWFactory
	settings   Settings
}

func NewCreateEnquiryCommandHandler(uowFactory EnquiryUoWFactory, settings Settings) CreateEnquiryCommandHandler {
	return CreateEnquiryCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
	}
}

// Handle stores the enquiry with its amounts computed. The number is drawn
// only when no explicit name was given.
func (h CreateEnquiryCommandHandler) Handle(ctx context.Context, cmd CreateEnquiryCommand) error {
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

	params := cmd.Params()
	e, err := enquiry.NewEnquiry(cmd.EnquiryID(), enquiry.Params{
		Name:       params.Name,
		Sequence:   params.Sequence,
		Customer:   customer,
		UserID:     params.UserID,
		DateOrder:  params.DateOrder,
		MultiOrder: params.MultiOrder,
		Currency:   h.settings.Currency,
	})
	if err != nil {
		return err
	}

	values, err := composeLines(ctx, uow, cmd.Lines())
	if err != nil {
		return err
	}
	if err = e.AppendLines(values); err != nil {
		return err
	}
	if err = recomputeEnquiry(ctx, uow, e, h.settings); err != nil {
		return err
	}

	if e.HasDefaultName() {
		number, err := uow.Sequences().NextValue(ctx, enquiry.NumberSequenceCode)
		if err != nil {
			return err
		}
		if err = e.AssignNumber(number); err != nil {
			return err
		}
	}

	if err = uow.EnquiryRepository().Add(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
