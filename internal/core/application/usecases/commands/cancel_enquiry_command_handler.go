package commands

import (
	"context"
)

// CancelEnquiryCommandHandler cancels an enquiry. Only pending enquiries can
// be cancelled; any other state is a state conflict.
type CancelEnquiryCommandHandler struct {
	uowFactory EnquiryUoWFactory
}

func NewCancelEnquiryCommandHandler(uowFactory EnquiryUoWFactory) CancelEnquiryCommandHandler {
	return CancelEnquiryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CancelEnquiryCommandHandler) Handle(ctx context.Context, cmd CancelEnquiryCommand) error {
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

	if err = e.Cancel(); err != nil {
		return err
	}

	if err = repo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
