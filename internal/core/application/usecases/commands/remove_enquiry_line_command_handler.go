package commands

import (
	"context"
)

// RemoveEnquiryLineCommandHandler deletes a line and recomputes the enquiry amounts.
type RemoveEnquiryLineCommandHandler struct {
	uowFactory EnquiryUoWFactory
	settings   Settings
}

func NewRemoveEnquiryLineCommandHandler(uowFactory EnquiryUoWFactory, settings Settings) RemoveEnquiryLineCommandHandler {
	return RemoveEnquiryLineCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
	}
}

func (h RemoveEnquiryLineCommandHandler) Handle(ctx context.Context, cmd RemoveEnquiryLineCommand) error {
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

	if err = e.RemoveLine(cmd.LineID()); err != nil {
		return err
	}
	if err = recomputeEnquiry(ctx, uow, e, h.settings); err != nil {
		return err
	}

	if err = repo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
