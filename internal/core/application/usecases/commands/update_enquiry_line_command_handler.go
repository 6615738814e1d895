package commands

import (
	"context"
)

// UpdateEnquiryLineCommandHandler replaces a line and recomputes the enquiry amounts.
type UpdateEnquiryLineCommandHandler struct {
	uowFactory EnquiryUoWFactory
	settings   Settings
}

func NewUpdateEnquiryLineCommandHandler(uowFactory EnquiryUoWFactory, settings Settings) UpdateEnquiryLineCommandHandler {
	return UpdateEnquiryLineCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
	}
}

func (h UpdateEnquiryLineCommandHandler) Handle(ctx context.Context, cmd UpdateEnquiryLineCommand) error {
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
	if _, err = e.Line(cmd.LineID()); err != nil {
		return err
	}

	values, err := composeLine(ctx, uow, cmd.Line())
	if err != nil {
		return err
	}
	if err = e.UpdateLine(cmd.LineID(), values); err != nil {
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
