package commands

import (
	"context"
)

// AddEnquiryLineCommandHandler appends a line, filling product defaults, and
// recomputes the enquiry amounts.
type AddEnquiryLineCommandHandler struct {
	uowFactory EnquiryUoWFactory
	settings   Settings
}

func NewAddEnquiryLineCommandHandler(uowFactory EnquiryUoWFactory, settings Settings) AddEnquiryLineCommandHandler {
	return AddEnquiryLineCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
	}
}

func (h AddEnquiryLineCommandHandler) Handle(ctx context.Context, cmd AddEnquiryLineCommand) error {
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

	values, err := composeLine(ctx, uow, cmd.Line())
	if err != nil {
		return err
	}
	if _, err = e.InsertLine(cmd.LineID(), values); err != nil {
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
