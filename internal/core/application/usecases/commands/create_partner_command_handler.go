package commands

import (
	"context"

	"enquiry/internal/core/domain/model/partner"
)

// CreatePartnerCommandHandler stores a new partner.
type CreatePartnerCommandHandler struct {
	uowFactory MasterDataUoWFactory
}

func NewCreatePartnerCommandHandler(uowFactory MasterDataUoWFactory) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreatePartnerCommandHandler) Handle(ctx context.Context, cmd CreatePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := partner.NewPartner(cmd.PartnerID(), cmd.Name(), cmd.Email(), cmd.Type())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PartnerRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
