package commands

import (
	"context"

	"enquiry/internal/core/domain/model/enquiry"
	"enquiry/internal/core/domain/services"
)

// CreateAdditionalOrderCommandHandler handles the "multi orders" button.
type CreateAdditionalOrderCommandHandler struct {
	uowFactory UoWFactory
	settings   Settings
}

func NewCreateAdditionalOrderCommandHandler(uowFactory UoWFactory, settings Settings) CreateAdditionalOrderCommandHandler {
	return CreateAdditionalOrderCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
	}
}

func (h CreateAdditionalOrderCommandHandler) Handle(ctx context.Context, cmd CreateAdditionalOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return createOrderFromEnquiry(ctx, h.uowFactory, h.settings, cmd.EnquiryID(), cmd.SaleOrderID(),
		(*enquiry.Enquiry).EnsureCanCreateAdditionalOrder,
		services.EnquiryConfirmer.CreateAdditionalOrder,
	)
}
