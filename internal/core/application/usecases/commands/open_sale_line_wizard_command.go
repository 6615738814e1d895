package commands

import (
	"errors"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/wizard"
	"enquiry/internal/pkg/guard"
)

var ErrOpenSaleLineWizardCommandIsNotConstructed = errors.New(
	"OpenSaleLineWizardCommand must be created via NewOpenSaleLineWizardCommand constructor",
)

// OpenSaleLineWizardCommand opens the "add lines from sales orders" wizard on
// an enquiry or a sales order.
type OpenSaleLineWizardCommand struct { //nolint:recvcheck //using for validation
	wizardID    kernel.UUID
	sourceType  wizard.SourceType
	targetModel wizard.TargetModel
	targetID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewOpenSaleLineWizardCommand creates the command. An empty source type
// means customer based.
func NewOpenSaleLineWizardCommand(
	wizardID kernel.UUID,
	sourceType wizard.SourceType,
	targetModel wizard.TargetModel,
	targetID kernel.UUID,
) (OpenSaleLineWizardCommand, error) {
	if sourceType == "" {
		sourceType = wizard.BasedOnCustomer
	}
	if err := errors.Join(
		wizardID.Validate(),
		sourceType.Validate(),
		targetModel.Validate(),
		targetID.Validate(),
	); err != nil {
		return OpenSaleLineWizardCommand{}, err
	}
	return OpenSaleLineWizardCommand{
		wizardID:    wizardID,
		sourceType:  sourceType,
		targetModel: targetModel,
		targetID:    targetID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c OpenSaleLineWizardCommand) Validate() error {
	return c.guard.Validate(ErrOpenSaleLineWizardCommandIsNotConstructed)
}

func (c OpenSaleLineWizardCommand) WizardID() kernel.UUID { return c.wizardID }
func (c OpenSaleLineWizardCommand) SourceType() wizard.SourceType { return c.sourceType }
func (c OpenSaleLineWizardCommand) TargetModel() wizard.TargetModel { return c.targetModel }
func (c OpenSaleLineWizardCommand) TargetID() kernel.UUID { return c.targetID }
