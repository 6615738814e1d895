package commands

import (
	"errors"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/wizard"
	"enquiry/internal/pkg/guard"
)

var ErrApplyProductAddWizardCommandIsNotConstructed = errors.New(
	"ApplyProductAddWizardCommand must be created via NewApplyProductAddWizardCommand constructor",
)

// ApplyProductAddWizardCommand adds the wizard product to the selected quotations.
type ApplyProductAddWizardCommand struct { //nolint:recvcheck //using for validation
	wizardID  kernel.UUID
	selection wizard.ProductAddSelection

	guard guard.ConstructorGuard
}

func NewApplyProductAddWizardCommand(wizardID kernel.UUID, selection wizard.ProductAddSelection) (ApplyProductAddWizardCommand, error) {
	if err := wizardID.Validate(); err != nil {
		return ApplyProductAddWizardCommand{}, err
	}
	if selection.OrderType != "" {
		if err := selection.OrderType.Validate(); err != nil {
			return ApplyProductAddWizardCommand{}, err
		}
	}
	selection.SaleOrderIDs = append([]kernel.UUID(nil), selection.SaleOrderIDs...)
	return ApplyProductAddWizardCommand{
		wizardID:  wizardID,
		selection: selection,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ApplyProductAddWizardCommand) Validate() error {
	return c.guard.Validate(ErrApplyProductAddWizardCommandIsNotConstructed)
}

func (c ApplyProductAddWizardCommand) WizardID() kernel.UUID { return c.wizardID }
func (c ApplyProductAddWizardCommand) Selection() wizard.ProductAddSelection { return c.selection }
