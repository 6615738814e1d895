package commands

import (
	"errors"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/wizard"
	"enquiry/internal/pkg/guard"
)

var ErrApplySaleLineWizardCommandIsNotConstructed = errors.New(
	"ApplySaleLineWizardCommand must be created via NewApplySaleLineWizardCommand constructor",
)

// ApplySaleLineWizardCommand copies the lines of the selected sales orders
// into the wizard target.
type ApplySaleLineWizardCommand struct { //nolint:recvcheck //using for validation
	wizardID  kernel.UUID
	selection wizard.SaleLineSelection

	guard guard.ConstructorGuard
}

func NewApplySaleLineWizardCommand(wizardID kernel.UUID, selection wizard.SaleLineSelection) (ApplySaleLineWizardCommand, error) {
	if err := wizardID.Validate(); err != nil {
		return ApplySaleLineWizardCommand{}, err
	}
	selection.SaleOrderIDs = append([]kernel.UUID(nil), selection.SaleOrderIDs...)
	return ApplySaleLineWizardCommand{
		wizardID:  wizardID,
		selection: selection,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ApplySaleLineWizardCommand) Validate() error {
	return c.guard.Validate(ErrApplySaleLineWizardCommandIsNotConstructed)
}

func (c ApplySaleLineWizardCommand) WizardID() kernel.UUID { return c.wizardID }
func (c ApplySaleLineWizardCommand) Selection() wizard.SaleLineSelection { return c.selection }
