package queries

import (
	"errors"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/errs"
	"enquiry/internal/pkg/guard"
)

var (
	ErrListWizardCandidatesQueryIsNotConstructed = errors.New(
		"ListWizardCandidatesQuery must be created via NewListWizardCandidatesQuery constructor",
	)
)

// WizardKind names the wizard whose candidate orders are listed.
type WizardKind string

const (
	SaleLineWizardKind   WizardKind = "sale_line"
	ProductAddWizardKind WizardKind = "product_add"
)

// ListWizardCandidatesQuery lists the sales orders a wizard may select: source
// orders for a sale line wizard, quotations for a product add wizard.
type ListWizardCandidatesQuery struct {
	kind     WizardKind
	wizardID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewListWizardCandidatesQuery(kind WizardKind, wizardID kernel.UUID) (ListWizardCandidatesQuery, error) {
	if kind != SaleLineWizardKind && kind != ProductAddWizardKind {
		return ListWizardCandidatesQuery{}, errs.NewValueIsInvalidError("kind")
	}
	if err := wizardID.Validate(); err != nil {
		return ListWizardCandidatesQuery{}, errs.NewValueIsRequiredErrorWithCause("wizardID", err)
	}
	return ListWizardCandidatesQuery{kind: kind, wizardID: wizardID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListWizardCandidatesQuery) Validate() error {
	return q.guard.Validate(ErrListWizardCandidatesQueryIsNotConstructed)
}

func (q ListWizardCandidatesQuery) Kind() WizardKind { return q.kind }
func (q ListWizardCandidatesQuery) WizardID() kernel.UUID { return q.wizardID }
