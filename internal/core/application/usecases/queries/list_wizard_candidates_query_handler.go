package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/saleorder"
	"enquiry/internal/core/domain/model/wizard"
	"enquiry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ListWizardCandidatesQueryHandler evaluates the wizard's candidate criteria
// against the stored sales orders.
type ListWizardCandidatesQueryHandler struct {
	db *sqlx.DB
}

func NewListWizardCandidatesQueryHandler(db *sqlx.DB) ListWizardCandidatesQueryHandler {
	return ListWizardCandidatesQueryHandler{db: db}
}

func (h ListWizardCandidatesQueryHandler) Handle(
	ctx context.Context,
	query ListWizardCandidatesQuery,
) ([]SaleOrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		criteria wizard.CandidateCriteria
		err      error
	)
	switch query.Kind() {
	case SaleLineWizardKind:
		criteria, err = h.saleLineCriteria(ctx, query.WizardID())
	case ProductAddWizardKind:
		criteria, err = h.productAddCriteria(ctx, query.WizardID())
	}
	if err != nil {
		return nil, err
	}

	filter := saleOrderFilter{PartnerID: criteria.PartnerID, ExcludeID: criteria.ExcludeID}
	if criteria.FromEnquiryOnly {
		fromEnquiry := true
		filter.HasEnquiry = &fromEnquiry
	}
	if criteria.QuotationsOnly {
		filter.States = []string{saleorder.Draft.String(), saleorder.Sent.String()}
	}
	return selectSaleOrders(ctx, h.db, filter)
}

func (h ListWizardCandidatesQueryHandler) saleLineCriteria(
	ctx context.Context,
	id kernel.UUID,
) (wizard.CandidateCriteria, error) {
	var row struct {
		SourceType  string     `db:"source_type"`
		TargetModel string     `db:"target_model"`
		TargetID    uuid.UUID  `db:"target_id"`
		CustomerID  *uuid.UUID `db:"customer_id"`
		CreatedAt   time.Time  `db:"created_at"`
	}
	err := h.db.GetContext(ctx, &row, h.db.Rebind(
		`SELECT source_type, target_model, target_id, customer_id, created_at FROM sale_line_wizards WHERE id = ?`,
	), id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return wizard.CandidateCriteria{}, errs.NewObjectNotFoundError("wizard", id.String())
		}
		return wizard.CandidateCriteria{}, err
	}

	targetID, err := kernel.UUIDFromBytes(row.TargetID[:])
	if err != nil {
		return wizard.CandidateCriteria{}, err
	}
	customerID, err := optionalUUID(row.CustomerID)
	if err != nil {
		return wizard.CandidateCriteria{}, err
	}

	w, err := wizard.RestoreSaleLineWizard(id, wizard.SaleLineSnapshot{
		SourceType: wizard.SourceType(row.SourceType),
		Target: wizard.Target{
			Model:      wizard.TargetModel(row.TargetModel),
			ID:         targetID,
			CustomerID: customerID,
		},
		CreatedAt: row.CreatedAt,
	})
	if err != nil {
		return wizard.CandidateCriteria{}, err
	}
	return w.Criteria(), nil
}

func (h ListWizardCandidatesQueryHandler) productAddCriteria(
	ctx context.Context,
	id kernel.UUID,
) (wizard.CandidateCriteria, error) {
	var exists bool
	err := h.db.GetContext(ctx, &exists,
		h.db.Rebind(`SELECT EXISTS (SELECT 1 FROM product_add_wizards WHERE id = ?)`), id.String())
	if err != nil {
		return wizard.CandidateCriteria{}, err
	}
	if !exists {
		return wizard.CandidateCriteria{}, errs.NewObjectNotFoundError("wizard", id.String())
	}
	return wizard.CandidateCriteria{QuotationsOnly: true}, nil
}
