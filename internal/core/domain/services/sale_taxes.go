package services

import (
	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/errs"
)

// SaleTaxes indexes the loaded taxes and checks that every id in required was
// loaded and that each of them may be used on sale lines.
func SaleTaxes(required []kernel.UUID, loaded []*catalog.Tax) (catalog.TaxSet, error) {
	set := catalog.NewTaxSet()
	for _, t := range loaded {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		set[t.ID()] = t
	}

	for _, id := range required {
		t, ok := set[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("tax", id.String())
		}
		if err := t.EnsureSale(); err != nil {
			return nil, err
		}
	}
	return set, nil
}
