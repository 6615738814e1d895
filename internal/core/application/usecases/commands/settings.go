package commands

import (
	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
)

// Settings are the company wide values documents are computed with.
type Settings struct {
	Currency kernel.Currency
	Rounding catalog.RoundingMethod
}

// Validate checks the currency and the rounding method.
func (s Settings) Validate() error {
	if err := s.Currency.Validate(); err != nil {
		return err
	}
	return s.Rounding.Validate()
}
