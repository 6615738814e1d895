package catalog

import (
	"fmt"
	"sort"

	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// RoundingMethod decides when tax amounts are rounded to the currency scale.
type RoundingMethod string

const (
	// RoundPerLine rounds the untaxed amount and every tax amount of each line.
	RoundPerLine RoundingMethod = "round_per_line"
	// RoundGlobally keeps line amounts unrounded and rounds the document totals once.
	RoundGlobally RoundingMethod = "round_globally"
)

func (m RoundingMethod) Validate() error {
	if m != RoundPerLine && m != RoundGlobally {
		return errs.NewValueIsInvalidErrorWithCause("roundingMethod", fmt.Errorf("%q is not a valid rounding method", string(m)))
	}
	return nil
}

// TaxSet indexes the taxes referenced by a document.
type TaxSet map[kernel.UUID]*Tax

// NewTaxSet indexes taxes by id.
func NewTaxSet(taxes ...*Tax) TaxSet {
	set := make(TaxSet, len(taxes))
	for _, t := range taxes {
		set[t.ID()] = t
	}
	return set
}

// Resolve returns the taxes for ids in computation order (sequence, then name).
func (s TaxSet) Resolve(ids []kernel.UUID) ([]*Tax, error) {
	taxes := make([]*Tax, 0, len(ids))
	for _, id := range ids {
		t, ok := s[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("tax", id.String())
		}
		taxes = append(taxes, t)
	}
	sortTaxes(taxes)
	return taxes, nil
}

// BaseLine is the input of the tax computation for one document line.
type BaseLine struct {
	PriceUnit decimal.Decimal
	Quantity  decimal.Decimal
	Taxes     []*Tax
}

// TaxAmount is the share of one tax on a line or a document.
type TaxAmount struct {
	TaxID  kernel.UUID
	Name   string
	Base   decimal.Decimal
	Amount decimal.Decimal
}

// LineAmounts are the stored amounts of a single line.
type LineAmounts struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	Taxes    []TaxAmount
}

// ZeroLineAmounts is used for section and note lines.
func ZeroLineAmounts() LineAmounts {
	return LineAmounts{Subtotal: decimal.Zero, Tax: decimal.Zero, Total: decimal.Zero}
}

// Totals are the document level amounts with their per-tax breakdown.
type Totals struct {
	AmountUntaxed decimal.Decimal
	AmountTax     decimal.Decimal
	AmountTotal   decimal.Decimal
	Groups        []TaxAmount
}

// ComputeLine computes one line on its own, always rounding per line.
func ComputeLine(line BaseLine, currency kernel.Currency) LineAmounts {
	return computeLine(line, currency, true)
}

// ComputeTotals computes the document totals of lines with the given method.
func ComputeTotals(lines []BaseLine, currency kernel.Currency, method RoundingMethod) Totals {
	roundEach := method != RoundGlobally

	untaxed := decimal.Zero
	seen := make([]*Tax, 0)
	sums := make(map[kernel.UUID]TaxAmount)

	for _, line := range lines {
		amounts := computeLine(line, currency, roundEach)
		untaxed = untaxed.Add(amounts.Subtotal)

		for _, t := range line.Taxes {
			if _, ok := sums[t.ID()]; !ok {
				seen = append(seen, t)
				sums[t.ID()] = TaxAmount{TaxID: t.ID(), Name: t.Name(), Base: decimal.Zero, Amount: decimal.Zero}
			}
		}
		for _, ta := range amounts.Taxes {
			sum := sums[ta.TaxID]
			sum.Base = sum.Base.Add(ta.Base)
			sum.Amount = sum.Amount.Add(ta.Amount)
			sums[ta.TaxID] = sum
		}
	}

	sortTaxes(seen)
	groups := make([]TaxAmount, 0, len(seen))
	taxTotal := decimal.Zero
	for _, t := range seen {
		group := sums[t.ID()]
		group.Base = currency.Round(group.Base)
		group.Amount = currency.Round(group.Amount)
		taxTotal = taxTotal.Add(group.Amount)
		groups = append(groups, group)
	}
	untaxed = currency.Round(untaxed)

	return Totals{
		AmountUntaxed: untaxed,
		AmountTax:     taxTotal,
		AmountTotal:   untaxed.Add(taxTotal),
		Groups:        groups,
	}
}

func computeLine(line BaseLine, currency kernel.Currency, roundEach bool) LineAmounts {
	round := func(d decimal.Decimal) decimal.Decimal {
		if roundEach {
			return currency.Round(d)
		}
		return d
	}

	taxes := make([]*Tax, len(line.Taxes))
	copy(taxes, line.Taxes)
	sortTaxes(taxes)

	base := line.PriceUnit.Mul(line.Quantity)

	// Price-included taxes are taken out of the base first.
	fixedIncluded := decimal.Zero
	rateIncluded := decimal.Zero
	lastIncludedPercent := -1
	for i, t := range taxes {
		if !t.PriceInclude() {
			continue
		}
		if t.IsPercent() {
			rateIncluded = rateIncluded.Add(t.Rate())
			lastIncludedPercent = i
		} else {
			fixedIncluded = fixedIncluded.Add(t.Amount().Mul(line.Quantity))
		}
	}

	untaxed := base.Sub(fixedIncluded)
	if rateIncluded.IsPositive() {
		untaxed = untaxed.Div(decimal.NewFromInt(1).Add(rateIncluded))
	}
	untaxed = round(untaxed)

	// The last included percent tax absorbs the rounding remainder so that
	// untaxed plus included taxes always gives back the base.
	includedRemainder := base.Sub(untaxed).Sub(round(fixedIncluded))

	amounts := make([]TaxAmount, 0, len(taxes))
	taxTotal := decimal.Zero
	for i, t := range taxes {
		var amount decimal.Decimal
		switch {
		case t.IsPercent() && t.PriceInclude() && i == lastIncludedPercent:
			amount = includedRemainder
		case t.IsPercent():
			amount = round(untaxed.Mul(t.Rate()))
			if t.PriceInclude() {
				includedRemainder = includedRemainder.Sub(amount)
			}
		default:
			amount = round(t.Amount().Mul(line.Quantity))
		}

		amounts = append(amounts, TaxAmount{TaxID: t.ID(), Name: t.Name(), Base: untaxed, Amount: amount})
		taxTotal = taxTotal.Add(amount)
	}

	return LineAmounts{
		Subtotal: untaxed,
		Tax:      taxTotal,
		Total:    untaxed.Add(taxTotal),
		Taxes:    amounts,
	}
}

func sortTaxes(taxes []*Tax) {
	sort.SliceStable(taxes, func(i, j int) bool {
		if taxes[i].Sequence() != taxes[j].Sequence() {
			return taxes[i].Sequence() < taxes[j].Sequence()
		}
		return taxes[i].Name() < taxes[j].Name()
	})
}
