package orderline

import (
	"sort"

	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
)

// Sorted returns lines ordered by sequence, keeping insertion order for ties.
func Sorted(lines []*Line) []*Line {
	sorted := make([]*Line, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Sequence() < sorted[j].Sequence()
	})
	return sorted
}

// TaxIDs collects the distinct taxes referenced by lines.
func TaxIDs(lines []*Line) []kernel.UUID {
	ids := make([]kernel.UUID, 0)
	for _, l := range lines {
		for _, id := range l.values.TaxIDs {
			if !kernel.ContainsUUID(ids, id) {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// ProductIDs collects the distinct products referenced by lines.
func ProductIDs(values []Values) []kernel.UUID {
	ids := make([]kernel.UUID, 0)
	for _, v := range values {
		if v.ProductID != nil && !kernel.ContainsUUID(ids, *v.ProductID) {
			ids = append(ids, *v.ProductID)
		}
	}
	return ids
}

// ComputeAmounts refreshes every line and returns the document totals.
// Section and note lines are left out of the totals.
func ComputeAmounts(
	lines []*Line,
	taxes catalog.TaxSet,
	currency kernel.Currency,
	method catalog.RoundingMethod,
) (catalog.Totals, error) {
	bases := make([]catalog.BaseLine, 0, len(lines))
	for _, l := range lines {
		if err := l.Compute(taxes, currency); err != nil {
			return catalog.Totals{}, err
		}
		if l.IsLayout() {
			continue
		}

		base, err := l.BaseLine(taxes)
		if err != nil {
			return catalog.Totals{}, err
		}
		bases = append(bases, base)
	}

	return catalog.ComputeTotals(bases, currency, method), nil
}
