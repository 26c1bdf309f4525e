package calculation

import (
	"github.com/rgehrsitz/netcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxSchedule computes income tax before credits
type TaxSchedule struct {
	Brackets []domain.TaxBracket
}

// FlatSchedule returns the single-bracket schedule equivalent to taxable * rate
func FlatSchedule(rate decimal.Decimal) TaxSchedule {
	return TaxSchedule{Brackets: []domain.TaxBracket{{Threshold: decimal.Zero, Rate: rate}}}
}

// Tax applies the brackets cumulatively. Brackets must be sorted by ascending threshold;
// income below the first threshold is untaxed.
func (s TaxSchedule) Tax(taxable decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for i, bracket := range s.Brackets {
		if taxable.LessThanOrEqual(bracket.Threshold) {
			break
		}
		upper := taxable
		if i+1 < len(s.Brackets) {
			upper = decimal.Min(taxable, s.Brackets[i+1].Threshold)
		}
		inBracket := upper.Sub(bracket.Threshold)
		if inBracket.GreaterThan(decimal.Zero) {
			total = total.Add(inBracket.Mul(bracket.Rate))
		}
	}
	return total
}
