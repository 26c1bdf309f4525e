package calculation

import (
	"github.com/rgehrsitz/netcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// NetIncomeCalculator turns gross income inputs into an IncomeBreakdown.
// It holds no per-call state and is safe for concurrent use.
type NetIncomeCalculator struct {
	CreditPointValue decimal.Decimal
	Brackets         []domain.TaxBracket
	logger           Logger
}

// NewNetIncomeCalculator creates a calculator with the default credit point value and a flat tax rate
func NewNetIncomeCalculator() *NetIncomeCalculator {
	return NewNetIncomeCalculatorWithConfig(domain.DefaultCalculatorConfig())
}

// NewNetIncomeCalculatorWithConfig creates a calculator from loaded settings
func NewNetIncomeCalculatorWithConfig(config domain.CalculatorConfig) *NetIncomeCalculator {
	brackets := append([]domain.TaxBracket(nil), config.TaxBrackets...)
	return &NetIncomeCalculator{
		CreditPointValue: config.CreditPointValue,
		Brackets:         brackets,
		logger:           NopLogger{},
	}
}

// SetLogger sets the logger used for debug tracing. A nil logger disables logging.
func (c *NetIncomeCalculator) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	c.logger = l
}

// Compute performs the net income estimate. Steps run in a fixed order:
// VAT split, credit total, taxable base, income tax, national insurance, net income.
func (c *NetIncomeCalculator) Compute(in domain.IncomeInputs) domain.IncomeBreakdown {
	log := c.logger
	if log == nil {
		log = NopLogger{}
	}

	incomeExclVAT, vatCollected := SplitVAT(in.GrossIncome, in.VATRate, in.IncludesVAT)
	log.Debugf("vat split: gross=%s includes_vat=%t excl=%s vat=%s", in.GrossIncome, in.IncludesVAT, incomeExclVAT, vatCollected)

	creditTotal := in.TaxPoints.Mul(c.CreditPointValue)
	taxable := incomeExclVAT.Sub(in.Expenses).Sub(in.Pension)

	incomeTax := decimal.Zero
	if taxable.GreaterThan(decimal.Zero) {
		incomeTax = decimal.Max(decimal.Zero, c.schedule(in.IncomeTaxRate).Tax(taxable).Sub(creditTotal))
	}

	// No floor here: a negative taxable base yields negative national insurance.
	nationalInsurance := taxable.Mul(in.NIRate)

	netIncome := incomeExclVAT.Sub(in.Expenses).Sub(in.Pension).Sub(incomeTax).Sub(nationalInsurance)
	log.Debugf("taxable=%s credits=%s income_tax=%s ni=%s net=%s", taxable, creditTotal, incomeTax, nationalInsurance, netIncome)

	return domain.IncomeBreakdown{
		GrossIncome:        in.GrossIncome,
		IncomeExcludingVAT: incomeExclVAT,
		VATCollected:       vatCollected,
		Expenses:           in.Expenses,
		Pension:            in.Pension,
		CreditTotal:        creditTotal,
		TaxableIncome:      taxable,
		IncomeTax:          incomeTax,
		NationalInsurance:  nationalInsurance,
		NetIncome:          netIncome,
	}
}

func (c *NetIncomeCalculator) schedule(flatRate decimal.Decimal) TaxSchedule {
	if len(c.Brackets) == 0 {
		return FlatSchedule(flatRate)
	}
	return TaxSchedule{Brackets: c.Brackets}
}

// SplitVAT separates gross income into its VAT-exclusive part and the VAT portion.
// When includesVAT is false the VAT is added on top of gross.
// An inclusive rate of -100% cannot be removed; gross is returned unchanged with zero VAT.
func SplitVAT(gross, rate decimal.Decimal, includesVAT bool) (exclusive, vat decimal.Decimal) {
	if includesVAT {
		divisor := decimal.NewFromInt(1).Add(rate)
		if divisor.IsZero() {
			return gross, decimal.Zero
		}
		exclusive = gross.Div(divisor)
		return exclusive, gross.Sub(exclusive)
	}
	return gross, gross.Mul(rate)
}
