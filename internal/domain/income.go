package domain

import (
	"github.com/shopspring/decimal"
)

// IncomeInputs holds the flat set of values a net income estimate is computed from.
// Rates are fractions (0.17 for 17%).
type IncomeInputs struct {
	GrossIncome   decimal.Decimal `yaml:"gross_income" json:"gross_income"`
	IncludesVAT   bool            `yaml:"includes_vat" json:"includes_vat"` // true when GrossIncome already contains VAT
	VATRate       decimal.Decimal `yaml:"vat_rate" json:"vat_rate"`
	Age           decimal.Decimal `yaml:"age" json:"age"` // reserved, not used by the formula
	TaxPoints     decimal.Decimal `yaml:"tax_points" json:"tax_points"`
	Expenses      decimal.Decimal `yaml:"expenses" json:"expenses"`
	VATOnExpenses decimal.Decimal `yaml:"vat_on_expenses" json:"vat_on_expenses"` // reserved, not used by the formula
	Pension       decimal.Decimal `yaml:"pension" json:"pension"`
	IncomeTaxRate decimal.Decimal `yaml:"income_tax_rate" json:"income_tax_rate"`
	NIRate        decimal.Decimal `yaml:"ni_rate" json:"ni_rate"`
}

// IncomeBreakdown is the result of a single net income computation.
// Values are kept at full precision; rounding happens when a report is rendered.
type IncomeBreakdown struct {
	GrossIncome        decimal.Decimal `yaml:"gross_income" json:"gross_income"`
	IncomeExcludingVAT decimal.Decimal `yaml:"income_excluding_vat" json:"income_excluding_vat"`
	VATCollected       decimal.Decimal `yaml:"vat_collected" json:"vat_collected"`
	Expenses           decimal.Decimal `yaml:"expenses" json:"expenses"`
	Pension            decimal.Decimal `yaml:"pension" json:"pension"`
	CreditTotal        decimal.Decimal `yaml:"credit_total" json:"credit_total"`
	TaxableIncome      decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`
	IncomeTax          decimal.Decimal `yaml:"income_tax" json:"income_tax"`
	NationalInsurance  decimal.Decimal `yaml:"national_insurance" json:"national_insurance"`
	NetIncome          decimal.Decimal `yaml:"net_income" json:"net_income"`
}

// TotalDeductions returns everything subtracted from income excluding VAT
func (b IncomeBreakdown) TotalDeductions() decimal.Decimal {
	return b.Expenses.Add(b.Pension).Add(b.IncomeTax).Add(b.NationalInsurance)
}
