package output

import (
	"github.com/shopspring/decimal"
)

// line is one labeled amount in display order
type line struct {
	Label  string
	Amount decimal.Decimal
}

func reportLines(r Report) []line {
	b := r.Breakdown
	return []line{
		{"Gross Income", b.GrossIncome},
		{"VAT Collected", b.VATCollected},
		{"Expenses", b.Expenses},
		{"Pension Contributions", b.Pension},
		{"Income Tax", b.IncomeTax},
		{"National Insurance", b.NationalInsurance},
	}
}

const netIncomeLabel = "Estimated Net Income"

// reportView is the serialized shape shared by the json and yaml formatters.
// Amounts are rounded to two decimals here and nowhere earlier.
type reportView struct {
	Currency           string `json:"currency" yaml:"currency"`
	GrossIncome        string `json:"gross_income" yaml:"gross_income"`
	IncomeExcludingVAT string `json:"income_excluding_vat" yaml:"income_excluding_vat"`
	VATCollected       string `json:"vat_collected" yaml:"vat_collected"`
	Expenses           string `json:"expenses" yaml:"expenses"`
	Pension            string `json:"pension" yaml:"pension"`
	CreditTotal        string `json:"credit_total" yaml:"credit_total"`
	TaxableIncome      string `json:"taxable_income" yaml:"taxable_income"`
	IncomeTax          string `json:"income_tax" yaml:"income_tax"`
	NationalInsurance  string `json:"national_insurance" yaml:"national_insurance"`
	NetIncome          string `json:"net_income" yaml:"net_income"`
}

func newReportView(r Report) reportView {
	b := r.Breakdown
	return reportView{
		Currency:           r.Currency,
		GrossIncome:        b.GrossIncome.StringFixed(2),
		IncomeExcludingVAT: b.IncomeExcludingVAT.StringFixed(2),
		VATCollected:       b.VATCollected.StringFixed(2),
		Expenses:           b.Expenses.StringFixed(2),
		Pension:            b.Pension.StringFixed(2),
		CreditTotal:        b.CreditTotal.StringFixed(2),
		TaxableIncome:      b.TaxableIncome.StringFixed(2),
		IncomeTax:          b.IncomeTax.StringFixed(2),
		NationalInsurance:  b.NationalInsurance.StringFixed(2),
		NetIncome:          b.NetIncome.StringFixed(2),
	}
}
