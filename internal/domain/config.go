package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultCreditPointValue is the value of one tax credit point in currency units
var DefaultCreditPointValue = decimal.NewFromInt(235)

// DefaultCurrencySymbol prefixes every rendered amount
const DefaultCurrencySymbol = "₪"

// TaxBracket is one step of a progressive income tax schedule.
// Rate applies to the part of taxable income above Threshold and below the next bracket's Threshold.
type TaxBracket struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
}

// CalculatorConfig contains the settings that are not part of a single estimate
type CalculatorConfig struct {
	CreditPointValue decimal.Decimal `yaml:"credit_point_value" json:"credit_point_value"`
	CurrencySymbol   string          `yaml:"currency_symbol" json:"currency_symbol"`

	// TaxBrackets replaces the flat income tax rate when non-empty
	TaxBrackets []TaxBracket `yaml:"tax_brackets,omitempty" json:"tax_brackets,omitempty"`
}

// Configuration is the top-level structure of a calculator configuration file
type Configuration struct {
	Calculator CalculatorConfig `yaml:"calculator" json:"calculator"`
}

// DefaultCalculatorConfig returns the built-in calculator settings
func DefaultCalculatorConfig() CalculatorConfig {
	return CalculatorConfig{
		CreditPointValue: DefaultCreditPointValue,
		CurrencySymbol:   DefaultCurrencySymbol,
	}
}
