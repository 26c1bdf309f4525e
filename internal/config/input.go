package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/netcalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of calculator configuration and input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// DefaultConfiguration returns the configuration used when no file is given
func DefaultConfiguration() *domain.Configuration {
	return &domain.Configuration{Calculator: domain.DefaultCalculatorConfig()}
}

// LoadFromFile loads calculator configuration from a YAML file.
// Keys missing from the file keep their default values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates configuration YAML
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := DefaultConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if config.Calculator.CurrencySymbol == "" {
		config.Calculator.CurrencySymbol = domain.DefaultCurrencySymbol
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateCalculator(&config.Calculator); err != nil {
		return fmt.Errorf("calculator settings validation failed: %w", err)
	}
	return nil
}

func (ip *InputParser) validateCalculator(calc *domain.CalculatorConfig) error {
	if calc.CreditPointValue.LessThan(decimal.Zero) {
		return fmt.Errorf("credit point value cannot be negative")
	}
	if calc.CurrencySymbol == "" {
		return fmt.Errorf("currency symbol is required")
	}
	for i, bracket := range calc.TaxBrackets {
		if err := ip.validateBracket(bracket); err != nil {
			return fmt.Errorf("tax bracket %d validation failed: %w", i, err)
		}
		if i > 0 && !bracket.Threshold.GreaterThan(calc.TaxBrackets[i-1].Threshold) {
			return fmt.Errorf("tax bracket %d: thresholds must be strictly ascending", i)
		}
	}
	return nil
}

func (ip *InputParser) validateBracket(bracket domain.TaxBracket) error {
	if bracket.Threshold.LessThan(decimal.Zero) {
		return fmt.Errorf("threshold cannot be negative")
	}
	if bracket.Rate.LessThan(decimal.Zero) || bracket.Rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("rate must be between 0 and 1")
	}
	return nil
}
