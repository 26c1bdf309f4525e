package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadInputsFromFile reads a YAML mapping of form field name to value.
// Values stay raw; FormReader.Read does the classification.
func (ip *InputParser) LoadInputsFromFile(filename string) (map[string]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	fields := make(map[string]string)
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for name := range fields {
		if _, ok := FieldByName(name); !ok {
			return nil, fmt.Errorf("unknown input field %q in %s", name, filename)
		}
	}
	return fields, nil
}

// ExampleInputs returns a filled-in input set
func ExampleInputs() map[string]string {
	return map[string]string{
		FieldGrossIncome:   "11700",
		FieldIncludesVAT:   "yes",
		FieldVATRate:       "17",
		FieldAge:           "40",
		FieldTaxPoints:     "2.25",
		FieldExpenses:      "1500",
		FieldVATOnExpenses: "0",
		FieldPension:       "700",
		FieldIncomeTaxRate: "20",
		FieldNIRate:        "5",
	}
}

// WriteExampleInputs saves ExampleInputs as YAML
func (ip *InputParser) WriteExampleInputs(filename string) error {
	data, err := yaml.Marshal(ExampleInputs())
	if err != nil {
		return fmt.Errorf("failed to encode example inputs: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
