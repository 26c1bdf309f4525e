package config

import (
	"strings"

	"github.com/rgehrsitz/netcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Form field names, matching the ids of the input form
const (
	FieldGrossIncome   = "grossIncome"
	FieldIncludesVAT   = "includesVAT"
	FieldVATRate       = "vatRate"
	FieldAge           = "age"
	FieldTaxPoints     = "taxPoints"
	FieldExpenses      = "expenses"
	FieldVATOnExpenses = "vatOnExpenses"
	FieldPension       = "pension"
	FieldIncomeTaxRate = "incomeTaxRate"
	FieldNIRate        = "niRate"
)

// FieldSpec describes one form field
type FieldSpec struct {
	Name     string
	Label    string
	Percent  bool // entered as a percentage, stored as a fraction
	Optional bool
	Default  string // pre-filled in interactive forms
}

// Fields lists the form fields in display order
var Fields = []FieldSpec{
	{Name: FieldGrossIncome, Label: "Gross Income"},
	{Name: FieldIncludesVAT, Label: "Includes VAT (yes/no)", Default: "no"},
	{Name: FieldVATRate, Label: "VAT Rate (%)", Percent: true, Default: "17"},
	{Name: FieldAge, Label: "Age", Optional: true},
	{Name: FieldTaxPoints, Label: "Tax Credit Points", Default: "0"},
	{Name: FieldExpenses, Label: "Expenses", Default: "0"},
	{Name: FieldVATOnExpenses, Label: "VAT on Expenses", Optional: true},
	{Name: FieldPension, Label: "Pension Contributions", Default: "0"},
	{Name: FieldIncomeTaxRate, Label: "Income Tax Rate (%)", Percent: true},
	{Name: FieldNIRate, Label: "National Insurance Rate (%)", Percent: true},
}

var hundred = decimal.NewFromInt(100)

// Bounds on accepted numbers. Rendering writes out every digit, so huge
// exponents or coefficients must not get past the reader.
const (
	maxNumberLength = 32
	maxExponent     = 18
)

// FormReader classifies raw form text into IncomeInputs
type FormReader struct{}

// NewFormReader creates a new form reader
func NewFormReader() *FormReader {
	return &FormReader{}
}

// Read parses every field. The first invalid field is reported as an *InvalidInputError.
func (fr *FormReader) Read(fields map[string]string) (domain.IncomeInputs, error) {
	var in domain.IncomeInputs
	values := make(map[string]decimal.Decimal, len(Fields))

	for _, spec := range Fields {
		raw := strings.TrimSpace(fields[spec.Name])
		if spec.Name == FieldIncludesVAT {
			includes, err := parseYesNo(raw)
			if err != nil {
				return domain.IncomeInputs{}, err
			}
			in.IncludesVAT = includes
			continue
		}

		value, err := fr.parseNumber(spec, raw)
		if err != nil {
			return domain.IncomeInputs{}, err
		}
		values[spec.Name] = value
	}

	in.GrossIncome = values[FieldGrossIncome]
	in.VATRate = values[FieldVATRate]
	in.Age = values[FieldAge]
	in.TaxPoints = values[FieldTaxPoints]
	in.Expenses = values[FieldExpenses]
	in.VATOnExpenses = values[FieldVATOnExpenses]
	in.Pension = values[FieldPension]
	in.IncomeTaxRate = values[FieldIncomeTaxRate]
	in.NIRate = values[FieldNIRate]

	// gross / (1 + rate) has no value at -100%
	if in.IncludesVAT && in.VATRate.Equal(decimal.NewFromInt(-1)) {
		return domain.IncomeInputs{}, &InvalidInputError{
			Field:  FieldVATRate,
			Value:  strings.TrimSpace(fields[FieldVATRate]),
			Reason: "a VAT rate of -100% cannot be removed from VAT-inclusive income",
		}
	}

	return in, nil
}

func (fr *FormReader) parseNumber(spec FieldSpec, raw string) (decimal.Decimal, error) {
	if raw == "" {
		if spec.Optional {
			return decimal.Zero, nil
		}
		return decimal.Zero, &InvalidInputError{Field: spec.Name, Reason: "value is required"}
	}
	if len(raw) > maxNumberLength {
		return decimal.Zero, &InvalidInputError{Field: spec.Name, Value: raw, Reason: "number out of range"}
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &InvalidInputError{Field: spec.Name, Value: raw, Reason: "not a number"}
	}
	if exp := value.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero, &InvalidInputError{Field: spec.Name, Value: raw, Reason: "number out of range"}
	}
	if spec.Percent {
		value = value.Div(hundred)
	}
	return value, nil
}

func parseYesNo(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "yes", "y", "true", "1":
		return true, nil
	case "no", "n", "false", "0":
		return false, nil
	case "":
		return false, &InvalidInputError{Field: FieldIncludesVAT, Reason: "value is required"}
	default:
		return false, &InvalidInputError{Field: FieldIncludesVAT, Value: raw, Reason: "expected yes or no"}
	}
}

// FieldByName looks up a form field by name
func FieldByName(name string) (FieldSpec, bool) {
	for _, spec := range Fields {
		if spec.Name == name {
			return spec, true
		}
	}
	return FieldSpec{}, false
}
