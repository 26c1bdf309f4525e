package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/netcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func buildTestReport() Report {
	return NewReport(domain.IncomeBreakdown{
		GrossIncome:        decimal.NewFromInt(11700),
		IncomeExcludingVAT: decimal.NewFromInt(10000),
		VATCollected:       decimal.NewFromInt(1700),
		Expenses:           decimal.Zero,
		Pension:            decimal.RequireFromString("250.5"),
		CreditTotal:        decimal.NewFromInt(470),
		TaxableIncome:      decimal.RequireFromString("9749.5"),
		IncomeTax:          decimal.RequireFromString("1479.9"),
		NationalInsurance:  decimal.RequireFromString("487.475"),
		NetIncome:          decimal.RequireFromString("7782.125"),
	}, "₪")
}

func TestNewReport_DefaultCurrency(t *testing.T) {
	r := NewReport(domain.IncomeBreakdown{}, "")
	assert.Equal(t, domain.DefaultCurrencySymbol, r.Currency)
}

func TestFormatterFunc(t *testing.T) {
	called := false
	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(r Report) ([]byte, error) {
			called = true
			return []byte("test output"), nil
		},
	}

	out, err := formatter.Format(buildTestReport())
	assert.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, []byte("test output"), out)
	assert.Equal(t, "test-formatter", formatter.Name())
}

func TestWriteFormatted(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer os.Chdir(originalDir)

	formatter := FormatterFunc{ID: "test", F: func(Report) ([]byte, error) { return []byte("content"), nil }}
	filename, err := WriteFormatted(formatter, buildTestReport(), "txt")
	require.NoError(t, err)
	assert.Contains(t, filename, "net_income_report_")
	assert.True(t, strings.HasSuffix(filename, ".txt"))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))
}

func TestWriteFormatted_FormatterError(t *testing.T) {
	formatter := FormatterFunc{ID: "broken", F: func(Report) ([]byte, error) { return nil, fmt.Errorf("formatter error") }}
	filename, err := WriteFormatted(formatter, buildTestReport(), "txt")
	assert.Error(t, err)
	assert.Empty(t, filename)
	assert.Contains(t, err.Error(), "formatter error")
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)

	expected := []string{
		"Gross Income:           ₪11700.00",
		"VAT Collected:          ₪1700.00",
		"Expenses:               ₪0.00",
		"Pension Contributions:  ₪250.50",
		"Income Tax:             ₪1479.90",
		"National Insurance:     ₪487.48",
		"Estimated Net Income:   ₪7782.13",
	}
	last := -1
	for _, want := range expected {
		idx := strings.Index(content, want)
		require.GreaterOrEqual(t, idx, 0, "missing %q in:\n%s", want, content)
		assert.Greater(t, idx, last, "%q out of order", want)
		last = idx
	}
}

func TestConsoleFormatter_NegativeAmounts(t *testing.T) {
	r := buildTestReport()
	r.Breakdown.NationalInsurance = decimal.NewFromInt(-50)
	out, err := ConsoleFormatter{}.Format(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), "₪-50.00")
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)

	assert.True(t, strings.HasPrefix(content, "<h2>Estimated Net Income:</h2>"))
	assert.Contains(t, content, "<p>Gross Income: ₪11700.00</p>")
	assert.Contains(t, content, "<p>VAT Collected: ₪1700.00</p>")
	assert.Contains(t, content, "<p>Pension Contributions: ₪250.50</p>")
	assert.Contains(t, content, "<p>National Insurance: ₪487.48</p>")
	assert.Contains(t, content, "<strong>Estimated Net Income: ₪7782.13</strong>")
}

func TestHTMLFormatter_EscapesCurrency(t *testing.T) {
	r := buildTestReport()
	r.Currency = "<b>"
	out, err := HTMLFormatter{}.Format(r)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<b>")
	assert.Contains(t, string(out), "&lt;b&gt;")
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{Pretty: true}.Format(buildTestReport())
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "₪", decoded["currency"])
	assert.Equal(t, "10000.00", decoded["income_excluding_vat"])
	assert.Equal(t, "487.48", decoded["national_insurance"])
	assert.Equal(t, "7782.13", decoded["net_income"])
	assert.Equal(t, "9749.50", decoded["taxable_income"])

	compact, err := JSONFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n")
}

func TestYAMLFormatter(t *testing.T) {
	out, err := YAMLFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "1700.00", decoded["vat_collected"])
	assert.Equal(t, "470.00", decoded["credit_total"])
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 8)
	assert.Equal(t, []string{"Item", "Amount", "Currency"}, records[0])
	assert.Equal(t, []string{"Gross Income", "11700.00", "₪"}, records[1])
	assert.Equal(t, []string{"Estimated Net Income", "7782.13", "₪"}, records[7])
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "html", "json", "yaml"}, AvailableFormatterNames())
	assert.Equal(t, []string{"text", "txt", "yml"}, AvailableFormatAliases())
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"console", "console"},
		{"text", "console"},
		{"html", "html"},
		{"json", "json"},
		{"yml", "yaml"},
		{"csv", "csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := GetFormatterByName(tt.name)
			require.NotNil(t, formatter)
			assert.Equal(t, tt.expected, formatter.Name())
		})
	}

	assert.Nil(t, GetFormatterByName("non-existent"))
}

func TestConsoleFormatter_Plain(t *testing.T) {
	out, err := ConsoleFormatter{Plain: true}.Format(buildTestReport())
	require.NoError(t, err)
	assert.NotContains(t, string(out), "\x1b[")
	assert.True(t, strings.HasPrefix(string(out), "Estimated Net Income:\n"))
	assert.True(t, strings.HasSuffix(string(out), "Estimated Net Income:   ₪7782.13\n"))
}
