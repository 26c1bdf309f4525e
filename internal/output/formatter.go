package output

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rgehrsitz/netcalc/internal/domain"
)

// Report is what every formatter renders: one breakdown and the currency to show it in
type Report struct {
	Breakdown domain.IncomeBreakdown
	Currency  string
}

// NewReport builds a report, falling back to the default currency symbol
func NewReport(b domain.IncomeBreakdown, currency string) Report {
	if currency == "" {
		currency = domain.DefaultCurrencySymbol
	}
	return Report{Breakdown: b, Currency: currency}
}

// Formatter renders a report into bytes
type Formatter interface {
	Name() string
	Format(r Report) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(Report) ([]byte, error)
}

func (f FormatterFunc) Name() string                    { return f.ID }
func (f FormatterFunc) Format(r Report) ([]byte, error) { return f.F(r) }

var registry = map[string]Formatter{}

var aliases = map[string]string{
	"text": "console",
	"txt":  "console",
	"yml":  "yaml",
}

func register(f Formatter) { registry[f.Name()] = f }

func init() {
	register(ConsoleFormatter{})
	register(HTMLFormatter{})
	register(JSONFormatter{Pretty: true})
	register(YAMLFormatter{})
	register(CSVFormatter{})
}

// GetFormatterByName returns the formatter registered under name or alias, or nil
func GetFormatterByName(name string) Formatter {
	if target, ok := aliases[name]; ok {
		name = target
	}
	return registry[name]
}

// AvailableFormatterNames lists registered formatter names, sorted
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists accepted alternate names, sorted
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteFormatted renders the report and saves it to a timestamped file in the current directory
func WriteFormatted(f Formatter, r Report, ext string) (string, error) {
	data, err := f.Format(r)
	if err != nil {
		return "", fmt.Errorf("failed to format %s report: %w", f.Name(), err)
	}
	filename := fmt.Sprintf("net_income_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
