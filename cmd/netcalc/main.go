package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rgehrsitz/netcalc/internal/calculation"
	"github.com/rgehrsitz/netcalc/internal/config"
	"github.com/rgehrsitz/netcalc/internal/domain"
	"github.com/rgehrsitz/netcalc/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// inputFlags maps CLI flag names to form field names
var inputFlags = []struct {
	flag  string
	field string
	usage string
}{
	{"gross-income", config.FieldGrossIncome, "Gross income"},
	{"includes-vat", config.FieldIncludesVAT, "Whether gross income includes VAT (yes/no)"},
	{"vat-rate", config.FieldVATRate, "VAT rate in percent"},
	{"age", config.FieldAge, "Age (reserved)"},
	{"tax-points", config.FieldTaxPoints, "Tax credit points"},
	{"expenses", config.FieldExpenses, "Deductible expenses"},
	{"vat-on-expenses", config.FieldVATOnExpenses, "VAT on expenses (reserved)"},
	{"pension", config.FieldPension, "Pension contributions"},
	{"income-tax-rate", config.FieldIncomeTaxRate, "Income tax rate in percent"},
	{"ni-rate", config.FieldNIRate, "National insurance rate in percent"},
}

// reportExtensions maps formatter names to saved file extensions
var reportExtensions = map[string]string{
	"console": "txt",
	"html":    "html",
	"json":    "json",
	"yaml":    "yaml",
	"csv":     "csv",
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "netcalc",
		Short: "Net income estimator CLI",
		Long:  "Estimate net income from gross income after VAT, deductions, income tax and national insurance",
	}
	root.AddCommand(calculateCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(exampleCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "netcalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate estimated net income",
		Long:  "Calculate estimated net income from flags, an input file, or both. Flags override file values.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()

			cfg, err := loadConfiguration(cmd, parser)
			if err != nil {
				return err
			}

			values, err := collectInputs(cmd, parser)
			if err != nil {
				return err
			}

			inputs, err := config.NewFormReader().Read(values)
			if err != nil {
				return err
			}

			outputFormat, _ := cmd.Flags().GetString("format")
			formatter := output.GetFormatterByName(outputFormat)
			if formatter == nil {
				return fmt.Errorf("unknown output format: %s (valid: %s; aliases: %s)", outputFormat,
					strings.Join(output.AvailableFormatterNames(), ", "), strings.Join(output.AvailableFormatAliases(), ", "))
			}

			calc := calculation.NewNetIncomeCalculatorWithConfig(cfg.Calculator)
			debugMode, _ := cmd.Flags().GetBool("debug")
			if debugMode {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("failed to create logger: %w", err)
				}
				defer logger.Sync()
				calc.SetLogger(logger.Sugar())
			}

			report := output.NewReport(calc.Compute(inputs), cfg.Calculator.CurrencySymbol)

			save, _ := cmd.Flags().GetBool("save")
			if save {
				filename, err := output.WriteFormatted(formatter, report, reportExtensions[formatter.Name()])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Report saved to %s\n", filename)
				return nil
			}

			data, err := formatter.Format(report)
			if err != nil {
				return fmt.Errorf("failed to format report: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	for _, f := range inputFlags {
		cmd.Flags().String(f.flag, "", f.usage)
	}
	cmd.Flags().String("input", "", "YAML file with input values")
	cmd.Flags().String("config", "", "YAML calculator configuration file")
	cmd.Flags().StringP("format", "f", "console", "Output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
	cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	return cmd
}

func loadConfiguration(cmd *cobra.Command, parser *config.InputParser) (*domain.Configuration, error) {
	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		return config.DefaultConfiguration(), nil
	}
	return parser.LoadFromFile(configFile)
}

// collectInputs layers field defaults, then the input file, then explicitly set flags
func collectInputs(cmd *cobra.Command, parser *config.InputParser) (map[string]string, error) {
	values := make(map[string]string, len(config.Fields))
	for _, spec := range config.Fields {
		if spec.Default != "" {
			values[spec.Name] = spec.Default
		}
	}

	inputFile, _ := cmd.Flags().GetString("input")
	if inputFile != "" {
		fileValues, err := parser.LoadInputsFromFile(inputFile)
		if err != nil {
			return nil, err
		}
		for name, v := range fileValues {
			values[name] = v
		}
	}

	for _, f := range inputFlags {
		if cmd.Flags().Changed(f.flag) {
			v, _ := cmd.Flags().GetString(f.flag)
			values[f.field] = v
		}
	}
	return values, nil
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate an input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFile := args[0]

			values, err := config.NewInputParser().LoadInputsFromFile(inputFile)
			if err != nil {
				return err
			}
			if _, err := config.NewFormReader().Read(values); err != nil {
				return fmt.Errorf("input file %s is invalid: %w", inputFile, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Input file %s is valid\n", inputFile)
			return nil
		},
	}
}

func exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [output-file]",
		Short: "Write an example input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFile := args[0]
			if err := config.NewInputParser().WriteExampleInputs(outputFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example input file written to %s\n", outputFile)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
