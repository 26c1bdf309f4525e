package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/netcalc/internal/calculation"
	"github.com/rgehrsitz/netcalc/internal/config"
	"github.com/rgehrsitz/netcalc/internal/tui"
)

func main() {
	// Optional calculator configuration file
	cfg := config.DefaultConfiguration()
	if len(os.Args) > 1 {
		loaded, err := config.NewInputParser().LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	calc := calculation.NewNetIncomeCalculatorWithConfig(cfg.Calculator)
	model := tui.NewModel(calc, cfg.Calculator.CurrencySymbol)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
