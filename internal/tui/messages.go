package tui

import (
	"github.com/rgehrsitz/netcalc/internal/domain"
)

// CalculationCompleteMsg carries the result of a submitted form
type CalculationCompleteMsg struct {
	Breakdown *domain.IncomeBreakdown
	Err       error
}
