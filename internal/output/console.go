package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	consoleTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	consoleNetStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
)

// ConsoleFormatter renders the labeled list with a highlighted net income line.
// Plain drops terminal styling.
type ConsoleFormatter struct {
	Plain bool
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(r Report) ([]byte, error) {
	title, netStyle := consoleTitleStyle, consoleNetStyle
	if c.Plain {
		title, netStyle = lipgloss.NewStyle(), lipgloss.NewStyle()
	}

	var sb strings.Builder
	sb.WriteString(title.Render(netIncomeLabel+":") + "\n")
	for _, l := range reportLines(r) {
		sb.WriteString(fmt.Sprintf("%-23s %s\n", l.Label+":", FormatCurrency(r.Currency, l.Amount)))
	}
	net := fmt.Sprintf("%-23s %s", netIncomeLabel+":", FormatCurrency(r.Currency, r.Breakdown.NetIncome))
	sb.WriteString(netStyle.Render(net) + "\n")
	return []byte(sb.String()), nil
}
