package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/netcalc/internal/config"
	"github.com/rgehrsitz/netcalc/internal/output"
)

// View renders the form, the result card and the key help
func (m Model) View() string {
	sections := []string{
		TitleStyle.Render("Net Income Estimator"),
		SubtitleStyle.Render("Rates are percentages; enter computes the estimate"),
		m.renderForm(),
	}
	if result := m.renderResult(); result != "" {
		sections = append(sections, result)
	}
	sections = append(sections, m.renderHelp())

	return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderForm() string {
	rows := make([]string, len(m.fields))
	for i, spec := range m.fields {
		label := LabelStyle.Render(spec.Label)
		if i == m.focus {
			label = FocusedLabelStyle.Render(spec.Label)
		}
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, label, m.inputs[i].View())
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderResult() string {
	if m.err != nil {
		var inputErr *config.InvalidInputError
		if errors.As(m.err, &inputErr) {
			label := inputErr.Field
			if spec, ok := config.FieldByName(inputErr.Field); ok {
				label = spec.Label
			}
			return ErrorStyle.Render(label + ": " + inputErr.Reason)
		}
		return ErrorStyle.Render(m.err.Error())
	}
	if m.breakdown == nil {
		return ""
	}

	report, err := output.ConsoleFormatter{}.Format(output.NewReport(*m.breakdown, m.currency))
	if err != nil {
		return ErrorStyle.Render(err.Error())
	}
	return ResultCardStyle.Render(strings.TrimRight(string(report), "\n"))
}

func (m Model) renderHelp() string {
	bindings := m.keys.bindings()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return HelpStyle.Render(strings.Join(parts, " • "))
}
