package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/netcalc/internal/calculation"
	"github.com/rgehrsitz/netcalc/internal/config"
	"github.com/rgehrsitz/netcalc/internal/domain"
)

// Model is the terminal input form and its last result
type Model struct {
	calc     *calculation.NetIncomeCalculator
	reader   *config.FormReader
	currency string
	keys     KeyMap

	fields []config.FieldSpec
	inputs []textinput.Model
	focus  int

	breakdown *domain.IncomeBreakdown
	err       error

	width  int
	height int
}

// NewModel creates the form with one text input per field
func NewModel(calc *calculation.NetIncomeCalculator, currency string) Model {
	m := Model{
		calc:     calc,
		reader:   config.NewFormReader(),
		currency: currency,
		keys:     DefaultKeyMap(),
		fields:   config.Fields,
		width:    80,
		height:   24,
	}
	m.inputs = make([]textinput.Model, len(m.fields))
	for i, spec := range m.fields {
		ti := textinput.New()
		ti.Placeholder = spec.Label
		ti.CharLimit = 20
		ti.Width = 20
		ti.SetValue(spec.Default)
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	return m
}

// Init starts the cursor blinking
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Values returns the current raw form values keyed by field name
func (m Model) Values() map[string]string {
	values := make(map[string]string, len(m.inputs))
	for i, spec := range m.fields {
		values[spec.Name] = m.inputs[i].Value()
	}
	return values
}

// SetValue sets a field's text. Unknown names are ignored.
func (m *Model) SetValue(name, value string) {
	for i, spec := range m.fields {
		if spec.Name == name {
			m.inputs[i].SetValue(value)
			return
		}
	}
}

// Focused returns the name of the field with the cursor
func (m Model) Focused() string {
	return m.fields[m.focus].Name
}

// Breakdown returns the last successful computation, or nil
func (m Model) Breakdown() *domain.IncomeBreakdown {
	return m.breakdown
}

// Err returns the last input error, or nil
func (m Model) Err() error {
	return m.err
}

// calculateCmd reads the form and computes off the update loop
func (m Model) calculateCmd() tea.Cmd {
	values := m.Values()
	return func() tea.Msg {
		inputs, err := m.reader.Read(values)
		if err != nil {
			return CalculationCompleteMsg{Err: err}
		}
		breakdown := m.calc.Compute(inputs)
		return CalculationCompleteMsg{Breakdown: &breakdown}
	}
}
