package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/netcalc/internal/calculation"
	"github.com/rgehrsitz/netcalc/internal/config"
	"github.com/rgehrsitz/netcalc/internal/domain"
)

func newTestModel() Model {
	return NewModel(calculation.NewNetIncomeCalculator(), domain.DefaultCurrencySymbol)
}

// submit presses enter and feeds the command's message back into the model
func submit(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(CalculationCompleteMsg)
	require.True(t, ok, "expected CalculationCompleteMsg, got %T", msg)
	next, _ = next.(Model).Update(msg)
	return next.(Model)
}

func TestNewModel_Defaults(t *testing.T) {
	m := newTestModel()

	assert.Equal(t, config.FieldGrossIncome, m.Focused())
	values := m.Values()
	assert.Len(t, values, len(config.Fields))
	assert.Equal(t, "no", values[config.FieldIncludesVAT])
	assert.Equal(t, "17", values[config.FieldVATRate])
	assert.Equal(t, "", values[config.FieldGrossIncome])
	assert.Nil(t, m.Breakdown())
	assert.NoError(t, m.Err())
}

func TestModel_Calculate(t *testing.T) {
	m := newTestModel()
	m.SetValue(config.FieldGrossIncome, "10000")
	m.SetValue(config.FieldIncomeTaxRate, "20")
	m.SetValue(config.FieldNIRate, "5")

	m = submit(t, m)

	require.NoError(t, m.Err())
	require.NotNil(t, m.Breakdown())
	assert.Equal(t, "7500", m.Breakdown().NetIncome.String())

	view := m.View()
	assert.Contains(t, view, "₪7500.00")
	assert.Contains(t, view, "₪1700.00")
}

func TestModel_InvalidInputShowsField(t *testing.T) {
	m := newTestModel()
	m.SetValue(config.FieldGrossIncome, "lots")
	m.SetValue(config.FieldIncomeTaxRate, "20")
	m.SetValue(config.FieldNIRate, "5")

	m = submit(t, m)

	var inputErr *config.InvalidInputError
	require.ErrorAs(t, m.Err(), &inputErr)
	assert.Equal(t, config.FieldGrossIncome, inputErr.Field)
	assert.Nil(t, m.Breakdown())
	assert.Contains(t, m.View(), "Gross Income: not a number")
}

func TestModel_ErrorClearsOnSuccess(t *testing.T) {
	m := newTestModel()
	m = submit(t, m)
	require.Error(t, m.Err())

	m.SetValue(config.FieldGrossIncome, "10000")
	m.SetValue(config.FieldIncomeTaxRate, "20")
	m.SetValue(config.FieldNIRate, "5")
	m = submit(t, m)

	assert.NoError(t, m.Err())
	assert.NotNil(t, m.Breakdown())
}

func TestModel_FocusWraps(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want string
	}{
		{"tab moves forward", []tea.KeyMsg{{Type: tea.KeyTab}}, config.FieldIncludesVAT},
		{"down moves forward", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}}, config.FieldVATRate},
		{"shift+tab wraps to last", []tea.KeyMsg{{Type: tea.KeyShiftTab}}, config.FieldNIRate},
		{"up wraps to last", []tea.KeyMsg{{Type: tea.KeyUp}}, config.FieldNIRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var model tea.Model = newTestModel()
			for _, k := range tt.keys {
				model, _ = model.Update(k)
			}
			assert.Equal(t, tt.want, model.(Model).Focused())
		})
	}

	t.Run("full cycle returns to first", func(t *testing.T) {
		var model tea.Model = newTestModel()
		for range config.Fields {
			model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
		}
		assert.Equal(t, config.FieldGrossIncome, model.(Model).Focused())
	})
}

func TestModel_TypingGoesToFocusedInput(t *testing.T) {
	var model tea.Model = newTestModel()
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("42")})

	assert.Equal(t, "42", model.(Model).Values()[config.FieldGrossIncome])
}

func TestModel_Reset(t *testing.T) {
	m := newTestModel()
	m.SetValue(config.FieldGrossIncome, "10000")
	m.SetValue(config.FieldIncomeTaxRate, "20")
	m.SetValue(config.FieldNIRate, "5")
	m = submit(t, m)
	require.NotNil(t, m.Breakdown())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = next.(Model)

	assert.Nil(t, m.Breakdown())
	assert.Equal(t, "", m.Values()[config.FieldGrossIncome])
	assert.Equal(t, "17", m.Values()[config.FieldVATRate])
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel()
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 120, next.(Model).width)
	assert.Equal(t, 40, next.(Model).height)
}

func TestModel_ViewShowsHelp(t *testing.T) {
	view := newTestModel().View()
	assert.True(t, strings.Contains(view, "enter calculate"))
	assert.Contains(t, view, "Net Income Estimator")
}
