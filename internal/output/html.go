package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/shopspring/decimal"
)

// HTMLFormatter renders the result fragment shown under the input form
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"fixed": func(d decimal.Decimal) string { return d.StringFixed(2) },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(r Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Currency string
		Lines    []line
		Net      decimal.Decimal
	}{r.Currency, reportLines(r), r.Breakdown.NetIncome}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
