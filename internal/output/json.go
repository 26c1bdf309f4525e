package output

import (
	json "github.com/goccy/go-json"
)

// JSONFormatter renders the report as a JSON object with two-decimal string amounts
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(r Report) ([]byte, error) {
	view := newReportView(r)
	if j.Pretty {
		return json.MarshalIndent(view, "", "  ")
	}
	return json.Marshal(view)
}
