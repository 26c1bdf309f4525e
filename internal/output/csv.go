package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes one row per reported amount
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(r Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Item", "Amount", "Currency"}); err != nil {
		return nil, err
	}
	rows := append(reportLines(r), line{netIncomeLabel, r.Breakdown.NetIncome})
	for _, l := range rows {
		if err := w.Write([]string{l.Label, l.Amount.StringFixed(2), r.Currency}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
