package output

import (
	"gopkg.in/yaml.v3"
)

type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(r Report) ([]byte, error) {
	return yaml.Marshal(newReportView(r))
}
