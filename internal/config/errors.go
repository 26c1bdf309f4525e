package config

import "fmt"

// InvalidInputError reports a form field that could not be turned into a number
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid input for %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid input for %s (%q): %s", e.Field, e.Value, e.Reason)
}
