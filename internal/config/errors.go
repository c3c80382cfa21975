package config

import "fmt"

// MissingRequiredFieldError reports a required configuration key that is
// absent (or empty) after the file and environment sources were merged.
type MissingRequiredFieldError struct {
	// Field is the document path of the offending key,
	// e.g. "replication.client_id".
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required config field %q", e.Field)
}

// InvalidFieldError reports a configuration value that is present but fails
// a range or format check. Reason never contains a secret value.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid config field %q: %s", e.Field, e.Reason)
}
