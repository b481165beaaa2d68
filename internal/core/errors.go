// ABOUTME: Error types for the study guide pipeline
// ABOUTME: Configuration errors and no-text are fatal; everything else degrades
package core

import (
	"errors"
	"fmt"
)

// ErrNoText means the document contained no extractable words at all
var ErrNoText = errors.New("document contains no extractable text")

// ConfigurationError reports invalid pipeline parameters.
// It aborts processing before any work starts.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// IsConfigurationError reports whether err is a ConfigurationError
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
