package extraction

import (
	"fmt"
	"strings"
)

// ConfigurationError indicates the text-generation service is not usable,
// typically because no API key is configured.
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// ValidationError indicates invalid caller input, such as an empty description.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// TransportError indicates a network or service failure while calling the
// text-generation service. The call is not retried.
type TransportError struct {
	Message string
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("text generation call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("text generation call failed: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ExtractionError indicates the model returned output that is unparseable or
// violates the draft schema. Details lists the individual violations.
type ExtractionError struct {
	Message string
	Details []string
	Cause   error
}

func (e *ExtractionError) Error() string {
	msg := fmt.Sprintf("extraction error: %s", e.Message)
	if len(e.Details) > 0 {
		msg += ": " + strings.Join(e.Details, "; ")
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
