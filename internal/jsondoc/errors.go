package jsondoc

import "fmt"

// ParseError represents input that is not a well-formed JSON object
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("json object error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("json object error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
