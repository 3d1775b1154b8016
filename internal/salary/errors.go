package salary

import "fmt"

// ParseError represents a salary string that does not match the range pattern
type ParseError struct {
	Input   string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("salary parse error: %q: %s: %v", e.Input, e.Message, e.Cause)
	}
	return fmt.Sprintf("salary parse error: %q: %s", e.Input, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
