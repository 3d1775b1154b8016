package types

import "fmt"

// DecodeError represents a document member that could not be decoded
type DecodeError struct {
	Field string
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error: %s: %v", e.Field, e.Cause)
	}
	return fmt.Sprintf("decode error: %s", e.Field)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
