package model

import (
	"errors"
	"fmt"
)

// ErrNilDescriptor is returned when no invoice is handed to the writer
var ErrNilDescriptor = errors.New("invoice descriptor is nil")

// WriteError represents an output failure while producing a document
type WriteError struct {
	Op     string // create, write, close
	Target string // file path or sink description
	Cause  error
}

func (e *WriteError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// NewWriteError creates a new write error
func NewWriteError(op, target string, cause error) *WriteError {
	return &WriteError{
		Op:     op,
		Target: target,
		Cause:  cause,
	}
}

// DecodeError represents a failure to decode an invoice descriptor from input
type DecodeError struct {
	Field   string
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode %s: %s (%v)", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("decode %s: %s", e.Field, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// NewDecodeError creates a new decode error
func NewDecodeError(field, message string, cause error) *DecodeError {
	return &DecodeError{
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}
