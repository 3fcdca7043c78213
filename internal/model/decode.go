package model

import (
	"encoding/json"
	"errors"
	"io"
)

// DecodeDescriptor reads one JSON encoded InvoiceDescriptor from r.
// Unknown fields and data after the descriptor are rejected.
func DecodeDescriptor(r io.Reader) (*InvoiceDescriptor, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var d InvoiceDescriptor
	if err := dec.Decode(&d); err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			return nil, de
		}
		if errors.Is(err, io.EOF) {
			return nil, NewDecodeError("descriptor", "empty input", err)
		}
		return nil, NewDecodeError("descriptor", "invalid JSON", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, NewDecodeError("descriptor", "unexpected data after descriptor", err)
	}
	return &d, nil
}
