package zugferd

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/rezonia/zugferd/internal/cii"
)

// Writer serializes descriptors; one Writer may be shared by goroutines
type Writer = cii.Writer

// Option configures a Writer
type Option = cii.Option

// WithIndent sets the spaces per nesting level, -1 for compact output
func WithIndent(n int) Option {
	return cii.WithIndent(n)
}

// WithLogger sets the writer's logger. Without it a Writer does not log.
func WithLogger(l zerolog.Logger) Option {
	return cii.WithLogger(l)
}

// NewWriter creates a Writer with the given options
func NewWriter(opts ...Option) *Writer {
	return cii.NewWriter(opts...)
}

// Save writes d to w with default options and no logging. w is not closed.
func Save(w io.Writer, d *InvoiceDescriptor) error {
	return NewWriter().Save(w, d)
}

// SaveFile writes d to path with default options, creating or truncating the file
func SaveFile(path string, d *InvoiceDescriptor) error {
	return NewWriter().SaveFile(path, d)
}
