// Package cii renders invoice descriptors as UN/CEFACT Cross Industry Invoice
// XML in the layout of the ZUGFeRD 1.0 schema.
package cii

import (
	"io"
	"os"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/rezonia/zugferd/internal/model"
)

// DefaultIndent is the number of spaces per nesting level in written documents
const DefaultIndent = 2

// Writer serializes descriptors. A Writer holds no per-document state and
// may be shared between goroutines.
type Writer struct {
	indent int
	log    zerolog.Logger
}

// Option configures a Writer
type Option func(*Writer)

// WithIndent sets the spaces per nesting level. A negative value writes
// the document without any insignificant whitespace.
func WithIndent(n int) Option {
	return func(w *Writer) {
		w.indent = n
	}
}

// WithLogger sets the logger for write events. Writers log nothing by default.
func WithLogger(l zerolog.Logger) Option {
	return func(w *Writer) {
		w.log = l
	}
}

// NewWriter creates a Writer with the given options applied
func NewWriter(opts ...Option) *Writer {
	w := &Writer{
		indent: DefaultIndent,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Build returns the in-memory document for d without writing it anywhere.
// d must not be nil.
func (w *Writer) Build(d *model.InvoiceDescriptor) *etree.Document {
	doc := compose(d)
	if w.indent < 0 {
		doc.Indent(etree.NoIndent)
	} else {
		doc.Indent(w.indent)
	}
	return doc
}

// Save writes d as a complete UTF-8 document to out. The stream is left open;
// closing it is up to the caller.
func (w *Writer) Save(out io.Writer, d *model.InvoiceDescriptor) error {
	return w.save(out, "", d)
}

// SaveFile writes d to path, creating or truncating the file
func (w *Writer) SaveFile(path string, d *model.InvoiceDescriptor) (err error) {
	if d == nil {
		return model.ErrNilDescriptor
	}

	f, err := os.Create(path)
	if err != nil {
		return model.NewWriteError("create", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = model.NewWriteError("close", path, cerr)
		}
	}()

	return w.save(f, path, d)
}

func (w *Writer) save(out io.Writer, target string, d *model.InvoiceDescriptor) error {
	if d == nil {
		return model.ErrNilDescriptor
	}

	n, err := w.Build(d).WriteTo(out)
	if err != nil {
		w.log.Error().Err(err).
			Str("invoice_no", d.InvoiceNo).
			Str("target", target).
			Msg("Failed to write invoice")
		return model.NewWriteError("write", target, err)
	}

	w.log.Debug().
		Str("invoice_no", d.InvoiceNo).
		Int("line_items", len(d.TradeLineItems)).
		Int64("bytes", n).
		Str("target", target).
		Msg("Invoice written")
	return nil
}
