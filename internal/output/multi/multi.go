package multi

import (
	"context"
	"errors"

	"github.com/crimson-sun/relprep/internal/model"
	"github.com/crimson-sun/relprep/internal/output"
)

// Multi fans out feature records to multiple output.Writer implementations.
// Each Write call delivers the record to every wrapped writer sequentially.
// If one writer fails, the remaining writers still receive the record.
type Multi struct {
	writers []output.Writer
}

// New creates a Multi that fans out to the given writers.
func New(writers ...output.Writer) *Multi {
	return &Multi{writers: writers}
}

// Write delivers the record to every wrapped writer. Errors are collected
// but do not prevent delivery to subsequent writers.
func (m *Multi) Write(ctx context.Context, rec model.FeatureRecord) error {
	var errs []error
	for _, w := range m.writers {
		if err := w.Write(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close calls Close on every wrapped writer, collecting errors.
func (m *Multi) Close() error {
	var errs []error
	for _, w := range m.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
