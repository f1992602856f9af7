package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/crimson-sun/relprep/internal/model"
	"github.com/crimson-sun/relprep/internal/output"
)

// Writer writes JSON-encoded feature records to stdout, one per line.
type Writer struct {
	enc       *json.Encoder
	verbosity output.Verbosity
}

// New creates a stdout Writer with verbosity-aware field omission and
// optional pretty-printed JSON.
func New(verbosity output.Verbosity, pretty bool) *Writer {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Writer{enc: enc, verbosity: verbosity}
}

func (w *Writer) Write(_ context.Context, rec model.FeatureRecord) error {
	formatted := output.FormatRecord(rec, w.verbosity)
	if err := w.enc.Encode(formatted); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (w *Writer) Close() error {
	return nil
}
