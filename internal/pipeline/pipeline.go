package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crimson-sun/relprep/internal/dataset"
	"github.com/crimson-sun/relprep/internal/feature"
	"github.com/crimson-sun/relprep/internal/graph"
	"github.com/crimson-sun/relprep/internal/output"
)

// Pipeline connects a dataset reader, feature converter, and output into a
// preparation pipeline: read a split, convert every example, write the
// records, finalize the entity graph.
type Pipeline struct {
	reader    dataset.Reader
	converter *feature.Converter
	output    output.Writer
}

// New creates a Pipeline from the given components.
func New(r dataset.Reader, c *feature.Converter, out output.Writer) *Pipeline {
	return &Pipeline{
		reader:    r,
		converter: c,
		output:    out,
	}
}

// Run prepares the split at path and returns the finalized entity graph.
// Conversion is all-or-nothing: the first inconsistent example aborts the
// run with nothing written.
func (p *Pipeline) Run(ctx context.Context, path string) (*graph.Graph, error) {
	examples, err := p.reader.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("pipeline read: %w", err)
	}
	slog.Info("read examples", "path", path, "count", len(examples))

	records, acc, err := p.converter.ConvertAll(ctx, examples)
	if err != nil {
		return nil, fmt.Errorf("pipeline convert: %w", err)
	}

	for _, rec := range records {
		if err := p.output.Write(ctx, rec); err != nil {
			return nil, fmt.Errorf("pipeline output: %w", err)
		}
	}

	g, err := acc.Finalize()
	if err != nil {
		return nil, fmt.Errorf("pipeline graph: %w", err)
	}
	slog.Info("entity graph finalized", "entities", len(g.Entities))
	return g, nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
