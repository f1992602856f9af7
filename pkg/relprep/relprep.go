package relprep

import (
	"context"
	"fmt"

	"github.com/crimson-sun/relprep/internal/feature"
	"github.com/crimson-sun/relprep/internal/labels"
	"github.com/crimson-sun/relprep/internal/model"
	"github.com/crimson-sun/relprep/internal/tokenize"
)

// Preparer converts examples into feature records. Safe for concurrent use:
// all state is read-only after construction.
type Preparer struct {
	converter *feature.Converter
}

// New creates a Preparer, loading the WordPiece vocabulary from disk.
// Create once, reuse across splits.
func New(opts ...Option) (*Preparer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.vocabPath == "" {
		return nil, fmt.Errorf("relprep: vocab path is required")
	}
	tok, err := tokenize.New(o.vocabPath)
	if err != nil {
		return nil, fmt.Errorf("relprep: %w", err)
	}

	mode := model.OutputMode(o.outputMode)
	var vocab *labels.Vocabulary
	if mode == model.Classification {
		if len(o.labels) > 0 {
			vocab, err = labels.New(o.labels)
			if err != nil {
				return nil, fmt.Errorf("relprep: %w", err)
			}
		} else {
			vocab = labels.SemEval()
		}
	}

	conv, err := feature.NewConverter(tok, vocab, feature.Options{
		MaxSeqLength: o.maxSeqLength,
		Mode:         mode,
		Markers:      feature.Markers(o.markers),
		Workers:      o.workers,
	})
	if err != nil {
		return nil, fmt.Errorf("relprep: %w", err)
	}
	return &Preparer{converter: conv}, nil
}

// Prepare converts a single example. Errors indicate an inconsistent
// example: a span outside the text, a marked span past the sequence budget,
// or an unknown label.
func (p *Preparer) Prepare(ex Example) (Record, error) {
	rec, _, err := p.converter.Convert(exampleToRaw(ex))
	if err != nil {
		return Record{}, err
	}
	return recordFromFeature(rec), nil
}

// PrepareBatch converts a whole split with bounded parallelism and returns
// the records in input order plus the finalized entity co-occurrence graph.
// The first inconsistent example aborts the batch.
func (p *Preparer) PrepareBatch(ctx context.Context, examples []Example) ([]Record, Graph, error) {
	raws := make([]model.RawExample, len(examples))
	for i, ex := range examples {
		raws[i] = exampleToRaw(ex)
	}

	featureRecs, acc, err := p.converter.ConvertAll(ctx, raws)
	if err != nil {
		return nil, Graph{}, err
	}
	g, err := acc.Finalize()
	if err != nil {
		return nil, Graph{}, err
	}

	records := make([]Record, len(featureRecs))
	for i, rec := range featureRecs {
		records[i] = recordFromFeature(rec)
	}
	return records, graphFromInternal(g), nil
}
