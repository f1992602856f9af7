// Package feature turns raw (text, entity-span) examples into fixed-shape
// feature records: it realigns entity spans across WordPiece segmentation,
// injects boundary markers, packs and pads the token stream, derives the
// positional channels, and contributes entity identities to the
// co-occurrence graph accumulator.
package feature

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/crimson-sun/relprep/internal/graph"
	"github.com/crimson-sun/relprep/internal/labels"
	"github.com/crimson-sun/relprep/internal/model"
	"github.com/crimson-sun/relprep/internal/tokenize"
)

// logSampleCount is how many converted records get dumped at debug level.
const logSampleCount = 5

// Options configures a Converter.
type Options struct {
	MaxSeqLength int
	Mode         model.OutputMode
	Markers      Markers
	Workers      int // parallel conversion workers; <=0 means NumCPU
}

// Converter produces one FeatureRecord per RawExample. Safe for concurrent
// use: all state is read-only after construction.
type Converter struct {
	tok   *tokenize.Tokenizer
	vocab *labels.Vocabulary
	opts  Options
}

// NewConverter creates a Converter. vocab is required in classification
// mode and ignored in regression mode.
func NewConverter(tok *tokenize.Tokenizer, vocab *labels.Vocabulary, opts Options) (*Converter, error) {
	if opts.MaxSeqLength <= 0 {
		return nil, fmt.Errorf("feature: max_seq_length must be positive, got %d", opts.MaxSeqLength)
	}
	switch opts.Mode {
	case model.Classification:
		if vocab == nil {
			return nil, fmt.Errorf("feature: classification mode requires a label vocabulary")
		}
	case model.Regression:
	default:
		return nil, fmt.Errorf("feature: unknown output mode %q", opts.Mode)
	}
	if opts.Markers == (Markers{}) {
		opts.Markers = DefaultMarkers()
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Converter{tok: tok, vocab: vocab, opts: opts}, nil
}

// Convert runs one example through alignment, marker injection, packing,
// and channel generation. The returned pair holds the two canonical entity
// keys for graph accumulation. Any detected inconsistency is fatal for the
// whole batch; see the package error values.
func (c *Converter) Convert(ex model.RawExample) (model.FeatureRecord, [2]string, error) {
	fail := func(err error) (model.FeatureRecord, [2]string, error) {
		return model.FeatureRecord{}, [2]string{}, fmt.Errorf("example %s: %w", ex.GUID, err)
	}

	words := strings.Fields(ex.Text)
	tokensA, aligned, err := c.tok.TokenizeWithSpans(ex.Text, ex.Entities)
	if err != nil {
		return fail(err)
	}
	for k := range aligned {
		if err := verifyAlignment(words, tokensA, ex.Entities[k], aligned[k]); err != nil {
			return fail(err)
		}
	}

	marked, m1, m2, err := injectMarkers(tokensA, aligned[0], aligned[1], c.opts.Markers, c.opts.MaxSeqLength)
	if err != nil {
		return fail(err)
	}

	var tokensB []string
	if ex.TextPair != "" {
		tokensB = c.tok.Tokenize(ex.TextPair)
	}

	n := c.opts.MaxSeqLength
	tokens, segmentIDs, lenA := packSequences(marked, tokensB, n)
	if m2.End > lenA {
		return fail(fmt.Errorf("%w: pair truncation to %d tokens would cut marked span %s", ErrSpanOverflow, lenA, m2))
	}

	realLen := len(tokens)
	inputIDs := padTo(c.tok.TokensToIDs(tokens), n)
	inputMask := make([]int64, n)
	for i := 0; i < realLen; i++ {
		inputMask[i] = 1
	}

	// Shift the marked spans by one for the leading [CLS] token; from here
	// on everything is in padded tensor coordinates.
	p1, p2 := m1.Shift(1), m2.Shift(1)

	rec := model.FeatureRecord{
		GUID:           ex.GUID,
		Tokens:         tokens,
		InputIDs:       inputIDs,
		InputMask:      inputMask,
		SegmentIDs:     padTo(segmentIDs, n),
		EntityMask:     membershipMask(n, p1, p2),
		EntitySegPos:   boundaryTags(n, p1, p2),
		EntitySpan1Pos: signedDistance(n, realLen, p1),
		EntitySpan2Pos: signedDistance(n, realLen, p2),
	}

	switch c.opts.Mode {
	case model.Classification:
		id, err := c.vocab.Index(ex.Label)
		if err != nil {
			return fail(err)
		}
		rec.LabelID = id
	case model.Regression:
		v, err := strconv.ParseFloat(ex.Label, 64)
		if err != nil {
			return fail(fmt.Errorf("feature: parse regression label %q: %w", ex.Label, err))
		}
		rec.LabelValue = v
	}

	if err := checkLengths(rec, n); err != nil {
		return fail(err)
	}

	e1 := graph.Key(inputIDs[p1.Start:p1.End])
	e2 := graph.Key(inputIDs[p2.Start:p2.End])
	return rec, [2]string{e1, e2}, nil
}

// ConvertAll converts a whole split with bounded parallelism and returns
// the records in input order plus the entity graph accumulator. Per-example
// conversion is independent; graph accumulation runs as a sequential reduce
// over the ordered results so the entity ordering is deterministic. The
// first error aborts the batch.
func (c *Converter) ConvertAll(ctx context.Context, examples []model.RawExample) ([]model.FeatureRecord, *graph.Accumulator, error) {
	slog.Info("converting examples", "count", len(examples), "workers", c.opts.Workers, "max_seq_length", c.opts.MaxSeqLength)

	records := make([]model.FeatureRecord, len(examples))
	pairs := make([][2]string, len(examples))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Workers)
	for i, ex := range examples {
		i, ex := i, ex
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, pair, err := c.Convert(ex)
			if err != nil {
				return err
			}
			records[i] = rec
			pairs[i] = pair
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	acc := graph.NewAccumulator()
	for _, p := range pairs {
		acc.Observe(p[0], p[1])
	}

	for i := 0; i < len(records) && i < logSampleCount; i++ {
		logRecord(records[i])
	}
	slog.Info("conversion complete", "records", len(records), "entities", acc.Entities(), "pairs", acc.Pairs())

	return records, acc, nil
}

func logRecord(rec model.FeatureRecord) {
	slog.Debug("converted example",
		"guid", rec.GUID,
		"tokens", strings.Join(rec.Tokens, " "),
		"input_ids", rec.InputIDs,
		"input_mask", rec.InputMask,
		"segment_ids", rec.SegmentIDs,
		"entity_mask", rec.EntityMask,
		"entity_seg_pos", rec.EntitySegPos,
		"entity_span1_pos", rec.EntitySpan1Pos,
		"entity_span2_pos", rec.EntitySpan2Pos,
		"label_id", rec.LabelID,
		"label_value", rec.LabelValue,
	)
}
