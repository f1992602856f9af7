package feature

import (
	"fmt"

	"github.com/crimson-sun/relprep/internal/model"
	"github.com/crimson-sun/relprep/internal/tokenize"
)

// packSequences builds the final token stream and segment-id channel:
// [CLS] tokensA [SEP] for a single sequence, [CLS] tokensA [SEP] tokensB
// [SEP] for a pair. Segment ids are 0 across the first sequence including
// its special tokens and 1 across the second including its separator.
//
// Oversized input is truncated first: pairs by repeatedly dropping a token
// from whichever sequence is currently longer until the combined length
// fits max_seq_length-3, single sequences by a plain tail cut to
// max_seq_length-2. The marker-injection overflow check already guarantees
// the second entity span survives a single-sequence cut; for pairs the
// balancing rule can eat further into tokensA, so the caller re-checks the
// span against the truncated length.
func packSequences(tokensA, tokensB []string, maxSeqLength int) (tokens []string, segmentIDs []int64, lenA int) {
	if len(tokensB) > 0 {
		tokensA, tokensB = truncatePair(tokensA, tokensB, maxSeqLength-3)
	} else if len(tokensA) > maxSeqLength-2 {
		tokensA = tokensA[:maxSeqLength-2]
	}
	lenA = len(tokensA)

	tokens = make([]string, 0, len(tokensA)+len(tokensB)+3)
	tokens = append(tokens, tokenize.ClsToken)
	tokens = append(tokens, tokensA...)
	tokens = append(tokens, tokenize.SepToken)
	segmentIDs = make([]int64, len(tokens), cap(tokens))

	if len(tokensB) > 0 {
		tokens = append(tokens, tokensB...)
		tokens = append(tokens, tokenize.SepToken)
		for i := 0; i < len(tokensB)+1; i++ {
			segmentIDs = append(segmentIDs, 1)
		}
	}
	return tokens, segmentIDs, lenA
}

// truncatePair drops one token at a time from the tail of whichever
// sequence is currently longer until the combined length fits budget. A
// short sequence is never cut below the length of its counterpart, so each
// surviving token of the shorter side carries more signal than one more
// tail token of the longer side.
func truncatePair(a, b []string, budget int) ([]string, []string) {
	for len(a)+len(b) > budget {
		if len(a) > len(b) {
			a = a[:len(a)-1]
		} else {
			b = b[:len(b)-1]
		}
	}
	return a, b
}

// padTo zero-pads ids up to length n.
func padTo(ids []int64, n int) []int64 {
	out := make([]int64, n)
	copy(out, ids)
	return out
}

// checkLengths asserts that every produced channel has length exactly
// max_seq_length. A violation is an implementation bug in packing or
// padding, not a data problem.
func checkLengths(rec model.FeatureRecord, maxSeqLength int) error {
	channels := []struct {
		name string
		c    []int64
	}{
		{"input_ids", rec.InputIDs},
		{"input_mask", rec.InputMask},
		{"segment_ids", rec.SegmentIDs},
		{"entity_mask", rec.EntityMask},
		{"entity_seg_pos", rec.EntitySegPos},
		{"entity_span1_pos", rec.EntitySpan1Pos},
		{"entity_span2_pos", rec.EntitySpan2Pos},
	}
	for _, ch := range channels {
		if len(ch.c) != maxSeqLength {
			return fmt.Errorf("%w: %s has length %d, want %d", ErrChannelLength, ch.name, len(ch.c), maxSeqLength)
		}
	}
	return nil
}
