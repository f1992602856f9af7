package feature

import "errors"

// Every detected inconsistency in feature preparation is a hard stop: a
// misaligned span or an unrepresentable example would silently corrupt the
// positional channels and the entity graph, so nothing here is recoverable.
var (
	// ErrAlignment indicates that the entity text reconstructed from the
	// realigned subword span disagrees with the original whitespace span.
	ErrAlignment = errors.New("feature: entity alignment mismatch")

	// ErrSpanOrder indicates overlapping or out-of-order entity spans.
	ErrSpanOrder = errors.New("feature: entity spans overlap or are out of order")

	// ErrSpanOverflow indicates that the marked entity spans cannot fit
	// within max_seq_length after reserving the special-token positions.
	ErrSpanOverflow = errors.New("feature: marked entity span exceeds sequence budget")

	// ErrChannelLength indicates an internal packing/padding bug: a produced
	// channel does not have length max_seq_length.
	ErrChannelLength = errors.New("feature: channel length invariant violated")
)
