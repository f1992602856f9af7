package feature

import (
	"fmt"

	"github.com/crimson-sun/relprep/internal/model"
)

// Markers holds the four literal boundary tokens delimiting the two entity
// mentions, in insertion order: entity 1 start/end, entity 2 start/end.
type Markers [4]string

// DefaultMarkers are the boundary tokens used when no task overrides them.
func DefaultMarkers() Markers {
	return Markers{"<s1>", "<e1>", "<s2>", "<e2>"}
}

// injectMarkers inserts the four boundary markers into the subword sequence
// and recomputes both spans to include them. Insertions are applied left to
// right, each shifting all subsequent indices by one: entity 1 grows by its
// own two markers, while entity 2 additionally shifts by the two markers
// already inserted before it.
//
// The recomputed second span must end within max_seq_length minus the three
// positions reserved for [CLS] and the separators. This is checked here,
// before any truncation, because a truncation that cut into a marker or an
// entity token would invalidate every positional channel.
func injectMarkers(tokens []string, s1, s2 model.Span, markers Markers, maxSeqLength int) ([]string, model.Span, model.Span, error) {
	if !s1.Valid(len(tokens)) || !s2.Valid(len(tokens)) {
		return nil, model.Span{}, model.Span{}, fmt.Errorf("%w: spans %s and %s over %d tokens", ErrSpanOrder, s1, s2, len(tokens))
	}
	if s1.End > s2.Start {
		return nil, model.Span{}, model.Span{}, fmt.Errorf("%w: %s does not precede %s", ErrSpanOrder, s1, s2)
	}

	out := make([]string, 0, len(tokens)+4)
	out = append(out, tokens[:s1.Start]...)
	out = append(out, markers[0])
	out = append(out, tokens[s1.Start:s1.End]...)
	out = append(out, markers[1])
	out = append(out, tokens[s1.End:s2.Start]...)
	out = append(out, markers[2])
	out = append(out, tokens[s2.Start:s2.End]...)
	out = append(out, markers[3])
	out = append(out, tokens[s2.End:]...)

	m1 := model.Span{Start: s1.Start, End: s1.End + 2}
	m2 := model.Span{Start: s2.Start + 2, End: s2.End + 4}

	if m2.End > maxSeqLength-3 {
		return nil, model.Span{}, model.Span{}, fmt.Errorf("%w: marked span %s ends past budget %d (max_seq_length %d)",
			ErrSpanOverflow, m2, maxSeqLength-3, maxSeqLength)
	}
	return out, m1, m2, nil
}
