package feature

import "github.com/crimson-sun/relprep/internal/model"

// Sentinel values for the auxiliary positional channels. All channels are
// zero-filled outside their defined regions, so every sentinel is non-zero.
const (
	entityMaskTag int64 = 1

	insideSpan1Tag int64 = 1
	insideSpan2Tag int64 = 2

	spanStartTag int64 = 1
	spanEndTag   int64 = 2
)

// The channel generators below take the final entity spans already shifted
// by +1 for the leading [CLS] token, in padded tensor coordinates.

// membershipMask tags every position covered by either marked entity span,
// markers included, with a single shared sentinel. Used to pool the
// entity-region representations regardless of which entity they belong to.
func membershipMask(n int, s1, s2 model.Span) []int64 {
	mask := make([]int64, n)
	for _, s := range []model.Span{s1, s2} {
		for i := s.Start; i < s.End; i++ {
			mask[i] = entityMaskTag
		}
	}
	return mask
}

// insideSpanTags tags every position of entity 1 with one sentinel and every
// position of entity 2 with another. Defined as an alternate tagging
// strategy; the boundary variant below is the one carried into the record.
func insideSpanTags(n int, s1, s2 model.Span) []int64 {
	tags := make([]int64, n)
	for i := s1.Start; i < s1.End; i++ {
		tags[i] = insideSpan1Tag
	}
	for i := s2.Start; i < s2.End; i++ {
		tags[i] = insideSpan2Tag
	}
	return tags
}

// boundaryTags tags the start-marker position of each entity with one
// sentinel and the end-marker position with another. The marked span
// includes both markers, so the start marker sits at Start and the end
// marker at End-1.
func boundaryTags(n int, s1, s2 model.Span) []int64 {
	tags := make([]int64, n)
	for _, s := range []model.Span{s1, s2} {
		tags[s.Start] = spanStartTag
		tags[s.End-1] = spanEndTag
	}
	return tags
}

// signedDistance produces the relative-position channel for one entity:
// i-Start (negative) strictly before the span, zero inside it, and i-End+1
// (positive) at or after End. The +1 keeps the first position after the
// span distinct from the zeros inside it, so values increase monotonically
// across the real tokens. Positions at or beyond realLen stay zero.
func signedDistance(n, realLen int, s model.Span) []int64 {
	d := make([]int64, n)
	for i := 0; i < realLen && i < n; i++ {
		switch {
		case i < s.Start:
			d[i] = int64(i - s.Start)
		case i < s.End:
			d[i] = 0
		default:
			d[i] = int64(i - s.End + 1)
		}
	}
	return d
}
