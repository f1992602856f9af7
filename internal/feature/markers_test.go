package feature

import (
	"errors"
	"reflect"
	"testing"

	"github.com/crimson-sun/relprep/internal/model"
)

func TestInjectMarkers(t *testing.T) {
	tokens := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	out, m1, m2, err := injectMarkers(tokens, model.Span{Start: 1, End: 2}, model.Span{Start: 4, End: 6}, DefaultMarkers(), 32)
	if err != nil {
		t.Fatalf("injectMarkers: %v", err)
	}

	want := []string{"a", "<s1>", "b", "<e1>", "c", "d", "<s2>", "e", "f", "<e2>", "g", "h", "i", "j"}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("tokens mismatch\n  want: %v\n  got:  %v", want, out)
	}
	if m1 != (model.Span{Start: 1, End: 4}) {
		t.Errorf("entity 1 span = %v, want [1,4)", m1)
	}
	if m2 != (model.Span{Start: 6, End: 10}) {
		t.Errorf("entity 2 span = %v, want [6,10)", m2)
	}

	// Both marked spans include their own markers.
	if out[m1.Start] != "<s1>" || out[m1.End-1] != "<e1>" {
		t.Errorf("entity 1 span %v does not cover its markers: %v", m1, out[m1.Start:m1.End])
	}
	if out[m2.Start] != "<s2>" || out[m2.End-1] != "<e2>" {
		t.Errorf("entity 2 span %v does not cover its markers: %v", m2, out[m2.Start:m2.End])
	}
}

func TestInjectMarkersAdjacentSpans(t *testing.T) {
	tokens := []string{"a", "b", "c", "d"}
	out, m1, m2, err := injectMarkers(tokens, model.Span{Start: 0, End: 1}, model.Span{Start: 1, End: 2}, DefaultMarkers(), 16)
	if err != nil {
		t.Fatalf("injectMarkers: %v", err)
	}
	want := []string{"<s1>", "a", "<e1>", "<s2>", "b", "<e2>", "c", "d"}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("tokens mismatch\n  want: %v\n  got:  %v", want, out)
	}
	if m1 != (model.Span{Start: 0, End: 3}) || m2 != (model.Span{Start: 3, End: 6}) {
		t.Errorf("spans = %v %v, want [0,3) [3,6)", m1, m2)
	}
}

func TestInjectMarkersOverflow(t *testing.T) {
	tokens := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	// Marked second span ends at 10; budget is max_seq_length-3 = 9.
	_, _, _, err := injectMarkers(tokens, model.Span{Start: 0, End: 1}, model.Span{Start: 4, End: 6}, DefaultMarkers(), 12)
	if !errors.Is(err, ErrSpanOverflow) {
		t.Fatalf("expected ErrSpanOverflow, got %v", err)
	}
}

func TestInjectMarkersSpanOrder(t *testing.T) {
	tokens := []string{"a", "b", "c", "d", "e", "f"}

	tests := []struct {
		name   string
		s1, s2 model.Span
	}{
		{"second before first", model.Span{Start: 4, End: 6}, model.Span{Start: 0, End: 2}},
		{"overlapping", model.Span{Start: 1, End: 4}, model.Span{Start: 3, End: 5}},
		{"out of bounds", model.Span{Start: 0, End: 2}, model.Span{Start: 4, End: 7}},
		{"empty first span", model.Span{Start: 2, End: 2}, model.Span{Start: 3, End: 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := injectMarkers(tokens, tc.s1, tc.s2, DefaultMarkers(), 64)
			if !errors.Is(err, ErrSpanOrder) {
				t.Fatalf("expected ErrSpanOrder, got %v", err)
			}
		})
	}
}
