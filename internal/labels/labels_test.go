package labels

import (
	"errors"
	"testing"
)

func TestVocabularyIndex(t *testing.T) {
	v, err := New([]string{"x", "y", "z"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i, label := range []string{"x", "y", "z"} {
		id, err := v.Index(label)
		if err != nil {
			t.Fatalf("Index(%q): %v", label, err)
		}
		if id != int64(i) {
			t.Errorf("Index(%q) = %d, want %d", label, id, i)
		}
	}

	if _, err := v.Index("missing"); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("expected ErrUnknownLabel, got %v", err)
	}
}

func TestVocabularyValidation(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("expected error for empty label list")
	}
	if _, err := New([]string{"a", "b", "a"}); err == nil {
		t.Error("expected error for duplicate labels")
	}
}

func TestSemEval(t *testing.T) {
	v := SemEval()
	if v.Len() != 19 {
		t.Fatalf("SemEval label count = %d, want 19", v.Len())
	}

	// Index order must stay stable across runs.
	id, err := v.Index("Other")
	if err != nil {
		t.Fatalf("Index(Other): %v", err)
	}
	if id != 5 {
		t.Errorf("Index(Other) = %d, want 5", id)
	}
	id, err = v.Index("Cause-Effect(e1,e2)")
	if err != nil {
		t.Fatalf("Index(Cause-Effect(e1,e2)): %v", err)
	}
	if id != 16 {
		t.Errorf("Index(Cause-Effect(e1,e2)) = %d, want 16", id)
	}
}
