package relprep_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crimson-sun/relprep/pkg/relprep"
)

var testVocab = []string{
	"[PAD]", "[UNK]", "[CLS]", "[SEP]",
	"<s1>", "<e1>", "<s2>", "<e2>",
	"the", "fire", "was", "caused", "by", "a", "cigarette", "dog",
}

func writeVocab(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.txt")
	if err := os.WriteFile(path, []byte(strings.Join(testVocab, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("write vocab: %v", err)
	}
	return path
}

func TestNewRequiresVocabPath(t *testing.T) {
	if _, err := relprep.New(); err == nil {
		t.Fatal("expected error without vocab path")
	}
}

func TestPrepare(t *testing.T) {
	p, err := relprep.New(
		relprep.WithVocabPath(writeVocab(t)),
		relprep.WithMaxSeqLength(32),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec, err := p.Prepare(relprep.Example{
		GUID:    "train-0",
		Text:    "the fire was caused by a cigarette",
		Label:   "Cause-Effect(e2,e1)",
		Entity1: relprep.Span{Start: 1, End: 2},
		Entity2: relprep.Span{Start: 6, End: 7},
	})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	if rec.GUID != "train-0" {
		t.Errorf("GUID = %q", rec.GUID)
	}
	if rec.LabelID != 13 {
		t.Errorf("LabelID = %d, want 13", rec.LabelID)
	}
	wantTokens := []string{
		"[CLS]", "the", "<s1>", "fire", "<e1>", "was", "caused", "by", "a",
		"<s2>", "cigarette", "<e2>", "[SEP]",
	}
	if len(rec.Tokens) != len(wantTokens) {
		t.Fatalf("Tokens = %v", rec.Tokens)
	}
	for i, tok := range wantTokens {
		if rec.Tokens[i] != tok {
			t.Errorf("Tokens[%d] = %q, want %q", i, rec.Tokens[i], tok)
		}
	}
	if len(rec.InputIDs) != 32 {
		t.Fatalf("InputIDs length = %d, want 32", len(rec.InputIDs))
	}

	// First marked entity occupies positions 2-4, second 9-11.
	if rec.EntityMask[2] != 1 || rec.EntityMask[4] != 1 || rec.EntityMask[9] != 1 || rec.EntityMask[11] != 1 {
		t.Errorf("EntityMask = %v", rec.EntityMask)
	}
	if rec.EntityMask[0] != 0 || rec.EntityMask[5] != 0 {
		t.Errorf("EntityMask = %v", rec.EntityMask)
	}
	if rec.EntitySegPos[2] != 1 || rec.EntitySegPos[4] != 2 {
		t.Errorf("EntitySegPos = %v", rec.EntitySegPos)
	}
}

func TestPrepareCustomLabels(t *testing.T) {
	p, err := relprep.New(
		relprep.WithVocabPath(writeVocab(t)),
		relprep.WithLabels([]string{"no-relation", "cause"}),
		relprep.WithMaxSeqLength(32),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec, err := p.Prepare(relprep.Example{
		GUID:    "x-0",
		Text:    "the fire was caused by a cigarette",
		Label:   "cause",
		Entity1: relprep.Span{Start: 1, End: 2},
		Entity2: relprep.Span{Start: 6, End: 7},
	})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if rec.LabelID != 1 {
		t.Errorf("LabelID = %d, want 1", rec.LabelID)
	}
}

func TestPrepareRegression(t *testing.T) {
	p, err := relprep.New(
		relprep.WithVocabPath(writeVocab(t)),
		relprep.WithOutputMode("regression"),
		relprep.WithMaxSeqLength(32),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec, err := p.Prepare(relprep.Example{
		GUID:    "x-0",
		Text:    "the fire was caused by a cigarette",
		Label:   "0.75",
		Entity1: relprep.Span{Start: 1, End: 2},
		Entity2: relprep.Span{Start: 6, End: 7},
	})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if rec.LabelValue != 0.75 {
		t.Errorf("LabelValue = %v, want 0.75", rec.LabelValue)
	}
}

func TestPrepareBadSpan(t *testing.T) {
	p, err := relprep.New(
		relprep.WithVocabPath(writeVocab(t)),
		relprep.WithMaxSeqLength(32),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = p.Prepare(relprep.Example{
		GUID:    "x-0",
		Text:    "the fire",
		Label:   "Other",
		Entity1: relprep.Span{Start: 0, End: 1},
		Entity2: relprep.Span{Start: 5, End: 6},
	})
	if err == nil {
		t.Fatal("expected error for out-of-range span")
	}
	if !strings.Contains(err.Error(), "x-0") {
		t.Errorf("error should name the example: %v", err)
	}
}

func TestPrepareBatch(t *testing.T) {
	p, err := relprep.New(
		relprep.WithVocabPath(writeVocab(t)),
		relprep.WithMaxSeqLength(32),
		relprep.WithWorkers(2),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	examples := []relprep.Example{
		{
			GUID:    "train-0",
			Text:    "the fire was caused by a cigarette",
			Label:   "Cause-Effect(e2,e1)",
			Entity1: relprep.Span{Start: 1, End: 2},
			Entity2: relprep.Span{Start: 6, End: 7},
		},
		{
			GUID:    "train-1",
			Text:    "the dog was caused by a cigarette",
			Label:   "Other",
			Entity1: relprep.Span{Start: 1, End: 2},
			Entity2: relprep.Span{Start: 6, End: 7},
		},
	}

	records, g, err := p.PrepareBatch(context.Background(), examples)
	if err != nil {
		t.Fatalf("PrepareBatch: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records", len(records))
	}
	if records[0].GUID != "train-0" || records[1].GUID != "train-1" {
		t.Errorf("record order = %s, %s", records[0].GUID, records[1].GUID)
	}

	// fire, cigarette, dog: three nodes, cigarette linked to both others.
	if len(g.Entities) != 3 {
		t.Fatalf("graph entities = %v", g.Entities)
	}
	if len(g.Degree) != 3 || len(g.Spectral) != 3 {
		t.Fatalf("graph shapes: degree %d, spectral %d", len(g.Degree), len(g.Spectral))
	}
	for i := range g.Spectral {
		for j := range g.Spectral[i] {
			if g.Spectral[i][j] != g.Spectral[j][i] {
				t.Errorf("spectral not symmetric at (%d,%d)", i, j)
			}
		}
		if g.Spectral[i][i] <= 0 || g.Spectral[i][i] > 1 {
			t.Errorf("spectral diagonal out of range at %d: %v", i, g.Spectral[i][i])
		}
	}
}
