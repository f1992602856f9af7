// Package tacred reads TACRED-style JSON splits: a single JSON array of
// examples with pre-split tokens, subject/object spans with inclusive end
// indices, and a relation label.
package tacred

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/crimson-sun/relprep/internal/dataset"
	"github.com/crimson-sun/relprep/internal/model"
)

func init() {
	dataset.Register("tacred", func() dataset.Reader {
		return &Reader{}
	})
}

// Reader implements dataset.Reader for TACRED JSON files.
type Reader struct{}

type example struct {
	ID        string   `json:"id"`
	Token     []string `json:"token"`
	SubjStart int      `json:"subj_start"`
	SubjEnd   int      `json:"subj_end"` // inclusive
	ObjStart  int      `json:"obj_start"`
	ObjEnd    int      `json:"obj_end"` // inclusive
	Relation  string   `json:"relation"`
}

func (r *Reader) Read(ctx context.Context, path string) ([]model.RawExample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tacred: %w", err)
	}

	var raw []example
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("tacred: %s: %w", path, err)
	}

	examples := make([]model.RawExample, 0, len(raw))
	for i, ex := range raw {
		guid := ex.ID
		if guid == "" {
			guid = fmt.Sprintf("tacred-%d", i)
		}

		// TACRED span ends are inclusive; convert to half-open. The feature
		// stage requires the first span to precede the second, so order the
		// subject/object spans by start position.
		subj := model.Span{Start: ex.SubjStart, End: ex.SubjEnd + 1}
		obj := model.Span{Start: ex.ObjStart, End: ex.ObjEnd + 1}
		spans := [2]model.Span{subj, obj}
		if obj.Start < subj.Start {
			spans = [2]model.Span{obj, subj}
		}

		examples = append(examples, model.RawExample{
			GUID:     guid,
			Text:     strings.Join(ex.Token, " "),
			Label:    ex.Relation,
			Entities: spans,
		})
	}
	return examples, nil
}
