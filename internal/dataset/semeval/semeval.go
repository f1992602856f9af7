// Package semeval reads SemEval-2010 Task 8 style JSONL splits: one JSON
// object per line with pre-split tokens, a relation label, and two entity
// spans in half-open whitespace-token coordinates.
package semeval

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/crimson-sun/relprep/internal/dataset"
	"github.com/crimson-sun/relprep/internal/model"
)

func init() {
	dataset.Register("semeval", func() dataset.Reader {
		return &Reader{}
	})
}

// Reader implements dataset.Reader for SemEval JSONL files.
type Reader struct{}

type line struct {
	Tokens   []string `json:"tokens"`
	Label    string   `json:"label"`
	Entities [][]int  `json:"entities"`
}

func (r *Reader) Read(ctx context.Context, path string) ([]model.RawExample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("semeval: %w", err)
	}
	defer f.Close()

	split := splitName(path)
	var examples []model.RawExample

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for i := 0; scanner.Scan(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var l line
		if err := json.Unmarshal([]byte(raw), &l); err != nil {
			return nil, fmt.Errorf("semeval: %s line %d: %w", path, i+1, err)
		}
		if len(l.Entities) != 2 {
			return nil, fmt.Errorf("semeval: %s line %d: want 2 entity spans, got %d", path, i+1, len(l.Entities))
		}

		var spans [2]model.Span
		for k, e := range l.Entities {
			if len(e) != 2 {
				return nil, fmt.Errorf("semeval: %s line %d: entity %d span must be [start, end]", path, i+1, k)
			}
			spans[k] = model.Span{Start: e[0], End: e[1]}
		}

		examples = append(examples, model.RawExample{
			GUID:     fmt.Sprintf("%s-%d", split, i),
			Text:     strings.Join(l.Tokens, " "),
			Label:    l.Label,
			Entities: spans,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("semeval: %s: %w", path, err)
	}
	return examples, nil
}

// splitName derives the GUID prefix from the file name: "train.jsonl"
// yields "train".
func splitName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
