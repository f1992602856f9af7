// Package labels manages order-stable label vocabularies for classification
// tasks. A label's class index is its position in the task's label list, so
// the list order must never change between preparation and training.
package labels

import (
	"errors"
	"fmt"
)

// ErrUnknownLabel indicates a label absent from the task vocabulary. This is
// a dataset/vocabulary inconsistency, never recoverable.
var ErrUnknownLabel = errors.New("labels: label not in vocabulary")

// Vocabulary maps label strings to stable class indices.
type Vocabulary struct {
	order []string
	index map[string]int64
}

// New builds a Vocabulary from an ordered label list. Duplicate labels are
// rejected: they would make the class indices ambiguous.
func New(list []string) (*Vocabulary, error) {
	if len(list) == 0 {
		return nil, errors.New("labels: empty label list")
	}
	index := make(map[string]int64, len(list))
	order := make([]string, len(list))
	for i, label := range list {
		if _, dup := index[label]; dup {
			return nil, fmt.Errorf("labels: duplicate label %q", label)
		}
		index[label] = int64(i)
		order[i] = label
	}
	return &Vocabulary{order: order, index: index}, nil
}

// Index returns the class index of label, or ErrUnknownLabel.
func (v *Vocabulary) Index(label string) (int64, error) {
	id, ok := v.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return id, nil
}

// Labels returns the labels in index order.
func (v *Vocabulary) Labels() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

// Len returns the number of labels.
func (v *Vocabulary) Len() int {
	return len(v.order)
}
