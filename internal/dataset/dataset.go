// Package dataset defines the reader interface for corpus files and a
// registry of format-specific implementations. Readers only parse lines
// into RawExamples; all feature semantics live downstream.
package dataset

import (
	"context"
	"fmt"

	"github.com/crimson-sun/relprep/internal/model"
)

// Reader loads one split file into raw examples.
type Reader interface {
	Read(ctx context.Context, path string) ([]model.RawExample, error)
}

// Constructor is a function that creates a new Reader instance.
type Constructor func() Reader

var registry = map[string]Constructor{}

// Register adds a reader constructor under the given format name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the reader constructor for the given format name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown dataset format: %s", name)
	}
	return ctor, nil
}

// Formats returns the names of all registered dataset formats.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
