package dataset

import (
	"context"
	"testing"

	"github.com/crimson-sun/relprep/internal/model"
)

type nopReader struct{}

func (nopReader) Read(_ context.Context, _ string) ([]model.RawExample, error) {
	return nil, nil
}

func TestRegistry(t *testing.T) {
	Register("test-format", func() Reader { return nopReader{} })

	ctor, err := Get("test-format")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ctor() == nil {
		t.Fatal("constructor returned nil reader")
	}

	if _, err := Get("no-such-format"); err == nil {
		t.Error("expected error for unknown format")
	}

	found := false
	for _, name := range Formats() {
		if name == "test-format" {
			found = true
		}
	}
	if !found {
		t.Errorf("Formats() = %v, missing test-format", Formats())
	}
}
