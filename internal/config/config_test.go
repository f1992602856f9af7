package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Dataset.Format != "semeval" {
		t.Errorf("Dataset.Format = %q, want semeval", cfg.Dataset.Format)
	}
	if cfg.Feature.MaxSeqLength != 128 {
		t.Errorf("Feature.MaxSeqLength = %d, want 128", cfg.Feature.MaxSeqLength)
	}
	if cfg.Feature.OutputMode != "classification" {
		t.Errorf("Feature.OutputMode = %q, want classification", cfg.Feature.OutputMode)
	}
	if cfg.Output.Format != "stdout" {
		t.Errorf("Output.Format = %q, want stdout", cfg.Output.Format)
	}
	if cfg.Output.Verbosity != "standard" {
		t.Errorf("Output.Verbosity = %q, want standard", cfg.Output.Verbosity)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RELPREP_DATASET", "tacred")
	t.Setenv("RELPREP_DATASET_PATH", "/data/train.json")
	t.Setenv("RELPREP_MAX_SEQ_LENGTH", "256")
	t.Setenv("RELPREP_WORKERS", "4")
	t.Setenv("RELPREP_OUTPUT", "file")
	t.Setenv("RELPREP_GRAPH_PATH", "/data/graph.json")

	cfg := Load()

	if cfg.Dataset.Format != "tacred" {
		t.Errorf("Dataset.Format = %q, want tacred", cfg.Dataset.Format)
	}
	if cfg.Dataset.Path != "/data/train.json" {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
	if cfg.Feature.MaxSeqLength != 256 {
		t.Errorf("Feature.MaxSeqLength = %d, want 256", cfg.Feature.MaxSeqLength)
	}
	if cfg.Feature.Workers != 4 {
		t.Errorf("Feature.Workers = %d, want 4", cfg.Feature.Workers)
	}
	if cfg.Output.GraphPath != "/data/graph.json" {
		t.Errorf("Output.GraphPath = %q", cfg.Output.GraphPath)
	}
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("RELPREP_MAX_SEQ_LENGTH", "not-a-number")

	cfg := Load()
	if cfg.Feature.MaxSeqLength != 128 {
		t.Errorf("Feature.MaxSeqLength = %d, want fallback 128", cfg.Feature.MaxSeqLength)
	}
}

func TestLoadTask(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task.yaml")
	content := `name: custom-rel
labels:
  - no-relation
  - works-for
  - based-in
output_mode: classification
max_seq_length: 96
markers: ["<s1>", "<e1>", "<s2>", "<e2>"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write task file: %v", err)
	}

	task, err := LoadTask(path)
	if err != nil {
		t.Fatalf("LoadTask: %v", err)
	}
	if task.Name != "custom-rel" {
		t.Errorf("Name = %q", task.Name)
	}
	if len(task.Labels) != 3 || task.Labels[1] != "works-for" {
		t.Errorf("Labels = %v", task.Labels)
	}
	if task.MaxSeqLength != 96 {
		t.Errorf("MaxSeqLength = %d", task.MaxSeqLength)
	}
	if len(task.Markers) != 4 || task.Markers[0] != "<s1>" {
		t.Errorf("Markers = %v", task.Markers)
	}
}

func TestLoadTaskDefaultsOutputMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task.yaml")
	content := "name: scored-rel\nlabels: [a, b]\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write task file: %v", err)
	}

	task, err := LoadTask(path)
	if err != nil {
		t.Fatalf("LoadTask: %v", err)
	}
	if task.OutputMode != "classification" {
		t.Errorf("OutputMode = %q, want classification", task.OutputMode)
	}
}

func TestLoadTaskValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing name", "labels: [a, b]\n"},
		{"classification without labels", "name: empty\n"},
		{"wrong marker count", "name: m\nlabels: [a]\nmarkers: [\"<s1>\", \"<e1>\"]\n"},
		{"unknown field", "name: m\nlabels: [a]\nvocab: extra\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "task.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("write task file: %v", err)
			}
			if _, err := LoadTask(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadTaskMissingFile(t *testing.T) {
	if _, err := LoadTask(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
