package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Task describes a relation extraction task: its label set and the
// sequence parameters used when converting its examples. Task files let a
// single binary serve datasets beyond the built-in ones.
type Task struct {
	Name         string   `yaml:"name"`
	Labels       []string `yaml:"labels"`
	OutputMode   string   `yaml:"output_mode"`
	MaxSeqLength int      `yaml:"max_seq_length"`
	Markers      []string `yaml:"markers"`
}

// LoadTask reads and validates a YAML task file.
func LoadTask(path string) (Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Task{}, fmt.Errorf("task config: read %s: %w", path, err)
	}
	var t Task
	if err := yaml.UnmarshalStrict(data, &t); err != nil {
		return Task{}, fmt.Errorf("task config: parse %s: %w", path, err)
	}
	if t.Name == "" {
		return Task{}, fmt.Errorf("task config: %s: missing name", path)
	}
	if t.OutputMode == "" {
		t.OutputMode = "classification"
	}
	if t.OutputMode == "classification" && len(t.Labels) == 0 {
		return Task{}, fmt.Errorf("task config: %s: classification task needs labels", path)
	}
	if len(t.Markers) != 0 && len(t.Markers) != 4 {
		return Task{}, fmt.Errorf("task config: %s: markers must list exactly 4 tokens, got %d", path, len(t.Markers))
	}
	return t, nil
}
