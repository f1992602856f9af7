package config

import (
	"os"
	"runtime"
	"strconv"
)

// Config holds all relprep configuration.
type Config struct {
	Dataset DatasetConfig
	Feature FeatureConfig
	Output  OutputConfig
	Log     LogConfig
}

// DatasetConfig holds input dataset settings.
type DatasetConfig struct {
	Format string // "semeval", "tacred"
	Path   string
}

// FeatureConfig holds feature conversion settings.
type FeatureConfig struct {
	VocabPath    string
	TaskPath     string // optional YAML task file
	MaxSeqLength int
	OutputMode   string // "classification", "regression"
	Workers      int
}

// OutputConfig holds output destination settings.
type OutputConfig struct {
	Format    string // "stdout", "file"
	Path      string // feature records file (Format == "file")
	GraphPath string // entity graph file; empty skips the graph artifact
	Verbosity string // "minimal", "standard", "full"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Dataset: DatasetConfig{
			Format: getenv("RELPREP_DATASET", "semeval"),
			Path:   os.Getenv("RELPREP_DATASET_PATH"),
		},
		Feature: FeatureConfig{
			VocabPath:    getenv("RELPREP_VOCAB_PATH", "models/vocab.txt"),
			TaskPath:     os.Getenv("RELPREP_TASK_PATH"),
			MaxSeqLength: getenvInt("RELPREP_MAX_SEQ_LENGTH", 128),
			OutputMode:   getenv("RELPREP_OUTPUT_MODE", "classification"),
			Workers:      getenvInt("RELPREP_WORKERS", runtime.NumCPU()),
		},
		Output: OutputConfig{
			Format:    getenv("RELPREP_OUTPUT", "stdout"),
			Path:      getenv("RELPREP_FEATURES_PATH", "features.ndjson"),
			GraphPath: os.Getenv("RELPREP_GRAPH_PATH"),
			Verbosity: getenv("RELPREP_VERBOSITY", "standard"),
		},
		Log: LogConfig{
			Level: getenv("RELPREP_LOG_LEVEL", "info"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
