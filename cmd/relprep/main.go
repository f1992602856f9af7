package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/crimson-sun/relprep/internal/config"
	"github.com/crimson-sun/relprep/internal/dataset"
	"github.com/crimson-sun/relprep/internal/feature"
	"github.com/crimson-sun/relprep/internal/labels"
	"github.com/crimson-sun/relprep/internal/logging"
	"github.com/crimson-sun/relprep/internal/model"
	"github.com/crimson-sun/relprep/internal/output"
	"github.com/crimson-sun/relprep/internal/output/file"
	"github.com/crimson-sun/relprep/internal/output/stdout"
	"github.com/crimson-sun/relprep/internal/pipeline"
	"github.com/crimson-sun/relprep/internal/tokenize"

	// Register dataset readers.
	_ "github.com/crimson-sun/relprep/internal/dataset/semeval"
	_ "github.com/crimson-sun/relprep/internal/dataset/tacred"
)

func main() {
	cfg := config.Load()

	toStdout := cfg.Output.Format == "stdout"
	logging.Init(toStdout, logging.ParseLevel(cfg.Log.Level))

	if cfg.Dataset.Path == "" {
		log.Fatal("RELPREP_DATASET_PATH is required")
	}

	// Initialize tokenizer.
	tok, err := tokenize.New(cfg.Feature.VocabPath)
	if err != nil {
		log.Fatalf("failed to load vocab: %v", err)
	}

	// Resolve task: an explicit YAML task file overrides the defaults,
	// otherwise SemEval-2010 Task 8 classification applies.
	opts := feature.Options{
		MaxSeqLength: cfg.Feature.MaxSeqLength,
		Mode:         model.OutputMode(cfg.Feature.OutputMode),
		Workers:      cfg.Feature.Workers,
	}
	var labelVocab *labels.Vocabulary
	if cfg.Feature.TaskPath != "" {
		task, err := config.LoadTask(cfg.Feature.TaskPath)
		if err != nil {
			log.Fatalf("failed to load task: %v", err)
		}
		opts.Mode = model.OutputMode(task.OutputMode)
		if task.MaxSeqLength > 0 {
			opts.MaxSeqLength = task.MaxSeqLength
		}
		if len(task.Markers) == 4 {
			opts.Markers = feature.Markers{task.Markers[0], task.Markers[1], task.Markers[2], task.Markers[3]}
		}
		if opts.Mode == model.Classification {
			labelVocab, err = labels.New(task.Labels)
			if err != nil {
				log.Fatalf("failed to build label vocabulary: %v", err)
			}
		}
	} else if opts.Mode == model.Classification {
		labelVocab = labels.SemEval()
	}

	conv, err := feature.NewConverter(tok, labelVocab, opts)
	if err != nil {
		log.Fatalf("failed to create converter: %v", err)
	}

	// Resolve dataset reader.
	ctor, err := dataset.Get(cfg.Dataset.Format)
	if err != nil {
		log.Fatalf("failed to get dataset reader: %v (available: %v)", err, dataset.Formats())
	}
	reader := ctor()

	// Initialize output.
	verbosity := output.ParseVerbosity(cfg.Output.Verbosity)
	var out output.Writer
	switch cfg.Output.Format {
	case "stdout":
		out = stdout.New(verbosity, false)
	case "file":
		out, err = file.New(cfg.Output.Path, verbosity)
		if err != nil {
			log.Fatalf("failed to open output file: %v", err)
		}
	default:
		log.Fatalf("unknown output format: %s", cfg.Output.Format)
	}

	// Build pipeline.
	p := pipeline.New(reader, conv, out)
	defer p.Close()

	// Set up graceful shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(os.Stderr, "\nreceived %v, shutting down...\n", sig)
		cancel()
	}()

	fmt.Fprintf(os.Stderr, "relprep: preparing %s split %s\n", cfg.Dataset.Format, cfg.Dataset.Path)
	g, err := p.Run(ctx, cfg.Dataset.Path)
	if err != nil {
		log.Fatalf("pipeline error: %v", err)
	}

	if cfg.Output.GraphPath != "" {
		if err := output.WriteGraph(cfg.Output.GraphPath, g); err != nil {
			log.Fatalf("failed to write entity graph: %v", err)
		}
	}
}
