package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/crimson-sun/relprep/internal/model"
	"github.com/crimson-sun/relprep/internal/output"
)

const defaultBufSize = 64 * 1024 // 64KB

// Option configures a file Writer.
type Option func(*Writer)

// WithMaxSize sets the file size (bytes) at which rotation triggers.
// 0 (default) disables rotation.
func WithMaxSize(bytes int64) Option {
	return func(w *Writer) { w.maxSize = bytes }
}

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(w *Writer) { w.bufSize = bytes }
}

// Writer writes feature records as NDJSON to a file with buffered I/O and
// optional size-based rotation.
type Writer struct {
	w         *bufio.Writer
	f         *os.File
	mu        sync.Mutex
	path      string
	verbosity output.Verbosity
	maxSize   int64 // 0 = no rotation
	written   int64
	bufSize   int
}

// New creates a file writer that appends NDJSON records to the given path.
func New(path string, verbosity output.Verbosity, opts ...Option) (*Writer, error) {
	w := &Writer{
		path:      path,
		verbosity: verbosity,
		bufSize:   defaultBufSize,
	}
	for _, opt := range opts {
		opt(w)
	}
	if err := w.openFile(); err != nil {
		return nil, err
	}
	return w, nil
}

// Write JSON-encodes the record and appends it as a line to the file.
func (w *Writer) Write(_ context.Context, rec model.FeatureRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	formatted := output.FormatRecord(rec, w.verbosity)
	data, err := json.Marshal(formatted)
	if err != nil {
		return fmt.Errorf("file output: marshal: %w", err)
	}
	data = append(data, '\n')

	if w.maxSize > 0 && w.written+int64(len(data)) > w.maxSize {
		if err := w.rotate(); err != nil {
			return fmt.Errorf("file output: rotate: %w", err)
		}
	}

	n, err := w.w.Write(data)
	w.written += int64(n)
	if err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.w.Flush(); err != nil {
		w.f.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	return w.f.Close()
}

// openFile opens (or creates) the output file and wraps it in a bufio.Writer.
func (w *Writer) openFile() error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("file output: open %s: %w", w.path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("file output: stat %s: %w", w.path, err)
	}
	w.f = f
	w.w = bufio.NewWriterSize(f, w.bufSize)
	w.written = info.Size()
	return nil
}

// rotate flushes, closes the current file, renames it to {path}.1
// (shifting existing rotated files), and opens a new file.
func (w *Writer) rotate() error {
	if err := w.w.Flush(); err != nil {
		return err
	}
	if err := w.f.Close(); err != nil {
		return err
	}

	// Shift existing rotated files: .2 → .3, .1 → .2, current → .1
	for i := 9; i >= 1; i-- {
		from := fmt.Sprintf("%s.%d", w.path, i)
		to := fmt.Sprintf("%s.%d", w.path, i+1)
		os.Rename(from, to) // ignore errors — file may not exist
	}
	if err := os.Rename(w.path, w.path+".1"); err != nil {
		return err
	}

	w.written = 0
	return w.openFile()
}
