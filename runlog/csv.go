package runlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvlmaze/metrics"
)

// ErrNilRun is returned when a nil metrics record is appended.
var ErrNilRun = errors.New("runlog: run record is nil")

// CSVLogger appends run rows to a CSV file, writing the header exactly
// once — on first append to an empty or missing file.
type CSVLogger struct {
	path string
}

// NewCSVLogger prepares a logger for path, creating parent directories.
func NewCSVLogger(path string) (*CSVLogger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("runlog: create results dir: %w", err)
		}
	}

	return &CSVLogger{path: path}, nil
}

// Path returns the target CSV file.
func (l *CSVLogger) Path() string { return l.path }

// Append writes one row per run, preceded by the header if the file is new
// or empty.
func (l *CSVLogger) Append(runs ...*metrics.Run) error {
	if len(runs) == 0 {
		return nil
	}
	for _, r := range runs {
		if r == nil {
			return ErrNilRun
		}
	}

	needHeader, err := l.needHeader()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("runlog: open %s: %w", l.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needHeader {
		if err = w.Write(metrics.Header()); err != nil {
			return fmt.Errorf("runlog: write header: %w", err)
		}
	}
	for _, r := range runs {
		if err = w.Write(r.Row()); err != nil {
			return fmt.Errorf("runlog: write row %s: %w", r.RunID, err)
		}
	}
	w.Flush()

	return w.Error()
}

// needHeader reports whether the target file is missing or empty.
func (l *CSVLogger) needHeader() (bool, error) {
	info, err := os.Stat(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}

		return false, fmt.Errorf("runlog: stat %s: %w", l.path, err)
	}

	return info.Size() == 0, nil
}
