package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Path returns the resolved report path
func (s *TextStorage) Path() string {
	return s.cfg.GetReportPath()
}

// Create truncates the report file, creating it and its directory if needed
func (s *TextStorage) Create() (ReportWriter, error) {
	path := s.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	return &textWriter{file: f, buf: bufio.NewWriter(f)}, nil
}

// Load reads the identifiers of the last report. Blank lines are skipped.
func (s *TextStorage) Load() ([]string, error) {
	f, err := os.Open(s.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoReport
		}
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	identifiers := make([]string, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		identifiers = append(identifiers, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	return identifiers, nil
}

// Save rewrites the report with the given identifiers
func (s *TextStorage) Save(identifiers []string) (err error) {
	w, err := s.Create()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	for _, id := range identifiers {
		if err := w.Append(id); err != nil {
			return err
		}
	}
	return nil
}

type textWriter struct {
	file   *os.File
	buf    *bufio.Writer
	closed bool
}

func (w *textWriter) Append(identifier string) error {
	if w.closed {
		return fmt.Errorf("append %q: %w", identifier, os.ErrClosed)
	}
	if _, err := w.buf.WriteString(identifier + "\n"); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (w *textWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	flushErr := w.buf.Flush()
	closeErr := w.file.Close()
	if flushErr != nil {
		return fmt.Errorf("flush report: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close report: %w", closeErr)
	}
	return nil
}
