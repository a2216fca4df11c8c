package storage

import (
	"errors"

	"flakerun/internal/config"
)

// ErrNoReport is returned by Load when no campaign has written a report yet
var ErrNoReport = errors.New("no failure report found")

// Storage persists the failure report of a campaign
type Storage interface {
	// Create truncates the report and returns a writer for the new run.
	Create() (ReportWriter, error)
	// Load returns the identifiers recorded by the last run, in order.
	Load() ([]string, error)
	// Save replaces the report with the given identifiers (e.g. after re-running failed cases).
	Save(identifiers []string) error
	// Path returns where the report lives.
	Path() string
}

// ReportWriter appends failed identifiers to a report opened by Create.
// Close must be called exactly once; it flushes buffered lines.
type ReportWriter interface {
	Append(identifier string) error
	Close() error
}

// TextStorage stores the report as plain text, one identifier per line,
// at the config's report path.
type TextStorage struct {
	cfg *config.Config
}

// NewTextStorage returns a Storage backed by the config's report file
func NewTextStorage(cfg *config.Config) *TextStorage {
	return &TextStorage{cfg: cfg}
}
