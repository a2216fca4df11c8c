package ui

import (
	"context"

	"flakerun/internal/domain"
)

// Viewer displays the failed cases of the last campaign
type Viewer interface {
	View(ctx context.Context, failed []string) error
}

// CaseRunner re-runs a single catalogue entry
type CaseRunner interface {
	RunCase(ctx context.Context, spec domain.TestCaseSpec) domain.CaseResult
	CommandLine(spec domain.TestCaseSpec) string
}
