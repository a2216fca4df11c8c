package execution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flakerun/internal/config"
	"flakerun/internal/domain"
	"flakerun/internal/storage"
)

// Campaign runs a catalogue against the test executable, one case at a time
type Campaign struct {
	config   *config.Config
	process  ProcessRunner
	storage  storage.Storage
	progress Progress
}

// NewCampaign creates a new Campaign
func NewCampaign(cfg *config.Config, process ProcessRunner, st storage.Storage) *Campaign {
	return &Campaign{
		config:   cfg,
		process:  process,
		storage:  st,
		progress: noProgress{},
	}
}

// SetProgress sets the observer notified around each invocation
func (c *Campaign) SetProgress(progress Progress) {
	if progress == nil {
		progress = noProgress{}
	}
	c.progress = progress
}

// Run executes every entry of cat in order and writes the identifiers of the
// failed ones to the report. The report is truncated before the first
// invocation and closed after the last one.
//
// Case failures never stop the campaign. The returned error is only set when
// the report could not be written; the returned report is complete either way.
func (c *Campaign) Run(ctx context.Context, cat domain.Catalogue) (report *domain.FailureReport, summary domain.CampaignSummary, err error) {
	report = domain.NewFailureReport()
	summary.ReportPath = c.storage.Path()

	w, err := c.storage.Create()
	if err != nil {
		return report, summary, err
	}

	var writeErr error
	defer func() {
		err = errors.Join(writeErr, w.Close())
	}()

	start := time.Now()
	c.progress.Start(len(cat))
	for i, spec := range cat {
		result := c.runCase(ctx, i, spec)
		summary.Record(result)
		if result.Success {
			continue
		}
		report.Add(spec.Identifier)
		// keep going so the in-memory report covers the whole catalogue
		if aerr := w.Append(spec.Identifier); aerr != nil && writeErr == nil {
			writeErr = aerr
		}
	}
	summary.Duration = time.Since(start)
	c.progress.Finish(summary)

	return report, summary, nil
}

// RunCase runs a single entry without touching the report
func (c *Campaign) RunCase(ctx context.Context, spec domain.TestCaseSpec) domain.CaseResult {
	return c.runCase(ctx, 0, spec)
}

// CommandLine returns the shell command that reproduces spec's invocation
func (c *Campaign) CommandLine(spec domain.TestCaseSpec) string {
	return CommandLine(c.config.GetExecutablePath(), GTestArgs(spec))
}

func (c *Campaign) runCase(ctx context.Context, index int, spec domain.TestCaseSpec) domain.CaseResult {
	executable := c.config.GetExecutablePath()
	args := GTestArgs(spec)
	c.progress.CaseStarted(index, spec, CommandLine(executable, args))

	start := time.Now()
	code, err := c.process.Run(ctx, executable, args)
	result := domain.CaseResult{
		Spec:     spec,
		Success:  err == nil && code == 0,
		ExitCode: code,
		Err:      err,
		Duration: time.Since(start),
	}
	if err != nil {
		result.Err = fmt.Errorf("invoke %s: %w", spec.Identifier, err)
	}

	c.progress.CaseFinished(index, result)
	return result
}
