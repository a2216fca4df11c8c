package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"flakerun/internal/domain"
)

// Console prints one status block per case while the executable's own
// output streams to the terminal
type Console struct {
	out   io.Writer
	total int
}

// NewConsole creates a Console writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Start prints the campaign header
func (c *Console) Start(total int) {
	c.total = total
	PrintHeader(c.out, "flakerun - Test Campaign")
	color.New(color.FgWhite).Fprintf(c.out, "Total cases: %d\n\n", total)
}

// CaseStarted prints the case and the exact command being run
func (c *Console) CaseStarted(index int, spec domain.TestCaseSpec, commandLine string) {
	color.New(color.FgCyan, color.Bold).Fprintf(c.out, "▶ [%d/%d] %s ", index+1, c.total, spec.Identifier)
	color.New(color.FgWhite).Fprintf(c.out, "x%d\n", spec.RepeatCount)
	color.New(color.FgHiBlack).Fprintf(c.out, "  $ %s\n", commandLine)
}

// CaseFinished prints the case outcome
func (c *Console) CaseFinished(_ int, result domain.CaseResult) {
	elapsed := result.Duration.Round(time.Millisecond)
	if result.Success {
		color.New(color.FgGreen).Fprintf(c.out, "✓ %s passed (%s)\n\n", result.Spec.Identifier, elapsed)
		return
	}
	color.New(color.FgRed).Fprintf(c.out, "✗ %s failed (%s)\n\n", result.Spec.Identifier, failureReason(result))
}

// Finish is a no-op, the summary is printed by the Formatter
func (c *Console) Finish(domain.CampaignSummary) {}

func failureReason(result domain.CaseResult) string {
	if result.Err != nil {
		return result.Err.Error()
	}
	return fmt.Sprintf("exit status %d", result.ExitCode)
}
