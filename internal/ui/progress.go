package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"flakerun/internal/domain"
)

// ProgressBar shows campaign progress when the executable's output is suppressed
type ProgressBar struct {
	bar    *progressbar.ProgressBar
	passed int
	failed int
}

// NewProgressBar creates a new progress bar
func NewProgressBar(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0, "")),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Start resizes the bar to the number of cases
func (p *ProgressBar) Start(total int) {
	p.bar.ChangeMax(total)
}

// CaseStarted shows which case is running
func (p *ProgressBar) CaseStarted(_ int, spec domain.TestCaseSpec, _ string) {
	p.bar.Describe(describe(p.passed, p.failed, spec.Identifier))
}

// CaseFinished counts the result and advances the bar
func (p *ProgressBar) CaseFinished(_ int, result domain.CaseResult) {
	if result.Success {
		p.Update(p.passed+1, p.failed)
	} else {
		p.Update(p.passed, p.failed+1)
	}
}

// Finish completes the progress bar
func (p *ProgressBar) Finish(domain.CampaignSummary) {
	p.bar.Finish()
}

// Update updates the progress bar with success and failure counts
func (p *ProgressBar) Update(successCount, failCount int) {
	p.passed, p.failed = successCount, failCount
	p.bar.Set(successCount + failCount)
	p.bar.Describe(describe(successCount, failCount, ""))
}

func describe(successCount, failCount int, current string) string {
	desc := color.CyanString("Running cases: ") +
		color.GreenString("[success: %d", successCount) +
		" | " +
		color.RedString("failed: %d]", failCount)
	if current != "" {
		desc += " " + color.YellowString(current)
	}
	return desc
}
