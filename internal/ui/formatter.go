package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"flakerun/internal/domain"
)

const boxWidth = 61

// Formatter formats and displays campaign output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintHeader prints a boxed title
func PrintHeader(out io.Writer, title string) {
	cyan := color.New(color.FgCyan)
	pad := boxWidth - utf8.RuneCountInString(title)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	cyan.Fprintln(out, "╔"+strings.Repeat("═", boxWidth)+"╗")
	cyan.Fprintln(out, "║"+strings.Repeat(" ", left)+title+strings.Repeat(" ", pad-left)+"║")
	cyan.Fprintln(out, "╚"+strings.Repeat("═", boxWidth)+"╝")
}

// PrintSummary prints the statistics table and the failed identifiers
func (f *Formatter) PrintSummary(summary domain.CampaignSummary, report *domain.FailureReport) {
	fmt.Fprintln(f.out)
	PrintHeader(f.out, "Test Campaign Statistics")
	fmt.Fprintln(f.out)

	white := color.New(color.FgWhite)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	sep := "├─────────────────────────────────┼─────────────────────────────┤"
	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.row("Total Cases", white, fmt.Sprintf("%d", summary.Total))
	fmt.Fprintln(f.out, sep)
	f.row("Passed Cases", green, fmt.Sprintf("%d", summary.Passed))
	fmt.Fprintln(f.out, sep)
	f.row("Failed Cases", red, fmt.Sprintf("%d", summary.Failed))
	fmt.Fprintln(f.out, sep)
	f.row("Duration", white, fmt.Sprintf("%.2fs", summary.Duration.Seconds()))
	fmt.Fprintln(f.out, sep)
	f.row("Report", white, summary.ReportPath)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if report == nil || report.Empty() {
		green.Fprintln(f.out, "✓ All cases passed!")
		return
	}
	red.Fprintf(f.out, "✗ %d case(s) failed:\n", report.Len())
	for i, id := range report.Identifiers {
		connector := "├──"
		if i == report.Len()-1 {
			connector = "└──"
		}
		red.Fprintf(f.out, "%s %s\n", connector, id)
	}
}

func (f *Formatter) row(label string, c *color.Color, value string) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	c.Fprintf(f.out, "%-27s", value)
	fmt.Fprintln(f.out, " │")
}

// PrintCatalogue prints the catalogue as a tree grouped by suite.
// Identifiers present in failed are marked with [F] (from the last report).
func (f *Formatter) PrintCatalogue(cat domain.Catalogue, failed map[string]struct{}) {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	green.Fprintf(f.out, "Catalogue: %d case(s)\n\n", len(cat))

	suites := groupBySuite(cat)
	for i, group := range suites {
		lastSuite := i == len(suites)-1
		if lastSuite {
			cyan.Fprintf(f.out, "└── %s\n", group.suite)
		} else {
			cyan.Fprintf(f.out, "├── %s\n", group.suite)
		}

		for j, spec := range group.cases {
			prefix := "│   "
			if lastSuite {
				prefix = "    "
			}
			if j == len(group.cases)-1 {
				prefix += "└── "
			} else {
				prefix += "├── "
			}

			fmt.Fprint(f.out, prefix)
			yellow.Fprint(f.out, caseName(spec.Identifier))
			fmt.Fprintf(f.out, " x%d", spec.RepeatCount)
			if _, ok := failed[spec.Identifier]; ok {
				fmt.Fprint(f.out, " ")
				red.Fprint(f.out, "[F]")
			}
			fmt.Fprintln(f.out)
		}
	}
}

type suiteGroup struct {
	suite string
	cases []domain.TestCaseSpec
}

// groupBySuite groups consecutive entries of the same suite, keeping catalogue order
func groupBySuite(cat domain.Catalogue) []suiteGroup {
	var groups []suiteGroup
	for _, spec := range cat {
		suite := suiteName(spec.Identifier)
		if n := len(groups); n > 0 && groups[n-1].suite == suite {
			groups[n-1].cases = append(groups[n-1].cases, spec)
			continue
		}
		groups = append(groups, suiteGroup{suite: suite, cases: []domain.TestCaseSpec{spec}})
	}
	return groups
}

func suiteName(identifier string) string {
	if i := strings.Index(identifier, "."); i > 0 {
		return identifier[:i]
	}
	return identifier
}

func caseName(identifier string) string {
	if i := strings.Index(identifier, "."); i >= 0 && i < len(identifier)-1 {
		return identifier[i+1:]
	}
	return identifier
}
