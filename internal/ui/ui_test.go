package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flakerun/internal/domain"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestFormatter_PrintSummary(t *testing.T) {
	t.Run("all passed", func(t *testing.T) {
		var out bytes.Buffer
		f := NewFormatter(&out)

		f.PrintSummary(domain.CampaignSummary{Total: 3, Passed: 3, Duration: 1500 * time.Millisecond, ReportPath: "/tmp/ErrorFile"}, domain.NewFailureReport())

		s := out.String()
		assert.Contains(t, s, "Test Campaign Statistics")
		assert.Contains(t, s, fmt.Sprintf("│ %-31s │ %-27s │", "Total Cases", "3"))
		assert.Contains(t, s, "1.50s")
		assert.Contains(t, s, "/tmp/ErrorFile")
		assert.Contains(t, s, "✓ All cases passed!")
	})

	t.Run("failures listed in report order", func(t *testing.T) {
		var out bytes.Buffer
		f := NewFormatter(&out)
		report := domain.NewFailureReport()
		report.Add("B.two")
		report.Add("A.one")

		f.PrintSummary(domain.CampaignSummary{Total: 5, Passed: 3, Failed: 2}, report)

		s := out.String()
		assert.Contains(t, s, "✗ 2 case(s) failed:")
		assert.Contains(t, s, "├── B.two\n└── A.one\n")
	})
}

func TestFormatter_PrintCatalogue(t *testing.T) {
	var out bytes.Buffer
	f := NewFormatter(&out)
	cat := domain.Catalogue{
		{Identifier: "testWFG.testStateMachine", RepeatCount: 2000},
		{Identifier: "testWFG.testdecimation", RepeatCount: 2000},
		{Identifier: "testLogging.testLotOfPVs", RepeatCount: 1},
	}

	f.PrintCatalogue(cat, map[string]struct{}{"testWFG.testdecimation": {}})

	expected := strings.Join([]string{
		"Catalogue: 3 case(s)",
		"",
		"├── testWFG",
		"│   ├── testStateMachine x2000",
		"│   └── testdecimation x2000 [F]",
		"└── testLogging",
		"    └── testLotOfPVs x1",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func TestGroupBySuite(t *testing.T) {
	cat := domain.Catalogue{
		{Identifier: "A.one"}, {Identifier: "A.two"}, {Identifier: "B.one"}, {Identifier: "A.three"}, {Identifier: "NoSuite"},
	}

	groups := groupBySuite(cat)

	require.Len(t, groups, 4)
	assert.Equal(t, "A", groups[0].suite)
	assert.Len(t, groups[0].cases, 2)
	assert.Equal(t, "B", groups[1].suite)
	assert.Equal(t, "A", groups[2].suite)
	assert.Equal(t, "NoSuite", groups[3].suite)
	assert.Equal(t, "NoSuite", caseName("NoSuite"))
}

func TestConsole(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out)
	spec := domain.TestCaseSpec{Identifier: "testPVs.testVariable", RepeatCount: 2000}

	c.Start(2)
	c.CaseStarted(0, spec, "./nds3core-unit-tests --gtest_filter=testPVs.testVariable")
	c.CaseFinished(0, domain.CaseResult{Spec: spec, Success: true, Duration: 20 * time.Millisecond})
	c.CaseStarted(1, spec, "./nds3core-unit-tests")
	c.CaseFinished(1, domain.CaseResult{Spec: spec, ExitCode: 1})
	c.CaseFinished(1, domain.CaseResult{Spec: spec, ExitCode: -1, Err: errors.New("no such file")})

	s := out.String()
	assert.Contains(t, s, "Total cases: 2")
	assert.Contains(t, s, "▶ [1/2] testPVs.testVariable x2000")
	assert.Contains(t, s, "  $ ./nds3core-unit-tests --gtest_filter=testPVs.testVariable")
	assert.Contains(t, s, "✓ testPVs.testVariable passed (20ms)")
	assert.Contains(t, s, "✗ testPVs.testVariable failed (exit status 1)")
	assert.Contains(t, s, "✗ testPVs.testVariable failed (no such file)")
}

func TestPrintHeader(t *testing.T) {
	var out bytes.Buffer
	PrintHeader(&out, "Title")

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, boxWidth+2, len([]rune(line)))
	}
}

type stubRunner struct {
	result domain.CaseResult
}

func (s stubRunner) RunCase(_ context.Context, spec domain.TestCaseSpec) domain.CaseResult {
	r := s.result
	r.Spec = spec
	return r
}

func (s stubRunner) CommandLine(spec domain.TestCaseSpec) string {
	return "./tests --gtest_filter=" + spec.Identifier
}

func TestFailureViewer_SpecFor(t *testing.T) {
	cat := domain.Catalogue{{Identifier: "A.b", RepeatCount: 200}}
	fv := NewFailureViewer(nil, stubRunner{}, cat)

	spec, ok := fv.SpecFor("A.b")
	assert.True(t, ok)
	assert.Equal(t, 200, spec.RepeatCount)

	spec, ok = fv.SpecFor("Gone.case")
	assert.False(t, ok)
	assert.Equal(t, domain.TestCaseSpec{Identifier: "Gone.case", RepeatCount: 1}, spec)
}

func TestFailureViewer_FormatDetails(t *testing.T) {
	fv := NewFailureViewer(nil, stubRunner{}, nil)
	spec := domain.TestCaseSpec{Identifier: "testFTE.testSetPVManaging", RepeatCount: 2000}

	pending := fv.formatDetails(&failureEntry{spec: spec, inCatalog: true})
	assert.Contains(t, pending, "testFTE.testSetPVManaging")
	assert.Contains(t, pending, "[cyan]Suite:[white] testFTE")
	assert.Contains(t, pending, "./tests --gtest_filter=testFTE.testSetPVManaging")
	assert.Contains(t, pending, "failed in the last campaign")
	assert.NotContains(t, pending, "Not in the current catalogue")

	failed := fv.formatDetails(&failureEntry{spec: spec, last: &domain.CaseResult{ExitCode: 2}})
	assert.Contains(t, failed, "re-run failed (exit status 2)")
	assert.Contains(t, failed, "Not in the current catalogue")

	passed := fv.formatDetails(&failureEntry{spec: spec, inCatalog: true, last: &domain.CaseResult{Success: true}})
	assert.Contains(t, passed, "removed from the report")
}

func TestUnresolvedIdentifiers(t *testing.T) {
	entries := []*failureEntry{
		{spec: domain.TestCaseSpec{Identifier: "A"}},
		{spec: domain.TestCaseSpec{Identifier: "B"}, last: &domain.CaseResult{Success: true}},
		{spec: domain.TestCaseSpec{Identifier: "C"}, last: &domain.CaseResult{Success: false}},
		{spec: domain.TestCaseSpec{Identifier: "A"}},
	}

	assert.Equal(t, []string{"A", "C", "A"}, unresolvedIdentifiers(entries))
}

func TestFailureViewer_ViewWithoutFailures(t *testing.T) {
	fv := NewFailureViewer(nil, stubRunner{}, nil)
	require.NoError(t, fv.View(context.Background(), nil))
}
