package execution

import (
	"strconv"

	"github.com/kballard/go-shellquote"

	"flakerun/internal/domain"
)

// gtest command-line directives
const (
	FilterFlag         = "--gtest_filter="
	RepeatFlag         = "--gtest_repeat="
	BreakOnFailureFlag = "--gtest_break_on_failure"
)

// GTestArgs returns the arguments selecting spec's test case, repeating it
// RepeatCount times and halting at the first failing repetition
func GTestArgs(spec domain.TestCaseSpec) []string {
	return []string{
		FilterFlag + spec.Identifier,
		RepeatFlag + strconv.Itoa(spec.RepeatCount),
		BreakOnFailureFlag,
	}
}

// CommandLine renders an invocation so it can be pasted into a shell
func CommandLine(executable string, args []string) string {
	return shellquote.Join(append([]string{executable}, args...)...)
}
