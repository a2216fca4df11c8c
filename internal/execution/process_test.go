package execution

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHelperProcess is not a real test; it is the child launched by ExecRunner tests.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("FLAKERUN_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}
	fmt.Fprintf(os.Stdout, "args=%v\n", args)
	fmt.Fprintln(os.Stderr, "diagnostics")
	code, _ := strconv.Atoi(os.Getenv("FLAKERUN_HELPER_EXIT"))
	os.Exit(code)
}

func helperRunner(exitCode int, stdout, stderr *bytes.Buffer) *ExecRunner {
	return &ExecRunner{
		Dir: ".",
		Env: []string{
			"FLAKERUN_HELPER_PROCESS=1",
			"FLAKERUN_HELPER_EXIT=" + strconv.Itoa(exitCode),
		},
		Stdout: stdout,
		Stderr: stderr,
	}
}

func helperArgs(args ...string) []string {
	return append([]string{"-test.run=TestHelperProcess", "--"}, args...)
}

func TestExecRunner_Run(t *testing.T) {
	t.Run("zero exit status", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code, err := helperRunner(0, &stdout, &stderr).Run(context.Background(), os.Args[0], helperArgs("--gtest_filter=A.b"))

		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Contains(t, stdout.String(), "args=[--gtest_filter=A.b]")
		assert.Contains(t, stderr.String(), "diagnostics")
	})

	t.Run("non-zero exit status is not an error", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code, err := helperRunner(1, &stdout, &stderr).Run(context.Background(), os.Args[0], helperArgs())

		require.NoError(t, err)
		assert.Equal(t, 1, code)
	})

	t.Run("output discarded when no writer is set", func(t *testing.T) {
		runner := helperRunner(0, nil, nil)
		runner.Stdout, runner.Stderr = nil, nil
		code, err := runner.Run(context.Background(), os.Args[0], helperArgs())

		require.NoError(t, err)
		assert.Equal(t, 0, code)
	})

	t.Run("missing executable", func(t *testing.T) {
		runner := &ExecRunner{}
		code, err := runner.Run(context.Background(), "./definitely-not-here", nil)

		require.Error(t, err)
		assert.Equal(t, -1, code)
	})
}
