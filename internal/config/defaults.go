package config

const (
	// DefaultProjectPath is the directory the runner resolves relative paths against
	DefaultProjectPath = "."
	// DefaultExecutable is the locally built gtest binary driven by the campaign
	DefaultExecutable = "nds3core-unit-tests"
	// DefaultReportFile is the failure report written next to the runner
	DefaultReportFile = "ErrorFile"
	// DefaultEnvFile is loaded from the project path when present
	DefaultEnvFile = ".env"
)

// Environment variables that override the defaults
const (
	EnvExecutable = "FLAKERUN_EXECUTABLE"
	EnvReport     = "FLAKERUN_REPORT"
	EnvCatalogue  = "FLAKERUN_CATALOGUE"
)
