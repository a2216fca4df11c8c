package domain

import "time"

// CaseResult represents the outcome of one invocation of the test executable
type CaseResult struct {
	Spec     TestCaseSpec  // The catalogue entry that was run
	Success  bool          // Zero exit status and the process could be launched
	ExitCode int           // Exit status, -1 if the process never ran
	Err      error         // Launch or wait error, nil for a plain non-zero exit
	Duration time.Duration // Wall-clock time of the invocation
}

// CampaignSummary contains metadata about a finished campaign
type CampaignSummary struct {
	Total      int
	Passed     int
	Failed     int
	Duration   time.Duration
	ReportPath string
}

// Record adds one case result to the summary counters
func (s *CampaignSummary) Record(result CaseResult) {
	s.Total++
	if result.Success {
		s.Passed++
	} else {
		s.Failed++
	}
}
