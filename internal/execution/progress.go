package execution

import "flakerun/internal/domain"

// Progress observes a campaign while it runs
type Progress interface {
	Start(total int)
	CaseStarted(index int, spec domain.TestCaseSpec, commandLine string)
	CaseFinished(index int, result domain.CaseResult)
	Finish(summary domain.CampaignSummary)
}

type noProgress struct{}

func (noProgress) Start(int) {}

func (noProgress) CaseStarted(int, domain.TestCaseSpec, string) {}

func (noProgress) CaseFinished(int, domain.CaseResult) {}

func (noProgress) Finish(domain.CampaignSummary) {}
