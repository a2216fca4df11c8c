package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"flakerun/internal/catalogue"
	"flakerun/internal/config"
	"flakerun/internal/execution"
	"flakerun/internal/exitcodes"
	"flakerun/internal/storage"
	"flakerun/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	filter    *catalogue.Filter
	runner    *execution.ExecRunner
	campaign  *execution.Campaign
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	filter *catalogue.Filter,
	runner *execution.ExecRunner,
	campaign *execution.Campaign,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		filter:    filter,
		runner:    runner,
		campaign:  campaign,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cat, err := catalogue.Resolve(rc.config.GetCataloguePath())
	if err != nil {
		return err
	}

	cat = rc.filter.FilterByName(cat, rc.config.Flags.NameFilter)

	if rc.config.Flags.OnlyFailed {
		failed, err := rc.storage.Load()
		if errors.Is(err, storage.ErrNoReport) {
			color.Yellow("No previous report at %s, nothing to re-run", rc.storage.Path())
			return nil
		}
		if err != nil {
			return err
		}
		cat = rc.filter.OnlyFailed(cat, failed)
	}

	if len(cat) == 0 {
		color.Yellow("No cases to execute")
		return nil
	}

	if rc.config.Flags.Quiet {
		rc.runner.Stdout, rc.runner.Stderr = io.Discard, io.Discard
		rc.campaign.SetProgress(ui.NewProgressBar(len(cat)))
	} else {
		rc.campaign.SetProgress(ui.NewConsole(os.Stdout))
	}

	report, summary, err := rc.campaign.Run(cmd.Context(), cat)
	rc.formatter.PrintSummary(summary, report)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if rc.config.Flags.Strict && !report.Empty() {
		return &exitcodes.Error{
			Code: exitcodes.TestFailure,
			Err:  fmt.Errorf("%d case(s) failed, see %s", report.Len(), summary.ReportPath),
		}
	}
	return nil
}
