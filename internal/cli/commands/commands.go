package commands

import (
	"os"

	"github.com/spf13/cobra"

	"flakerun/internal/catalogue"
	"flakerun/internal/cli"
	"flakerun/internal/config"
	"flakerun/internal/execution"
	"flakerun/internal/storage"
	"flakerun/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	filter := catalogue.NewFilter()
	runner := execution.NewExecRunner(cfg, os.Stdout, os.Stderr)
	reportStorage := storage.NewTextStorage(cfg)
	campaign := execution.NewCampaign(cfg, runner, reportStorage)
	formatter := ui.NewFormatter(os.Stdout)

	return &Commands{
		Run:      NewRunCommand(cfg, filter, runner, campaign, reportStorage, formatter),
		List:     NewListCommand(cfg, filter, reportStorage, formatter),
		Failures: NewFailuresCommand(cfg, reportStorage, campaign),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Env first, then flags on top
	prepare := func(cmd *cobra.Command, args []string) error {
		if err := cfg.LoadEnv(); err != nil {
			return err
		}
		cfg.ApplyFlags(flags.ToConfigFlags())
		return nil
	}

	rootCmd.PersistentFlags().StringVarP(&flags.Executable, "executable", "e", "", "Path to the gtest executable (default ./"+config.DefaultExecutable+")")
	rootCmd.PersistentFlags().StringVarP(&flags.Report, "report", "o", "", "Path of the failure report (default ./"+config.DefaultReportFile+")")
	rootCmd.PersistentFlags().StringVarP(&flags.Catalogue, "catalogue", "c", "", "YAML catalogue to use instead of the built-in one")

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the test campaign",
		Long:    "Run every catalogue case with its repeat count, stopping each case at its first failing repetition, and write failed cases to the report",
		RunE:    c.Run.Execute,
		PreRunE: prepare,
	}
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Run only cases matching the pattern (supports wildcards, e.g. 'testWFG.*' or '*PushData*')")
	runCmd.Flags().BoolVar(&flags.OnlyFailed, "failed", false, "Run only cases listed in the last report")
	runCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Hide the test executable's output and show a progress bar")
	runCmd.Flags().BoolVar(&flags.Strict, "strict", false, "Exit with status 1 when any case failed")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List catalogue cases",
		Long:    "Print the catalogue grouped by suite; cases that failed in the last run are marked with [F]",
		RunE:    c.List.Execute,
		PreRunE: prepare,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "List only cases matching the pattern")
	listCmd.Flags().BoolVar(&flags.YAML, "yaml", false, "Print the catalogue as a YAML catalogue file")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View and re-run failed cases interactively",
		Long:    "Display the cases of the last report in an interactive viewer; re-running a case that passes removes it from the report",
		RunE:    c.Failures.Execute,
		PreRunE: prepare,
	}
	rootCmd.AddCommand(failuresCmd)
}
