package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"flakerun/internal/catalogue"
	"flakerun/internal/config"
	"flakerun/internal/execution"
	"flakerun/internal/storage"
	"flakerun/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config   *config.Config
	storage  storage.Storage
	campaign *execution.Campaign
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(cfg *config.Config, st storage.Storage, campaign *execution.Campaign) *FailuresCommand {
	return &FailuresCommand{
		config:   cfg,
		storage:  st,
		campaign: campaign,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	failed, err := fc.storage.Load()
	if errors.Is(err, storage.ErrNoReport) {
		color.Yellow("No report at %s, run a campaign first", fc.storage.Path())
		return nil
	}
	if err != nil {
		return err
	}

	cat, err := catalogue.Resolve(fc.config.GetCataloguePath())
	if err != nil {
		return err
	}

	viewer := ui.NewFailureViewer(fc.storage, fc.campaign, cat)
	return viewer.View(cmd.Context(), failed)
}
