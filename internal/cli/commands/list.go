package commands

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"flakerun/internal/catalogue"
	"flakerun/internal/config"
	"flakerun/internal/storage"
	"flakerun/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	filter    *catalogue.Filter
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	filter *catalogue.Filter,
	st storage.Storage,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		filter:    filter,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cat, err := catalogue.Resolve(lc.config.GetCataloguePath())
	if err != nil {
		return err
	}

	cat = lc.filter.FilterByName(cat, lc.config.Flags.NameFilter)

	if len(cat) == 0 {
		color.Yellow("No cases found")
		return nil
	}

	if lc.config.Flags.YAML {
		data, err := catalogue.Marshal(cat)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	// Mark cases from the last run, if there is one
	failedIDs := make(map[string]struct{})
	failed, err := lc.storage.Load()
	if err != nil && !errors.Is(err, storage.ErrNoReport) {
		return err
	}
	for _, id := range failed {
		failedIDs[id] = struct{}{}
	}

	lc.formatter.PrintCatalogue(cat, failedIDs)
	return nil
}
