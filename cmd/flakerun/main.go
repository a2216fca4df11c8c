package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flakerun/internal/cli"
	"flakerun/internal/cli/commands"
	"flakerun/internal/config"
	"flakerun/internal/exitcodes"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "flakerun",
		Short: "Repeat gtest cases to surface flaky failures",
		Long: `Run a catalogue of gtest cases against a locally built test executable, repeating each
case many times in one invocation to surface races and flakiness. Cases that fail are written
one per line to a report file.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Populated by command flags
	var flags cli.Flags

	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitcodes.FromError(err))
	}
}
