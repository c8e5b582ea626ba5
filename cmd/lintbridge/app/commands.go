package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/lintbridge/cmd/lintbridge/cmd/presets"
	"github.com/agentstation/lintbridge/cmd/lintbridge/cmd/summarize"
)

// NewSummarizeCommand creates the summarize command with app dependencies.
func (a *App) NewSummarizeCommand() *cobra.Command {
	return summarize.NewCommand(a)
}

// NewPresetsCommand creates the presets command with app dependencies.
func (a *App) NewPresetsCommand() *cobra.Command {
	return presets.NewCommand(a)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("lintbridge %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
