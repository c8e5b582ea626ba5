// Package presets implements the presets command for browsing the presets
// lintbridge can resolve.
package presets

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/lintbridge/cmd/application"
	"github.com/agentstation/lintbridge/internal/matcher"
	"github.com/agentstation/lintbridge/internal/output"
	"github.com/agentstation/lintbridge/pkg/errors"
	"github.com/agentstation/lintbridge/pkg/reconcile"
)

// NewCommand creates the presets command and its subcommands.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "presets",
		GroupID: "core",
		Short:   "List and inspect available presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newShowCommand(app))
	return cmd
}

func newListCommand(app application.Application) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the presets in the configured directories and built in",
		Example: `  lintbridge presets list
  lintbridge presets list --filter 'prettier*'
  lintbridge presets list --filter 'recommended$' -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := matcher.New(matcher.Auto, filter)
			if err != nil {
				return errors.WrapValidation("filter", err)
			}

			names, err := app.PresetNames()
			if err != nil {
				return err
			}
			names = m.Filter(names)

			format := output.DetectFormat(app.OutputFormat())
			switch format {
			case output.FormatJSON, output.FormatYAML:
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), names)
			default:
				data := output.Data{Headers: []string{"preset"}}
				for _, name := range names {
					data.Rows = append(data.Rows, []string{name})
				}
				return output.NewFormatter(output.FormatTable).Format(cmd.OutOrStdout(), data)
			}
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Only list presets matching a glob or regex")
	return cmd
}

func newShowCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print the effective rules of a preset",
		Example: `  lintbridge presets show eslint:recommended
  lintbridge presets show plugin:@typescript-eslint/recommended -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := app.Resolver()
			if err != nil {
				return err
			}

			res, err := resolver.Resolve(cmd.Context(), []reconcile.PresetName{args[0]})
			if err != nil {
				return err
			}
			if len(res.Errors) > 0 {
				return res.Errors[0]
			}
			preset := res.Presets[0]

			format := output.DetectFormat(app.OutputFormat())
			switch format {
			case output.FormatJSON, output.FormatYAML:
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), preset.Rules)
			default:
				data := output.Data{Headers: []string{"rule", "value"}}
				for _, id := range preset.Rules.IDs() {
					data.Rows = append(data.Rows, []string{id.String(), preset.Rules[id].String()})
				}
				return output.NewFormatter(output.FormatTable).Format(cmd.OutOrStdout(), data)
			}
		},
	}
}
