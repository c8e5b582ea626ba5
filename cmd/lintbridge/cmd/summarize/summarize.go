// Package summarize implements the summarize command, which reconciles
// converted rules with the presets the new configuration extends.
package summarize

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/lintbridge/cmd/application"
	"github.com/agentstation/lintbridge/internal/output"
	"github.com/agentstation/lintbridge/pkg/compat"
	"github.com/agentstation/lintbridge/pkg/config"
	"github.com/agentstation/lintbridge/pkg/constants"
	"github.com/agentstation/lintbridge/pkg/errors"
	"github.com/agentstation/lintbridge/pkg/logging"
	"github.com/agentstation/lintbridge/pkg/reconcile"
)

// Flags holds the summarize command flags.
type Flags struct {
	Target     string
	Legacy     string
	Converted  string
	PresetDirs []string
	Prettier   bool
	NoPrettier bool
	Out        string
	Report     bool
}

// NewCommand creates the summarize command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "summarize",
		GroupID: "core",
		Short:   "Write the minimal ESLint config for converted rules",
		Long: `Summarize decides which presets the ESLint configuration extends and
removes every converted rule that those presets already set to the same value.

The extends list is the TSLint configuration's extends (mapped to ESLint
presets) followed by the existing ESLint configuration's extends. The prettier
compatibility presets are added when --prettier is given, or when neither
--prettier nor --no-prettier is given and no converted rule would be switched
off by them.`,
		Example: `  lintbridge summarize --converted converted.yaml
  lintbridge summarize --legacy tslint.json --target .eslintrc.json --converted converted.yaml --out .eslintrc.yaml
  lintbridge summarize --converted converted.yaml --presets-dir ./presets --report -o markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.Prettier && flags.NoPrettier {
				return errors.NewValidationError("prettier", nil, "--prettier and --no-prettier are mutually exclusive")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), constants.CommandTimeout)
			defer cancel()
			return run(ctx, cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Target, "target", "", "existing ESLint configuration (yaml or json)")
	cmd.Flags().StringVar(&flags.Legacy, "legacy", "", "TSLint configuration (yaml or json)")
	cmd.Flags().StringVar(&flags.Converted, "converted", "", "converted rules file with rules, failed and notices")
	cmd.Flags().StringSliceVar(&flags.PresetDirs, "presets-dir", nil, "extra directory of preset files, searched first (repeatable)")
	cmd.Flags().BoolVar(&flags.Prettier, "prettier", false, "always extend the prettier compatibility presets")
	cmd.Flags().BoolVar(&flags.NoPrettier, "no-prettier", false, "never extend the prettier compatibility presets")
	cmd.Flags().StringVar(&flags.Out, "out", "", "write the configuration to this file instead of stdout")
	cmd.Flags().BoolVar(&flags.Report, "report", false, "also print a report of removed rules and errors")

	_ = cmd.MarkFlagRequired("converted")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, app application.Application, flags *Flags) error {
	logger := app.Logger()
	ctx = logging.WithLogger(ctx, logger)

	results, err := config.LoadConversion(flags.Converted)
	if err != nil {
		return err
	}

	var target *reconcile.TargetConfig
	if flags.Target != "" {
		if target, err = config.LoadTarget(flags.Target); err != nil {
			return err
		}
	}

	var legacy []reconcile.LegacyConfig
	if flags.Legacy != "" {
		legacy, err = config.LoadLegacy(flags.Legacy, config.WithRulesetMappings(app.RulesetMappings()))
		if err != nil {
			return err
		}
	}

	resolver, err := app.Resolver(flags.PresetDirs...)
	if err != nil {
		return err
	}

	checker, err := compat.New(resolver, compat.WithLogger(logger))
	if err != nil {
		return err
	}

	summarizer, err := reconcile.New(
		reconcile.WithPresetResolver(resolver),
		reconcile.WithFormatterChecker(checker),
		reconcile.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	result, err := summarizer.Summarize(ctx, target, legacy, results, requested(flags))
	if err != nil {
		return err
	}

	for _, failure := range result.Failed {
		logger.Warn().Err(failure).Msg("Configuration error")
	}
	logger.Info().
		Int("kept", len(result.Converted)).
		Int("removed", len(result.Removed)).
		Strs("extends", result.Extends).
		Msg("Summarized rules")

	if err := writeConfig(cmd.OutOrStdout(), flags.Out, result); err != nil {
		return err
	}
	if !flags.Report {
		return nil
	}

	// Keep stdout clean for the configuration when it goes there
	reportOut := cmd.OutOrStdout()
	if flags.Out == "" {
		reportOut = cmd.ErrOrStderr()
	}

	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}
	if format == "" {
		format = output.FormatTable
	}
	return output.WriteReport(reportOut, format, result)
}

// requested turns the prettier flags into an explicit choice or nil.
func requested(flags *Flags) *bool {
	switch {
	case flags.Prettier:
		v := true
		return &v
	case flags.NoPrettier:
		v := false
		return &v
	default:
		return nil
	}
}

// writeConfig writes the configuration to path, or to stdout when path is
// empty. A .json path gets JSON; everything else gets YAML.
func writeConfig(stdout io.Writer, path string, result *reconcile.SummarizedResult) error {
	if path == "" {
		return output.WriteConfig(stdout, output.FormatYAML, result)
	}

	format := output.FormatYAML
	if filepath.Ext(path) == ".json" {
		format = output.FormatJSON
	}

	var buf bytes.Buffer
	if err := output.WriteConfig(&buf, format, result); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.NewIOError("write", path, err)
	}
	return nil
}
