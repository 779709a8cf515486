package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDiffCmd(app *AppContext) *cobra.Command {
	opts := sourceOptions{}

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Report whether the stylesheet on disk is stale relative to the token table",
		Long: `Diff renders the stylesheet in memory and compares it with the file at the
output path. It prints a unified diff and exits with status 1 when the file
is missing or out of date.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSourceOptions(opts); err != nil {
				return err
			}

			result, err := app.Generator.Diff(cmd.Context(), opts.request())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case !result.Exists:
				fmt.Fprintf(out, "✗ %s does not exist; run themegen generate\n", result.OutputPath)
			case result.Stale:
				fmt.Fprint(out, result.Diff)
				fmt.Fprintf(out, "✗ %s is stale (+%d -%d lines)\n", result.OutputPath, result.Stats.Added, result.Stats.Removed)
			default:
				fmt.Fprintf(out, "✓ %s is up to date\n", result.OutputPath)
				return nil
			}

			app.Logger.Info(cmd.Context(), "stylesheet is stale", "output", result.OutputPath, "added", result.Stats.Added, "removed", result.Stats.Removed)
			exitFunc(1)
			return nil
		},
	}

	bindTokensFlag(cmd, &opts)
	bindOutputFlag(cmd, &opts)
	bindConversionFlag(cmd, &opts.Conversion)

	return cmd
}
