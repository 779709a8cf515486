package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fundraise-pro/themegen/internal/domain/theme"
)

func newCheckCmd(app *AppContext) *cobra.Command {
	opts := sourceOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the token table and the stylesheet it produces without writing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSourceOptions(opts); err != nil {
				return err
			}

			result, err := app.Generator.Render(cmd.Context(), opts.request())
			if err != nil {
				return err
			}

			table := result.Theme.Table
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ %s: %d light / %d dark tokens, stylesheet valid (%d bytes)\n",
				result.Theme.Source, table.Len(theme.ModeLight), table.Len(theme.ModeDark), result.Bytes)
			for _, sub := range result.Substitutions {
				fmt.Fprintf(out, "! %s = %q is not a #RRGGBB color\n", sub.Label(), sub.Value)
			}
			return nil
		},
	}

	bindTokensFlag(cmd, &opts)
	bindConversionFlag(cmd, &opts.Conversion)

	return cmd
}
