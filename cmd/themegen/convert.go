package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fundraise-pro/themegen/internal/colorspace"
)

func newConvertCmd(app *AppContext) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "convert HEX...",
		Short: "Print the oklch() form of one or more #RRGGBB colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := colorspace.ForMethod(strings.TrimSpace(method))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, input := range args {
				derived, err := colorspace.ConvertOrNeutral(conv, input)
				if err != nil {
					app.Logger.Warn(cmd.Context(), "color substituted with neutral", "value", input, "error", err)
				}
				fmt.Fprintf(out, "%s\t%s\n", input, derived.CSS())
			}
			return nil
		},
	}

	bindConversionFlag(cmd, &method)

	return cmd
}
