package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fundraise-pro/themegen/internal/application/generate"
)

type generateOptions struct {
	sourceOptions
	Stdout bool
}

func newGenerateCmd(app *AppContext) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the theme stylesheet from the token table",
		Long: `Generate renders every token of the table into a stylesheet with a light
scope, a dark scope and the theme aliases, checks the result and writes it
to the output path. Malformed colors are replaced with a neutral value and
reported as warnings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSourceOptions(opts.sourceOptions); err != nil {
				return err
			}

			if opts.Stdout {
				result, err := app.Generator.Render(cmd.Context(), opts.request())
				if err != nil {
					return err
				}
				_, err = io.WriteString(cmd.OutOrStdout(), result.CSS)
				return err
			}

			result, err := app.Generator.Generate(cmd.Context(), opts.request())
			if err != nil {
				return err
			}
			printGenerateResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	bindTokensFlag(cmd, &opts.sourceOptions)
	bindOutputFlag(cmd, &opts.sourceOptions)
	bindConversionFlag(cmd, &opts.Conversion)
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "Print the stylesheet instead of writing it")

	return cmd
}

func printGenerateResult(w io.Writer, result generate.Result) {
	fmt.Fprintf(w, "✓ Wrote %s (%d bytes, %s)\n", result.OutputPath, result.Bytes, result.Theme.Settings.Conversion)
	if n := len(result.Substitutions); n > 0 {
		fmt.Fprintf(w, "  %d malformed color(s) replaced with a neutral value:\n", n)
		for _, sub := range result.Substitutions {
			fmt.Fprintf(w, "    %s = %q\n", sub.Label(), sub.Value)
		}
	}
}
