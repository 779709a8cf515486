package main

import (
	"github.com/spf13/cobra"

	configinfra "github.com/fundraise-pro/themegen/internal/infrastructure/config"
)

type exportOptions struct {
	sourceOptions
	Out string
}

func newExportCmd(app *AppContext) *cobra.Command {
	opts := exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the token table back as normalized YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSourceOptions(opts.sourceOptions); err != nil {
				return err
			}

			th, err := app.Loader.Load(cmd.Context(), opts.request().TokensPath)
			if err != nil {
				return err
			}
			data, err := configinfra.Export(th)
			if err != nil {
				return err
			}

			if opts.Out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := app.Writer.Write(cmd.Context(), opts.Out, data); err != nil {
				return err
			}
			app.Logger.Info(cmd.Context(), "token table exported", "path", opts.Out, "bytes", len(data))
			return nil
		},
	}

	bindTokensFlag(cmd, &opts.sourceOptions)
	cmd.Flags().StringVar(&opts.Out, "out", "", "Write the YAML to this file instead of stdout")

	return cmd
}
