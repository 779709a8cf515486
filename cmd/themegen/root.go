package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	logginginfra "github.com/fundraise-pro/themegen/internal/infrastructure/logging"
	"github.com/fundraise-pro/themegen/internal/ports"
)

var exitFunc = os.Exit

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}
	if app == nil {
		app = &AppContext{}
	}

	cmd := &cobra.Command{
		Use:           "themegen",
		Short:         "themegen turns a design-token table into a light/dark CSS stylesheet",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Logger == nil {
				built, err := newAppContext(appOptions{
					Verbose:   flags.verbose,
					LogFormat: flags.logFormat,
					LogWriter: cmd.ErrOrStderr(),
				})
				if err != nil {
					return err
				}
				*app = *built
			}
			app.complete()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if ports.GetCorrelationID(ctx) == "" {
				ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())
			}
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", logginginfra.FormatConsole, "Log format: console or json")

	cmd.AddCommand(newGenerateCmd(app))
	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newConvertCmd(app))
	cmd.AddCommand(newLookupCmd(app))
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
