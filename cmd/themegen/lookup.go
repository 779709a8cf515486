package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fundraise-pro/themegen/internal/domain/theme"
	"github.com/fundraise-pro/themegen/internal/stylesheet"
	"github.com/fundraise-pro/themegen/internal/themeswitch"
)

type lookupOptions struct {
	sourceOptions
	CSSPath string
	Mode    string
}

func newLookupCmd(app *AppContext) *cobra.Command {
	opts := lookupOptions{}

	cmd := &cobra.Command{
		Use:   "lookup PATH",
		Short: "Print a token value by dotted path, or a custom property of a generated stylesheet",
		Long: `Lookup resolves a dotted path such as light.primary, design.radius.base or
components.kpiCards.blue.bg against the token table. With --css it instead
reads a generated stylesheet and resolves a custom property (--primary) in
the scope of --mode. Unknown names print an empty line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSourceOptions(opts.sourceOptions); err != nil {
				return err
			}

			th, err := app.Loader.Load(cmd.Context(), opts.request().TokensPath)
			if err != nil {
				return err
			}

			var (
				value string
				found bool
			)
			if opts.CSSPath != "" {
				value, found, err = lookupStylesheet(cmd, app, th, opts, args[0])
				if err != nil {
					return err
				}
			} else {
				value, found = th.Table.Resolve(args[0])
			}

			if !found {
				app.Logger.Debug(cmd.Context(), "lookup found nothing", "path", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	bindTokensFlag(cmd, &opts.sourceOptions)
	cmd.Flags().StringVar(&opts.CSSPath, "css", "", "Resolve a custom property in this generated stylesheet")
	cmd.Flags().StringVar(&opts.Mode, "mode", string(theme.ModeLight), "Mode scope for --css lookups: light or dark")

	return cmd
}

func lookupStylesheet(cmd *cobra.Command, app *AppContext, th *theme.Theme, opts lookupOptions, name string) (string, bool, error) {
	mode, err := theme.ParseMode(opts.Mode)
	if err != nil {
		return "", false, err
	}

	data, err := app.Writer.Read(cmd.Context(), opts.CSSPath)
	if err != nil {
		return "", false, err
	}
	scopes, err := stylesheet.Scopes(string(data))
	if err != nil {
		return "", false, theme.NewError(theme.ErrCodeInvalidOutput, "stylesheet is not valid", err, map[string]interface{}{
			"path": opts.CSSPath,
		})
	}

	sw := themeswitch.New(mode, nil)
	resolver := themeswitch.NewResolver(sw,
		scopes[th.Settings.Selector(theme.ModeLight)],
		scopes[th.Settings.Selector(theme.ModeDark)],
	)
	value, found := resolver.Lookup(name)
	return value, found, nil
}
