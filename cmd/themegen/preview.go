package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fundraise-pro/themegen/internal/application/generate"
	"github.com/fundraise-pro/themegen/internal/domain/theme"
	eventsinfra "github.com/fundraise-pro/themegen/internal/infrastructure/events"
	logginginfra "github.com/fundraise-pro/themegen/internal/infrastructure/logging"
	"github.com/fundraise-pro/themegen/internal/stylesheet"
	"github.com/fundraise-pro/themegen/internal/themeswitch"
	"github.com/fundraise-pro/themegen/internal/tui"
)

type previewOptions struct {
	sourceOptions
	Mode           string
	NonInteractive bool
}

var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newPreviewCmd(app *AppContext) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the generated colors as terminal swatches",
		Long: `Preview renders the stylesheet in memory and shows one swatch per color
variable. In a terminal, press t to toggle between light and dark; every
swatch re-reads its variable from the active scope. Without a terminal the
preview is printed once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.NonInteractive = opts.NonInteractive || !stdoutIsTerminal()
			if err := validateSourceOptions(opts.sourceOptions); err != nil {
				return err
			}
			mode, err := theme.ParseMode(opts.Mode)
			if err != nil {
				return err
			}

			result, err := app.Generator.Render(cmd.Context(), opts.request())
			if err != nil {
				return err
			}
			return runPreview(cmd, app, result, mode, opts.NonInteractive)
		},
	}

	bindTokensFlag(cmd, &opts.sourceOptions)
	bindConversionFlag(cmd, &opts.Conversion)
	cmd.Flags().StringVar(&opts.Mode, "mode", string(theme.ModeLight), "Initial mode: light or dark")
	cmd.Flags().BoolVar(&opts.NonInteractive, "static", false, "Print the preview once instead of starting the interactive view")

	return cmd
}

func runPreview(cmd *cobra.Command, app *AppContext, result generate.Result, mode theme.Mode, nonInteractive bool) error {
	ctx := cmd.Context()

	scopes, err := stylesheet.Scopes(result.CSS)
	if err != nil {
		return err
	}

	// log lines would tear the full-screen view, so they wait in a buffer
	buffer := logginginfra.NewEventBuffer(0)
	logger := app.Logger
	if !nonInteractive {
		logger = logginginfra.NewBufferedLogger(buffer)
		defer buffer.Flush(app.Logger)
	}

	settings := result.Theme.Settings
	sw := themeswitch.New(mode, eventsinfra.NewLoggingPublisher(logger.With("component", "theme_switch")))
	resolver := themeswitch.NewResolver(sw, scopes[settings.Selector(theme.ModeLight)], scopes[settings.Selector(theme.ModeDark)])

	substitutions := make([]string, 0, len(result.Substitutions))
	for _, sub := range result.Substitutions {
		substitutions = append(substitutions, fmt.Sprintf("%s (%s)", sub.Label(), sub.Value))
	}

	model := tui.NewModel(ctx, sw, resolver, tui.Options{
		Title:          settings.Name,
		Source:         result.Theme.Source,
		Properties:     tui.Properties(result.Document),
		Substitutions:  substitutions,
		NonInteractive: nonInteractive,
	})

	if nonInteractive {
		_, err := fmt.Fprint(cmd.OutOrStdout(), tui.Render(model))
		return err
	}

	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(cmd.OutOrStdout()))
	sub := sw.Subscribe(func(mode theme.Mode) {
		logger.Debug(ctx, "preview mode changed", "mode", string(mode))
		go program.Send(tui.ModeMsg{Mode: mode})
	})
	defer sub.Unsubscribe()

	_, err = program.Run()
	return err
}
