package main

import (
	"io"

	"github.com/fundraise-pro/themegen/internal/application/generate"
	configinfra "github.com/fundraise-pro/themegen/internal/infrastructure/config"
	eventsinfra "github.com/fundraise-pro/themegen/internal/infrastructure/events"
	logginginfra "github.com/fundraise-pro/themegen/internal/infrastructure/logging"
	"github.com/fundraise-pro/themegen/internal/infrastructure/output"
	"github.com/fundraise-pro/themegen/internal/ports"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Logger    ports.Logger
	Events    ports.EventPublisher
	Loader    ports.TokenLoader
	Writer    ports.StylesheetWriter
	Generator *generate.Service
}

type appOptions struct {
	Verbose   bool
	LogFormat string
	LogWriter io.Writer
}

func newAppContext(opts appOptions) (*AppContext, error) {
	level := "info"
	if opts.Verbose {
		level = "debug"
	}

	logger, err := logginginfra.New(logginginfra.Options{
		Writer:    opts.LogWriter,
		Level:     level,
		Format:    opts.LogFormat,
		Layer:     "cli",
		Component: "themegen",
	})
	if err != nil {
		return nil, err
	}

	app := &AppContext{Logger: logger}
	app.complete()
	return app, nil
}

// complete fills any service left nil from the ones already set.
func (a *AppContext) complete() {
	if a.Logger == nil {
		a.Logger = logginginfra.NewNoOpLogger()
	}
	if a.Events == nil {
		a.Events = eventsinfra.NewLoggingPublisher(a.Logger.With("layer", "application"))
	}
	if a.Loader == nil {
		a.Loader = configinfra.NewYAMLLoader(a.Logger.With("component", "yaml_loader"))
	}
	if a.Writer == nil {
		a.Writer = output.NewFileWriter(a.Logger.With("component", "file_writer"))
	}
	if a.Generator == nil {
		a.Generator = generate.NewService(a.Loader, a.Writer, a.Events, a.Logger.With("component", "generate_service"))
	}
}
