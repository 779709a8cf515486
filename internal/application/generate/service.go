// Package generate implements the generation use case: load a token table,
// render the stylesheet, check it and write it out.
package generate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/fundraise-pro/themegen/internal/colorspace"
	"github.com/fundraise-pro/themegen/internal/domain/theme"
	"github.com/fundraise-pro/themegen/internal/ports"
	"github.com/fundraise-pro/themegen/internal/stylesheet"
	"github.com/fundraise-pro/themegen/pkg/diff"
)

// Request selects the token table and overrides document settings. Empty
// fields keep the document's values.
type Request struct {
	TokensPath string
	OutputPath string
	Conversion string
}

// Result describes one rendered stylesheet.
type Result struct {
	Theme         *theme.Theme
	OutputPath    string
	CSS           string
	Bytes         int
	Checksum      string
	Substitutions []stylesheet.Substitution
	Document      stylesheet.Document
}

// DiffResult compares a rendered stylesheet with the file on disk.
type DiffResult struct {
	Result
	Exists bool
	Stale  bool
	Diff   string
	Stats  diff.Stats
}

// Service wires the ports the generation use case depends on.
type Service struct {
	loader    ports.TokenLoader
	writer    ports.StylesheetWriter
	publisher ports.EventPublisher
	logger    ports.Logger
}

// NewService constructs a Service with dependencies injected.
func NewService(loader ports.TokenLoader, writer ports.StylesheetWriter, publisher ports.EventPublisher, logger ports.Logger) *Service {
	return &Service{
		loader:    loader,
		writer:    writer,
		publisher: publisher,
		logger:    logger,
	}
}

// Render runs the pipeline up to and including the syntax check without
// touching the output file.
func (s *Service) Render(ctx context.Context, req Request) (Result, error) {
	th, err := s.loader.Load(ctx, req.TokensPath)
	if err != nil {
		return Result{}, err
	}
	applyOverrides(th, req)

	conv, err := colorspace.ForMethod(th.Settings.Conversion)
	if err != nil {
		return Result{}, theme.NewError(theme.ErrCodeValidation, err.Error(), nil, map[string]interface{}{
			"conversion": th.Settings.Conversion,
		})
	}

	out, err := stylesheet.Generate(stylesheet.Input{
		Theme:     th,
		Converter: conv,
		OnSubstitute: func(sub stylesheet.Substitution) {
			publishEvent(ctx, s.publisher, s.logger, ports.EventTokenSubstituted, map[string]interface{}{
				"mode":  string(sub.Mode),
				"token": sub.Token,
				"value": sub.Value,
				"error": sub.Err,
			})
		},
	})
	if err != nil {
		return Result{}, err
	}

	sum := sha256.Sum256([]byte(out.CSS))
	return Result{
		Theme:         th,
		OutputPath:    th.Settings.Output,
		CSS:           out.CSS,
		Bytes:         len(out.CSS),
		Checksum:      hex.EncodeToString(sum[:]),
		Substitutions: out.Substitutions,
		Document:      out.Document,
	}, nil
}

// Generate renders the stylesheet and writes it to the configured output.
// A write failure is fatal and returned as is.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	source := sourceLabel(req.TokensPath)
	if s.logger != nil {
		s.logger.Info(ctx, "generating stylesheet", "tokens", source, "conversion", req.Conversion)
	}
	publishEvent(ctx, s.publisher, s.logger, ports.EventGenerationStarted, map[string]interface{}{
		"tokens": source,
	})

	result, err := s.Render(ctx, req)
	if err != nil {
		s.fail(ctx, source, "render", err)
		return Result{}, err
	}

	if err := s.writer.Write(ctx, result.OutputPath, []byte(result.CSS)); err != nil {
		s.fail(ctx, source, "write", err)
		return result, err
	}

	if s.logger != nil {
		s.logger.Info(ctx, "stylesheet generated", "output", result.OutputPath, "bytes", result.Bytes, "substitutions", len(result.Substitutions))
	}
	publishEvent(ctx, s.publisher, s.logger, ports.EventGenerationCompleted, map[string]interface{}{
		"tokens":        source,
		"output":        result.OutputPath,
		"bytes":         result.Bytes,
		"checksum":      result.Checksum,
		"substitutions": len(result.Substitutions),
	})
	return result, nil
}

// Diff renders the stylesheet and compares it with the current output file.
// A missing output file counts as stale.
func (s *Service) Diff(ctx context.Context, req Request) (DiffResult, error) {
	result, err := s.Render(ctx, req)
	if err != nil {
		return DiffResult{}, err
	}

	current, err := s.writer.Read(ctx, result.OutputPath)
	if err != nil {
		if theme.HasCode(err, theme.ErrCodeNotFound) {
			return DiffResult{Result: result, Stale: true}, nil
		}
		return DiffResult{}, err
	}

	text, stats := diff.Unified(current, []byte(result.CSS), result.OutputPath, "generated", diff.DefaultContext)
	return DiffResult{
		Result: result,
		Exists: true,
		Stale:  stats.Changed() || string(current) != result.CSS,
		Diff:   text,
		Stats:  stats,
	}, nil
}

func (s *Service) fail(ctx context.Context, source, phase string, err error) {
	if s.logger != nil {
		s.logger.Error(ctx, "stylesheet generation failed", "tokens", source, "phase", phase, "error", err)
	}
	publishEvent(ctx, s.publisher, s.logger, ports.EventGenerationFailed, map[string]interface{}{
		"tokens": source,
		"phase":  phase,
		"error":  err,
	})
}

func applyOverrides(th *theme.Theme, req Request) {
	if out := strings.TrimSpace(req.OutputPath); out != "" {
		th.Settings.Output = out
	}
	if conv := strings.TrimSpace(req.Conversion); conv != "" {
		th.Settings.Conversion = strings.ToLower(conv)
	}
}

func sourceLabel(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
