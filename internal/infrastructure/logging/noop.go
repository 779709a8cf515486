package logging

import (
	"context"

	"github.com/fundraise-pro/themegen/internal/ports"
)

// NoOpLogger drops every entry. The CLI falls back to it when no logger has
// been configured yet, and the loader and writer tests run against it.
type NoOpLogger struct{}

var _ ports.Logger = NoOpLogger{}

// NewNoOpLogger returns a logger that discards everything.
func NewNoOpLogger() ports.Logger {
	return NoOpLogger{}
}

func (NoOpLogger) Debug(context.Context, string, ...interface{}) {}
func (NoOpLogger) Info(context.Context, string, ...interface{}) {}
func (NoOpLogger) Warn(context.Context, string, ...interface{}) {}
func (NoOpLogger) Error(context.Context, string, ...interface{}) {}

// With returns the receiver; there are no fields to keep.
func (n NoOpLogger) With(...interface{}) ports.Logger { return n }
