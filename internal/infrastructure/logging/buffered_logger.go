package logging

import (
	"context"

	"github.com/fundraise-pro/themegen/internal/ports"
)

// BufferedLogger holds entries while the interactive preview owns the
// terminal. The preview command flushes the buffer into the stderr logger
// after the program exits, so log lines never land on the alternate screen.
type BufferedLogger struct {
	buffer *EventBuffer
	fields []interface{}
}

var _ ports.Logger = (*BufferedLogger)(nil)

// NewBufferedLogger returns a logger that appends to buffer.
func NewBufferedLogger(buffer *EventBuffer) *BufferedLogger {
	return &BufferedLogger{buffer: buffer}
}

func (l *BufferedLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.hold(ctx, levelDebug, msg, fields)
}

func (l *BufferedLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.hold(ctx, levelInfo, msg, fields)
}

func (l *BufferedLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.hold(ctx, levelWarn, msg, fields)
}

func (l *BufferedLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.hold(ctx, levelError, msg, fields)
}

// With returns a logger that shares the buffer and prepends fields to every
// entry, such as the component name the preview gives the theme switch.
func (l *BufferedLogger) With(fields ...interface{}) ports.Logger {
	return &BufferedLogger{buffer: l.buffer, fields: joinFields(l.fields, fields)}
}

func (l *BufferedLogger) hold(ctx context.Context, level logLevel, msg string, fields []interface{}) {
	if l == nil || l.buffer == nil {
		return
	}
	l.buffer.add(bufferedEntry{
		ctx:    ctx,
		level:  level,
		msg:    msg,
		fields: joinFields(l.fields, fields),
	})
}

func joinFields(base, extra []interface{}) []interface{} {
	out := make([]interface{}, 0, len(base)+len(extra))
	return append(append(out, base...), extra...)
}
