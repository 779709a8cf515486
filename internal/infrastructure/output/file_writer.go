package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fundraise-pro/themegen/internal/domain/theme"
	"github.com/fundraise-pro/themegen/internal/ports"
	apperrors "github.com/fundraise-pro/themegen/pkg/errors"
)

const tempSuffix = ".tmp"

// FileWriter implements the StylesheetWriter port on the local filesystem.
type FileWriter struct {
	logger ports.Logger
	perm   os.FileMode
}

// NewFileWriter returns a writer creating files with mode 0644.
func NewFileWriter(logger ports.Logger) *FileWriter {
	return &FileWriter{logger: logger, perm: 0o644}
}

// Write creates missing parent directories, writes data to a sibling
// temporary file and renames it over path.
func (w *FileWriter) Write(ctx context.Context, path string, data []byte) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return theme.NewError(theme.ErrCodeCancelled, "write cancelled", err, map[string]interface{}{"path": path})
		}
	}
	if path == "" {
		return apperrors.NewWriteError(path, fmt.Errorf("output path is empty"))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.NewWriteError(path, fmt.Errorf("create directory %s: %w", dir, err))
		}
	}

	tmp := path + tempSuffix
	if err := os.WriteFile(tmp, data, w.perm); err != nil {
		_ = os.Remove(tmp)
		return apperrors.NewWriteError(path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return apperrors.NewWriteError(path, err)
	}

	if w.logger != nil {
		w.logger.Debug(ctx, "stylesheet written", "path", path, "bytes", len(data))
	}
	return nil
}

// Read returns the contents of path. A missing file is reported as a
// NOT_FOUND domain error.
func (w *FileWriter) Read(ctx context.Context, path string) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, theme.NewError(theme.ErrCodeCancelled, "read cancelled", err, map[string]interface{}{"path": path})
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, theme.NewError(theme.ErrCodeNotFound, "stylesheet not found", err, map[string]interface{}{"path": path})
		}
		return nil, theme.NewError(theme.ErrCodeInternal, "stylesheet read failed", err, map[string]interface{}{"path": path})
	}
	return data, nil
}

var _ ports.StylesheetWriter = (*FileWriter)(nil)
