package ports

import (
	"context"

	"github.com/fundraise-pro/themegen/internal/domain/theme"
)

// TokenLoader loads token tables from an external source such as the
// filesystem or the embedded default. Implementations must respect context
// cancellation and translate failures into domain error codes:
//   - io/fs.ErrNotExist → ErrCodeNotFound
//   - YAML or schema failures → ErrCodeValidation (ErrCodeDuplicate for repeated names)
//   - light/dark name mismatch → ErrCodeAsymmetric
//   - context cancellation → ErrCodeCancelled
type TokenLoader interface {
	// Load reads, validates and maps the table at path. An empty path loads
	// the built-in default table.
	Load(ctx context.Context, path string) (*theme.Theme, error)

	// Validate checks the table at path without returning it.
	Validate(ctx context.Context, path string) error
}

// StylesheetWriter persists and reads generated stylesheets.
type StylesheetWriter interface {
	// Write replaces the file at path with data. Partial writes must never be
	// observable at path.
	Write(ctx context.Context, path string, data []byte) error

	// Read returns the current contents of path.
	Read(ctx context.Context, path string) ([]byte, error)
}
