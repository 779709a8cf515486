package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	cfgpkg "github.com/fundraise-pro/themegen/internal/config"
	"github.com/fundraise-pro/themegen/internal/defaults"
	"github.com/fundraise-pro/themegen/internal/domain/theme"
	"github.com/fundraise-pro/themegen/internal/ports"
	"github.com/fundraise-pro/themegen/internal/stylesheet"
	apperrors "github.com/fundraise-pro/themegen/pkg/errors"
)

// YAMLLoader implements the TokenLoader port by reading YAML token documents
// from disk or from the embedded default.
type YAMLLoader struct {
	logger ports.Logger
}

func NewYAMLLoader(logger ports.Logger) *YAMLLoader {
	return &YAMLLoader{logger: logger}
}

// Load parses, validates and maps the document at path. An empty path loads
// the embedded FundRaise Pro table.
func (l *YAMLLoader) Load(ctx context.Context, path string) (*theme.Theme, error) {
	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	source := path
	var (
		doc *cfgpkg.Document
		err error
	)
	if path == "" {
		source = defaults.SourceName
		l.logDebug(ctx, "loading embedded token table", map[string]interface{}{"source": source})
		doc, err = cfgpkg.Parse(source, defaults.Tokens())
	} else {
		l.logDebug(ctx, "loading token table", map[string]interface{}{"path": path})
		doc, err = cfgpkg.ParseFile(path)
	}
	if err != nil {
		l.logError(ctx, "failed to parse token table", err, map[string]interface{}{"path": source})
		return nil, convertError(err, source)
	}

	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	th := mapToDomain(doc, source)
	if err := validateTable(th.Table); err != nil {
		l.logError(ctx, "token table failed domain validation", err, map[string]interface{}{"path": source})
		var domainErr *theme.DomainError
		if errors.As(err, &domainErr) {
			return nil, domainErr.WithContext(map[string]interface{}{"path": source})
		}
		return nil, err
	}

	l.logInfo(ctx, "token table loaded", map[string]interface{}{
		"path":   source,
		"tokens": th.Table.Len(theme.ModeLight),
	})
	return th, nil
}

// validateTable runs the domain invariants and then checks that no two keys
// render to the same custom property.
func validateTable(table *theme.Table) error {
	if err := table.Validate(); err != nil {
		return err
	}
	return stylesheet.CheckNames(table)
}

// Validate loads the document at path and discards the result.
func (l *YAMLLoader) Validate(ctx context.Context, path string) error {
	if err := contextCheck(ctx); err != nil {
		return err
	}

	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			l.logError(ctx, "token table stat failed", err, map[string]interface{}{"path": path})
			return convertError(err, path)
		}
		if info.IsDir() {
			return domainError(theme.ErrCodeValidation, "token table path is a directory", nil, map[string]interface{}{"path": path})
		}
		switch ext := filepath.Ext(path); ext {
		case ".yaml", ".yml":
		default:
			return domainError(theme.ErrCodeValidation, "unsupported token table extension", nil, map[string]interface{}{"path": path, "extension": ext})
		}
	}

	_, err := l.Load(ctx, path)
	return err
}

var _ ports.TokenLoader = (*YAMLLoader)(nil)

// Export renders a loaded theme back into a normalized YAML document.
func Export(th *theme.Theme) ([]byte, error) {
	if th == nil || th.Table == nil {
		return nil, domainError(theme.ErrCodeValidation, "no theme to export", nil, nil)
	}
	return cfgpkg.Encode(mapFromDomain(th))
}

func convertError(err error, path string) error {
	if err == nil {
		return nil
	}
	var parseErr *apperrors.ParseError
	if errors.As(err, &parseErr) {
		if errors.Is(parseErr.Err, os.ErrNotExist) {
			return domainError(theme.ErrCodeNotFound, "token table not found", parseErr.Err, map[string]interface{}{"path": path})
		}
		return domainError(theme.ErrCodeValidation, "invalid token table syntax", err, map[string]interface{}{"path": parseErr.Path, "line": parseErr.Line})
	}
	var valErr *apperrors.ValidationError
	if errors.As(err, &valErr) {
		context := map[string]interface{}{"path": path}
		if valErr.Field != "" {
			context["field"] = valErr.Field
		}
		code := theme.ErrCodeValidation
		if strings.Contains(strings.ToLower(valErr.Message), "duplicate") {
			code = theme.ErrCodeDuplicate
		}
		return domainError(code, valErr.Message, valErr.Err, context)
	}
	if os.IsNotExist(err) {
		return domainError(theme.ErrCodeNotFound, "token table not found", err, map[string]interface{}{"path": path})
	}
	return domainError(theme.ErrCodeInternal, "token table load failed", err, map[string]interface{}{"path": path})
}

func contextCheck(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return domainError(theme.ErrCodeCancelled, "operation cancelled", err, nil)
	}
	return nil
}

func domainError(code theme.ErrorCode, message string, cause error, ctx map[string]interface{}) *theme.DomainError {
	return &theme.DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: ctx,
	}
}

func (l *YAMLLoader) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Info(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["error"] = err
	l.logger.Error(ctx, msg, flattenFields(payload)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
