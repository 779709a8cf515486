package config

import (
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/fundraise-pro/themegen/internal/colorspace"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	lengthPattern   = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)(px|rem|em|%|ch|ex|vh|vw|pt)?$`)
	selectorPattern = regexp.MustCompile(`^[^{};]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("css_length", func(fl validator.FieldLevel) bool {
			return lengthPattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})

		_ = v.RegisterValidation("css_selector", func(fl validator.FieldLevel) bool {
			sel := fl.Field().String()
			if strings.TrimSpace(sel) == "" {
				return false
			}
			return selectorPattern.MatchString(sel) && !strings.Contains(sel, "/*")
		})

		_ = v.RegisterValidation("conversion_method", func(fl validator.FieldLevel) bool {
			method := strings.ToLower(strings.TrimSpace(fl.Field().String()))
			for _, m := range colorspace.Methods {
				if method == m {
					return true
				}
			}
			return false
		})

		_ = v.RegisterValidation("css_path", func(fl validator.FieldLevel) bool {
			return isValidOutputPath(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isValidOutputPath performs syntactic validation of the stylesheet path without filesystem access.
func isValidOutputPath(path string) bool {
	if strings.TrimSpace(path) == "" || strings.Contains(path, "\x00") {
		return false
	}
	if strings.HasSuffix(path, "/") {
		return false
	}
	return strings.EqualFold(filepath.Ext(path), ".css")
}
