package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fundraise-pro/themegen/internal/application/generate"
	"github.com/fundraise-pro/themegen/internal/colorspace"
)

type sourceOptions struct {
	TokensPath string
	OutputPath string
	Conversion string
}

func (o sourceOptions) request() generate.Request {
	return generate.Request{
		TokensPath: strings.TrimSpace(o.TokensPath),
		OutputPath: strings.TrimSpace(o.OutputPath),
		Conversion: strings.TrimSpace(o.Conversion),
	}
}

func bindTokensFlag(cmd *cobra.Command, opts *sourceOptions) {
	cmd.Flags().StringVarP(&opts.TokensPath, "tokens", "t", "", "Path to the token table (defaults to the embedded table)")
}

func bindOutputFlag(cmd *cobra.Command, opts *sourceOptions) {
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Stylesheet path (overrides the document's output)")
}

func bindConversionFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "conversion", "", fmt.Sprintf("Color conversion method: %s", strings.Join(colorspace.Methods, " or ")))
}

func validateSourceOptions(opts sourceOptions) error {
	if path := strings.TrimSpace(opts.TokensPath); path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve tokens path: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return fmt.Errorf("token table does not exist: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("tokens path %s is a directory", abs)
		}
	}

	if conv := strings.TrimSpace(opts.Conversion); conv != "" {
		if _, err := colorspace.ForMethod(conv); err != nil {
			return err
		}
	}

	if out := strings.TrimSpace(opts.OutputPath); out != "" && strings.HasSuffix(out, string(os.PathSeparator)) {
		return fmt.Errorf("output path %s names a directory", out)
	}

	return nil
}
