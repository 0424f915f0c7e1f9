// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/doxymark

package doxymark

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// stylesheet is the bundled stylesheet for generated markup elements.
//
//go:embed assets/doxygen.css
var stylesheet string

// Stylesheet returns the bundled stylesheet text.
func Stylesheet() string {
	return stylesheet
}

// WriteStylesheet writes the bundled stylesheet to path, creating parent
// directories when absent.
func WriteStylesheet(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("%w %q: %w", ErrWriteStylesheet, path, err)
		}
	}

	if err := os.WriteFile(path, []byte(stylesheet), 0o600); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteStylesheet, path, err)
	}

	return nil
}
