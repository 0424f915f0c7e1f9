// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/doxymark

package doxymark

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration surface of the converter. Zero values
// in the file keep the corresponding default.
type Config struct {
	// InputDir holds the documentation XML files to convert.
	InputDir string `yaml:"input_xml_dir"`
	// OutputDir receives generated documents.
	OutputDir string `yaml:"output_mdx_dir"`
	// CSSOutputPath is where the bundled stylesheet is written on demand.
	CSSOutputPath string `yaml:"css_output_path"`
	// ProjectName is free text used as document metadata.
	ProjectName string `yaml:"project_name"`
	// HeadingOffset shifts leveled headings in the output.
	HeadingOffset int `yaml:"heading_offset"`
	// EmitIndex controls index document generation.
	EmitIndex bool `yaml:"emit_index"`
	// Format selects the output dialect: markdown, mdx or jsx.
	Format string `yaml:"format"`
	// ComponentsPath is the import path embedded by the mdx dialect.
	ComponentsPath string `yaml:"components_path"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		InputDir:       "docs/build/xml",
		OutputDir:      "docs/mdx",
		CSSOutputPath:  "docs/doxygen.css",
		ProjectName:    "Project",
		EmitIndex:      true,
		Format:         FormatMarkdown,
		ComponentsPath: DefaultComponentsPath,
	}
}

// LoadConfig reads a YAML configuration file over the defaults. Keys
// absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("%w %q: %w", ErrReadConfigFile, path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("%w %q: %w", ErrDecodeConfigFile, path, err)
	}

	return config, nil
}

// RenderOptions maps the configuration onto per-file render options.
func (c Config) RenderOptions() Options {
	return Options{
		Format:         c.Format,
		HeadingOffset:  c.HeadingOffset,
		ProjectName:    c.ProjectName,
		ComponentsPath: c.ComponentsPath,
	}
}
