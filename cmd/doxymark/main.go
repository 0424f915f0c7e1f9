// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/doxymark

// doxymark converts Doxygen XML into Markdown and component-markup docs.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/doxymark"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/doxymark"
	_buildTime string
)

// cliOptions describes doxymark CLI flags and subcommands.
type cliOptions struct {
	Version versionCommand `command:"version" description:"Print version information"`
	Convert convertCommand `command:"convert" description:"Convert a directory of Doxygen XML files"`
	CSS     cssCommand     `command:"css" description:"Write the bundled stylesheet"`
}

// convertCommand converts one input directory into one output directory.
// Pointer flags override config values only when set, matching the config
// file precedence rules.
type convertCommand struct {
	runner *cliRunner

	ConfigPath     string  `short:"c" long:"config" description:"Path to YAML configuration file"`
	Input          *string `short:"i" long:"input" description:"Input directory containing Doxygen XML files"`
	Output         *string `short:"o" long:"output" description:"Output directory for generated documents"`
	Project        *string `short:"p" long:"project" description:"Project name used in document metadata"`
	HeadingOffset  *int    `long:"heading-offset" description:"Heading level offset (for example 1 to start from h2)"`
	Format         *string `short:"f" long:"format" choice:"markdown" choice:"mdx" choice:"jsx" description:"Output dialect"`
	ComponentsPath *string `long:"components-path" description:"Import path for component markup (mdx dialect)"`
	Jobs           int     `short:"j" long:"jobs" default:"1" description:"Convert up to N files concurrently"`
	NoIndex        bool    `long:"no-index" description:"Do not generate an index document"`
	GenerateCSS    bool    `long:"generate-css" description:"Write the bundled stylesheet before converting"`
	CSSPath        *string `long:"css" description:"Output path for the stylesheet"`
}

// Execute runs the convert subcommand.
func (command *convertCommand) Execute(_ []string) error {
	config, err := command.resolveConfig()
	if err != nil {
		return err
	}

	if command.GenerateCSS {
		if err := doxymark.WriteStylesheet(config.CSSOutputPath); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(command.runner.stdout, "Stylesheet: %s\n", config.CSSOutputPath)
	}

	summary, err := doxymark.Convert(doxymark.ConvertOptions{
		InputDir:  config.InputDir,
		OutputDir: config.OutputDir,
		Render:    config.RenderOptions(),
		Jobs:      command.Jobs,
		EmitIndex: config.EmitIndex && !command.NoIndex,
		Progress:  command.runner.stdout,
	})
	if err != nil {
		return err
	}

	command.runner.printSummary(config, summary)
	return nil
}

// resolveConfig loads the config file when given and applies flag
// overrides.
func (command *convertCommand) resolveConfig() (doxymark.Config, error) {
	config := doxymark.DefaultConfig()
	if strings.TrimSpace(command.ConfigPath) != "" {
		loaded, err := doxymark.LoadConfig(command.ConfigPath)
		if err != nil {
			return config, err
		}

		config = loaded
	}

	if command.Input != nil {
		config.InputDir = *command.Input
	}

	if command.Output != nil {
		config.OutputDir = *command.Output
	}

	if command.Project != nil {
		config.ProjectName = *command.Project
	}

	if command.HeadingOffset != nil {
		config.HeadingOffset = *command.HeadingOffset
	}

	if command.Format != nil {
		config.Format = *command.Format
	}

	if command.ComponentsPath != nil {
		config.ComponentsPath = *command.ComponentsPath
	}

	if command.CSSPath != nil {
		config.CSSOutputPath = *command.CSSPath
	}

	return config, nil
}

// cssCommand writes the bundled stylesheet to a file.
type cssCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output stylesheet path (optional; docs/doxygen.css when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs the css subcommand.
func (command *cssCommand) Execute(_ []string) error {
	path := strings.TrimSpace(command.Args.Output)
	if path == "" {
		path = doxymark.DefaultConfig().CSSOutputPath
	}

	if err := doxymark.WriteStylesheet(path); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(command.runner.stdout, "Stylesheet: %s\n", path)
	return nil
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs the version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	_, _ = fmt.Fprintf(command.runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "doxymark"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// printSummary writes the final run summary: counts and the resolved
// configuration actually used.
func (runner *cliRunner) printSummary(config doxymark.Config, summary *doxymark.Summary) {
	_, _ = fmt.Fprintf(runner.stdout, "\nConverted %d file(s), %d error(s)\n", len(summary.Converted), len(summary.Failed))
	_, _ = fmt.Fprintf(runner.stdout, "Input:   %s\n", config.InputDir)
	_, _ = fmt.Fprintf(runner.stdout, "Output:  %s\n", config.OutputDir)
	_, _ = fmt.Fprintf(runner.stdout, "Format:  %s\n", config.Format)
	_, _ = fmt.Fprintf(runner.stdout, "Project: %s\n", config.ProjectName)
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand
// execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Convert.runner = runner
	options.CSS.runner = runner
	options.Version.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	return err
}

// applyCommandLongDescriptions configures detailed command help text with
// examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"convert": strings.TrimSpace(fmt.Sprintf(`
Convert every Doxygen XML file in a directory into documentation files.
Files named index* are skipped; one malformed file never aborts the batch.

Examples:
> $ %s convert -i docs/build/xml -o docs/mdx
> $ %s convert -c doxymark.yaml -f mdx --components-path ../components/doxygen.jsx
> $ %s convert -i xml -o out -f jsx -j 4
`, programName, programName, programName)),
		"css": strings.TrimSpace(fmt.Sprintf(`
Write the bundled stylesheet for generated markup elements.

Examples:
> $ %s css docs/doxygen.css
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}
