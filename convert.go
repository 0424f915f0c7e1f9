// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/doxymark

package doxymark

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ConvertOptions configures one directory conversion run.
type ConvertOptions struct {
	// InputDir is the directory holding documentation XML files. Files
	// whose name begins with "index" are excluded from the batch.
	InputDir string
	// OutputDir receives one output file per converted input, created
	// when absent.
	OutputDir string
	// Render configures the shared per-file render pass.
	Render Options
	// Jobs limits concurrent file conversions; values below one mean
	// sequential conversion. Files share no mutable state, so any limit
	// preserves the single-file contract.
	Jobs int
	// EmitIndex writes an index document listing every converted file.
	// The components-only dialect has no framing document for it and
	// always skips it.
	EmitIndex bool
	// Progress receives one confirmation or error line per processed
	// file; nil discards them.
	Progress io.Writer
}

// FileResult describes one successfully converted file.
type FileResult struct {
	Source string
	Output string
	Title  string
	Label  string
}

// FileError describes one failed file; the batch continues past it.
type FileError struct {
	Source string
	Err    error
}

// Summary is the outcome of one conversion run.
type Summary struct {
	Converted []FileResult
	Failed    []FileError
}

// Convert renders every documentation XML file in the input directory into
// the output directory.
//
// A single file's parse or render failure is recorded in the summary and
// the batch continues; output I/O failures abort the whole run. Each file
// conversion is a pure function of that file's parsed tree plus the fixed
// options, so conversions run independently under the Jobs limit.
func Convert(opt ConvertOptions) (*Summary, error) {
	if _, err := os.Stat(opt.InputDir); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadInputDir, opt.InputDir, err)
	}

	inputs, err := filepath.Glob(filepath.Join(opt.InputDir, "*.xml"))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadInputDir, opt.InputDir, err)
	}

	if err := os.MkdirAll(opt.OutputDir, 0o750); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCreateOutputDir, opt.OutputDir, err)
	}

	var (
		mu      sync.Mutex
		summary Summary
	)

	report := func(format string, args ...any) {
		if opt.Progress == nil {
			return
		}

		_, _ = fmt.Fprintf(opt.Progress, format, args...)
	}

	jobs := opt.Jobs
	if jobs < 1 {
		jobs = 1
	}

	group := new(errgroup.Group)
	group.SetLimit(jobs)

	for _, input := range inputs {
		input := input
		base := filepath.Base(input)
		if strings.HasPrefix(base, "index") {
			continue
		}

		group.Go(func() error {
			doc, convErr := RenderFile(input, opt.Render)
			if convErr != nil {
				mu.Lock()
				summary.Failed = append(summary.Failed, FileError{Source: input, Err: convErr})
				report("Error: %s: %v\n", base, convErr)
				mu.Unlock()
				return nil
			}

			if doc == nil {
				return nil
			}

			outName := strings.TrimSuffix(base, filepath.Ext(base)) + doc.Extension
			outPath := filepath.Join(opt.OutputDir, outName)
			if writeErr := os.WriteFile(outPath, []byte(doc.Content), 0o600); writeErr != nil {
				return fmt.Errorf("%w %q: %w", ErrWriteOutput, outPath, writeErr)
			}

			mu.Lock()
			summary.Converted = append(summary.Converted, FileResult{
				Source: input,
				Output: outPath,
				Title:  doc.Title,
				Label:  doc.Label,
			})
			report("Converted: %s -> %s\n", base, outName)
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(summary.Converted, func(i, j int) bool {
		return summary.Converted[i].Source < summary.Converted[j].Source
	})
	sort.Slice(summary.Failed, func(i, j int) bool {
		return summary.Failed[i].Source < summary.Failed[j].Source
	})

	if opt.EmitIndex && opt.Render.Format != FormatJSX && len(summary.Converted) > 0 {
		if err := writeIndex(opt, summary.Converted); err != nil {
			return nil, err
		}
	}

	return &summary, nil
}

// writeIndex emits one document listing every converted file as a relative
// link with its resolved title.
func writeIndex(opt ConvertOptions, converted []FileResult) error {
	title := "API Reference"
	if project := strings.TrimSpace(opt.Render.ProjectName); project != "" {
		title = project + " " + title
	}

	lines := []string{
		"---",
		"title: " + title,
		"---",
		"",
	}

	extension := ".mdx"
	for _, result := range converted {
		stem := strings.TrimSuffix(filepath.Base(result.Output), filepath.Ext(result.Output))
		extension = filepath.Ext(result.Output)
		lines = append(lines, fmt.Sprintf("- [%s](./%s)", result.Title, stem))
	}

	path := filepath.Join(opt.OutputDir, "index"+extension)
	content := ensureTrailingNewline(strings.Join(lines, "\n"))
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, path, err)
	}

	return nil
}
