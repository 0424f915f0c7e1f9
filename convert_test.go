// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/doxymark

package doxymark

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConvertBatchSurvivesMalformedFile(t *testing.T) {
	t.Parallel()

	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writeTestFile(t, inputDir, "class_widget.xml", classWidgetXML)
	writeTestFile(t, inputDir, "broken.xml", "<doxygen><compounddef")

	var progress bytes.Buffer
	summary, err := Convert(ConvertOptions{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Progress:  &progress,
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if len(summary.Converted) != 1 || len(summary.Failed) != 1 {
		t.Fatalf("summary = %d converted, %d failed", len(summary.Converted), len(summary.Failed))
	}

	if !errors.Is(summary.Failed[0].Err, ErrParseXML) {
		t.Fatalf("failure = %v, want ErrParseXML", summary.Failed[0].Err)
	}

	result := summary.Converted[0]
	if result.Title != "Class Widget" || result.Label != "Widget" {
		t.Fatalf("result metadata = %q, %q", result.Title, result.Label)
	}

	assertContains(t, progress.String(), "Converted: class_widget.xml -> class_widget.mdx")
	assertContains(t, progress.String(), "Error: broken.xml:")

	data, err := os.ReadFile(filepath.Join(outputDir, "class_widget.mdx"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	assertContains(t, string(data), "title: Class Widget")
}

func TestConvertSkipsIndexInputs(t *testing.T) {
	t.Parallel()

	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writeTestFile(t, inputDir, "class_widget.xml", classWidgetXML)
	writeTestFile(t, inputDir, "index.xml", `<doxygenindex><compound refid="class_widget"/></doxygenindex>`)
	writeTestFile(t, inputDir, "indexpage.xml", classWidgetXML)

	summary, err := Convert(ConvertOptions{InputDir: inputDir, OutputDir: outputDir})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if len(summary.Converted) != 1 {
		t.Fatalf("converted = %v", summary.Converted)
	}

	if summary.Converted[0].Output != filepath.Join(outputDir, "class_widget.mdx") {
		t.Fatalf("output = %q", summary.Converted[0].Output)
	}
}

func TestConvertSkipsFilesWithoutCompound(t *testing.T) {
	t.Parallel()

	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writeTestFile(t, inputDir, "empty.xml", "<doxygen></doxygen>")

	summary, err := Convert(ConvertOptions{InputDir: inputDir, OutputDir: outputDir})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if len(summary.Converted) != 0 || len(summary.Failed) != 0 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestConvertEmitsIndexDocument(t *testing.T) {
	t.Parallel()

	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writeTestFile(t, inputDir, "class_widget.xml", classWidgetXML)
	writeTestFile(t, inputDir, "sample_8hpp.xml", fileCompoundXML)

	summary, err := Convert(ConvertOptions{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Render:    Options{ProjectName: "Widgets"},
		EmitIndex: true,
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if len(summary.Converted) != 2 {
		t.Fatalf("converted = %v", summary.Converted)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "index.mdx"))
	if err != nil {
		t.Fatalf("reading index: %v", err)
	}

	assertContains(t, string(data), "title: Widgets API Reference")
	assertContains(t, string(data), "- [Class Widget](./class_widget)")
	assertContains(t, string(data), "- [Sample 8Hpp](./sample_8hpp)")
}

func TestConvertSkipsIndexForComponentOnlyDialect(t *testing.T) {
	t.Parallel()

	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writeTestFile(t, inputDir, "class_widget.xml", classWidgetXML)

	summary, err := Convert(ConvertOptions{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Render:    Options{Format: FormatJSX},
		EmitIndex: true,
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if len(summary.Converted) != 1 {
		t.Fatalf("converted = %v", summary.Converted)
	}

	if summary.Converted[0].Output != filepath.Join(outputDir, "class_widget.jsx") {
		t.Fatalf("output = %q", summary.Converted[0].Output)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}

	for _, entry := range entries {
		if entry.Name() != "class_widget.jsx" {
			t.Fatalf("unexpected output file %q", entry.Name())
		}
	}
}

func TestConvertNoIndexWithoutConversions(t *testing.T) {
	t.Parallel()

	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writeTestFile(t, inputDir, "broken.xml", "<doxygen><compounddef")

	summary, err := Convert(ConvertOptions{InputDir: inputDir, OutputDir: outputDir, EmitIndex: true})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if len(summary.Failed) != 1 {
		t.Fatalf("failed = %v", summary.Failed)
	}

	if _, err := os.Stat(filepath.Join(outputDir, "index.mdx")); !os.IsNotExist(err) {
		t.Fatalf("index stat = %v, want not-exist", err)
	}
}

func TestConvertParallelJobsMatchSequentialOutput(t *testing.T) {
	t.Parallel()

	inputDir := t.TempDir()
	writeTestFile(t, inputDir, "class_widget.xml", classWidgetXML)
	writeTestFile(t, inputDir, "sample_8hpp.xml", fileCompoundXML)
	writeTestFile(t, inputDir, "broken.xml", "<doxygen><compounddef")

	sequentialDir := t.TempDir()
	sequential, err := Convert(ConvertOptions{InputDir: inputDir, OutputDir: sequentialDir, Jobs: 1})
	if err != nil {
		t.Fatalf("sequential Convert: %v", err)
	}

	parallelDir := t.TempDir()
	parallel, err := Convert(ConvertOptions{InputDir: inputDir, OutputDir: parallelDir, Jobs: 4})
	if err != nil {
		t.Fatalf("parallel Convert: %v", err)
	}

	if len(sequential.Converted) != len(parallel.Converted) || len(sequential.Failed) != len(parallel.Failed) {
		t.Fatalf("summaries differ: %+v vs %+v", sequential, parallel)
	}

	for i, result := range sequential.Converted {
		a, err := os.ReadFile(result.Output)
		if err != nil {
			t.Fatalf("reading sequential output: %v", err)
		}

		b, err := os.ReadFile(parallel.Converted[i].Output)
		if err != nil {
			t.Fatalf("reading parallel output: %v", err)
		}

		if !bytes.Equal(a, b) {
			t.Fatalf("outputs differ for %s", result.Source)
		}
	}
}

func TestConvertMissingInputDir(t *testing.T) {
	t.Parallel()

	_, err := Convert(ConvertOptions{
		InputDir:  filepath.Join(t.TempDir(), "absent"),
		OutputDir: t.TempDir(),
	})
	if !errors.Is(err, ErrReadInputDir) {
		t.Fatalf("err = %v, want ErrReadInputDir", err)
	}
}

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}
