// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/doxymark

/*
Package doxymark converts Doxygen-style compound XML into documentation
files in one of three output dialects: plain Markdown with frontmatter
("markdown"), Markdown embedding component markup ("mdx"), and pure
component-markup files ("jsx"). All three dialects share one traversal
engine; the dialect only swaps the emission style.

Render a single document:

	data, err := os.ReadFile("xml/class_widget.xml")
	if err != nil {
		return err
	}

	doc, err := doxymark.Render(data, doxymark.Options{
		Format:      doxymark.FormatMarkdown,
		ProjectName: "Widgets",
	})
	if err != nil {
		return err
	}

	if doc == nil {
		return nil // no compound definition, nothing to emit
	}

	fmt.Println(doc.Content)

Convert a whole directory:

	summary, err := doxymark.Convert(doxymark.ConvertOptions{
		InputDir:  "docs/build/xml",
		OutputDir: "docs/mdx",
		Render:    doxymark.Options{Format: doxymark.FormatMDX},
		Jobs:      4,
		EmitIndex: true,
		Progress:  os.Stdout,
	})
	if err != nil {
		return err
	}

	fmt.Printf("converted %d, failed %d\n", len(summary.Converted), len(summary.Failed))

Load configuration from a YAML file:

	cfg, err := doxymark.LoadConfig("doxymark.yaml")
	if err != nil {
		return err
	}

	summary, err := doxymark.Convert(doxymark.ConvertOptions{
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,
		Render:    cfg.RenderOptions(),
		EmitIndex: cfg.EmitIndex,
	})

Per-file failures (malformed XML) are recorded in the summary and never
abort the batch; missing substructure inside a document is never an error,
the affected piece is simply omitted.
*/
package doxymark
