// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/doxymark

package doxymark

import (
	"fmt"
	"strings"
)

// Output format selectors for Options.Format.
const (
	// FormatMarkdown emits plain Markdown with YAML frontmatter.
	FormatMarkdown = "markdown"
	// FormatMDX emits Markdown embedding component markup.
	FormatMDX = "mdx"
	// FormatJSX emits pure component-markup files.
	FormatJSX = "jsx"
)

// DefaultComponentsPath is the import path used by the component-embedded
// dialect when the caller does not provide one.
const DefaultComponentsPath = "./components/doxygen.jsx"

// codeFenceLanguage tags every emitted code fence. The tag is a fixed
// property of the system, not derived from the input.
const codeFenceLanguage = "cpp"

// docMeta carries compound-level header metadata into document framing.
type docMeta struct {
	ID          string
	Kind        string
	Title       string
	Label       string
	Description string
}

// memberView is the dialect-independent view of one renderable member.
// Brief and Detailed are already rendered description fragments.
type memberView struct {
	ID         string
	Name       string
	Signature  string
	IsFunction bool
	Brief      string
	Detailed   string
	Params     []paramView
	ReturnType string
}

// paramView is one named parameter with an optional default value.
type paramView struct {
	Name    string
	Default string
}

// style is the pluggable emission policy: one implementation per output
// dialect. The traversal engine never branches on the dialect inline; all
// concrete syntax for wrapping, headings, sections, member layout and
// document framing lives here.
type style interface {
	extension() string
	paragraphSeparator() string

	inlineCode(text string) string
	bold(text string) string
	italic(text string) string
	link(text, url string) string
	ref(text, refid string) string
	codeBlock(lines []string) string
	unknown(kind, text string) string

	description(text string, detailed bool) []string
	section(title string, members [][]string) []string
	member(view memberView) []string
	includesSection(paths []string) []string
	definedClassesSection(refs []InnerRef) []string
	frame(meta docMeta, body []string) []string
}

// newStyle selects the emission style for one run.
func newStyle(opt Options) (style, error) {
	format := strings.ToLower(strings.TrimSpace(opt.Format))
	switch format {
	case "", FormatMarkdown:
		return markdownStyle{
			headingOffset: opt.HeadingOffset,
			projectName:   strings.TrimSpace(opt.ProjectName),
		}, nil
	case FormatMDX:
		componentsPath := strings.TrimSpace(opt.ComponentsPath)
		if componentsPath == "" {
			componentsPath = DefaultComponentsPath
		}

		return mdxStyle{componentsPath: componentsPath}, nil
	case FormatJSX:
		return jsxStyle{headingOffset: opt.HeadingOffset}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, opt.Format)
	}
}

// clampHeadingLevel keeps offset-shifted heading levels in the valid range.
func clampHeadingLevel(level int) int {
	if level < 1 {
		return 1
	}

	if level > 6 {
		return 6
	}

	return level
}

// escapeDoubleQuotes escapes double quotes for quoted header fields and
// markup attribute values.
func escapeDoubleQuotes(value string) string {
	return strings.ReplaceAll(value, `"`, `\"`)
}
