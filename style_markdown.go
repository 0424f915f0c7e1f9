// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/doxymark

package doxymark

import (
	"fmt"
	"strings"
)

// markdownStyle emits plain Markdown with YAML frontmatter.
type markdownStyle struct {
	headingOffset int
	projectName   string
}

func (s markdownStyle) extension() string {
	return ".mdx"
}

func (s markdownStyle) paragraphSeparator() string {
	return "\n\n"
}

// heading renders one markdown heading at the offset-shifted level.
func (s markdownStyle) heading(level int, text string) string {
	level = clampHeadingLevel(level + s.headingOffset)
	return strings.Repeat("#", level) + " " + text
}

func (s markdownStyle) inlineCode(text string) string {
	return "`" + escapeBackticks(text) + "`"
}

func (s markdownStyle) bold(text string) string {
	return "**" + text + "**"
}

func (s markdownStyle) italic(text string) string {
	return "*" + text + "*"
}

func (s markdownStyle) link(text, url string) string {
	return fmt.Sprintf("[%s](%s)", text, url)
}

// ref links cross-references as relative same-directory paths; the refid is
// emitted verbatim, resolution to compiled locations is out of scope.
func (s markdownStyle) ref(text, refid string) string {
	return fmt.Sprintf("[%s](./%s)", text, refid)
}

func (s markdownStyle) codeBlock(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	return "```" + codeFenceLanguage + "\n" + strings.Join(lines, "\n") + "\n```"
}

// unknown wraps unrecognized element kinds in a stylable container instead
// of dropping them.
func (s markdownStyle) unknown(kind, text string) string {
	if text == "" {
		return ""
	}

	return fmt.Sprintf(`<div class="doxygen-%s">%s</div>`, kind, text)
}

func (s markdownStyle) description(text string, _ bool) []string {
	return []string{text, ""}
}

func (s markdownStyle) section(title string, members [][]string) []string {
	out := []string{s.heading(2, title), ""}
	for _, member := range members {
		out = append(out, member...)
		out = append(out, "")
	}

	return out
}

func (s markdownStyle) member(view memberView) []string {
	lines := []string{s.heading(3, s.inlineCode(view.Signature)), ""}

	if view.Brief != "" {
		lines = append(lines, view.Brief, "")
	}

	if view.Detailed != "" {
		lines = append(lines, view.Detailed, "")
	}

	if view.IsFunction && len(view.Params) > 0 {
		lines = append(lines, s.heading(4, "Parameters"), "")
		for _, param := range view.Params {
			item := "- " + s.inlineCode(param.Name)
			if param.Default != "" {
				item += ": " + param.Default
			}

			lines = append(lines, item)
		}

		lines = append(lines, "")
	}

	if view.IsFunction && view.ReturnType != "" {
		lines = append(lines, s.heading(4, "Returns"), "", s.inlineCode(view.ReturnType), "")
	}

	return lines
}

func (s markdownStyle) includesSection(paths []string) []string {
	out := []string{s.heading(2, "Includes"), ""}
	for _, path := range paths {
		out = append(out, "- "+s.inlineCode(path))
	}

	return append(out, "")
}

func (s markdownStyle) definedClassesSection(refs []InnerRef) []string {
	out := []string{s.heading(2, "Defined Classes"), ""}
	for _, ref := range refs {
		out = append(out, "- "+s.ref(ref.Name, ref.RefID))
	}

	return append(out, "")
}

func (s markdownStyle) frame(meta docMeta, body []string) []string {
	out := []string{
		"---",
		"title: " + meta.Title,
		"sidebar_label: " + meta.Label,
	}

	if s.projectName != "" {
		out = append(out, "project: "+s.projectName)
	}

	out = append(out, "---", "")
	return append(out, body...)
}

// escapeBackticks escapes backticks in inline code segments.
func escapeBackticks(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}
