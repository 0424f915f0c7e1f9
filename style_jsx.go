// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/doxymark

package doxymark

import (
	"fmt"
	"strings"
	"unicode"
)

// jsxStyle emits pure component-markup files, one exported component per
// input document. Inline markup flattens to plain text like mdxStyle, but
// the section and member layout is fully expanded markup rather than
// component props.
type jsxStyle struct {
	headingOffset int
}

func (s jsxStyle) extension() string {
	return ".jsx"
}

func (s jsxStyle) paragraphSeparator() string {
	return " "
}

// headingTag returns the offset-shifted hN tag name for a logical level.
func (s jsxStyle) headingTag(level int) string {
	return fmt.Sprintf("h%d", clampHeadingLevel(level+s.headingOffset))
}

func (s jsxStyle) inlineCode(text string) string {
	return text
}

func (s jsxStyle) bold(text string) string {
	return text
}

func (s jsxStyle) italic(text string) string {
	return text
}

func (s jsxStyle) link(text, _ string) string {
	return text
}

func (s jsxStyle) ref(text, _ string) string {
	return text
}

func (s jsxStyle) codeBlock(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	return sanitizeText(strings.Join(lines, " "))
}

func (s jsxStyle) unknown(_, text string) string {
	return text
}

func (s jsxStyle) description(text string, detailed bool) []string {
	if detailed {
		return []string{fmt.Sprintf(`      <div className="doxygen-detaileddescription">%s</div>`, text)}
	}

	return []string{fmt.Sprintf(`      <p className="doxygen-briefdescription">%s</p>`, text)}
}

func (s jsxStyle) section(title string, members [][]string) []string {
	tag := s.headingTag(2)
	out := []string{fmt.Sprintf(`      <%s className="doxygen-section-title">%s</%s>`, tag, title, tag)}
	for _, member := range members {
		out = append(out, member...)
	}

	return out
}

func (s jsxStyle) member(view memberView) []string {
	tag := s.headingTag(3)
	lines := []string{
		`      <div className="doxygen-member-definition">`,
		fmt.Sprintf(`        <%s className="doxygen-memtitle">`, tag),
		`          <span className="doxygen-permalink">`,
		fmt.Sprintf(`            <a href="#%s">&#9670;&nbsp;</a>`, view.ID),
		`          </span>`,
		`          ` + view.Name,
		fmt.Sprintf(`        </%s>`, tag),
	}

	if view.IsFunction {
		lines = append(lines,
			`        <div className="doxygen-memitem">`,
			`          <div className="doxygen-memproto">`,
			`            <table className="doxygen-memname">`,
			`              <tbody>`,
			`                <tr>`,
			fmt.Sprintf(`                  <td className="doxygen-memname">%s</td>`, view.Signature),
			`                </tr>`,
			`              </tbody>`,
			`            </table>`,
			`          </div>`,
		)
	}

	lines = append(lines, `          <div className="doxygen-memdoc">`)

	if view.Brief != "" {
		lines = append(lines, fmt.Sprintf(`            <p className="doxygen-briefdescription">%s</p>`, view.Brief))
	}

	if view.Detailed != "" {
		lines = append(lines, fmt.Sprintf(`            <div className="doxygen-detaileddescription">%s</div>`, view.Detailed))
	}

	if view.IsFunction && len(view.Params) > 0 {
		lines = append(lines,
			`            <dl className="doxygen-params">`,
			`              <dt>Parameters</dt>`,
			`              <dd>`,
			`                <table className="doxygen-params">`,
			`                  <tbody>`,
		)
		for _, param := range view.Params {
			lines = append(lines,
				`                    <tr>`,
				fmt.Sprintf(`                      <td className="doxygen-paramname">%s</td>`, param.Name),
				fmt.Sprintf(`                      <td>%s</td>`, param.Default),
				`                    </tr>`,
			)
		}

		lines = append(lines,
			`                  </tbody>`,
			`                </table>`,
			`              </dd>`,
			`            </dl>`,
		)
	}

	if view.IsFunction && view.ReturnType != "" {
		lines = append(lines,
			`            <dl className="doxygen-section-return">`,
			`              <dt>Returns</dt>`,
			fmt.Sprintf(`              <dd><code>%s</code></dd>`, view.ReturnType),
			`            </dl>`,
		)
	}

	lines = append(lines, `          </div>`)

	if view.IsFunction {
		lines = append(lines, `        </div>`)
	}

	return append(lines, `      </div>`)
}

func (s jsxStyle) includesSection(paths []string) []string {
	tag := s.headingTag(2)
	out := []string{
		fmt.Sprintf(`      <%s className="doxygen-section-title">Includes</%s>`, tag, tag),
		`      <ul className="doxygen-includes">`,
	}
	for _, path := range paths {
		out = append(out, fmt.Sprintf(`        <li><code>%s</code></li>`, path))
	}

	return append(out, `      </ul>`)
}

func (s jsxStyle) definedClassesSection(refs []InnerRef) []string {
	tag := s.headingTag(2)
	out := []string{
		fmt.Sprintf(`      <%s className="doxygen-section-title">Defined Classes</%s>`, tag, tag),
		`      <ul className="doxygen-innergroups">`,
	}
	for _, ref := range refs {
		out = append(out, fmt.Sprintf(`        <li><a href="./%s">%s</a></li>`, ref.RefID, ref.Name))
	}

	return append(out, `      </ul>`)
}

func (s jsxStyle) frame(meta docMeta, body []string) []string {
	name := componentName(meta.ID)
	out := []string{
		"import React from 'react';",
		"",
		fmt.Sprintf("const %s = () => {", name),
		"  return (",
		`    <div className="doxygen-component">`,
	}

	out = append(out, body...)
	return append(out,
		"    </div>",
		"  );",
		"};",
		"",
		fmt.Sprintf("export default %s;", name),
	)
}

// componentName derives a PascalCase component identifier from the compound
// identifier.
func componentName(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var out strings.Builder
	for _, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		out.WriteString(string(runes))
	}

	if out.Len() == 0 {
		return "DoxygenComponent"
	}

	return out.String()
}
