// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/doxymark

package doxymark

import (
	"encoding/json"
	"fmt"
	"strings"
)

// mdxStyle emits Markdown embedding component markup. Inline markup is not
// representable inside component attributes, so every inline wrap flattens
// to plain text and paragraphs join with a single space.
type mdxStyle struct {
	componentsPath string
}

func (s mdxStyle) extension() string {
	return ".mdx"
}

func (s mdxStyle) paragraphSeparator() string {
	return " "
}

func (s mdxStyle) inlineCode(text string) string {
	return text
}

func (s mdxStyle) bold(text string) string {
	return text
}

func (s mdxStyle) italic(text string) string {
	return text
}

func (s mdxStyle) link(text, _ string) string {
	return text
}

func (s mdxStyle) ref(text, _ string) string {
	return text
}

func (s mdxStyle) codeBlock(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	return sanitizeText(strings.Join(lines, " "))
}

func (s mdxStyle) unknown(_, text string) string {
	return text
}

func (s mdxStyle) description(text string, detailed bool) []string {
	if detailed {
		return []string{fmt.Sprintf(`      <div className="doxygen-detaileddescription">%s</div>`, text)}
	}

	return []string{fmt.Sprintf(`      <p className="doxygen-briefdescription">%s</p>`, text)}
}

func (s mdxStyle) section(title string, members [][]string) []string {
	out := []string{fmt.Sprintf(`      <Doxygen.Section title="%s">`, escapeDoubleQuotes(title))}
	for _, member := range members {
		out = append(out, member...)
	}

	return append(out, `      </Doxygen.Section>`)
}

func (s mdxStyle) member(view memberView) []string {
	lines := []string{
		`        <Doxygen.MemberDefinition`,
		fmt.Sprintf(`          permalink="#%s"`, view.ID),
		fmt.Sprintf(`          title="%s"`, escapeDoubleQuotes(view.Name)),
		fmt.Sprintf(`          signature="%s"`, escapeDoubleQuotes(view.Signature)),
	}

	if len(view.Params) > 0 {
		lines = append(lines, fmt.Sprintf(`          parameters={%s}`, parameterProps(view.Params)))
	}

	if view.ReturnType != "" {
		lines = append(lines, fmt.Sprintf(`          returnType="%s"`, attributeText(view.ReturnType)))
	}

	if view.Brief != "" {
		lines = append(lines, fmt.Sprintf(`          briefDescription="%s"`, attributeText(view.Brief)))
	}

	if view.Detailed != "" {
		lines = append(lines, fmt.Sprintf(`          description="%s"`, attributeText(view.Detailed)))
	}

	return append(lines, `        />`)
}

func (s mdxStyle) includesSection(paths []string) []string {
	out := []string{
		`      <Doxygen.Section title="Includes">`,
		`        <ul className="doxygen-includes">`,
	}
	for _, path := range paths {
		out = append(out, fmt.Sprintf(`          <li><code>%s</code></li>`, path))
	}

	return append(out, `        </ul>`, `      </Doxygen.Section>`)
}

func (s mdxStyle) definedClassesSection(refs []InnerRef) []string {
	out := []string{
		`      <Doxygen.Section title="Defined Classes">`,
		`        <ul className="doxygen-innergroups">`,
	}
	for _, ref := range refs {
		out = append(out, fmt.Sprintf(`          <li><a href="./%s">%s</a></li>`, ref.RefID, ref.Name))
	}

	return append(out, `        </ul>`, `      </Doxygen.Section>`)
}

func (s mdxStyle) frame(meta docMeta, body []string) []string {
	out := []string{
		"---",
		fmt.Sprintf(`title: "%s"`, escapeDoubleQuotes(meta.Title)),
		fmt.Sprintf(`description: "%s"`, escapeDoubleQuotes(meta.Description)),
		"---",
		"",
		"import React from 'react';",
		fmt.Sprintf("import Doxygen from '%s';", s.componentsPath),
		"",
		"export default function Documentation() {",
		"  return (",
		"    <Doxygen.DoxygenComponent>",
	}

	out = append(out, body...)
	return append(out,
		"    </Doxygen.DoxygenComponent>",
		"  );",
		"}",
	)
}

// parameterProp is the component prop shape for one parameter.
type parameterProp struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// parameterProps renders the parameters prop as a single-line JSON array.
func parameterProps(params []paramView) string {
	props := make([]parameterProp, 0, len(params))
	for _, param := range params {
		props = append(props, parameterProp{
			Name:        param.Name,
			Description: param.Default,
		})
	}

	data, err := json.Marshal(props)
	if err != nil {
		return "[]"
	}

	return string(data)
}

// attributeText prepares rendered description text for a one-line markup
// attribute value.
func attributeText(text string) string {
	return escapeDoubleQuotes(sanitizeText(text))
}
