// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/doxymark

package doxymark

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Options configures a single render pass.
type Options struct {
	// Format selects the output dialect: FormatMarkdown, FormatMDX or
	// FormatJSX. Empty means FormatMarkdown.
	Format string
	// HeadingOffset shifts every leveled heading the dialect emits.
	HeadingOffset int
	// ProjectName is free text used only as document metadata.
	ProjectName string
	// ComponentsPath is used verbatim in generated import lines by the
	// component-embedded dialect. Empty means DefaultComponentsPath.
	ComponentsPath string
}

// Document is one rendered output document.
type Document struct {
	// Content is the full document text with a trailing newline.
	Content string
	// Title is the resolved document title.
	Title string
	// Label is the short sidebar label derived from the title.
	Label string
	// Extension is the output file extension for the active dialect,
	// including the leading dot.
	Extension string
}

// labelPrefixPattern strips one leading role keyword from a title when
// deriving the short label.
var labelPrefixPattern = regexp.MustCompile(`(?i)^(class|struct|namespace|file)\s+`)

// titleCaser title-cases words of identifier-derived titles.
var titleCaser = cases.Title(language.Und)

// RenderFile reads one documentation XML file and renders it.
func RenderFile(path string, opt Options) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInputFile, err)
	}

	return Render(data, opt)
}

// Render converts documentation XML bytes into one output document.
//
// A well-formed input without a root compound definition yields (nil, nil):
// the file produces no output and this is not an error.
func Render(data []byte, opt Options) (*Document, error) {
	emitter, err := newStyle(opt)
	if err != nil {
		return nil, err
	}

	compound, err := parseCompound(data)
	if err != nil {
		return nil, err
	}

	if compound == nil {
		return nil, nil
	}

	engine := renderer{style: emitter}
	return engine.document(compound), nil
}

// renderer walks the compound record and its description trees, delegating
// all concrete syntax to the active emission style.
type renderer struct {
	style style
}

// document renders one complete output document for a compound.
func (r renderer) document(compound *Compound) *Document {
	title := resolveTitle(compound)
	meta := docMeta{
		ID:          compound.ID,
		Kind:        compound.Kind,
		Title:       title,
		Label:       labelPrefixPattern.ReplaceAllString(title, ""),
		Description: r.summary(compound),
	}

	var body []string
	if brief := r.description(compound.Brief); brief != "" {
		body = append(body, r.style.description(brief, false)...)
	}

	if detailed := r.description(compound.Detailed); detailed != "" {
		body = append(body, r.style.description(detailed, true)...)
	}

	switch compound.Kind {
	case "class", "struct":
		body = append(body, r.classSections(compound)...)
	case "namespace":
		body = append(body, r.memberSection("Members", compound.Members)...)
	case "file":
		body = append(body, r.fileSections(compound)...)
	}

	content := strings.Join(r.style.frame(meta, body), "\n")
	return &Document{
		Content:   ensureTrailingNewline(content),
		Title:     meta.Title,
		Label:     meta.Label,
		Extension: r.style.extension(),
	}
}

// summary is the one-line document description used by dialects that carry
// a description header field.
func (r renderer) summary(compound *Compound) string {
	if brief := r.description(compound.Brief); brief != "" {
		return sanitizeText(brief)
	}

	if compound.Kind != "" {
		return "Documentation for " + compound.Kind
	}

	return "Generated documentation"
}

// classSections renders the six fixed visibility/category buckets, skipping
// buckets whose members all render empty.
func (r renderer) classSections(compound *Compound) []string {
	var out []string
	for _, section := range compound.Sections {
		out = append(out, r.memberSection(section.Title, section.Members)...)
	}

	return out
}

// memberSection renders one titled member group, or nothing when every
// member renders empty. The section heading is suppressed together with
// its body.
func (r renderer) memberSection(title string, members []*Member) []string {
	rendered := make([][]string, 0, len(members))
	for _, member := range members {
		lines := r.member(member)
		if len(lines) == 0 {
			continue
		}

		rendered = append(rendered, lines)
	}

	if len(rendered) == 0 {
		return nil
	}

	return r.style.section(title, rendered)
}

// fileSections renders the includes and nested entity sections of a file
// compound, each omitted entirely when empty.
func (r renderer) fileSections(compound *Compound) []string {
	var out []string
	if len(compound.Includes) > 0 {
		out = append(out, r.style.includesSection(compound.Includes)...)
	}

	if len(compound.Inner) > 0 {
		out = append(out, r.style.definedClassesSection(compound.Inner)...)
	}

	return out
}

// member builds the dialect-independent member view and hands layout to the
// style. A member without a name yields an empty fragment.
func (r renderer) member(member *Member) []string {
	if member.Name == "" {
		return nil
	}

	view := memberView{
		ID:         member.ID,
		Name:       member.Name,
		Signature:  member.Name,
		IsFunction: member.IsFunction(),
		Brief:      r.description(member.Brief),
		Detailed:   r.description(member.Detailed),
	}

	if view.IsFunction {
		args := member.ArgsString
		if args == "" {
			args = "()"
		}

		view.Signature = member.Name + args
		view.ReturnType = strings.TrimSpace(member.Type)
		for _, param := range member.Params {
			view.Params = append(view.Params, paramView{
				Name:    param.Name,
				Default: param.Default,
			})
		}
	}

	return r.style.member(view)
}

// description renders every paragraph found anywhere beneath a description
// node and joins the non-empty results with the dialect's paragraph
// separator. Nil or empty descriptions yield an empty string.
func (r renderer) description(node *Node) string {
	if node == nil {
		return ""
	}

	var paragraphs []string
	for _, para := range node.FindAll("para") {
		text := r.paragraph(para)
		if text == "" {
			continue
		}

		paragraphs = append(paragraphs, text)
	}

	return strings.Join(paragraphs, r.style.paragraphSeparator())
}

// paragraph renders one paragraph node, preserving reading order of leading
// text, child elements and per-child tail text.
func (r renderer) paragraph(para *Node) string {
	var parts []string
	if text := strings.TrimSpace(para.Text); text != "" {
		parts = append(parts, text)
	}

	for _, child := range para.Children {
		if part := r.inline(child); part != "" {
			parts = append(parts, part)
		}

		if tail := strings.TrimSpace(child.Tail); tail != "" {
			parts = append(parts, tail)
		}
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

// inline dispatches one paragraph child on its element kind. Unrecognized
// kinds always take the fallback wrap; vocabulary drift must never raise.
func (r renderer) inline(node *Node) string {
	switch node.Kind {
	case "computeroutput":
		return r.style.inlineCode(node.FlatText())
	case "bold":
		return r.style.bold(node.FlatText())
	case "emphasis":
		return r.style.italic(node.FlatText())
	case "ulink":
		return r.style.link(node.FlatText(), node.Attr("url"))
	case "ref":
		return r.style.ref(node.FlatText(), node.Attr("refid"))
	case "programlisting":
		code := r.codeBlock(node)
		if code == "" {
			return ""
		}

		return "\n" + code + "\n"
	default:
		return r.style.unknown(node.Kind, node.FlatText())
	}
}

// codeBlock renders a nested line/segment structure into one code block.
// Each source line is the concatenation of its highlight segments' raw
// text; lines whose concatenation is empty are skipped. Zero lines yield
// an empty string, never an empty fence pair.
func (r renderer) codeBlock(listing *Node) string {
	var lines []string
	for _, codeline := range listing.FindAll("codeline") {
		var line strings.Builder
		for _, highlight := range codeline.FindAll("highlight") {
			line.WriteString(highlight.rawFlatText())
		}

		if line.Len() == 0 {
			continue
		}

		lines = append(lines, line.String())
	}

	if len(lines) == 0 {
		return ""
	}

	return r.style.codeBlock(lines)
}

// resolveTitle prefers the explicit title over one derived from the
// compound identifier.
func resolveTitle(compound *Compound) string {
	if compound.Title != "" {
		return compound.Title
	}

	if compound.ID != "" {
		return titleCaser.String(strings.ReplaceAll(compound.ID, "_", " "))
	}

	return "Untitled"
}

// sanitizeText trims and squashes repeated whitespace in plain text fields.
func sanitizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	return strings.Join(strings.Fields(text), " ")
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}
