// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/doxymark

package doxymark

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// classSectionKinds lists class/struct member buckets in fixed emission
// order together with their section titles.
var classSectionKinds = []struct {
	Kind  string
	Title string
}{
	{"public-attrib", "Public Attributes"},
	{"public-func", "Public Methods"},
	{"protected-attrib", "Protected Attributes"},
	{"protected-func", "Protected Methods"},
	{"private-attrib", "Private Attributes"},
	{"private-func", "Private Methods"},
}

// Compound is the root documented entity of one input file.
type Compound struct {
	// ID is the compound identifier attribute.
	ID string
	// Kind is the compound kind; class, struct, namespace and file get
	// kind-specific sections, anything else renders header and
	// descriptions only.
	Kind string
	// Title is the explicit title override, empty when the input has none.
	Title string
	// Brief and Detailed are raw description nodes, nil when absent.
	Brief    *Node
	Detailed *Node
	// Sections holds class/struct members grouped into the fixed
	// visibility/category buckets, in emission order.
	Sections []MemberSection
	// Members holds every member found anywhere beneath the compound,
	// flattened in document order; namespaces render from it.
	Members []*Member
	// Includes holds include directives with non-empty text, in document
	// order; file compounds render them.
	Includes []string
	// Inner holds nested entity references; file compounds render them.
	Inner []InnerRef
}

// MemberSection is one titled group of class/struct members.
type MemberSection struct {
	Title   string
	Members []*Member
}

// InnerRef is one nested entity reference inside a file compound.
type InnerRef struct {
	Name  string
	RefID string
}

// Member is one documented function or variable belonging to a compound.
type Member struct {
	ID         string
	Kind       string
	Name       string
	ArgsString string
	Type       string
	Brief      *Node
	Detailed   *Node
	Params     []Param
}

// IsFunction reports whether the member renders with signature, parameter
// list and return type.
func (m *Member) IsFunction() bool {
	return m.Kind == "function"
}

// Param is one documented parameter of a function member.
type Param struct {
	Name    string
	Default string
}

// parseCompound parses document bytes and extracts the root compound
// record. A well-formed document without a compound definition yields
// (nil, nil): the file produces no output and the batch moves on.
func parseCompound(data []byte) (*Compound, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseXML, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, nil
	}

	compoundElement := root.SelectElement("compounddef")
	if compoundElement == nil {
		return nil, nil
	}

	return buildCompound(nodeFromElement(compoundElement)), nil
}

// nodeFromElement converts one etree element into the read-only node tree,
// attributing character data between children to the preceding child's
// tail.
func nodeFromElement(element *etree.Element) *Node {
	node := &Node{Kind: element.Tag}
	if len(element.Attr) > 0 {
		node.Attrs = make(map[string]string, len(element.Attr))
		for _, attr := range element.Attr {
			node.Attrs[attr.Key] = attr.Value
		}
	}

	var last *Node
	for _, token := range element.Child {
		switch typed := token.(type) {
		case *etree.CharData:
			if last == nil {
				node.Text += typed.Data
			} else {
				last.Tail += typed.Data
			}
		case *etree.Element:
			child := nodeFromElement(typed)
			node.Children = append(node.Children, child)
			last = child
		}
	}

	return node
}

// buildCompound extracts the compound record from the compound definition
// node.
func buildCompound(node *Node) *Compound {
	compound := &Compound{
		ID:       node.Attr("id"),
		Kind:     node.Attr("kind"),
		Title:    node.ChildText("title"),
		Brief:    node.Child("briefdescription"),
		Detailed: node.Child("detaileddescription"),
	}

	for _, bucket := range classSectionKinds {
		section := MemberSection{Title: bucket.Title}
		for _, sectionNode := range node.Children {
			if sectionNode.Kind != "sectiondef" || sectionNode.Attr("kind") != bucket.Kind {
				continue
			}

			for _, memberNode := range sectionNode.Children {
				if memberNode.Kind != "memberdef" {
					continue
				}

				section.Members = append(section.Members, buildMember(memberNode))
			}
		}

		compound.Sections = append(compound.Sections, section)
	}

	for _, memberNode := range node.FindAll("memberdef") {
		compound.Members = append(compound.Members, buildMember(memberNode))
	}

	for _, include := range node.FindAll("includes") {
		text := strings.TrimSpace(include.Text)
		if text == "" {
			continue
		}

		compound.Includes = append(compound.Includes, text)
	}

	for _, inner := range node.FindAll("innergroup") {
		compound.Inner = append(compound.Inner, InnerRef{
			Name:  inner.FlatText(),
			RefID: inner.Attr("refid"),
		})
	}

	return compound
}

// buildMember extracts one member record from a memberdef node. Parameters
// are collected from any depth beneath the member; nameless parameters are
// kept out of the record entirely.
func buildMember(node *Node) *Member {
	member := &Member{
		ID:         node.Attr("id"),
		Kind:       node.Attr("kind"),
		Name:       node.ChildText("name"),
		ArgsString: node.ChildText("argsstring"),
		Brief:      node.Child("briefdescription"),
		Detailed:   node.Child("detaileddescription"),
	}

	if typeNode := node.Child("type"); typeNode != nil {
		member.Type = typeNode.FlatText()
	}

	for _, paramNode := range node.FindAll("param") {
		name := paramNode.ChildText("declname")
		if name == "" {
			continue
		}

		member.Params = append(member.Params, Param{
			Name:    name,
			Default: paramNode.ChildText("defval"),
		})
	}

	return member
}
