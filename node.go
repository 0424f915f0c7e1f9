// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/doxymark

package doxymark

import "strings"

// Node is one parsed documentation XML element.
//
// Children order is document reading order and must be preserved through
// rendering. Text holds character data before the first child; Tail holds
// character data that appeared after this node and before its next sibling,
// attributed to this node. Both are empty strings when absent. Nodes are
// read-only after parsing.
type Node struct {
	Kind     string
	Attrs    map[string]string
	Children []*Node
	Text     string
	Tail     string
}

// Attr returns the named attribute value or empty string.
func (n *Node) Attr(name string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}

	return n.Attrs[name]
}

// Child returns the first direct child with the given kind, or nil.
func (n *Node) Child(kind string) *Node {
	if n == nil {
		return nil
	}

	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}

	return nil
}

// ChildText returns the leading text of the first direct child with the
// given kind, trimmed, or empty string when the child is absent.
func (n *Node) ChildText(kind string) string {
	child := n.Child(kind)
	if child == nil {
		return ""
	}

	return strings.TrimSpace(child.Text)
}

// FindAll returns every descendant with the given kind in document order.
// The node itself is never included.
func (n *Node) FindAll(kind string) []*Node {
	if n == nil {
		return nil
	}

	var out []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			out = append(out, child)
		}

		out = append(out, child.FindAll(kind)...)
	}

	return out
}

// FlatText returns the markup-stripped text of the node: its own text, then
// recursively each child's flat text followed by that child's tail. The
// result is trimmed. Use this for contexts where inline markup is not
// representable, such as attribute strings and the unknown-kind fallback.
func (n *Node) FlatText() string {
	return strings.TrimSpace(n.rawFlatText())
}

// rawFlatText is FlatText without trimming. Code line segments use it so
// that leading indentation survives.
func (n *Node) rawFlatText() string {
	if n == nil {
		return ""
	}

	var out strings.Builder
	out.WriteString(n.Text)
	for _, child := range n.Children {
		out.WriteString(child.rawFlatText())
		out.WriteString(child.Tail)
	}

	return out.String()
}
