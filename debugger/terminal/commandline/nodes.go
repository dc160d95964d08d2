// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package commandline

import (
	"strings"
)

type nodeType int

const (
	nodeRoot nodeType = iota + 1
	nodeRequired
	nodeOptional
)

// nodes are chained together through the next and branch arrays. the next
// array is the sequence of nodes that follow this node. the branch array
// lists the alternatives to this node.
type node struct {
	// tag is empty in the case of some nested groups
	tag string

	typ nodeType

	next   []*node
	branch []*node
}

// String returns a representation of the node and its children. When called
// on the first node of a command it recreates the template definition the
// command was parsed from, give or take any simplifications made during
// parsing. Superfluous group indicators are absent from the output. For
// example:
//
//	TEST [1 [2] [3]]
//
// is reproduced as the equivalent:
//
//	TEST [1 2 3]
func (n node) String() string {
	s := strings.Builder{}

	s.WriteString(n.tag)

	for i := range n.next {
		// group delimiters are required when the child node differs in type
		// to this node; and also when the child carries branches or is an
		// empty node, either of which would lose grouping information without
		// the delimiters
		if n.next[i].typ == nodeRequired && (n.typ != nodeRequired || n.next[i].branch != nil || n.next[i].tag == "") {
			s.WriteString(" [")
			s.WriteString(n.next[i].String())
			s.WriteString("]")
		} else if n.next[i].typ == nodeOptional && (n.typ != nodeOptional || n.next[i].branch != nil || n.next[i].tag == "") {
			s.WriteString(" (")
			s.WriteString(n.next[i].String())
			s.WriteString(")")
		} else {
			s.WriteString(" ")
			s.WriteString(n.next[i].String())
		}
	}

	for i := range n.branch {
		s.WriteString("|")
		s.WriteString(n.branch[i].String())
	}

	return strings.TrimSpace(s.String())
}

// nodeVerbose returns a readable representation of the node, listing branches
// if necessary.
func (n node) nodeVerbose() string {
	s := strings.Builder{}
	s.WriteString(n.tagVerbose())
	for bi := range n.branch {
		if n.branch[bi].tag != "" {
			s.WriteString(" or ")
			s.WriteString(n.branch[bi].tagVerbose())
		}
	}
	return s.String()
}

// tagVerbose returns a readable version of the tag field.
func (n node) tagVerbose() string {
	if n.isPlaceholder() {
		switch n.tag {
		case "%N":
			return "numeric argument"
		case "%P":
			return "floating-point argument"
		case "%S":
			return "string argument"
		case "%F":
			return "filename argument"
		}
		return "placeholder argument"
	}
	return n.tag
}

// isPlaceholder checks tag to see if it is a placeholder. does not check to
// see if the placeholder is valid.
func (n node) isPlaceholder() bool {
	return len(n.tag) == 2 && n.tag[0] == '%'
}
