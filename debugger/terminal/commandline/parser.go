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
	"fmt"
	"strings"
)

// ParseCommandTemplate turns a list of template definitions into a Commands
// instance, suitable for validation and tab completion of user input.
//
// Each definition begins with a keyword, the name of the command, followed by
// any number of arguments:
//
//	%N        numeric argument
//	%P        floating-point argument
//	%S        string argument
//	%F        filename argument
//	keyword   the keyword itself
//
// Arguments can be collected into groups. Groups in square brackets are
// required and groups in round brackets are optional:
//
//	DRILL [UP|DOWN] (%N)
//
// Alternatives within a group are separated by the pipe character. Groups can
// be nested. Placeholder directives must be separated from any surrounding
// characters.
//
// Keywords are normalised to uppercase.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{Index: make(map[string]*node)}

	for t := range template {
		defn := strings.TrimSpace(template[t])
		if defn == "" {
			return nil, fmt.Errorf("commandline: empty template definition")
		}

		p, d, err := parseDefinition(defn)
		if err != nil {
			return nil, fmt.Errorf("commandline: %v (char %d of %q)", err, d, defn)
		}

		if _, ok := cmds.Index[p.tag]; ok {
			return nil, fmt.Errorf("commandline: %s: already defined", p.tag)
		}

		cmds.cmds = append(cmds.cmds, p)
		cmds.Index[p.tag] = p
	}

	return cmds, nil
}

// parseDefinition transforms a single template definition into a tree of
// nodes. the int return value is the character position of any error.
func parseDefinition(defn string) (*node, int, error) {
	sc := &scanner{defn: defn}

	seq, _, err := sc.sequence(nodeRoot)
	if err != nil {
		return nil, sc.pos, err
	}

	// the sequence should have consumed the entire definition. anything left
	// over is a stray group close
	if c, ok := sc.peek(); ok {
		return nil, sc.pos, fmt.Errorf("unexpected character (%c)", c)
	}

	if len(seq) == 0 {
		return nil, sc.pos, fmt.Errorf("empty definition")
	}

	// the first node in the sequence is the command itself. the remainder of
	// the sequence chains from it
	cmd := seq[0]
	if cmd.tag == "" || cmd.isPlaceholder() {
		return nil, 0, fmt.Errorf("command must begin with a keyword")
	}
	cmd.next = append(cmd.next, seq[1:]...)

	return cmd, 0, nil
}

type scanner struct {
	defn string
	pos  int
}

// peek at the current character. the boolean return value is false if the
// scanner has reached the end of the definition.
func (sc *scanner) peek() (byte, bool) {
	if sc.pos >= len(sc.defn) {
		return 0, false
	}
	return sc.defn[sc.pos], true
}

func (sc *scanner) skipSpaces() {
	for sc.pos < len(sc.defn) && sc.defn[sc.pos] == ' ' {
		sc.pos++
	}
}

// sequence parses a run of elements, stopping at a branch separator, a group
// close character or the end of the definition. the stopping character is not
// consumed.
//
// the boolean return value indicates whether the first element in the
// sequence is itself a group.
func (sc *scanner) sequence(typ nodeType) ([]*node, bool, error) {
	var seq []*node
	var firstIsGroup bool

	for {
		sc.skipSpaces()

		c, ok := sc.peek()
		if !ok {
			break
		}

		switch c {
		case '|', ']', ')':
			return seq, firstIsGroup, nil

		case '[':
			sc.pos++
			n, err := sc.group(nodeRequired, ']')
			if err != nil {
				return nil, false, err
			}
			if len(seq) == 0 {
				firstIsGroup = true
			}
			seq = append(seq, n)

		case '(':
			sc.pos++
			n, err := sc.group(nodeOptional, ')')
			if err != nil {
				return nil, false, err
			}
			if len(seq) == 0 {
				firstIsGroup = true
			}
			seq = append(seq, n)

		case '{', '}':
			return nil, false, fmt.Errorf("unexpected character (%c)", c)

		default:
			n, err := sc.tag(typ)
			if err != nil {
				return nil, false, err
			}
			seq = append(seq, n)
		}
	}

	return seq, firstIsGroup, nil
}

// group parses a bracketed group, the opening bracket of which has been
// consumed by the caller. alternatives within the group are separated by the
// pipe character.
//
// the first node of the first alternative anchors the group. subsequent
// alternatives are added to the anchor's branch array. an alternative that
// begins with a nested group is kept behind an empty node so that the
// grouping information is not lost.
func (sc *scanner) group(typ nodeType, close byte) (*node, error) {
	var group *node

	for {
		seq, firstIsGroup, err := sc.sequence(typ)
		if err != nil {
			return nil, err
		}

		if len(seq) == 0 {
			return nil, fmt.Errorf("empty group")
		}

		var alt *node
		if firstIsGroup {
			alt = &node{typ: typ, next: seq}
		} else {
			alt = seq[0]
			alt.next = append(alt.next, seq[1:]...)
		}

		if group == nil {
			group = alt
		} else {
			group.branch = append(group.branch, alt)
		}

		c, ok := sc.peek()
		if !ok {
			return nil, fmt.Errorf("group is not closed")
		}

		sc.pos++

		if c == close {
			return group, nil
		}
		if c != '|' {
			return nil, fmt.Errorf("unexpected character (%c)", c)
		}
	}
}

// tag parses a single keyword or placeholder directive.
func (sc *scanner) tag(typ nodeType) (*node, error) {
	start := sc.pos

	for sc.pos < len(sc.defn) {
		c := sc.defn[sc.pos]
		if c == ' ' || c == '|' || c == '[' || c == ']' || c == '(' || c == ')' || c == '{' || c == '}' {
			break
		}
		sc.pos++
	}

	tag := strings.ToUpper(sc.defn[start:sc.pos])

	if tag[0] == '%' {
		if len(tag) == 1 {
			return nil, fmt.Errorf("orphaned placeholder directive")
		}
		if len(tag) > 2 {
			return nil, fmt.Errorf("unrecognised placeholder directive (%s)", tag)
		}
		switch tag[1] {
		case 'N', 'P', 'S', 'F', '%':
		default:
			return nil, fmt.Errorf("unrecognised placeholder directive (%s)", tag)
		}
	} else if strings.ContainsRune(tag, '%') {
		return nil, fmt.Errorf("placeholder directives must be separated from other characters")
	}

	return &node{tag: tag, typ: typ}, nil
}
