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
	"strconv"
	"strings"
)

// TabCompletion provides tab completion for an associated Commands instance.
// It implements the terminal.TabCompletion interface.
type TabCompletion struct {
	cmds *Commands

	// the list of possible completions for the current session and which of
	// those options was used most recently
	options []string
	opt     int

	// the tokens preceding the completed token, preserved as typed
	prefix string

	// the result of the most recent completion. if the next call to
	// Complete() receives this exact string then we move to the next option
	lastGuess string
}

// NewTabCompletion is the preferred method of initialisation for the
// TabCompletion type.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Complete transforms the input such that the last token in the input is
// expanded to the nearest match allowed by the associated Commands instance.
// Subsequent calls with an unchanged input cycle through the possible
// completions. If no completion is possible the input is returned unchanged.
func (tc *TabCompletion) Complete(input string) string {
	// tab pressed again without the input having changed. move to the next
	// option
	if input == tc.lastGuess && len(tc.options) > 0 {
		tc.opt++
		if tc.opt >= len(tc.options) {
			tc.opt = 0
		}
		tc.lastGuess = tc.build(tc.options[tc.opt])
		return tc.lastGuess
	}

	tc.Reset()

	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return input
	}

	// the last token is the one being completed, unless the input ends with
	// whitespace, in which case a new token is being started
	var guide []string
	var partial string
	if strings.HasSuffix(input, " ") {
		guide = tokens
	} else {
		guide = tokens[:len(tokens)-1]
		partial = strings.ToUpper(tokens[len(tokens)-1])
	}

	var options []string

	if len(guide) == 0 {
		// completing the command itself
		for i := range tc.cmds.cmds {
			if strings.HasPrefix(tc.cmds.cmds[i].tag, partial) {
				options = append(options, tc.cmds.cmds[i].tag)
			}
		}
	} else {
		// the first token must identify a command
		cmd, ok := tc.cmds.Index[strings.ToUpper(guide[0])]
		if !ok {
			return input
		}

		// walk the command's node tree, directed by the remaining guide
		// tokens
		queue := cmd.next
		for _, g := range guide[1:] {
			var ok bool
			queue, ok = tabMatch(queue, g)
			if !ok {
				return input
			}
		}

		options = tabOptions(queue, partial)
	}

	if len(options) == 0 {
		return input
	}

	tc.options = options
	tc.opt = 0
	tc.prefix = strings.Join(guide, " ")
	tc.lastGuess = tc.build(tc.options[0])

	return tc.lastGuess
}

// Reset forgets the current completion session.
func (tc *TabCompletion) Reset() {
	tc.options = nil
	tc.opt = 0
	tc.prefix = ""
	tc.lastGuess = ""
}

// build the replacement input from the prefix and the chosen option. a
// trailing space is added so that the user can continue typing immediately.
func (tc *TabCompletion) build(option string) string {
	s := strings.Builder{}
	if tc.prefix != "" {
		s.WriteString(tc.prefix)
		s.WriteString(" ")
	}
	s.WriteString(option)
	s.WriteString(" ")
	return s.String()
}

// tabAlternative is a single way of matching the head of the node queue,
// along with the queue to use if the match succeeds.
type tabAlternative struct {
	n    *node
	cont []*node
}

// tabAlternatives expands a node into the list of alternatives it offers.
// nested groups are flattened and branches are included.
func tabAlternatives(n *node, rest []*node) []tabAlternative {
	var alts []tabAlternative

	if n.tag == "" {
		if len(n.next) > 0 {
			cont := make([]*node, 0, len(n.next)-1+len(rest))
			cont = append(cont, n.next[1:]...)
			cont = append(cont, rest...)
			alts = append(alts, tabAlternatives(n.next[0], cont)...)
		}
	} else {
		cont := make([]*node, 0, len(n.next)+len(rest))
		cont = append(cont, n.next...)
		cont = append(cont, rest...)
		alts = append(alts, tabAlternative{n: n, cont: cont})
	}

	for i := range n.branch {
		alts = append(alts, tabAlternatives(n.branch[i], rest)...)
	}

	return alts
}

// tabMatch matches a single input token against the head of the node queue,
// returning the queue to use for the next token. optional nodes that do not
// match are skipped over.
func tabMatch(queue []*node, tok string) ([]*node, bool) {
	for len(queue) > 0 {
		head := queue[0]
		rest := queue[1:]

		alts := tabAlternatives(head, rest)

		// an exact keyword match is preferred to a placeholder match
		for _, alt := range alts {
			if !alt.n.isPlaceholder() && strings.EqualFold(tok, alt.n.tag) {
				return alt.cont, true
			}
		}
		for _, alt := range alts {
			if alt.n.isPlaceholder() && placeholderMatch(alt.n, tok) {
				return alt.cont, true
			}
		}

		// the token does not match an optional node. try the next node in
		// the queue
		if head.typ != nodeOptional {
			break
		}
		queue = rest
	}

	return nil, false
}

// placeholderMatch decides whether an input token satisfies a placeholder
// node.
func placeholderMatch(n *node, tok string) bool {
	switch n.tag {
	case "%N":
		_, err := strconv.ParseInt(tok, 0, 32)
		return err == nil
	case "%P":
		_, err := strconv.ParseFloat(tok, 32)
		return err == nil
	case "%S", "%F":
		return true
	}
	return false
}

// tabOptions collects the keywords that can legally appear next, filtered by
// the partial token being completed. placeholders cannot be completed and
// are not included.
func tabOptions(queue []*node, partial string) []string {
	var options []string

	for len(queue) > 0 {
		head := queue[0]

		for _, alt := range tabAlternatives(head, queue[1:]) {
			if alt.n.isPlaceholder() {
				continue
			}
			if strings.HasPrefix(alt.n.tag, partial) {
				options = append(options, alt.n.tag)
			}
		}

		// keywords beyond an optional node are also reachable
		if head.typ != nodeOptional {
			break
		}
		queue = queue[1:]
	}

	return options
}
