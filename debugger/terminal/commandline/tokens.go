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

// Tokens represents tokenised input. The tokens can be stepped through with
// Get(), stepped back over with Unget() and examined with Peek().
type Tokens struct {
	tokens []string
	curr   int
}

// TokeniseInput creates a new instance of Tokens from the input string.
// Tokens are separated by whitespace, which is not preserved.
func TokeniseInput(input string) *Tokens {
	return &Tokens{
		tokens: strings.Fields(input),
	}
}

// String returns the tokens as a single string, each token separated by a
// single space.
func (tk *Tokens) String() string {
	return strings.Join(tk.tokens, " ")
}

// Reset begins the token traversal from the first token.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// Len returns the number of tokens.
func (tk *Tokens) Len() int {
	return len(tk.tokens)
}

// Remaining returns the number of tokens not yet retrieved with Get().
func (tk *Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Remainder returns the tokens not yet retrieved with Get() as a single
// string.
func (tk *Tokens) Remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

// Get returns the next token. The boolean return value is false if there are
// no more tokens.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Unget returns the most recently retrieved token to the queue, to be
// retrieved again by the next call to Get().
func (tk *Tokens) Unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// Peek returns the next token without retrieving it.
func (tk *Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// Update replaces the most recently retrieved token.
func (tk *Tokens) Update(replace string) {
	if tk.curr > 0 {
		tk.tokens[tk.curr-1] = replace
	}
}
