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

// Package lexer turns high-level source code into the token stream consumed
// by the compiler package. It is the first stage of the build pipeline and
// the only stage that ever sees the source text.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var keywords = map[string]TokenType{
	"true":  True,
	"false": False,
	"if":    If,
	"else":  Else,
	"and":   And,
	"or":    Or,
	"var":   Var,
	"while": While,
	"fn":    Fn,
	"DT":    DT,
	"ST":    ST,
	"I":     I,
	"RAND":  Rand,
	"DRAW":  Draw,
	"KEY":   Key,
}

type scan struct {
	src     []rune
	start   int
	current int
	line    int
	tokens  []Token
}

func (s *scan) isAtEnd() bool {
	return s.current >= len(s.src)
}

func (s *scan) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *scan) advance() rune {
	r := s.peek()
	s.current++
	return r
}

func (s *scan) match(expected rune) bool {
	if s.peek() != expected {
		return false
	}
	s.advance()
	return true
}

func (s *scan) push(tt TokenType) {
	s.tokens = append(s.tokens, Token{Type: tt, Line: s.line})
}

// Lex the source text into a token stream. The returned stream always ends
// with an EndOfFile token. Lexing fails on a character that belongs to no
// token and on a number too large for the machine.
func Lex(src string) ([]Token, error) {
	s := scan{src: []rune(src)}

	for !s.isAtEnd() {
		s.start = s.current

		c := s.advance()
		switch c {
		case '+':
			s.push(Plus)
		case '-':
			s.push(Minus)
		case '/':
			s.push(ForwardSlash)
		case '{':
			s.push(LeftBrace)
		case '}':
			s.push(RightBrace)
		case '(':
			s.push(LeftParen)
		case ')':
			s.push(RightParen)
		case ';':
			s.push(Semicolon)
		case ',':
			s.push(Comma)
		case '=':
			if s.match('=') {
				s.push(EqualsEquals)
			} else {
				s.push(Equals)
			}
		case '!':
			if s.match('=') {
				s.push(NotEquals)
			} else {
				s.push(Not)
			}
		case '\n':
			s.line++
		default:
			switch {
			case unicode.IsDigit(c):
				for unicode.IsDigit(s.peek()) {
					s.advance()
				}
				raw := string(s.src[s.start:s.current])
				num, err := strconv.ParseUint(raw, 10, 16)
				if err != nil {
					return nil, fmt.Errorf("lexer: number %s is too large on line %d", raw, s.line+1)
				}
				s.tokens = append(s.tokens, Token{Type: Number, Num: uint16(num), Line: s.line})
			case unicode.IsLetter(c):
				for unicode.IsLetter(s.peek()) || unicode.IsDigit(s.peek()) {
					s.advance()
				}
				ident := string(s.src[s.start:s.current])
				if kw, ok := keywords[ident]; ok {
					s.push(kw)
				} else {
					s.tokens = append(s.tokens, Token{Type: Identifier, Ident: ident, Line: s.line})
				}
			case unicode.IsSpace(c):
				// skip
			default:
				return nil, fmt.Errorf("lexer: unexpected character %q on line %d", c, s.line+1)
			}
		}
	}

	s.push(EndOfFile)

	return s.tokens, nil
}

// Stringify returns the token stream in a single space-separated string.
func Stringify(tokens []Token) string {
	s := make([]string, 0, len(tokens))
	for _, t := range tokens {
		s = append(s, t.String())
	}
	return strings.Join(s, " ")
}
