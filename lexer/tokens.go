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

package lexer

import (
	"fmt"
)

// TokenType identifies everything the lexer can produce.
type TokenType int

// List of valid TokenType values.
const (
	// literals
	Identifier TokenType = iota
	Number

	// keywords
	True
	False
	If
	Else
	And
	Or
	Var
	While
	Not
	Fn

	// the global machine registers that programs can touch directly
	DT
	ST
	I

	// built-in functions
	Rand
	Draw
	Key

	// single character tokens
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Plus
	Minus
	ForwardSlash
	Semicolon
	Equals
	Comma

	// two character tokens
	EqualsEquals
	NotEquals

	EndOfFile
)

func (tt TokenType) String() string {
	switch tt {
	case Identifier:
		return "Identifier"
	case Number:
		return "Number"
	case True:
		return "True"
	case False:
		return "False"
	case If:
		return "If"
	case Else:
		return "Else"
	case And:
		return "And"
	case Or:
		return "Or"
	case Var:
		return "Var"
	case While:
		return "While"
	case Not:
		return "Not"
	case Fn:
		return "Fn"
	case DT:
		return "DT"
	case ST:
		return "ST"
	case I:
		return "I"
	case Rand:
		return "Rand"
	case Draw:
		return "Draw"
	case Key:
		return "Key"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	case LeftBrace:
		return "LeftBrace"
	case RightBrace:
		return "RightBrace"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case ForwardSlash:
		return "ForwardSlash"
	case Semicolon:
		return "Semicolon"
	case Equals:
		return "Equals"
	case Comma:
		return "Comma"
	case EqualsEquals:
		return "EqualsEquals"
	case NotEquals:
		return "NotEquals"
	case EndOfFile:
		return "EndOfFile"
	}
	return "unknown token"
}

// Token is a single lexed token. The Ident and Num fields are only meaningful
// for the Identifier and Number token types respectively.
type Token struct {
	Type  TokenType
	Ident string
	Num   uint16

	// the source line the token appeared on, counting from zero
	Line int
}

func (t Token) String() string {
	switch t.Type {
	case Identifier:
		return fmt.Sprintf("Identifier(%q)", t.Ident)
	case Number:
		return fmt.Sprintf("Number(%d)", t.Num)
	}
	return t.Type.String()
}
