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

package lexer_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/lexer"
	"github.com/jetsetilly/gopher8/test"
)

func TestLex(t *testing.T) {
	tokens, err := lexer.Lex(`( 123
            55 testident var else asdfg`)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, lexer.Stringify(tokens),
		`LeftParen Number(123) Number(55) Identifier("testident") Var Else Identifier("asdfg") EndOfFile`)

	// tokens on the second line of the source are labelled line one
	test.ExpectEquality(t, tokens[0].Line, 0)
	test.ExpectEquality(t, tokens[2].Line, 1)

	tokens, err = lexer.Lex(`
        var a = 50;
        a = a + 20;`)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, lexer.Stringify(tokens),
		`Var Identifier("a") Equals Number(50) Semicolon Identifier("a") Equals Identifier("a") Plus Number(20) Semicolon EndOfFile`)

	test.ExpectEquality(t, tokens[len(tokens)-1].Line, 2)
}

func TestTwoCharacterTokens(t *testing.T) {
	tokens, err := lexer.Lex("8 == 5 != !0;")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, lexer.Stringify(tokens),
		"Number(8) EqualsEquals Number(5) NotEquals Not Number(0) Semicolon EndOfFile")
}

func TestStringify(t *testing.T) {
	tokens, err := lexer.Lex("test test 123 55")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, lexer.Stringify(tokens),
		`Identifier("test") Identifier("test") Number(123) Number(55) EndOfFile`)
}

func TestGlobals(t *testing.T) {
	tokens, err := lexer.Lex("ST test test DT 123 I 55 RAND")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, lexer.Stringify(tokens),
		`ST Identifier("test") Identifier("test") DT Number(123) I Number(55) Rand EndOfFile`)
}

func TestKeywords(t *testing.T) {
	tokens, err := lexer.Lex("ST test test DT var while 55 RAND")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, lexer.Stringify(tokens),
		`ST Identifier("test") Identifier("test") DT Var While Number(55) Rand EndOfFile`)
}

func TestLexErrors(t *testing.T) {
	// characters that belong to no token
	_, err := lexer.Lex("var a = 5 @ 2;")
	test.ExpectFailure(t, err)

	// numbers must fit in sixteen bits
	_, err = lexer.Lex("var a = 99999;")
	test.ExpectFailure(t, err)

	// the empty string is fine and lexes to a lone EndOfFile
	tokens, err := lexer.Lex("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(tokens), 1)
	test.ExpectEquality(t, tokens[0].Type, lexer.EndOfFile)
}
