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

package compiler

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/lexer"
	"github.com/jetsetilly/gopher8/test"
)

// compileSource drives a compilation directly rather than through Compile()
// so that tests can inspect the register stack afterwards.
func compileSource(t *testing.T, src string) *compilation {
	t.Helper()

	tokens, err := lexer.Lex(src)
	test.DemandSuccess(t, err)

	c := &compilation{
		tokens:    tokens,
		functions: make(map[string]*function),
		lineMap:   make(map[uint16]int),
	}
	for !c.check(lexer.EndOfFile) {
		test.DemandSuccess(t, c.declaration())
	}

	return c
}

func expectAsm(t *testing.T, c *compilation, expected []Instruction) {
	t.Helper()
	if !slices.Equal(c.asm, expected) {
		got := &Program{Instructions: c.asm}
		want := &Program{Instructions: expected}
		t.Errorf("assembly mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestExpressions(t *testing.T) {
	c := compileSource(t, "10; 5;")
	test.ExpectEquality(t, c.regStackTop, 0)

	c = compileSource(t, "12 + 3 + 7 + 2;")
	expectAsm(t, c, []Instruction{
		ldRegByte(0, 12),
		ldRegByte(1, 3),
		addRegReg(0, 1),
		ldRegByte(1, 7),
		addRegReg(0, 1),
		ldRegByte(1, 2),
		addRegReg(0, 1),
	})
	test.ExpectEquality(t, c.regStackTop, 0)

	c = compileSource(t, "9 - 7;")
	expectAsm(t, c, []Instruction{
		ldRegByte(0, 9),
		ldRegByte(1, 7),
		subRegReg(0, 1),
	})
	test.ExpectEquality(t, c.regStackTop, 0)
}

func TestVariables(t *testing.T) {
	c := compileSource(t, "var a = 3; a;")
	expectAsm(t, c, []Instruction{
		ldRegByte(0, 3),
		ldRegReg(1, 0),
	})
	test.ExpectEquality(t, c.regStackTop, 1)

	c = compileSource(t, "var a = 1; a + 4; var b = 2; var c = b + a; c = a;")
	expectAsm(t, c, []Instruction{
		ldRegByte(0, 1),
		ldRegReg(1, 0),
		ldRegByte(2, 4),
		addRegReg(1, 2),
		ldRegByte(1, 2),
		ldRegReg(2, 1),
		ldRegReg(3, 0),
		addRegReg(2, 3),
		ldRegReg(3, 0),
		ldRegReg(2, 3),
	})
	test.ExpectEquality(t, c.regStackTop, 3)
}

func TestLexicalScope(t *testing.T) {
	c := compileSource(t, "var a = 1; { var b = 4; } var c = 7;")
	expectAsm(t, c, []Instruction{
		ldRegByte(0, 1),
		ldRegByte(1, 4),
		ldRegByte(1, 7),
	})
	test.ExpectEquality(t, c.regStackTop, 2)
}

func TestIf(t *testing.T) {
	c := compileSource(t, "if (1+3 == 4) { 10; } 5;")
	expectAsm(t, c, []Instruction{
		ldRegByte(0, 1),
		ldRegByte(1, 3),
		addRegReg(0, 1),
		ldRegByte(1, 4),
		seRegReg(0, 1),
		jp(0x20e),
		ldRegByte(0, 10),
		ldRegByte(0, 5),
	})
}

func TestIfElse(t *testing.T) {
	c := compileSource(t, "var a = 0; if (1 == 2) a = 5; else a = 9;")
	expectAsm(t, c, []Instruction{
		ldRegByte(0, 0),
		ldRegByte(1, 1),
		ldRegByte(2, 2),
		seRegReg(1, 2),
		jp(0x210),
		ldRegByte(1, 5),
		ldRegReg(0, 1),
		jp(0x214),
		ldRegByte(1, 9),
		ldRegReg(0, 1),
	})
}

func TestAnd(t *testing.T) {
	c := compileSource(t, "if (2 == 2 and 4 == 4) 5; else 9;")
	expectAsm(t, c, []Instruction{
		ldRegByte(0, 2),
		ldRegByte(1, 2),
		seRegReg(0, 1),
		jp(0x20e),
		ldRegByte(0, 4),
		ldRegByte(1, 4),
		seRegReg(0, 1),
		jp(0x214),
		ldRegByte(0, 5),
		jp(0x216),
		ldRegByte(0, 9),
	})
}

func TestNotEqual(t *testing.T) {
	c := compileSource(t, "if (1 != 5) 3;")
	expectAsm(t, c, []Instruction{
		ldRegByte(0, 1),
		ldRegByte(1, 5),
		sneRegReg(0, 1),
		jp(0x20a),
		ldRegByte(0, 3),
	})
}

func TestOr(t *testing.T) {
	c := compileSource(t, "if (1 != 1 or 3 == 3) 8; else 5;")
	expectAsm(t, c, []Instruction{
		ldRegByte(0, 1),
		ldRegByte(1, 1),
		sneRegReg(0, 1),
		jp(0x20a),
		jp(0x212),
		ldRegByte(0, 3),
		ldRegByte(1, 3),
		seRegReg(0, 1),
		jp(0x216),
		ldRegByte(0, 8),
		jp(0x218),
		ldRegByte(0, 5),
	})
}

func TestWhile(t *testing.T) {
	c := compileSource(t, "var a = 255; while (a != 0) { a = a - 1; }")
	expectAsm(t, c, []Instruction{
		ldRegByte(0, 255),
		ldRegReg(1, 0),
		ldRegByte(2, 0),
		sneRegReg(1, 2),
		jp(0x214),
		ldRegReg(1, 0),
		ldRegByte(2, 1),
		subRegReg(1, 2),
		ldRegReg(0, 1),
		jp(0x202),
	})
}

func TestFunctionWithoutArgs(t *testing.T) {
	c := compileSource(t, "var variable = 6; fn test() {5;} test(); variable;")
	expectAsm(t, c, []Instruction{
		ldRegByte(0, 6),
		jp(528),
		ldRegByte(0, 5),
		ldRegByte(14, 3),
		subRegReg(13, 14),
		ldFReg(13),
		ldRegI(13),
		ret(),
		ldFReg(13),
		ldIReg(13),
		ldRegByte(14, 3),
		addRegReg(13, 14),
		call(516),
		ldRegReg(1, 0),
	})
}

func TestNestedFunctionCall(t *testing.T) {
	c := compileSource(t, "var variable = 9; fn test(num) {var a = 5; num;} test(1); variable;")
	expectAsm(t, c, []Instruction{
		ldRegByte(0, 9),
		jp(530),
		ldRegByte(1, 5),
		ldRegReg(2, 0),
		ldRegByte(14, 3),
		subRegReg(13, 14),
		ldFReg(13),
		ldRegI(13),
		ret(),
		ldFReg(13),
		ldIReg(13),
		ldRegByte(14, 3),
		addRegReg(13, 14),
		ldRegByte(1, 1),
		ldRegReg(0, 1),
		call(516),
		ldRegReg(1, 0),
	})
}

func TestFunctionWithArgs(t *testing.T) {
	c := compileSource(t, `var glob1 = 7;
            var glob2 = 3;

            fn doubleloop(num1, num2) {
              var num2backup = num2;
              while(num1 != 0) {
                 while(num2 != 0) {
                     num2 = num2 - 1;
                 }
               num2 = num2backup;
               num1 = num1 - 1;
              }
            }

            var glob3 = 255;

            doubleloop(glob2, glob1);

            var glob4 = 128;

            glob3;`)
	expectAsm(t, c, []Instruction{
		ldRegByte(0, 7),
		ldRegByte(1, 3),
		jp(570),
		ldRegReg(2, 1),
		ldRegReg(3, 0),
		ldRegByte(4, 0),
		sneRegReg(3, 4),
		jp(560),
		ldRegReg(3, 1),
		ldRegByte(4, 0),
		sneRegReg(3, 4),
		jp(546),
		ldRegReg(3, 1),
		ldRegByte(4, 1),
		subRegReg(3, 4),
		ldRegReg(1, 3),
		jp(528),
		ldRegReg(3, 2),
		ldRegReg(1, 3),
		ldRegReg(3, 0),
		ldRegByte(4, 1),
		subRegReg(3, 4),
		ldRegReg(0, 3),
		jp(520),
		ldRegByte(14, 3),
		subRegReg(13, 14),
		ldFReg(13),
		ldRegI(13),
		ret(),
		ldRegByte(2, 255),
		ldFReg(13),
		ldIReg(13),
		ldRegByte(14, 3),
		addRegReg(13, 14),
		ldRegReg(3, 1),
		ldRegReg(4, 0),
		ldRegReg(0, 3),
		ldRegReg(1, 4),
		call(518),
		ldRegByte(3, 128),
		ldRegReg(4, 2),
	})
}

func TestDrawRandKeyDelayIndex(t *testing.T) {
	c := compileSource(t, `
        var testvar = 10;

        fn drawrand(times, delay) {
            I = 20;
            while(times != 0) {
               times = times - 1;
               KEY();
               DT = delay;
               while (DT != 0) {}
               DRAW(RAND(255),RAND(255),5);
            }
        }
        drawrand(testvar, 50);
        while(1 == 1) {7;}`)
	expectAsm(t, c, []Instruction{
		ldRegByte(0, 10),
		jp(568),
		ldIAddr(20),
		ldRegReg(2, 0),
		ldRegByte(3, 0),
		sneRegReg(2, 3),
		jp(558),
		ldRegReg(2, 0),
		ldRegByte(3, 1),
		subRegReg(2, 3),
		ldRegReg(0, 2),
		ldRegKey(2),
		ldRegReg(2, 1),
		ldDTReg(2),
		ldRegDT(2),
		ldRegByte(3, 0),
		sneRegReg(2, 3),
		jp(550),
		jp(540),
		rndRegByte(2, 255),
		rndRegByte(3, 255),
		drwRegRegNibble(2, 3, 5),
		jp(518),
		ldRegByte(14, 3),
		subRegReg(13, 14),
		ldFReg(13),
		ldRegI(13),
		ret(),
		ldFReg(13),
		ldIReg(13),
		ldRegByte(14, 3),
		addRegReg(13, 14),
		ldRegReg(1, 0),
		ldRegByte(2, 50),
		ldRegReg(0, 1),
		ldRegReg(1, 2),
		call(516),
		ldRegByte(1, 1),
		ldRegByte(2, 1),
		seRegReg(1, 2),
		jp(598),
		ldRegByte(1, 7),
		jp(586),
	})
}

func TestLineMap(t *testing.T) {
	c := compileSource(t, "var a = 1;\nvar b = 2;\na = b;")
	expectAsm(t, c, []Instruction{
		ldRegByte(0, 1),
		ldRegByte(1, 2),
		ldRegReg(2, 1),
		ldRegReg(0, 2),
	})

	// lines count from zero. both instructions of the assignment on the
	// third line map back to it
	if !maps.Equal(c.lineMap, map[uint16]int{
		0x200: 0,
		0x202: 1,
		0x204: 2,
		0x206: 2,
	}) {
		t.Errorf("unexpected line map: %v", c.lineMap)
	}
}

func TestCompile(t *testing.T) {
	tokens, err := lexer.Lex("12 + 3;")
	test.DemandSuccess(t, err)

	prg, err := Compile(tokens)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prg.String(), "LDRegByte(0, 12)\nLDRegByte(1, 3)\nAddRegReg(0, 1)")
	test.ExpectEquality(t, len(prg.LineMap), 3)
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{
		"var a = 5",         // missing semicolon
		"a = 5;",            // undeclared variable
		"nosuch();",         // undeclared function
		"var a = true;",     // boolean literals have no rule
		"ST;",               // ST cannot be read
		"var a = 1; I = a;", // I takes a number literal only
		"RAND(a);",          // RAND takes a number literal only
		"5 / 2;",            // no division
		"if (1 == 1) else;",
		"fn 5() {}",
		"var;",

		// a comparison is not a value. using one as an expression statement
		// underflows the register stack and the next emit fails
		"1 == 1; 5;",
	} {
		tokens, err := lexer.Lex(src)
		test.DemandSuccess(t, err)

		if _, err = Compile(tokens); err == nil {
			t.Errorf("compilation of %q did not fail", src)
		}
	}
}

func TestOutOfRegisters(t *testing.T) {
	declare := func(n int) string {
		s := strings.Builder{}
		for i := 0; i < n; i++ {
			fmt.Fprintf(&s, "var v%d = %d;\n", i, i)
		}
		return s.String()
	}

	// sixteen variables fill the register file exactly
	tokens, err := lexer.Lex(declare(16))
	test.DemandSuccess(t, err)
	_, err = Compile(tokens)
	test.ExpectSuccess(t, err)

	// the seventeenth does not fit
	tokens, err = lexer.Lex(declare(17))
	test.DemandSuccess(t, err)
	_, err = Compile(tokens)
	test.ExpectFailure(t, err)
}
