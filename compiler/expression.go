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

	"github.com/jetsetilly/gopher8/lexer"
)

type precedence int

// precedence levels from weakest to strongest binding. precFactor is the
// level multiplication and division would occupy if the language had them.
const (
	precNone precedence = iota
	precAssignment
	precOr
	precAnd
	precEquality
	precTerm
	precFactor
	precPrimary
)

// compileRule describes how a token takes part in an expression. prefix
// compiles a token that begins an (sub)expression. infix compiles a token
// that joins two of them.
type compileRule struct {
	prec   precedence
	prefix func(*compilation) error
	infix  func(*compilation) error
}

func (c *compilation) rule(tok lexer.Token) (compileRule, error) {
	switch tok.Type {
	case lexer.Number:
		return compileRule{prefix: (*compilation).number}, nil
	case lexer.Identifier:
		return compileRule{prefix: (*compilation).variable}, nil
	case lexer.DT:
		return compileRule{prefix: (*compilation).delayTimer}, nil
	case lexer.ST:
		return compileRule{prefix: (*compilation).soundTimer}, nil
	case lexer.I:
		return compileRule{prefix: (*compilation).indexRegister}, nil
	case lexer.Rand:
		return compileRule{prefix: (*compilation).random}, nil
	case lexer.Key:
		return compileRule{prefix: (*compilation).key}, nil
	case lexer.Plus, lexer.Minus:
		return compileRule{prec: precTerm, infix: (*compilation).binary}, nil
	case lexer.EqualsEquals, lexer.NotEquals:
		return compileRule{prec: precEquality, infix: (*compilation).binary}, nil
	case lexer.And:
		return compileRule{prec: precAnd, infix: (*compilation).and}, nil
	case lexer.Or:
		return compileRule{prec: precOr, infix: (*compilation).or}, nil
	case lexer.Equals, lexer.Semicolon, lexer.Comma, lexer.RightParen:
		// legitimate expression enders. no rule but no error either
		return compileRule{}, nil
	}
	return compileRule{}, fmt.Errorf("compiler: unexpected %s on line %d", tok, tok.Line+1)
}

func (c *compilation) expression() error {
	return c.compilePrecedence(precAssignment)
}

// compilePrecedence compiles everything from the current token up to the
// first token binding less strongly than prec.
func (c *compilation) compilePrecedence(prec precedence) error {
	c.advance()

	r, err := c.rule(c.tokens[c.previous])
	if err != nil {
		return err
	}
	if r.prefix == nil {
		tok := c.tokens[c.previous]
		return fmt.Errorf("compiler: unexpected %s on line %d", tok, tok.Line+1)
	}
	if err := r.prefix(c); err != nil {
		return err
	}

	for {
		r, err := c.rule(c.tokens[c.current])
		if err != nil {
			return err
		}
		if prec > r.prec {
			break
		}

		c.advance()
		r, err = c.rule(c.tokens[c.previous])
		if err != nil {
			return err
		}
		if r.infix != nil {
			if err := r.infix(c); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *compilation) number() error {
	if err := c.emit(ldRegByte(c.top(), c.tokens[c.previous].Num)); err != nil {
		return err
	}
	c.regStackTop++
	return nil
}

// variable handles the three things an identifier can mean in an expression:
// an assignment target, a function call, or a plain read.
func (c *compilation) variable() error {
	name := c.tokens[c.previous].Ident

	switch c.tokens[c.current].Type {
	case lexer.Equals:
		c.advance()
		if err := c.expression(); err != nil {
			return err
		}

		reg, ok := c.lookupVariable(name)
		if !ok {
			return fmt.Errorf("compiler: variable %s not found on line %d", name, c.prevLine())
		}

		if err := c.emit(ldRegReg(reg, c.peek(0))); err != nil {
			return err
		}

		// the assigned value is released here and immediately reclaimed below.
		// it doubles as the value of the assignment expression
		c.regStackTop--

	case lexer.LeftParen:
		c.advance()

		// the frame is pushed before the arguments are evaluated so that the
		// argument values survive in the callee's registers
		if err := c.pushFrame(); err != nil {
			return err
		}

		numArgs := 0
		if !c.check(lexer.RightParen) {
			if err := c.expression(); err != nil {
				return err
			}
			numArgs++
			for c.check(lexer.Comma) {
				c.advance()
				if err := c.expression(); err != nil {
					return err
				}
				numArgs++
			}
		}

		fn, ok := c.functions[name]
		if !ok {
			return fmt.Errorf("compiler: function %s not found on line %d", name, c.prevLine())
		}

		// move the evaluated arguments down to the registers the function
		// body expects them in
		for i := 0; i < len(fn.args); i++ {
			if err := c.emit(ldRegReg(uint16(i), uint16(c.regStackTop-numArgs+i))); err != nil {
				return err
			}
		}
		c.regStackTop -= numArgs

		if err := c.consume(lexer.RightParen); err != nil {
			return err
		}
		if err := c.emit(call(fn.startAddr)); err != nil {
			return err
		}

	default:
		reg, ok := c.lookupVariable(name)
		if !ok {
			return fmt.Errorf("compiler: variable %s not found on line %d", name, c.prevLine())
		}
		if err := c.emit(ldRegReg(c.top(), reg)); err != nil {
			return err
		}
	}

	c.regStackTop++
	return nil
}

func (c *compilation) delayTimer() error {
	if c.check(lexer.Equals) {
		c.advance()
		if err := c.expression(); err != nil {
			return err
		}
		return c.emit(ldDTReg(c.peek(0)))
	}

	if err := c.emit(ldRegDT(c.top())); err != nil {
		return err
	}
	c.regStackTop++
	return nil
}

func (c *compilation) soundTimer() error {
	if !c.check(lexer.Equals) {
		return fmt.Errorf("compiler: ST can only be assigned to, not read, on line %d", c.line())
	}
	c.advance()

	if err := c.expression(); err != nil {
		return err
	}
	return c.emit(ldSTReg(c.peek(0)))
}

// the index register can only be assigned a number literal. arbitrary
// expressions would need an instruction that loads I from a register and
// there isn't one.
func (c *compilation) indexRegister() error {
	if !c.check(lexer.Equals) {
		return fmt.Errorf("compiler: I can only be assigned to, not read, on line %d", c.line())
	}
	c.advance()

	if !c.check(lexer.Number) {
		return fmt.Errorf("compiler: I must be assigned a number literal on line %d", c.line())
	}
	addr := c.tokens[c.current].Num
	c.advance()

	if err := c.emit(ldIAddr(addr)); err != nil {
		return err
	}
	c.regStackTop++
	return nil
}

func (c *compilation) random() error {
	if err := c.consume(lexer.LeftParen); err != nil {
		return err
	}

	if !c.check(lexer.Number) {
		return fmt.Errorf("compiler: RAND mask must be a number literal on line %d", c.line())
	}
	mask := c.tokens[c.current].Num
	c.advance()

	if err := c.consume(lexer.RightParen); err != nil {
		return err
	}

	if err := c.emit(rndRegByte(c.top(), mask)); err != nil {
		return err
	}
	c.regStackTop++
	return nil
}

func (c *compilation) key() error {
	if err := c.consume(lexer.LeftParen); err != nil {
		return err
	}
	if err := c.consume(lexer.RightParen); err != nil {
		return err
	}

	if err := c.emit(ldRegKey(c.top())); err != nil {
		return err
	}
	c.regStackTop++
	return nil
}

func (c *compilation) binary() error {
	op := c.tokens[c.previous].Type

	r, err := c.rule(c.tokens[c.previous])
	if err != nil {
		return err
	}

	// compile the right hand operand. one level up keeps operators of the
	// same precedence left associative
	if err := c.compilePrecedence(r.prec + 1); err != nil {
		return err
	}

	switch op {
	case lexer.Plus:
		if err := c.emit(addRegReg(c.peek(1), c.peek(0))); err != nil {
			return err
		}
		c.regStackTop--
	case lexer.Minus:
		if err := c.emit(subRegReg(c.peek(1), c.peek(0))); err != nil {
			return err
		}
		c.regStackTop--
	case lexer.EqualsEquals:
		// comparisons leave nothing on the register stack. the skip
		// instruction is the result
		if err := c.emit(seRegReg(c.peek(1), c.peek(0))); err != nil {
			return err
		}
		c.regStackTop -= 2
	case lexer.NotEquals:
		if err := c.emit(sneRegReg(c.peek(1), c.peek(0))); err != nil {
			return err
		}
		c.regStackTop -= 2
	}

	return nil
}

// and compiles to a short circuiting jump. the left operand has just
// compiled to a skip so a jump here is taken only when the left operand
// fails, carrying execution past the right operand.
func (c *compilation) and() error {
	failJp := len(c.asm)
	if err := c.emit(jp(0)); err != nil {
		return err
	}

	if err := c.compilePrecedence(precAnd); err != nil {
		return err
	}

	c.asm[failJp] = jp(progAddr(len(c.asm)))
	return nil
}

// or needs two jumps. when the left operand fails its skip does not fire
// and the first jump carries execution to the right operand. when it
// succeeds the skip lands on the second jump, which hops past the right
// operand and the condition jump that follows it.
func (c *compilation) or() error {
	failJp := len(c.asm)
	if err := c.emit(jp(0)); err != nil {
		return err
	}
	okJp := len(c.asm)
	if err := c.emit(jp(0)); err != nil {
		return err
	}
	c.asm[failJp] = jp(progAddr(len(c.asm)))

	if err := c.compilePrecedence(precOr); err != nil {
		return err
	}

	c.asm[okJp] = jp(progAddr(len(c.asm)) + 2)
	return nil
}
