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

// Package compiler is the second stage of the build pipeline. It turns the
// token stream produced by the lexer package into machine instructions,
// ready for the assembler package to encode.
//
// The compiler works in a single pass with one token of lookahead. There is
// no intermediate syntax tree. Values are evaluated on a register stack: the
// V registers of the machine, with declared variables occupying the bottom
// of the stack and expression temporaries coming and going above them.
//
// Two registers are reserved by the function calling convention. VD holds
// the frame pointer and VE is a scratch register used when adjusting it.
// Call frames live in the low area of machine RAM and are addressed through
// the font table, LD F being the only way of loading I from a register.
package compiler

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/lexer"
)

// Program is the output of a successful compilation.
type Program struct {
	Instructions []Instruction

	// LineMap records the source line (counting from zero) that produced the
	// instruction at each program address.
	LineMap map[uint16]int
}

func (p *Program) String() string {
	s := strings.Builder{}
	for i, ins := range p.Instructions {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(ins.String())
	}
	return s.String()
}

// Compile translates a token stream, as returned by lexer.Lex(), into a
// Program. Errors are positioned with the source line they occurred on.
func Compile(tokens []lexer.Token) (*Program, error) {
	c := &compilation{
		tokens:    tokens,
		functions: make(map[string]*function),
		lineMap:   make(map[uint16]int),
	}

	for !c.check(lexer.EndOfFile) {
		if err := c.declaration(); err != nil {
			return nil, err
		}
	}

	return &Program{Instructions: c.asm, LineMap: c.lineMap}, nil
}

// variable records where on the register stack a named variable lives and
// the lexical scope it belongs to.
type variable struct {
	name       string
	reg        uint16
	scopeDepth int
}

type function struct {
	startAddr uint16
	args      []string
}

// registers reserved by the calling convention. the frame pointer counts in
// font characters and each frame is frameAdvance characters (fifteen bytes)
// wide, enough for the fourteen registers saved by pushFrame().
const (
	frameReg     = 0xd
	scratchReg   = 0xe
	frameAdvance = 3
)

type compilation struct {
	tokens   []lexer.Token
	current  int
	previous int

	// index of the next free register on the register stack
	regStackTop int

	scopeDepth int
	variables  []variable
	functions  map[string]*function

	asm     []Instruction
	lineMap map[uint16]int
}

// progAddr converts an instruction index to the address the instruction will
// occupy once loaded into machine RAM.
func progAddr(idx int) uint16 {
	return uint16(idx*2) + chip8.LoadAddr
}

// line and prevLine return display line numbers for error messages. Lines
// are counted from one to match the editor gutter; the line map keeps the
// zero-based count.
func (c *compilation) line() int {
	return c.tokens[c.current].Line + 1
}

func (c *compilation) prevLine() int {
	return c.tokens[c.previous].Line + 1
}

// advance never moves past the EndOfFile token.
func (c *compilation) advance() {
	c.previous = c.current
	if c.current < len(c.tokens)-1 {
		c.current++
	}
}

func (c *compilation) check(tt lexer.TokenType) bool {
	return c.tokens[c.current].Type == tt
}

func (c *compilation) consume(tt lexer.TokenType) error {
	if !c.check(tt) {
		return fmt.Errorf("compiler: expected %s but found %s on line %d",
			tt, c.tokens[c.current].Type, c.line())
	}
	c.advance()
	return nil
}

// top returns the register number of the next free slot on the register
// stack. peek returns the register number of an occupied slot, peek(0) being
// the topmost.
func (c *compilation) top() uint16 {
	return uint16(c.regStackTop)
}

func (c *compilation) peek(depth int) uint16 {
	return uint16(c.regStackTop - 1 - depth)
}

// emit appends an instruction and notes the source line it came from.
// Register operands are range checked here, which is where an overfull (or
// underfull) register stack comes to light.
func (c *compilation) emit(ins Instruction) error {
	for _, r := range ins.registers() {
		if r > 0xf {
			return fmt.Errorf("compiler: out of registers on line %d", c.prevLine())
		}
	}
	c.lineMap[progAddr(len(c.asm))] = c.tokens[c.previous].Line
	c.asm = append(c.asm, ins)
	return nil
}

// pushFrame is emitted at the call site, before the arguments are evaluated.
// It saves every register to the current frame and advances the frame
// pointer.
func (c *compilation) pushFrame() error {
	for _, ins := range []Instruction{
		ldFReg(frameReg),
		ldIReg(frameReg),
		ldRegByte(scratchReg, frameAdvance),
		addRegReg(frameReg, scratchReg),
	} {
		if err := c.emit(ins); err != nil {
			return err
		}
	}
	return nil
}

// popFrame is emitted at the end of a function body. It winds the frame
// pointer back, restores the saved registers and returns to the caller.
func (c *compilation) popFrame() error {
	for _, ins := range []Instruction{
		ldRegByte(scratchReg, frameAdvance),
		subRegReg(frameReg, scratchReg),
		ldFReg(frameReg),
		ldRegI(frameReg),
		ret(),
	} {
		if err := c.emit(ins); err != nil {
			return err
		}
	}
	return nil
}

func (c *compilation) declaration() error {
	if c.check(lexer.Fn) {
		c.advance()
		return c.fnDeclaration()
	}
	if c.check(lexer.Var) {
		c.advance()
		return c.varDeclaration()
	}
	return c.statement()
}

func (c *compilation) fnDeclaration() error {
	if !c.check(lexer.Identifier) {
		return fmt.Errorf("compiler: function name must follow fn on line %d", c.line())
	}
	name := c.tokens[c.current].Ident
	c.advance()

	// start address skips over the jump that carries straight line execution
	// past the function body
	fn := &function{startAddr: progAddr(len(c.asm)) + 2}
	c.functions[name] = fn

	if err := c.consume(lexer.LeftParen); err != nil {
		return err
	}

	// arguments are passed in the bottom registers. they are declared as
	// variables so the function body can refer to them by name
	addArg := func() error {
		if c.tokens[c.previous].Type != lexer.Identifier {
			return fmt.Errorf("compiler: expected argument name on line %d", c.prevLine())
		}
		fn.args = append(fn.args, c.tokens[c.previous].Ident)
		c.variables = append(c.variables, variable{
			name:       c.tokens[c.previous].Ident,
			reg:        uint16(len(fn.args) - 1),
			scopeDepth: c.scopeDepth,
		})
		return nil
	}

	if !c.check(lexer.RightParen) {
		c.advance()
		if err := addArg(); err != nil {
			return err
		}
		for c.check(lexer.Comma) {
			c.advance()
			c.advance()
			if err := addArg(); err != nil {
				return err
			}
		}
	}

	if err := c.consume(lexer.RightParen); err != nil {
		return err
	}
	if err := c.consume(lexer.LeftBrace); err != nil {
		return err
	}

	c.scopeDepth++

	// the function body starts with a fresh register stack, the arguments
	// already in place
	backup := c.regStackTop
	c.regStackTop = len(fn.args)

	jpOver := len(c.asm)
	if err := c.emit(jp(0)); err != nil {
		return err
	}

	if err := c.block(); err != nil {
		return err
	}
	if err := c.popFrame(); err != nil {
		return err
	}

	c.asm[jpOver] = jp(progAddr(len(c.asm)))

	c.clearCurrentScope()
	c.scopeDepth--
	c.regStackTop = backup

	return nil
}

func (c *compilation) varDeclaration() error {
	if !c.check(lexer.Identifier) {
		return fmt.Errorf("compiler: variable name must follow var on line %d", c.line())
	}
	name := c.tokens[c.current].Ident
	c.advance()

	// the variable takes ownership of the register the initialiser leaves
	// its result in
	c.variables = append(c.variables, variable{
		name:       name,
		reg:        c.top(),
		scopeDepth: c.scopeDepth,
	})

	if err := c.consume(lexer.Equals); err != nil {
		return err
	}
	if err := c.expression(); err != nil {
		return err
	}

	return c.consume(lexer.Semicolon)
}

func (c *compilation) statement() error {
	switch {
	case c.check(lexer.LeftBrace):
		c.advance()
		c.scopeDepth++
		if err := c.block(); err != nil {
			return err
		}
		c.clearCurrentScope()
		c.scopeDepth--
		return nil

	case c.check(lexer.If):
		c.advance()
		return c.ifStatement()

	case c.check(lexer.While):
		c.advance()
		return c.whileStatement()

	case c.check(lexer.Draw):
		c.advance()
		return c.drawStatement()
	}

	return c.expressionStatement()
}

func (c *compilation) block() error {
	for !c.check(lexer.RightBrace) && !c.check(lexer.EndOfFile) {
		if err := c.declaration(); err != nil {
			return err
		}
	}
	return c.consume(lexer.RightBrace)
}

// a condition compiles to a skip instruction, meaning the only thing that
// can usefully follow it is a single jump. ifStatement() and friends emit
// the jump with a zero target and patch the real target in once it is known.

func (c *compilation) ifStatement() error {
	if err := c.consume(lexer.LeftParen); err != nil {
		return err
	}
	if err := c.expression(); err != nil {
		return err
	}
	if err := c.consume(lexer.RightParen); err != nil {
		return err
	}

	condJp := len(c.asm)
	if err := c.emit(jp(0)); err != nil {
		return err
	}

	if err := c.statement(); err != nil {
		return err
	}

	if c.check(lexer.Else) {
		// the failed condition jumps past the jump that ends the then branch
		c.asm[condJp] = jp(progAddr(len(c.asm)) + 2)
		c.advance()

		elseJp := len(c.asm)
		if err := c.emit(jp(0)); err != nil {
			return err
		}
		if err := c.statement(); err != nil {
			return err
		}
		c.asm[elseJp] = jp(progAddr(len(c.asm)))
	} else {
		c.asm[condJp] = jp(progAddr(len(c.asm)))
	}

	return nil
}

func (c *compilation) whileStatement() error {
	start := progAddr(len(c.asm))

	if err := c.consume(lexer.LeftParen); err != nil {
		return err
	}
	if err := c.expression(); err != nil {
		return err
	}
	if err := c.consume(lexer.RightParen); err != nil {
		return err
	}

	condJp := len(c.asm)
	if err := c.emit(jp(0)); err != nil {
		return err
	}

	if err := c.statement(); err != nil {
		return err
	}
	if err := c.emit(jp(start)); err != nil {
		return err
	}

	c.asm[condJp] = jp(progAddr(len(c.asm)))

	return nil
}

func (c *compilation) drawStatement() error {
	if err := c.consume(lexer.LeftParen); err != nil {
		return err
	}
	if err := c.expression(); err != nil {
		return err
	}
	if err := c.consume(lexer.Comma); err != nil {
		return err
	}
	if err := c.expression(); err != nil {
		return err
	}
	if err := c.consume(lexer.Comma); err != nil {
		return err
	}

	if !c.check(lexer.Number) {
		return fmt.Errorf("compiler: DRAW height must be a number literal on line %d", c.line())
	}
	height := c.tokens[c.current].Num
	c.advance()

	if err := c.consume(lexer.RightParen); err != nil {
		return err
	}

	if err := c.emit(drwRegRegNibble(c.peek(1), c.peek(0), height)); err != nil {
		return err
	}
	c.regStackTop -= 2

	return c.consume(lexer.Semicolon)
}

func (c *compilation) expressionStatement() error {
	if err := c.expression(); err != nil {
		return err
	}
	if err := c.consume(lexer.Semicolon); err != nil {
		return err
	}

	// the result of the expression is discarded
	c.regStackTop--

	return nil
}

// clearCurrentScope drops every variable declared at the current scope
// depth, freeing their registers.
func (c *compilation) clearCurrentScope() {
	for i := len(c.variables) - 1; i >= 0; i-- {
		if c.variables[i].scopeDepth == c.scopeDepth {
			c.variables = append(c.variables[:i], c.variables[i+1:]...)
			c.regStackTop--
		}
	}
}

// lookupVariable finds the register allocated to a named variable. Later
// declarations shadow earlier ones.
func (c *compilation) lookupVariable(name string) (uint16, bool) {
	for i := len(c.variables) - 1; i >= 0; i-- {
		if c.variables[i].name == name {
			return c.variables[i].reg, true
		}
	}
	return 0, false
}
