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
)

// Operation is the set of machine instructions the compiler emits. It is a
// small subset of what the machine can do.
type Operation int

// List of valid Operation values.
const (
	LDRegByte Operation = iota
	LDRegReg
	AddRegReg
	SubRegReg
	SERegReg
	SNERegReg
	LDFReg
	LDIReg
	LDRegI
	LDDTReg
	LDRegDT
	LDSTReg
	LDRegKey
	LDIAddr
	RNDRegByte
	DRWRegRegNibble
	JP
	CALL
	RET
)

var operationNames = []string{
	"LDRegByte",
	"LDRegReg",
	"AddRegReg",
	"SubRegReg",
	"SERegReg",
	"SNERegReg",
	"LDFReg",
	"LDIReg",
	"LDRegI",
	"LDDTReg",
	"LDRegDT",
	"LDSTReg",
	"LDRegKey",
	"LDIAddr",
	"RNDRegByte",
	"DRWRegRegNibble",
	"JP",
	"CALL",
	"RET",
}

func (op Operation) String() string {
	return operationNames[op]
}

// Instruction is a single emitted instruction. The meaning of the operand
// fields depends on the operation. Unused operands are zero.
type Instruction struct {
	Op      Operation
	A, B, C uint16
}

func (ins Instruction) String() string {
	switch ins.Op {
	case RET:
		return ins.Op.String()
	case LDFReg, LDIReg, LDRegI, LDDTReg, LDRegDT, LDSTReg, LDRegKey, LDIAddr, JP, CALL:
		return fmt.Sprintf("%s(%d)", ins.Op, ins.A)
	case DRWRegRegNibble:
		return fmt.Sprintf("%s(%d, %d, %d)", ins.Op, ins.A, ins.B, ins.C)
	}
	return fmt.Sprintf("%s(%d, %d)", ins.Op, ins.A, ins.B)
}

// registers returns the operands of the instruction that name a V register.
func (ins Instruction) registers() []uint16 {
	switch ins.Op {
	case LDRegReg, AddRegReg, SubRegReg, SERegReg, SNERegReg, DRWRegRegNibble:
		return []uint16{ins.A, ins.B}
	case LDRegByte, LDFReg, LDIReg, LDRegI, LDDTReg, LDRegDT, LDSTReg, LDRegKey, RNDRegByte:
		return []uint16{ins.A}
	}
	return nil
}

func ldRegByte(reg, val uint16) Instruction {
	return Instruction{Op: LDRegByte, A: reg, B: val}
}

func ldRegReg(reg1, reg2 uint16) Instruction {
	return Instruction{Op: LDRegReg, A: reg1, B: reg2}
}

func addRegReg(reg1, reg2 uint16) Instruction {
	return Instruction{Op: AddRegReg, A: reg1, B: reg2}
}

func subRegReg(reg1, reg2 uint16) Instruction {
	return Instruction{Op: SubRegReg, A: reg1, B: reg2}
}

func seRegReg(reg1, reg2 uint16) Instruction {
	return Instruction{Op: SERegReg, A: reg1, B: reg2}
}

func sneRegReg(reg1, reg2 uint16) Instruction {
	return Instruction{Op: SNERegReg, A: reg1, B: reg2}
}

func ldFReg(reg uint16) Instruction {
	return Instruction{Op: LDFReg, A: reg}
}

func ldIReg(reg uint16) Instruction {
	return Instruction{Op: LDIReg, A: reg}
}

func ldRegI(reg uint16) Instruction {
	return Instruction{Op: LDRegI, A: reg}
}

func ldDTReg(reg uint16) Instruction {
	return Instruction{Op: LDDTReg, A: reg}
}

func ldRegDT(reg uint16) Instruction {
	return Instruction{Op: LDRegDT, A: reg}
}

func ldSTReg(reg uint16) Instruction {
	return Instruction{Op: LDSTReg, A: reg}
}

func ldRegKey(reg uint16) Instruction {
	return Instruction{Op: LDRegKey, A: reg}
}

func ldIAddr(addr uint16) Instruction {
	return Instruction{Op: LDIAddr, A: addr}
}

func rndRegByte(reg, val uint16) Instruction {
	return Instruction{Op: RNDRegByte, A: reg, B: val}
}

func drwRegRegNibble(reg1, reg2, nibble uint16) Instruction {
	return Instruction{Op: DRWRegRegNibble, A: reg1, B: reg2, C: nibble}
}

func jp(addr uint16) Instruction {
	return Instruction{Op: JP, A: addr}
}

func call(addr uint16) Instruction {
	return Instruction{Op: CALL, A: addr}
}

func ret() Instruction {
	return Instruction{Op: RET}
}
