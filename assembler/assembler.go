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

// Package assembler is the final stage of the build pipeline. It encodes the
// instructions emitted by the compiler package into CHIP-8 machine code.
//
// Operands are range checked during encoding. The compiler works in sixteen
// bit values throughout, so this is the stage at which a value too large for
// its encoded field comes to light.
package assembler

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/compiler"
)

// field limits for encoded operands.
const (
	maxRegister = 0xf
	maxNibble   = 0xf
	maxByte     = 0xff
	maxAddress  = 0xfff
)

// Assemble encodes a compiled program into machine code, ready for loading.
// Each instruction encodes to a single sixteen bit opcode, stored big-endian.
func Assemble(instructions []compiler.Instruction) ([]byte, error) {
	bin := make([]byte, 0, len(instructions)*2)
	for _, ins := range instructions {
		opcode, err := encode(ins)
		if err != nil {
			return nil, err
		}
		bin = binary.BigEndian.AppendUint16(bin, opcode)
	}
	return bin, nil
}

// Listing returns a printable form of an assembled binary, one hex opcode
// per instruction separated by spaces. Leading zeroes beyond two digits are
// not printed, so RET appears as EE.
func Listing(bin []byte) string {
	s := strings.Builder{}
	for i := 0; i < len(bin); i += 2 {
		if i > 0 {
			s.WriteString(" ")
		}
		if i+1 < len(bin) {
			fmt.Fprintf(&s, "%02X", binary.BigEndian.Uint16(bin[i:]))
		} else {
			fmt.Fprintf(&s, "%02X", bin[i])
		}
	}
	return s.String()
}

func encode(ins compiler.Instruction) (uint16, error) {
	switch ins.Op {
	case compiler.LDRegByte:
		return regByteForm(0x6, ins.A, ins.B)
	case compiler.LDRegReg:
		return regRegForm(0x8, ins.A, ins.B, 0x0)
	case compiler.AddRegReg:
		return regRegForm(0x8, ins.A, ins.B, 0x4)
	case compiler.SubRegReg:
		return regRegForm(0x8, ins.A, ins.B, 0x5)
	case compiler.SERegReg:
		return regRegForm(0x5, ins.A, ins.B, 0x0)
	case compiler.SNERegReg:
		return regRegForm(0x9, ins.A, ins.B, 0x0)
	case compiler.LDFReg:
		return fForm(ins.A, 0x29)
	case compiler.LDIReg:
		return fForm(ins.A, 0x55)
	case compiler.LDRegI:
		return fForm(ins.A, 0x65)
	case compiler.LDDTReg:
		return fForm(ins.A, 0x15)
	case compiler.LDRegDT:
		return fForm(ins.A, 0x07)
	case compiler.LDSTReg:
		return fForm(ins.A, 0x18)
	case compiler.LDRegKey:
		return fForm(ins.A, 0x0a)
	case compiler.LDIAddr:
		return addrForm(0xa, ins.A)
	case compiler.RNDRegByte:
		return regByteForm(0xc, ins.A, ins.B)
	case compiler.DRWRegRegNibble:
		if ins.C > maxNibble {
			return 0, fmt.Errorf("assembler: nibble operand out of range (%d)", ins.C)
		}
		return regRegForm(0xd, ins.A, ins.B, ins.C)
	case compiler.JP:
		return addrForm(0x1, ins.A)
	case compiler.CALL:
		return addrForm(0x2, ins.A)
	case compiler.RET:
		return 0x00ee, nil
	}

	return 0, fmt.Errorf("assembler: no encoding for %s", ins.Op)
}

func regByteForm(top, reg, val uint16) (uint16, error) {
	if reg > maxRegister {
		return 0, fmt.Errorf("assembler: register operand out of range (%d)", reg)
	}
	if val > maxByte {
		return 0, fmt.Errorf("assembler: byte operand out of range (%d)", val)
	}
	return top<<12 | reg<<8 | val, nil
}

func regRegForm(top, reg1, reg2, low uint16) (uint16, error) {
	if reg1 > maxRegister {
		return 0, fmt.Errorf("assembler: register operand out of range (%d)", reg1)
	}
	if reg2 > maxRegister {
		return 0, fmt.Errorf("assembler: register operand out of range (%d)", reg2)
	}
	return top<<12 | reg1<<8 | reg2<<4 | low, nil
}

func fForm(reg, low uint16) (uint16, error) {
	if reg > maxRegister {
		return 0, fmt.Errorf("assembler: register operand out of range (%d)", reg)
	}
	return 0xf000 | reg<<8 | low, nil
}

func addrForm(top, addr uint16) (uint16, error) {
	if addr > maxAddress {
		return 0, fmt.Errorf("assembler: address operand out of range (%#04x)", addr)
	}
	return top<<12 | addr, nil
}
