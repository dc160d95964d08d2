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

package chip8

import (
	"fmt"
)

// MnemonicNull is returned by Mnemonic() for opcodes that do not decode to an
// instruction.
const MnemonicNull = "null"

// Mnemonic returns the assembly language representation of an opcode.
// Operands appear in the order Vx, Vy, literal, with literals printed in
// upper-case hexadecimal and no leading zeros.
func Mnemonic(opcode uint16) string {
	x := (opcode & 0x0f00) >> 8
	y := (opcode & 0x00f0) >> 4
	nnn := opcode & 0x0fff
	kk := opcode & 0x00ff
	n := opcode & 0x000f

	switch opcode & 0xf000 {
	case 0x0000:
		switch opcode & 0x000f {
		case 0x0:
			return "CLS"
		case 0xe:
			return "RET"
		}

	case 0x1000:
		return fmt.Sprintf("JP %X", nnn)

	case 0x2000:
		return fmt.Sprintf("CALL %X", nnn)

	case 0x3000:
		return fmt.Sprintf("SE V%X, %X", x, kk)

	case 0x4000:
		return fmt.Sprintf("SNE V%X, %X", x, kk)

	case 0x5000:
		return fmt.Sprintf("SE V%X, V%X", x, y)

	case 0x6000:
		return fmt.Sprintf("LD V%X, %X", x, kk)

	case 0x7000:
		return fmt.Sprintf("ADD V%X, %X", x, kk)

	case 0x8000:
		switch opcode & 0x000f {
		case 0x0:
			return fmt.Sprintf("LD V%X, V%X", x, y)
		case 0x1:
			return fmt.Sprintf("OR V%X, V%X", x, y)
		case 0x2:
			return fmt.Sprintf("AND V%X, V%X", x, y)
		case 0x3:
			return fmt.Sprintf("XOR V%X, V%X", x, y)
		case 0x4:
			return fmt.Sprintf("ADD V%X, V%X", x, y)
		case 0x5:
			return fmt.Sprintf("SUB V%X, V%X", x, y)
		case 0x6:
			return fmt.Sprintf("SHR V%X, V%X", x, y)
		case 0x7:
			return fmt.Sprintf("SUBN V%X, V%X", x, y)
		case 0xe:
			return fmt.Sprintf("SHL V%X, V%X", x, y)
		}

	case 0x9000:
		return fmt.Sprintf("SNE V%X, V%X", x, y)

	case 0xa000:
		return fmt.Sprintf("LD I, %X", nnn)

	case 0xb000:
		return fmt.Sprintf("JP V0, %X", nnn)

	case 0xc000:
		return fmt.Sprintf("RND V%X, %X", x, kk)

	case 0xd000:
		return fmt.Sprintf("DRW V%X, V%X, %X", x, y, n)

	case 0xe000:
		switch opcode & 0x000f {
		case 0xe:
			return fmt.Sprintf("SKP V%X", x)
		case 0x1:
			return fmt.Sprintf("SKNP V%X", x)
		}

	case 0xf000:
		switch opcode & 0x00ff {
		case 0x07:
			return fmt.Sprintf("LD V%X, DT", x)
		case 0x0a:
			return fmt.Sprintf("LD V%X, K", x)
		case 0x15:
			return fmt.Sprintf("LD DT, V%X", x)
		case 0x18:
			return fmt.Sprintf("LD ST, V%X", x)
		case 0x1e:
			return fmt.Sprintf("ADD I, V%X", x)
		case 0x29:
			return fmt.Sprintf("LD F, V%X", x)
		case 0x33:
			return fmt.Sprintf("LD B, V%X", x)
		case 0x55:
			return fmt.Sprintf("LD [I], V%X", x)
		case 0x65:
			return fmt.Sprintf("LD V%X, [I]", x)
		}
	}

	return MnemonicNull
}
