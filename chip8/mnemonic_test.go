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

package chip8_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/test"
)

func TestMnemonic(t *testing.T) {
	for _, c := range []struct {
		opcode   uint16
		mnemonic string
	}{
		{0x00e0, "CLS"},
		{0x00ee, "RET"},
		{0x155d, "JP 55D"},
		{0x2400, "CALL 400"},
		{0x35d0, "SE V5, D0"},
		{0x455a, "SNE V5, 5A"},
		{0x5670, "SE V6, V7"},
		{0x622c, "LD V2, 2C"},
		{0x7a01, "ADD VA, 1"},
		{0x8ab0, "LD VA, VB"},
		{0x8ab1, "OR VA, VB"},
		{0x8ab2, "AND VA, VB"},
		{0x8ab3, "XOR VA, VB"},
		{0x8ab4, "ADD VA, VB"},
		{0x8ab5, "SUB VA, VB"},
		{0x8ab6, "SHR VA, VB"},
		{0x8ab7, "SUBN VA, VB"},
		{0x8abe, "SHL VA, VB"},
		{0x9120, "SNE V1, V2"},
		{0xa6ad, "LD I, 6AD"},
		{0xb123, "JP V0, 123"},
		{0xc5ff, "RND V5, FF"},
		{0xd125, "DRW V1, V2, 5"},
		{0xe09e, "SKP V0"},
		{0xe1a1, "SKNP V1"},
		{0xf107, "LD V1, DT"},
		{0xf30a, "LD V3, K"},
		{0xf415, "LD DT, V4"},
		{0xf518, "LD ST, V5"},
		{0xf61e, "ADD I, V6"},
		{0xf729, "LD F, V7"},
		{0xf833, "LD B, V8"},
		{0xf955, "LD [I], V9"},
		{0xfa65, "LD VA, [I]"},

		// operands never have leading zeros
		{0x600a, "LD V0, A"},

		// opcodes that decode to nothing
		{0x00fd, chip8.MnemonicNull},
		{0x8ab8, chip8.MnemonicNull},
		{0xe100, chip8.MnemonicNull},
		{0xf0ff, chip8.MnemonicNull},
	} {
		test.ExpectEquality(t, chip8.Mnemonic(c.opcode), c.mnemonic, c.mnemonic)
	}
}
