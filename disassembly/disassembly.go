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

// Package disassembly represents a loaded program in CHIP-8 assembly form.
//
// Disassembly is linear. The program is stepped through from the load
// address two bytes at a time, without following jumps. Only the program
// area is covered, the remainder of machine RAM is not represented. CHIP-8
// programs freely mix sprite data with code so entries are best effort: a
// word that does not decode is listed with the null mnemonic rather than
// being omitted.
package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher8/chip8"
)

// Entry is a single disassembled instruction.
type Entry struct {
	// address of the instruction once loaded into machine RAM
	Address uint16

	// the opcode as stored, big-endian
	Opcode uint16

	// Mnemonic is the opcode in conventional CHIP-8 assembly form, or
	// chip8.MnemonicNull if the opcode does not decode.
	Mnemonic string
}

func (e Entry) String() string {
	return fmt.Sprintf("%04x  %04x  %s", e.Address, e.Opcode, e.Mnemonic)
}

// Disassembly of an entire program.
type Disassembly struct {
	// Entries in address order
	Entries []Entry

	byAddr map[uint16]Entry
}

// FromROM disassembles a ROM image as it will appear once loaded at the
// machine's load address. A trailing odd byte is paired with the zero the
// machine's RAM holds beyond the program.
func FromROM(rom []byte) *Disassembly {
	dsm := &Disassembly{
		Entries: make([]Entry, 0, (len(rom)+1)/2),
		byAddr:  make(map[uint16]Entry),
	}

	for i := 0; i < len(rom); i += 2 {
		opcode := uint16(rom[i]) << 8
		if i+1 < len(rom) {
			opcode |= uint16(rom[i+1])
		}

		e := Entry{
			Address:  chip8.LoadAddr + uint16(i),
			Opcode:   opcode,
			Mnemonic: chip8.Mnemonic(opcode),
		}
		dsm.Entries = append(dsm.Entries, e)
		dsm.byAddr[e.Address] = e
	}

	return dsm
}

// GetEntryByAddress returns the entry at the specified address. The second
// return value is false if the address is outside the disassembled program
// or between instructions.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (Entry, bool) {
	e, ok := dsm.byAddr[address]
	return e, ok
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := fmt.Fprintf(output, "%s\n", e); err != nil {
			return err
		}
	}
	return nil
}
