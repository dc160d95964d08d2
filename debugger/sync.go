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

package debugger

// WindowRows is the number of instructions in a source sync window.
const WindowRows = 21

// Selection is an inclusive range of source lines, as counted by the editor
// that owns the source text. Line numbering starts at zero.
type Selection struct {
	StartLine int
	EndLine   int
}

// NoSelection is the Selection value used when the editor has no selection.
// No sync window row is ever active against it.
var NoSelection = Selection{StartLine: -1, EndLine: -1}

// SyncRow is one row of a sync window.
type SyncRow struct {
	// address of the instruction in machine RAM
	Address uint16

	// Mnemonic is empty if the address is outside the loaded program
	Mnemonic string

	// Active is true if the instruction was compiled from a source line
	// inside the editor's selection
	Active bool
}

// SyncWindow describes the instructions around the current program counter
// and relates them to the selection in a source editor. The first row is the
// instruction at the program counter, subsequent rows step through RAM two
// bytes at a time without following jumps.
//
// A row is active if the program was built from source in this session and
// the row's instruction was compiled from a line inside the selection.
// Programs loaded from a ROM file have no source so no row is ever active.
func (dbg *Debugger) SyncWindow(sel Selection) []SyncRow {
	return dbg.syncWindowFromPC(dbg.c8.PC, sel)
}

func (dbg *Debugger) syncWindowFromPC(pc uint16, sel Selection) []SyncRow {
	window := make([]SyncRow, WindowRows)

	addr := pc
	for i := range window {
		window[i].Address = addr

		if e, ok := dbg.dsm.GetEntryByAddress(addr); ok {
			window[i].Mnemonic = e.Mnemonic
		}

		if line, ok := dbg.lineMap[addr]; ok {
			window[i].Active = line >= sel.StartLine && line <= sel.EndLine
		}

		addr += 2
	}

	return window
}
