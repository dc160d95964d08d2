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

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/resources"
)

// name of the state file in the gopher8 resources directory
const stateFile = "debugger.state"

// SaveState snapshots the machine into the debugger's state slot. The slot
// holds one snapshot; saving again replaces it.
//
// The snapshot captures the machine only. Which program is loaded, the
// debugging maps and whether the emulation is running are not part of it.
func (dbg *Debugger) SaveState() {
	dbg.slot = dbg.c8.Snapshot()
}

// RestoreState returns the machine to the snapshot in the state slot. The
// slot is kept so the same snapshot can be restored repeatedly. Restoring
// does not start or stop the emulation.
func (dbg *Debugger) RestoreState() error {
	if dbg.slot == nil {
		return fmt.Errorf("debugger: no saved state")
	}

	dbg.c8.Plumb(dbg.slot)
	dbg.keypad = dbg.slot.Keys
	dbg.fault = nil

	return nil
}

// SaveStateToDisk snapshots the machine to the state file in the gopher8
// resources directory, where it survives the process.
func (dbg *Debugger) SaveStateToDisk() error {
	fn, err := resources.JoinPath(stateFile)
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}

	f, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(dbg.c8.Snapshot()); err != nil {
		return fmt.Errorf("debugger: %w", err)
	}

	return nil
}

// RestoreStateFromDisk returns the machine to the snapshot in the state
// file. The machine is left untouched if the file is missing or cannot be
// decoded.
func (dbg *Debugger) RestoreStateFromDisk() error {
	fn, err := resources.JoinPath(stateFile)
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}

	f, err := os.Open(fn)
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer f.Close()

	snap := &chip8.State{}
	if err := gob.NewDecoder(f).Decode(snap); err != nil {
		return fmt.Errorf("debugger: %w", err)
	}

	dbg.c8.Plumb(snap)
	dbg.keypad = snap.Keys
	dbg.fault = nil

	return nil
}
