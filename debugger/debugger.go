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
	"fmt"
	"time"

	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/disassembly"
)

// Debugger is the controlling process of the emulation. All interaction with
// the machine, from whichever frontend, goes through this type. The debugger
// is not safe for concurrent use; the expectation is that one goroutine owns
// it and that all events arrive as discrete function calls on that goroutine.
type Debugger struct {
	// reference to the emulated machine. this pointer never changes through
	// the life of the debugger, even as programs come and go
	c8 *chip8.Chip8

	// current state of the emulation. changed only by Pause(), Resume(),
	// Step() and by a machine fault
	state govern.State

	// disassembly of the most recently loaded program and the address to
	// source-line map from the most recent build. exactly one of each is
	// current at any time and they are only ever replaced together
	dsm     *disassembly.Disassembly
	lineMap map[uint16]int

	// copy of the most recently loaded ROM. used by the RESET command to
	// restart the program from scratch
	lastROM []byte

	// diagnostic output of the most recent successful build
	lastBuild BuildReport

	// tick governs the cadence of the emulation. the ticker is never stopped,
	// only reset when the tick rate preference changes
	tick *time.Ticker

	// mirror of the virtual keypad. the machine has its own copy of this
	// information but the debugger keeps its own so that frontends can show
	// the keypad without touching the machine
	keypad [chip8.NumKeys]bool

	// in-memory snapshot slot. nil until SaveState() is called
	slot *chip8.State

	// the error that most recently halted the emulation. cleared on resume
	// and on a successful load
	fault error

	// the terminal connected by RunTerminal(). nil when the debugger is
	// driven by a GUI alone
	term terminal.Terminal

	// events monitored by the terminal during TermRead()
	events *terminal.ReadEvents

	// buffer for user input
	input []byte

	// whether the terminal input loop should continue
	running bool

	prefs *Preferences
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The emulation starts in the Running state with no program loaded.
func NewDebugger() (*Debugger, error) {
	dbg := &Debugger{
		c8:    chip8.NewChip8(),
		state: govern.Running,
		input: make([]byte, 255),
	}

	// an empty disassembly and line map so that neither is ever nil
	dbg.dsm = disassembly.FromROM(nil)
	dbg.lineMap = make(map[uint16]int)

	var err error
	dbg.prefs, err = newPreferences(dbg)
	if err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}

	// the preferences hook keeps the ticker in step with the TickHz value
	// from here on
	dbg.tick = time.NewTicker(time.Second / time.Duration(dbg.prefs.TickHz.Get().(int)))

	return dbg, nil
}

// State returns the current state of the emulation.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// LastFault returns the error that most recently halted the emulation, or
// nil if the most recent halt was deliberate.
func (dbg *Debugger) LastFault() error {
	return dbg.fault
}

// LastBuild returns the diagnostic output of the most recent successful
// build. The zero value is returned if nothing has been built yet.
func (dbg *Debugger) LastBuild() BuildReport {
	return dbg.lastBuild
}

// Mach returns the machine being debugged. Frontends may read the machine
// state directly but must route all mutation through the debugger.
func (dbg *Debugger) Mach() *chip8.Chip8 {
	return dbg.c8
}

// Prefs returns the debugger's preference values.
func (dbg *Debugger) Prefs() *Preferences {
	return dbg.prefs
}

// printLine writes a formatted string to the attached terminal. a no-op if
// no terminal is attached.
func (dbg *Debugger) printLine(style terminal.Style, s string, a ...any) {
	if dbg.term == nil {
		return
	}
	dbg.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}
