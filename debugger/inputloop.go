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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
)

// RunTerminal runs the debugger with the terminal as the only frontend. It
// returns when the user quits or when the terminal fails.
//
// While the machine is running the loop divides its time between the
// emulation and watching for terminal activity; any activity halts the
// machine. While the machine is halted the loop blocks on the terminal,
// reading and processing commands.
func (dbg *Debugger) RunTerminal(term terminal.Terminal) error {
	if err := term.Initialise(); err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer term.CleanUp()

	term.RegisterTabCompletion(commandline.NewTabCompletion(debuggerCommands))

	dbg.term = term
	dbg.events = &terminal.ReadEvents{
		IntEvents: make(chan os.Signal, 1),
	}
	signal.Notify(dbg.events.IntEvents, os.Interrupt)
	defer signal.Stop(dbg.events.IntEvents)

	// wait at the prompt to begin with. the user starts the machine with the
	// RUN or STEP commands
	dbg.Pause()

	// the most recently reported machine fault. faults are reported at the
	// prompt just once
	var reportedFault error

	dbg.running = true
	for dbg.running {
		if dbg.state == govern.Running {
			dbg.waitService()

			// an os signal or terminal activity halts the machine. the
			// terminal keeps whatever has been typed so far, TermRead picks
			// it up
			select {
			case <-dbg.events.IntEvents:
				dbg.Pause()
			default:
				if dbg.term.TermReadCheck() {
					dbg.Pause()
				}
			}

			continue // for loop
		}

		if dbg.fault != nil && dbg.fault != reportedFault {
			dbg.printLine(terminal.StyleError, "%s", dbg.fault)
		}
		reportedFault = dbg.fault

		inputLen, err := dbg.term.TermRead(dbg.input, dbg.buildPrompt(), dbg.events)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF) || errors.Is(err, terminal.UserQuit):
				dbg.running = false
			case errors.Is(err, terminal.UserInterrupt):
				dbg.handleInterrupt()
			default:
				return err
			}
			continue // for loop
		}

		// TermRead can return zero bytes read, filter that out before
		// parsing. the last byte of the input is the line terminator
		if inputLen > 0 {
			if err := dbg.parseInput(string(dbg.input[:inputLen-1])); err != nil {
				dbg.printLine(terminal.StyleError, "%s", err)
			}
		}
	}

	return nil
}

// buildPrompt returns a prompt for the next call to TermRead(). The prompt
// leads with the instruction the machine will execute next.
func (dbg *Debugger) buildPrompt() terminal.Prompt {
	content := fmt.Sprintf("%04x", dbg.c8.PC)
	if e, ok := dbg.dsm.GetEntryByAddress(dbg.c8.PC); ok {
		content = fmt.Sprintf("%04x %s", e.Address, e.Mnemonic)
	}

	return terminal.Prompt{
		Content: content,
		Running: dbg.state == govern.Running,
	}
}

// handleInterrupt processes a UserInterrupt from the terminal. Interactive
// terminals ask for confirmation before the debugger quits.
func (dbg *Debugger) handleInterrupt() {
	if !dbg.term.IsInteractive() {
		dbg.running = false
		return
	}

	confirm := make([]byte, 1)
	_, err := dbg.term.TermRead(confirm, terminal.Prompt{Content: "really quit (y/n)"}, dbg.events)
	if err != nil {
		// another interrupt is treated as though 'y' was pressed
		if errors.Is(err, terminal.UserInterrupt) {
			confirm[0] = 'y'
		} else {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		dbg.running = false
	}
}
