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
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/romfile"
)

// debuggerCommands is the parsed form of commandTemplate
var debuggerCommands *commandline.Commands

// this init() function "compiles" the commandTemplate above into a more
// usable form. it will cause the program to fail if the template is invalid.
func init() {
	var err error

	debuggerCommands, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		panic(err)
	}

	err = debuggerCommands.AddHelp(cmdHelp, help)
	if err != nil {
		panic(err)
	}

	sort.Stable(debuggerCommands)
}

// parseInput splits the input into individual commands. each command is then
// passed to parseCommand for processing
func (dbg *Debugger) parseInput(input string) error {
	// ignore comments
	if strings.HasPrefix(input, "#") {
		return nil
	}

	// divide input if necessary
	commands := strings.Split(input, ";")

	for i := 0; i < len(commands); i++ {
		if err := dbg.parseCommand(commands[i]); err != nil {
			return err
		}
	}

	return nil
}

// parseCommand tokenises a single command and acts upon it. validation
// against the command template happens first so the handlers below can use
// the token stream without further checking.
func (dbg *Debugger) parseCommand(input string) error {
	tokens := commandline.TokeniseInput(input)
	if tokens.Len() == 0 {
		return nil
	}

	if err := debuggerCommands.ValidateTokens(tokens); err != nil {
		return err
	}

	// validation normalises keywords to uppercase
	tokens.Reset()
	command, _ := tokens.Get()

	switch command {
	case cmdHelp:
		keyword, ok := tokens.Get()
		if ok {
			dbg.printLine(terminal.StyleHelp, "%s", debuggerCommands.Help(keyword))
		} else {
			dbg.printLine(terminal.StyleHelp, "%s", debuggerCommands.HelpOverview())
		}

	case cmdQuit:
		dbg.running = false

	case cmdReset:
		if err := dbg.Reset(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdRun:
		dbg.Resume()

	case cmdHalt:
		dbg.Pause()

	case cmdStep:
		count := 1
		if tok, ok := tokens.Get(); ok {
			n, _ := strconv.ParseInt(tok, 0, 32)
			count = int(n)
		}

		// stepping halts the machine even when the count is zero
		dbg.Pause()

		for i := 0; i < count; i++ {
			pc := dbg.c8.PC
			if err := dbg.Step(); err != nil {
				return err
			}
			if e, ok := dbg.dsm.GetEntryByAddress(pc); ok {
				dbg.printLine(terminal.StyleInstrument, "%s", e.String())
			} else {
				dbg.printLine(terminal.StyleInstrument, "%04x", pc)
			}
		}

	case cmdRegisters:
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.RenderFrame(NoSelection).Registers)

	case cmdDisasm:
		s := strings.Builder{}
		if err := dbg.dsm.Write(&s); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "%s", strings.TrimRight(s.String(), "\n"))

	case cmdMem:
		addr := dbg.c8.PC
		if tok, ok := tokens.Get(); ok {
			n, _ := strconv.ParseInt(tok, 0, 32)
			addr = uint16(n)
		}
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.memPage(addr))

	case cmdLog:
		s := strings.Builder{}
		if _, ok := tokens.Get(); ok {
			logger.Tail(&s, 1)
		} else {
			logger.Write(&s)
		}
		if s.Len() > 0 {
			dbg.printLine(terminal.StyleFeedback, "%s", strings.TrimRight(s.String(), "\n"))
		}

	case cmdBuild:
		filename, _ := tokens.Get()
		ldr := romfile.NewLoader(filename)
		if err := ldr.Load(); err != nil {
			return err
		}
		if err := dbg.SubmitSource(ldr.ShortName(), string(ldr.Data)); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.lastBuild.String())

	case cmdLoad:
		filename, _ := tokens.Get()
		if err := dbg.InsertFile(filename); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "machine reset with new program (%s)", filename)

	case cmdSave:
		if _, ok := tokens.Get(); ok {
			if err := dbg.SaveStateToDisk(); err != nil {
				return err
			}
			dbg.printLine(terminal.StyleFeedback, "machine state saved to disk")
		} else {
			dbg.SaveState()
			dbg.printLine(terminal.StyleFeedback, "machine state saved")
		}

	case cmdRestore:
		if _, ok := tokens.Get(); ok {
			if err := dbg.RestoreStateFromDisk(); err != nil {
				return err
			}
		} else {
			if err := dbg.RestoreState(); err != nil {
				return err
			}
		}
		dbg.printLine(terminal.StyleFeedback, "machine state restored")

	case cmdMemViz:
		filename, _ := tokens.Get()
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("debugger: %w", err)
		}
		defer f.Close()
		memviz.Map(f, dbg.c8.Snapshot())
		dbg.printLine(terminal.StyleFeedback, "machine state visualisation written to %s", filename)
	}

	return nil
}

// memPage returns the page of machine RAM containing the address, formatted
// in rows of sixteen bytes. addresses wrap at the top of the 12 bit range,
// as they do in the machine itself.
func (dbg *Debugger) memPage(addr uint16) string {
	page := addr & 0x0f00

	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := uint16(0); y < 16; y++ {
		s.WriteString(fmt.Sprintf("%03x- |", page+(y*16)))
		for x := uint16(0); x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", dbg.c8.Peek(page+(y*16)+x)))
		}
		s.WriteString("\n")
	}

	return strings.Trim(s.String(), "\n")
}
