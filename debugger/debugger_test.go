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

package debugger_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/test"
)

type mockTerm struct {
	t      *testing.T
	inp    chan string
	out    chan string
	output []string
}

func newMockTerm(t *testing.T) *mockTerm {
	trm := &mockTerm{
		t:   t,
		inp: make(chan string),
		out: make(chan string, 100),
	}
	return trm
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) RegisterTabCompletion(_ terminal.TabCompletion) {
}

func (trm *mockTerm) Silence(_ bool) {
}

func (trm *mockTerm) TermRead(buffer []byte, _ terminal.Prompt, _ *terminal.ReadEvents) (int, error) {
	s := <-trm.inp
	copy(buffer, s)
	return len(s) + 1, nil
}

func (trm *mockTerm) TermReadCheck() bool {
	return false
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleEcho {
		return
	}

	trm.out <- s
}

func (trm *mockTerm) sndInput(s string) {
	trm.output = make([]string, 0, 10)
	trm.inp <- s
}

func (trm *mockTerm) rcvOutput() {
	empty := false
	for !empty {
		select {
		case s := <-trm.out:
			trm.output = append(trm.output, s)

		// the amount of output sent by the debugger is unpredictable so a
		// timeout is necessary. a matter of milliseconds should be sufficient
		case <-time.After(10 * time.Millisecond):
			empty = true
		}
	}
}

// cmpOutput compares the string argument with the *last line* of the most
// recent output. it can easily be adapted to compare the whole output if
// necessary.
func (trm *mockTerm) cmpOutput(s string) {
	trm.rcvOutput()

	if len(trm.output) == 0 {
		if len(s) != 0 {
			trm.t.Errorf("unexpected debugger output (nothing) should be (%s)", s)
		}
		return
	}

	l := len(trm.output) - 1

	if trm.output[l] == s {
		return
	}

	trm.t.Errorf("unexpected debugger output (%s) should be (%s)", trm.output[l], s)
}

func newTestDebugger(t *testing.T) *debugger.Debugger {
	t.Helper()
	dbg, err := debugger.NewDebugger()
	test.DemandSuccess(t, err)
	return dbg
}

func TestDebugger_initialState(t *testing.T) {
	dbg := newTestDebugger(t)

	test.ExpectEquality(t, dbg.State(), govern.Running)
	test.ExpectSuccess(t, dbg.LastFault() == nil)

	f := dbg.RenderFrame(debugger.NoSelection)
	test.ExpectEquality(t, len(f.Window), debugger.WindowRows)
	test.ExpectSuccess(t, !strings.Contains(f.Screen, "#"), "screen should be blank")
}

func TestDebugger_stepping(t *testing.T) {
	dbg := newTestDebugger(t)
	test.DemandSuccess(t, dbg.LoadROMBytes([]byte{0x60, 0x0a, 0x61, 0x14}))
	test.ExpectEquality(t, dbg.Mach().PC, uint16(0x0200))

	test.DemandSuccess(t, dbg.Step())
	test.ExpectEquality(t, dbg.State(), govern.Paused)
	test.ExpectEquality(t, dbg.Mach().PC, uint16(0x0202))
	test.ExpectEquality(t, dbg.Mach().V[0], uint8(0x0a))

	test.DemandSuccess(t, dbg.Step())
	test.ExpectEquality(t, dbg.Mach().PC, uint16(0x0204))
	test.ExpectEquality(t, dbg.Mach().V[1], uint8(0x14))
}

func TestDebugger_pauseResume(t *testing.T) {
	dbg := newTestDebugger(t)
	test.ExpectEquality(t, dbg.State(), govern.Running)

	dbg.Pause()
	test.ExpectEquality(t, dbg.State(), govern.Paused)

	// pausing a paused machine does nothing
	dbg.Pause()
	test.ExpectEquality(t, dbg.State(), govern.Paused)

	// resume toggles
	dbg.Resume()
	test.ExpectEquality(t, dbg.State(), govern.Running)
	dbg.Resume()
	test.ExpectEquality(t, dbg.State(), govern.Paused)
}

func TestDebugger_fault(t *testing.T) {
	dbg := newTestDebugger(t)
	test.DemandSuccess(t, dbg.LoadROMBytes([]byte{0x00, 0x01}))

	err := dbg.Step()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, dbg.State(), govern.Paused)
	test.ExpectSuccess(t, dbg.LastFault() == err)

	// resuming forgets the fault
	dbg.Resume()
	test.ExpectEquality(t, dbg.State(), govern.Running)
	test.ExpectSuccess(t, dbg.LastFault() == nil)
}

func TestDebugger_faultWhileRunning(t *testing.T) {
	dbg := newTestDebugger(t)
	test.DemandSuccess(t, dbg.LoadROMBytes([]byte{0x00, 0x01}))
	test.ExpectEquality(t, dbg.State(), govern.Running)

	// the first tick of the machine faults and the machine halts. the only
	// question is when the ticker next fires
	deadline := time.Now().Add(time.Second)
	for dbg.State() == govern.Running && time.Now().Before(deadline) {
		dbg.Service()
	}

	test.ExpectEquality(t, dbg.State(), govern.Paused)
	test.ExpectFailure(t, dbg.LastFault())
}

func TestDebugger_buildPipeline(t *testing.T) {
	dbg := newTestDebugger(t)

	test.DemandSuccess(t, dbg.SubmitSource("test", "var x = 10;\nvar y = 20;\n"))
	test.ExpectEquality(t, dbg.Mach().PC, uint16(0x0200))
	test.ExpectEquality(t, dbg.Mach().Peek(0x0200), uint8(0x60))
	test.ExpectEquality(t, dbg.Mach().Peek(0x0201), uint8(0x0a))
	test.ExpectEquality(t, dbg.Mach().Peek(0x0202), uint8(0x61))
	test.ExpectEquality(t, dbg.Mach().Peek(0x0203), uint8(0x14))

	report := dbg.LastBuild()
	test.ExpectEquality(t, report.Name, "test")
	test.ExpectEquality(t, report.Instructions, 2)
	test.ExpectEquality(t, report.Size, 4)
	test.ExpectSuccess(t, strings.Contains(report.Listing, "LD V0, A"))
}

func TestDebugger_buildFailure(t *testing.T) {
	dbg := newTestDebugger(t)

	test.DemandSuccess(t, dbg.SubmitSource("good", "var x = 10;\n"))
	test.DemandSuccess(t, dbg.Step())
	test.ExpectEquality(t, dbg.Mach().PC, uint16(0x0202))

	sel := debugger.Selection{StartLine: 0, EndLine: 0}
	winBefore := dbg.SyncWindow(sel)

	// a lex stage failure
	err := dbg.SubmitSource("bad", "var @ = 10;\n")
	test.DemandFailure(t, err)

	var be debugger.BuildError
	test.ExpectSuccess(t, errors.As(err, &be))
	test.ExpectEquality(t, be.Stage, debugger.StageLex)

	// a compile stage failure
	err = dbg.SubmitSource("bad", "var ;\n")
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, errors.As(err, &be))
	test.ExpectEquality(t, be.Stage, debugger.StageCompile)

	// the machine and the debugging maps are exactly as they were
	test.ExpectEquality(t, dbg.Mach().PC, uint16(0x0202))
	test.ExpectEquality(t, dbg.Mach().V[0], uint8(10))

	winAfter := dbg.SyncWindow(sel)
	for i := range winAfter {
		test.ExpectEquality(t, winAfter[i], winBefore[i], i)
	}

	// the build report still describes the last good build
	test.ExpectEquality(t, dbg.LastBuild().Name, "good")

	// resetting reloads the last good program. the window seen from the load
	// address proves both maps survived the failed builds
	test.DemandSuccess(t, dbg.Reset())
	test.ExpectEquality(t, dbg.Mach().PC, uint16(0x0200))

	win := dbg.SyncWindow(sel)
	test.ExpectEquality(t, win[0].Mnemonic, "LD V0, A")
	test.ExpectSuccess(t, win[0].Active)
}

func TestDebugger_syncWindow(t *testing.T) {
	dbg := newTestDebugger(t)
	test.DemandSuccess(t, dbg.SubmitSource("sync", "var x = 10;\nvar y = 20;\nvar z = 30;\n"))

	win := dbg.SyncWindow(debugger.Selection{StartLine: 0, EndLine: 1})
	test.DemandEquality(t, len(win), debugger.WindowRows)

	test.ExpectEquality(t, win[0].Address, uint16(0x0200))
	test.ExpectEquality(t, win[0].Mnemonic, "LD V0, A")
	test.ExpectSuccess(t, win[0].Active)

	test.ExpectEquality(t, win[1].Address, uint16(0x0202))
	test.ExpectEquality(t, win[1].Mnemonic, "LD V1, 14")
	test.ExpectSuccess(t, win[1].Active)

	// line 2 is outside the selection
	test.ExpectEquality(t, win[2].Mnemonic, "LD V2, 1E")
	test.ExpectSuccess(t, !win[2].Active)

	// beyond the end of the program there is nothing to show
	test.ExpectEquality(t, win[3].Mnemonic, "")
	test.ExpectSuccess(t, !win[3].Active)

	// no selection, no active rows
	for i, row := range dbg.SyncWindow(debugger.NoSelection) {
		test.ExpectSuccess(t, !row.Active, i)
	}

	// programs loaded without source have no line information so no row can
	// ever be active
	test.DemandSuccess(t, dbg.LoadROMBytes([]byte{0x60, 0x0a}))
	for i, row := range dbg.SyncWindow(debugger.Selection{StartLine: 0, EndLine: 100}) {
		test.ExpectSuccess(t, !row.Active, i)
	}
}

func TestDebugger_keypad(t *testing.T) {
	dbg := newTestDebugger(t)

	dbg.KeyDown('1')
	test.ExpectSuccess(t, dbg.Keypad()[0x1])
	test.ExpectSuccess(t, dbg.Mach().Keys[0x1])

	// a repeat press changes nothing
	dbg.KeyDown('1')
	test.ExpectSuccess(t, dbg.Keypad()[0x1])

	dbg.KeyUp('1')
	test.ExpectSuccess(t, !dbg.Keypad()[0x1])
	test.ExpectSuccess(t, !dbg.Mach().Keys[0x1])

	// upper case maps the same as lower case
	dbg.KeyDown('Q')
	test.ExpectSuccess(t, dbg.Keypad()[0x4])
	dbg.KeyUp('q')
	test.ExpectSuccess(t, !dbg.Keypad()[0x4])

	// 'x' is keypad key zero
	dbg.KeyDown('x')
	test.ExpectSuccess(t, dbg.Keypad()[0x0])
	dbg.KeyUp('x')

	// runes with no keypad mapping are ignored
	dbg.KeyDown('9')
	dbg.KeyDown(' ')
	for i, k := range dbg.Keypad() {
		test.ExpectSuccess(t, !k, i)
	}
}

func TestDebugger_renderFrame(t *testing.T) {
	dbg := newTestDebugger(t)
	test.DemandSuccess(t, dbg.SubmitSource("render", "var x = 10;\n"))
	test.DemandSuccess(t, dbg.Step())

	// rendering twice without ticking produces identical frames
	f1 := dbg.RenderFrame(debugger.NoSelection)
	f2 := dbg.RenderFrame(debugger.NoSelection)
	test.ExpectEquality(t, f1.Screen, f2.Screen)
	test.ExpectEquality(t, f1.Registers, f2.Registers)

	test.ExpectSuccess(t, strings.Contains(f1.Registers, "pc=0202"))
	test.ExpectSuccess(t, strings.Contains(f1.Registers, "V0=0A"))

	rows := strings.Split(f1.Screen, "\n")
	test.DemandEquality(t, len(rows), chip8.ScreenHeight)
	test.ExpectEquality(t, len(rows[0]), chip8.ScreenWidth)
}

func TestDebugger_snapshot(t *testing.T) {
	dbg := newTestDebugger(t)

	// nothing to restore yet
	err := dbg.RestoreState()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, err.Error(), "debugger: no saved state")

	test.DemandSuccess(t, dbg.LoadROMBytes([]byte{0x60, 0x0a, 0x61, 0x14}))
	test.DemandSuccess(t, dbg.Step())
	dbg.SaveState()

	test.DemandSuccess(t, dbg.Step())
	test.ExpectEquality(t, dbg.Mach().PC, uint16(0x0204))

	test.DemandSuccess(t, dbg.RestoreState())
	test.ExpectEquality(t, dbg.Mach().PC, uint16(0x0202))
	test.ExpectEquality(t, dbg.Mach().V[0], uint8(0x0a))
	test.ExpectEquality(t, dbg.Mach().V[1], uint8(0x00))

	// the slot is kept so the snapshot can be restored repeatedly
	test.DemandSuccess(t, dbg.Step())
	test.DemandSuccess(t, dbg.RestoreState())
	test.ExpectEquality(t, dbg.Mach().PC, uint16(0x0202))
}

func TestDebugger_insertFile(t *testing.T) {
	dbg := newTestDebugger(t)
	dir := t.TempDir()

	// source files are built
	src := filepath.Join(dir, "prog.c8")
	test.DemandSuccess(t, os.WriteFile(src, []byte("var x = 10;\n"), 0644))
	test.DemandSuccess(t, dbg.InsertFile(src))
	test.ExpectEquality(t, dbg.Mach().Peek(0x0200), uint8(0x60))
	test.ExpectEquality(t, dbg.LastBuild().Name, "prog")

	// anything else loads as a ROM
	rom := filepath.Join(dir, "prog.ch8")
	test.DemandSuccess(t, os.WriteFile(rom, []byte{0x61, 0x14}, 0644))
	test.DemandSuccess(t, dbg.InsertFile(rom))
	test.ExpectEquality(t, dbg.Mach().Peek(0x0200), uint8(0x61))

	test.ExpectFailure(t, dbg.InsertFile(filepath.Join(dir, "missing.ch8")))
}

func TestDebugger_tickRate(t *testing.T) {
	dbg := newTestDebugger(t)

	test.DemandSuccess(t, dbg.SetTickHz(60))
	test.ExpectEquality(t, dbg.TickPeriod(), time.Second/60)

	// an illegal rate is rejected and the old rate is kept
	test.ExpectFailure(t, dbg.SetTickHz(0))
	test.ExpectEquality(t, dbg.TickPeriod(), time.Second/60)

	test.DemandSuccess(t, dbg.SetTickHz(chip8.ClockHz))
}

func (trm *mockTerm) testSequence() {
	defer func() { trm.sndInput("QUIT") }()

	trm.sndInput("STEP")
	trm.cmpOutput("0200  600a  LD V0, A")

	trm.sndInput("STEP")
	trm.cmpOutput("0202  1200  JP 200")

	// the program loops so a counted step ends back on the jump
	trm.sndInput("STEP 2")
	trm.cmpOutput("0202  1200  JP 200")

	trm.sndInput("RESET")
	trm.cmpOutput("machine reset")

	trm.sndInput("NOSUCHCOMMAND")
	trm.cmpOutput("unrecognised command (NOSUCHCOMMAND)")

	trm.sndInput("MEM")
	trm.rcvOutput()
}

func TestDebugger_terminal(t *testing.T) {
	trm := newMockTerm(t)

	dbg, err := debugger.NewDebugger()
	if err != nil {
		t.Fatalf(err.Error())
	}

	if err := dbg.LoadROMBytes([]byte{0x60, 0x0a, 0x12, 0x00}); err != nil {
		t.Fatalf(err.Error())
	}

	go trm.testSequence()

	if err := dbg.RunTerminal(trm); err != nil {
		t.Fatalf(err.Error())
	}
}
