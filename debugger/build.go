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

	"github.com/jetsetilly/gopher8/assembler"
	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/compiler"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/lexer"
	"github.com/jetsetilly/gopher8/romfile"
)

// BuildStage identifies the point in the build pipeline at which a build
// failed.
type BuildStage int

// List of valid BuildStage values, in pipeline order.
const (
	StageLex BuildStage = iota
	StageCompile
	StageAssemble
	StageLoad
)

func (s BuildStage) String() string {
	switch s {
	case StageLex:
		return "lex"
	case StageCompile:
		return "compile"
	case StageAssemble:
		return "assemble"
	case StageLoad:
		return "load"
	}
	return "unknown"
}

// BuildError is returned when the build pipeline fails. The Stage field says
// how far the pipeline got before the failure.
type BuildError struct {
	Stage BuildStage
	Err   error
}

func (e BuildError) Error() string {
	return fmt.Sprintf("build: %s stage: %v", e.Stage, e.Err)
}

func (e BuildError) Unwrap() error {
	return e.Err
}

// BuildReport summarises the most recent successful build.
type BuildReport struct {
	// Name of the build. a filename if the source came from a file
	Name string

	// counts from the stages of the pipeline
	Tokens       int
	Instructions int

	// size in bytes of the assembled program
	Size int

	// Listing of the assembled program, same address layout as the machine
	Listing string
}

func (r BuildReport) String() string {
	return fmt.Sprintf("%s: %d tokens, %d instructions, %d bytes", r.Name, r.Tokens, r.Instructions, r.Size)
}

// SubmitSource runs program source through the build pipeline and loads the
// result into the machine. The stages run in order: lex, compile, assemble,
// load. A failure at any stage returns a BuildError and leaves the machine
// and the debugging maps exactly as they were.
//
// On success the line map relates machine addresses to lines of the
// submitted source, making sync windows against that source meaningful.
func (dbg *Debugger) SubmitSource(name string, src string) error {
	tokens, err := lexer.Lex(src)
	if err != nil {
		return BuildError{Stage: StageLex, Err: err}
	}

	prg, err := compiler.Compile(tokens)
	if err != nil {
		return BuildError{Stage: StageCompile, Err: err}
	}

	rom, err := assembler.Assemble(prg.Instructions)
	if err != nil {
		return BuildError{Stage: StageAssemble, Err: err}
	}

	if err := dbg.load(rom, prg.LineMap); err != nil {
		return BuildError{Stage: StageLoad, Err: err}
	}

	dbg.lastBuild = BuildReport{
		Name:         name,
		Tokens:       len(tokens),
		Instructions: len(prg.Instructions),
		Size:         len(rom),
		Listing:      assembler.Listing(rom),
	}

	return nil
}

// LoadROMBytes loads an assembled program into the machine, entering the
// build pipeline at the load stage. The program has no associated source so
// the line map is emptied; no sync window row will be active until source is
// next submitted.
func (dbg *Debugger) LoadROMBytes(rom []byte) error {
	if err := dbg.load(rom, nil); err != nil {
		return BuildError{Stage: StageLoad, Err: err}
	}
	return nil
}

// InsertFile loads a program from a file, building it first if the extension
// marks it as source. The file may be a local path or an HTTP/HTTPS URL.
func (dbg *Debugger) InsertFile(filename string) error {
	ldr := romfile.NewLoader(filename)
	if err := ldr.Load(); err != nil {
		return err
	}

	if ldr.IsSource() {
		return dbg.SubmitSource(ldr.ShortName(), string(ldr.Data))
	}

	return dbg.LoadROMBytes(ldr.Data)
}

// load replaces the machine program and both debugging maps. nothing is
// changed unless the ROM loads successfully and the two maps are never
// replaced independently of one another.
func (dbg *Debugger) load(rom []byte, lineMap map[uint16]int) error {
	if err := dbg.c8.LoadROM(rom); err != nil {
		return err
	}

	if lineMap == nil {
		lineMap = make(map[uint16]int)
	}

	dbg.dsm = disassembly.FromROM(rom)
	dbg.lineMap = lineMap
	dbg.lastROM = append([]byte(nil), rom...)
	dbg.keypad = [chip8.NumKeys]bool{}
	dbg.fault = nil

	return nil
}

// Reset returns the machine to its power-on state with the current program
// reloaded. The debugging maps still describe the program so they are left
// alone.
func (dbg *Debugger) Reset() error {
	if err := dbg.c8.LoadROM(dbg.lastROM); err != nil {
		return err
	}

	dbg.keypad = [chip8.NumKeys]bool{}
	dbg.fault = nil

	return nil
}
