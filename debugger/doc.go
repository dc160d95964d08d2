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

// Package debugger implements the controlling process of the CHIP-8
// workbench. Features include:
//
//   - pause, resume and single-step control of the machine
//   - building source programs and loading ROM binaries, with stage-scoped
//     diagnostics when a build fails
//   - disassembly of the loaded program, kept in step with the address to
//     source-line map produced by the compiler
//   - keypad mapping from a modern keyboard to the 4x4 virtual keypad
//   - machine state snapshots, in memory and on disk
//
// Initialisation of the debugger is done with the NewDebugger() function
//
//	dbg, _ := debugger.NewDebugger()
//
// The debugger is single-threaded: ticks, key events, build submissions and
// renders are all discrete function calls made from one goroutine. A frontend
// drives the emulation by calling Service() often; if the emulation is in the
// Running state and the tick period has elapsed, the machine is moved forward
// by exactly one tick.
//
// Interaction for terminal use is through the Terminal interface, defined in
// the terminal sub-package. The colorterm and plainterm sub-packages provide
// good reference implementations. The RunTerminal() function connects a
// Terminal to the debugger and loops until the user quits.
//
// A GUI frontend drives the same functions directly: Service(), Pause(),
// Resume(), Step(), KeyDown()/KeyUp(), SubmitSource() and RenderFrame().
package debugger
