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

// Package chip8 is the base package for the emulation of the CHIP-8 machine.
// Creation is with NewChip8()
//
//	c8 := chip8.NewChip8()
//
// A program is loaded with the LoadROM() function, which also resets the
// machine. Once loaded the emulation is advanced one instruction at a time
// with the Tick() function. Tick() returns an error if the instruction could
// not be decoded or if an attached AudioMixer fails. The machine itself is
// left in a stable state in either case and the caller can decide what to do
// next.
//
// All machine state is held in the embedded State type. Fields in the State
// type can be read freely by a monitoring process, a debugging GUI for
// example. The Snapshot() and Plumb() functions copy and restore the entire
// machine state in one go.
//
// The package does not impose a clock. The rate at which Tick() is called is
// entirely up to the driving process. Note however, that the delay and sound
// timers decay once per Tick() and not at the 60Hz rate seen in other CHIP-8
// implementations.
package chip8
