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

// Package govern defines the types that define the operating condition of the
// emulation at the highest level.
package govern

// Mode inidicates the primary operating mode of the emulation.
type Mode int

// List of defined modes.
const (
	ModeNone Mode = iota
	ModePlay
	ModeDebugger
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModePlay:
		return "play"
	case ModeDebugger:
		return "debugger"
	}

	return ""
}

// State indicates whether the emulation is ticking the machine forward or
// whether it is paused. There is no "stepping" state: a step is an atomic
// operation that begins and ends in the Paused state.
type State int

// List of defined states.
//
// The Paused state is the zero value but note that the emulation begins in
// the Running state. A newly created debugger sets the state explicitly.
const (
	Paused State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Running:
		return "running"
	}

	return ""
}
