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

// debugger keywords
const (
	cmdHelp = "HELP"

	cmdQuit  = "QUIT"
	cmdReset = "RESET"

	cmdRun  = "RUN"
	cmdHalt = "HALT"
	cmdStep = "STEP"

	cmdRegisters = "REGISTERS"
	cmdDisasm    = "DISASM"
	cmdMem       = "MEM"
	cmdLog       = "LOG"

	cmdBuild = "BUILD"
	cmdLoad  = "LOAD"

	cmdSave    = "SAVE"
	cmdRestore = "RESTORE"
	cmdMemViz  = "MEMVIZ"
)

var commandTemplate = []string{
	cmdQuit,
	cmdReset,

	cmdRun,
	cmdHalt,
	cmdStep + " (%N)",

	cmdRegisters,
	cmdDisasm,
	cmdMem + " (%N)",
	cmdLog + " (LAST)",

	cmdBuild + " %F",
	cmdLoad + " %F",

	cmdSave + " (DISK)",
	cmdRestore + " (DISK)",
	cmdMemViz + " %F",
}
