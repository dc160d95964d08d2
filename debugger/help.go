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

// help contains the help text for the debugger's top level commands
var help = map[string]string{
	cmdHelp: "Lists commands and provides help for individual debugger commands",

	cmdQuit:  "Exits the debugger",
	cmdReset: "Reset the machine to its initial state with the current program reloaded",

	cmdRun:  "Run the machine until the next halt",
	cmdHalt: "Halt the machine",
	cmdStep: "Step the machine forward one instruction. Optional argument sets the number of instructions to step by",

	cmdRegisters: "Display the current machine registers",
	cmdDisasm:    "Print the disassembly of the current program",
	cmdMem:       "Display the page of machine RAM containing the specified address. The program counter page is displayed if no address is given",
	cmdLog:       "Print the application log. With the LAST argument only the most recent entry is printed",

	cmdBuild: "Build a source file and load the result into the machine",
	cmdLoad:  "Load a program into the machine (from file or URL). Source files are built first",

	cmdSave:    "Save a snapshot of the machine. With the DISK argument the snapshot survives the process",
	cmdRestore: "Return the machine to the most recently saved snapshot",
	cmdMemViz:  "Write a graphviz visualisation of the machine state to the specified file",
}
