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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function.
type Style int

// List of terminal styles.
const (
	// input to the terminal echoed back to the user. some terminal
	// implementations do this automatically in which case the style can be
	// ignored.
	StyleEcho Style = iota

	// help text
	StyleHelp

	// terminal output that responds to a user command
	StyleFeedback

	// information from the emulation itself. register values, disassembly
	// of the current instruction, etc.
	StyleInstrument

	// a recoverable error has occurred. errors are always printed even when
	// the terminal is silenced
	StyleError

	// the input prompt. terminal implementations that take care of prompting
	// themselves can ignore lines printed with this style
	StylePrompt
)

// IsPrompt returns true if the style is considered to be a prompt style.
func (sty Style) IsPrompt() bool {
	return sty == StylePrompt
}
