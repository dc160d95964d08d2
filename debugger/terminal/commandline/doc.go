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

// Package commandline facilitates parsing of command line input. Given a
// command template, it can be used to tokenise and validate user input. It
// also functions as a tab completion engine, implementing the
// terminal.TabCompletion interface.
//
// The Commands type is the base product of the package. To create an instance
// of Commands, use ParseCommandTemplate() with a suitable template. See the
// function documentation for syntax. An example template would be:
//
//	template := []string{
//		"RUN",
//		"STEP (%N)",
//		"LOAD %F",
//	}
//
// Once parsed, the resulting Commands instance can be used to validate input.
//
//	cmds, _ := ParseCommandTemplate(template)
//	toks := TokeniseInput("step 5")
//	err := cmds.ValidateTokens(toks)
//	if err != nil {
//		panic("validation failed")
//	}
//
// Note that all validation is case-insensitive. Once validated the tokens can
// be processed and acted upon. Validation normalises keywords to uppercase so
// a switch on the retrieved token can be written concisely:
//
//	toks.Reset()
//	command, _ := toks.Get()
//	switch command {
//	case "RUN":
//		run()
//	case "STEP":
//		if n, ok := toks.Get(); ok {
//			step(n)
//		}
//	case "LOAD":
//		file, _ := toks.Get()
//		load(file)
//	}
//
// The TabCompletion type transforms input such that it more closely resembles
// a valid command according to the supplied template. The NewTabCompletion()
// function expects an instance of Commands.
//
//	tbc := NewTabCompletion(cmds)
//
// The Complete() function can then be used to transform user input:
//
//	inp := "ST"
//	inp = tbc.Complete(inp)
//
// In this instance the value of inp will be "STEP " (note the trailing
// space). Given a number of options to use for the completion, the first
// option will be returned first followed by the second, third, etc. on
// subsequent calls to Complete(). A tab completion session can be terminated
// with a call to Reset().
package commandline
