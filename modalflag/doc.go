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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Whereas with flag.FlagSet you call Parse() with the array
// of strings as the only argument, with modalflag you first NewArgs() with
// the array of arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function.
//
// Flags are added before the call to Parse(). The returned pointer carries
// the parsed value afterwards:
//
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
// The important difference between the standard flag package and this one is
// the handling of modes. A mode is a command line argument that puts the
// program into a different mode of operation, in the manner of the go
// command's build, doc, test, etc. Each mode can have its own flags and
// expected arguments.
//
//	md.AddSubModes("run", "debug", "disasm", "build")
//
// Sub-mode comparisons are case insensitive and the first sub-mode in the
// list is the default, selected when the first argument matches no mode.
//
// A subsequent call to Parse() will process flags in the normal way and then
// check whether the next argument is one of these modes. Once the mode is
// known, NewMode() prepares the Modes struct for the flags of that mode and
// Parse() is called again:
//
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddFloat64("scale", 8.0, "display scale")
//		p, err := md.Parse()
//		...
//	}
//
// Modes can be chained as deep as required, each call to Parse() consuming
// the mode selector and leaving the remaining arguments for the next layer.
package modalflag
