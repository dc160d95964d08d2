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

package romfile

import _ "embed"

// ExampleName is the program name given to ExampleSource when it is built.
const ExampleName = "bounce"

// ExampleSource is a small but complete program in the source language. It
// bounces the zero glyph of the machine's font around the screen, beeping on
// every wall. The source editor starts out with this program loaded.
//
//go:embed "example.c8"
var ExampleSource string
