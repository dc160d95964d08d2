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

package romfile_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/assembler"
	"github.com/jetsetilly/gopher8/compiler"
	"github.com/jetsetilly/gopher8/lexer"
	"github.com/jetsetilly/gopher8/romfile"
	"github.com/jetsetilly/gopher8/test"
)

// the example program ships with the source editor so it must always build
func TestExampleBuilds(t *testing.T) {
	tokens, err := lexer.Lex(romfile.ExampleSource)
	test.DemandSuccess(t, err)

	prg, err := compiler.Compile(tokens)
	test.DemandSuccess(t, err)

	rom, err := assembler.Assemble(prg.Instructions)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, len(rom) > 0)
	test.ExpectSuccess(t, len(rom)%2 == 0)

	// the program must fit in machine memory alongside the system area
	test.ExpectSuccess(t, len(rom) <= 4096-512)
}
