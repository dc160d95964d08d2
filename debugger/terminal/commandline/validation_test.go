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

package commandline_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/test"
)

func TestValidation_required(t *testing.T) {
	var cmds *commandline.Commands
	var err error

	cmds, err = commandline.ParseCommandTemplate([]string{"TEST [arg]"})
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, cmds.Validate("TEST arg foo"))
	test.ExpectSuccess(t, cmds.Validate("TEST arg"))
	test.ExpectFailure(t, cmds.Validate("TEST"))
}

func TestValidation_optional(t *testing.T) {
	var cmds *commandline.Commands
	var err error

	cmds, err = commandline.ParseCommandTemplate([]string{"TEST (arg)"})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate("TEST"))
	test.ExpectSuccess(t, cmds.Validate("TEST arg"))
	test.ExpectFailure(t, cmds.Validate("TEST arg foo"))
	test.ExpectFailure(t, cmds.Validate("TEST foo"))

	cmds, err = commandline.ParseCommandTemplate([]string{"TEST (arg [%S]|bar)"})
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, cmds.Validate("TEST xxxxx"))
}

func TestValidation_branchesAndNumeric(t *testing.T) {
	var cmds *commandline.Commands
	var err error

	cmds, err = commandline.ParseCommandTemplate([]string{"TEST (arg [%N]|foo)"})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate("TEST"))
	test.ExpectFailure(t, cmds.Validate("TEST arg"))

	// numeric argument matching
	test.ExpectSuccess(t, cmds.Validate("TEST arg 10"))

	// failing a numeric argument match
	test.ExpectFailure(t, cmds.Validate("TEST arg bar"))

	// ---------------

	cmds, err = commandline.ParseCommandTemplate([]string{"TEST (arg|foo) %N"})
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, cmds.Validate("TEST arg"))
	test.ExpectSuccess(t, cmds.Validate("TEST arg 10"))
	test.ExpectSuccess(t, cmds.Validate("TEST 10"))
}

func TestValidation_hexNotation(t *testing.T) {
	var cmds *commandline.Commands
	var err error

	cmds, err = commandline.ParseCommandTemplate([]string{"TEST %N"})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate("TEST 0x220"))
	test.ExpectSuccess(t, cmds.Validate("TEST $220"))
	test.ExpectFailure(t, cmds.Validate("TEST $wibble"))
}

func TestValidation_deepBranches(t *testing.T) {
	var cmds *commandline.Commands
	var err error

	// numeric argument matching with an option for a specific keyword
	cmds, err = commandline.ParseCommandTemplate([]string{"TEST (arg [%N|bar]|foo)"})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate("TEST arg bar"))
	test.ExpectFailure(t, cmds.Validate("TEST arg foo"))
}

func TestValidation_tripleBranches(t *testing.T) {
	var cmds *commandline.Commands
	var err error

	cmds, err = commandline.ParseCommandTemplate([]string{"TEST (arg|foo|bar) wibble"})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate("TEST foo wibble"))
	test.ExpectSuccess(t, cmds.Validate("TEST bar wibble"))
	test.ExpectSuccess(t, cmds.Validate("TEST wibble"))
}

func TestValidation_doubleArgs(t *testing.T) {
	var cmds *commandline.Commands
	var err error

	cmds, err = commandline.ParseCommandTemplate([]string{"TEST (nug nog|egg|cream) (tug)"})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate("TEST nug nog"))
	test.ExpectSuccess(t, cmds.Validate("TEST egg tug"))
	test.ExpectSuccess(t, cmds.Validate("TEST nug nog tug"))

	// ---------------

	cmds, err = commandline.ParseCommandTemplate([]string{"TEST (egg|fog|nug nog|big) (tug)"})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate("TEST nug nog"))
	test.ExpectSuccess(t, cmds.Validate("TEST fog tug"))
	test.ExpectSuccess(t, cmds.Validate("TEST nug nog tug"))
}

func TestValidation_filenameFirstArg(t *testing.T) {
	var cmds *commandline.Commands
	var err error

	cmds, err = commandline.ParseCommandTemplate([]string{"TEST [%F|foo [wibble]|bar]"})
	test.DemandSuccess(t, err)

	// a filename placeholder matches anything but an exact keyword match in
	// one of the branches is preferred
	test.ExpectSuccess(t, cmds.Validate("TEST foo wibble"))
	test.ExpectSuccess(t, cmds.Validate("TEST some.rom"))
	test.ExpectFailure(t, cmds.Validate("TEST some.rom wibble"))
}

func TestValidation_nestedGroups(t *testing.T) {
	var cmds *commandline.Commands
	var err error

	cmds, err = commandline.ParseCommandTemplate([]string{"TEST [(foo|baz)|bar]"})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate("TEST foo"))
	test.ExpectSuccess(t, cmds.Validate("TEST bar"))
	test.ExpectFailure(t, cmds.Validate("TEST wibble"))

	cmds, err = commandline.ParseCommandTemplate([]string{"TEST (foo|[bar|(baz|qux)]|wibble)"})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate("TEST foo"))
	test.ExpectSuccess(t, cmds.Validate("TEST wibble"))
	test.ExpectSuccess(t, cmds.Validate("TEST bar"))
}

func TestValidation_optionalGroup(t *testing.T) {
	var cmds *commandline.Commands
	var err error

	cmds, err = commandline.ParseCommandTemplate([]string{
		"TRACE [SET|NO|TOGGLE] [READS|WRITES]",
	})
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, cmds.Validate("trace"))
	test.ExpectFailure(t, cmds.Validate("trace set"))
	test.ExpectSuccess(t, cmds.Validate("trace set reads"))

	// same as above except that the required argument sequence, in its
	// entirety, is optional

	cmds, err = commandline.ParseCommandTemplate([]string{
		"TRACE ([SET|NO|TOGGLE] [READS|WRITES])",
	})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate("trace"))
	test.ExpectFailure(t, cmds.Validate("trace set"))
	test.ExpectSuccess(t, cmds.Validate("trace set reads"))
}

func TestValidation_caseInsensitive(t *testing.T) {
	var cmds *commandline.Commands
	var err error

	cmds, err = commandline.ParseCommandTemplate([]string{
		"LIST",
		"PRINT [%S]",
		"SORT (RISING|FALLING)",
	})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate("list"))
	test.ExpectSuccess(t, cmds.Validate("sort falling"))
	test.ExpectFailure(t, cmds.Validate("sort sideways"))
}
