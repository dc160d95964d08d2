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

package commandline

import (
	"fmt"
	"strings"
)

// Commands is the root of the parsed command tree.
type Commands struct {
	Index map[string]*node

	cmds []*node

	helpCommand string
	helpCols    int
	helpColFmt  string
	helps       map[string]string
}

// Len implements the sort package interface.
func (cmds Commands) Len() int {
	return len(cmds.cmds)
}

// Less implements the sort package interface.
func (cmds Commands) Less(i int, j int) bool {
	return cmds.cmds[i].tag < cmds.cmds[j].tag
}

// Swap implements the sort package interface.
func (cmds Commands) Swap(i int, j int) {
	cmds.cmds[i], cmds.cmds[j] = cmds.cmds[j], cmds.cmds[i]
}

// String returns the definitions of all the commands in the command tree, one
// command per line.
func (cmds Commands) String() string {
	s := strings.Builder{}
	for c := range cmds.cmds {
		s.WriteString(cmds.cmds[c].String())
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

// AddHelp adds a help command to an already prepared Commands type. It uses
// the top-level commands of the Commands instance as the arguments for the
// specified helpCommand.
func (cmds *Commands) AddHelp(helpCommand string, helps map[string]string) error {
	if _, ok := cmds.Index[helpCommand]; ok {
		return fmt.Errorf("commandline: %s: already defined", helpCommand)
	}

	// keep reference to the help text
	cmds.helps = helps

	// the help command is the help keyword followed by every other command as
	// an optional argument
	defn := strings.Builder{}
	defn.WriteString(helpCommand)
	defn.WriteString(" (")

	longest := 0
	for i := range cmds.cmds {
		if i > 0 {
			defn.WriteString("|")
		}
		defn.WriteString(cmds.cmds[i].tag)
		if len(cmds.cmds[i].tag) > longest {
			longest = len(cmds.cmds[i].tag)
		}
	}

	// the help command can ask for help about itself
	defn.WriteString("|")
	defn.WriteString(helpCommand)
	defn.WriteString(")")

	p, d, err := parseDefinition(defn.String())
	if err != nil {
		return fmt.Errorf("commandline: %s: %v (char %d)", helpCommand, err, d)
	}

	cmds.cmds = append(cmds.cmds, p)
	cmds.Index[p.tag] = p

	// record sizing information for the help overview
	cmds.helpCommand = p.tag
	cmds.helpCols = 80 / (longest + 3)
	if cmds.helpCols < 1 {
		cmds.helpCols = 1
	}
	cmds.helpColFmt = fmt.Sprintf("%%%ds", longest+3)

	return nil
}

// HelpOverview returns a columnised list of the available commands.
func (cmds Commands) HelpOverview() string {
	s := strings.Builder{}
	for c := range cmds.cmds {
		s.WriteString(fmt.Sprintf(cmds.helpColFmt, cmds.cmds[c].tag))
		if c%cmds.helpCols == cmds.helpCols-1 {
			s.WriteString("\n")
		}
	}
	return strings.TrimRight(s.String(), "\n")
}

// Help returns the help text for the specified keyword, along with the usage
// for the corresponding command.
func (cmds Commands) Help(keyword string) string {
	keyword = strings.ToUpper(keyword)

	s := strings.Builder{}

	if txt, ok := cmds.helps[keyword]; ok {
		s.WriteString(txt)
		if cmd, ok := cmds.Index[keyword]; ok {
			s.WriteString("\n\n  Usage: ")
			s.WriteString(cmd.String())
		}
	} else {
		s.WriteString(fmt.Sprintf("no help for %s", keyword))
	}

	return s.String()
}
