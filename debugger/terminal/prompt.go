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

import (
	"fmt"
	"strings"
)

// Prompt is created and passed to TermRead() by the debugger. The full prompt
// is built from the Content string by the String() function.
type Prompt struct {
	Content string

	// the emulation is running. a terminal implementation may choose to
	// indicate this in the prompt
	Running bool
}

func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[ %s ]", strings.TrimSpace(p.Content)))
	if p.Running {
		s.WriteString(" (running)")
	}
	s.WriteString(" >> ")
	return s.String()
}
