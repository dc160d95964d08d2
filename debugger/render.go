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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/chip8"
)

// Frame is a rendering of the machine at a single moment. All parts of the
// frame are derived from the same snapshot of the machine so they never
// disagree with one another.
type Frame struct {
	// Screen is the framebuffer as text. one row of the display per line,
	// '#' for a lit pixel and '.' for an unlit pixel
	Screen string

	// Registers is a multi-line summary of the machine registers
	Registers string

	// Window is the sync window from the program counter at the time of the
	// snapshot
	Window []SyncRow
}

// RenderFrame renders the machine into a Frame. Rendering does not disturb
// the machine; rendering twice without ticking the machine in between
// produces identical frames.
func (dbg *Debugger) RenderFrame(sel Selection) Frame {
	snap := dbg.c8.Snapshot()

	return Frame{
		Screen:    renderScreen(snap),
		Registers: renderRegisters(snap),
		Window:    dbg.syncWindowFromPC(snap.PC, sel),
	}
}

func renderScreen(snap *chip8.State) string {
	s := strings.Builder{}
	s.Grow((chip8.ScreenWidth + 1) * chip8.ScreenHeight)

	for y := 0; y < chip8.ScreenHeight; y++ {
		if y > 0 {
			s.WriteRune('\n')
		}
		for x := 0; x < chip8.ScreenWidth; x++ {
			if snap.Framebuffer[y*chip8.ScreenWidth+x] != 0 {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
	}

	return s.String()
}

func renderRegisters(snap *chip8.State) string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("pc=%04x i=%04x sp=%02x dt=%02x st=%02x", snap.PC, snap.I, snap.SP, snap.DelayTimer, snap.SoundTimer))

	for i, v := range snap.V {
		if i%8 == 0 {
			s.WriteRune('\n')
		} else {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("V%X=%02X", i, v))
	}

	return s.String()
}
