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

package sdlimgui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/gopher8/debugger/govern"
)

const winRegistersTitle = "Registers"

// winRegisters shows the machine registers. the values can be edited when
// the machine is paused.
type winRegisters struct {
	windowManagement
	img *SdlImgui
}

func newWinRegisters(img *SdlImgui) window {
	return &winRegisters{img: img}
}

func (win *winRegisters) init() {
}

func (win *winRegisters) id() string {
	return winRegistersTitle
}

func (win *winRegisters) draw() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 553, Y: 28}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV(winRegistersTitle, &win.open, imgui.WindowFlagsAlwaysAutoResize)
	defer imgui.End()

	c8 := win.img.dbg.Mach()

	win.drawReg("PC", 4, false, uint64(c8.PC), func(v uint64) {
		c8.PC = uint16(v)
	})
	imgui.SameLine()
	win.drawReg("I", 4, false, uint64(c8.I), func(v uint64) {
		c8.I = uint16(v)
	})
	imgui.SameLine()
	win.drawReg("SP", 2, false, uint64(c8.SP), func(v uint64) {
		c8.SP = uint8(v)
	})

	win.drawReg("DT", 2, false, uint64(c8.DelayTimer), func(v uint64) {
		c8.DelayTimer = uint8(v)
	})
	imgui.SameLine()
	win.drawReg("ST", 2, false, uint64(c8.SoundTimer), func(v uint64) {
		c8.SoundTimer = uint8(v)
	})

	imguiSeparator()

	// the general purpose registers in a four by four grid. these are
	// conventionally written in uppercase hex, unlike the scalar registers
	for i := range c8.V {
		if i%4 != 0 {
			imgui.SameLine()
		}
		win.drawReg(fmt.Sprintf("V%X", i), 2, true, uint64(c8.V[i]), func(v uint64) {
			c8.V[i] = uint8(v)
		})
	}

	// the call stack. only the occupied entries are shown
	if c8.SP > 0 {
		imguiSeparator()
		s := strings.Builder{}
		for i := 0; i < int(c8.SP) && i < len(c8.Stack); i++ {
			s.WriteString(fmt.Sprintf("%04x ", c8.Stack[i]))
		}
		imguiLabel("Stack")
		imgui.Text(strings.TrimSpace(s.String()))
	}
}

// drawReg adds a labelled hex input for a register. the input is read-only
// while the machine is running.
func (win *winRegisters) drawReg(label string, digits int, upper bool, val uint64, commit func(uint64)) {
	imguiLabel(label)

	var s string
	if upper {
		s = fmt.Sprintf("%0*X", digits, val)
	} else {
		s = fmt.Sprintf("%0*x", digits, val)
	}

	if win.img.dbg.State() != govern.Paused {
		imgui.Text(s)
		return
	}

	imgui.PushItemWidth(imguiTextWidth(digits))
	if imguiHexInput("##"+label, digits, &s) {
		if v, err := strconv.ParseUint(s, 16, digits*4); err == nil {
			commit(v)
		}
	}
	imgui.PopItemWidth()
}
