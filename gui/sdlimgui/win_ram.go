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
	"github.com/inkyblackness/imgui-go/v4"
)

const winRAMTitle = "RAM"

// winRAM shows all of machine RAM as an editable byte grid. the cells under
// the program counter and the index register are highlighted.
type winRAM struct {
	windowManagement
	img *SdlImgui
}

func newWinRAM(img *SdlImgui) window {
	return &winRAM{img: img}
}

func (win *winRAM) init() {
}

func (win *winRAM) id() string {
	return winRAMTitle
}

func (win *winRAM) draw() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 520, Y: 420}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 560, Y: 330}, imgui.ConditionFirstUseEver)
	imgui.BeginV(winRAMTitle, &win.open, 0)
	defer imgui.End()

	c8 := win.img.dbg.Mach()

	// item spacing is altered in drawByteGrid(). note value now so we can set
	// it for tooltips in after()
	tooltipSpacing := imgui.CurrentStyle().ItemSpacing()

	pc := int(c8.PC)
	idxReg := int(c8.I)

	// number of colors to pop in after()
	popColor := 0

	before := func(idx int) {
		// instructions are two bytes wide so the program counter covers two
		// cells of the grid
		if idx == pc || idx == pc+1 {
			imgui.PushStyleColor(imgui.StyleColorFrameBg, win.img.cols.RAMPointPC)
			popColor++
		}
		if idx == idxReg {
			imgui.PushStyleColor(imgui.StyleColorFrameBg, win.img.cols.RAMPointI)
			popColor++
		}
	}

	after := func(idx int) {
		imgui.PopStyleColorV(popColor)
		popColor = 0

		imgui.PushStyleVarVec2(imgui.StyleVarItemSpacing, tooltipSpacing)
		defer imgui.PopStyleVar()

		if idx == pc || idx == pc+1 {
			imguiTooltipSimple("PC")
		}
		if idx == idxReg {
			imguiTooltipSimple("I")
		}
	}

	commit := func(idx int, value uint8) {
		c8.RAM[idx] = value
	}

	imgui.BeginChildV("##ramgrid", imgui.Vec2{X: 0, Y: imguiRemainingWinHeight()}, false, 0)
	drawByteGrid("##ram", c8.RAM[:], 0, before, after, commit)
	imgui.EndChild()
}
