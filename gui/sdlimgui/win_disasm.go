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
	"strings"

	"github.com/inkyblackness/imgui-go/v4"
)

const winDisasmTitle = "Disassembly"

// winDisasm shows the instructions around the current program counter. the
// first row is always the instruction at the program counter. rows that were
// compiled from the editor's selected source lines are highlighted.
type winDisasm struct {
	windowManagement
	img *SdlImgui
}

func newWinDisasm(img *SdlImgui) window {
	return &winDisasm{img: img}
}

func (win *winDisasm) init() {
}

func (win *winDisasm) id() string {
	return winDisasmTitle
}

func (win *winDisasm) draw() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 553, Y: 212}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV(winDisasmTitle, &win.open, imgui.WindowFlagsAlwaysAutoResize)
	defer imgui.End()

	rows := win.img.dbg.SyncWindow(win.img.wm.selection)
	c8 := win.img.dbg.Mach()

	if !imgui.BeginTableV("##disasm", 5, imgui.TableFlagsSizingFixedFit, imgui.Vec2{}, 0.0) {
		return
	}
	defer imgui.EndTable()

	imgui.TableSetupColumnV("##disasm_highlight", imgui.TableColumnFlagsNone, imguiTextWidth(1), 0)
	imgui.TableSetupColumnV("##disasm_address", imgui.TableColumnFlagsNone, imguiTextWidth(4), 0)
	imgui.TableSetupColumnV("##disasm_opcode", imgui.TableColumnFlagsNone, imguiTextWidth(4), 0)
	imgui.TableSetupColumnV("##disasm_operator", imgui.TableColumnFlagsNone, imguiTextWidth(4), 0)
	imgui.TableSetupColumnV("##disasm_operand", imgui.TableColumnFlagsNone, imguiTextWidth(9), 0)

	for i, r := range rows {
		imgui.TableNextRow()

		// the first column carries the row highlight. the top row is the
		// instruction at the program counter
		rowID := fmt.Sprintf("##disasm%02d", i)
		imgui.TableNextColumn()
		switch {
		case i == 0:
			imgui.PushStyleColor(imgui.StyleColorHeader, win.img.cols.DisasmCurrentPC)
			imgui.SelectableV(rowID, true, imgui.SelectableFlagsSpanAllColumns, imgui.Vec2{0, 0})
			imgui.PopStyleColor()
		case r.Active:
			imgui.PushStyleColor(imgui.StyleColorHeader, win.img.cols.DisasmSelected)
			imgui.SelectableV(rowID, true, imgui.SelectableFlagsSpanAllColumns, imgui.Vec2{0, 0})
			imgui.PopStyleColor()
		default:
			imgui.SelectableV(rowID, false, imgui.SelectableFlagsSpanAllColumns, imgui.Vec2{0, 0})
		}

		imgui.TableNextColumn()
		imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.DisasmAddress)
		imgui.Text(fmt.Sprintf("%04x", r.Address))
		imgui.PopStyleColor()

		imgui.TableNextColumn()
		opcode := uint16(c8.Peek(r.Address))<<8 | uint16(c8.Peek(r.Address+1))
		imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.DisasmOpcode)
		imgui.Text(fmt.Sprintf("%04x", opcode))
		imgui.PopStyleColor()

		// rows outside the loaded program have no mnemonic
		var operator, operand string
		if sp := strings.SplitN(r.Mnemonic, " ", 2); len(sp) == 2 {
			operator = sp[0]
			operand = sp[1]
		} else {
			operator = r.Mnemonic
		}

		imgui.TableNextColumn()
		imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.DisasmOperator)
		imgui.Text(operator)
		imgui.PopStyleColor()

		imgui.TableNextColumn()
		imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.DisasmOperand)
		imgui.Text(operand)
		imgui.PopStyleColor()
	}
}
