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

	"github.com/inkyblackness/imgui-go/v4"
)

// Colors defines all the colors used by the GUI.
type Colors struct {
	// default colors
	MenuBarBg     imgui.Vec4
	WindowBg      imgui.Vec4
	TitleBg       imgui.Vec4
	TitleBgActive imgui.Vec4
	Border        imgui.Vec4

	// control window buttons
	ControlRun         imgui.Vec4
	ControlRunHovered  imgui.Vec4
	ControlRunActive   imgui.Vec4
	ControlHalt        imgui.Vec4
	ControlHaltHovered imgui.Vec4
	ControlHaltActive  imgui.Vec4

	// the fault report in the control window
	Fault imgui.Vec4

	// disassembly entry columns
	DisasmAddress  imgui.Vec4
	DisasmOpcode   imgui.Vec4
	DisasmOperator imgui.Vec4
	DisasmOperand  imgui.Vec4

	// background for the disassembly row at the current program counter and
	// for the rows that belong to the editor selection
	DisasmCurrentPC imgui.Vec4
	DisasmSelected  imgui.Vec4

	// ram window cells pointed to by the machine registers
	RAMPointPC imgui.Vec4
	RAMPointI  imgui.Vec4

	// source editor
	EditorLineNumber imgui.Vec4
	EditorSelected   imgui.Vec4

	// build window
	BuildStage imgui.Vec4
	BuildError imgui.Vec4

	// log window
	LogTag imgui.Vec4

	// used by the playscreen overlay
	Transparent imgui.Vec4

	// the machine display. on/off values are replaced from the preferences
	PixelOn  imgui.Vec4
	PixelOff imgui.Vec4
}

func defaultTheme() *Colors {
	cols := Colors{
		MenuBarBg:     imgui.Vec4{0.075, 0.08, 0.09, 1.0},
		WindowBg:      imgui.Vec4{0.075, 0.08, 0.09, 0.8},
		TitleBg:       imgui.Vec4{0.075, 0.08, 0.09, 1.0},
		TitleBgActive: imgui.Vec4{0.16, 0.29, 0.48, 1.0},
		Border:        imgui.Vec4{0.14, 0.14, 0.29, 1.0},

		ControlRun:         imgui.Vec4{0.3, 0.6, 0.3, 1.0},
		ControlRunHovered:  imgui.Vec4{0.3, 0.65, 0.3, 1.0},
		ControlRunActive:   imgui.Vec4{0.3, 0.65, 0.3, 1.0},
		ControlHalt:        imgui.Vec4{0.6, 0.3, 0.3, 1.0},
		ControlHaltHovered: imgui.Vec4{0.65, 0.3, 0.3, 1.0},
		ControlHaltActive:  imgui.Vec4{0.65, 0.3, 0.3, 1.0},

		Fault: imgui.Vec4{0.8, 0.3, 0.3, 1.0},

		DisasmAddress:   imgui.Vec4{0.8, 0.4, 0.4, 1.0},
		DisasmOpcode:    imgui.Vec4{0.5, 0.5, 0.5, 1.0},
		DisasmOperator:  imgui.Vec4{0.4, 0.4, 0.8, 1.0},
		DisasmOperand:   imgui.Vec4{0.8, 0.8, 0.3, 1.0},
		DisasmCurrentPC: imgui.Vec4{0.16, 0.29, 0.48, 0.8},
		DisasmSelected:  imgui.Vec4{0.29, 0.24, 0.11, 0.8},

		RAMPointPC: imgui.Vec4{0.16, 0.29, 0.48, 0.8},
		RAMPointI:  imgui.Vec4{0.29, 0.48, 0.16, 0.8},

		EditorLineNumber: imgui.Vec4{0.5, 0.5, 0.5, 1.0},
		EditorSelected:   imgui.Vec4{0.29, 0.24, 0.11, 0.8},

		BuildStage: imgui.Vec4{0.1, 0.95, 0.9, 1.0},
		BuildError: imgui.Vec4{0.8, 0.3, 0.3, 1.0},

		LogTag: imgui.Vec4{0.8, 0.8, 0.3, 1.0},

		Transparent: imgui.Vec4{0.0, 0.0, 0.0, 0.0},

		PixelOn:  imgui.Vec4{0.87, 0.91, 0.84, 1.0},
		PixelOff: imgui.Vec4{0.10, 0.12, 0.10, 1.0},
	}

	// set default colors
	style := imgui.CurrentStyle()
	style.SetColor(imgui.StyleColorMenuBarBg, cols.MenuBarBg)
	style.SetColor(imgui.StyleColorWindowBg, cols.WindowBg)
	style.SetColor(imgui.StyleColorTitleBg, cols.TitleBg)
	style.SetColor(imgui.StyleColorTitleBgActive, cols.TitleBgActive)
	style.SetColor(imgui.StyleColorBorder, cols.Border)

	return &cols
}

// parse a six digit hex string into a color. the alpha component is always
// set to full.
func parseColor(s string) (imgui.Vec4, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return imgui.Vec4{}, fmt.Errorf("colors: not a hex color (%s)", s)
	}
	return imgui.Vec4{
		X: float32(r) / 255.0,
		Y: float32(g) / 255.0,
		Z: float32(b) / 255.0,
		W: 1.0,
	}, nil
}

// the inverse of parseColor().
func colorString(c imgui.Vec4) string {
	return fmt.Sprintf("%02x%02x%02x", uint8(c.X*255.0), uint8(c.Y*255.0), uint8(c.Z*255.0))
}
