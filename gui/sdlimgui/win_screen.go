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
	"github.com/jetsetilly/gopher8/chip8"
)

const winScreenTitle = "Display"

// winScreen shows the machine display inside the debugger.
type winScreen struct {
	windowManagement
	img *SdlImgui
}

func newWinScreen(img *SdlImgui) window {
	return &winScreen{img: img}
}

func (win *winScreen) init() {
}

func (win *winScreen) id() string {
	return winScreenTitle
}

func (win *winScreen) draw() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 8, Y: 28}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV(winScreenTitle, &win.open, imgui.WindowFlagsAlwaysAutoResize)
	defer imgui.End()

	scale := float32(win.img.prefs.scale.Get().(float64))

	// note the position of the image so that the hover tooltip can work out
	// which machine pixel the mouse is over
	p := imgui.CursorScreenPos()

	imgui.Image(imgui.TextureID(win.img.screen.texture.id),
		imgui.Vec2{
			X: float32(chip8.ScreenWidth) * scale,
			Y: float32(chip8.ScreenHeight) * scale,
		})

	if imgui.IsItemHovered() {
		m := imgui.MousePos()
		px := int((m.X - p.X) / scale)
		py := int((m.Y - p.Y) / scale)
		if px >= 0 && px < chip8.ScreenWidth && py >= 0 && py < chip8.ScreenHeight {
			imguiTooltip(func() {
				imgui.Text(fmt.Sprintf("%d, %d", px, py))
			}, false)
		}
	}

	imgui.Spacing()
	imguiLabel("Scale")
	s := int32(scale)
	imgui.PushItemWidth(imguiRemainingWinWidth())
	if imgui.SliderInt("##scale", &s, 2, 24) {
		_ = win.img.prefs.scale.Set(float64(s))
	}
	imgui.PopItemWidth()
}
