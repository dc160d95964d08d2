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
	"github.com/jetsetilly/gopher8/debugger/govern"
)

// playScr fills the SDL window with the machine display. there are no
// debugging windows in playmode, only a small overlay for the paused and
// fault states.
type playScr struct {
	img *SdlImgui

	// coordinates of the machine display in the SDL window
	imagePosMin imgui.Vec2
	imagePosMax imgui.Vec2
}

func newPlayScr(img *SdlImgui) *playScr {
	return &playScr{img: img}
}

func (win *playScr) draw() {
	win.setScaling()

	dl := imgui.BackgroundDrawList()
	dl.AddImage(imgui.TextureID(win.img.screen.texture.id), win.imagePosMin, win.imagePosMax)

	var overlay string
	overlayCol := win.img.cols.Fault

	if err := win.img.dbg.LastFault(); err != nil {
		overlay = fmt.Sprintf("fault: %v", err)
	} else if win.img.dbg.State() == govern.Paused {
		overlay = "paused"
		overlayCol = win.img.cols.TitleBgActive
	}

	if overlay == "" {
		return
	}

	open := true

	imgui.SetNextWindowPos(imgui.Vec2{X: 8, Y: 8})
	imgui.PushStyleColor(imgui.StyleColorWindowBg, win.img.cols.Transparent)
	imgui.PushStyleColor(imgui.StyleColorBorder, win.img.cols.Transparent)

	imgui.BeginV("##playscroverlay", &open, imgui.WindowFlagsAlwaysAutoResize|
		imgui.WindowFlagsNoScrollbar|imgui.WindowFlagsNoTitleBar|imgui.WindowFlagsNoDecoration)

	imgui.PushStyleColor(imgui.StyleColorText, overlayCol)
	imgui.Text(overlay)
	imgui.PopStyleColor()

	imgui.PopStyleColorV(2)
	imgui.End()
}

// the machine display is scaled by the largest whole number that fits the
// window and centered in whichever axis has room to spare. whole number
// scaling keeps the pixel boundaries sharp.
func (win *playScr) setScaling() {
	w, h := win.img.plt.windowSize()
	dim := imgui.Vec2{X: w, Y: h}

	scaling := dim.X / chip8.ScreenWidth
	if s := dim.Y / chip8.ScreenHeight; s < scaling {
		scaling = s
	}

	scaling = float32(int(scaling))
	if scaling < 1 {
		scaling = 1
	}

	win.imagePosMin = imgui.Vec2{
		X: float32(int((dim.X - (chip8.ScreenWidth * scaling)) / 2)),
		Y: float32(int((dim.Y - (chip8.ScreenHeight * scaling)) / 2)),
	}
	win.imagePosMax = dim.Minus(win.imagePosMin)
}
