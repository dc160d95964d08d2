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
	"github.com/jetsetilly/gopher8/logger"
)

const winLogTitle = "Log"

type winLog struct {
	windowManagement
	img *SdlImgui

	// number of entries drawn last frame. used to detect new entries, at
	// which point the window scrolls to the bottom
	lastCount int
}

func newWinLog(img *SdlImgui) window {
	return &winLog{img: img}
}

func (win *winLog) init() {
}

func (win *winLog) id() string {
	return winLogTitle
}

func (win *winLog) draw() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 8, Y: 500}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 500, Y: 250}, imgui.ConditionFirstUseEver)
	imgui.BeginV(winLogTitle, &win.open, 0)
	defer imgui.End()

	logger.BorrowLog(func(entries []logger.Entry) {
		var clipper imgui.ListClipper
		clipper.Begin(len(entries))
		for clipper.Step() {
			for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
				e := entries[i]

				imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.LogTag)
				imgui.Text(e.Tag)
				imgui.PopStyleColor()

				imgui.SameLine()
				if e.Repeated > 0 {
					imgui.Text(fmt.Sprintf("%s (repeat x%d)", e.Detail, e.Repeated+1))
				} else {
					imgui.Text(e.Detail)
				}
			}
		}

		// scroll to the most recent entry when one arrives
		if len(entries) != win.lastCount {
			imgui.SetScrollHereY(0.0)
			win.lastCount = len(entries)
		}
	})
}
