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
	"errors"
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/gopher8/debugger"
)

const winBuildTitle = "Build"

// winBuild reports on the most recent build. a successful build shows the
// summary counts and the program listing. a failed build shows which stage of
// the pipeline failed and why.
type winBuild struct {
	windowManagement
	img *SdlImgui
}

func newWinBuild(img *SdlImgui) window {
	return &winBuild{img: img}
}

func (win *winBuild) init() {
}

func (win *winBuild) id() string {
	return winBuildTitle
}

func (win *winBuild) draw() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 858, Y: 500}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 420, Y: 250}, imgui.ConditionFirstUseEver)
	imgui.BeginV(winBuildTitle, &win.open, 0)
	defer imgui.End()

	if win.img.lastBuildErr != nil {
		win.drawError(win.img.lastBuildErr)
		return
	}

	rep := win.img.dbg.LastBuild()
	if rep.Name == "" {
		imgui.Text("no build yet")
		return
	}

	imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.BuildStage)
	imgui.Text(rep.Name)
	imgui.PopStyleColor()
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("%d tokens, %d instructions, %d bytes", rep.Tokens, rep.Instructions, rep.Size))

	imguiSeparator()

	imgui.BeginChildV("##listing", imgui.Vec2{X: 0, Y: imguiRemainingWinHeight()}, false, 0)
	imgui.Text(rep.Listing)
	imgui.EndChild()
}

func (win *winBuild) drawError(err error) {
	var be debugger.BuildError
	if errors.As(err, &be) {
		imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.BuildStage)
		imgui.Text(fmt.Sprintf("failed at %s stage", be.Stage))
		imgui.PopStyleColor()
		err = be.Err
	}

	imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.BuildError)
	imgui.PushTextWrapPos()
	imgui.Text(err.Error())
	imgui.PopTextWrapPos()
	imgui.PopStyleColor()
}
