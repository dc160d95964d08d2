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
	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/romfile"
)

const winEditorTitle = "Source Editor"

// winEditor is where source programs are typed and built. the window has two
// modes. in edit mode the source can be typed freely. in select mode source
// lines can be selected with the mouse, the selection being picked up by the
// disassembly window.
type winEditor struct {
	windowManagement
	img *SdlImgui

	// the source text and the name the next build will be known by
	text string
	name string

	// true when the editor is in edit mode rather than select mode
	editing bool

	// the line on which the current mouse drag started. -1 when no drag is
	// in progress
	drag int
}

func newWinEditor(img *SdlImgui) window {
	return &winEditor{
		img:     img,
		name:    romfile.ExampleName,
		editing: true,
		drag:    -1,
	}
}

func (win *winEditor) init() {
	// an example program means the editor is never empty on startup
	win.text = romfile.ExampleSource
}

func (win *winEditor) id() string {
	return winEditorTitle
}

func (win *winEditor) draw() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 858, Y: 28}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 420, Y: 450}, imgui.ConditionFirstUseEver)
	imgui.BeginV(winEditorTitle, &win.open, 0)
	defer imgui.End()

	imguiLabel("Edit")
	if imguiToggleButton("##editmode", win.editing, win.img.cols.TitleBgActive) {
		win.editing = !win.editing
		if win.editing {
			win.clearSelection()
		}
	}
	imgui.SameLine()
	imguiLabel("Name")
	imgui.PushItemWidth(imguiTextWidth(8))
	imgui.InputText("##name", &win.name)
	imgui.PopItemWidth()
	imgui.SameLine()
	if imgui.Button("Build") {
		win.build()
	}

	imgui.Spacing()

	// height of the text area. everything above has been drawn so the
	// remaining height is what's left of the window
	h := imguiRemainingWinHeight()

	if win.editing {
		imgui.InputTextMultilineV("##source", &win.text,
			imgui.Vec2{X: imguiRemainingWinWidth(), Y: h}, 0, nil)
		return
	}

	// select mode. each line of the source is a selectable. dragging over
	// several lines extends the selection
	imgui.BeginChildV("##sourcelines", imgui.Vec2{X: 0, Y: h}, false, 0)
	defer imgui.EndChild()

	sel := win.img.wm.selection

	imgui.PushStyleColor(imgui.StyleColorHeader, win.img.cols.EditorSelected)
	defer imgui.PopStyleColor()

	for i, line := range strings.Split(win.text, "\n") {
		selected := i >= sel.StartLine && i <= sel.EndLine

		imgui.SelectableV(fmt.Sprintf("%3d  %s##line%d", i+1, line, i), selected, 0, imgui.Vec2{})

		if imgui.IsItemClicked() {
			win.drag = i
			win.setSelection(i, i)
		}
		if win.drag >= 0 && imgui.IsItemHovered() && imgui.IsMouseDown(0) {
			win.setSelection(win.drag, i)
		}
	}

	if !imgui.IsMouseDown(0) {
		win.drag = -1
	}
}

func (win *winEditor) build() {
	name := strings.TrimSpace(win.name)
	if name == "" {
		name = "editor"
	}

	err := win.img.dbg.SubmitSource(name, win.text)
	win.img.lastBuildErr = err

	// the build window shows the outcome, including any diagnostics
	if err != nil {
		win.img.wm.windows[winBuildTitle].setOpen(true)
	}
}

func (win *winEditor) setSelection(a int, b int) {
	if a > b {
		a, b = b, a
	}
	win.img.wm.selection = debugger.Selection{StartLine: a, EndLine: b}
}

func (win *winEditor) clearSelection() {
	win.drag = -1
	win.img.wm.selection = debugger.NoSelection
}
