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
	"github.com/jetsetilly/gopher8/debugger"
)

// window is the interface shared by all windows managed by the manager type.
type window interface {
	// init is called as part of the first draw sequence, by which time the
	// imgui context is fully established
	init()

	// id should return a unique identifier for the window. note that the
	// window title and any menu entry may be different to the id (but can
	// be the same)
	id() string

	draw()
	isOpen() bool
	setOpen(bool)
}

// windowManagement provides default implementations of the isOpen() and
// setOpen() functions of the window interface. embed it into a window type
// for convenience.
type windowManagement struct {
	open bool
}

func (wm *windowManagement) isOpen() bool {
	return wm.open
}

func (wm *windowManagement) setOpen(open bool) {
	wm.open = open
}

// manager handles windows and menus in the debugger.
type manager struct {
	img *SdlImgui

	// has the window manager gone through the initialisation process
	hasInitialised bool

	// the collection of managed windows and the order they appear in the
	// windows menu
	windows map[string]window
	menu    []string

	// the source lines selected in the editor window. the disassembly window
	// uses it to highlight the instructions the selection compiled to
	selection debugger.Selection

	// the position of the main menu bar. used to position windows on their
	// first appearance
	screenPos imgui.Vec2
}

func newManager(img *SdlImgui) *manager {
	wm := &manager{
		img:       img,
		windows:   make(map[string]window),
		selection: debugger.NoSelection,
	}

	addWindow := func(w window, open bool) {
		wm.windows[w.id()] = w
		wm.menu = append(wm.menu, w.id())
		w.setOpen(open)
	}

	addWindow(newWinScreen(img), true)
	addWindow(newWinControl(img), true)
	addWindow(newWinRegisters(img), true)
	addWindow(newWinDisasm(img), true)
	addWindow(newWinEditor(img), true)
	addWindow(newWinBuild(img), false)
	addWindow(newWinRAM(img), false)
	addWindow(newWinLog(img), false)

	return wm
}

func (wm *manager) draw() {
	// there's no good place to call the init() function for windows so we
	// do it here when we know everything else has been initialised
	if !wm.hasInitialised {
		for _, w := range wm.windows {
			w.init()
		}
		wm.hasInitialised = true
	}

	wm.drawMenu()

	for _, w := range wm.windows {
		if w.isOpen() {
			w.draw()
		}
	}
}

func (wm *manager) drawMenu() {
	if !imgui.BeginMainMenuBar() {
		return
	}
	defer imgui.EndMainMenuBar()

	// remember the position of the menu bar. windows use it to position
	// themselves on first appearance
	wm.screenPos = imgui.WindowPos()

	if imgui.BeginMenu("Gopher8") {
		if imgui.Selectable("Save Preferences") {
			wm.img.savePrefs()
		}
		imgui.Separator()
		if imgui.Selectable("Quit") {
			wm.img.quit()
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu("Windows") {
		for _, id := range wm.menu {
			w := wm.windows[id]

			// add decorator indicating if window is currently open
			var lbl string
			if w.isOpen() {
				// checkmark is unicode middle dot - code 00b7
				lbl = fmt.Sprintf("· %s", id)
			} else {
				lbl = fmt.Sprintf("  %s", id)
			}

			if imgui.Selectable(lbl) {
				w.setOpen(!w.isOpen())
			}
		}
		imgui.EndMenu()
	}
}
