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
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/logger"
)

const winControlTitle = "Control"

// winControl is the machine control window. it is the main interface for
// running, halting and stepping the machine and for saving and restoring
// machine state.
type winControl struct {
	windowManagement
	img *SdlImgui
}

func newWinControl(img *SdlImgui) window {
	return &winControl{img: img}
}

func (win *winControl) init() {
}

func (win *winControl) id() string {
	return winControlTitle
}

func (win *winControl) draw() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 8, Y: 334}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV(winControlTitle, &win.open, imgui.WindowFlagsAlwaysAutoResize)
	defer imgui.End()

	dbg := win.img.dbg

	if n := dbg.LastBuild().Name; n != "" {
		imguiLabelEnd(fmt.Sprintf("Program: %s", n))
		imguiSeparator()
	}

	// the run/halt button is the clearest indication of the machine state so
	// it gets the full width of the window
	running := dbg.State() == govern.Running
	dim := imgui.Vec2{X: imguiRemainingWinWidth(), Y: imgui.FrameHeight()}

	if running {
		imgui.PushStyleColor(imgui.StyleColorButton, win.img.cols.ControlHalt)
		imgui.PushStyleColor(imgui.StyleColorButtonHovered, win.img.cols.ControlHaltHovered)
		imgui.PushStyleColor(imgui.StyleColorButtonActive, win.img.cols.ControlHaltActive)
		if imgui.ButtonV("Halt", dim) {
			dbg.Pause()
		}
	} else {
		imgui.PushStyleColor(imgui.StyleColorButton, win.img.cols.ControlRun)
		imgui.PushStyleColor(imgui.StyleColorButtonHovered, win.img.cols.ControlRunHovered)
		imgui.PushStyleColor(imgui.StyleColorButtonActive, win.img.cols.ControlRunActive)
		if imgui.ButtonV("Run", dim) {
			dbg.Resume()
		}
	}
	imgui.PopStyleColorV(3)

	stepDim := imgui.Vec2{X: imguiDivideWinWidth(2), Y: imgui.FrameHeight()}
	if imgui.ButtonV("Step", stepDim) {
		// a failed step is reported through the fault line below
		_ = dbg.Step()
	}
	imgui.SameLine()
	if imgui.ButtonV("Reset", stepDim) {
		if err := dbg.Reset(); err != nil {
			logger.Logf(logger.Allow, "sdlimgui", "reset: %s", err.Error())
		}
	}

	imguiSeparator()

	imguiLabel("Tick rate")
	hz := int32(dbg.Prefs().TickHz.Get().(int))
	imgui.PushItemWidth(imguiRemainingWinWidth())
	if imgui.SliderIntV("##tickhz", &hz, 30, 960, "%dHz", imgui.SliderFlagsNone) {
		_ = dbg.SetTickHz(int(hz))
	}
	imgui.PopItemWidth()

	imguiSeparator()

	stateDim := imgui.Vec2{X: imguiDivideWinWidth(2), Y: imgui.FrameHeight()}
	if imgui.ButtonV("Save State", stateDim) {
		dbg.SaveState()
	}
	imgui.SameLine()
	if imgui.ButtonV("Restore State", stateDim) {
		if err := dbg.RestoreState(); err != nil {
			logger.Logf(logger.Allow, "sdlimgui", "restore state: %s", err.Error())
		}
	}
	if imgui.ButtonV("Save to Disk", stateDim) {
		if err := dbg.SaveStateToDisk(); err != nil {
			logger.Logf(logger.Allow, "sdlimgui", "save state: %s", err.Error())
		}
	}
	imgui.SameLine()
	if imgui.ButtonV("Restore from Disk", stateDim) {
		if err := dbg.RestoreStateFromDisk(); err != nil {
			logger.Logf(logger.Allow, "sdlimgui", "restore state: %s", err.Error())
		}
	}

	imguiSeparator()

	if imgui.ButtonV("Screenshot", imgui.Vec2{X: imguiDivideWinWidth(2), Y: imgui.FrameHeight()}) {
		win.img.screenshot()
	}
	imgui.SameLine()
	imguiLabel("Mute")
	mute := win.img.prefs.audioMute.Get().(bool)
	if imguiToggleButton("##mute", mute, win.img.cols.TitleBgActive) {
		_ = win.img.prefs.audioMute.Set(!mute)
	}

	// a scheduling fault halts the machine so show the reason prominently
	if err := dbg.LastFault(); err != nil {
		imguiSeparator()
		imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.Fault)
		imgui.Text(err.Error())
		imgui.PopStyleColor()
	}
}
