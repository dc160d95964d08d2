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
	"io"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/resources"
)

// imguiIniFile is where imgui will store the coordinates of the imgui windows
const imguiIniFile = "imgui.ini"

// SdlImgui is an sdl based visualiser using imgui.
type SdlImgui struct {
	// the mechanical requirements for the gui
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	rnd     *gl21

	// the debugger being visualised. every window talks to the emulation
	// through this
	dbg *debugger.Debugger

	// the current mode of the gui. either playmode or the debugging windows
	mode govern.Mode

	// the machine display as an sdl texture
	screen *screen

	// the beeper
	audio *sdlaudio.Audio

	// the playscreen is drawn to the background of the platform window
	playScr *playScr

	// imgui window management
	wm *manager

	// the colors used by the imgui system
	cols *Colors

	// polling decides how long the service loop may sleep and how often
	// frames are rendered
	polling *polling

	// gui specific preferences. the debugger keeps its own preferences, in
	// the same file
	prefs *Preferences

	// result of the most recent build request from the source editor. nil
	// after a successful build
	lastBuildErr error

	// the user has asked to leave the application
	quitted bool
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui.
//
// The returned instance is bound to the calling goroutine. Service() must be
// called from the same goroutine, which must be the main thread.
func NewSdlImgui(dbg *debugger.Debugger, mode govern.Mode) (*SdlImgui, error) {
	img := &SdlImgui{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
		dbg:     dbg,
	}

	// path to dear imgui ini file
	iniPath, err := resources.JoinPath(imguiIniFile)
	if err != nil {
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}
	img.io.SetIniFilename(iniPath)

	// define colors
	img.cols = defaultTheme()

	img.plt, err = newPlatform(img)
	if err != nil {
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	img.rnd = newRenderer(img)
	if err := img.rnd.start(); err != nil {
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	img.screen = newScreen(img)
	img.screen.createTexture()

	img.playScr = newPlayScr(img)
	img.wm = newManager(img)

	// initialise new polling type
	img.polling = newPolling(img)

	// the beeper. attached to the machine so that samples are generated
	// whenever the machine ticks
	img.audio, err = sdlaudio.NewAudio()
	if err != nil {
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}
	dbg.Mach().AttachAudio(img.audio)

	// load sdlimgui preferences
	img.prefs, err = newPreferences(img)
	if err != nil {
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	img.setPlaymode(mode == govern.ModePlay)

	img.plt.window.Show()

	return img, nil
}

// Destroy frees the resources used by the gui. Preferences are saved as a
// courtesy.
func (img *SdlImgui) Destroy(output io.Writer) {
	img.savePrefs()

	img.dbg.Mach().AttachAudio(nil)
	if err := img.audio.EndMixing(); err != nil {
		output.Write([]byte(fmt.Sprintf("%v\n", err)))
	}

	img.rnd.destroy()

	if err := img.plt.destroy(); err != nil {
		output.Write([]byte(fmt.Sprintf("%v\n", err)))
	}

	img.context.Destroy()
}

// HasQuit returns true once the user has asked to leave the application. The
// loop around Service() should finish when it sees a true value.
func (img *SdlImgui) HasQuit() bool {
	return img.quitted
}

// quit ends the service loop on its next iteration.
func (img *SdlImgui) quit() {
	img.quitted = true
}

// draw gui. called from service loop.
func (img *SdlImgui) draw() {
	if img.isPlaymode() {
		img.playScr.draw()
	} else {
		img.wm.draw()
	}
}

// is the gui in playmode or not.
func (img *SdlImgui) isPlaymode() bool {
	return img.mode == govern.ModePlay
}

// setPlaymode switches between playmode and the debugging windows.
func (img *SdlImgui) setPlaymode(set bool) {
	if set {
		img.mode = govern.ModePlay
	} else {
		img.mode = govern.ModeDebugger
	}
}

// savePrefs writes the gui preferences and the debugger preferences to disk.
// errors are logged rather than returned.
func (img *SdlImgui) savePrefs() {
	if err := img.prefs.save(); err != nil {
		logger.Logf(logger.Allow, "sdlimgui", "save preferences: %v", err)
	}
	if err := img.dbg.Prefs().Save(); err != nil {
		logger.Logf(logger.Allow, "sdlimgui", "save preferences: %v", err)
	}
}
