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
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/veandco/go-sdl2/sdl"
)

// time periods in milliseconds that each mode waits for new SDL events at the
// start of each Service() call. when the machine is running the timeout is
// derived from the tick period instead, so that the machine is not starved of
// Service() calls.
const (
	debugSleepPeriod = 50
	playSleepPeriod  = 10
	idleSleepPeriod  = 500
)

// the maximum rate at which the imgui frame is rebuilt and rendered while the
// machine is running. the service loop iterates far more frequently than the
// display refreshes and rendering on every iteration would be wasted effort.
const renderPeriod = 16 * time.Millisecond

type polling struct {
	img *SdlImgui

	dbgTicker *time.Ticker

	// wake is used to preempt the timeout when we want to communicate between
	// iterations of the service loop. for example, closing sdlimgui windows
	// might feel laggy without it (see commentary in service loop for
	// explanation).
	wake bool

	// time of the most recent imgui render. used to pace renderFrame() calls
	lastRender time.Time
}

func newPolling(img *SdlImgui) *polling {
	pol := &polling{
		img: img,
	}

	pol.dbgTicker = time.NewTicker(time.Millisecond * debugSleepPeriod)

	return pol
}

// alert() forces the next call to wait to resolve immediately.
func (pol *polling) alert() {
	pol.wake = true
}

func (pol *polling) wait() sdl.Event {
	var timeout int

	if pol.wake {
		pol.wake = false
	} else {
		if pol.img.dbg.State() == govern.Running {
			// while the machine is running the timeout tracks the tick
			// period. ticks may still be skipped under load but an idle
			// machine will never wait longer than one tick
			timeout = int(pol.img.dbg.TickPeriod() / time.Millisecond)
			if timeout < 1 {
				timeout = 1
			} else if timeout > debugSleepPeriod {
				timeout = debugSleepPeriod
			}
		} else if pol.img.isPlaymode() {
			timeout = playSleepPeriod
		} else if imgui.IsAnyItemActive() {
			// an active widget (the source editor for example) wants cursor
			// blink and similar animation even though the machine is paused
			timeout = debugSleepPeriod
		} else {
			timeout = idleSleepPeriod
		}
	}

	// wait for new SDL event or until the selected timeout period has elapsed
	ev := sdl.WaitEventTimeout(timeout)

	// slow down mouse events. if we don't do this then waggling the mouse
	// over the screen will increase CPU usage significantly. CPU usage will
	// still increase but by a smaller margin.
	switch ev.(type) {
	case *sdl.MouseMotionEvent:
		<-pol.dbgTicker.C
	}

	return ev
}

// shouldRender implements the frame pacer. an event or an alerted service
// loop renders immediately. a paused machine renders on every (infrequent)
// iteration. a running machine renders at a capped rate.
func (pol *polling) shouldRender(eventPolled bool) bool {
	if eventPolled || pol.wake {
		return true
	}
	if pol.img.dbg.State() != govern.Running {
		return true
	}
	return time.Since(pol.lastRender) >= renderPeriod
}

// rendered is called after every renderFrame().
func (pol *polling) rendered() {
	pol.lastRender = time.Now()
}
