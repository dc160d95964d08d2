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
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

// Service is the main operating function for the GUI. one call services the
// SDL event queue, ticks the emulation forward and renders the screen if
// required. it must be called in a tight loop from the goroutine that created
// the SdlImgui instance.
func (img *SdlImgui) Service() {
	// poll for sdl event or timeout
	ev := img.polling.wait()

	// an event is reason enough to render a frame, even if the frame pacer
	// would otherwise say no
	eventPolled := ev != nil

	// whether mouse button down event have been polled. if it has and we poll
	// an up event in the same PollEvent() loop below, then we need to
	// "trickle" the up and down events over two frames. see commentary for
	// trickleMouseButton type
	leftMouseDownPolled := false
	rightMouseDownPolled := false

	for ; ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.quit()

		case *sdl.TextInputEvent:
			img.io.AddInputCharacters(string(ev.Text[:]))

		case *sdl.KeyboardEvent:
			img.serviceKeyboard(ev)

		case *sdl.MouseButtonEvent:
			switch ev.Button {
			case sdl.BUTTON_LEFT:
				switch ev.Type {
				case sdl.MOUSEBUTTONDOWN:
					leftMouseDownPolled = true
				case sdl.MOUSEBUTTONUP:
					if leftMouseDownPolled {
						img.plt.trickleMouseButtonLeft = trickleMouseDown
					}
				}

			case sdl.BUTTON_RIGHT:
				switch ev.Type {
				case sdl.MOUSEBUTTONDOWN:
					rightMouseDownPolled = true
				case sdl.MOUSEBUTTONUP:
					if rightMouseDownPolled {
						img.plt.trickleMouseButtonRight = trickleMouseDown
					}
				}
			}

			// trigger service wake in time for next Service() iteration.
			// without this, the results of the mouse button will not be
			// seen until the timeout (in the next iteration) has elapsed.
			//
			// eg. closing a window: the window will be drawn on *this*
			// frame and *this* mouse button press will be acknowledged.
			// next frame the window will not be drawn. however, the *next*
			// frame will sleep until the time out - *this* mouse button
			// event has been consumed. calling alert() ensures there is no
			// delay in drawing the *next* frame
			img.polling.alert()

		case *sdl.MouseWheelEvent:
			var deltaX, deltaY float32
			if ev.X > 0 {
				deltaX++
			} else if ev.X < 0 {
				deltaX--
			}
			if ev.Y > 0 {
				deltaY++
			} else if ev.Y < 0 {
				deltaY--
			}
			img.io.AddMouseWheelDelta(-deltaX/4, deltaY/4)
		}
	}

	// tick the emulation forward. how often this line is reached is decided
	// by the polling type
	img.dbg.Service()

	if img.polling.shouldRender(eventPolled) {
		img.renderFrame()
	}
}

func (img *SdlImgui) renderFrame() {
	// start of a new frame
	img.plt.newFrame()
	imgui.NewFrame()

	// draw all windows according to the current mode
	img.draw()

	// rendering
	imgui.Render() // This call only creates the draw data list. Actual rendering to framebuffer is done below.
	img.rnd.preRender()
	img.screen.render()
	img.rnd.render()
	img.plt.postRender()

	img.polling.rendered()
}

func (img *SdlImgui) serviceKeyboard(ev *sdl.KeyboardEvent) {
	if ev.Repeat == 1 {
		return
	}

	if ev.Type == sdl.KEYUP {
		handled := true

		if img.isPlaymode() {
			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				img.quit()

			case sdl.SCANCODE_SPACE:
				img.dbg.Resume()

			default:
				handled = false
			}
		} else {
			handled = false
		}

		if !handled {
			handled = true

			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_GRAVE:
				// do not change mode if an imgui widget is active. the grave
				// key is a legitimate thing to type into the source editor
				if img.isPlaymode() || !imgui.IsAnyItemActive() {
					img.setPlaymode(!img.isPlaymode())
				} else {
					handled = false
				}

			case sdl.SCANCODE_F11:
				img.prefs.fullScreen.Set(!img.prefs.fullScreen.Get().(bool))

			case sdl.SCANCODE_F12:
				img.screenshot()

			case sdl.SCANCODE_PAUSE:
				img.dbg.Resume()

			default:
				handled = false
			}
		}

		if handled {
			return
		}
	}

	// forward keypress to the machine keypad. in the debugging windows a
	// keypress belongs to the active widget if there is one
	if img.isPlaymode() || !imgui.IsAnyItemActive() {
		switch ev.Type {
		case sdl.KEYDOWN:
			img.dbg.KeyDown(rune(ev.Keysym.Sym))
		case sdl.KEYUP:
			img.dbg.KeyUp(rune(ev.Keysym.Sym))
		}
	}

	// remaining keypresses forwarded to imgui io system
	switch ev.Type {
	case sdl.KEYDOWN:
		img.io.KeyPress(int(ev.Keysym.Scancode))
		img.plt.updateKeyModifier()
	case sdl.KEYUP:
		img.io.KeyRelease(int(ev.Keysym.Scancode))
		img.plt.updateKeyModifier()
	}
}
