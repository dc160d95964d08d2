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

	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/resources"
)

// the resources filename for all Gopher8 preferences. the debugger package
// keeps its own preferences in the same file, under its own keys.
const prefsFile = "gopher8.prefs"

// Preferences defines and collates the preference values used by the GUI.
type Preferences struct {
	img *SdlImgui
	dsk *prefs.Disk

	// scale of the machine display in the display window
	scale prefs.Float

	fullScreen prefs.Bool
	audioMute  prefs.Bool

	// display colors as hex strings. parsed into the Colors type through
	// hooks
	pixelOnColor  prefs.String
	pixelOffColor prefs.String
}

func newPreferences(img *SdlImgui) (*Preferences, error) {
	p := &Preferences{img: img}

	p.scale.SetHookPre(func(v prefs.Value) error {
		if v.(float64) < 1 {
			return fmt.Errorf("display scale must be at least 1")
		}
		return nil
	})

	p.fullScreen.SetHookPost(func(v prefs.Value) error {
		p.img.plt.setFullScreen(v.(bool))
		return nil
	})

	p.audioMute.SetHookPost(func(v prefs.Value) error {
		p.img.audio.Mute(v.(bool))
		return nil
	})

	p.pixelOnColor.SetHookPost(func(v prefs.Value) error {
		col, err := parseColor(v.(string))
		if err != nil {
			return err
		}
		p.img.cols.PixelOn = col
		return nil
	})

	p.pixelOffColor.SetHookPost(func(v prefs.Value) error {
		col, err := parseColor(v.(string))
		if err != nil {
			return err
		}
		p.img.cols.PixelOff = col
		return nil
	})

	// default values. the hooks have been registered so these pass through
	// them like any other change
	if err := p.scale.Set(8.0); err != nil {
		return nil, err
	}
	if err := p.pixelOnColor.Set(colorString(img.cols.PixelOn)); err != nil {
		return nil, err
	}
	if err := p.pixelOffColor.Set(colorString(img.cols.PixelOff)); err != nil {
		return nil, err
	}

	// setup preferences
	pth, err := resources.JoinPath(prefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("sdlimgui.scale", &p.scale); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("sdlimgui.fullscreen", &p.fullScreen); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("sdlimgui.audiomute", &p.audioMute); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("sdlimgui.pixelOnColor", &p.pixelOnColor); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("sdlimgui.pixelOffColor", &p.pixelOffColor); err != nil {
		return nil, err
	}

	err = p.dsk.Add("sdlimgui.windowSize", prefs.NewGeneric(
		func(s string) error {
			var w, h int32
			if _, err := fmt.Sscanf(s, "%d,%d", &w, &h); err != nil {
				return err
			}
			p.img.plt.window.SetSize(w, h)
			return nil
		},
		func() string {
			w, h := p.img.plt.window.GetSize()
			return fmt.Sprintf("%d,%d", w, h)
		},
	))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("sdlimgui.windowPos", prefs.NewGeneric(
		func(s string) error {
			var x, y int32
			if _, err := fmt.Sscanf(s, "%d,%d", &x, &y); err != nil {
				return err
			}
			p.img.plt.window.SetPosition(x, y)
			return nil
		},
		func() string {
			x, y := p.img.plt.window.GetPosition()
			return fmt.Sprintf("%d,%d", x, y)
		},
	))
	if err != nil {
		return nil, err
	}

	// the open state of every debugging window
	for id, w := range img.wm.windows {
		key := fmt.Sprintf("sdlimgui.open.%s", strings.ReplaceAll(strings.ToLower(id), " ", ""))
		err = p.dsk.Add(key, prefs.NewGeneric(
			func(s string) error {
				w.setOpen(strings.EqualFold(s, "true"))
				return nil
			},
			func() string {
				return fmt.Sprintf("%v", w.isOpen())
			},
		))
		if err != nil {
			return nil, err
		}
	}

	// load preferences from disk
	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// Load preference values from disk.
func (p *Preferences) load() error {
	return p.dsk.Load(false)
}

// Save current preference values to disk.
func (p *Preferences) save() error {
	return p.dsk.Save()
}
