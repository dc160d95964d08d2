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

package debugger

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/resources"
)

// the resources filename for all Gopher8 preferences.
const prefsFile = "gopher8.prefs"

// Preferences defines and collates the preference values used by the
// debugger.
type Preferences struct {
	dbg *Debugger
	dsk *prefs.Disk

	// the rate at which the emulation ticks the machine forward. changing
	// the value resets the debugger's ticker through a hook
	TickHz prefs.Int
}

func (p *Preferences) String() string {
	return fmt.Sprintf("tickhz=%s", p.TickHz.String())
}

// newPreferences is the preferred method of initialisation for the
// Preferences type.
func newPreferences(dbg *Debugger) (*Preferences, error) {
	p := &Preferences{dbg: dbg}

	p.TickHz.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("tick rate must be at least 1hz")
		}
		return nil
	})

	p.TickHz.SetHookPost(func(v prefs.Value) error {
		// the hook can fire before the ticker has been created, during the
		// initial load from disk
		if dbg.tick != nil {
			dbg.tick.Reset(time.Second / time.Duration(v.(int)))
		}
		return nil
	})

	if err := p.TickHz.Set(chip8.ClockHz); err != nil {
		return nil, err
	}

	// setup preferences and load from disk
	pth, err := resources.JoinPath(prefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("debugger.tickhz", &p.TickHz); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// Load preference values from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
