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
	"time"

	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/logger"
)

// Service moves the emulation forward if the tick period has elapsed and the
// emulation is in the Running state. It never blocks and it never ticks the
// machine more than once; frontends should call it as often as convenient.
// Elapsed tick periods are not accumulated, so a tardy frontend skips ticks
// rather than catching up in a burst.
func (dbg *Debugger) Service() {
	select {
	case <-dbg.tick.C:
		dbg.tickIfRunning()
	default:
	}
}

// waitService is the blocking equivalent of Service(). used by the terminal
// input loop, which has nothing better to do between ticks.
func (dbg *Debugger) waitService() {
	<-dbg.tick.C
	dbg.tickIfRunning()
}

// tickIfRunning ticks the machine forward once if the emulation is in the
// Running state. an error from the machine halts the emulation and is
// recorded as the fault.
func (dbg *Debugger) tickIfRunning() {
	if dbg.state != govern.Running {
		return
	}

	if err := dbg.c8.Tick(); err != nil {
		dbg.fault = err
		dbg.state = govern.Paused
		logger.Logf(logger.Allow, "debugger", "machine halted: %v", err)
	}
}

// Pause the emulation. Pausing an already paused emulation does nothing.
func (dbg *Debugger) Pause() {
	dbg.state = govern.Paused
}

// Resume toggles between the Running and Paused states. Any fault from an
// earlier halt is forgotten when the emulation enters the Running state.
func (dbg *Debugger) Resume() {
	if dbg.state == govern.Running {
		dbg.state = govern.Paused
		return
	}

	dbg.fault = nil
	dbg.state = govern.Running
}

// Step pauses the emulation and then ticks the machine forward exactly once,
// regardless of the state the emulation was in beforehand. The emulation is
// always in the Paused state when Step returns.
func (dbg *Debugger) Step() error {
	dbg.Pause()

	if err := dbg.c8.Tick(); err != nil {
		dbg.fault = err
		return err
	}

	return nil
}

// SetTickHz changes the rate at which the emulation ticks the machine
// forward. The value persists as a preference.
func (dbg *Debugger) SetTickHz(hz int) error {
	return dbg.prefs.TickHz.Set(hz)
}

// TickPeriod returns the current period between machine ticks.
func (dbg *Debugger) TickPeriod() time.Duration {
	return time.Second / time.Duration(dbg.prefs.TickHz.Get().(int))
}
