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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/chip8"
)

// measurement does not start until the leadtime has elapsed, giving the Go
// runtime a chance to settle down.
const leadtime = 2 * time.Second

// checking the timer channel is expensive relative to a single machine tick
// so we only look at it every performanceBrake ticks.
const performanceBrake = 100

// Check the performance of the emulation using the supplied ROM.
//
// The machine is ticked as fast as the host allows for the specified
// duration. Note that there is a leadtime before measurement begins.
//
// If profile is true a cpu and a memory profile of the run are written to
// the current directory.
func Check(output io.Writer, profile bool, rom []byte, duration string) error {
	c8 := chip8.NewChip8()

	if err := c8.LoadROM(rom); err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	numTicks := 0

	// run for specified period of time
	runner := func() error {
		// true on the timer channel ends the measurement. false means the
		// leadtime has elapsed and the tick count should restart
		timerChan := make(chan bool)

		go func() {
			time.AfterFunc(leadtime, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		brake := 0

		for {
			brake++
			if brake >= performanceBrake {
				brake = 0

				select {
				case v := <-timerChan:
					if v {
						return nil
					}

					// leadtime has elapsed. measurement starts now
					numTicks = 0
				default:
				}
			}

			if err := c8.Tick(); err != nil {
				return err
			}
			numTicks++
		}
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	if profile {
		err = ProfileCPU("performance.cpu.profile", runner)
		if err == nil {
			err = ProfileMem("performance.mem.profile")
		}
	} else {
		err = runner()
	}
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	tickRate, multiplier := CalcTickRate(numTicks, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.0f ticks per second (%d ticks in %.2f seconds) %.1fx nominal speed\n",
		tickRate, numTicks, dur.Seconds(), multiplier)))

	return nil
}
