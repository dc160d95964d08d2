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

import "github.com/jetsetilly/gopher8/chip8"

// CalcTickRate takes a number of machine ticks and a duration (in seconds)
// and returns the ticks-per-second and how that compares to the nominal
// machine speed, as a multiplier.
func CalcTickRate(numTicks int, duration float64) (tickRate float64, multiplier float64) {
	tickRate = float64(numTicks) / duration
	multiplier = tickRate / float64(chip8.ClockHz)
	return tickRate, multiplier
}
