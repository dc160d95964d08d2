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

package performance_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/test"
)

func TestCalcTickRate(t *testing.T) {
	// nominal speed
	tickRate, multiplier := performance.CalcTickRate(chip8.ClockHz*2, 2.0)
	test.ExpectEquality(t, tickRate, float64(chip8.ClockHz))
	test.ExpectEquality(t, multiplier, 1.0)

	// half speed
	tickRate, multiplier = performance.CalcTickRate(chip8.ClockHz/2, 1.0)
	test.ExpectEquality(t, tickRate, float64(chip8.ClockHz)/2)
	test.ExpectEquality(t, multiplier, 0.5)

	// durations measured from a real clock are never round numbers
	tickRate, multiplier = performance.CalcTickRate(123456, 5.01)
	test.ExpectApproximate(t, tickRate, 24641.0, 0.001)
	test.ExpectApproximate(t, multiplier, 102.7, 0.001)
}
