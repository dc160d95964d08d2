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

package chip8

// Snapshot makes a copy of the machine state as it currently stands. The
// State type contains no pointers or slices so the copy is complete and
// shares nothing with the running machine.
func (c8 *Chip8) Snapshot() *State {
	s := c8.State
	return &s
}

// Plumb a previously snapshotted state back into the machine. The snapshot
// itself is untouched and can be plumbed again.
func (c8 *Chip8) Plumb(s *State) {
	c8.State = *s
}
