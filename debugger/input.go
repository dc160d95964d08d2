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
	"unicode"

	"github.com/jetsetilly/gopher8/chip8"
)

// keypadTable maps the left hand side of a modern keyboard onto the COSMAC
// VIP hex keypad:
//
//	1 2 3 4        1 2 3 C
//	q w e r   -->  4 5 6 D
//	a s d f        7 8 9 E
//	z x c v        A 0 B F
var keypadTable = map[rune]int{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xc,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xd,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xe,
	'z': 0xa, 'x': 0x0, 'c': 0xb, 'v': 0xf,
}

// KeyDown presses the keypad key that the keyboard rune maps to. The press
// is forwarded to the machine immediately, whatever state the emulation is
// in. Runes with no keypad mapping are ignored, as are repeat presses of a
// key that is already down.
func (dbg *Debugger) KeyDown(r rune) {
	key, ok := keypadTable[unicode.ToLower(r)]
	if !ok {
		return
	}

	dbg.keypad[key] = true
	dbg.c8.SetKey(key, true)
}

// KeyUp releases the keypad key that the keyboard rune maps to. Like
// KeyDown, the release is forwarded to the machine immediately and unmapped
// runes are ignored.
func (dbg *Debugger) KeyUp(r rune) {
	key, ok := keypadTable[unicode.ToLower(r)]
	if !ok {
		return
	}

	dbg.keypad[key] = false
	dbg.c8.SetKey(key, false)
}

// Keypad returns the debugger's view of the keypad. Entry n is true if
// keypad key n is currently held down.
func (dbg *Debugger) Keypad() [chip8.NumKeys]bool {
	return dbg.keypad
}
