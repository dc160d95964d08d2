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

import (
	"fmt"
	"math/rand/v2"
)

// Machine dimensions. These values are fixed for all CHIP-8 programs.
const (
	RAMSize      = 4096
	LoadAddr     = 0x200
	NumRegisters = 16
	StackDepth   = 16
	NumKeys      = 16
)

// Dimensions of the display in pixels.
const (
	ScreenWidth  = 64
	ScreenHeight = 32
)

// ClockHz is the suggested rate at which Tick() is called. The machine itself
// does not care about the rate but timer decay and audio generation are tuned
// with this value in mind.
const ClockHz = 240

// State records everything about the machine that changes during execution.
// The fields are exported so that a monitoring process can inspect the
// machine directly, through the embedded State in the Chip8 type.
type State struct {
	// PC is the address of the next instruction to be executed
	PC uint16

	// I is the index register, used for addressing RAM
	I uint16

	// SP is the stack pointer. it indexes the Stack array and points to the
	// first unused entry
	SP uint8

	// the general purpose registers, V0 to VF. VF doubles as the flag
	// register for arithmetic and draw instructions
	V [NumRegisters]uint8

	// both timers decay by one on every call to Tick(), so long as they are
	// above zero
	DelayTimer uint8
	SoundTimer uint8

	// the call stack. only the CALL and RET instructions touch this
	Stack [StackDepth]uint16

	// current condition of the keypad. true indicates that the key is held
	Keys [NumKeys]bool

	// addressable memory. program ROM is loaded at LoadAddr and the fontset
	// at address zero
	RAM [RAMSize]uint8

	// the display. one element per pixel, rows from the top of the screen
	// down. an element is zero for an unlit pixel and non-zero for a lit one
	Framebuffer [ScreenWidth * ScreenHeight]uint8
}

// Values found in the Framebuffer array.
const (
	pixelOff = 0x00
	pixelOn  = 0xff
)

// Chip8 is an emulation of the complete CHIP-8 machine.
type Chip8 struct {
	State

	// source of bytes for the RND instruction
	rand func() uint8

	// audio is sent to the attached mixer as a side effect of Tick(). may be
	// nil in which case no audio is generated
	mixer AudioMixer

	// position in the beep waveform. not part of the snapshotted state
	audioPhase int
}

// NewChip8 is the preferred method of initialisation for the Chip8 type.
func NewChip8() *Chip8 {
	c8 := &Chip8{
		rand: func() uint8 {
			return uint8(rand.UintN(256))
		},
	}
	c8.Reset()
	return c8
}

// Reset machine to its initial state. The program counter is set to LoadAddr
// and the fontset is copied to the bottom of RAM. Everything else, including
// any loaded ROM, is zeroed.
func (c8 *Chip8) Reset() {
	c8.State = State{}
	c8.PC = LoadAddr
	copy(c8.RAM[:], fontset[:])
}

// LoadROM resets the machine and copies the ROM data into RAM at LoadAddr.
// An error is returned if the data is too large to fit.
func (c8 *Chip8) LoadROM(data []byte) error {
	if len(data) > RAMSize-LoadAddr {
		return fmt.Errorf("chip8: rom is too large (%d bytes)", len(data))
	}
	c8.Reset()
	copy(c8.RAM[LoadAddr:], data)
	return nil
}

// SetKey records the condition of a single key on the keypad. Keys outside
// the range 0 to NumKeys-1 are ignored.
func (c8 *Chip8) SetKey(key int, pressed bool) {
	if key < 0 || key >= NumKeys {
		return
	}
	c8.Keys[key] = pressed
}

// Peek returns the byte at the specified RAM address. Addresses outside the
// addressable range return zero.
func (c8 *Chip8) Peek(addr uint16) uint8 {
	if int(addr) >= RAMSize {
		return 0
	}
	return c8.RAM[addr]
}

// SetRandSource overrides the default source of bytes for the RND
// instruction. Useful for tests that need predictable results.
func (c8 *Chip8) SetRandSource(f func() uint8) {
	c8.rand = f
}
