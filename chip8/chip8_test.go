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

package chip8_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/chip8"
	"github.com/jetsetilly/gopher8/test"
)

// load a program and return the machine ready for ticking.
func load(t *testing.T, code []byte) *chip8.Chip8 {
	t.Helper()
	c8 := chip8.NewChip8()
	test.DemandSuccess(t, c8.LoadROM(code))
	return c8
}

// tick the machine n times, failing the test on any error.
func tick(t *testing.T, c8 *chip8.Chip8, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, c8.Tick())
	}
}

func TestReset(t *testing.T) {
	c8 := chip8.NewChip8()

	test.ExpectEquality(t, c8.PC, uint16(chip8.LoadAddr))
	test.ExpectEquality(t, c8.I, uint16(0))
	test.ExpectEquality(t, c8.SP, uint8(0))

	// the fontset lives at the bottom of RAM
	test.ExpectEquality(t, c8.RAM[0], uint8(0xf0))

	c8.V[5] = 100
	c8.Keys[3] = true
	c8.Framebuffer[0] = 0xff
	c8.Reset()

	test.ExpectEquality(t, c8.V[5], uint8(0))
	test.ExpectEquality(t, c8.Keys[3], false)
	test.ExpectEquality(t, c8.Framebuffer[0], uint8(0))
}

func TestLoadROM(t *testing.T) {
	c8 := chip8.NewChip8()

	test.ExpectSuccess(t, c8.LoadROM([]byte{0x12, 0x00}))
	test.ExpectEquality(t, c8.RAM[chip8.LoadAddr], uint8(0x12))
	test.ExpectEquality(t, c8.RAM[chip8.LoadAddr+1], uint8(0x00))

	// loading implies a reset
	c8.V[0] = 99
	test.ExpectSuccess(t, c8.LoadROM([]byte{0x00, 0xe0}))
	test.ExpectEquality(t, c8.V[0], uint8(0))
	test.ExpectEquality(t, c8.PC, uint16(chip8.LoadAddr))

	// a ROM that fills the program area exactly is fine. one byte more is not
	test.ExpectSuccess(t, c8.LoadROM(make([]byte, chip8.RAMSize-chip8.LoadAddr)))
	test.ExpectFailure(t, c8.LoadROM(make([]byte, chip8.RAMSize-chip8.LoadAddr+1)))
}

func TestJumpAndCall(t *testing.T) {
	// JP 28C
	c8 := load(t, []byte{0x12, 0x8c})
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.PC, uint16(0x28c))

	// CALL 400
	c8 = load(t, []byte{0x24, 0x00})
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.SP, uint8(1))
	test.ExpectEquality(t, c8.PC, uint16(0x400))
	test.ExpectEquality(t, c8.Stack[0], uint16(0x202))

	// CALL 202; RET
	c8 = load(t, []byte{0x22, 0x02, 0x00, 0xee})
	tick(t, c8, 2)
	test.ExpectEquality(t, c8.SP, uint8(0))
	test.ExpectEquality(t, c8.PC, uint16(0x202))
}

func TestSkips(t *testing.T) {
	// SE V5, 0 skips because V5 is zero
	c8 := load(t, []byte{0x35, 0x00})
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.PC, uint16(0x204))

	// SNE V5, 7 skips because V5 is not seven
	c8 = load(t, []byte{0x45, 0x07})
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.PC, uint16(0x204))

	// SE V5, V7 skips because both registers are zero
	c8 = load(t, []byte{0x55, 0x70})
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.PC, uint16(0x204))

	// SNE V5, V7 does not skip for the same reason
	c8 = load(t, []byte{0x95, 0x70})
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.PC, uint16(0x202))

	// LD V5, 0A; SE V5, 0A
	c8 = load(t, []byte{0x65, 0x0a, 0x35, 0x0a})
	tick(t, c8, 2)
	test.ExpectEquality(t, c8.PC, uint16(0x206))

	// SKP V0 without the key held
	c8 = load(t, []byte{0xe0, 0x9e})
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.PC, uint16(0x202))

	// SKP V0 with the key held
	c8 = load(t, []byte{0xe0, 0x9e})
	c8.SetKey(0, true)
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.PC, uint16(0x204))

	// SKNP V0 without the key held
	c8 = load(t, []byte{0xe0, 0xa1})
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.PC, uint16(0x204))

	// SKNP V0 with the key held
	c8 = load(t, []byte{0xe0, 0xa1})
	c8.SetKey(0, true)
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.PC, uint16(0x202))
}

func TestRegisterArithmetic(t *testing.T) {
	// LD V3, 65
	c8 := load(t, []byte{0x63, 0x65})
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.V[3], uint8(0x65))

	// ADD V3, 20
	c8 = load(t, []byte{0x73, 0x20})
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.V[3], uint8(0x20))

	// the immediate form of ADD wraps without touching the carry flag
	c8 = load(t, []byte{0x63, 0xff, 0x73, 0x02})
	tick(t, c8, 2)
	test.ExpectEquality(t, c8.V[3], uint8(0x01))
	test.ExpectEquality(t, c8.V[0xf], uint8(0))

	// LD V0, V1
	c8 = load(t, []byte{0x61, 0x07, 0x80, 0x10})
	tick(t, c8, 2)
	test.ExpectEquality(t, c8.V[0], uint8(0x07))

	// OR, AND and XOR with V0=0C and V1=0A
	c8 = load(t, []byte{0x60, 0x0c, 0x61, 0x0a, 0x80, 0x11})
	tick(t, c8, 3)
	test.ExpectEquality(t, c8.V[0], uint8(0x0e))

	c8 = load(t, []byte{0x60, 0x0c, 0x61, 0x0a, 0x80, 0x12})
	tick(t, c8, 3)
	test.ExpectEquality(t, c8.V[0], uint8(0x08))

	c8 = load(t, []byte{0x60, 0x0c, 0x61, 0x0a, 0x80, 0x13})
	tick(t, c8, 3)
	test.ExpectEquality(t, c8.V[0], uint8(0x06))

	// the register form of ADD records the carry in VF
	c8 = load(t, []byte{0x60, 0xff, 0x61, 0x01, 0x80, 0x14})
	tick(t, c8, 3)
	test.ExpectEquality(t, c8.V[0], uint8(0x00))
	test.ExpectEquality(t, c8.V[0xf], uint8(1))

	c8 = load(t, []byte{0x60, 0x0f, 0x61, 0x01, 0x80, 0x14})
	tick(t, c8, 3)
	test.ExpectEquality(t, c8.V[0], uint8(0x10))
	test.ExpectEquality(t, c8.V[0xf], uint8(0))

	// SUB sets VF when there is no borrow
	c8 = load(t, []byte{0x60, 0x05, 0x61, 0x03, 0x80, 0x15})
	tick(t, c8, 3)
	test.ExpectEquality(t, c8.V[0], uint8(0x02))
	test.ExpectEquality(t, c8.V[0xf], uint8(1))

	c8 = load(t, []byte{0x60, 0x03, 0x61, 0x05, 0x80, 0x15})
	tick(t, c8, 3)
	test.ExpectEquality(t, c8.V[0], uint8(0xfe))
	test.ExpectEquality(t, c8.V[0xf], uint8(0))

	// SUBN works the other way around
	c8 = load(t, []byte{0x60, 0x03, 0x61, 0x0a, 0x80, 0x17})
	tick(t, c8, 3)
	test.ExpectEquality(t, c8.V[0], uint8(0x07))
	test.ExpectEquality(t, c8.V[0xf], uint8(1))

	// SHR shifts Vx and puts the dropped bit in VF
	c8 = load(t, []byte{0x60, 0x05, 0x80, 0x16})
	tick(t, c8, 2)
	test.ExpectEquality(t, c8.V[0], uint8(0x02))
	test.ExpectEquality(t, c8.V[0xf], uint8(1))

	// SHL likewise, from the other end
	c8 = load(t, []byte{0x60, 0x81, 0x80, 0x1e})
	tick(t, c8, 2)
	test.ExpectEquality(t, c8.V[0], uint8(0x02))
	test.ExpectEquality(t, c8.V[0xf], uint8(1))
}

func TestIndexRegister(t *testing.T) {
	// LD I, 570
	c8 := load(t, []byte{0xa5, 0x70})
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.I, uint16(0x570))

	// JP V0, 570 with V0 at zero
	c8 = load(t, []byte{0xb5, 0x70})
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.PC, uint16(0x570))

	// JP V0, 300 with V0 at two
	c8 = load(t, []byte{0x60, 0x02, 0xb3, 0x00})
	tick(t, c8, 2)
	test.ExpectEquality(t, c8.PC, uint16(0x302))

	// ADD I, V0
	c8 = load(t, []byte{0x60, 0x05, 0xf0, 0x1e})
	tick(t, c8, 2)
	test.ExpectEquality(t, c8.I, uint16(5))

	// LD F, V0 points I at the font character
	c8 = load(t, []byte{0x60, 0x05, 0xf0, 0x29})
	tick(t, c8, 2)
	test.ExpectEquality(t, c8.I, uint16(25))
}

func TestRandom(t *testing.T) {
	// RND Vx masks the random byte with the immediate value
	c8 := load(t, []byte{0xc0, 0x0f})
	c8.SetRandSource(func() uint8 {
		return 0xab
	})
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.V[0], uint8(0x0b))

	// a mask of zero always gives zero
	c8 = load(t, []byte{0xc0, 0x00})
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.V[0], uint8(0))
}

func TestDraw(t *testing.T) {
	// DRW V0, V0, 1 with I at zero draws the top row of the font zero. the
	// four leftmost pixels of the display light up
	c8 := load(t, []byte{0xd0, 0x01})
	tick(t, c8, 1)
	for i := 0; i < 4; i++ {
		test.ExpectInequality(t, c8.Framebuffer[i], uint8(0))
	}
	test.ExpectEquality(t, c8.Framebuffer[4], uint8(0))
	test.ExpectEquality(t, c8.V[0xf], uint8(0))

	// drawing the same sprite again erases it and records the collision
	c8 = load(t, []byte{0xd0, 0x01, 0xd0, 0x01})
	tick(t, c8, 2)
	for i := 0; i < 4; i++ {
		test.ExpectEquality(t, c8.Framebuffer[i], uint8(0))
	}
	test.ExpectEquality(t, c8.V[0xf], uint8(1))

	// sprites wrap around both edges of the display
	c8 = load(t, []byte{0x60, 0x3e, 0x61, 0x1e, 0xd0, 0x11})
	tick(t, c8, 3)
	test.ExpectInequality(t, c8.Framebuffer[30*chip8.ScreenWidth+62], uint8(0))
	test.ExpectInequality(t, c8.Framebuffer[30*chip8.ScreenWidth+63], uint8(0))
	test.ExpectInequality(t, c8.Framebuffer[30*chip8.ScreenWidth+0], uint8(0))
	test.ExpectInequality(t, c8.Framebuffer[30*chip8.ScreenWidth+1], uint8(0))

	// CLS
	c8 = load(t, []byte{0xd0, 0x01, 0x00, 0xe0})
	tick(t, c8, 2)
	for i := range c8.Framebuffer {
		if c8.Framebuffer[i] != 0 {
			t.Fatalf("framebuffer not cleared at %d", i)
		}
	}
}

func TestTimers(t *testing.T) {
	// the set timer decays at the end of the same tick, so a value of five
	// reads back as four
	c8 := load(t, []byte{0x60, 0x05, 0xf0, 0x15})
	tick(t, c8, 2)
	test.ExpectEquality(t, c8.DelayTimer, uint8(4))

	c8 = load(t, []byte{0x60, 0x05, 0xf0, 0x18})
	tick(t, c8, 2)
	test.ExpectEquality(t, c8.SoundTimer, uint8(4))

	// LD V0, DT sees the decayed value
	c8 = load(t, []byte{0x60, 0x05, 0xf0, 0x15, 0xf0, 0x07})
	tick(t, c8, 3)
	test.ExpectEquality(t, c8.V[0], uint8(4))

	// timers stop at zero
	c8 = load(t, []byte{0x60, 0x02, 0xf0, 0x15})
	tick(t, c8, 8)
	test.ExpectEquality(t, c8.DelayTimer, uint8(0))
}

func TestWaitForKey(t *testing.T) {
	// LD V0, K repeats until a key is down
	c8 := load(t, []byte{0xf0, 0x0a})
	tick(t, c8, 3)
	test.ExpectEquality(t, c8.PC, uint16(0x200))

	c8.SetKey(5, true)
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.V[0], uint8(5))
	test.ExpectEquality(t, c8.PC, uint16(0x202))

	// the lowest numbered key wins
	c8 = load(t, []byte{0xf0, 0x0a})
	c8.SetKey(9, true)
	c8.SetKey(3, true)
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.V[0], uint8(3))
}

func TestStoreAndLoad(t *testing.T) {
	// LD [I], V2 writes V0 to V2 and advances I
	c8 := load(t, []byte{0x60, 0x0a, 0x61, 0x0b, 0x62, 0x0c, 0xa3, 0x00, 0xf2, 0x55})
	tick(t, c8, 5)
	test.ExpectEquality(t, c8.RAM[0x300], uint8(0x0a))
	test.ExpectEquality(t, c8.RAM[0x301], uint8(0x0b))
	test.ExpectEquality(t, c8.RAM[0x302], uint8(0x0c))
	test.ExpectEquality(t, c8.I, uint16(0x303))

	// LD V1, [I] reads RAM back into the registers. with I at the load
	// address the ROM reads itself
	c8 = load(t, []byte{0xa2, 0x00, 0xf1, 0x65})
	tick(t, c8, 2)
	test.ExpectEquality(t, c8.V[0], uint8(0xa2))
	test.ExpectEquality(t, c8.V[1], uint8(0x00))
	test.ExpectEquality(t, c8.I, uint16(0x202))

	// I advances by x+1 even when the registers are zero
	c8 = load(t, []byte{0xf8, 0x55})
	tick(t, c8, 1)
	test.ExpectEquality(t, c8.I, uint16(9))

	// LD B, V0 writes the BCD representation of V0
	c8 = load(t, []byte{0x60, 0x80, 0xa3, 0x00, 0xf0, 0x33})
	tick(t, c8, 3)
	test.ExpectEquality(t, c8.RAM[0x300], uint8(1))
	test.ExpectEquality(t, c8.RAM[0x301], uint8(2))
	test.ExpectEquality(t, c8.RAM[0x302], uint8(8))
	test.ExpectEquality(t, c8.I, uint16(0x300))
}

func TestUndecodableOpcode(t *testing.T) {
	for _, code := range [][]byte{
		{0x00, 0xfd},
		{0x85, 0x78},
		{0xe0, 0x00},
		{0xf0, 0xff},
	} {
		c8 := load(t, code)
		test.ExpectFailure(t, c8.Tick())
	}
}

func TestStackFaults(t *testing.T) {
	// RET with an empty stack
	c8 := load(t, []byte{0x00, 0xee})
	test.ExpectFailure(t, c8.Tick())

	// CALL 200 calls itself until the stack is full
	c8 = load(t, []byte{0x22, 0x00})
	tick(t, c8, chip8.StackDepth)
	test.ExpectFailure(t, c8.Tick())
}

func TestSnapshot(t *testing.T) {
	c8 := load(t, []byte{0x60, 0x05, 0xf0, 0x15, 0xd0, 0x01})
	tick(t, c8, 3)

	sn := c8.Snapshot()

	// running on changes the machine state
	tick(t, c8, 3)
	test.ExpectInequality(t, c8.State, *sn)

	// plumbing the snapshot restores it exactly
	c8.Plumb(sn)
	test.ExpectEquality(t, c8.State, *sn)
	test.ExpectEquality(t, c8.PC, uint16(0x206))
}

type recordingMixer struct {
	samples []uint8
	err     error
}

func (m *recordingMixer) SetAudio(sample uint8) error {
	if m.err != nil {
		return m.err
	}
	m.samples = append(m.samples, sample)
	return nil
}

func (m *recordingMixer) EndMixing() error {
	return nil
}

func TestAudioMixer(t *testing.T) {
	perTick := chip8.AudioSampleFreq / chip8.ClockHz

	// LD V0, 3; LD ST, V0. the beep sounds while the sound timer decays
	c8 := load(t, []byte{0x60, 0x03, 0xf0, 0x18})
	mix := &recordingMixer{}
	c8.AttachAudio(mix)

	tick(t, c8, 2)
	test.ExpectEquality(t, len(mix.samples), 2*perTick)

	// the first tick is silent. the second carries the square wave
	for _, s := range mix.samples[:perTick] {
		test.ExpectEquality(t, s, uint8(0))
	}

	var tone bool
	for _, s := range mix.samples[perTick:] {
		tone = tone || s > 0
	}
	test.ExpectEquality(t, tone, true)

	// silence returns when the sound timer reaches zero
	tick(t, c8, 2)
	for _, s := range mix.samples[3*perTick:] {
		test.ExpectEquality(t, s, uint8(0))
	}

	// a mixer failure surfaces through Tick()
	mix.err = errors.New("mixer wedged")
	test.ExpectFailure(t, c8.Tick())
}
