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
)

// Tick runs the instruction at the current program counter and decays the
// two timers. An error is returned if the instruction cannot be decoded, if
// it attempts an illegal access, or if an attached AudioMixer fails. The
// machine is never advanced by more than one instruction per call.
func (c8 *Chip8) Tick() error {
	if int(c8.PC)+1 >= RAMSize {
		return fmt.Errorf("chip8: program counter out of range (%04x)", c8.PC)
	}

	opcode := uint16(c8.RAM[c8.PC])<<8 | uint16(c8.RAM[c8.PC+1])
	c8.PC += 2

	if err := c8.execute(opcode); err != nil {
		return err
	}

	if c8.DelayTimer > 0 {
		c8.DelayTimer--
	}
	if c8.SoundTimer > 0 {
		c8.SoundTimer--
	}

	return c8.mix()
}

func (c8 *Chip8) decodeError(opcode uint16) error {
	return fmt.Errorf("chip8: undecodable opcode %04x at address %04x", opcode, c8.PC-2)
}

func (c8 *Chip8) execute(opcode uint16) error {
	x := (opcode & 0x0f00) >> 8
	y := (opcode & 0x00f0) >> 4
	nnn := opcode & 0x0fff
	kk := uint8(opcode)
	n := opcode & 0x000f

	switch opcode & 0xf000 {
	case 0x0000:
		switch opcode & 0x000f {
		case 0x0:
			// CLS
			for i := range c8.Framebuffer {
				c8.Framebuffer[i] = pixelOff
			}
		case 0xe:
			// RET
			if c8.SP == 0 {
				return fmt.Errorf("chip8: stack underflow at address %04x", c8.PC-2)
			}
			c8.SP--
			c8.PC = c8.Stack[c8.SP]
		default:
			return c8.decodeError(opcode)
		}

	case 0x1000:
		// JP nnn
		c8.PC = nnn

	case 0x2000:
		// CALL nnn
		if c8.SP >= StackDepth {
			return fmt.Errorf("chip8: stack overflow at address %04x", c8.PC-2)
		}
		c8.Stack[c8.SP] = c8.PC
		c8.SP++
		c8.PC = nnn

	case 0x3000:
		// SE Vx, kk
		if c8.V[x] == kk {
			c8.PC += 2
		}

	case 0x4000:
		// SNE Vx, kk
		if c8.V[x] != kk {
			c8.PC += 2
		}

	case 0x5000:
		// SE Vx, Vy
		if c8.V[x] == c8.V[y] {
			c8.PC += 2
		}

	case 0x6000:
		// LD Vx, kk
		c8.V[x] = kk

	case 0x7000:
		// ADD Vx, kk. the carry flag is not affected
		c8.V[x] += kk

	case 0x8000:
		switch opcode & 0x000f {
		case 0x0:
			// LD Vx, Vy
			c8.V[x] = c8.V[y]
		case 0x1:
			// OR Vx, Vy
			c8.V[x] |= c8.V[y]
		case 0x2:
			// AND Vx, Vy
			c8.V[x] &= c8.V[y]
		case 0x3:
			// XOR Vx, Vy
			c8.V[x] ^= c8.V[y]
		case 0x4:
			// ADD Vx, Vy. VF records the carry
			sum := uint16(c8.V[x]) + uint16(c8.V[y])
			if sum > 0xff {
				c8.V[0xf] = 1
			} else {
				c8.V[0xf] = 0
			}
			c8.V[x] = uint8(sum)
		case 0x5:
			// SUB Vx, Vy. VF records NOT borrow
			if c8.V[x] > c8.V[y] {
				c8.V[0xf] = 1
			} else {
				c8.V[0xf] = 0
			}
			c8.V[x] -= c8.V[y]
		case 0x6:
			// SHR Vx, Vy. Vx is shifted, Vy is not consulted
			c8.V[0xf] = c8.V[x] & 0x01
			c8.V[x] >>= 1
		case 0x7:
			// SUBN Vx, Vy
			if c8.V[y] > c8.V[x] {
				c8.V[0xf] = 1
			} else {
				c8.V[0xf] = 0
			}
			c8.V[x] = c8.V[y] - c8.V[x]
		case 0xe:
			// SHL Vx, Vy. as with SHR, Vx is shifted
			c8.V[0xf] = (c8.V[x] & 0x80) >> 7
			c8.V[x] <<= 1
		default:
			return c8.decodeError(opcode)
		}

	case 0x9000:
		// SNE Vx, Vy
		if c8.V[x] != c8.V[y] {
			c8.PC += 2
		}

	case 0xa000:
		// LD I, nnn
		c8.I = nnn

	case 0xb000:
		// JP V0, nnn
		c8.PC = uint16(c8.V[0]) + nnn

	case 0xc000:
		// RND Vx, kk
		c8.V[x] = c8.rand() & kk

	case 0xd000:
		// DRW Vx, Vy, n
		return c8.drawSprite(x, y, n)

	case 0xe000:
		key := c8.V[x]
		if key >= NumKeys {
			return fmt.Errorf("chip8: key number out of range (%d) at address %04x", key, c8.PC-2)
		}
		switch opcode & 0x000f {
		case 0xe:
			// SKP Vx
			if c8.Keys[key] {
				c8.PC += 2
			}
		case 0x1:
			// SKNP Vx
			if !c8.Keys[key] {
				c8.PC += 2
			}
		default:
			return c8.decodeError(opcode)
		}

	case 0xf000:
		switch opcode & 0x00ff {
		case 0x07:
			// LD Vx, DT
			c8.V[x] = c8.DelayTimer
		case 0x0a:
			// LD Vx, K. the instruction repeats until a key is down. the
			// lowest numbered key wins if more than one is down
			pressed := false
			for k := 0; k < NumKeys; k++ {
				if c8.Keys[k] {
					c8.V[x] = uint8(k)
					pressed = true
					break
				}
			}
			if !pressed {
				c8.PC -= 2
			}
		case 0x15:
			// LD DT, Vx
			c8.DelayTimer = c8.V[x]
		case 0x18:
			// LD ST, Vx
			c8.SoundTimer = c8.V[x]
		case 0x1e:
			// ADD I, Vx
			c8.I += uint16(c8.V[x])
		case 0x29:
			// LD F, Vx. point I at the font character for the value in Vx
			c8.I = uint16(c8.V[x]) * fontBytesPerChar
		case 0x33:
			// LD B, Vx. BCD representation of Vx at I, I+1 and I+2
			if int(c8.I)+2 >= RAMSize {
				return fmt.Errorf("chip8: memory write out of range (%04x) at address %04x", c8.I, c8.PC-2)
			}
			v := c8.V[x]
			c8.RAM[c8.I] = v / 100 % 10
			c8.RAM[c8.I+1] = v / 10 % 10
			c8.RAM[c8.I+2] = v % 10
		case 0x55:
			// LD [I], Vx. I is advanced as a side effect
			if int(c8.I)+int(x) >= RAMSize {
				return fmt.Errorf("chip8: memory write out of range (%04x) at address %04x", c8.I, c8.PC-2)
			}
			for i := uint16(0); i <= x; i++ {
				c8.RAM[c8.I+i] = c8.V[i]
			}
			c8.I += x + 1
		case 0x65:
			// LD Vx, [I]. I is advanced as a side effect
			if int(c8.I)+int(x) >= RAMSize {
				return fmt.Errorf("chip8: memory read out of range (%04x) at address %04x", c8.I, c8.PC-2)
			}
			for i := uint16(0); i <= x; i++ {
				c8.V[i] = c8.RAM[c8.I+i]
			}
			c8.I += x + 1
		default:
			return c8.decodeError(opcode)
		}
	}

	return nil
}

// drawSprite implements the DRW instruction. Sprites are XORed onto the
// display, wrapping at the screen edges, with VF recording whether any pixel
// was unset by the draw.
func (c8 *Chip8) drawSprite(x, y, height uint16) error {
	xPos := int(c8.V[x])
	yPos := int(c8.V[y])

	c8.V[0xf] = 0

	for row := 0; row < int(height); row++ {
		addr := int(c8.I) + row
		if addr >= RAMSize {
			return fmt.Errorf("chip8: sprite read out of range (%04x) at address %04x", addr, c8.PC-2)
		}
		spr := c8.RAM[addr]

		for col := 0; col < 8; col++ {
			if spr&(0x80>>col) == 0 {
				continue
			}

			idx := ((yPos+row)%ScreenHeight)*ScreenWidth + (xPos+col)%ScreenWidth
			if c8.Framebuffer[idx] == pixelOn {
				c8.V[0xf] = 1
			}
			c8.Framebuffer[idx] ^= pixelOn
		}
	}

	return nil
}
