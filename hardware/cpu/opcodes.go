// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/cpu/registers"
)

// instruction implementations execute the instruction (the opcode has already
// been fetched) and return the number of machine cycles consumed.
type instruction func(mc *CPU) int

// the primary opcode table. every entry is populated. entries for undefined
// opcodes panic.
var primary [256]instruction

// undefined opcodes cannot be recovered from. the program being emulated is
// fixed and so reaching one of these indicates an emulation error.
func (mc *CPU) undefined(opcode uint8) {
	panic(fmt.Sprintf("cpu: undefined opcode %#02x at %#04x", opcode, mc.Regs.PC-1))
}

// register pairs as encoded in bits 4 and 5 of the opcode. index 3 is SP
func (mc *CPU) pair(idx uint8) uint16 {
	switch idx {
	case 0:
		return mc.Regs.BC()
	case 1:
		return mc.Regs.DE()
	case 2:
		return mc.Regs.HL()
	}
	return mc.Regs.SP
}

func (mc *CPU) setPair(idx uint8, v uint16) {
	switch idx {
	case 0:
		mc.Regs.SetBC(v)
	case 1:
		mc.Regs.SetDE(v)
	case 2:
		mc.Regs.SetHL(v)
	default:
		mc.Regs.SP = v
	}
}

// as above but index 3 is AF. used by PUSH and POP
func (mc *CPU) stackPair(idx uint8) uint16 {
	if idx == 3 {
		return mc.Regs.AF()
	}
	return mc.pair(idx)
}

func (mc *CPU) setStackPair(idx uint8, v uint16) {
	if idx == 3 {
		mc.Regs.SetAF(v)
		return
	}
	mc.setPair(idx, v)
}

// the eight accumulator operations in the order they are encoded in bits 3
// to 5 of the opcode
var accumulatorOps = [8]func(r *registers.File, v uint8){
	func(r *registers.File, v uint8) { Add(r, v, false) },
	func(r *registers.File, v uint8) { Add(r, v, true) },
	func(r *registers.File, v uint8) { Sub(r, v, false) },
	func(r *registers.File, v uint8) { Sub(r, v, true) },
	And,
	Xor,
	Or,
	Compare,
}

func init() {
	for i := range primary {
		opcode := uint8(i)
		primary[i] = func(mc *CPU) int {
			mc.undefined(opcode)
			return 0
		}
	}

	// LD r,r'
	for i := 0x40; i <= 0x7f; i++ {
		dst := uint8(i>>3) & 0x07
		src := uint8(i) & 0x07
		cycles := 1
		if dst == 6 || src == 6 {
			cycles = 2
		}
		primary[i] = func(mc *CPU) int {
			mc.setOperand(dst, mc.operand(src))
			return cycles
		}
	}

	// HALT replaces LD (HL),(HL)
	primary[0x76] = func(mc *CPU) int {
		mc.Halted = true
		return 1
	}

	// ADD, ADC, SUB, SBC, AND, XOR, OR, CP with register operand
	for i := 0x80; i <= 0xbf; i++ {
		op := accumulatorOps[(i>>3)&0x07]
		src := uint8(i) & 0x07
		cycles := 1
		if src == 6 {
			cycles = 2
		}
		primary[i] = func(mc *CPU) int {
			op(&mc.Regs, mc.operand(src))
			return cycles
		}
	}

	for y := uint8(0); y < 8; y++ {
		y := y
		op := accumulatorOps[y]

		// accumulator operations with immediate operand
		primary[0xc6|y<<3] = func(mc *CPU) int {
			op(&mc.Regs, mc.fetch8())
			return 2
		}

		// INC r
		cycles := 1
		if y == 6 {
			cycles = 3
		}
		primary[0x04|y<<3] = func(mc *CPU) int {
			mc.setOperand(y, Inc(&mc.Regs, mc.operand(y)))
			return cycles
		}

		// DEC r
		primary[0x05|y<<3] = func(mc *CPU) int {
			mc.setOperand(y, Dec(&mc.Regs, mc.operand(y)))
			return cycles
		}

		// LD r,d8
		ldCycles := 2
		if y == 6 {
			ldCycles = 3
		}
		primary[0x06|y<<3] = func(mc *CPU) int {
			mc.setOperand(y, mc.fetch8())
			return ldCycles
		}

		// RST
		vector := uint16(y) << 3
		primary[0xc7|y<<3] = func(mc *CPU) int {
			mc.Push(mc.Regs.PC)
			mc.Regs.PC = vector
			return 4
		}
	}

	for p := uint8(0); p < 4; p++ {
		p := p

		// LD rr,d16
		primary[0x01|p<<4] = func(mc *CPU) int {
			mc.setPair(p, mc.fetch16())
			return 3
		}

		// INC rr
		primary[0x03|p<<4] = func(mc *CPU) int {
			mc.setPair(p, mc.pair(p)+1)
			return 2
		}

		// DEC rr
		primary[0x0b|p<<4] = func(mc *CPU) int {
			mc.setPair(p, mc.pair(p)-1)
			return 2
		}

		// ADD HL,rr
		primary[0x09|p<<4] = func(mc *CPU) int {
			AddHL(&mc.Regs, mc.pair(p))
			return 2
		}

		// PUSH rr
		primary[0xc5|p<<4] = func(mc *CPU) int {
			mc.Push(mc.stackPair(p))
			return 4
		}

		// POP rr
		primary[0xc1|p<<4] = func(mc *CPU) int {
			mc.setStackPair(p, mc.Pop())
			return 3
		}

		// JR cc,e
		primary[0x20|p<<3] = func(mc *CPU) int {
			if mc.condition(p) {
				mc.jr()
				return 3
			}
			mc.Regs.PC++
			return 2
		}

		// RET cc
		primary[0xc0|p<<3] = func(mc *CPU) int {
			if mc.condition(p) {
				mc.Regs.PC = mc.Pop()
				return 5
			}
			return 2
		}

		// JP cc,a16
		primary[0xc2|p<<3] = func(mc *CPU) int {
			address := mc.fetch16()
			if mc.condition(p) {
				mc.Regs.PC = address
				return 4
			}
			return 3
		}

		// CALL cc,a16
		primary[0xc4|p<<3] = func(mc *CPU) int {
			address := mc.fetch16()
			if mc.condition(p) {
				mc.Push(mc.Regs.PC)
				mc.Regs.PC = address
				return 6
			}
			return 3
		}
	}

	// NOP
	primary[0x00] = func(mc *CPU) int {
		return 1
	}

	// STOP. only meaningful for the speed switch
	primary[0x10] = func(mc *CPU) int {
		mc.mem.SwitchSpeed()
		return 1
	}

	// LD (rr),A and LD A,(rr)
	primary[0x02] = func(mc *CPU) int {
		mc.mem.Write(mc.Regs.BC(), mc.Regs.A)
		return 2
	}
	primary[0x12] = func(mc *CPU) int {
		mc.mem.Write(mc.Regs.DE(), mc.Regs.A)
		return 2
	}
	primary[0x22] = func(mc *CPU) int {
		mc.mem.Write(mc.Regs.HLI(), mc.Regs.A)
		return 2
	}
	primary[0x32] = func(mc *CPU) int {
		mc.mem.Write(mc.Regs.HLD(), mc.Regs.A)
		return 2
	}
	primary[0x0a] = func(mc *CPU) int {
		mc.Regs.A = mc.mem.Read(mc.Regs.BC())
		return 2
	}
	primary[0x1a] = func(mc *CPU) int {
		mc.Regs.A = mc.mem.Read(mc.Regs.DE())
		return 2
	}
	primary[0x2a] = func(mc *CPU) int {
		mc.Regs.A = mc.mem.Read(mc.Regs.HLI())
		return 2
	}
	primary[0x3a] = func(mc *CPU) int {
		mc.Regs.A = mc.mem.Read(mc.Regs.HLD())
		return 2
	}

	// rotates of the accumulator
	primary[0x07] = func(mc *CPU) int {
		rotateA(&mc.Regs, RLC)
		return 1
	}
	primary[0x0f] = func(mc *CPU) int {
		rotateA(&mc.Regs, RRC)
		return 1
	}
	primary[0x17] = func(mc *CPU) int {
		rotateA(&mc.Regs, RL)
		return 1
	}
	primary[0x1f] = func(mc *CPU) int {
		rotateA(&mc.Regs, RR)
		return 1
	}

	// LD (a16),SP
	primary[0x08] = func(mc *CPU) int {
		mc.write16(mc.fetch16(), mc.Regs.SP)
		return 5
	}

	// JR e
	primary[0x18] = func(mc *CPU) int {
		mc.jr()
		return 3
	}

	primary[0x27] = func(mc *CPU) int {
		DAA(&mc.Regs)
		return 1
	}
	primary[0x2f] = func(mc *CPU) int {
		CPL(&mc.Regs)
		return 1
	}
	primary[0x37] = func(mc *CPU) int {
		SCF(&mc.Regs)
		return 1
	}
	primary[0x3f] = func(mc *CPU) int {
		CCF(&mc.Regs)
		return 1
	}

	// JP a16
	primary[0xc3] = func(mc *CPU) int {
		mc.Regs.PC = mc.fetch16()
		return 4
	}

	// RET
	primary[0xc9] = func(mc *CPU) int {
		mc.Regs.PC = mc.Pop()
		return 4
	}

	// RETI. interrupts are enabled after the next instruction boundary
	primary[0xd9] = func(mc *CPU) int {
		mc.Regs.PC = mc.Pop()
		mc.delayEI = 1
		return 4
	}

	// CALL a16
	primary[0xcd] = func(mc *CPU) int {
		address := mc.fetch16()
		mc.Push(mc.Regs.PC)
		mc.Regs.PC = address
		return 6
	}

	// extended opcode space
	primary[0xcb] = func(mc *CPU) int {
		return extended[mc.fetch8()](mc)
	}

	// LDH (a8),A and LDH A,(a8)
	primary[0xe0] = func(mc *CPU) int {
		mc.mem.Write(0xff00|uint16(mc.fetch8()), mc.Regs.A)
		return 3
	}
	primary[0xf0] = func(mc *CPU) int {
		mc.Regs.A = mc.mem.Read(0xff00 | uint16(mc.fetch8()))
		return 3
	}

	// LD (C),A and LD A,(C)
	primary[0xe2] = func(mc *CPU) int {
		mc.mem.Write(0xff00|uint16(mc.Regs.C), mc.Regs.A)
		return 2
	}
	primary[0xf2] = func(mc *CPU) int {
		mc.Regs.A = mc.mem.Read(0xff00 | uint16(mc.Regs.C))
		return 2
	}

	// ADD SP,e
	primary[0xe8] = func(mc *CPU) int {
		mc.Regs.SP = AddSPOffset(&mc.Regs, mc.fetch8())
		return 4
	}

	// LD HL,SP+e
	primary[0xf8] = func(mc *CPU) int {
		mc.Regs.SetHL(AddSPOffset(&mc.Regs, mc.fetch8()))
		return 3
	}

	// LD SP,HL
	primary[0xf9] = func(mc *CPU) int {
		mc.Regs.SP = mc.Regs.HL()
		return 2
	}

	// JP HL
	primary[0xe9] = func(mc *CPU) int {
		mc.Regs.PC = mc.Regs.HL()
		return 1
	}

	// LD (a16),A and LD A,(a16)
	primary[0xea] = func(mc *CPU) int {
		mc.mem.Write(mc.fetch16(), mc.Regs.A)
		return 4
	}
	primary[0xfa] = func(mc *CPU) int {
		mc.Regs.A = mc.mem.Read(mc.fetch16())
		return 4
	}

	// DI and EI. the effect is delayed
	primary[0xf3] = func(mc *CPU) int {
		mc.delayDI = 2
		return 1
	}
	primary[0xfb] = func(mc *CPU) int {
		mc.delayEI = 2
		return 1
	}
}
