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

import "github.com/jetsetilly/gopherboy/hardware/cpu/registers"

// the extended opcode table, reached through opcode 0xcb. all 256 entries are
// defined.
var extended [256]instruction

// rotate and shift operations in the order they are encoded in bits 3 to 5
// of the extended opcode
var shiftOps = [8]func(r *registers.File, v uint8) uint8{
	RLC, RRC, RL, RR, SLA, SRA, Swap, SRL,
}

func init() {
	for i := range extended {
		y := uint8(i>>3) & 0x07
		z := uint8(i) & 0x07
		mem := z == 6

		switch i >> 6 {
		case 0:
			// rotates and shifts
			op := shiftOps[y]
			cycles := 2
			if mem {
				cycles = 4
			}
			extended[i] = func(mc *CPU) int {
				mc.setOperand(z, op(&mc.Regs, mc.operand(z)))
				return cycles
			}

		case 1:
			// BIT is a pure test. the memory form has no write cycle
			cycles := 2
			if mem {
				cycles = 3
			}
			extended[i] = func(mc *CPU) int {
				Bit(&mc.Regs, y, mc.operand(z))
				return cycles
			}

		case 2:
			// RES
			cycles := 2
			if mem {
				cycles = 4
			}
			mask := ^(uint8(1) << y)
			extended[i] = func(mc *CPU) int {
				mc.setOperand(z, mc.operand(z)&mask)
				return cycles
			}

		case 3:
			// SET
			cycles := 2
			if mem {
				cycles = 4
			}
			bit := uint8(1) << y
			extended[i] = func(mc *CPU) int {
				mc.setOperand(z, mc.operand(z)|bit)
				return cycles
			}
		}
	}
}
