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
	"github.com/jetsetilly/gopherboy/hardware/memory/bus"
)

// Memory defines the operations required by the CPU of the address space. The
// address space has no notion of failure. Invalid accesses are fatal and are
// handled (by panicking) by the implementation.
type Memory interface {
	bus.CPUBus

	// SwitchSpeed is called by the STOP instruction. The implementation
	// should switch speed only if a speed switch has been requested.
	SwitchSpeed()
}

// CPU implements the processor of the handheld. The register file is
// exported so that it can be manipulated directly by native replacements of
// program routines.
type CPU struct {
	Regs registers.File

	// interrupt master enable
	IME bool

	// the CPU has executed a HALT instruction and is waiting for an interrupt
	Halted bool

	// delay counters for the DI and EI instructions. the effect of the
	// instruction happens when the counter reaches zero
	delayDI int
	delayEI int

	mem Memory
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem Memory) *CPU {
	return &CPU{
		Regs: registers.NewFile(),
		mem:  mem,
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s IME=%v halted=%v", mc.Regs, mc.IME, mc.Halted)
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem Memory) {
	mc.mem = mem
}

// Reset CPU to its power-on state.
func (mc *CPU) Reset() {
	mc.Regs.Reset()
	mc.IME = false
	mc.Halted = false
	mc.delayDI = 0
	mc.delayEI = 0
}

// PendingIME returns true if either of the DI or EI delay counters are
// running.
func (mc *CPU) PendingIME() bool {
	return mc.delayDI > 0 || mc.delayEI > 0
}

// updateIME is called at the start of every instruction boundary.
func (mc *CPU) updateIME() {
	switch mc.delayDI {
	case 2:
		mc.delayDI = 1
	case 1:
		mc.IME = false
		mc.delayDI = 0
	}
	switch mc.delayEI {
	case 2:
		mc.delayEI = 1
	case 1:
		mc.IME = true
		mc.delayEI = 0
	}
}

// Step executes a single instruction and returns the number of machine cycles
// it took. If the CPU is halted no instruction is executed and the cost is a
// single machine cycle.
func (mc *CPU) Step() int {
	mc.updateIME()
	if mc.Halted {
		return 1
	}
	opcode := mc.fetch8()
	return primary[opcode](mc)
}

// fetch8 reads the byte at PC and advances PC.
func (mc *CPU) fetch8() uint8 {
	v := mc.mem.Read(mc.Regs.PC)
	mc.Regs.PC++
	return v
}

// fetch16 reads the little-endian word at PC and advances PC by two.
func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch8()
	hi := mc.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) write16(address uint16, v uint16) {
	mc.mem.Write(address, uint8(v))
	mc.mem.Write(address+1, uint8(v>>8))
}

// Push a 16-bit value onto the stack.
func (mc *CPU) Push(v uint16) {
	mc.Regs.SP -= 2
	mc.write16(mc.Regs.SP, v)
}

// Pop a 16-bit value from the stack.
func (mc *CPU) Pop() uint16 {
	v := mc.read16(mc.Regs.SP)
	mc.Regs.SP += 2
	return v
}

// operand returns the value of the 8-bit operand with the standard encoding
// used in the opcode tables: B, C, D, E, H, L, (HL), A.
func (mc *CPU) operand(idx uint8) uint8 {
	switch idx {
	case 0:
		return mc.Regs.B
	case 1:
		return mc.Regs.C
	case 2:
		return mc.Regs.D
	case 3:
		return mc.Regs.E
	case 4:
		return mc.Regs.H
	case 5:
		return mc.Regs.L
	case 6:
		return mc.mem.Read(mc.Regs.HL())
	}
	return mc.Regs.A
}

// setOperand is the write counterpart to operand().
func (mc *CPU) setOperand(idx uint8, v uint8) {
	switch idx {
	case 0:
		mc.Regs.B = v
	case 1:
		mc.Regs.C = v
	case 2:
		mc.Regs.D = v
	case 3:
		mc.Regs.E = v
	case 4:
		mc.Regs.H = v
	case 5:
		mc.Regs.L = v
	case 6:
		mc.mem.Write(mc.Regs.HL(), v)
	default:
		mc.Regs.A = v
	}
}

// condition tests one of the four branch conditions: NZ, Z, NC, C.
func (mc *CPU) condition(idx uint8) bool {
	switch idx & 0x03 {
	case 0:
		return !mc.Regs.F.Zero
	case 1:
		return mc.Regs.F.Zero
	case 2:
		return !mc.Regs.F.Carry
	}
	return mc.Regs.F.Carry
}

// jr performs a relative jump using the signed operand at PC.
func (mc *CPU) jr() {
	offset := int8(mc.fetch8())
	mc.Regs.PC = uint16(int32(mc.Regs.PC) + int32(offset))
}
