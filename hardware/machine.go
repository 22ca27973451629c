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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/cpu"
	"github.com/jetsetilly/gopherboy/hardware/cpu/registers"
	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
)

// MaxCallDepth is the maximum nesting of Call() and Jump(). Nesting happens
// when native replacements call into program code and when interrupts are
// serviced. Exceeding the depth is a fatal error.
const MaxCallDepth = 1024

// Machine is the CPU, the address space and the override table treated as
// one unit.
type Machine struct {
	CPU *cpu.CPU
	Mem *memory.Memory

	// the number of CPU cycles (not machine cycles) since the last reset
	Cycles uint64

	table *Table
	depth int

	// Stop() has been called
	stopping bool

	// called before every interpreted instruction
	tracer func(m *Machine)
}

// NewMachine is the preferred method of initialisation for the Machine type.
// The table may be nil.
func NewMachine(cart *cartridge.Cartridge, table *Table) *Machine {
	m := &Machine{
		Mem:   memory.NewMemory(cart),
		table: table,
	}
	m.CPU = cpu.NewCPU(m.Mem)
	return m
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s %s depth=%d", m.Location(), m.CPU, m.depth)
}

// Reset the machine to its power-on state.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.Mem.Reset()
	m.Cycles = 0
	m.depth = 0
	m.stopping = false
}

// Regs returns the register file for direct manipulation.
func (m *Machine) Regs() *registers.File {
	return &m.CPU.Regs
}

// Location returns the current location of the program counter.
func (m *Machine) Location() Location {
	return NormaliseLocation(m.Mem.ROMBank(), m.CPU.Regs.PC)
}

// Depth returns the current nesting of Call() and Jump().
func (m *Machine) Depth() int {
	return m.depth
}

// Table returns the override table used by the machine. May be nil.
func (m *Machine) Table() *Table {
	return m.table
}

// SetTracer sets a function to be called before every interpreted
// instruction. A nil function removes the tracer.
func (m *Machine) SetTracer(tracer func(m *Machine)) {
	m.tracer = tracer
}
