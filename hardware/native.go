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

// Functions in this file are for the benefit of native replacements of
// program routines. Register access is through Regs().

// ReadByte returns the byte at the address.
func (m *Machine) ReadByte(address uint16) uint8 {
	return m.Mem.Read(address)
}

// WriteByte writes the byte to the address.
func (m *Machine) WriteByte(address uint16, data uint8) {
	m.Mem.Write(address, data)
}

// ReadWord returns the little-endian word at the address.
func (m *Machine) ReadWord(address uint16) uint16 {
	lo := m.Mem.Read(address)
	hi := m.Mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes the word to the address in little-endian order.
func (m *Machine) WriteWord(address uint16, data uint16) {
	m.Mem.Write(address, uint8(data))
	m.Mem.Write(address+1, uint8(data>>8))
}

// Push the value onto the stack.
func (m *Machine) Push(v uint16) {
	m.CPU.Push(v)
}

// Pop a value from the stack.
func (m *Machine) Pop() uint16 {
	return m.CPU.Pop()
}

// Return from a native replacement. The program counter is loaded from the
// stack.
func (m *Machine) Return() {
	m.CPU.Regs.PC = m.CPU.Pop()
}

// Advance the peripherals by the number of CPU cycles.
func (m *Machine) Advance(cycles int) {
	m.Cycles += uint64(m.Mem.Advance(cycles))
}

// Wait halts the CPU and advances the peripherals until an interrupt ends the
// halt. Enabled interrupts are serviced before Wait() returns.
func (m *Machine) Wait() {
	m.CPU.Halted = true
	for m.CPU.Halted {
		m.checkStop()
		m.Advance(4)
		m.serviceInterrupts()
	}
}
