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

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
)

// the return address pushed by Call(). the call is complete when the program
// counter reaches this value
const sentinel = uint16(0x0000)

// stopSignal is the panic value used to unwind the trampoline after Stop()
// has been called.
type stopSignal struct{}

// Stop the machine. The trampoline unwinds at the next iteration and the
// outermost Execute() returns. Stop() must be called from the goroutine
// running the machine.
func (m *Machine) Stop() {
	m.stopping = true
}

// Stopping returns true if Stop() has been called.
func (m *Machine) Stopping() bool {
	return m.stopping
}

func (m *Machine) checkStop() {
	if m.stopping {
		panic(stopSignal{})
	}
}

// Execute calls the program routine at the address. It returns false when the
// routine returns and true if the machine was stopped. Any other panic raised
// while running is not recovered.
func (m *Machine) Execute(address uint16) (stopped bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(stopSignal); !ok {
				panic(r)
			}
			m.depth = 0
			stopped = true
		}
	}()

	m.Call(address)
	return false
}

// Call the program routine at the address. The function returns when the
// routine returns. A native replacement that calls program code should use
// this function.
func (m *Machine) Call(address uint16) {
	m.depth++
	if m.depth > MaxCallDepth {
		panic(fmt.Sprintf("machine: call depth exceeded calling %#04x from %s", address, m.Location()))
	}

	m.CPU.Push(sentinel)
	m.CPU.Regs.PC = address

	for m.CPU.Regs.PC != sentinel {
		m.checkStop()
		m.iterate()
		m.serviceInterrupts()
	}

	m.depth--
}

// Jump to the program routine at the address. When the routine returns, the
// program counter is loaded with the value on the top of the stack. This is
// the equivalent of a tail call from a native replacement.
func (m *Machine) Jump(address uint16) {
	m.Call(address)
	m.CPU.Regs.PC = m.CPU.Pop()
}

// iterate is a single iteration of the trampoline.
func (m *Machine) iterate() {
	if m.CPU.Regs.PC <= addresses.ROMMemtop {
		loc := m.Location()
		if e, ok := m.table.Lookup(loc); ok {
			if e.IsGuard() {
				panic(fmt.Sprintf("machine: reached %s at %s", e, loc))
			}
			e.Native(m)
			return
		}
	}

	if m.tracer != nil {
		m.tracer(m)

		// the tracer may have stopped the machine
		if m.stopping {
			return
		}
	}

	m.Cycles += uint64(m.Mem.Advance(m.CPU.Step() * 4))
}

// serviceInterrupts is called after every iteration of the trampoline.
func (m *Machine) serviceInterrupts() {
	if !m.CPU.IME && !m.CPU.Halted {
		return
	}

	src, ok := m.Mem.Interrupts.Pending()
	if !ok {
		return
	}

	// a pending interrupt always ends the halt. it is only serviced if
	// interrupts are enabled
	m.CPU.Halted = false
	if !m.CPU.IME {
		return
	}

	m.CPU.IME = false
	m.Mem.Interrupts.Acknowledge(src)

	pc := m.CPU.Regs.PC
	m.Call(interrupts.Vector(src))
	m.CPU.Regs.PC = pc
}
