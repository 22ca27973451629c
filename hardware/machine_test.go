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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/test"
)

// program is a sparse ROM image. keys are offsets into the ROM file
type program map[int][]uint8

// newMachine creates a machine with a four bank cartridge. the program is
// poked into the ROM through the debug bus
func newMachine(t *testing.T, prg program, tab *hardware.Table) *hardware.Machine {
	t.Helper()

	data := make([]uint8, 4*0x4000)
	copy(data[0x134:], "MACHINE")
	data[0x143] = 0x80
	data[0x147] = 0x10
	data[0x148] = 0x01
	data[0x149] = 0x03

	cart, err := cartridge.NewCartridge(data, &cartridge.FixedClock{})
	test.DemandSuccess(t, err)
	m := hardware.NewMachine(cart, tab)

	for origin, code := range prg {
		address := uint16(origin)
		if origin >= 0x4000 {
			// select the bank with a controller command and poke into the
			// switchable area
			m.Mem.Write(0x2000, uint8(origin/0x4000))
			address = 0x4000 | uint16(origin&0x3fff)
		}
		for i, v := range code {
			m.Mem.Poke(address+uint16(i), v)
		}
	}
	m.Mem.Write(0x2000, 0x01)

	return m
}

func TestNoOpOverride(t *testing.T) {
	tab := hardware.NewTable()
	tab.Add(hardware.Location{Address: 0x0100}, hardware.NewNative("NoOp", func(m *hardware.Machine) {
		m.Return()
	}))

	m := newMachine(t, nil, tab)
	m.Call(0x0100)
	test.ExpectEquality(t, m.Regs().PC, uint16(0x0000))
	test.ExpectEquality(t, m.Regs().SP, uint16(0xfffe))
	test.ExpectEquality(t, m.Cycles, uint64(0))
	test.ExpectEquality(t, m.Depth(), 0)
}

func TestInterpretedCall(t *testing.T) {
	m := newMachine(t, program{
		0x0150: {0x3e, 0x42, 0xc9}, // LD A,0x42; RET
	}, nil)

	m.Call(0x0150)
	test.ExpectEquality(t, m.Regs().A, uint8(0x42))
	test.ExpectEquality(t, m.Regs().PC, uint16(0x0000))
	test.ExpectEquality(t, m.Regs().SP, uint16(0xfffe))

	// two machine cycles for the load and four for the return
	test.ExpectEquality(t, m.Cycles, uint64(24))
}

func TestNestedCalls(t *testing.T) {
	tab := hardware.NewTable()

	// native routine that calls program code and then adds one to the result
	tab.Add(hardware.Location{Address: 0x0100}, hardware.NewNative("Outer", func(m *hardware.Machine) {
		test.ExpectEquality(t, m.Depth(), 1)
		m.Call(0x0150)
		m.Regs().A++
		m.Return()
	}))

	var depth int
	tab.Add(hardware.Location{Address: 0x0160}, hardware.NewNative("Inner", func(m *hardware.Machine) {
		depth = m.Depth()
		m.Regs().B = 0x10
		m.Return()
	}))

	m := newMachine(t, program{
		0x0150: {0xcd, 0x60, 0x01, 0x78, 0xc9}, // CALL 0x0160; LD A,B; RET
	}, tab)

	m.Call(0x0100)
	test.ExpectEquality(t, m.Regs().A, uint8(0x11))
	test.ExpectEquality(t, m.Regs().PC, uint16(0x0000))
	test.ExpectEquality(t, m.Regs().SP, uint16(0xfffe))
	test.ExpectEquality(t, depth, 2)
	test.ExpectEquality(t, m.Depth(), 0)
}

func TestJump(t *testing.T) {
	tab := hardware.NewTable()
	tab.Add(hardware.Location{Address: 0x0100}, hardware.NewNative("Tail", func(m *hardware.Machine) {
		m.Jump(0x0150)
	}))

	m := newMachine(t, program{
		0x0150: {0x06, 0x07, 0xc9}, // LD B,0x07; RET
	}, tab)

	m.Call(0x0100)
	test.ExpectEquality(t, m.Regs().B, uint8(0x07))
	test.ExpectEquality(t, m.Regs().PC, uint16(0x0000))
	test.ExpectEquality(t, m.Regs().SP, uint16(0xfffe))
}

func TestGuard(t *testing.T) {
	tab := hardware.NewTable()

	routine := func(m *hardware.Machine) {
		m.Regs().C = 0x01
		m.Return()
	}
	tab.Add(hardware.Location{Address: 0x0300}, hardware.NewNative("Routine", routine))
	tab.Add(hardware.Location{Address: 0x0308}, hardware.NewGuard("Routine.loop"))

	m := newMachine(t, program{
		0x0150: {0xcd, 0x00, 0x03, 0xc9}, // CALL 0x0300; RET
		0x0160: {0xc3, 0x08, 0x03},       // JP 0x0308
	}, tab)

	// the native replacement does not reach the guard
	test.ExpectNoPanic(t, func() { m.Call(0x0150) })
	test.ExpectEquality(t, m.Regs().C, uint8(0x01))

	// calling the native function directly
	m.Regs().C = 0x00
	m.Push(0x0000)
	test.ExpectNoPanic(t, func() { routine(m) })
	test.ExpectEquality(t, m.Regs().C, uint8(0x01))

	// reaching the guard through interpreted code
	test.ExpectPanic(t, func() { m.Call(0x0160) }, "Routine.loop")
}

func TestBankedOverride(t *testing.T) {
	tab := hardware.NewTable()
	tab.Add(hardware.Location{Bank: 2, Address: 0x4000}, hardware.NewNative("Banked", func(m *hardware.Machine) {
		m.Regs().D = 0x02
		m.Return()
	}))

	m := newMachine(t, program{
		0x4000: {0x16, 0x01, 0xc9}, // bank 1. LD D,0x01; RET
		0x8000: {0x16, 0xff, 0xc9}, // bank 2. never interpreted
	}, tab)

	m.Call(0x4000)
	test.ExpectEquality(t, m.Regs().D, uint8(0x01))

	m.WriteByte(0x2000, 0x02)
	test.ExpectEquality(t, m.Location(), hardware.Location{})
	m.Call(0x4000)
	test.ExpectEquality(t, m.Regs().D, uint8(0x02))
}

func TestInterruptPriority(t *testing.T) {
	m := newMachine(t, program{
		0x0040: {0x04, 0xd9},                   // VBlank. INC B; RETI
		0x0050: {0x48, 0xd9},                   // Timer. LD C,B; RETI
		0x0150: {0xfb, 0x00, 0x00, 0x00, 0xc9}, // EI; NOP; NOP; NOP; RET
	}, nil)

	m.Regs().B = 0
	m.Regs().C = 0
	m.Mem.Interrupts.Enabled = interrupts.VBlank.Bit() | interrupts.Timer.Bit()
	m.Mem.Interrupts.Request(interrupts.Timer)
	m.Mem.Interrupts.Request(interrupts.VBlank)

	m.Call(0x0150)

	// the VBlank handler runs before the Timer handler
	test.ExpectEquality(t, m.Regs().B, uint8(1))
	test.ExpectEquality(t, m.Regs().C, uint8(1))
	test.ExpectEquality(t, m.Mem.Interrupts.Requested, uint8(0))
	test.ExpectEquality(t, m.CPU.IME, true)
	test.ExpectEquality(t, m.Regs().PC, uint16(0x0000))
	test.ExpectEquality(t, m.Regs().SP, uint16(0xfffe))
}

func TestHaltWithoutIME(t *testing.T) {
	m := newMachine(t, program{
		0x0150: {0x76, 0x3e, 0x55, 0xc9}, // HALT; LD A,0x55; RET
	}, nil)

	m.Mem.Interrupts.Enabled = interrupts.Timer.Bit()
	m.Mem.Interrupts.Request(interrupts.Timer)
	m.Call(0x0150)

	// the halt ends but the interrupt is not serviced
	test.ExpectEquality(t, m.Regs().A, uint8(0x55))
	test.ExpectEquality(t, m.CPU.Halted, false)
	test.ExpectEquality(t, m.Mem.Interrupts.Requested, interrupts.Timer.Bit())
}

func TestWait(t *testing.T) {
	m := newMachine(t, program{
		0x0048: {0x0e, 0x33, 0xd9}, // LCDStat. LD C,0x33; RETI
	}, nil)

	// STAT interrupt on entering mode 0
	m.WriteByte(0xff41, 0x08)
	m.Mem.Interrupts.Enabled = interrupts.LCDStat.Bit()
	m.CPU.IME = true

	m.Wait()
	test.ExpectEquality(t, m.Regs().C, uint8(0x33))
	test.ExpectEquality(t, m.CPU.Halted, false)
	test.ExpectInequality(t, m.Cycles, uint64(0))
}

func TestStop(t *testing.T) {
	tab := hardware.NewTable()
	tab.Add(hardware.Location{Address: 0x0100}, hardware.NewNative("Stopper", func(m *hardware.Machine) {
		m.Stop()
	}))

	m := newMachine(t, program{
		0x0150: {0xcd, 0x00, 0x01, 0x18, 0xfe}, // CALL 0x0100; JR -2
		0x0160: {0xc9},                         // RET
		0x0170: {0xd3},                         // undefined
	}, tab)

	test.ExpectEquality(t, m.Execute(0x0150), true)
	test.ExpectEquality(t, m.Stopping(), true)
	test.ExpectEquality(t, m.Depth(), 0)

	m.Reset()
	test.ExpectEquality(t, m.Stopping(), false)
	test.ExpectEquality(t, m.Execute(0x0160), false)

	// panics that are not caused by Stop() are not recovered
	test.ExpectPanic(t, func() { m.Execute(0x0170) }, "undefined opcode")
}

func TestCallDepth(t *testing.T) {
	tab := hardware.NewTable()
	tab.Add(hardware.Location{Address: 0x0100}, hardware.NewNative("Recurse", func(m *hardware.Machine) {
		m.Call(0x0100)
	}))

	// the stack must be large enough for the sentinel of every call
	m := newMachine(t, nil, tab)
	m.Regs().SP = 0xdffe
	test.ExpectPanic(t, func() { m.Call(0x0100) }, "call depth exceeded")
}

func TestTable(t *testing.T) {
	tab := hardware.NewTable()
	tab.Add(hardware.Location{Bank: 5, Address: 0x0008}, hardware.NewGuard("Fixed"))

	// locations in the fixed window are normalised to bank zero
	e, ok := tab.Lookup(hardware.Location{Address: 0x0008})
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, e.IsGuard(), true)
	test.ExpectEquality(t, e.String(), "guard (Fixed)")

	loc, ok := tab.Find("Fixed")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, loc, hardware.Location{Address: 0x0008})

	test.ExpectPanic(t, func() { tab.Add(hardware.Location{Address: 0x0008}, hardware.NewGuard("Again")) }, "already used")
	test.ExpectPanic(t, func() { tab.Add(hardware.Location{Address: 0xc000}, hardware.NewGuard("RAM")) }, "not in ROM")
	test.ExpectEquality(t, tab.Len(), 1)
	test.ExpectEquality(t, tab.String(), "00:0008 guard (Fixed)\n")
}
