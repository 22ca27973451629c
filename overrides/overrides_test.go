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

package overrides_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/overrides"
	"github.com/jetsetilly/gopherboy/test"
)

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()

	data := make([]uint8, 4*0x4000)
	copy(data[0x134:], "OVERRIDES")
	data[0x143] = 0x80
	data[0x147] = 0x10
	data[0x148] = 0x01
	data[0x149] = 0x03

	prg := map[int][]uint8{
		// VBlank handler. XOR A; LD (VBlankOccurred),A; RETI
		0x0040: {0xaf, 0xea, 0xf0, 0xcf, 0xd9},

		// FarCall test. LD A,2; LD HL,0x4100; RST 08; RET
		0x0150: {0x3e, 0x02, 0x21, 0x00, 0x41, 0xcf, 0xc9},

		// Bankswitch test. LD A,3; RST 10; RET
		0x0160: {0x3e, 0x03, 0xd7, 0xc9},

		// CopyBytes test. LD HL,0xc000; LD DE,0xc100; LD BC,5; RST 20; RET
		0x0170: {0x21, 0x00, 0xc0, 0x11, 0x00, 0xc1, 0x01, 0x05, 0x00, 0xe7, 0xc9},

		// JumpTable test. LD HL,0x0200; LD A,1; RST 28; RET
		0x0180: {0x21, 0x00, 0x02, 0x3e, 0x01, 0xef, 0xc9},

		// DelayFrame test. CALL 0x0068; RET
		0x0190: {0xcd, 0x68, 0x00, 0xc9},

		// jumps to guarded labels
		0x01a0: {0xc3, 0x70, 0x00},
		0x01a4: {0xc3, 0x78, 0x00},
		0x01a8: {0xc3, 0x80, 0x00},

		// jump table and its targets. LD B,n; RET
		0x0200: {0x00, 0x03, 0x10, 0x03},
		0x0300: {0x06, 0x01, 0xc9},
		0x0310: {0x06, 0x02, 0xc9},

		// far routines in banks 1 and 2. LD B,n; RET
		0x4100: {0x06, 0x11, 0xc9},
		0x8100: {0x06, 0x22, 0xc9},
	}
	for origin, code := range prg {
		copy(data[origin:], code)
	}

	cart, err := cartridge.NewCartridge(data, &cartridge.FixedClock{})
	test.DemandSuccess(t, err)
	return hardware.NewMachine(cart, overrides.NewTable())
}

func TestTable(t *testing.T) {
	tab := overrides.NewTable()
	test.ExpectEquality(t, tab.Len(), 10)

	loc, ok := tab.Find("CopyBytes")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, loc, hardware.Location{Address: overrides.CopyBytesAddress})

	e, ok := tab.Lookup(hardware.Location{Address: 0x0080})
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, e.IsGuard(), true)
	test.ExpectEquality(t, e.Name, "ByteFill.loop")
}

func TestFarCall(t *testing.T) {
	m := newMachine(t)
	m.WriteByte(overrides.HROMBank, 0x01)

	m.Call(0x0150)
	test.ExpectEquality(t, m.Regs().B, uint8(0x22))
	test.ExpectEquality(t, m.Mem.ROMBank(), 1)
	test.ExpectEquality(t, m.ReadByte(overrides.HROMBank), uint8(0x01))
	test.ExpectEquality(t, m.Regs().PC, uint16(0x0000))
	test.ExpectEquality(t, m.Regs().SP, uint16(0xfffe))
	test.ExpectEquality(t, m.Depth(), 0)
}

func TestBankswitch(t *testing.T) {
	m := newMachine(t)
	m.Call(0x0160)
	test.ExpectEquality(t, m.Mem.ROMBank(), 3)
	test.ExpectEquality(t, m.ReadByte(overrides.HROMBank), uint8(0x03))
}

func TestAddNTimes(t *testing.T) {
	m := newMachine(t)
	r := m.Regs()

	r.SetHL(0x1000)
	r.SetBC(0x0010)
	r.A = 3
	m.Push(0x0000)
	overrides.AddNTimes(m)
	test.ExpectEquality(t, r.HL(), uint16(0x1030))
	test.ExpectEquality(t, r.A, uint8(0))
	test.ExpectEquality(t, r.F.Zero, true)
	test.ExpectEquality(t, r.F.Subtract, true)
	test.ExpectEquality(t, r.PC, uint16(0x0000))

	// zero times leaves HL unchanged
	r.A = 0
	m.Push(0x0000)
	overrides.AddNTimes(m)
	test.ExpectEquality(t, r.HL(), uint16(0x1030))
	test.ExpectEquality(t, r.F.Zero, true)
	test.ExpectEquality(t, r.F.Subtract, false)
}

func TestCopyBytes(t *testing.T) {
	m := newMachine(t)
	for i := uint16(0); i < 5; i++ {
		m.WriteByte(0xc000+i, uint8(0xa0+i))
	}

	m.Call(0x0170)
	for i := uint16(0); i < 5; i++ {
		test.ExpectEquality(t, m.ReadByte(0xc100+i), uint8(0xa0+i))
	}
	test.ExpectEquality(t, m.ReadByte(0xc105), uint8(0x00))

	r := m.Regs()
	test.ExpectEquality(t, r.HL(), uint16(0xc005))
	test.ExpectEquality(t, r.DE(), uint16(0xc105))
	test.ExpectEquality(t, r.BC(), uint16(0x0000))
	test.ExpectEquality(t, r.A, uint8(0xa4))
	test.ExpectEquality(t, r.F.Zero, true)
}

func TestCopyBytesLarge(t *testing.T) {
	m := newMachine(t)
	for i := uint16(0); i < 0x200; i++ {
		m.WriteByte(0xc000+i, 0x77)
	}

	r := m.Regs()
	r.SetHL(0xc000)
	r.SetDE(0xd000)
	r.SetBC(0x0123)
	m.Push(0x0000)
	overrides.CopyBytes(m)

	test.ExpectEquality(t, m.ReadByte(0xd122), uint8(0x77))
	test.ExpectEquality(t, m.ReadByte(0xd123), uint8(0x00))
	test.ExpectEquality(t, r.DE(), uint16(0xd123))

	// copying nothing
	r.SetBC(0x0000)
	m.Push(0x0000)
	overrides.CopyBytes(m)
	test.ExpectEquality(t, r.DE(), uint16(0xd123))
}

func TestByteFill(t *testing.T) {
	m := newMachine(t)
	r := m.Regs()
	r.SetHL(0xc200)
	r.SetBC(0x0010)
	r.A = 0x5a
	m.Push(0x0000)
	overrides.ByteFill(m)

	test.ExpectEquality(t, m.ReadByte(0xc200), uint8(0x5a))
	test.ExpectEquality(t, m.ReadByte(0xc20f), uint8(0x5a))
	test.ExpectEquality(t, m.ReadByte(0xc210), uint8(0x00))
	test.ExpectEquality(t, r.HL(), uint16(0xc210))
	test.ExpectEquality(t, r.BC(), uint16(0x0000))
}

func TestJumpTable(t *testing.T) {
	m := newMachine(t)
	m.Regs().SetDE(0x1234)
	m.Call(0x0180)
	test.ExpectEquality(t, m.Regs().B, uint8(0x02))
	test.ExpectEquality(t, m.Regs().DE(), uint16(0x1234))
	test.ExpectEquality(t, m.Regs().HL(), uint16(0x0310))
	test.ExpectEquality(t, m.Regs().SP, uint16(0xfffe))
}

func TestDelayFrame(t *testing.T) {
	m := newMachine(t)
	m.Mem.Interrupts.Enabled = interrupts.VBlank.Bit()
	m.CPU.IME = true

	frame := m.Mem.Video.FrameNum()
	m.Call(0x0190)
	test.ExpectEquality(t, m.Mem.Video.FrameNum(), frame+1)
	test.ExpectEquality(t, m.ReadByte(overrides.VBlankOccurred), uint8(0))
	test.ExpectEquality(t, m.Regs().A, uint8(0))
	test.ExpectEquality(t, m.CPU.IME, true)
}

func TestGuards(t *testing.T) {
	m := newMachine(t)
	test.ExpectPanic(t, func() { m.Call(0x01a0) }, "FarCall.return")

	m = newMachine(t)
	test.ExpectPanic(t, func() { m.Call(0x01a4) }, "CopyBytes.loop")

	m = newMachine(t)
	test.ExpectPanic(t, func() { m.Call(0x01a8) }, "ByteFill.loop")
}
