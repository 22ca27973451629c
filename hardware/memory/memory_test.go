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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/test"
)

// newMemory creates an address space with a four bank MBC3 cartridge. the
// first byte of each bank is the bank number
func newMemory(t *testing.T) *memory.Memory {
	t.Helper()

	data := make([]uint8, 4*0x4000)
	copy(data[0x134:], "MEMTEST")
	data[0x143] = 0xc0
	data[0x147] = 0x13
	data[0x148] = 0x01
	data[0x149] = 0x03
	for b := 1; b < 4; b++ {
		data[b*0x4000] = uint8(b)
	}

	cart, err := cartridge.NewCartridge(data, &cartridge.FixedClock{})
	test.DemandSuccess(t, err)
	return memory.NewMemory(cart)
}

func TestROMBanking(t *testing.T) {
	mem := newMemory(t)
	test.ExpectEquality(t, mem.Read(0x4000), uint8(1))
	mem.Write(0x2000, 3)
	test.ExpectEquality(t, mem.Read(0x4000), uint8(3))
	test.ExpectEquality(t, mem.ROMBank(), 3)

	// bank zero selects bank one
	mem.Write(0x2000, 0)
	test.ExpectEquality(t, mem.Read(0x4000), uint8(1))

	// bank zero is always visible in the fixed window
	test.ExpectEquality(t, mem.Read(0x0143), uint8(0xc0))
}

func TestExternalRAM(t *testing.T) {
	mem := newMemory(t)

	// disabled RAM reads as 0xff and ignores writes
	mem.Write(0xa000, 0x12)
	test.ExpectEquality(t, mem.Read(0xa000), uint8(0xff))

	mem.Write(0x0000, 0x0a)
	mem.Write(0xa000, 0x12)
	test.ExpectEquality(t, mem.Read(0xa000), uint8(0x12))

	mem.Write(0x4000, 0x01)
	test.ExpectEquality(t, mem.Read(0xa000), uint8(0x00))
	mem.Write(0x4000, 0x00)
	test.ExpectEquality(t, mem.Read(0xa000), uint8(0x12))
}

func TestWRAMBanking(t *testing.T) {
	mem := newMemory(t)
	test.ExpectEquality(t, mem.WRAMBank(), 1)
	test.ExpectEquality(t, mem.Read(0xff70), uint8(0xf9))

	mem.Write(0xc010, 0xaa)
	mem.Write(0xd010, 0x01)
	mem.Write(0xff70, 0x02)
	mem.Write(0xd010, 0x02)
	test.ExpectEquality(t, mem.Read(0xd010), uint8(0x02))
	test.ExpectEquality(t, mem.Read(0xc010), uint8(0xaa))

	mem.Write(0xff70, 0x01)
	test.ExpectEquality(t, mem.Read(0xd010), uint8(0x01))

	// bank zero selects bank one
	mem.Write(0xff70, 0x00)
	test.ExpectEquality(t, mem.WRAMBank(), 1)
	mem.Write(0xff70, 0x0f)
	test.ExpectEquality(t, mem.WRAMBank(), 7)
}

func TestEcho(t *testing.T) {
	mem := newMemory(t)
	mem.Write(0xc123, 0x55)
	test.ExpectEquality(t, mem.Read(0xe123), uint8(0x55))
	mem.Write(0xf456, 0x66)
	test.ExpectEquality(t, mem.Read(0xd456), uint8(0x66))
	mem.Write(0xff70, 0x03)
	test.ExpectEquality(t, mem.Read(0xf456), uint8(0x00))
}

func TestUnusable(t *testing.T) {
	mem := newMemory(t)
	mem.Write(0xfea0, 0x12)
	test.ExpectEquality(t, mem.Read(0xfea0), uint8(0xff))
	test.ExpectEquality(t, mem.Read(0xfeff), uint8(0xff))
}

func TestHRAMAndIE(t *testing.T) {
	mem := newMemory(t)
	mem.Write(0xff80, 0x01)
	mem.Write(0xfffe, 0x02)
	mem.Write(0xffff, 0x1f)
	test.ExpectEquality(t, mem.Read(0xff80), uint8(0x01))
	test.ExpectEquality(t, mem.Read(0xfffe), uint8(0x02))
	test.ExpectEquality(t, mem.Interrupts.Enabled, uint8(0x1f))
}

func TestInterruptFlags(t *testing.T) {
	mem := newMemory(t)
	mem.Interrupts.Request(interrupts.Timer)
	test.ExpectEquality(t, mem.Read(0xff0f), uint8(0xe4))
	mem.Write(0xff0f, 0x00)
	test.ExpectEquality(t, mem.Read(0xff0f), uint8(0xe0))
}

func TestUnmappedIO(t *testing.T) {
	mem := newMemory(t)
	test.ExpectEquality(t, mem.Read(0xff03), uint8(0xff))
	test.ExpectEquality(t, mem.Read(0xff7f), uint8(0xff))

	// registers with no effect ignore writes
	test.ExpectNoPanic(t, func() { mem.Write(0xff50, 0x01) })
	test.ExpectNoPanic(t, func() { mem.Write(0xff6c, 0x01) })

	test.ExpectPanic(t, func() { mem.Write(0xff03, 0x01) }, "unmapped address")
}

func TestOAMDMA(t *testing.T) {
	mem := newMemory(t)
	for i := uint16(0); i < 0xa0; i++ {
		mem.Write(0xc100+i, uint8(i))
	}
	mem.Write(0xff46, 0xc1)
	test.ExpectEquality(t, mem.Read(0xff46), uint8(0xc1))
	test.ExpectEquality(t, mem.Read(0xfe00), uint8(0x00))
	test.ExpectEquality(t, mem.Read(0xfe9f), uint8(0x9f))
}

func TestSpeedSwitch(t *testing.T) {
	mem := newMemory(t)
	test.ExpectEquality(t, mem.Read(0xff4d), uint8(0x00))

	// no change without a request
	mem.SwitchSpeed()
	test.ExpectEquality(t, mem.Speed(), memory.SingleSpeed)

	mem.Write(0xff4d, 0x01)
	test.ExpectEquality(t, mem.Read(0xff4d), uint8(0x01))
	mem.SwitchSpeed()
	test.ExpectEquality(t, mem.Speed(), memory.DoubleSpeed)
	test.ExpectEquality(t, mem.Read(0xff4d), uint8(0x80))

	mem.Write(0xff4d, 0x01)
	mem.SwitchSpeed()
	test.ExpectEquality(t, mem.Speed(), memory.SingleSpeed)
}

func TestAdvance(t *testing.T) {
	mem := newMemory(t)

	// 256 cycles increments DIV
	test.ExpectEquality(t, mem.Advance(256), 256)
	test.ExpectEquality(t, mem.Read(0xff04), uint8(1))

	// one scanline is 456 dots
	mem.Advance(200)
	test.ExpectEquality(t, mem.Read(0xff44), uint8(1))

	// in double speed the LCD receives half the cycles but the timer runs
	// at the CPU rate
	mem.Write(0xff4d, 0x01)
	mem.SwitchSpeed()
	mem.Advance(456)
	test.ExpectEquality(t, mem.Read(0xff44), uint8(1))
	mem.Advance(456)
	test.ExpectEquality(t, mem.Read(0xff44), uint8(2))
	test.ExpectEquality(t, mem.Read(0xff04), uint8(5))
}

func TestGeneralDMA(t *testing.T) {
	mem := newMemory(t)
	for i := uint16(0); i < 0x20; i++ {
		mem.Write(0xc000+i, uint8(i+1))
	}

	mem.Write(0xff51, 0xc0)
	mem.Write(0xff52, 0x00)
	mem.Write(0xff53, 0x81)
	mem.Write(0xff54, 0x00)
	mem.Write(0xff55, 0x01)

	// the transfer happens on the next advance. two rows at eight cycles
	// each
	test.ExpectEquality(t, mem.Advance(4), 20)
	test.ExpectEquality(t, mem.Read(0x8100), uint8(0x01))
	test.ExpectEquality(t, mem.Read(0x811f), uint8(0x20))
	test.ExpectEquality(t, mem.Read(0xff55), uint8(0xff))

	// only one transfer
	test.ExpectEquality(t, mem.Advance(4), 4)
}

func TestHBlankDMA(t *testing.T) {
	mem := newMemory(t)
	for i := uint16(0); i < 0x20; i++ {
		mem.Write(0xc000+i, uint8(i+1))
	}

	mem.Write(0xff51, 0xc0)
	mem.Write(0xff52, 0x00)
	mem.Write(0xff53, 0x00)
	mem.Write(0xff54, 0x00)
	mem.Write(0xff55, 0x81)
	test.ExpectEquality(t, mem.Read(0xff55), uint8(0x01))

	// advance into horizontal blank. the row is transferred on the next
	// advance
	mem.Advance(80)
	mem.Advance(200)
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0x00))
	test.ExpectEquality(t, mem.Advance(4), 12)
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0x01))
	test.ExpectEquality(t, mem.Read(0x8010), uint8(0x00))
	test.ExpectEquality(t, mem.Read(0xff55), uint8(0x00))

	// no more rows until the next horizontal blank
	test.ExpectEquality(t, mem.Advance(4), 4)
	mem.Advance(456)
	test.ExpectEquality(t, mem.Advance(4), 12)
	test.ExpectEquality(t, mem.Read(0x8010), uint8(0x11))
	test.ExpectEquality(t, mem.Read(0xff55), uint8(0xff))
}

func TestHBlankDMACancel(t *testing.T) {
	mem := newMemory(t)
	mem.Write(0xff51, 0xc0)
	mem.Write(0xff55, 0x85)
	mem.Write(0xff55, 0x00)
	test.ExpectEquality(t, mem.Read(0xff55)&0x80, uint8(0x80))
}

func TestDMAIllegalSource(t *testing.T) {
	mem := newMemory(t)
	mem.Write(0xff51, 0xe0)
	test.ExpectPanic(t, func() { mem.Write(0xff55, 0x00) }, "illegal start address")
}

func TestPoke(t *testing.T) {
	mem := newMemory(t)
	mem.Poke(0x0150, 0x76)
	test.ExpectEquality(t, mem.Peek(0x0150), uint8(0x76))

	// poking ROM does not change the bank
	mem.Poke(0x2000, 0x02)
	test.ExpectEquality(t, mem.ROMBank(), 1)

	mem.Poke(0xc000, 0x42)
	test.ExpectEquality(t, mem.Peek(0xc000), uint8(0x42))
}
