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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/test"
)

// selects the RTC register and returns its latched value
func readRTC(cart *cartridge.Cartridge, reg int) uint8 {
	cart.WriteROM(0x4000, 0x08|uint8(reg))
	return cart.ReadRAM(0xa000)
}

func writeRTC(cart *cartridge.Cartridge, reg int, data uint8) {
	cart.WriteROM(0x4000, 0x08|uint8(reg))
	cart.WriteRAM(0xa000, data)
}

func latch(cart *cartridge.Cartridge) {
	cart.WriteROM(0x6000, 0x00)
	cart.WriteROM(0x6000, 0x01)
}

func TestRTCLatch(t *testing.T) {
	clk := &cartridge.FixedClock{Seconds: 5000}
	cart := newCartridge(t, clk)
	cart.WriteROM(0x0000, 0x0a)

	// one day, two hours, three minutes and four seconds
	clk.Advance(86400 + 2*3600 + 3*60 + 4)

	// nothing is visible until latched
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCSeconds), uint8(0))

	latch(cart)
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCSeconds), uint8(4))
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCMinutes), uint8(3))
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCHours), uint8(2))
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCDaysLow), uint8(1))
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCDaysHigh), uint8(0))

	// latched values do not change with time
	clk.Advance(10)
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCSeconds), uint8(4))
	latch(cart)
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCSeconds), uint8(14))

	// register values above 4 are not connected
	cart.WriteROM(0x4000, 0x0d)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), uint8(0xff))
}

func TestRTCWrite(t *testing.T) {
	clk := &cartridge.FixedClock{Seconds: 5000}
	cart := newCartridge(t, clk)
	cart.WriteROM(0x0000, 0x0a)

	writeRTC(cart, cartridge.RTCSeconds, 30)
	latch(cart)
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCSeconds), uint8(30))

	// values are masked to the valid bits. 0x3f minutes is not a valid time
	// but the clock continues from it. it normalises on the next calculation
	writeRTC(cart, cartridge.RTCSeconds, 0)
	writeRTC(cart, cartridge.RTCMinutes, 0xff)
	latch(cart)
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCMinutes), uint8(3))
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCHours), uint8(1))

	// 31 hours is one day and seven hours
	writeRTC(cart, cartridge.RTCHours, 0xff)
	latch(cart)
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCHours), uint8(7))
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCDaysLow), uint8(1))
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCMinutes), uint8(3))

	clk.Advance(1)
	latch(cart)
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCSeconds), uint8(1))
}

func TestRTCHalt(t *testing.T) {
	clk := &cartridge.FixedClock{Seconds: 5000}
	cart := newCartridge(t, clk)
	cart.WriteROM(0x0000, 0x0a)

	clk.Advance(30)
	writeRTC(cart, cartridge.RTCDaysHigh, 0x40)
	clk.Advance(100)
	latch(cart)
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCSeconds), uint8(30))
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCDaysHigh), uint8(0x40))

	// clearing the halt bit resumes the clock from the frozen value
	writeRTC(cart, cartridge.RTCDaysHigh, 0x00)
	clk.Advance(5)
	latch(cart)
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCSeconds), uint8(35))
}

func TestRTCDayOverflow(t *testing.T) {
	clk := &cartridge.FixedClock{Seconds: 5000}
	cart := newCartridge(t, clk)
	cart.WriteROM(0x0000, 0x0a)

	clk.Advance(300 * 86400)
	latch(cart)
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCDaysLow), uint8(300-256))
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCDaysHigh), uint8(0x01))

	clk.Advance(212*86400 + 10)
	latch(cart)
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCDaysLow), uint8(0))
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCDaysHigh), uint8(0x80))
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCSeconds), uint8(10))

	// the carry bit remains set after the epoch is rebased
	clk.Advance(86400)
	latch(cart)
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCDaysLow), uint8(1))
	test.ExpectEquality(t, readRTC(cart, cartridge.RTCDaysHigh), uint8(0x80))
}
