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
	"bytes"
	"testing"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/test"
)

// makeROM creates a ROM image with a valid MBC3 header. the first byte of
// every bank (outside of bank zero) is the bank number
func makeROM(banks int) []uint8 {
	data := make([]uint8, banks*0x4000)
	copy(data[0x134:], "GOPHERBOY")
	data[0x143] = 0x80
	data[0x147] = 0x10
	data[0x148] = 0x06
	data[0x149] = 0x03
	for b := 1; b < banks; b++ {
		data[b*0x4000] = uint8(b)
	}
	return data
}

func newCartridge(t *testing.T, clk cartridge.Clock) *cartridge.Cartridge {
	t.Helper()
	cart, err := cartridge.NewCartridge(makeROM(128), clk)
	test.DemandSuccess(t, err)
	return cart
}

func TestHeader(t *testing.T) {
	h, err := cartridge.ParseHeader(makeROM(2))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Title, "GOPHERBOY")
	test.ExpectEquality(t, h.IsCGB(), true)
	test.ExpectEquality(t, h.IsMBC3(), true)
	test.ExpectEquality(t, h.HasTimer(), true)
	test.ExpectEquality(t, h.ROMBytes(), 2*1024*1024)
	test.ExpectEquality(t, h.RAMBytes(), 0x8000)

	_, err = cartridge.ParseHeader(make([]uint8, 0x100))
	test.ExpectSuccess(t, curated.Is(err, cartridge.HeaderTruncated))
}

func TestHeaderChecksum(t *testing.T) {
	data := makeROM(2)
	var sum uint8
	for _, b := range data[0x134:0x14d] {
		sum = sum - b - 1
	}
	data[0x14d] = sum
	h, err := cartridge.ParseHeader(data)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, h.ChecksumValid)

	data[0x14d]++
	h, _ = cartridge.ParseHeader(data)
	test.ExpectFailure(t, h.ChecksumValid)
}

func TestInvalidMode(t *testing.T) {
	data := makeROM(2)
	data[0x143] = 0x00
	test.ExpectPanic(t, func() {
		_, _ = cartridge.NewCartridge(data, cartridge.SystemClock{})
	}, "invalid cartridge mode byte")
}

func TestUnsupportedType(t *testing.T) {
	data := makeROM(2)
	data[0x147] = 0x01
	_, err := cartridge.NewCartridge(data, cartridge.SystemClock{})
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedMapper))
}

func TestROMBanking(t *testing.T) {
	cart := newCartridge(t, cartridge.SystemClock{})

	test.ExpectEquality(t, cart.ROMBank(), 1)
	test.ExpectEquality(t, cart.ReadROM(0x4000), uint8(1))

	// bank zero selects bank one
	cart.WriteROM(0x2000, 0x00)
	test.ExpectEquality(t, cart.ROMBank(), 1)
	test.ExpectEquality(t, cart.ReadROM(0x4000), uint8(1))

	for n := 1; n < 128; n++ {
		cart.WriteROM(0x3fff, uint8(n))
		test.DemandEquality(t, cart.ROMBank(), n)
		test.DemandEquality(t, cart.ReadROM(0x4000), uint8(n))
	}

	// only seven bits are used
	cart.WriteROM(0x2000, 0x85)
	test.ExpectEquality(t, cart.ROMBank(), 5)

	// the fixed window is unaffected
	test.ExpectEquality(t, cart.ReadROM(0x0143), uint8(0x80))

	// bank zero can be read directly
	test.ExpectEquality(t, cart.ReadBank(0, 0x0143), uint8(0x80))
	test.ExpectEquality(t, cart.ReadBank(7, 0x4000), uint8(7))
}

func TestROMBeyondImage(t *testing.T) {
	cart, err := cartridge.NewCartridge(makeROM(4), cartridge.SystemClock{})
	test.DemandSuccess(t, err)
	cart.WriteROM(0x2000, 0x10)
	test.ExpectEquality(t, cart.ReadROM(0x4000), uint8(0xff))
}

func TestRAM(t *testing.T) {
	cart := newCartridge(t, cartridge.SystemClock{})

	// RAM is disabled at power-on
	cart.WriteRAM(0xa000, 0x12)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), uint8(0xff))

	cart.WriteROM(0x0000, 0x0a)
	cart.WriteRAM(0xa000, 0x12)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), uint8(0x12))

	// a different bank
	cart.WriteROM(0x4000, 0x03)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), uint8(0x00))
	cart.WriteRAM(0xbfff, 0x34)
	test.ExpectEquality(t, cart.RAM()[0x7fff], uint8(0x34))

	// banks four to seven are not connected
	cart.WriteROM(0x4000, 0x04)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), uint8(0xff))

	// any value with a lower nibble other than 0xa disables RAM
	cart.WriteROM(0x4000, 0x00)
	cart.WriteROM(0x1000, 0x1a)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), uint8(0x12))
	cart.WriteROM(0x1000, 0x0b)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), uint8(0xff))
}

func TestSaveRoundTrip(t *testing.T) {
	clk := &cartridge.FixedClock{Seconds: 1000000}
	cart := newCartridge(t, clk)

	cart.WriteROM(0x0000, 0x0a)
	cart.WriteRAM(0xa000, 0x55)
	cart.WriteROM(0x4000, 0x02)
	cart.WriteRAM(0xa123, 0xaa)

	var b bytes.Buffer
	test.ExpectSuccess(t, cart.WriteSave(&b))
	test.ExpectEquality(t, b.Len(), cartridge.SaveSize)

	// epoch is big-endian
	test.ExpectEquality(t, b.Bytes()[5], uint8(0x0f))
	test.ExpectEquality(t, b.Bytes()[6], uint8(0x42))
	test.ExpectEquality(t, b.Bytes()[7], uint8(0x40))

	other := newCartridge(t, &cartridge.FixedClock{})
	test.ExpectSuccess(t, other.LoadSave(bytes.NewReader(b.Bytes())))
	test.ExpectEquality(t, other.RTC.Epoch, int64(1000000))
	test.ExpectEquality(t, other.RAM()[0x0000], uint8(0x55))
	test.ExpectEquality(t, other.RAM()[0x4123], uint8(0xaa))

	// truncated image
	err := other.LoadSave(bytes.NewReader(b.Bytes()[:100]))
	test.ExpectSuccess(t, curated.Is(err, cartridge.SaveImageTruncated))
}
