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

package cartridge

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/logger"
)

// RAMSize is the size of the external RAM. The fixed program uses four banks
// and the battery save always contains all of them.
const RAMSize = 4 * addresses.RAMBankSize

// the number of RAM banks that are addressable
const numRAMBanks = RAMSize / addresses.RAMBankSize

// Cartridge is the MBC3 controller along with the ROM, the external RAM and
// the real time clock.
type Cartridge struct {
	Header Header

	rom []uint8
	ram []uint8
	RTC *RTC

	// the ROM bank mapped into the switchable window. never zero
	romBank int

	// the value of the RAM/RTC bank register. when selectRTC is true the
	// value is the index of the RTC register
	ramBank   int
	selectRTC bool

	ramEnabled bool
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. A cartridge mode byte without the CGB bit is a fatal error.
func NewCartridge(data []uint8, clock Clock) (*Cartridge, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if !h.IsCGB() {
		panic(fmt.Sprintf("cartridge: invalid cartridge mode byte (%#02x)", h.Mode))
	}

	if !h.IsMBC3() {
		return nil, curated.Errorf(UnsupportedMapper, h.Type)
	}

	if len(data)%addresses.ROMBankSize != 0 {
		return nil, curated.Errorf(ROMSizeIncorrect, len(data))
	}

	cart := &Cartridge{
		Header: h,
		rom:    data,
		ram:    make([]uint8, RAMSize),
		RTC:    NewRTC(clock),
	}
	cart.Reset()

	logger.Logf(logger.Allow, "cartridge", "%s: %s, %d banks", h.Title, h.TypeName(), cart.NumBanks())

	return cart, nil
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("ROM=%02x RAM=%02x rtc=%v enabled=%v", cart.romBank, cart.ramBank, cart.selectRTC, cart.ramEnabled)
}

// Reset the controller registers to their power-on state. The contents of the
// external RAM and the RTC are not affected.
func (cart *Cartridge) Reset() {
	cart.romBank = 1
	cart.ramBank = 0
	cart.selectRTC = false
	cart.ramEnabled = false
}

// NumBanks returns the number of ROM banks.
func (cart *Cartridge) NumBanks() int {
	return len(cart.rom) / addresses.ROMBankSize
}

// ROMBank returns the ROM bank mapped into the switchable window.
func (cart *Cartridge) ROMBank() int {
	return cart.romBank
}

// ReadROM returns the data at the address in the ROM area (0x0000 to 0x7fff).
// Reading beyond the end of the ROM image returns 0xff.
func (cart *Cartridge) ReadROM(address uint16) uint8 {
	idx := int(address)
	if address >= addresses.ROMSwitchedOrigin {
		idx = cart.romBank*addresses.ROMBankSize | int(address&0x3fff)
	}
	if idx >= len(cart.rom) {
		return 0xff
	}
	return cart.rom[idx]
}

// ReadBank returns the data at the offset in the specified ROM bank,
// regardless of the current mapping.
func (cart *Cartridge) ReadBank(bank int, address uint16) uint8 {
	idx := bank*addresses.ROMBankSize | int(address&0x3fff)
	if idx >= len(cart.rom) {
		return 0xff
	}
	return cart.rom[idx]
}

// PokeROM changes the ROM image at the address using the current mapping.
// This is not something the hardware can do. It is used for debugging and
// for preparing test programs.
func (cart *Cartridge) PokeROM(address uint16, data uint8) {
	idx := int(address)
	if address >= addresses.ROMSwitchedOrigin {
		idx = cart.romBank*addresses.ROMBankSize | int(address&0x3fff)
	}
	if idx < len(cart.rom) {
		cart.rom[idx] = data
	}
}

// WriteROM handles writes to the ROM area. Writes are never stored and are
// interpreted as controller commands.
func (cart *Cartridge) WriteROM(address uint16, data uint8) {
	switch {
	case address <= 0x1fff:
		cart.ramEnabled = data&0x0f == 0x0a

	case address <= 0x3fff:
		cart.romBank = int(data & 0x7f)
		if cart.romBank == 0 {
			cart.romBank = 1
		}

	case address <= 0x5fff:
		cart.selectRTC = data&0x08 == 0x08
		cart.ramBank = int(data & 0x07)

	default:
		cart.RTC.Latch()
	}
}

// ReadRAM returns the data at the address in the external RAM area (0xa000 to
// 0xbfff). When the RTC is selected the latched register is returned.
func (cart *Cartridge) ReadRAM(address uint16) uint8 {
	if !cart.ramEnabled {
		return 0xff
	}

	if !cart.selectRTC {
		if cart.ramBank < numRAMBanks {
			return cart.ram[cart.ramBank*addresses.RAMBankSize|int(address&0x1fff)]
		}
		return 0xff
	}

	if cart.ramBank < NumRTCRegisters {
		return cart.RTC.Read(cart.ramBank)
	}
	return 0xff
}

// WriteRAM stores data at the address in the external RAM area. When the RTC
// is selected the live register is written.
func (cart *Cartridge) WriteRAM(address uint16, data uint8) {
	if !cart.ramEnabled {
		return
	}

	if !cart.selectRTC {
		if cart.ramBank < numRAMBanks {
			cart.ram[cart.ramBank*addresses.RAMBankSize|int(address&0x1fff)] = data
		}
		return
	}

	if cart.ramBank < NumRTCRegisters {
		cart.RTC.Write(cart.ramBank, data)
	}
}

// RAM returns the external RAM. The slice should not be modified while the
// machine is running.
func (cart *Cartridge) RAM() []uint8 {
	return cart.ram
}
