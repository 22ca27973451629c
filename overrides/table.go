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

package overrides

import (
	"github.com/jetsetilly/gopherboy/hardware"
)

// Addresses of the replaced routines in ROM bank zero.
const (
	FarCallAddress    = uint16(0x0008)
	BankswitchAddress = uint16(0x0010)
	AddNTimesAddress  = uint16(0x0018)
	CopyBytesAddress  = uint16(0x0020)
	JumpTableAddress  = uint16(0x0028)
	ByteFillAddress   = uint16(0x0030)
	DelayFrameAddress = uint16(0x0068)
)

// Addresses of the internal labels of the replaced routines.
const (
	farCallReturn = uint16(0x0070)
	copyBytesLoop = uint16(0x0078)
	byteFillLoop  = uint16(0x0080)
)

// Addresses of variables used by the program.
const (
	// the ROM bank the program believes is selected
	HROMBank = uint16(0xff9d)

	// set by DelayFrame and cleared by the VBlank handler
	VBlankOccurred = uint16(0xcff0)

	// the ROM bank register of the cartridge controller
	mbc3ROMBank = uint16(0x2000)
)

// NewTable creates the override table for the program.
func NewTable() *hardware.Table {
	tab := hardware.NewTable()

	fixed := func(address uint16) hardware.Location {
		return hardware.Location{Address: address}
	}

	tab.Add(fixed(FarCallAddress), hardware.NewNative("FarCall", FarCall))
	tab.Add(fixed(BankswitchAddress), hardware.NewNative("Bankswitch", Bankswitch))
	tab.Add(fixed(AddNTimesAddress), hardware.NewNative("AddNTimes", AddNTimes))
	tab.Add(fixed(CopyBytesAddress), hardware.NewNative("CopyBytes", CopyBytes))
	tab.Add(fixed(JumpTableAddress), hardware.NewNative("JumpTable", JumpTable))
	tab.Add(fixed(ByteFillAddress), hardware.NewNative("ByteFill", ByteFill))
	tab.Add(fixed(DelayFrameAddress), hardware.NewNative("DelayFrame", DelayFrame))

	tab.Add(fixed(farCallReturn), hardware.NewGuard("FarCall.return"))
	tab.Add(fixed(copyBytesLoop), hardware.NewGuard("CopyBytes.loop"))
	tab.Add(fixed(byteFillLoop), hardware.NewGuard("ByteFill.loop"))

	return tab
}
