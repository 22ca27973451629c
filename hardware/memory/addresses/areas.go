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

package addresses

// Boundaries of the memory areas. Each area is given by its origin and its
// memtop (the last address in the area).
const (
	ROMOrigin         = uint16(0x0000)
	ROMFixedMemtop    = uint16(0x3fff)
	ROMSwitchedOrigin = uint16(0x4000)
	ROMMemtop         = uint16(0x7fff)

	VRAMOrigin = uint16(0x8000)
	VRAMMemtop = uint16(0x9fff)

	ExternalOrigin = uint16(0xa000)
	ExternalMemtop = uint16(0xbfff)

	WRAMOrigin         = uint16(0xc000)
	WRAMFixedMemtop    = uint16(0xcfff)
	WRAMSwitchedOrigin = uint16(0xd000)
	WRAMMemtop         = uint16(0xdfff)

	// echo of working RAM. the echo ends before OAM
	EchoOrigin         = uint16(0xe000)
	EchoFixedMemtop    = uint16(0xefff)
	EchoSwitchedOrigin = uint16(0xf000)
	EchoMemtop         = uint16(0xfdff)

	OAMOrigin = uint16(0xfe00)
	OAMMemtop = uint16(0xfe9f)

	// the unusable area between OAM and the I/O registers
	UnusableOrigin = uint16(0xfea0)
	UnusableMemtop = uint16(0xfeff)

	IOOrigin = uint16(0xff00)
	IOMemtop = uint16(0xff7f)

	HRAMOrigin = uint16(0xff80)
	HRAMMemtop = uint16(0xfffe)
)

// Sizes of the banked memories.
const (
	ROMBankSize  = 0x4000
	RAMBankSize  = 0x2000
	VRAMBankSize = 0x2000
	WRAMBankSize = 0x1000
	OAMSize      = 0xa0
	HRAMSize     = 0x7f
)
