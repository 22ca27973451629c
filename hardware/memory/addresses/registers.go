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

// Joypad, serial and timer registers.
const (
	P1   = uint16(0xff00)
	SB   = uint16(0xff01)
	SC   = uint16(0xff02)
	DIV  = uint16(0xff04)
	TIMA = uint16(0xff05)
	TMA  = uint16(0xff06)
	TAC  = uint16(0xff07)
)

// Interrupt registers.
const (
	IF = uint16(0xff0f)
	IE = uint16(0xffff)
)

// Audio registers, including wave RAM.
const (
	AudioOrigin = uint16(0xff10)
	AudioMemtop = uint16(0xff3f)
)

// LCD registers.
const (
	LCDC = uint16(0xff40)
	STAT = uint16(0xff41)
	SCY  = uint16(0xff42)
	SCX  = uint16(0xff43)
	LY   = uint16(0xff44)
	LYC  = uint16(0xff45)
	DMA  = uint16(0xff46)
	BGP  = uint16(0xff47)
	OBP0 = uint16(0xff48)
	OBP1 = uint16(0xff49)
	WY   = uint16(0xff4a)
	WX   = uint16(0xff4b)
)

// CGB registers.
const (
	KEY1  = uint16(0xff4d)
	VBK   = uint16(0xff4f)
	HDMA1 = uint16(0xff51)
	HDMA2 = uint16(0xff52)
	HDMA3 = uint16(0xff53)
	HDMA4 = uint16(0xff54)
	HDMA5 = uint16(0xff55)
	BCPS  = uint16(0xff68)
	BCPD  = uint16(0xff69)
	OCPS  = uint16(0xff6a)
	OCPD  = uint16(0xff6b)
	SVBK  = uint16(0xff70)
)

// Canonical lists the register addresses along with their canonical names.
var Canonical = map[uint16]string{
	P1:    "P1",
	SB:    "SB",
	SC:    "SC",
	DIV:   "DIV",
	TIMA:  "TIMA",
	TMA:   "TMA",
	TAC:   "TAC",
	IF:    "IF",
	IE:    "IE",
	LCDC:  "LCDC",
	STAT:  "STAT",
	SCY:   "SCY",
	SCX:   "SCX",
	LY:    "LY",
	LYC:   "LYC",
	DMA:   "DMA",
	BGP:   "BGP",
	OBP0:  "OBP0",
	OBP1:  "OBP1",
	WY:    "WY",
	WX:    "WX",
	KEY1:  "KEY1",
	VBK:   "VBK",
	HDMA1: "HDMA1",
	HDMA2: "HDMA2",
	HDMA3: "HDMA3",
	HDMA4: "HDMA4",
	HDMA5: "HDMA5",
	BCPS:  "BCPS",
	BCPD:  "BCPD",
	OCPS:  "OCPS",
	OCPD:  "OCPD",
	SVBK:  "SVBK",
}

// Symbol returns the canonical name for the address or the empty string if
// the address has no name.
func Symbol(address uint16) string {
	return Canonical[address]
}
