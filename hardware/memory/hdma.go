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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
)

// the type of VRAM DMA in progress
type hdmaMode int

const (
	hdmaNone hdmaMode = iota

	// general purpose DMA. the entire transfer happens at once
	hdmaGeneral

	// horizontal blank DMA. one row is transferred during each horizontal
	// blank
	hdmaHBlank
)

// the number of bytes in a row and the number of cycles (at LCD speed) it
// takes to transfer a row
const (
	hdmaRowSize   = 0x10
	hdmaRowCycles = 8
)

type hdma struct {
	// the HDMA1 to HDMA4 registers
	regs [4]uint8

	mode hdmaMode
	src  uint16
	dst  uint16

	// the number of rows remaining minus one. wraps to 0x7f when the final
	// row is transferred
	length uint8
}

func (dma *hdma) read(address uint16) uint8 {
	if address == addresses.HDMA5 {
		if dma.mode == hdmaNone {
			return dma.length | 0x80
		}
		return dma.length
	}
	return dma.regs[address-addresses.HDMA1]
}

func (dma *hdma) write(address uint16, data uint8) {
	switch address {
	case addresses.HDMA1:
		dma.regs[0] = data
	case addresses.HDMA2:
		dma.regs[1] = data & 0xf0
	case addresses.HDMA3:
		dma.regs[2] = data & 0x1f
	case addresses.HDMA4:
		dma.regs[3] = data & 0xf0
	case addresses.HDMA5:
		if dma.mode == hdmaHBlank {
			if data&0x80 == 0 {
				dma.mode = hdmaNone
			}
			return
		}

		src := uint16(dma.regs[0])<<8 | uint16(dma.regs[1])
		if !(src <= 0x7ff0 || (src >= 0xa000 && src <= 0xdff0)) {
			panic(fmt.Sprintf("memory: VRAM DMA with illegal start address %#04x", src))
		}

		dma.src = src
		dma.dst = uint16(dma.regs[2])<<8 | uint16(dma.regs[3]) | addresses.VRAMOrigin
		dma.length = data & 0x7f
		if data&0x80 == 0x80 {
			dma.mode = hdmaHBlank
		} else {
			dma.mode = hdmaGeneral
		}
	}
}

// performHDMA transfers data for the current VRAM DMA, if any. The return
// value is the number of cycles (at LCD speed) taken.
func (mem *Memory) performHDMA() int {
	switch mem.hdma.mode {
	case hdmaGeneral:
		rows := int(mem.hdma.length) + 1
		for i := 0; i < rows; i++ {
			mem.hdmaRow()
		}
		mem.hdma.mode = hdmaNone
		return rows * hdmaRowCycles

	case hdmaHBlank:
		if !mem.Video.MayHDMA() {
			return 0
		}
		mem.hdmaRow()
		if mem.hdma.length == 0x7f {
			mem.hdma.mode = hdmaNone
		}
		return hdmaRowCycles
	}

	return 0
}

func (mem *Memory) hdmaRow() {
	for i := uint16(0); i < hdmaRowSize; i++ {
		mem.Video.WriteVRAM(mem.hdma.dst+i, mem.Read(mem.hdma.src+i))
	}
	mem.hdma.src += hdmaRowSize
	mem.hdma.dst += hdmaRowSize
	mem.hdma.length = (mem.hdma.length - 1) & 0x7f
}
