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

package video

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
)

// Mode is the LCD mode as reported in the lower bits of STAT.
type Mode uint8

// List of valid Mode values.
const (
	ModeHBlank   Mode = 0
	ModeVBlank   Mode = 1
	ModeOAM      Mode = 2
	ModeTransfer Mode = 3
)

// Timing of the LCD in dots.
const (
	dotsPerLine   = 456
	oamDots       = 80
	transferDots  = 172
	visibleLines  = 144
	linesPerFrame = 154

	// the timing is advanced in chunks no longer than this so that no mode
	// is skipped
	maxChunk = 80
)

// STAT interrupt enable bits.
const (
	statHBlank = 0x08
	statVBlank = 0x10
	statOAM    = 0x20
	statLYC    = 0x40
)

// Video is the LCD controller.
type Video struct {
	irq  interrupts.Requester
	sink FrameSink

	vram     [2][addresses.VRAMBankSize]uint8
	vramBank int
	oam      [addresses.OAMSize]uint8

	lcdc     uint8
	statBits uint8
	scy      uint8
	scx      uint8
	ly       uint8
	lyc      uint8
	bgp      uint8
	obp0     uint8
	obp1     uint8
	wy       uint8
	wx       uint8

	bgPalette  palette
	objPalette palette

	mode Mode
	dots int

	// mode 0 was entered during the most recent call to Step()
	hblanking bool

	frameNum int
}

// NewVideo is the preferred method of initialisation of the Video type.
func NewVideo(irq interrupts.Requester) *Video {
	vid := &Video{irq: irq}
	vid.Reset()
	return vid
}

func (vid *Video) String() string {
	return fmt.Sprintf("LCDC=%02x STAT=%02x LY=%d dots=%d", vid.lcdc, vid.readSTAT(), vid.ly, vid.dots)
}

// SetSink sets the destination for completed frames. A nil sink discards
// them.
func (vid *Video) SetSink(sink FrameSink) {
	vid.sink = sink
}

// Reset the LCD controller to its power-on state.
func (vid *Video) Reset() {
	vid.vram = [2][addresses.VRAMBankSize]uint8{}
	vid.vramBank = 0
	vid.oam = [addresses.OAMSize]uint8{}
	vid.lcdc = 0x91
	vid.statBits = 0
	vid.scy = 0
	vid.scx = 0
	vid.ly = 0
	vid.lyc = 0
	vid.bgp = 0xfc
	vid.obp0 = 0xff
	vid.obp1 = 0xff
	vid.wy = 0
	vid.wx = 0
	vid.bgPalette = palette{}
	vid.objPalette = palette{}
	vid.mode = ModeOAM
	vid.dots = 0
	vid.hblanking = false
	vid.frameNum = 0
}

func (vid *Video) lcdOn() bool {
	return vid.lcdc&0x80 == 0x80
}

// LY returns the current line.
func (vid *Video) LY() uint8 {
	return vid.ly
}

// Mode returns the current LCD mode.
func (vid *Video) Mode() Mode {
	return vid.mode
}

// FrameNum returns the number of frames published since reset.
func (vid *Video) FrameNum() int {
	return vid.frameNum
}

// MayHDMA returns true if a horizontal blank DMA row may be transferred. This
// is true only if horizontal blank was entered during the most recent call to
// Step().
func (vid *Video) MayHDMA() bool {
	return vid.hblanking
}

// Step the LCD controller by the number of dots.
func (vid *Video) Step(dots int) {
	vid.hblanking = false

	if !vid.lcdOn() {
		return
	}

	for dots > 0 {
		chunk := dots
		if chunk > maxChunk {
			chunk = maxChunk
		}
		dots -= chunk
		vid.dots += chunk

		if vid.dots >= dotsPerLine {
			vid.dots -= dotsPerLine
			vid.ly = uint8((int(vid.ly) + 1) % linesPerFrame)
			vid.checkLYC()
			if vid.ly >= visibleLines && vid.mode != ModeVBlank {
				vid.changeMode(ModeVBlank)
			}
		}

		if vid.ly < visibleLines {
			switch {
			case vid.dots <= oamDots:
				if vid.mode != ModeOAM {
					vid.changeMode(ModeOAM)
				}
			case vid.dots <= oamDots+transferDots:
				if vid.mode != ModeTransfer {
					vid.changeMode(ModeTransfer)
				}
			default:
				if vid.mode != ModeHBlank {
					vid.changeMode(ModeHBlank)
				}
			}
		}
	}
}

func (vid *Video) checkLYC() {
	if vid.statBits&statLYC == statLYC && vid.ly == vid.lyc {
		vid.irq.Request(interrupts.LCDStat)
	}
}

func (vid *Video) changeMode(mode Mode) {
	vid.mode = mode

	var stat bool
	switch mode {
	case ModeHBlank:
		vid.hblanking = true
		stat = vid.statBits&statHBlank == statHBlank
	case ModeVBlank:
		vid.irq.Request(interrupts.VBlank)
		vid.publish()
		stat = vid.statBits&statVBlank == statVBlank
	case ModeOAM:
		stat = vid.statBits&statOAM == statOAM
	}

	if stat {
		vid.irq.Request(interrupts.LCDStat)
	}
}

func (vid *Video) publish() {
	vid.frameNum++
	if vid.sink != nil {
		vid.sink.Present(vid.newFrame())
	}
}

func (vid *Video) readSTAT() uint8 {
	v := 0x80 | vid.statBits | uint8(vid.mode)
	if vid.ly == vid.lyc {
		v |= 0x04
	}
	return v
}

// ReadVRAM returns the data at the address in the currently selected VRAM
// bank.
func (vid *Video) ReadVRAM(address uint16) uint8 {
	return vid.vram[vid.vramBank][address&0x1fff]
}

// WriteVRAM sets the data at the address in the currently selected VRAM
// bank.
func (vid *Video) WriteVRAM(address uint16, data uint8) {
	vid.vram[vid.vramBank][address&0x1fff] = data
}

// ReadOAM returns the data at the address in OAM.
func (vid *Video) ReadOAM(address uint16) uint8 {
	return vid.oam[address-addresses.OAMOrigin]
}

// WriteOAM sets the data at the address in OAM.
func (vid *Video) WriteOAM(address uint16, data uint8) {
	vid.oam[address-addresses.OAMOrigin] = data
}

// Read returns the value of the LCD register.
func (vid *Video) Read(address uint16) uint8 {
	switch address {
	case addresses.LCDC:
		return vid.lcdc
	case addresses.STAT:
		return vid.readSTAT()
	case addresses.SCY:
		return vid.scy
	case addresses.SCX:
		return vid.scx
	case addresses.LY:
		return vid.ly
	case addresses.LYC:
		return vid.lyc
	case addresses.BGP:
		return vid.bgp
	case addresses.OBP0:
		return vid.obp0
	case addresses.OBP1:
		return vid.obp1
	case addresses.WY:
		return vid.wy
	case addresses.WX:
		return vid.wx
	case addresses.VBK:
		return uint8(vid.vramBank) | 0xfe
	case addresses.BCPS:
		return vid.bgPalette.readIndex()
	case addresses.BCPD:
		return vid.bgPalette.readData()
	case addresses.OCPS:
		return vid.objPalette.readIndex()
	case addresses.OCPD:
		return vid.objPalette.readData()
	}
	panic(fmt.Sprintf("video: not a video register (%#04x)", address))
}

// Write sets the value of the LCD register. LY is read-only and writes to it
// are ignored.
func (vid *Video) Write(address uint16, data uint8) {
	switch address {
	case addresses.LCDC:
		wasOn := vid.lcdOn()
		vid.lcdc = data
		if wasOn && !vid.lcdOn() {
			vid.dots = 0
			vid.ly = 0
			vid.mode = ModeHBlank
		} else if !wasOn && vid.lcdOn() {
			vid.changeMode(ModeOAM)
			vid.dots = 4
		}
	case addresses.STAT:
		vid.statBits = data & 0x78
	case addresses.SCY:
		vid.scy = data
	case addresses.SCX:
		vid.scx = data
	case addresses.LY:
	case addresses.LYC:
		vid.lyc = data
	case addresses.BGP:
		vid.bgp = data
	case addresses.OBP0:
		vid.obp0 = data
	case addresses.OBP1:
		vid.obp1 = data
	case addresses.WY:
		vid.wy = data
	case addresses.WX:
		vid.wx = data
	case addresses.VBK:
		vid.vramBank = int(data & 0x01)
	case addresses.BCPS:
		vid.bgPalette.writeIndex(data)
	case addresses.BCPD:
		vid.bgPalette.writeData(data)
	case addresses.OCPS:
		vid.objPalette.writeIndex(data)
	case addresses.OCPD:
		vid.objPalette.writeData(data)
	default:
		panic(fmt.Sprintf("video: not a video register (%#04x)", address))
	}
}
