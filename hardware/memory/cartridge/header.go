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
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
)

// Sentinal error patterns for the cartridge package.
const (
	HeaderTruncated    = "cartridge: ROM too small to contain a header (%d bytes)"
	UnsupportedMapper  = "cartridge: unsupported cartridge type (%#02x)"
	ROMSizeIncorrect   = "cartridge: ROM size is not a multiple of the bank size (%d bytes)"
	SaveImageTruncated = "cartridge: save image: %v"
	SaveImageWrite     = "cartridge: save image: %v"
)

// Offsets of the fields in the cartridge header.
const (
	headerTitle    = 0x134
	headerMode     = 0x143
	headerType     = 0x147
	headerROMSize  = 0x148
	headerRAMSize  = 0x149
	headerChecksum = 0x14d
	headerEnd      = 0x150
)

// Header is the cartridge information stored in the ROM.
type Header struct {
	Title string

	// the cartridge mode byte. bit 7 is set for CGB enhanced or CGB only
	// cartridges
	Mode uint8

	Type    uint8
	ROMSize uint8
	RAMSize uint8

	Checksum      uint8
	ChecksumValid bool
}

// ParseHeader reads the header from the ROM data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < headerEnd {
		return Header{}, curated.Errorf(HeaderTruncated, len(data))
	}

	h := Header{
		Mode:     data[headerMode],
		Type:     data[headerType],
		ROMSize:  data[headerROMSize],
		RAMSize:  data[headerRAMSize],
		Checksum: data[headerChecksum],
	}

	// the CGB title field is eleven bytes. the remaining bytes of the
	// original title field are the manufacturer code and the mode byte
	title := data[headerTitle : headerTitle+11]
	h.Title = strings.TrimRight(string(title), "\x00 ")

	var sum uint8
	for _, b := range data[headerTitle:headerChecksum] {
		sum = sum - b - 1
	}
	h.ChecksumValid = sum == h.Checksum

	return h, nil
}

// IsCGB returns true if the cartridge mode byte indicates CGB support.
func (h Header) IsCGB() bool {
	return h.Mode&0x80 == 0x80
}

// IsMBC3 returns true if the cartridge type is one of the MBC3 types.
func (h Header) IsMBC3() bool {
	return h.Type >= 0x0f && h.Type <= 0x13
}

// HasTimer returns true if the cartridge type includes the real time clock.
func (h Header) HasTimer() bool {
	return h.Type == 0x0f || h.Type == 0x10
}

// TypeName returns a description of the cartridge type.
func (h Header) TypeName() string {
	switch h.Type {
	case 0x0f:
		return "MBC3+TIMER+BATTERY"
	case 0x10:
		return "MBC3+TIMER+RAM+BATTERY"
	case 0x11:
		return "MBC3"
	case 0x12:
		return "MBC3+RAM"
	case 0x13:
		return "MBC3+RAM+BATTERY"
	}
	return fmt.Sprintf("unsupported (%#02x)", h.Type)
}

// ROMBytes returns the size of the ROM as declared in the header.
func (h Header) ROMBytes() int {
	return 0x8000 << h.ROMSize
}

// RAMBytes returns the size of the external RAM as declared in the header.
func (h Header) RAMBytes() int {
	switch h.RAMSize {
	case 0x02:
		return 0x2000
	case 0x03:
		return 0x8000
	case 0x04:
		return 0x20000
	case 0x05:
		return 0x10000
	}
	return 0
}

func (h Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("title:    %s\n", h.Title))
	s.WriteString(fmt.Sprintf("type:     %s\n", h.TypeName()))
	s.WriteString(fmt.Sprintf("rom:      %dKB\n", h.ROMBytes()/1024))
	s.WriteString(fmt.Sprintf("ram:      %dKB\n", h.RAMBytes()/1024))
	s.WriteString(fmt.Sprintf("cgb:      %v\n", h.IsCGB()))
	s.WriteString(fmt.Sprintf("checksum: %02x (valid=%v)", h.Checksum, h.ChecksumValid))
	return s.String()
}
