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

// Package audio implements the sound registers and wave RAM. Sound is not
// synthesised. The registers are stored so that the program reads back the
// values it expects, including the bits that always read as set.
package audio

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
)

// the number of registers from NR10 to the end of wave RAM
const numRegisters = int(addresses.AudioMemtop-addresses.AudioOrigin) + 1

// offsets of notable registers from the origin
const (
	nr52     = 0x16
	waveRAM  = 0x20
	lastNR5x = 0x15
)

// bits ORed with the stored value when a register is read. unused addresses
// read as 0xff
var readMasks = [waveRAM]uint8{
	0x80, 0x3f, 0x00, 0xff, 0xbf, // NR10-NR14
	0xff, 0x3f, 0x00, 0xff, 0xbf, // unused, NR21-NR24
	0x7f, 0xff, 0x9f, 0xff, 0xbf, // NR30-NR34
	0xff, 0xff, 0x00, 0x00, 0xbf, // unused, NR41-NR44
	0x00, 0x00, 0x70, // NR50-NR52
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// the trigger registers for each channel. the channel status bit in NR52 is
// set when bit 7 of the trigger register is written
var triggers = [4]int{0x04, 0x09, 0x0e, 0x13}

// Audio is the sound register file.
type Audio struct {
	regs [numRegisters]uint8
}

// NewAudio is the preferred method of initialisation of the Audio type.
func NewAudio() *Audio {
	au := &Audio{}
	au.Reset()
	return au
}

func (au *Audio) String() string {
	return fmt.Sprintf("NR50=%02x NR51=%02x NR52=%02x", au.regs[0x14], au.regs[0x15], au.Read(addresses.AudioOrigin+nr52))
}

// Reset the registers to their power-on state.
func (au *Audio) Reset() {
	au.regs = [numRegisters]uint8{}
	au.regs[nr52] = 0x80
}

// Powered returns true if the power bit of NR52 is set.
func (au *Audio) Powered() bool {
	return au.regs[nr52]&0x80 == 0x80
}

// Read returns the value of the register.
func (au *Audio) Read(address uint16) uint8 {
	idx := int(address - addresses.AudioOrigin)
	if idx < 0 || idx >= numRegisters {
		panic(fmt.Sprintf("audio: not an audio register (%#04x)", address))
	}
	if idx >= waveRAM {
		return au.regs[idx]
	}
	return au.regs[idx] | readMasks[idx]
}

// Write sets the value of the register. While the power bit of NR52 is clear
// only NR52 and wave RAM can be written. Clearing the power bit clears all
// registers except wave RAM.
func (au *Audio) Write(address uint16, data uint8) {
	idx := int(address - addresses.AudioOrigin)
	if idx < 0 || idx >= numRegisters {
		panic(fmt.Sprintf("audio: not an audio register (%#04x)", address))
	}

	switch {
	case idx >= waveRAM:
		au.regs[idx] = data

	case idx == nr52:
		if data&0x80 == 0 {
			for i := 0; i <= lastNR5x; i++ {
				au.regs[i] = 0
			}
			au.regs[nr52] = 0
		} else {
			au.regs[nr52] |= 0x80
		}

	case !au.Powered():
		return

	default:
		au.regs[idx] = data
		for ch, trig := range triggers {
			if idx == trig && data&0x80 == 0x80 {
				au.regs[nr52] |= 0x01 << ch
			}
		}
	}
}
