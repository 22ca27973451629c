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

package interrupts

import "fmt"

// Source identifies an interrupt. The value is also the bit index in the IF
// and IE registers.
type Source int

// List of valid Source values in priority order.
const (
	VBlank Source = iota
	LCDStat
	Timer
	Serial
	Joypad
	NumSources
)

func (s Source) String() string {
	switch s {
	case VBlank:
		return "VBlank"
	case LCDStat:
		return "LCDStat"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return fmt.Sprintf("unknown interrupt (%d)", int(s))
}

// Bit returns the mask for the source in the IF and IE registers.
func (s Source) Bit() uint8 {
	return 0x01 << s
}

// the live bits in the IF register
const liveBits = 0x1f

// Vector returns the address of the service routine for the interrupt. An
// index outside of the valid range is a fatal error.
func Vector(s Source) uint16 {
	if s < 0 || s >= NumSources {
		panic(fmt.Sprintf("interrupts: invalid interrupt index %d", int(s)))
	}
	return 0x0040 + 8*uint16(s)
}

// Requester is implemented by anything that peripherals can raise interrupts
// through.
type Requester interface {
	Request(s Source)
}

// Controller holds the IF and IE registers.
type Controller struct {
	// IF register. only the lower five bits are ever set
	Requested uint8

	// IE register. all eight bits are stored and read back
	Enabled uint8
}

func (ic *Controller) String() string {
	return fmt.Sprintf("IF=%02x IE=%02x", ic.Requested, ic.Enabled)
}

// Reset the registers to their power-on state.
func (ic *Controller) Reset() {
	ic.Requested = 0x00
	ic.Enabled = 0x00
}

// Request implements the Requester interface.
func (ic *Controller) Request(s Source) {
	ic.Requested |= s.Bit()
}

// Acknowledge clears the request bit for the source.
func (ic *Controller) Acknowledge(s Source) {
	ic.Requested &^= s.Bit()
}

// Pending returns the highest priority interrupt that is both requested and
// enabled. The boolean is false if there is no such interrupt.
func (ic *Controller) Pending() (Source, bool) {
	live := ic.Requested & ic.Enabled & liveBits
	if live == 0 {
		return 0, false
	}
	for s := VBlank; s < NumSources; s++ {
		if live&s.Bit() != 0 {
			return s, true
		}
	}
	return 0, false
}

// ReadIF returns the IF register as seen by the CPU. The upper three bits
// always read as set.
func (ic *Controller) ReadIF() uint8 {
	return ic.Requested | ^uint8(liveBits)
}

// WriteIF sets the IF register. The upper three bits are discarded.
func (ic *Controller) WriteIF(data uint8) {
	ic.Requested = data & liveBits
}
