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

// Package serial implements the SB and SC registers. There is never a link
// partner. A transfer using the internal clock completes immediately, the
// outgoing byte is written to the sink and the incoming byte is always 0xff.
// Transfers using the external clock never complete.
package serial

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/logger"
)

// Serial implements the serial port.
type Serial struct {
	irq interrupts.Requester

	// outgoing bytes are written to the sink. may be nil
	sink io.Writer

	SB uint8
	SC uint8
}

// NewSerial is the preferred method of initialisation of the Serial type.
func NewSerial(irq interrupts.Requester) *Serial {
	return &Serial{irq: irq}
}

// SetSink sets the destination for outgoing bytes. A nil sink discards them.
func (ser *Serial) SetSink(sink io.Writer) {
	ser.sink = sink
}

func (ser *Serial) String() string {
	return fmt.Sprintf("SB=%02x SC=%02x", ser.SB, ser.SC)
}

// Reset the registers to their power-on state.
func (ser *Serial) Reset() {
	ser.SB = 0x00
	ser.SC = 0x00
}

// Read returns the value of the serial register.
func (ser *Serial) Read(address uint16) uint8 {
	switch address {
	case addresses.SB:
		return ser.SB
	case addresses.SC:
		return ser.SC | 0x7e
	}
	panic(fmt.Sprintf("serial: not a serial register (%#04x)", address))
}

// Write sets the value of the serial register. Writing SC with both the
// start and internal clock bits set performs the transfer.
func (ser *Serial) Write(address uint16, data uint8) {
	switch address {
	case addresses.SB:
		ser.SB = data
	case addresses.SC:
		ser.SC = data
		if ser.SC&0x81 == 0x81 {
			if ser.sink != nil {
				// the transfer completes even if the sink fails
				if _, err := ser.sink.Write([]byte{ser.SB}); err != nil {
					logger.Logf(logger.Allow, "serial", "sink: %v", err)
				}
			}
			ser.SB = 0xff
			ser.SC &^= 0x80
			ser.irq.Request(interrupts.Serial)
		}
	default:
		panic(fmt.Sprintf("serial: not a serial register (%#04x)", address))
	}
}
