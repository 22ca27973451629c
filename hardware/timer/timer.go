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

// Package timer implements the DIV, TIMA, TMA and TAC registers.
package timer

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
)

// Interval indicates how often (in CPU cycles) TIMA is incremented. The
// interval is selected by the lower two bits of TAC.
type Interval int

// List of valid Interval values in the order they are selected by TAC.
var intervals = [4]Interval{1024, 16, 64, 256}

// DIV is incremented every divInterval CPU cycles.
const divInterval = 256

// Timer implements the timer peripheral.
type Timer struct {
	irq interrupts.Requester

	DIV  uint8
	TIMA uint8
	TMA  uint8

	Enabled  bool
	Interval Interval

	// cycles accumulated towards the next DIV and TIMA increments
	divTicks  int
	timaTicks int
}

// NewTimer is the preferred method of initialisation of the Timer type.
func NewTimer(irq interrupts.Requester) *Timer {
	tmr := &Timer{irq: irq}
	tmr.Reset()
	return tmr
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("DIV=%02x TIMA=%02x TMA=%02x enabled=%v intv=%d",
		tmr.DIV, tmr.TIMA, tmr.TMA, tmr.Enabled, tmr.Interval)
}

// Reset the timer to its power-on state.
func (tmr *Timer) Reset() {
	tmr.DIV = 0
	tmr.TIMA = 0
	tmr.TMA = 0
	tmr.Enabled = false
	tmr.Interval = intervals[0]
	tmr.divTicks = 0
	tmr.timaTicks = 0
}

// Read returns the value of the timer register.
func (tmr *Timer) Read(address uint16) uint8 {
	switch address {
	case addresses.DIV:
		return tmr.DIV
	case addresses.TIMA:
		return tmr.TIMA
	case addresses.TMA:
		return tmr.TMA
	case addresses.TAC:
		v := uint8(0xf8)
		if tmr.Enabled {
			v |= 0x04
		}
		for i, intv := range intervals {
			if intv == tmr.Interval {
				v |= uint8(i)
			}
		}
		return v
	}
	panic(fmt.Sprintf("timer: not a timer register (%#04x)", address))
}

// Write sets the value of the timer register. Any write to DIV resets it.
func (tmr *Timer) Write(address uint16, data uint8) {
	switch address {
	case addresses.DIV:
		tmr.DIV = 0
	case addresses.TIMA:
		tmr.TIMA = data
	case addresses.TMA:
		tmr.TMA = data
	case addresses.TAC:
		tmr.Enabled = data&0x04 == 0x04
		tmr.Interval = intervals[data&0x03]
	default:
		panic(fmt.Sprintf("timer: not a timer register (%#04x)", address))
	}
}

// Step the timer by the number of CPU cycles.
func (tmr *Timer) Step(cycles int) {
	tmr.divTicks += cycles
	for tmr.divTicks >= divInterval {
		tmr.DIV++
		tmr.divTicks -= divInterval
	}

	if !tmr.Enabled {
		return
	}

	tmr.timaTicks += cycles
	for tmr.timaTicks >= int(tmr.Interval) {
		tmr.TIMA++
		if tmr.TIMA == 0 {
			tmr.TIMA = tmr.TMA
			tmr.irq.Request(interrupts.Timer)
		}
		tmr.timaTicks -= int(tmr.Interval)
	}
}
