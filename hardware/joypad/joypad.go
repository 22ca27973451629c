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

// Package joypad implements the P1 register and the state of the buttons.
//
// Button state is changed by the machine goroutine in response to input
// events received from the presentation goroutine. See the Event type.
package joypad

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
)

// Button identifies one of the eight buttons.
type Button int

// List of valid Button values. The first four are in the direction row and
// the last four are in the action row. The order within each row is the bit
// order in P1.
const (
	Right Button = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
	NumButtons
)

func (b Button) String() string {
	switch b {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case A:
		return "A"
	case B:
		return "B"
	case Select:
		return "Select"
	case Start:
		return "Start"
	}
	return fmt.Sprintf("unknown button (%d)", int(b))
}

// Event is a change in the state of a button.
type Event struct {
	Button  Button
	Pressed bool
}

func (ev Event) String() string {
	if ev.Pressed {
		return fmt.Sprintf("%s pressed", ev.Button)
	}
	return fmt.Sprintf("%s released", ev.Button)
}

// P1 bits that select the rows. a zero bit selects the row
const (
	selectDirections = 0x10
	selectActions    = 0x20
)

// Joypad implements the joypad peripheral.
type Joypad struct {
	irq interrupts.Requester

	// the state of each row. a zero bit is a pressed button
	directions uint8
	actions    uint8

	p1 uint8
}

// NewJoypad is the preferred method of initialisation of the Joypad type.
func NewJoypad(irq interrupts.Requester) *Joypad {
	joy := &Joypad{irq: irq}
	joy.Reset()
	return joy
}

func (joy *Joypad) String() string {
	return fmt.Sprintf("P1=%02x", joy.p1)
}

// Reset the joypad. All buttons are released.
func (joy *Joypad) Reset() {
	joy.directions = 0x0f
	joy.actions = 0x0f
	joy.p1 = 0xff
}

// Read returns the value of P1.
func (joy *Joypad) Read() uint8 {
	return joy.p1
}

// Write sets the row selection bits of P1.
func (joy *Joypad) Write(data uint8) {
	joy.p1 = joy.p1&0xcf | data&0x30
	joy.update()
}

// Handle a button event.
func (joy *Joypad) Handle(ev Event) {
	if ev.Button < 0 || ev.Button >= NumButtons {
		return
	}

	row := &joy.directions
	bit := uint8(1) << ev.Button
	if ev.Button >= A {
		row = &joy.actions
		bit = uint8(1) << (ev.Button - A)
	}

	if ev.Pressed {
		*row &^= bit
	} else {
		*row |= bit
	}

	joy.update()
}

// update the lower nibble of P1 from the selected rows. a transition from no
// buttons to any button requests an interrupt.
func (joy *Joypad) update() {
	prev := joy.p1 & 0x0f
	next := uint8(0x0f)

	if joy.p1&selectDirections == 0 {
		next &= joy.directions
	}
	if joy.p1&selectActions == 0 {
		next &= joy.actions
	}

	if prev == 0x0f && next != 0x0f {
		joy.irq.Request(interrupts.Joypad)
	}

	joy.p1 = joy.p1&0xf0 | next
}
