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

package interrupts_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/test"
)

func TestPriority(t *testing.T) {
	var ic interrupts.Controller
	ic.Enabled = 0b00011
	ic.Requested = 0b00011

	s, ok := ic.Pending()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, s, interrupts.VBlank)

	ic.Acknowledge(s)
	s, ok = ic.Pending()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, s, interrupts.LCDStat)

	ic.Acknowledge(s)
	_, ok = ic.Pending()
	test.ExpectEquality(t, ok, false)
}

func TestEnableMasksRequest(t *testing.T) {
	var ic interrupts.Controller
	ic.Request(interrupts.Joypad)
	_, ok := ic.Pending()
	test.ExpectEquality(t, ok, false)

	ic.Enabled = 0xff
	s, ok := ic.Pending()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, s, interrupts.Joypad)
}

func TestIFRegister(t *testing.T) {
	var ic interrupts.Controller
	ic.WriteIF(0xff)
	test.ExpectEquality(t, ic.Requested, uint8(0x1f))
	test.ExpectEquality(t, ic.ReadIF(), uint8(0xff))
	ic.WriteIF(0x00)
	test.ExpectEquality(t, ic.ReadIF(), uint8(0xe0))
}

func TestVector(t *testing.T) {
	test.ExpectEquality(t, interrupts.Vector(interrupts.VBlank), uint16(0x0040))
	test.ExpectEquality(t, interrupts.Vector(interrupts.Joypad), uint16(0x0060))
	test.ExpectPanic(t, func() { interrupts.Vector(interrupts.NumSources) }, "invalid interrupt index")
}
