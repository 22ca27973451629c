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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/cpu/disassembly"
	"github.com/jetsetilly/gopherboy/test"
)

type mockBus []uint8

func (b mockBus) Peek(address uint16) uint8 {
	if int(address) >= len(b) {
		return 0x00
	}
	return b[address]
}

func (b mockBus) Poke(address uint16, data uint8) {
	if int(address) < len(b) {
		b[address] = data
	}
}

func TestDisassemble(t *testing.T) {
	bus := mockBus{
		0x00,             // NOP
		0x3e, 0x42,       // LD A,$42
		0xea, 0x00, 0xc0, // LD ($c000),A
		0xe0, 0x0f, //       LDH ($ff0f),A
		0x18, 0xfe, //       JR $0008
		0xcb, 0x7e, //       BIT 7,(HL)
		0xd3, //             undefined
	}

	e := disassembly.Disassemble(bus, 0x0000)
	test.ExpectEquality(t, e.Instruction, "NOP")
	test.ExpectEquality(t, len(e.Bytes), 1)

	e = disassembly.Disassemble(bus, 0x0001)
	test.ExpectEquality(t, e.Instruction, "LD A,$42")

	e = disassembly.Disassemble(bus, 0x0003)
	test.ExpectEquality(t, e.Instruction, "LD ($c000),A")
	test.ExpectEquality(t, len(e.Bytes), 3)

	e = disassembly.Disassemble(bus, 0x0006)
	test.ExpectEquality(t, e.Instruction, "LDH ($ff0f),A")
	test.ExpectEquality(t, e.Symbol, "IF")

	e = disassembly.Disassemble(bus, 0x0008)
	test.ExpectEquality(t, e.Instruction, "JR $0008")

	e = disassembly.Disassemble(bus, 0x000a)
	test.ExpectEquality(t, e.Instruction, "BIT 7,(HL)")
	test.ExpectEquality(t, len(e.Bytes), 2)

	e = disassembly.Disassemble(bus, 0x000c)
	test.ExpectEquality(t, e.Defined(), false)
}

func TestString(t *testing.T) {
	bus := mockBus{0xe0, 0x44}
	e := disassembly.Disassemble(bus, 0x0000)
	test.ExpectEquality(t, e.String(), "0000  e0 44     LDH ($ff44),A ; LY")
}

func TestDisassemblePoked(t *testing.T) {
	bus := mockBus{0x00, 0x00}
	test.ExpectEquality(t, disassembly.Disassemble(bus, 0x0000).Instruction, "NOP")

	bus.Poke(0x0000, 0x76)
	test.ExpectEquality(t, disassembly.Disassemble(bus, 0x0000).Instruction, "HALT")
}
