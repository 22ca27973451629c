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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/bus"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint16
	Bytes   []uint8

	// the mnemonic with the operand filled in
	Instruction string

	// canonical name of the hardware register referenced by the instruction,
	// if any
	Symbol string
}

func (e Entry) String() string {
	var b strings.Builder
	for _, v := range e.Bytes {
		b.WriteString(fmt.Sprintf("%02x ", v))
	}
	s := fmt.Sprintf("%04x  %-9s %s", e.Address, b.String(), e.Instruction)
	if e.Symbol != "" {
		s = fmt.Sprintf("%s ; %s", s, e.Symbol)
	}
	return s
}

// Defined returns false if the opcode is not a valid instruction.
func (e Entry) Defined() bool {
	return e.Instruction != undefined
}

// Disassemble the instruction at the address.
func Disassemble(mem bus.DebugBus, address uint16) Entry {
	opcode := mem.Peek(address)
	e := Entry{
		Address: address,
		Bytes:   []uint8{opcode},
	}

	if opcode == 0xcb {
		op2 := mem.Peek(address + 1)
		e.Bytes = append(e.Bytes, op2)
		e.Instruction = extended[op2]
		return e
	}

	template := primary[opcode]

	switch {
	case strings.Contains(template, "d16"), strings.Contains(template, "a16"):
		lo := mem.Peek(address + 1)
		hi := mem.Peek(address + 2)
		e.Bytes = append(e.Bytes, lo, hi)
		w := uint16(hi)<<8 | uint16(lo)
		e.Instruction = strings.NewReplacer("d16", fmt.Sprintf("$%04x", w), "a16", fmt.Sprintf("$%04x", w)).Replace(template)
		e.Symbol = addresses.Symbol(w)

	case strings.Contains(template, "r8"):
		v := mem.Peek(address + 1)
		e.Bytes = append(e.Bytes, v)
		target := uint16(int32(address) + 2 + int32(int8(v)))
		e.Instruction = strings.Replace(template, "r8", fmt.Sprintf("$%04x", target), 1)

	case strings.Contains(template, "a8"):
		v := mem.Peek(address + 1)
		e.Bytes = append(e.Bytes, v)
		e.Instruction = strings.Replace(template, "a8", fmt.Sprintf("$ff%02x", v), 1)
		e.Symbol = addresses.Symbol(0xff00 | uint16(v))

	case strings.Contains(template, "d8"):
		v := mem.Peek(address + 1)
		e.Bytes = append(e.Bytes, v)
		e.Instruction = strings.Replace(template, "d8", fmt.Sprintf("$%02x", v), 1)

	default:
		e.Instruction = template
	}

	return e
}
