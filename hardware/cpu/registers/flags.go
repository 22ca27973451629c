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

package registers

import "strings"

// Bit positions of each flag in the 8-bit representation of the flags register.
const (
	ZeroBit      = 0x80
	SubtractBit  = 0x40
	HalfCarryBit = 0x20
	CarryBit     = 0x10
)

// Flags is the flags register. There is no storage for the lower nibble.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Label returns the canonical name for the flags register.
func (f Flags) Label() string {
	return "F"
}

func (f Flags) String() string {
	s := strings.Builder{}
	if f.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if f.Subtract {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if f.HalfCarry {
		s.WriteRune('H')
	} else {
		s.WriteRune('h')
	}
	if f.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}
	return s.String()
}

// Value returns the flags as they would be seen in the F register. The lower
// nibble is always zero.
func (f Flags) Value() uint8 {
	var v uint8
	if f.Zero {
		v |= ZeroBit
	}
	if f.Subtract {
		v |= SubtractBit
	}
	if f.HalfCarry {
		v |= HalfCarryBit
	}
	if f.Carry {
		v |= CarryBit
	}
	return v
}

// Load flags from an 8-bit value. The lower nibble is ignored.
func (f *Flags) Load(v uint8) {
	f.Zero = v&ZeroBit == ZeroBit
	f.Subtract = v&SubtractBit == SubtractBit
	f.HalfCarry = v&HalfCarryBit == HalfCarryBit
	f.Carry = v&CarryBit == CarryBit
}

// Set all four flags at once. The order of arguments is the order of the bits
// in the register, from most significant to least significant.
func (f *Flags) Set(zero, subtract, halfCarry, carry bool) {
	f.Zero = zero
	f.Subtract = subtract
	f.HalfCarry = halfCarry
	f.Carry = carry
}
