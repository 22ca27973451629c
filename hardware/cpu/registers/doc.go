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

// Package registers implements the register file of the CPU: the eight 8-bit
// registers, the stack pointer and program counter.
//
// The 8-bit registers can be accessed individually or in 16-bit pairs. For
// example, the following are equivalent:
//
//	r.B = 0x12
//	r.C = 0x34
//
//	r.SetBC(0x1234)
//
// The flags register is represented by the Flags type. The lower nibble of
// the flags register does not exist in hardware and so the Flags type has no
// way of storing it. Loading an 8-bit value into the flags register (with
// POP AF for example) discards the lower nibble.
package registers
