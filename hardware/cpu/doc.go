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

// Package cpu implements the instruction interpreter for the 8-bit CPU of the
// handheld. One call to Step() interprets exactly one instruction and returns
// the number of machine cycles it took. A machine cycle is four clock cycles;
// the caller is responsible for the conversion.
//
// Instructions are dispatched through two 256 entry tables. The primary table
// is indexed by the opcode. Opcode 0xcb escapes into the extended table which
// is indexed by the following byte. An opcode with no defined mapping is a
// fatal condition and causes a panic naming the opcode and its address.
//
// The flag arithmetic is exposed as package level functions that operate on a
// registers.File. The interpreter uses them and so can native replacements of
// program routines, which need to leave the flags exactly as the interpreted
// code would have done.
//
// The CPU also holds the interrupt master enable (IME) and the halted state.
// The DI and EI instructions do not affect IME immediately. The effect is
// delayed by one instruction boundary and is modelled with two small
// counters, which are evaluated at the start of every Step(). The disable
// counter is always evaluated before the enable counter.
package cpu
