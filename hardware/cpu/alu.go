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

package cpu

import "github.com/jetsetilly/gopherboy/hardware/cpu/registers"

// Add value to the accumulator. If useCarry is true the current carry flag
// is added too (ADC).
func Add(r *registers.File, v uint8, useCarry bool) {
	var c uint8
	if useCarry && r.F.Carry {
		c = 1
	}
	a := r.A
	res := a + v + c
	r.F.Zero = res == 0
	r.F.Subtract = false
	r.F.HalfCarry = a&0x0f+v&0x0f+c > 0x0f
	r.F.Carry = uint16(a)+uint16(v)+uint16(c) > 0xff
	r.A = res
}

// Sub subtracts value from the accumulator. If useCarry is true the current
// carry flag is subtracted too (SBC).
func Sub(r *registers.File, v uint8, useCarry bool) {
	var c uint8
	if useCarry && r.F.Carry {
		c = 1
	}
	a := r.A
	res := a - v - c
	r.F.Zero = res == 0
	r.F.Subtract = true
	r.F.HalfCarry = uint16(a&0x0f) < uint16(v&0x0f)+uint16(c)
	r.F.Carry = uint16(a) < uint16(v)+uint16(c)
	r.A = res
}

// Compare value with the accumulator. Flags are set as for Sub() but the
// accumulator is unchanged.
func Compare(r *registers.File, v uint8) {
	a := r.A
	Sub(r, v, false)
	r.A = a
}

// And value with the accumulator.
func And(r *registers.File, v uint8) {
	r.A &= v
	r.F.Set(r.A == 0, false, true, false)
}

// Or value with the accumulator.
func Or(r *registers.File, v uint8) {
	r.A |= v
	r.F.Set(r.A == 0, false, false, false)
}

// Xor value with the accumulator.
func Xor(r *registers.File, v uint8) {
	r.A ^= v
	r.F.Set(r.A == 0, false, false, false)
}

// Inc returns v+1. The carry flag is not affected.
func Inc(r *registers.File, v uint8) uint8 {
	res := v + 1
	r.F.Zero = res == 0
	r.F.Subtract = false
	r.F.HalfCarry = v&0x0f == 0x0f
	return res
}

// Dec returns v-1. The carry flag is not affected.
func Dec(r *registers.File, v uint8) uint8 {
	res := v - 1
	r.F.Zero = res == 0
	r.F.Subtract = true
	r.F.HalfCarry = v&0x0f == 0x00
	return res
}

// AddHL adds a 16-bit value to HL. The zero flag is not affected. Half-carry
// is the carry out of bit 11 and carry is the carry out of bit 15.
func AddHL(r *registers.File, v uint16) {
	hl := r.HL()
	r.F.Subtract = false
	r.F.HalfCarry = hl&0x0fff+v&0x0fff > 0x0fff
	r.F.Carry = uint32(hl)+uint32(v) > 0xffff
	r.SetHL(hl + v)
}

// AddSPOffset returns SP plus the signed offset. This is the calculation for
// both ADD SP,e and LD HL,SP+e. The flags are computed from the lower byte
// only, as though it were an unsigned 8-bit addition.
func AddSPOffset(r *registers.File, offset uint8) uint16 {
	sp := r.SP
	v := uint16(int8(offset))
	r.F.Zero = false
	r.F.Subtract = false
	r.F.HalfCarry = sp&0x000f+v&0x000f > 0x000f
	r.F.Carry = sp&0x00ff+v&0x00ff > 0x00ff
	return sp + v
}

// DAA adjusts the accumulator so that it holds a valid packed-BCD value
// following an addition or subtraction of two packed-BCD values. The
// direction of adjustment is decided by the subtract flag of the previous
// operation.
func DAA(r *registers.File) {
	a := r.A

	var adjust uint8
	if r.F.Carry {
		adjust = 0x60
	}
	if r.F.HalfCarry {
		adjust |= 0x06
	}

	if !r.F.Subtract {
		if a&0x0f > 0x09 {
			adjust |= 0x06
		}
		if a > 0x99 {
			adjust |= 0x60
		}
		a += adjust
	} else {
		a -= adjust
	}

	r.F.Zero = a == 0
	r.F.HalfCarry = false
	r.F.Carry = adjust >= 0x60
	r.A = a
}

// CPL complements the accumulator.
func CPL(r *registers.File) {
	r.A = ^r.A
	r.F.Subtract = true
	r.F.HalfCarry = true
}

// CCF complements the carry flag.
func CCF(r *registers.File) {
	r.F.Subtract = false
	r.F.HalfCarry = false
	r.F.Carry = !r.F.Carry
}

// SCF sets the carry flag.
func SCF(r *registers.File) {
	r.F.Subtract = false
	r.F.HalfCarry = false
	r.F.Carry = true
}

// shiftFlags is the flag update common to all rotate and shift operations.
func shiftFlags(r *registers.File, res uint8, carry bool) uint8 {
	r.F.Set(res == 0, false, false, carry)
	return res
}

// RLC rotates left. Bit 7 goes to both carry and bit 0.
func RLC(r *registers.File, v uint8) uint8 {
	c := v&0x80 == 0x80
	res := v << 1
	if c {
		res |= 0x01
	}
	return shiftFlags(r, res, c)
}

// RL rotates left through the carry flag.
func RL(r *registers.File, v uint8) uint8 {
	c := v&0x80 == 0x80
	res := v << 1
	if r.F.Carry {
		res |= 0x01
	}
	return shiftFlags(r, res, c)
}

// RRC rotates right. Bit 0 goes to both carry and bit 7.
func RRC(r *registers.File, v uint8) uint8 {
	c := v&0x01 == 0x01
	res := v >> 1
	if c {
		res |= 0x80
	}
	return shiftFlags(r, res, c)
}

// RR rotates right through the carry flag.
func RR(r *registers.File, v uint8) uint8 {
	c := v&0x01 == 0x01
	res := v >> 1
	if r.F.Carry {
		res |= 0x80
	}
	return shiftFlags(r, res, c)
}

// SLA shifts left. Bit 0 is cleared.
func SLA(r *registers.File, v uint8) uint8 {
	return shiftFlags(r, v<<1, v&0x80 == 0x80)
}

// SRA shifts right. Bit 7 is unchanged.
func SRA(r *registers.File, v uint8) uint8 {
	return shiftFlags(r, v>>1|v&0x80, v&0x01 == 0x01)
}

// SRL shifts right. Bit 7 is cleared.
func SRL(r *registers.File, v uint8) uint8 {
	return shiftFlags(r, v>>1, v&0x01 == 0x01)
}

// Swap exchanges the upper and lower nibbles.
func Swap(r *registers.File, v uint8) uint8 {
	return shiftFlags(r, v>>4|v<<4, false)
}

// Bit tests bit b of v. The carry flag is not affected.
func Bit(r *registers.File, b uint8, v uint8) {
	r.F.Zero = v&(1<<b) == 0
	r.F.Subtract = false
	r.F.HalfCarry = true
}

// rotateA performs one of the rotate functions on the accumulator. These
// forms always clear the zero flag, unlike the extended opcode forms.
func rotateA(r *registers.File, rot func(*registers.File, uint8) uint8) {
	r.A = rot(r, r.A)
	r.F.Zero = false
}
