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

import "fmt"

// File is the complete register file of the CPU.
type File struct {
	A uint8
	F Flags
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8

	SP uint16
	PC uint16
}

// NewFile returns a register file in the state left by the CGB boot ROM.
func NewFile() File {
	var r File
	r.Reset()
	return r
}

// Reset register file to the state left by the CGB boot ROM.
func (r *File) Reset() {
	r.A = 0x11
	r.F.Load(0x80)
	r.SetBC(0x0000)
	r.SetDE(0xff56)
	r.SetHL(0x000d)
	r.SP = 0xfffe
	r.PC = 0x0100
}

func (r File) String() string {
	return fmt.Sprintf("AF=%04x BC=%04x DE=%04x HL=%04x SP=%04x PC=%04x %s",
		r.AF(), r.BC(), r.DE(), r.HL(), r.SP, r.PC, r.F)
}

// AF returns the accumulator and flags as a 16-bit value.
func (r File) AF() uint16 {
	return uint16(r.A)<<8 | uint16(r.F.Value())
}

// SetAF loads the accumulator and flags. The lower nibble of the value is
// discarded.
func (r *File) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.F.Load(uint8(v))
}

// BC returns the BC register pair.
func (r File) BC() uint16 {
	return uint16(r.B)<<8 | uint16(r.C)
}

// SetBC loads the BC register pair.
func (r *File) SetBC(v uint16) {
	r.B = uint8(v >> 8)
	r.C = uint8(v)
}

// DE returns the DE register pair.
func (r File) DE() uint16 {
	return uint16(r.D)<<8 | uint16(r.E)
}

// SetDE loads the DE register pair.
func (r *File) SetDE(v uint16) {
	r.D = uint8(v >> 8)
	r.E = uint8(v)
}

// HL returns the HL register pair.
func (r File) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// SetHL loads the HL register pair.
func (r *File) SetHL(v uint16) {
	r.H = uint8(v >> 8)
	r.L = uint8(v)
}

// HLI returns the value of HL before incrementing it. Used by the LD (HL+)
// forms.
func (r *File) HLI() uint16 {
	v := r.HL()
	r.SetHL(v + 1)
	return v
}

// HLD returns the value of HL before decrementing it. Used by the LD (HL-)
// forms.
func (r *File) HLD() uint16 {
	v := r.HL()
	r.SetHL(v - 1)
	return v
}
