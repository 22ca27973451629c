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

package video

// palette is one of the two CGB palette memories along with its index
// register.
type palette struct {
	data [64]uint8

	index         uint8
	autoIncrement bool
}

func (pal *palette) readIndex() uint8 {
	v := pal.index | 0x40
	if pal.autoIncrement {
		v |= 0x80
	}
	return v
}

func (pal *palette) writeIndex(data uint8) {
	pal.index = data & 0x3f
	pal.autoIncrement = data&0x80 == 0x80
}

func (pal *palette) readData() uint8 {
	return pal.data[pal.index]
}

func (pal *palette) writeData(data uint8) {
	pal.data[pal.index] = data
	if pal.autoIncrement {
		pal.index = (pal.index + 1) & 0x3f
	}
}
