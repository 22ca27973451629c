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

// Dimensions of the LCD.
const (
	Width  = 160
	Height = 144
)

// Frame is a completed frame. Pixels are RGBA, four bytes per pixel.
type Frame struct {
	Number int
	Pixels [Width * Height * 4]uint8
}

// FrameSink receives completed frames. The frame belongs to the sink once
// Present() has been called.
type FrameSink interface {
	Present(frame *Frame)
}

// cgbColour converts a 15-bit CGB colour (little-endian in palette memory)
// to 8-bit RGB components.
func cgbColour(lo, hi uint8) (uint8, uint8, uint8) {
	c := uint16(hi)<<8 | uint16(lo)
	r := uint8(c & 0x1f)
	g := uint8((c >> 5) & 0x1f)
	b := uint8((c >> 10) & 0x1f)
	return r<<3 | r>>2, g<<3 | g>>2, b<<3 | b>>2
}

// newFrame creates a frame filled with the backdrop colour. the backdrop is
// white if the LCD is off
func (vid *Video) newFrame() *Frame {
	f := &Frame{Number: vid.frameNum}

	r, g, b := uint8(0xff), uint8(0xff), uint8(0xff)
	if vid.lcdOn() {
		r, g, b = cgbColour(vid.bgPalette.data[0], vid.bgPalette.data[1])
	}

	for i := 0; i < len(f.Pixels); i += 4 {
		f.Pixels[i] = r
		f.Pixels[i+1] = g
		f.Pixels[i+2] = b
		f.Pixels[i+3] = 0xff
	}

	return f
}
