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

package termscreen

import (
	"io"
	"strings"

	"github.com/jetsetilly/gopherboy/hardware/video"
)

// the size of the block of pixels represented by one character
const (
	blockWidth  = 2
	blockHeight = 4
)

// characters in order of increasing brightness
const ramp = "@%#*+=-:. "

// render the frame as text. the cursor is moved to the top left corner of
// the terminal first
func render(frame *video.Frame, w io.Writer) error {
	s := strings.Builder{}
	s.WriteString("\x1b[H")

	for by := 0; by < video.Height; by += blockHeight {
		for bx := 0; bx < video.Width; bx += blockWidth {
			s.WriteByte(ramp[brightness(frame, bx, by)*(len(ramp)-1)/255])
		}
		s.WriteString("\r\n")
	}

	_, err := io.WriteString(w, s.String())
	return err
}

// brightness returns the average brightness (0 to 255) of the block with the
// top left corner at x, y
func brightness(frame *video.Frame, x, y int) int {
	var sum int
	for j := 0; j < blockHeight; j++ {
		for i := 0; i < blockWidth; i++ {
			idx := ((y+j)*video.Width + x + i) * 4
			r := int(frame.Pixels[idx])
			g := int(frame.Pixels[idx+1])
			b := int(frame.Pixels[idx+2])
			sum += (r*299 + g*587 + b*114) / 1000
		}
	}
	return sum / (blockWidth * blockHeight)
}
