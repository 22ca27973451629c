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
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/video"
	"github.com/jetsetilly/gopherboy/test"
)

func TestKeyName(t *testing.T) {
	name, ok := keyName([]byte{0x1b, '[', 'A'})
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, name, "Up")

	name, ok = keyName([]byte{'d'})
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, name, "Right")

	name, ok = keyName([]byte{0x1b})
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, name, "Escape")

	_, ok = keyName([]byte{'k'})
	test.ExpectEquality(t, ok, false)

	_, ok = keyName(nil)
	test.ExpectEquality(t, ok, false)
}

func TestRender(t *testing.T) {
	frame := &video.Frame{}

	// white frame except for a black block in the top left corner
	for i := range frame.Pixels {
		frame.Pixels[i] = 0xff
	}
	for y := 0; y < blockHeight; y++ {
		for x := 0; x < blockWidth; x++ {
			idx := (y*video.Width + x) * 4
			frame.Pixels[idx] = 0
			frame.Pixels[idx+1] = 0
			frame.Pixels[idx+2] = 0
		}
	}

	s := &strings.Builder{}
	test.ExpectSuccess(t, render(frame, s))

	lines := strings.Split(strings.TrimPrefix(s.String(), "\x1b[H"), "\r\n")
	test.ExpectEquality(t, len(lines), video.Height/blockHeight+1)
	test.ExpectEquality(t, len(lines[0]), video.Width/blockWidth)
	test.ExpectEquality(t, lines[0][0], ramp[0])
	test.ExpectEquality(t, lines[0][1], byte(' '))
	test.ExpectEquality(t, lines[1], strings.Repeat(" ", video.Width/blockWidth))
}
