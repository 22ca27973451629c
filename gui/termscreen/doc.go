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

// Package termscreen is a presentation front end for terminals. Frames are
// drawn with characters chosen by the brightness of a block of pixels.
//
// The terminal is put into cbreak mode so that key presses are received
// immediately. Terminals do not report key releases so a button is released
// a short time after it has been pressed.
//
// Keys:
//
//	arrows or w/a/s/d  direction
//	z, x               A, B
//	return, backspace  start, select
//	q or escape        quit
package termscreen
