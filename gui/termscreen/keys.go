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

// keyName returns the key name, as used by gui.TranslateKey(), for the bytes
// read from the terminal in one go. arrow keys arrive as escape sequences
func keyName(b []byte) (string, bool) {
	switch len(b) {
	case 0:
		return "", false
	case 1:
		switch b[0] {
		case 0x1b, 'q', 'Q':
			return "Escape", true
		case 'w', 'W':
			return "Up", true
		case 's', 'S':
			return "Down", true
		case 'a', 'A':
			return "Left", true
		case 'd', 'D':
			return "Right", true
		case 'z', 'Z':
			return "Z", true
		case 'x', 'X':
			return "X", true
		case '\r', '\n':
			return "Return", true
		case 0x7f, 0x08:
			return "Backspace", true
		}
		return "", false
	}

	if len(b) == 3 && b[0] == 0x1b && (b[1] == '[' || b[1] == 'O') {
		switch b[2] {
		case 'A':
			return "Up", true
		case 'B':
			return "Down", true
		case 'C':
			return "Right", true
		case 'D':
			return "Left", true
		}
	}

	return "", false
}
