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

package gui

import (
	"strings"

	"github.com/jetsetilly/gopherboy/hardware/joypad"
)

// QuitKey is the name of the key that closes a front end.
const QuitKey = "Escape"

// keymap maps key names to joypad buttons. Key names are the names used by
// SDL. Other front ends translate their key identifiers to these names.
var keymap = map[string]joypad.Button{
	"Up":        joypad.Up,
	"Down":      joypad.Down,
	"Left":      joypad.Left,
	"Right":     joypad.Right,
	"Z":         joypad.A,
	"X":         joypad.B,
	"Return":    joypad.Start,
	"Backspace": joypad.Select,
}

// TranslateKey returns the joypad event for a key press or key release. The
// key name is not case sensitive. Returns false if the key is not mapped to a
// button.
func TranslateKey(name string, down bool) (joypad.Event, bool) {
	for k, b := range keymap {
		if strings.EqualFold(k, name) {
			return joypad.Event{Button: b, Pressed: down}, true
		}
	}
	return joypad.Event{}, false
}

// IsQuitKey returns true if the key name is the QuitKey.
func IsQuitKey(name string) bool {
	return strings.EqualFold(name, QuitKey)
}
