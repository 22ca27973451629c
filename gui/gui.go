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
	"io"

	"github.com/jetsetilly/gopherboy/hardware/joypad"
	"github.com/jetsetilly/gopherboy/hardware/video"
)

// GUI defines the operations of a presentation front end.
type GUI interface {
	// Service handles input and presents the most recent frame. Returns
	// false once the front end has been closed by the user or the emulation
	// has ended. Service() MUST ONLY be called from the #mainthread.
	Service() bool

	// Destroy releases all resources used by the front end. Errors are
	// written to output.
	Destroy(output io.Writer)
}

// Emulation is the front end's view of the running emulation. Implemented by
// playmode.Session.
type Emulation interface {
	// Frames returns the channel on which completed frames are received. The
	// channel is closed when the emulation ends.
	Frames() <-chan *video.Frame

	// SendInput queues a joypad event. Must not block.
	SendInput(ev joypad.Event) bool

	// Close ends the emulation.
	Close()
}

// Sentinel error patterns.
const (
	GUIError            = "gui: %v"
	UnsupportedFrontend = "gui: unsupported front end: %v"
)

// List of front end names. Used by the gui.frontend preference.
const (
	FrontendSDL    = "sdl"
	FrontendEbiten = "ebiten"
	FrontendTerm   = "term"
)

// Frontends lists the valid front end names.
var Frontends = []string{FrontendSDL, FrontendEbiten, FrontendTerm}
