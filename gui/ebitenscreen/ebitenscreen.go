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

package ebitenscreen

import (
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/gui"
	"github.com/jetsetilly/gopherboy/hardware/video"
	"github.com/jetsetilly/gopherboy/logger"
)

// keyNames translates ebiten keys to the key names used by gui.TranslateKey()
var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "Up",
	ebiten.KeyArrowDown:  "Down",
	ebiten.KeyArrowLeft:  "Left",
	ebiten.KeyArrowRight: "Right",
	ebiten.KeyZ:          "Z",
	ebiten.KeyX:          "X",
	ebiten.KeyEnter:      "Return",
	ebiten.KeyBackspace:  "Backspace",
	ebiten.KeyEscape:     gui.QuitKey,
}

// EbitenScreen implements the gui.GUI and ebiten.Game interfaces.
type EbitenScreen struct {
	emulation gui.Emulation
	scale     int

	main *ebiten.Image

	// key buffers reused every update
	pressed  []ebiten.Key
	released []ebiten.Key

	ended bool
}

// NewEbitenScreen is the preferred method of initialisation for the
// EbitenScreen type.
func NewEbitenScreen(emulation gui.Emulation, scale int) *EbitenScreen {
	if scale < 1 {
		scale = 1
	}
	return &EbitenScreen{
		emulation: emulation,
		scale:     scale,
	}
}

// Service implements the gui.GUI interface. The first call runs the ebiten
// game loop until the window is closed.
//
// MUST ONLY be called from the #mainthread.
func (eg *EbitenScreen) Service() bool {
	if eg.ended {
		return false
	}

	ebiten.SetWindowTitle("Gopherboy")
	ebiten.SetWindowSize(video.Width*eg.scale, video.Height*eg.scale)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(eg); err != nil {
		logger.Logf(logger.Allow, "ebiten", "%v", curated.Errorf(gui.GUIError, err))
	}

	// the window may have been closed without the escape key
	eg.emulation.Close()
	eg.ended = true

	return false
}

// Destroy implements the gui.GUI interface.
func (eg *EbitenScreen) Destroy(output io.Writer) {
	if eg.main != nil {
		eg.main.Deallocate()
		eg.main = nil
	}
}

// Update implements the ebiten.Game interface.
func (eg *EbitenScreen) Update() error {
	if eg.ended {
		return ebiten.Termination
	}

	eg.pressed = inpututil.AppendJustPressedKeys(eg.pressed[:0])
	eg.released = inpututil.AppendJustReleasedKeys(eg.released[:0])

	for _, k := range eg.pressed {
		if name, ok := keyNames[k]; ok {
			if gui.IsQuitKey(name) {
				eg.ended = true
				return ebiten.Termination
			}
			eg.input(name, true)
		}
	}
	for _, k := range eg.released {
		if name, ok := keyNames[k]; ok {
			eg.input(name, false)
		}
	}

	select {
	case frame, ok := <-eg.emulation.Frames():
		if !ok {
			eg.ended = true
			return ebiten.Termination
		}
		if eg.main == nil {
			eg.main = ebiten.NewImage(video.Width, video.Height)
		}
		eg.main.WritePixels(frame.Pixels[:])
	default:
	}

	return nil
}

func (eg *EbitenScreen) input(name string, down bool) {
	if ev, ok := gui.TranslateKey(name, down); ok {
		if !eg.emulation.SendInput(ev) {
			logger.Logf(logger.Allow, "ebiten", "input dropped: %s", ev)
		}
	}
}

// Draw implements the ebiten.Game interface.
func (eg *EbitenScreen) Draw(screen *ebiten.Image) {
	if eg.main != nil {
		screen.DrawImage(eg.main, &ebiten.DrawImageOptions{})
	}
}

// Layout implements the ebiten.Game interface. The screen is always the size
// of the LCD. ebiten scales it to fit the window.
func (eg *EbitenScreen) Layout(width, height int) (int, int) {
	return video.Width, video.Height
}
