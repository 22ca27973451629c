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

package sdlscreen

import (
	"fmt"
	"io"
	"runtime"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/gui"
	"github.com/jetsetilly/gopherboy/hardware/video"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// SdlScreen is a simple SDL implementation of the gui.GUI interface.
type SdlScreen struct {
	emulation gui.Emulation

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the emulation has ended or the user has closed the window
	ended bool
}

// NewSdlScreen is the preferred method of initialisation for the SdlScreen
// type.
//
// MUST ONLY be called from the #mainthread.
func NewSdlScreen(emulation gui.Emulation, scale int) (*SdlScreen, error) {
	runtime.LockOSThread()

	if scale < 1 {
		scale = 1
	}

	scr := &SdlScreen{emulation: emulation}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(gui.GUIError, err)
	}

	scr.window, err = sdl.CreateWindow("Gopherboy",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(video.Width*scale), int32(video.Height*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		scr.Destroy(io.Discard)
		return nil, curated.Errorf(gui.GUIError, err)
	}

	// vsync limits the rate at which frames are taken from the emulation
	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		scr.Destroy(io.Discard)
		return nil, curated.Errorf(gui.GUIError, err)
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), video.Width, video.Height)
	if err != nil {
		scr.Destroy(io.Discard)
		return nil, curated.Errorf(gui.GUIError, err)
	}

	logger.Logf(logger.Allow, "sdl", "window created with scale %d", scale)

	return scr, nil
}

// Destroy implements the gui.GUI interface.
func (scr *SdlScreen) Destroy(output io.Writer) {
	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil {
			fmt.Fprintln(output, err)
		}
		scr.texture = nil
	}
	if scr.renderer != nil {
		if err := scr.renderer.Destroy(); err != nil {
			fmt.Fprintln(output, err)
		}
		scr.renderer = nil
	}
	if scr.window != nil {
		if err := scr.window.Destroy(); err != nil {
			fmt.Fprintln(output, err)
		}
		scr.window = nil
	}
	sdl.Quit()
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread.
func (scr *SdlScreen) Service() bool {
	if scr.ended {
		return false
	}

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.quit()

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			name := sdl.GetKeyName(ev.Keysym.Sym)
			if gui.IsQuitKey(name) {
				scr.quit()
				continue
			}
			if jev, ok := gui.TranslateKey(name, ev.Type == sdl.KEYDOWN); ok {
				if !scr.emulation.SendInput(jev) {
					logger.Logf(logger.Allow, "sdl", "input dropped: %s", jev)
				}
			}
		}
	}

	if scr.ended {
		return false
	}

	// take the next frame if there is one. the frame channel is never
	// waited on because SDL events must continue to be serviced
	select {
	case frame, ok := <-scr.emulation.Frames():
		if !ok {
			scr.ended = true
			return false
		}
		if err := scr.present(frame); err != nil {
			logger.Logf(logger.Allow, "sdl", "%v", err)
		}
	default:
	}

	return true
}

func (scr *SdlScreen) quit() {
	scr.emulation.Close()
	scr.ended = true
}

func (scr *SdlScreen) present(frame *video.Frame) error {
	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return err
	}

	// the texture pitch may be larger than the frame width
	for y := 0; y < video.Height; y++ {
		row := frame.Pixels[y*video.Width*pixelDepth : (y+1)*video.Width*pixelDepth]
		copy(pixels[y*pitch:], row)
	}
	scr.texture.Unlock()

	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return err
	}
	scr.renderer.Present()

	return nil
}
