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
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/gui"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/pkg/term"
)

// the rate at which frames are taken from the emulation
const frameDuration = time.Second / 60

// how long a button is held after a key press
const holdDuration = 150 * time.Millisecond

// TermScreen is a terminal implementation of the gui.GUI interface.
type TermScreen struct {
	emulation gui.Emulation

	tty    *term.Term
	output io.Writer

	ticker *time.Ticker

	// only every Nth frame is drawn
	skip  int
	count int

	// closed by the key reader or by Service()
	quit     chan struct{}
	quitOnce sync.Once

	// the key reader goroutine has ended
	readerDone chan struct{}

	ended bool
}

// NewTermScreen is the preferred method of initialisation for the TermScreen
// type. Every skip frames are drawn, a skip of less than one draws every
// frame.
func NewTermScreen(emulation gui.Emulation, skip int) (*TermScreen, error) {
	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf(gui.GUIError, err)
	}

	err = tty.SetReadTimeout(100 * time.Millisecond)
	if err != nil {
		_ = tty.Restore()
		_ = tty.Close()
		return nil, curated.Errorf(gui.GUIError, err)
	}

	if skip < 1 {
		skip = 1
	}

	scr := &TermScreen{
		emulation:  emulation,
		tty:        tty,
		output:     os.Stdout,
		ticker:     time.NewTicker(frameDuration),
		skip:       skip,
		quit:       make(chan struct{}),
		readerDone: make(chan struct{}),
	}

	// clear screen and hide cursor
	fmt.Fprint(scr.output, "\x1b[2J\x1b[?25l")

	go scr.readKeys()

	return scr, nil
}

// Destroy implements the gui.GUI interface.
func (scr *TermScreen) Destroy(output io.Writer) {
	scr.stop()
	<-scr.readerDone
	scr.ticker.Stop()

	// show cursor
	fmt.Fprint(scr.output, "\x1b[?25h\r\n")

	if err := scr.tty.Restore(); err != nil {
		fmt.Fprintln(output, err)
	}
	if err := scr.tty.Close(); err != nil {
		fmt.Fprintln(output, err)
	}
}

func (scr *TermScreen) stop() {
	scr.quitOnce.Do(func() {
		close(scr.quit)
	})
}

// Service implements the gui.GUI interface. Service() waits until it is time
// for the next frame.
func (scr *TermScreen) Service() bool {
	if scr.ended {
		return false
	}

	select {
	case <-scr.quit:
		scr.emulation.Close()
		scr.ended = true
		return false
	case <-scr.ticker.C:
	}

	select {
	case frame, ok := <-scr.emulation.Frames():
		if !ok {
			scr.ended = true
			return false
		}
		scr.count++
		if scr.count%scr.skip == 0 {
			if err := render(frame, scr.output); err != nil {
				logger.Logf(logger.Allow, "term", "%v", err)
			}
		}
	default:
	}

	return true
}

// readKeys runs in its own goroutine until quit is closed
func (scr *TermScreen) readKeys() {
	defer close(scr.readerDone)

	b := make([]byte, 8)
	for {
		select {
		case <-scr.quit:
			return
		default:
		}

		n, err := scr.tty.Read(b)
		if err != nil && !errors.Is(err, io.EOF) {
			logger.Logf(logger.Allow, "term", "%v", err)
			scr.stop()
			return
		}

		name, ok := keyName(b[:n])
		if !ok {
			continue
		}

		if gui.IsQuitKey(name) {
			scr.stop()
			return
		}

		if ev, ok := gui.TranslateKey(name, true); ok {
			scr.emulation.SendInput(ev)
			ev.Pressed = false
			time.AfterFunc(holdDuration, func() {
				scr.emulation.SendInput(ev)
			})
		}
	}
}
