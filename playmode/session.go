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

package playmode

import (
	"sync"

	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/joypad"
	"github.com/jetsetilly/gopherboy/hardware/video"
	"github.com/jetsetilly/gopherboy/logger"
)

// InputBuffer is the default capacity of the input channel.
const InputBuffer = 64

// Session connects a Machine to a front end.
type Session struct {
	machine *hardware.Machine

	input  chan joypad.Event
	frames chan *video.Frame

	done      chan struct{}
	closeDone sync.Once

	// closed when the machine goroutine ends
	ended   chan struct{}
	stopped bool

	// number of input events dropped because the input channel was full
	dropped int
	mu      sync.Mutex
}

// NewSession is the preferred method of initialisation for the Session type.
// The Machine should not be used outside of the session once NewSession() has
// been called.
func NewSession(m *hardware.Machine, inputBuffer int) *Session {
	if inputBuffer <= 0 {
		inputBuffer = InputBuffer
	}
	s := &Session{
		machine: m,
		input:   make(chan joypad.Event, inputBuffer),
		frames:  make(chan *video.Frame, 1),
		done:    make(chan struct{}),
		ended:   make(chan struct{}),
	}
	m.Mem.Video.SetSink(s)
	return s
}

// Start the machine goroutine. The program is entered at the address.
func (s *Session) Start(entry uint16) {
	go s.run(entry)
}

// run is the machine goroutine. a panic in the machine is not recovered and
// will end the process
func (s *Session) run(entry uint16) {
	defer close(s.ended)
	defer close(s.frames)

	logger.Logf(logger.Allow, "playmode", "starting at %#04x", entry)
	s.stopped = s.machine.Execute(entry)
	if s.stopped {
		logger.Log(logger.Allow, "playmode", "stopped by front end")
	} else {
		logger.Log(logger.Allow, "playmode", "program returned")
	}
}

// Frames returns the channel on which completed frames are sent. The channel
// is closed when the machine goroutine ends.
func (s *Session) Frames() <-chan *video.Frame {
	return s.frames
}

// SendInput queues a joypad event for the machine. Returns false if the event
// was dropped. Safe to call from any goroutine.
func (s *Session) SendInput(ev joypad.Event) bool {
	select {
	case s.input <- ev:
		return true
	default:
		s.mu.Lock()
		s.dropped++
		s.mu.Unlock()
		return false
	}
}

// Dropped returns the number of input events that have been dropped.
func (s *Session) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// Close ends the session. Safe to call more than once and from any
// goroutine. Close() does not wait for the machine goroutine to end.
func (s *Session) Close() {
	s.closeDone.Do(func() {
		close(s.done)
	})
}

// Ended returns a channel that is closed when the machine goroutine ends.
func (s *Session) Ended() <-chan struct{} {
	return s.ended
}

// Wait blocks until the machine goroutine has ended. Returns true if the
// machine was stopped by Close() rather than the program returning.
func (s *Session) Wait() bool {
	<-s.ended
	return s.stopped
}

// Present implements the video.FrameSink interface. It is called by the
// machine goroutine.
func (s *Session) Present(frame *video.Frame) {
	s.drainInput()

	select {
	case s.frames <- frame:
	case <-s.done:
		s.machine.Stop()
	}
}

// drainInput passes all queued input events to the joypad without waiting
// for more.
func (s *Session) drainInput() {
	for {
		select {
		case ev := <-s.input:
			s.machine.Mem.Joypad.Handle(ev)
		default:
			return
		}
	}
}
