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

// Package playmode runs a hardware.Machine in its own goroutine and connects
// it to a presentation front end.
//
// The machine and the front end communicate through two channels. Joypad
// events travel to the machine through a buffered channel. Sending is best
// effort and an event is dropped if the buffer is full. The machine drains
// the channel whenever it completes a frame.
//
// Completed frames travel to the front end through a channel with a capacity
// of one. If the front end has not yet taken the previous frame then the
// machine waits. This is the only thing that limits the speed of the
// emulation.
//
// The front end ends the session by calling Close(). The machine notices the
// next time it tries to send a frame and unwinds.
package playmode
