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

// Package clocks defines the constant values of the main clock of the CGB.
//
// The frame rate is derived from the number of clock cycles in a frame (154
// scanlines of 456 cycles) at the single speed clock.
package clocks

// Clock speeds in MHz.
const (
	SingleSpeed = 4.194304
	DoubleSpeed = SingleSpeed * 2
)

// CyclesPerFrame is the number of clock cycles in a frame. The number of
// cycles is the same at double speed when measured in video dots.
const CyclesPerFrame = 154 * 456

// FrameRate is the number of frames per second.
const FrameRate = SingleSpeed * 1000000 / CyclesPerFrame
