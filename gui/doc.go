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

// Package gui defines the interface between the presentation front ends and
// the rest of the emulation. The front ends themselves are in sub-packages:
//
//	sdlscreen     SDL window
//	ebitenscreen  ebiten window
//	termscreen    terminal. no window required
//
// Front ends that create windows must be created and serviced on the
// #mainthread.
package gui
