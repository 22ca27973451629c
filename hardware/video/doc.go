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

// Package video implements the timing of the LCD controller along with the
// memories and registers it owns: VRAM (two banks), OAM, the LCD registers
// and the CGB palette memories.
//
// Pixels are not rendered. A frame is published at the start of every
// vertical blank so that the presentation goroutine is paced by the
// emulation. The contents of the frame are the backdrop colour of the
// background palette.
//
// The LCD mode sequence for a visible line is mode 2 (OAM search) for the
// first 80 dots, mode 3 (transfer) for the next 172 dots, and mode 0
// (horizontal blank) for the remainder of the 456 dot line. Lines 144 to 153
// are in mode 1 (vertical blank).
package video
