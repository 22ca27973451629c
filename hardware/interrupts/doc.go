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

// Package interrupts implements the interrupt request (IF) and interrupt
// enable (IE) registers and the selection of the interrupt to be serviced.
//
// Servicing an interrupt requires a call into program code and is therefore
// the responsibility of the hardware package. This package only decides
// which interrupt, if any, should be serviced.
//
// Priority is by ascending bit index. VBlank has the highest priority and
// Joypad the lowest.
package interrupts
