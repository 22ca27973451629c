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

// Package overrides contains the override table for the program. Most
// entries are native replacements for the routines in the fixed ROM bank
// that the rest of the program calls most often. The remaining entries are
// guards for the internal labels of those routines.
//
// Each native replacement leaves the registers, flags and memory exactly as
// the ROM routine would. The replacements take no time, with the exception of
// DelayFrame, which waits for the VBlank interrupt in the same way as the ROM
// routine.
//
// The Go functions can be called directly (from another native replacement
// for example). Guards only forbid interpreted code from reaching the label.
package overrides
