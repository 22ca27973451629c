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

// Package memory implements the address space decoder. Every address is
// routed to exactly one backing store:
//
//	0000-3fff  cartridge ROM, bank 0
//	4000-7fff  cartridge ROM, switchable bank
//	8000-9fff  VRAM (video)
//	a000-bfff  external RAM or RTC register (cartridge)
//	c000-cfff  WRAM bank 0
//	d000-dfff  WRAM, switchable bank 1-7
//	e000-fdff  echo of c000-ddff
//	fe00-fe9f  OAM (video)
//	fea0-feff  unusable. reads 0xff and writes are ignored
//	ff00-ff7f  I/O registers
//	ff80-fffe  HRAM
//	ffff       IE
//
// The I/O registers are decoded to the peripherals (joypad, serial, timer,
// audio, video), the interrupt controller, the speed switch, OAM DMA and
// VRAM DMA (HDMA). Reading an I/O address that has no register returns
// 0xff. Writing to such an address is a fatal error.
//
// The decoder also advances the peripherals. The Advance() function is
// called with the number of CPU cycles that have elapsed. Peripherals
// clocked by the LCD receive half the CPU cycles in double speed mode.
//
//	                    cartridge (ROM, RAM, RTC)
//	                          |
//	    CPU ---- Memory ------+---- video (VRAM, OAM, LCD)
//	                          |
//	                          +---- timer, serial, joypad, audio
//	                          |
//	                          +---- interrupts (IF, IE)
package memory
