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

// Package hardware is the base package for the handheld emulation. The
// Machine type ties together the CPU and the address space and is the only
// way program code should be run.
//
// Program code is entered through the Call() and Jump() functions. These
// functions implement a trampoline that either interprets an instruction or,
// if the current location is in the override Table, runs a native Go
// replacement for the routine at that location. Native replacements are
// free to call back into program code through Call() and Jump(), so the two
// modes of execution can be nested to any depth (up to MaxCallDepth).
//
// A Call() returns when the program counter reaches zero. This works because
// Call() pushes zero as the return address before transferring control. The
// program at address zero is never run.
//
// Interrupts are serviced by the trampoline after every iteration. Servicing
// an interrupt is itself a Call() to the interrupt vector, after which the
// program counter is restored.
//
// The Machine is not safe for concurrent use. The playmode package shows how
// to run a Machine in its own goroutine.
package hardware
