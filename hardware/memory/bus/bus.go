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

package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. The address space has no notion of failure. Accesses outside of the
// decoded ranges are fatal and cause a panic.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// DebugBus defines the meta-operations for the memory system. Think of these
// functions as "debugging" functions, that is operations outside of the
// normal operation of the machine.
//
// Peek never has side effects. Poke to the ROM area changes the ROM image
// rather than sending a command to the cartridge controller. For all other
// addresses Poke is the same as a CPU write.
type DebugBus interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}
