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

// Package cartridge implements the MBC3 cartridge controller. This is the
// only controller required by the fixed program.
//
// The controller decodes writes to the ROM area into the ROM bank, the
// RAM/RTC bank selection, the RAM enable flag and the RTC latch. The real
// time clock is implemented by the RTC type. Wall-clock time is obtained
// through the Clock interface so that tests can supply fixed time.
//
// The battery save image is the RTC epoch followed by the external RAM. See
// LoadSave() and WriteSave().
package cartridge
