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

// Package logger is the central log for the application. Log entries are
// kept in memory and can be written out or echoed as they are created.
//
// Subsystems log rare events only. The emulated hardware should never log
// per instruction or per cycle.
//
// Identical consecutive entries are collapsed into a single entry with a
// repeat count.
//
// The package level functions are safe to call from any goroutine.
package logger
