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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are used at the boundaries of the emulation: loading a ROM
// file, reading or writing a battery save, parsing the command line and
// preferences, and initialising a front end.
//
// Curated errors are not used inside the emulated hardware. Invariant
// violations there are fatal and cause a panic.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. The first argument is a pattern
// and the remaining arguments are the values for that pattern.
//
//	const NoROM = "rom: file not found (%s)"
//	err := curated.Errorf(NoROM, filename)
//
// The pattern is retained by the error and can be tested for with the Is()
// and Has() functions. Is() tests only the outermost error and Has() tests
// every curated error in the chain.
//
// Error messages are normalised by the Error() function. Adjacent duplicate
// parts of the message (separated by ": ") are removed, so that an error
// wrapped by a function in the same package reads naturally:
//
//	save: save: truncated image
//
// is returned as
//
//	save: truncated image
package curated
