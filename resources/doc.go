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

// Package resources prepares paths to the files used by the emulator that are
// not cartridge data, for example the preferences file.
//
// JoinPath() roots the supplied path in the resource directory. If a
// directory called ".gopherboy" exists in the current working directory then
// that is the resource directory. Otherwise the resource directory is in the
// user's configuration directory. On Linux this is something like:
//
//	/home/user/.config/gopherboy/
//
// The local directory is a convenience for development and for portable
// installations.
package resources
