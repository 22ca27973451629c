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

// Package digest produces a cryptographic hash of the emulator's video output.
// The hash can be compared with the value from a previous run. If the values
// differ then something has changed. The PERFORMANCE mode uses this to check
// that optimisations have not changed the emulation.
package digest

// Digest implementations return a hash of everything they have seen since
// the last reset.
type Digest interface {
	Hash() string
	ResetDigest()
}
