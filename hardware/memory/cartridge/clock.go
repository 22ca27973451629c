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

package cartridge

import "time"

// Clock is the source of wall-clock time for the RTC. The value returned by
// Now() is in seconds since the unix epoch.
type Clock interface {
	Now() int64
}

// SystemClock uses the host's wall-clock.
type SystemClock struct{}

// Now implements the Clock interface.
func (SystemClock) Now() int64 {
	return time.Now().Unix()
}

// FixedClock only changes when told to. Useful for testing and for
// reproducible runs.
type FixedClock struct {
	Seconds int64
}

// Now implements the Clock interface.
func (clk *FixedClock) Now() int64 {
	return clk.Seconds
}

// Advance the clock by the number of seconds.
func (clk *FixedClock) Advance(seconds int64) {
	clk.Seconds += seconds
}
