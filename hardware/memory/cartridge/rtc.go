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

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/logger"
)

// The RTC registers in the order they are selected through the RAM bank
// register (bank 0x08 to 0x0c).
const (
	RTCSeconds = iota
	RTCMinutes
	RTCHours
	RTCDaysLow
	RTCDaysHigh
	NumRTCRegisters
)

// bits in the RTCDaysHigh register
const (
	daysHighBit8  = 0x01
	daysHighHalt  = 0x40
	daysHighCarry = 0x80
)

// the valid bits for each register
var rtcMasks = [NumRTCRegisters]uint8{0x3f, 0x3f, 0x1f, 0xff, 0xc1}

const secondsPerDay = 86400

// RTC is the real time clock of the MBC3. The clock does not tick. Instead
// the live registers are recalculated from the clock and the epoch when they
// are required.
type RTC struct {
	clock Clock

	// the time at which all registers were zero. this is the only value
	// that is stored in the battery save
	Epoch int64

	live    [NumRTCRegisters]uint8
	latched [NumRTCRegisters]uint8
}

// NewRTC is the preferred method of initialisation for the RTC type. The
// epoch is the current time.
func NewRTC(clock Clock) *RTC {
	return &RTC{
		clock: clock,
		Epoch: clock.Now(),
	}
}

func (rtc *RTC) String() string {
	return fmt.Sprintf("day %d %02d:%02d:%02d", rtc.days(&rtc.latched),
		rtc.latched[RTCHours], rtc.latched[RTCMinutes], rtc.latched[RTCSeconds])
}

func (rtc *RTC) days(regs *[NumRTCRegisters]uint8) int64 {
	return int64(regs[RTCDaysHigh]&daysHighBit8)<<8 | int64(regs[RTCDaysLow])
}

// Latch recalculates the live registers and copies them to the latched
// registers.
func (rtc *RTC) Latch() {
	rtc.calcRegisters()
	rtc.latched = rtc.live
}

// Read returns the latched value of the register.
func (rtc *RTC) Read(reg int) uint8 {
	return rtc.latched[reg]
}

// Write sets the live value of the register. The value is masked to the
// valid bits of the register and the epoch is rebased so that the clock
// continues from the new value.
func (rtc *RTC) Write(reg int, data uint8) {
	rtc.calcRegisters()
	rtc.live[reg] = data & rtcMasks[reg]
	rtc.calcEpoch()
}

// Halted returns true if the halt bit is set in the live registers.
func (rtc *RTC) Halted() bool {
	return rtc.live[RTCDaysHigh]&daysHighHalt == daysHighHalt
}

// calcRegisters derives the live registers from the time elapsed since the
// epoch. the registers are frozen while the halt bit is set.
func (rtc *RTC) calcRegisters() {
	if rtc.Halted() {
		return
	}

	elapsed := rtc.clock.Now() - rtc.Epoch
	if elapsed < 0 {
		elapsed = 0
	}

	rtc.live[RTCSeconds] = uint8(elapsed % 60)
	rtc.live[RTCMinutes] = uint8((elapsed / 60) % 60)
	rtc.live[RTCHours] = uint8((elapsed / 3600) % 24)

	days := elapsed / secondsPerDay
	rtc.live[RTCDaysLow] = uint8(days)
	rtc.live[RTCDaysHigh] = rtc.live[RTCDaysHigh]&^daysHighBit8 | uint8(days>>8)&daysHighBit8

	if days >= 512 {
		rtc.live[RTCDaysHigh] |= daysHighCarry
		rtc.calcEpoch()
		logger.Logf(logger.Allow, "rtc", "day counter overflow (%d days)", days)
	}
}

// calcEpoch derives the epoch from the live registers.
func (rtc *RTC) calcEpoch() {
	t := rtc.clock.Now()
	t -= int64(rtc.live[RTCSeconds])
	t -= int64(rtc.live[RTCMinutes]) * 60
	t -= int64(rtc.live[RTCHours]) * 3600
	t -= rtc.days(&rtc.live) * secondsPerDay
	rtc.Epoch = t
}
