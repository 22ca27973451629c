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

package video_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/video"
	"github.com/jetsetilly/gopherboy/test"
)

type mockSink struct {
	frames []*video.Frame
}

func (s *mockSink) Present(f *video.Frame) {
	s.frames = append(s.frames, f)
}

func TestModeSequence(t *testing.T) {
	var ic interrupts.Controller
	vid := video.NewVideo(&ic)

	test.ExpectEquality(t, vid.Mode(), video.ModeOAM)

	vid.Step(80)
	test.ExpectEquality(t, vid.Mode(), video.ModeOAM)
	vid.Step(80)
	test.ExpectEquality(t, vid.Mode(), video.ModeTransfer)
	test.ExpectFailure(t, vid.MayHDMA())
	vid.Step(160)
	test.ExpectEquality(t, vid.Mode(), video.ModeHBlank)
	test.ExpectSuccess(t, vid.MayHDMA())

	// permission to transfer lasts for one step only
	vid.Step(4)
	test.ExpectEquality(t, vid.Mode(), video.ModeHBlank)
	test.ExpectFailure(t, vid.MayHDMA())

	// next line
	vid.Step(456 - 324)
	test.ExpectEquality(t, vid.LY(), uint8(1))
	test.ExpectEquality(t, vid.Mode(), video.ModeOAM)
}

func TestVBlank(t *testing.T) {
	var ic interrupts.Controller
	var sink mockSink

	vid := video.NewVideo(&ic)
	vid.SetSink(&sink)

	vid.Step(143 * 456)
	test.ExpectEquality(t, vid.LY(), uint8(143))
	test.ExpectEquality(t, len(sink.frames), 0)
	test.ExpectEquality(t, ic.Requested&interrupts.VBlank.Bit(), uint8(0))

	vid.Step(456)
	test.ExpectEquality(t, vid.LY(), uint8(144))
	test.ExpectEquality(t, vid.Mode(), video.ModeVBlank)
	test.ExpectEquality(t, len(sink.frames), 1)
	test.ExpectEquality(t, sink.frames[0].Number, 1)
	test.ExpectEquality(t, ic.Requested&interrupts.VBlank.Bit(), interrupts.VBlank.Bit())

	// the remainder of the frame
	vid.Step(10 * 456)
	test.ExpectEquality(t, vid.LY(), uint8(0))
	test.ExpectEquality(t, vid.FrameNum(), 1)

	vid.Step(154 * 456)
	test.ExpectEquality(t, vid.FrameNum(), 2)
}

func TestSTAT(t *testing.T) {
	var ic interrupts.Controller
	vid := video.NewVideo(&ic)

	// LY == LYC at power-on
	test.ExpectEquality(t, vid.Read(addresses.STAT), uint8(0x86))

	vid.Write(addresses.STAT, 0xff)
	test.ExpectEquality(t, vid.Read(addresses.STAT), uint8(0xfe))

	vid.Write(addresses.STAT, statLYCOnly)
	vid.Write(addresses.LYC, 2)
	vid.Step(456)
	test.ExpectEquality(t, ic.Requested, uint8(0))
	vid.Step(456)
	test.ExpectEquality(t, ic.Requested, interrupts.LCDStat.Bit())

	// mode 0 interrupt
	ic.Reset()
	vid.Write(addresses.STAT, 0x08)
	vid.Step(320)
	test.ExpectEquality(t, ic.Requested, interrupts.LCDStat.Bit())
}

const statLYCOnly = 0x40

func TestLCDOff(t *testing.T) {
	var ic interrupts.Controller
	vid := video.NewVideo(&ic)

	vid.Step(456 * 3)
	test.ExpectEquality(t, vid.LY(), uint8(3))

	vid.Write(addresses.LCDC, 0x00)
	test.ExpectEquality(t, vid.LY(), uint8(0))
	vid.Step(456 * 3)
	test.ExpectEquality(t, vid.LY(), uint8(0))

	// writes to LY are ignored
	vid.Write(addresses.LY, 0x50)
	test.ExpectEquality(t, vid.Read(addresses.LY), uint8(0))

	vid.Write(addresses.LCDC, 0x80)
	test.ExpectEquality(t, vid.Mode(), video.ModeOAM)
}

func TestVRAMBank(t *testing.T) {
	var ic interrupts.Controller
	vid := video.NewVideo(&ic)

	vid.WriteVRAM(0x8000, 0x11)
	vid.Write(addresses.VBK, 0x01)
	test.ExpectEquality(t, vid.Read(addresses.VBK), uint8(0xff))
	test.ExpectEquality(t, vid.ReadVRAM(0x8000), uint8(0x00))
	vid.WriteVRAM(0x9fff, 0x22)
	vid.Write(addresses.VBK, 0x00)
	test.ExpectEquality(t, vid.Read(addresses.VBK), uint8(0xfe))
	test.ExpectEquality(t, vid.ReadVRAM(0x8000), uint8(0x11))
	test.ExpectEquality(t, vid.ReadVRAM(0x9fff), uint8(0x00))
}

func TestPalette(t *testing.T) {
	var ic interrupts.Controller
	var sink mockSink

	vid := video.NewVideo(&ic)
	vid.SetSink(&sink)

	// auto-increment from index 0
	vid.Write(addresses.BCPS, 0x80)
	vid.Write(addresses.BCPD, 0x1f)
	vid.Write(addresses.BCPD, 0x00)
	test.ExpectEquality(t, vid.Read(addresses.BCPS), uint8(0xc2))

	vid.Write(addresses.BCPS, 0x00)
	test.ExpectEquality(t, vid.Read(addresses.BCPD), uint8(0x1f))

	// backdrop colour is pure red
	vid.Step(144 * 456)
	test.DemandEquality(t, len(sink.frames), 1)
	test.ExpectEquality(t, sink.frames[0].Pixels[0], uint8(0xff))
	test.ExpectEquality(t, sink.frames[0].Pixels[1], uint8(0x00))
	test.ExpectEquality(t, sink.frames[0].Pixels[2], uint8(0x00))
	test.ExpectEquality(t, sink.frames[0].Pixels[3], uint8(0xff))
}
