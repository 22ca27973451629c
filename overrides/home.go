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

package overrides

import (
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/cpu"
)

// FarCall calls the routine at HL in the ROM bank given by A. The previous
// bank is restored when the routine returns.
func FarCall(m *hardware.Machine) {
	r := m.Regs()
	prev := m.ReadByte(HROMBank)
	bankswitch(m, r.A)
	m.Call(r.HL())
	bankswitch(m, prev)
	m.Return()
}

// Bankswitch selects the ROM bank given by A.
func Bankswitch(m *hardware.Machine) {
	bankswitch(m, m.Regs().A)
	m.Return()
}

func bankswitch(m *hardware.Machine, bank uint8) {
	m.WriteByte(HROMBank, bank)
	m.WriteByte(mbc3ROMBank, bank)
}

// AddNTimes adds BC to HL, A times.
func AddNTimes(m *hardware.Machine) {
	r := m.Regs()
	cpu.And(r, r.A)
	for !r.F.Zero {
		cpu.AddHL(r, r.BC())
		r.A = cpu.Dec(r, r.A)
	}
	m.Return()
}

// CopyBytes copies BC bytes from HL to DE.
func CopyBytes(m *hardware.Machine) {
	r := m.Regs()
	r.B = cpu.Inc(r, r.B)
	r.C = cpu.Inc(r, r.C)
	for {
		if r.C = cpu.Dec(r, r.C); r.C == 0 {
			if r.B = cpu.Dec(r, r.B); r.B == 0 {
				break
			}
		}
		r.A = m.ReadByte(r.HLI())
		m.WriteByte(r.DE(), r.A)
		r.SetDE(r.DE() + 1)
	}
	m.Return()
}

// ByteFill writes A to BC bytes starting at HL.
func ByteFill(m *hardware.Machine) {
	r := m.Regs()
	r.B = cpu.Inc(r, r.B)
	r.C = cpu.Inc(r, r.C)
	for {
		if r.C = cpu.Dec(r, r.C); r.C == 0 {
			if r.B = cpu.Dec(r, r.B); r.B == 0 {
				break
			}
		}
		m.WriteByte(r.HLI(), r.A)
	}
	m.Return()
}

// JumpTable jumps to entry A of the table of addresses at HL. DE is
// preserved. There is no return because the jump is to a routine that
// returns to the caller of JumpTable.
func JumpTable(m *hardware.Machine) {
	r := m.Regs()
	offset := uint16(r.A)
	cpu.AddHL(r, offset)
	cpu.AddHL(r, offset)
	r.A = m.ReadByte(r.HLI())
	r.H = m.ReadByte(r.HL())
	r.L = r.A
	r.PC = r.HL()
}

// DelayFrame waits for the next VBlank interrupt. The VBlank handler
// indicates that it has run by clearing VBlankOccurred.
func DelayFrame(m *hardware.Machine) {
	r := m.Regs()
	r.A = 1
	m.WriteByte(VBlankOccurred, r.A)
	for {
		m.Wait()
		r.A = m.ReadByte(VBlankOccurred)
		if cpu.And(r, r.A); r.F.Zero {
			break
		}
	}
	m.Return()
}
