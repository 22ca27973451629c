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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/audio"
	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/joypad"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/bus"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/serial"
	"github.com/jetsetilly/gopherboy/hardware/timer"
	"github.com/jetsetilly/gopherboy/hardware/video"
	"github.com/jetsetilly/gopherboy/logger"
)

// the number of WRAM banks
const numWRAMBanks = 8

// I/O registers that exist on the hardware but have no effect in the
// emulation. writes are ignored and reads return 0xff
var inertRegisters = map[uint16]bool{
	0xff4c: true, // KEY0. CGB mode selection
	0xff50: true, // boot ROM disable
	0xff56: true, // RP. infrared port
	0xff6c: true, // OPRI. object priority mode
	0xff72: true,
	0xff73: true,
	0xff74: true,
	0xff75: true,
	0xff76: true, // PCM12
	0xff77: true, // PCM34
}

// Memory is the address space decoder.
type Memory struct {
	Cart       *cartridge.Cartridge
	Video      *video.Video
	Timer      *timer.Timer
	Serial     *serial.Serial
	Joypad     *joypad.Joypad
	Audio      *audio.Audio
	Interrupts *interrupts.Controller

	wram     [numWRAMBanks][addresses.WRAMBankSize]uint8
	wramBank int
	hram     [addresses.HRAMSize]uint8

	// the most recent value written to the OAM DMA register
	oamDMA uint8

	doubleSpeed    bool
	speedRequested bool

	hdma hdma
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(cart *cartridge.Cartridge) *Memory {
	ic := &interrupts.Controller{}
	mem := &Memory{
		Cart:       cart,
		Interrupts: ic,
		Video:      video.NewVideo(ic),
		Timer:      timer.NewTimer(ic),
		Serial:     serial.NewSerial(ic),
		Joypad:     joypad.NewJoypad(ic),
		Audio:      audio.NewAudio(),
	}
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("ROM=%02x WRAM=%d speed=%s %s", mem.Cart.ROMBank(), mem.wramBank, mem.Speed(), mem.Interrupts)
}

// Reset the address space and all peripherals to their power-on state. The
// contents of the cartridge RAM are not affected.
func (mem *Memory) Reset() {
	mem.Cart.Reset()
	mem.Video.Reset()
	mem.Timer.Reset()
	mem.Serial.Reset()
	mem.Joypad.Reset()
	mem.Audio.Reset()
	mem.Interrupts.Reset()

	mem.wram = [numWRAMBanks][addresses.WRAMBankSize]uint8{}
	mem.wramBank = 1
	mem.hram = [addresses.HRAMSize]uint8{}
	mem.oamDMA = 0xff
	mem.doubleSpeed = false
	mem.speedRequested = false
	mem.hdma = hdma{}
}

// ROMBank returns the ROM bank mapped into the switchable window.
func (mem *Memory) ROMBank() int {
	return mem.Cart.ROMBank()
}

// WRAMBank returns the WRAM bank mapped into the switchable window.
func (mem *Memory) WRAMBank() int {
	return mem.wramBank
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) uint8 {
	switch {
	case address <= addresses.ROMMemtop:
		return mem.Cart.ReadROM(address)
	case address <= addresses.VRAMMemtop:
		return mem.Video.ReadVRAM(address)
	case address <= addresses.ExternalMemtop:
		return mem.Cart.ReadRAM(address)
	case address <= addresses.WRAMFixedMemtop:
		return mem.wram[0][address&0x0fff]
	case address <= addresses.WRAMMemtop:
		return mem.wram[mem.wramBank][address&0x0fff]
	case address <= addresses.EchoFixedMemtop:
		return mem.wram[0][address&0x0fff]
	case address <= addresses.EchoMemtop:
		return mem.wram[mem.wramBank][address&0x0fff]
	case address <= addresses.OAMMemtop:
		return mem.Video.ReadOAM(address)
	case address <= addresses.UnusableMemtop:
		return 0xff
	case address <= addresses.IOMemtop:
		return mem.readIO(address)
	case address <= addresses.HRAMMemtop:
		return mem.hram[address-addresses.HRAMOrigin]
	}
	return mem.Interrupts.Enabled
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(address uint16, data uint8) {
	switch {
	case address <= addresses.ROMMemtop:
		mem.Cart.WriteROM(address, data)
	case address <= addresses.VRAMMemtop:
		mem.Video.WriteVRAM(address, data)
	case address <= addresses.ExternalMemtop:
		mem.Cart.WriteRAM(address, data)
	case address <= addresses.WRAMFixedMemtop:
		mem.wram[0][address&0x0fff] = data
	case address <= addresses.WRAMMemtop:
		mem.wram[mem.wramBank][address&0x0fff] = data
	case address <= addresses.EchoFixedMemtop:
		mem.wram[0][address&0x0fff] = data
	case address <= addresses.EchoMemtop:
		mem.wram[mem.wramBank][address&0x0fff] = data
	case address <= addresses.OAMMemtop:
		mem.Video.WriteOAM(address, data)
	case address <= addresses.UnusableMemtop:
	case address <= addresses.IOMemtop:
		mem.writeIO(address, data)
	case address <= addresses.HRAMMemtop:
		mem.hram[address-addresses.HRAMOrigin] = data
	default:
		mem.Interrupts.Enabled = data
	}
}

// Memory is the bus for the CPU and for debugging tools such as the tracer.
var _ bus.CPUBus = (*Memory)(nil)
var _ bus.DebugBus = (*Memory)(nil)

// Peek implements the bus.DebugBus interface. Reads have no side effects so
// Peek is the same as Read.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.Read(address)
}

// Poke implements the bus.DebugBus interface.
func (mem *Memory) Poke(address uint16, data uint8) {
	if address <= addresses.ROMMemtop {
		mem.Cart.PokeROM(address, data)
		return
	}
	mem.Write(address, data)
}

func (mem *Memory) readIO(address uint16) uint8 {
	switch {
	case address == addresses.P1:
		return mem.Joypad.Read()
	case address == addresses.SB || address == addresses.SC:
		return mem.Serial.Read(address)
	case address >= addresses.DIV && address <= addresses.TAC:
		return mem.Timer.Read(address)
	case address == addresses.IF:
		return mem.Interrupts.ReadIF()
	case address >= addresses.AudioOrigin && address <= addresses.AudioMemtop:
		return mem.Audio.Read(address)
	case address == addresses.DMA:
		return mem.oamDMA
	case address >= addresses.LCDC && address <= addresses.WX:
		return mem.Video.Read(address)
	case address == addresses.KEY1:
		return mem.readKEY1()
	case address == addresses.VBK:
		return mem.Video.Read(address)
	case address >= addresses.HDMA1 && address <= addresses.HDMA5:
		return mem.hdma.read(address)
	case address >= addresses.BCPS && address <= addresses.OCPD:
		return mem.Video.Read(address)
	case address == addresses.SVBK:
		return uint8(mem.wramBank) | 0xf8
	}
	return 0xff
}

func (mem *Memory) writeIO(address uint16, data uint8) {
	switch {
	case address == addresses.P1:
		mem.Joypad.Write(data)
	case address == addresses.SB || address == addresses.SC:
		mem.Serial.Write(address, data)
	case address >= addresses.DIV && address <= addresses.TAC:
		mem.Timer.Write(address, data)
	case address == addresses.IF:
		mem.Interrupts.WriteIF(data)
	case address >= addresses.AudioOrigin && address <= addresses.AudioMemtop:
		mem.Audio.Write(address, data)
	case address == addresses.DMA:
		mem.oamTransfer(data)
	case address >= addresses.LCDC && address <= addresses.WX:
		mem.Video.Write(address, data)
	case address == addresses.KEY1:
		mem.speedRequested = data&0x01 == 0x01
	case address == addresses.VBK:
		mem.Video.Write(address, data)
	case address >= addresses.HDMA1 && address <= addresses.HDMA5:
		mem.hdma.write(address, data)
	case address >= addresses.BCPS && address <= addresses.OCPD:
		mem.Video.Write(address, data)
	case address == addresses.SVBK:
		mem.wramBank = int(data & 0x07)
		if mem.wramBank == 0 {
			mem.wramBank = 1
		}
	case inertRegisters[address]:
	default:
		panic(fmt.Sprintf("memory: write to unmapped address %#04x (%#02x)", address, data))
	}
}

// oamTransfer copies 0xa0 bytes from the page given by data to OAM. The
// transfer is immediate.
func (mem *Memory) oamTransfer(data uint8) {
	mem.oamDMA = data
	src := uint16(data) << 8
	for i := uint16(0); i < addresses.OAMSize; i++ {
		mem.Video.WriteOAM(addresses.OAMOrigin+i, mem.Read(src+i))
	}
}

// Advance the peripherals by the number of CPU cycles. Any pending VRAM DMA
// is performed first. The return value is the number of CPU cycles that
// elapsed, which includes the cycles taken by the VRAM DMA.
func (mem *Memory) Advance(cycles int) int {
	divider := mem.speedDivider()

	dmaCycles := mem.performHDMA()
	videoCycles := cycles/divider + dmaCycles
	cpuCycles := cycles + dmaCycles*divider

	mem.Timer.Step(cpuCycles)
	mem.Video.Step(videoCycles)

	return cpuCycles
}

// Speed is the CPU speed mode.
type Speed bool

// List of valid Speed values.
const (
	SingleSpeed Speed = false
	DoubleSpeed Speed = true
)

func (s Speed) String() string {
	if s {
		return "double"
	}
	return "single"
}

// Speed returns the current speed mode.
func (mem *Memory) Speed() Speed {
	return Speed(mem.doubleSpeed)
}

func (mem *Memory) speedDivider() int {
	if mem.doubleSpeed {
		return 2
	}
	return 1
}

func (mem *Memory) readKEY1() uint8 {
	var v uint8
	if mem.doubleSpeed {
		v |= 0x80
	}
	if mem.speedRequested {
		v |= 0x01
	}
	return v
}

// SwitchSpeed is called by the STOP instruction. The speed is changed only if
// a change has been requested through the KEY1 register.
func (mem *Memory) SwitchSpeed() {
	if mem.speedRequested {
		mem.doubleSpeed = !mem.doubleSpeed
		logger.Logf(logger.Allow, "memory", "%s speed", mem.Speed())
	}
	mem.speedRequested = false
}
