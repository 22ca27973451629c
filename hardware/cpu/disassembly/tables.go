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

package disassembly

import "fmt"

// operand markers in the mnemonic templates. the marker is replaced by the
// formatted operand when an instruction is disassembled
//
//	d8  immediate byte
//	d16 immediate word
//	a8  high memory offset
//	a16 absolute address
//	r8  relative branch target
var (
	primary  [256]string
	extended [256]string
)

var (
	regNames   = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	pairNames  = [4]string{"BC", "DE", "HL", "SP"}
	stackNames = [4]string{"BC", "DE", "HL", "AF"}
	condNames  = [4]string{"NZ", "Z", "NC", "C"}
	aluNames   = [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}
	shiftNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}
)

const undefined = "??"

func init() {
	for i := range primary {
		primary[i] = undefined
	}

	for i := 0x40; i <= 0x7f; i++ {
		primary[i] = fmt.Sprintf("LD %s,%s", regNames[(i>>3)&7], regNames[i&7])
	}
	primary[0x76] = "HALT"

	for i := 0x80; i <= 0xbf; i++ {
		primary[i] = aluNames[(i>>3)&7] + regNames[i&7]
	}

	for y := 0; y < 8; y++ {
		primary[0xc6|y<<3] = aluNames[y] + "d8"
		primary[0x04|y<<3] = "INC " + regNames[y]
		primary[0x05|y<<3] = "DEC " + regNames[y]
		primary[0x06|y<<3] = fmt.Sprintf("LD %s,d8", regNames[y])
		primary[0xc7|y<<3] = fmt.Sprintf("RST $%02x", y<<3)
	}

	for p := 0; p < 4; p++ {
		primary[0x01|p<<4] = fmt.Sprintf("LD %s,d16", pairNames[p])
		primary[0x03|p<<4] = "INC " + pairNames[p]
		primary[0x0b|p<<4] = "DEC " + pairNames[p]
		primary[0x09|p<<4] = "ADD HL," + pairNames[p]
		primary[0xc5|p<<4] = "PUSH " + stackNames[p]
		primary[0xc1|p<<4] = "POP " + stackNames[p]
		primary[0x20|p<<3] = fmt.Sprintf("JR %s,r8", condNames[p])
		primary[0xc0|p<<3] = "RET " + condNames[p]
		primary[0xc2|p<<3] = fmt.Sprintf("JP %s,a16", condNames[p])
		primary[0xc4|p<<3] = fmt.Sprintf("CALL %s,a16", condNames[p])
	}

	primary[0x00] = "NOP"
	primary[0x02] = "LD (BC),A"
	primary[0x07] = "RLCA"
	primary[0x08] = "LD (a16),SP"
	primary[0x0a] = "LD A,(BC)"
	primary[0x0f] = "RRCA"
	primary[0x10] = "STOP"
	primary[0x12] = "LD (DE),A"
	primary[0x17] = "RLA"
	primary[0x18] = "JR r8"
	primary[0x1a] = "LD A,(DE)"
	primary[0x1f] = "RRA"
	primary[0x22] = "LD (HL+),A"
	primary[0x27] = "DAA"
	primary[0x2a] = "LD A,(HL+)"
	primary[0x2f] = "CPL"
	primary[0x32] = "LD (HL-),A"
	primary[0x37] = "SCF"
	primary[0x3a] = "LD A,(HL-)"
	primary[0x3f] = "CCF"
	primary[0xc3] = "JP a16"
	primary[0xc9] = "RET"
	primary[0xcb] = "PREFIX CB"
	primary[0xcd] = "CALL a16"
	primary[0xd9] = "RETI"
	primary[0xe0] = "LDH (a8),A"
	primary[0xe2] = "LD (C),A"
	primary[0xe8] = "ADD SP,d8"
	primary[0xe9] = "JP HL"
	primary[0xea] = "LD (a16),A"
	primary[0xf0] = "LDH A,(a8)"
	primary[0xf2] = "LD A,(C)"
	primary[0xf3] = "DI"
	primary[0xf8] = "LD HL,SP+d8"
	primary[0xf9] = "LD SP,HL"
	primary[0xfa] = "LD A,(a16)"
	primary[0xfb] = "EI"

	for i := range extended {
		y := (i >> 3) & 7
		r := regNames[i&7]
		switch i >> 6 {
		case 0:
			extended[i] = fmt.Sprintf("%s %s", shiftNames[y], r)
		case 1:
			extended[i] = fmt.Sprintf("BIT %d,%s", y, r)
		case 2:
			extended[i] = fmt.Sprintf("RES %d,%s", y, r)
		case 3:
			extended[i] = fmt.Sprintf("SET %d,%s", y, r)
		}
	}
}
