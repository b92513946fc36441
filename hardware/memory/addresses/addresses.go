// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package addresses

// Interrupt vectors. Each vector is a little-endian 16-bit address.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// PPURegister is the offset of a PPU register from 0x2000.
type PPURegister int

// List of valid PPURegister values.
const (
	PPUCTRL PPURegister = iota
	PPUMASK
	PPUSTATUS
	OAMADDR
	OAMDATA
	PPUSCROLL
	PPUADDR
	PPUDATA
)

var ppuRegisterNames = [...]string{
	PPUCTRL:   "PPUCTRL",
	PPUMASK:   "PPUMASK",
	PPUSTATUS: "PPUSTATUS",
	OAMADDR:   "OAMADDR",
	OAMDATA:   "OAMDATA",
	PPUSCROLL: "PPUSCROLL",
	PPUADDR:   "PPUADDR",
	PPUDATA:   "PPUDATA",
}

func (reg PPURegister) String() string {
	if reg < PPUCTRL || reg > PPUDATA {
		return "unknown PPU register"
	}
	return ppuRegisterNames[reg]
}

// IORegisters names the APU and I/O registers found between 0x4000 and
// 0x4017. The key is the offset from 0x4000.
var IORegisters = map[uint16]string{
	0x00: "SQ1_VOL",
	0x01: "SQ1_SWEEP",
	0x02: "SQ1_LO",
	0x03: "SQ1_HI",
	0x04: "SQ2_VOL",
	0x05: "SQ2_SWEEP",
	0x06: "SQ2_LO",
	0x07: "SQ2_HI",
	0x08: "TRI_LINEAR",
	0x0a: "TRI_LO",
	0x0b: "TRI_HI",
	0x0c: "NOISE_VOL",
	0x0e: "NOISE_LO",
	0x0f: "NOISE_HI",
	0x10: "DMC_FREQ",
	0x11: "DMC_RAW",
	0x12: "DMC_START",
	0x13: "DMC_LEN",
	0x14: "OAMDMA",
	0x15: "SND_CHN",
	0x16: "JOY1",
	0x17: "JOY2",
}

// Symbol returns the canonical name of the register at the CPU address.
// Mirrors of the PPU registers resolve to the same name.
func Symbol(address uint16) (string, bool) {
	switch {
	case address >= 0x2000 && address <= 0x3fff:
		return PPURegister(address % 8).String(), true
	case address >= 0x4000 && address <= 0x4017:
		s, ok := IORegisters[address-0x4000]
		return s, ok
	}
	return "", false
}
