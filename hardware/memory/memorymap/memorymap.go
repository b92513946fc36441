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

package memorymap

// Area identifies the device that an address maps to.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case IO:
		return "IO"
	case Mapper:
		return "Mapper"
	case ROM:
		return "ROM"
	case CHR:
		return "CHR"
	case Nametables:
		return "Nametables"
	case Palette:
		return "Palette"
	}

	return "undefined"
}

// List of valid Area values. The first group is found in the CPU address
// space and the second group in the PPU address space.
const (
	Undefined Area = iota
	RAM
	PPU
	IO
	Mapper
	ROM

	CHR
	Nametables
	Palette
)

// CPU address space.
const (
	OriginRAM = uint16(0x0000)
	MemtopRAM = uint16(0x1fff)
	SizeRAM   = 0x0800

	OriginPPU = uint16(0x2000)
	MemtopPPU = uint16(0x3fff)
	SizePPU   = 8

	OriginIO = uint16(0x4000)
	MemtopIO = uint16(0x4017)
	SizeIO   = 0x18

	OriginMapper = uint16(0x8000)
	MemtopMapper = uint16(0xbfff)

	MemtopROM = uint16(0xffff)
)

// ROM origins for the two supported cartridge sizes.
const (
	OriginROMSingle = uint16(0xc000)
	OriginROMDouble = uint16(0x8000)
	BankSize        = 0x4000
)

// PPU address space.
const (
	OriginCHR = uint16(0x0000)
	MemtopCHR = uint16(0x1fff)
	SizeCHR   = 0x2000

	OriginNametables = uint16(0x2000)
	MemtopNametables = uint16(0x3eff)
	SizeNametables   = 0x1000

	OriginPalette = uint16(0x3f00)
	MemtopPalette = uint16(0x3fff)
	SizePalette   = 0x20
)

// StackOrigin is the address of the page used by the stack.
const StackOrigin = uint16(0x0100)

// ROMOrigin returns the address at which the program ROM begins for the
// number of 16KB banks. Only one and two banks are supported.
func ROMOrigin(banks int) (uint16, bool) {
	switch banks {
	case 1:
		return OriginROMSingle, true
	case 2:
		return OriginROMDouble, true
	}
	return 0, false
}

// MapCPU returns the area and the offset within that area of a CPU address.
// The romOrigin argument should be a value returned by ROMOrigin().
//
// Addresses that do not map to any area return Undefined and the unchanged
// address.
func MapCPU(address uint16, romOrigin uint16) (uint16, Area) {
	// note that the order of these filters is important

	if address >= romOrigin {
		return address - romOrigin, ROM
	}

	if address >= OriginMapper && address <= MemtopMapper {
		return address - OriginMapper, Mapper
	}

	if address <= MemtopRAM {
		return address % SizeRAM, RAM
	}

	if address <= MemtopPPU {
		return address % SizePPU, PPU
	}

	if address >= OriginIO && address <= MemtopIO {
		return address - OriginIO, IO
	}

	return address, Undefined
}

// MapPPU returns the area and the offset within that area of a PPU address.
func MapPPU(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopCHR:
		return address, CHR
	case address <= MemtopNametables:
		return address & 0x0fff, Nametables
	case address <= MemtopPalette:
		return address & 0x001f, Palette
	}
	return address, Undefined
}

// IsRAM returns true if the CPU address is in the internal RAM or one of its
// mirrors.
func IsRAM(address uint16) bool {
	return address <= MemtopRAM
}
