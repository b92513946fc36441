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

package bus

import "github.com/jetsetilly/ironnes/hardware/memory/memorymap"

// the address of the high byte of a 16-bit value. when the low byte is the
// last byte of a page in RAM the high byte is read from the start of the
// same page and not from the start of the next page.
func highByte(address uint16) uint16 {
	if memorymap.IsRAM(address) && address&0x00ff == 0x00ff {
		return address & 0xff00
	}
	return address + 1
}

// Read16 reads a little-endian 16-bit value.
func Read16(mem CPUBus, address uint16) (uint16, error) {
	lo, err := mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mem.Read(highByte(address))
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Write16 writes a little-endian 16-bit value. The page wrapping of the high
// byte is the same as for Read16().
func Write16(mem CPUBus, address uint16, data uint16) error {
	err := mem.Write(address, uint8(data))
	if err != nil {
		return err
	}
	return mem.Write(highByte(address), uint8(data>>8))
}
