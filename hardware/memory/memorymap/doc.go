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

// Package memorymap describes the CPU and PPU address spaces of the NES.
//
// MapCPU() and MapPPU() translate an address into the Area it belongs to and
// the offset of the address within that area, taking mirroring into
// account. For example, the 2KB of internal RAM is mirrored four times
// between 0x0000 and 0x1fff and the eight PPU registers are mirrored every
// eight bytes between 0x2000 and 0x3fff.
//
// The location of the program ROM depends on the number of 16KB banks in the
// cartridge. A single bank is placed at 0xc000 and the area between 0x8000
// and 0xbfff is given over to the mapper. Two banks fill 0x8000 to 0xffff.
package memorymap
