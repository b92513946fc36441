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

// Package registers implements the eight PPU registers mapped into the CPU
// address space between 0x2000 and 0x2007.
//
// Some registers have side effects when read or written:
//
//	PPUSTATUS read clears the vblank flag and the write toggle
//	PPUSCROLL and PPUADDR are written twice, alternating on the write toggle
//	PPUDATA accesses the PPU address space and increments the address by 1
//	or 32, depending on bit 2 of PPUCTRL. reads are buffered except for the
//	palette
//	OAMDATA writes increment OAMADDR
//
// Reading a write-only register returns the value last written to any
// register (the latch). The same latch supplies the low five bits of
// PPUSTATUS.
package registers
