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

// Package cartridge parses NES cartridge images in the iNES format.
//
// An iNES file begins with a 16 byte header, optionally followed by a 512
// byte trainer, followed by the program ROM banks (16KB each) and the
// character ROM banks (8KB each).
//
//	0-3   "NES" followed by MS-DOS end-of-file ($1a)
//	4     number of 16KB program ROM banks
//	5     number of 8KB character ROM banks (zero means CHR RAM)
//	6     bit 0: vertical mirroring, bit 1: battery, bit 2: trainer,
//	      bit 3: four screen VRAM, bits 4-7: low nibble of mapper
//	7     bits 1-3: reserved, bits 4-7: high nibble of mapper
//	8     number of 8KB RAM banks
//	9     bit 0: PAL, bits 1-7: reserved
//
// Only cartridges without a mapper (NROM) can be used by the emulator. Other
// mapper types are recognised and reported by name in the error.
package cartridge
