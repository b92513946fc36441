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

// Package disassembly produces a linear disassembly of a cartridge's program
// ROM. Every byte in the ROM is assumed to be the start of an instruction,
// beginning at the lowest address at which the ROM is mapped. The interrupt
// vectors at the end of the ROM are not disassembled.
//
// The disassembly does not follow the flow of the program and so data in the
// ROM will be disassembled as though it were code.
package disassembly
