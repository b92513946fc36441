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

// Package memory implements the NES memory bus. The Memory type owns every
// memory mapped device and routes CPU and PPU addresses to them according
// to the memorymap package.
//
// The devices are the 2KB of internal RAM, the PPU register block, the I/O
// register block, the cartridge program ROM, an optional mapper and, in the
// PPU address space, the pattern tables (CHR), the nametables and the
// palette.
//
// Memory implements the bus.CPUBus, bus.PPUBus and bus.DebuggerBus
// interfaces.
package memory
