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

// Package bus defines the interfaces through which the different parts of
// the emulation access memory.
//
// The CPUBus is used by the CPU. Reads and writes through the CPUBus may
// have side effects, for example reading the PPU status register clears the
// vblank flag.
//
// The DebuggerBus is for the exclusive use of test harnesses, the
// disassembler and other tools that need to inspect memory without
// disturbing the emulation.
//
// A Device is a single block of memory mapped storage addressed by its local
// offset. The memory package routes CPU and PPU addresses to devices.
//
// The helper functions in this package implement the 16-bit and stack
// access patterns of the 6502 on top of the CPUBus.
package bus
