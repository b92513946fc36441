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

// CPUBus defines the operations for the memory system when accessed from
// the CPU.
type CPUBus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// PPUBus defines the operations for the memory system when accessed from
// the PPU. The PPU has its own 14-bit address space.
type PPUBus interface {
	PPURead(address uint16) (uint8, error)
	PPUWrite(address uint16, data uint8) error
}

// DebuggerBus defines the meta-operations for all memory areas. Peek and
// Poke never have side effects and are allowed to write to memory that is
// read-only to the CPU.
type DebuggerBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// Device is a memory mapped component addressed by offset rather than by
// address. Devices with side effects on Load() or Store() should also
// implement the DebuggerBus interface so that they can be inspected
// without triggering them.
type Device interface {
	Load(offset uint16) (uint8, error)
	Store(offset uint16, data uint8) error
}
