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

package ppu

import (
	"github.com/jetsetilly/ironnes/hardware/memory/bus"
	"github.com/jetsetilly/ironnes/hardware/ppu/registers"
)

// PPU is the picture processing unit as seen by the rest of the NES. It owns
// the register block that is mapped into the CPU address space.
type PPU struct {
	Registers *registers.Registers
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU() *PPU {
	return &PPU{
		Registers: registers.NewRegisters(),
	}
}

// Plumb connects the PPU to its own address space.
func (ppu *PPU) Plumb(vram bus.PPUBus) {
	ppu.Registers.Plumb(vram)
}

// Reset puts the PPU into its reset state.
func (ppu *PPU) Reset() {
	ppu.Registers.Reset()
}

// StartVBlank sets the vblank flag in the status register. Returns true if
// the PPU is configured to raise an NMI at the start of vblank.
func (ppu *PPU) StartVBlank() bool {
	ppu.Registers.SetVBlank(true)
	return ppu.Registers.NMIEnabled()
}

// EndVBlank clears the vblank flag in the status register.
func (ppu *PPU) EndVBlank() {
	ppu.Registers.SetVBlank(false)
}
