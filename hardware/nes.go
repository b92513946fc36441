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

package hardware

import (
	"fmt"
	"io"

	"github.com/jetsetilly/ironnes/curated"
	"github.com/jetsetilly/ironnes/hardware/cpu"
	"github.com/jetsetilly/ironnes/hardware/cpu/registers"
	"github.com/jetsetilly/ironnes/hardware/memory"
	"github.com/jetsetilly/ironnes/hardware/memory/cartridge"
	"github.com/jetsetilly/ironnes/hardware/ppu"
	"github.com/jetsetilly/ironnes/logger"
)

// NES struct is the main container for the emulated components of the NES.
type NES struct {
	CPU *cpu.CPU
	Mem *memory.Memory
	PPU *ppu.PPU

	// the cartridge is not part of the NES but is attached to it
	Cart *cartridge.Cartridge

	// trace output. nil if tracing is disabled
	trace io.Writer

	timing frameTiming
}

// NewNES creates a new NES and everything associated with the hardware. The
// NES must be Reset() before it is run.
func NewNES(cart *cartridge.Cartridge) (*NES, error) {
	var err error

	nes := &NES{
		Cart:   cart,
		PPU:    ppu.NewPPU(),
		timing: newFrameTiming(cart.Region),
	}

	nes.Mem, err = memory.NewMemory(cart.PRG, cart.CHR, nes.PPU.Registers)
	if err != nil {
		return nil, curated.Errorf("nes: %v", err)
	}
	nes.PPU.Plumb(nes.Mem)

	nes.CPU = cpu.NewCPU(nes.Mem)

	logger.Logf(logger.Allow, "nes", "%v", cart)

	return nes, nil
}

func (nes *NES) String() string {
	return fmt.Sprintf("%s\n%s", nes.CPU, nes.PPU.Registers)
}

// Reset emulates the reset line of the console. The PPU registers and the
// CPU are reset and the program counter is loaded from the reset vector. The
// contents of memory are not changed.
func (nes *NES) Reset() error {
	nes.timing.reset()
	nes.PPU.Reset()
	err := nes.CPU.Reset()
	if err != nil {
		return curated.Errorf("nes: %v", err)
	}
	return nil
}

// SetTrace sets the writer that receives a trace line before every
// instruction. A nil writer disables tracing.
func (nes *NES) SetTrace(w io.Writer) {
	nes.trace = w
}

// Peek returns the value at the CPU address without side effects.
func (nes *NES) Peek(address uint16) (uint8, error) {
	return nes.Mem.Peek(address)
}

// JSR starts execution at the address. See cpu.CPU.JSR() for details.
func (nes *NES) JSR(address uint16) {
	nes.CPU.JSR(address)
}

// Registers returns a copy of the CPU registers.
func (nes *NES) Registers() registers.Registers {
	return nes.CPU.Regs
}

// Cycles returns the number of CPU cycles since the last reset.
func (nes *NES) Cycles() int {
	return nes.CPU.Cycles()
}

// NMI raises a non-maskable interrupt.
func (nes *NES) NMI() error {
	err := nes.CPU.Interrupt(cpu.NMI)
	if err != nil {
		return curated.Errorf("nes: %v", err)
	}
	return nil
}

// IRQ raises an interrupt request. The request is ignored if interrupts are
// disabled.
func (nes *NES) IRQ() error {
	err := nes.CPU.Interrupt(cpu.IRQ)
	if err != nil {
		return curated.Errorf("nes: %v", err)
	}
	return nil
}

// VBlank sets the vertical blank flag in the PPU and raises an NMI if the
// program has enabled it.
func (nes *NES) VBlank() error {
	if nes.PPU.StartVBlank() {
		return nes.NMI()
	}
	return nil
}
