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

package memory

import (
	"strings"

	"github.com/jetsetilly/ironnes/curated"
	"github.com/jetsetilly/ironnes/errors"
	"github.com/jetsetilly/ironnes/hardware/memory/bus"
	"github.com/jetsetilly/ironnes/hardware/memory/memorymap"
)

// Memory is the NES memory bus.
type Memory struct {
	// CPU address space
	RAM    *RAM
	PPU    bus.Device
	IO     *RAM
	ROM    *ROM
	Mapper bus.Device

	// PPU address space. CHR is a *ROM if the cartridge has CHR data and a
	// *RAM otherwise
	CHR        bus.Device
	Nametables *RAM
	Palette    *RAM

	romOrigin uint16
}

// NewMemory creates the memory bus for a cartridge with the program and
// character data. The prg data must be one or two 16KB banks. An empty chr
// slice indicates that the cartridge uses CHR RAM.
//
// The ppu argument is the device that responds to the PPU register
// addresses.
func NewMemory(prg []uint8, chr []uint8, ppu bus.Device) (*Memory, error) {
	banks := len(prg) / memorymap.BankSize
	romOrigin, ok := memorymap.ROMOrigin(banks)
	if !ok || len(prg)%memorymap.BankSize != 0 {
		return nil, curated.Errorf(errors.CartridgeError, curated.Errorf("unsupported program ROM size (%d bytes)", len(prg)))
	}

	mem := &Memory{
		RAM:        NewRAM("RAM", memorymap.SizeRAM),
		PPU:        ppu,
		IO:         NewRAM("IO", memorymap.SizeIO),
		ROM:        NewROM("ROM", prg),
		Nametables: NewRAM("Nametables", memorymap.SizeNametables),
		Palette:    NewRAM("Palette", memorymap.SizePalette),
		romOrigin:  romOrigin,
	}

	if len(chr) == 0 {
		mem.CHR = NewRAM("CHR", memorymap.SizeCHR)
	} else {
		mem.CHR = NewROM("CHR", chr)
	}

	return mem, nil
}

// ROMOrigin returns the address at which the program ROM begins.
func (mem *Memory) ROMOrigin() uint16 {
	return mem.romOrigin
}

// InsertMapper attaches a device to the mapper area. Only cartridges with a
// single ROM bank have a mapper area.
func (mem *Memory) InsertMapper(mapper bus.Device) {
	mem.Mapper = mapper
}

func (mem *Memory) String() string {
	return strings.TrimSpace(memorymap.Summary(mem.romOrigin))
}

// cpuDevice returns the device and the offset for the CPU address.
func (mem *Memory) cpuDevice(address uint16) (bus.Device, uint16, error) {
	offset, area := memorymap.MapCPU(address, mem.romOrigin)

	switch area {
	case memorymap.RAM:
		return mem.RAM, offset, nil
	case memorymap.PPU:
		if mem.PPU == nil {
			return nil, 0, curated.Errorf(errors.MemoryError, curated.Errorf("no PPU inserted ($%04x)", address))
		}
		return mem.PPU, offset, nil
	case memorymap.IO:
		return mem.IO, offset, nil
	case memorymap.ROM:
		return mem.ROM, offset, nil
	case memorymap.Mapper:
		if mem.Mapper == nil {
			return nil, 0, curated.Errorf(errors.MemoryError, curated.Errorf("no mapper inserted ($%04x)", address))
		}
		return mem.Mapper, offset, nil
	}

	return nil, 0, curated.Errorf(errors.MemoryError, curated.Errorf("memory access to unmapped cpu address $%04x", address))
}

// ppuDevice returns the device and the offset for the PPU address.
func (mem *Memory) ppuDevice(address uint16) (bus.Device, uint16, error) {
	offset, area := memorymap.MapPPU(address)

	switch area {
	case memorymap.CHR:
		return mem.CHR, offset, nil
	case memorymap.Nametables:
		return mem.Nametables, offset, nil
	case memorymap.Palette:
		return mem.Palette, offset, nil
	}

	return nil, 0, curated.Errorf(errors.MemoryError, curated.Errorf("memory access to unmapped ppu address $%04x", address))
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	dev, offset, err := mem.cpuDevice(address)
	if err != nil {
		return 0, err
	}
	return dev.Load(offset)
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	dev, offset, err := mem.cpuDevice(address)
	if err != nil {
		return err
	}
	return dev.Store(offset, data)
}

// Peek implements the bus.DebuggerBus interface. Devices that do not
// implement the DebuggerBus interface are read normally.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	dev, offset, err := mem.cpuDevice(address)
	if err != nil {
		return 0, err
	}
	if dbg, ok := dev.(bus.DebuggerBus); ok {
		return dbg.Peek(offset)
	}
	return dev.Load(offset)
}

// Poke implements the bus.DebuggerBus interface. Devices that do not
// implement the DebuggerBus interface are written normally.
func (mem *Memory) Poke(address uint16, value uint8) error {
	dev, offset, err := mem.cpuDevice(address)
	if err != nil {
		return err
	}
	if dbg, ok := dev.(bus.DebuggerBus); ok {
		return dbg.Poke(offset, value)
	}
	return dev.Store(offset, value)
}

// PPURead implements the bus.PPUBus interface.
func (mem *Memory) PPURead(address uint16) (uint8, error) {
	dev, offset, err := mem.ppuDevice(address)
	if err != nil {
		return 0, err
	}
	return dev.Load(offset)
}

// PPUWrite implements the bus.PPUBus interface.
func (mem *Memory) PPUWrite(address uint16, data uint8) error {
	dev, offset, err := mem.ppuDevice(address)
	if err != nil {
		return err
	}
	return dev.Store(offset, data)
}
