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
	"encoding/hex"

	"github.com/jetsetilly/ironnes/curated"
	"github.com/jetsetilly/ironnes/errors"
)

// ROM is a block of memory that cannot be written to by the emulated
// machine. It can be changed with Poke().
type ROM struct {
	label string
	data  []uint8
}

// NewROM is the preferred method of initialisation for the ROM type. The
// data is copied.
func NewROM(label string, data []uint8) *ROM {
	rom := &ROM{
		label: label,
		data:  make([]uint8, len(data)),
	}
	copy(rom.data, data)
	return rom
}

// Size returns the number of bytes in the ROM.
func (rom *ROM) Size() int {
	return len(rom.data)
}

func (rom *ROM) String() string {
	return hex.Dump(rom.data)
}

// Load implements the bus.Device interface.
func (rom *ROM) Load(offset uint16) (uint8, error) {
	if int(offset) >= len(rom.data) {
		return 0, curated.Errorf(errors.MemoryError, curated.Errorf("%s: load out of range $%04x", rom.label, offset))
	}
	return rom.data[offset], nil
}

// Store implements the bus.Device interface. It always fails.
func (rom *ROM) Store(offset uint16, _ uint8) error {
	return curated.Errorf(errors.MemoryError, curated.Errorf("%s: store to read-only memory $%04x", rom.label, offset))
}

// Peek implements the bus.DebuggerBus interface.
func (rom *ROM) Peek(offset uint16) (uint8, error) {
	return rom.Load(offset)
}

// Poke implements the bus.DebuggerBus interface.
func (rom *ROM) Poke(offset uint16, value uint8) error {
	if int(offset) >= len(rom.data) {
		return curated.Errorf(errors.MemoryError, curated.Errorf("%s: store out of range $%04x", rom.label, offset))
	}
	rom.data[offset] = value
	return nil
}
