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

// RAM is a block of read/write memory. It implements the bus.Device and
// bus.DebuggerBus interfaces.
type RAM struct {
	label string
	data  []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(label string, size int) *RAM {
	return &RAM{
		label: label,
		data:  make([]uint8, size),
	}
}

// Label returns the name given to the RAM on creation.
func (ram *RAM) Label() string {
	return ram.label
}

// Size returns the number of bytes in the RAM.
func (ram *RAM) Size() int {
	return len(ram.data)
}

func (ram *RAM) String() string {
	return hex.Dump(ram.data)
}

// Reset sets every byte to zero.
func (ram *RAM) Reset() {
	clear(ram.data)
}

// Load implements the bus.Device interface.
func (ram *RAM) Load(offset uint16) (uint8, error) {
	if int(offset) >= len(ram.data) {
		return 0, curated.Errorf(errors.MemoryError, curated.Errorf("%s: load out of range $%04x", ram.label, offset))
	}
	return ram.data[offset], nil
}

// Store implements the bus.Device interface.
func (ram *RAM) Store(offset uint16, data uint8) error {
	if int(offset) >= len(ram.data) {
		return curated.Errorf(errors.MemoryError, curated.Errorf("%s: store out of range $%04x", ram.label, offset))
	}
	ram.data[offset] = data
	return nil
}

// Peek implements the bus.DebuggerBus interface.
func (ram *RAM) Peek(offset uint16) (uint8, error) {
	return ram.Load(offset)
}

// Poke implements the bus.DebuggerBus interface.
func (ram *RAM) Poke(offset uint16, value uint8) error {
	return ram.Store(offset, value)
}
