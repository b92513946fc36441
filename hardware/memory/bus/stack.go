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

import (
	"github.com/jetsetilly/ironnes/curated"
	"github.com/jetsetilly/ironnes/errors"
	"github.com/jetsetilly/ironnes/hardware/memory/memorymap"
)

// stack pointer values at which the stack is full or empty. the real CPU
// would wrap the stack pointer but the emulation treats this as an error.
const (
	stackFull  = uint16(0x00)
	stackEmpty = uint16(0xff)
)

// Push writes the value to the top of the stack and decrements the stack
// pointer.
func Push(mem CPUBus, sp *uint16, data uint8) error {
	if *sp == stackFull {
		return curated.Errorf(errors.MemoryError, "stack overflow")
	}
	err := mem.Write(memorymap.StackOrigin+*sp, data)
	if err != nil {
		return err
	}
	*sp--
	return nil
}

// Pop increments the stack pointer and reads the value at the top of the
// stack.
func Pop(mem CPUBus, sp *uint16) (uint8, error) {
	if *sp == stackEmpty {
		return 0, curated.Errorf(errors.MemoryError, "stack underflow")
	}
	*sp++
	return mem.Read(memorymap.StackOrigin + *sp)
}

// PushAddress pushes the high byte and then the low byte of the address.
func PushAddress(mem CPUBus, sp *uint16, address uint16) error {
	err := Push(mem, sp, uint8(address>>8))
	if err != nil {
		return err
	}
	return Push(mem, sp, uint8(address))
}

// PopAddress is the inverse of PushAddress().
func PopAddress(mem CPUBus, sp *uint16) (uint16, error) {
	lo, err := Pop(mem, sp)
	if err != nil {
		return 0, err
	}
	hi, err := Pop(mem, sp)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
