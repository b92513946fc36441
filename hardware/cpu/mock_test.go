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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/ironnes/curated"
	"github.com/jetsetilly/ironnes/errors"
	"github.com/jetsetilly/ironnes/hardware/cpu"
)

// mockMem is a flat 64k address space. the top page can be read but not
// written, which allows the vectors to be set up with vector() and for
// failed writes to be tested.
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) vector(address uint16, value uint16) {
	mem.internal[address] = uint8(value)
	mem.internal[address+1] = uint8(value >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%02x - wanted %02x at address %04x)", mem.internal[address], value, address)
	}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if address&0xff00 == 0xff00 {
		return curated.Errorf(errors.MemoryError, "unwritable address")
	}
	mem.internal[address] = data
	return nil
}

const (
	origin    = uint16(0x0600)
	irqOrigin = uint16(0x0800)
	nmiOrigin = uint16(0x0900)
)

// newCPU returns a reset CPU with the program counter at origin.
func newCPU(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()

	mem := newMockMem()
	mem.vector(0xfffc, origin)
	mem.vector(0xfffe, irqOrigin)
	mem.vector(0xfffa, nmiOrigin)

	mc := cpu.NewCPU(mem)
	err := mc.Reset()
	if err != nil {
		t.Fatal(err)
	}
	return mc, mem
}

// step executes a single instruction and checks the result for consistency.
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	_, err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}
