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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/ironnes/curated"
	"github.com/jetsetilly/ironnes/errors"
	"github.com/jetsetilly/ironnes/hardware/memory"
	"github.com/jetsetilly/ironnes/hardware/memory/addresses"
	"github.com/jetsetilly/ironnes/hardware/ppu/registers"
	"github.com/jetsetilly/ironnes/test"
)

func newRegisters(t *testing.T) (*registers.Registers, *memory.Memory) {
	t.Helper()
	regs := registers.NewRegisters()
	mem, err := memory.NewMemory(make([]uint8, 0x4000), nil, regs)
	test.DemandSuccess(t, err)
	regs.Plumb(mem)
	return regs, mem
}

func store(t *testing.T, regs *registers.Registers, reg addresses.PPURegister, data uint8) {
	t.Helper()
	test.DemandSuccess(t, regs.Store(uint16(reg), data), reg)
}

func load(t *testing.T, regs *registers.Registers, reg addresses.PPURegister) uint8 {
	t.Helper()
	v, err := regs.Load(uint16(reg))
	test.DemandSuccess(t, err, reg)
	return v
}

func TestStatusRead(t *testing.T) {
	regs, _ := newRegisters(t)

	regs.SetVBlank(true)
	test.ExpectSuccess(t, regs.VBlank())

	// the low bits of the status register come from the latch
	store(t, regs, addresses.PPUMASK, 0x1e)
	test.ExpectEquality(t, load(t, regs, addresses.PPUSTATUS), 0x9e)

	// reading the status register clears vblank
	test.ExpectFailure(t, regs.VBlank())
	test.ExpectEquality(t, load(t, regs, addresses.PPUSTATUS), 0x1e)

	// reading also resets the write toggle
	store(t, regs, addresses.PPUADDR, 0x21)
	load(t, regs, addresses.PPUSTATUS)
	store(t, regs, addresses.PPUADDR, 0x23)
	store(t, regs, addresses.PPUADDR, 0x05)
	test.ExpectEquality(t, regs.Address(), 0x2305)

	// the status register cannot be written to
	err := regs.Store(uint16(addresses.PPUSTATUS), 0xff)
	test.ExpectSuccess(t, curated.Is(err, errors.MemoryError))
}

func TestControlBias(t *testing.T) {
	regs, _ := newRegisters(t)

	store(t, regs, addresses.PPUCTRL, 0xff)
	v, err := regs.Peek(uint16(addresses.PPUCTRL))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xbf)
	test.ExpectSuccess(t, regs.NMIEnabled())

	// write-only registers read back the latch
	test.ExpectEquality(t, load(t, regs, addresses.PPUCTRL), 0xff)

	// the nametable select bits are copied to the temporary address
	tmp, _ := regs.Scroll()
	test.ExpectEquality(t, tmp, 0x0c00)
}

func TestDataPort(t *testing.T) {
	regs, mem := newRegisters(t)

	store(t, regs, addresses.PPUADDR, 0x20)
	store(t, regs, addresses.PPUADDR, 0x00)
	store(t, regs, addresses.PPUDATA, 0x11)
	store(t, regs, addresses.PPUDATA, 0x22)
	test.ExpectEquality(t, regs.Address(), 0x2002)

	v, _ := mem.PPURead(0x2000)
	test.ExpectEquality(t, v, 0x11)
	v, _ = mem.PPURead(0x2001)
	test.ExpectEquality(t, v, 0x22)

	// reads are buffered. the first read returns the stale buffer
	store(t, regs, addresses.PPUADDR, 0x20)
	store(t, regs, addresses.PPUADDR, 0x00)
	test.ExpectEquality(t, load(t, regs, addresses.PPUDATA), 0x00)
	test.ExpectEquality(t, load(t, regs, addresses.PPUDATA), 0x11)
	test.ExpectEquality(t, load(t, regs, addresses.PPUDATA), 0x22)

	// increment by 32 when bit 2 of PPUCTRL is set
	store(t, regs, addresses.PPUCTRL, 0x04)
	store(t, regs, addresses.PPUADDR, 0x20)
	store(t, regs, addresses.PPUADDR, 0x00)
	store(t, regs, addresses.PPUDATA, 0x33)
	test.ExpectEquality(t, regs.Address(), 0x2020)
	store(t, regs, addresses.PPUDATA, 0x44)
	test.ExpectEquality(t, regs.Address(), 0x2040)
	v, _ = mem.PPURead(0x2020)
	test.ExpectEquality(t, v, 0x44)
}

func TestPaletteRead(t *testing.T) {
	regs, mem := newRegisters(t)
	test.DemandSuccess(t, mem.PPUWrite(0x3f00, 0x0f))
	test.DemandSuccess(t, mem.PPUWrite(0x2f00, 0x55))

	// palette reads are immediate but the buffer is filled with the
	// nametable underneath
	store(t, regs, addresses.PPUADDR, 0x3f)
	store(t, regs, addresses.PPUADDR, 0x00)
	test.ExpectEquality(t, load(t, regs, addresses.PPUDATA), 0x0f)
	v, _ := regs.Peek(uint16(addresses.PPUDATA))
	test.ExpectEquality(t, v, 0x55)
}

func TestScroll(t *testing.T) {
	regs, _ := newRegisters(t)

	store(t, regs, addresses.PPUSCROLL, 0x7d)
	store(t, regs, addresses.PPUSCROLL, 0x5e)
	tmp, fine := regs.Scroll()
	test.ExpectEquality(t, fine, 0x05)
	test.ExpectEquality(t, tmp, 0x616f)

	v, _ := regs.Peek(uint16(addresses.PPUSCROLL))
	test.ExpectEquality(t, v, 0x5e)
}

func TestOAM(t *testing.T) {
	regs, _ := newRegisters(t)

	store(t, regs, addresses.OAMADDR, 0xfe)
	store(t, regs, addresses.OAMDATA, 0x01)
	store(t, regs, addresses.OAMDATA, 0x02)
	store(t, regs, addresses.OAMDATA, 0x03)

	oam := regs.OAM()
	test.ExpectEquality(t, oam[0xfe], 0x01)
	test.ExpectEquality(t, oam[0xff], 0x02)
	test.ExpectEquality(t, oam[0x00], 0x03)

	// reads do not increment the address
	store(t, regs, addresses.OAMADDR, 0xff)
	test.ExpectEquality(t, load(t, regs, addresses.OAMDATA), 0x02)
	test.ExpectEquality(t, load(t, regs, addresses.OAMDATA), 0x02)
}

func TestRange(t *testing.T) {
	regs, _ := newRegisters(t)
	_, err := regs.Load(8)
	test.ExpectSuccess(t, curated.Is(err, errors.MemoryError))
	err = regs.Store(8, 0)
	test.ExpectSuccess(t, curated.Is(err, errors.MemoryError))

	// PPUDATA needs somewhere to write to
	unplumbed := registers.NewRegisters()
	err = unplumbed.Store(uint16(addresses.PPUDATA), 0)
	test.ExpectSuccess(t, curated.Is(err, errors.MemoryError))
}

func TestReset(t *testing.T) {
	regs, _ := newRegisters(t)
	store(t, regs, addresses.PPUCTRL, 0x80)
	store(t, regs, addresses.PPUADDR, 0x21)
	regs.SetVBlank(true)

	regs.Reset()
	test.ExpectFailure(t, regs.NMIEnabled())

	// vblank survives a reset
	test.ExpectSuccess(t, regs.VBlank())

	// the write toggle is cleared
	store(t, regs, addresses.PPUADDR, 0x23)
	store(t, regs, addresses.PPUADDR, 0x45)
	test.ExpectEquality(t, regs.Address(), 0x2345)
}
