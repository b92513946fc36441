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

package registers

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/ironnes/curated"
	"github.com/jetsetilly/ironnes/errors"
	"github.com/jetsetilly/ironnes/hardware/cpu/registers/rbits"
	"github.com/jetsetilly/ironnes/hardware/memory/addresses"
	"github.com/jetsetilly/ironnes/hardware/memory/bus"
)

// bits of note in the PPUCTRL and PPUSTATUS registers.
const (
	ctrlIncrement  = 2
	ctrlMasterMode = 6
	ctrlNMI        = 7

	statusVBlank = 7
)

// the bits of PPUSTATUS that are driven by the PPU. the remaining bits come
// from the latch
const statusMask = uint8(0xe0)

// Registers is the PPU register block. It implements the bus.Device and
// bus.DebuggerBus interfaces.
type Registers struct {
	ctrl    rbits.BiasedBitSet
	mask    rbits.BiasedBitSet
	status  rbits.BiasedBitSet
	oamAddr uint8
	oam     [256]uint8

	// the most recent values written to PPUSCROLL and PPUADDR
	scroll rbits.BiasedBitSet
	addr   rbits.BiasedBitSet

	// internal registers. v is the current VRAM address and t the temporary
	// VRAM address. both are 15 bits. w is the write toggle shared by
	// PPUSCROLL and PPUADDR
	v     uint16
	t     uint16
	fineX uint8
	w     bool

	readBuffer uint8
	latch      uint8

	vram bus.PPUBus
}

// NewRegisters is the preferred method of initialisation for the Registers
// type.
func NewRegisters() *Registers {
	r := &Registers{
		ctrl:   rbits.NewBiasedBitSet(),
		mask:   rbits.NewBiasedBitSet(),
		status: rbits.NewBiasedBitSet(),
		scroll: rbits.NewBiasedBitSet(),
		addr:   rbits.NewBiasedBitSet(),
	}

	// the EXT pins are grounded on the NES so master/slave select is always
	// zero
	r.ctrl.Bias(ctrlMasterMode, false)

	return r
}

// Plumb connects the registers to the PPU address space, which is accessed
// through PPUDATA.
func (r *Registers) Plumb(vram bus.PPUBus) {
	r.vram = vram
}

// Reset puts the registers into the state they are in after the reset line
// has been asserted. PPUSTATUS and OAMADDR are unaffected.
func (r *Registers) Reset() {
	r.ctrl.Store(0)
	r.mask.Store(0)
	r.scroll.Store(0)
	r.addr.Store(0)
	r.t = 0
	r.fineX = 0
	r.w = false
	r.readBuffer = 0
}

func (r *Registers) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "%s=%02x %s=%02x %s=%02x %s=%02x ",
		addresses.PPUCTRL, r.ctrl.Value(),
		addresses.PPUMASK, r.mask.Value(),
		addresses.PPUSTATUS, r.status.Value(),
		addresses.OAMADDR, r.oamAddr)
	fmt.Fprintf(&s, "v=%04x t=%04x x=%d w=%v", r.v, r.t, r.fineX, r.w)
	return s.String()
}

// SetVBlank sets or clears the vblank flag in PPUSTATUS.
func (r *Registers) SetVBlank(v bool) {
	r.status.Set(statusVBlank, v)
}

// VBlank returns the state of the vblank flag without the side effects of
// reading PPUSTATUS.
func (r *Registers) VBlank() bool {
	return r.status.Get(statusVBlank)
}

// NMIEnabled returns true if an NMI should be raised at the start of vblank.
func (r *Registers) NMIEnabled() bool {
	return r.ctrl.Get(ctrlNMI)
}

// Address returns the current VRAM address.
func (r *Registers) Address() uint16 {
	return r.v
}

// Scroll returns the temporary VRAM address and the fine X scroll.
func (r *Registers) Scroll() (uint16, uint8) {
	return r.t, r.fineX
}

// OAM returns a copy of the object attribute memory.
func (r *Registers) OAM() [256]uint8 {
	return r.oam
}

func (r *Registers) increment() {
	if r.ctrl.Get(ctrlIncrement) {
		r.v += 32
	} else {
		r.v++
	}
	r.v &= 0x7fff
}

func outOfRange(offset uint16, load bool) error {
	if load {
		return curated.Errorf(errors.MemoryError, curated.Errorf("PPU registers: load out of range $%04x", offset))
	}
	return curated.Errorf(errors.MemoryError, curated.Errorf("PPU registers: store out of range $%04x", offset))
}

func (r *Registers) notPlumbed() error {
	return curated.Errorf(errors.MemoryError, "PPU registers: no VRAM connected")
}

// Load implements the bus.Device interface.
func (r *Registers) Load(offset uint16) (uint8, error) {
	switch addresses.PPURegister(offset) {
	case addresses.PPUSTATUS:
		v := (r.status.Value() & statusMask) | (r.latch &^ statusMask)
		r.status.Set(statusVBlank, false)
		r.w = false
		r.latch = v
		return v, nil

	case addresses.OAMDATA:
		r.latch = r.oam[r.oamAddr]
		return r.latch, nil

	case addresses.PPUDATA:
		if r.vram == nil {
			return 0, r.notPlumbed()
		}

		address := r.v & 0x3fff

		var v uint8
		if address < 0x3f00 {
			d, err := r.vram.PPURead(address)
			if err != nil {
				return 0, err
			}
			v = r.readBuffer
			r.readBuffer = d
		} else {
			// palette reads are not buffered. the buffer is filled with the
			// nametable data underneath the palette
			d, err := r.vram.PPURead(address)
			if err != nil {
				return 0, err
			}
			v = d
			d, err = r.vram.PPURead(address - 0x1000)
			if err != nil {
				return 0, err
			}
			r.readBuffer = d
		}

		r.increment()
		r.latch = v
		return v, nil

	case addresses.PPUCTRL, addresses.PPUMASK, addresses.OAMADDR, addresses.PPUSCROLL, addresses.PPUADDR:
		// write-only registers
		return r.latch, nil
	}

	return 0, outOfRange(offset, true)
}

// Store implements the bus.Device interface.
func (r *Registers) Store(offset uint16, data uint8) error {
	if offset > uint16(addresses.PPUDATA) {
		return outOfRange(offset, false)
	}

	r.latch = data

	switch addresses.PPURegister(offset) {
	case addresses.PPUCTRL:
		r.ctrl.Store(data)
		r.t = (r.t & 0xf3ff) | (uint16(data&0x03) << 10)

	case addresses.PPUMASK:
		r.mask.Store(data)

	case addresses.PPUSTATUS:
		return curated.Errorf(errors.MemoryError, curated.Errorf("PPU registers: %s is read-only", addresses.PPUSTATUS))

	case addresses.OAMADDR:
		r.oamAddr = data

	case addresses.OAMDATA:
		r.oam[r.oamAddr] = data
		r.oamAddr++

	case addresses.PPUSCROLL:
		r.scroll.Store(data)
		if !r.w {
			r.t = (r.t & 0xffe0) | uint16(data>>3)
			r.fineX = data & 0x07
		} else {
			r.t = (r.t & 0x8c1f) | (uint16(data&0x07) << 12) | (uint16(data&0xf8) << 2)
		}
		r.w = !r.w

	case addresses.PPUADDR:
		r.addr.Store(data)
		if !r.w {
			r.t = (r.t & 0x00ff) | (uint16(data&0x3f) << 8)
		} else {
			r.t = (r.t & 0xff00) | uint16(data)
			r.v = r.t
		}
		r.w = !r.w

	case addresses.PPUDATA:
		if r.vram == nil {
			return r.notPlumbed()
		}
		err := r.vram.PPUWrite(r.v&0x3fff, data)
		if err != nil {
			return err
		}
		r.increment()
	}

	return nil
}

// Peek implements the bus.DebuggerBus interface. It returns the value held
// by the register without any side effects. For PPUSCROLL and PPUADDR this
// is the most recently written value. For PPUDATA it is the read buffer.
func (r *Registers) Peek(offset uint16) (uint8, error) {
	switch addresses.PPURegister(offset) {
	case addresses.PPUCTRL:
		return r.ctrl.Value(), nil
	case addresses.PPUMASK:
		return r.mask.Value(), nil
	case addresses.PPUSTATUS:
		return r.status.Value(), nil
	case addresses.OAMADDR:
		return r.oamAddr, nil
	case addresses.OAMDATA:
		return r.oam[r.oamAddr], nil
	case addresses.PPUSCROLL:
		return r.scroll.Value(), nil
	case addresses.PPUADDR:
		return r.addr.Value(), nil
	case addresses.PPUDATA:
		return r.readBuffer, nil
	}
	return 0, outOfRange(offset, true)
}

// Poke implements the bus.DebuggerBus interface. It changes the value held
// by the register without any side effects. Biased bits are still
// respected.
func (r *Registers) Poke(offset uint16, value uint8) error {
	switch addresses.PPURegister(offset) {
	case addresses.PPUCTRL:
		r.ctrl.Store(value)
	case addresses.PPUMASK:
		r.mask.Store(value)
	case addresses.PPUSTATUS:
		r.status.Store(value)
	case addresses.OAMADDR:
		r.oamAddr = value
	case addresses.OAMDATA:
		r.oam[r.oamAddr] = value
	case addresses.PPUSCROLL:
		r.scroll.Store(value)
	case addresses.PPUADDR:
		r.addr.Store(value)
	case addresses.PPUDATA:
		r.readBuffer = value
	default:
		return outOfRange(offset, false)
	}
	return nil
}
