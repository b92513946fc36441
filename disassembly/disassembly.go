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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/ironnes/curated"
	"github.com/jetsetilly/ironnes/errors"
	"github.com/jetsetilly/ironnes/hardware/cpu/instructions"
	"github.com/jetsetilly/ironnes/hardware/memory/addresses"
	"github.com/jetsetilly/ironnes/hardware/memory/cartridge"
)

// Disassembly of the program ROM of a cartridge.
type Disassembly struct {
	Cart *cartridge.Cartridge

	// address of the first byte of the ROM
	Origin uint16

	Entries []Entry

	// the three interrupt vectors
	NMI   uint16
	Reset uint16
	IRQ   uint16
}

// number of bytes at the end of the ROM occupied by the interrupt vectors
const vectorBytes = 6

// FromCartridge disassembles the cartridge.
func FromCartridge(cart *cartridge.Cartridge) (*Disassembly, error) {
	if len(cart.PRG) < vectorBytes || len(cart.PRG) > 0x8000 {
		return nil, curated.Errorf(errors.CartridgeError, fmt.Sprintf("cannot disassemble %d bytes of PRG", len(cart.PRG)))
	}

	dsm := &Disassembly{
		Cart:   cart,
		Origin: uint16(0x10000 - len(cart.PRG)),
	}

	dsm.NMI = dsm.word(addresses.NMI)
	dsm.Reset = dsm.word(addresses.Reset)
	dsm.IRQ = dsm.word(addresses.IRQ)

	end := len(cart.PRG) - vectorBytes
	offset := 0
	for offset < end {
		address := dsm.Origin + uint16(offset)
		defn := instructions.Lookup(cart.PRG[offset])

		if offset+defn.Bytes > end {
			dsm.Entries = append(dsm.Entries, Entry{
				Address: address,
				Text:    fmt.Sprintf("%02x       .byte $%02x", cart.PRG[offset], cart.PRG[offset]),
				Data:    true,
			})
			offset++
			continue
		}

		var p1, p2 uint8
		if defn.Bytes > 1 {
			p1 = cart.PRG[offset+1]
		}
		if defn.Bytes > 2 {
			p2 = cart.PRG[offset+2]
		}

		e := Entry{
			Address: address,
			Defn:    defn,
			Text:    strings.TrimRight(defn.Disassemble(p1, p2), " "),
		}
		if defn.IsBranch() {
			e.Target = branchDestination(address, p1)
		}
		dsm.Entries = append(dsm.Entries, e)

		offset += defn.Bytes
	}

	return dsm, nil
}

// word returns the little-endian value at the address, which must be in the
// ROM.
func (dsm *Disassembly) word(address uint16) uint16 {
	i := int(address - dsm.Origin)
	return uint16(dsm.Cart.PRG[i]) | uint16(dsm.Cart.PRG[i+1])<<8
}

// GetEntryByAddress returns the entry that begins at the address.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (Entry, bool) {
	for _, e := range dsm.Entries {
		if e.Address == address {
			return e, true
		}
		if e.Address > address {
			break
		}
	}
	return Entry{}, false
}
