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

package cartridge

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/ironnes/cartridgeloader"
	"github.com/jetsetilly/ironnes/curated"
	"github.com/jetsetilly/ironnes/errors"
	"github.com/jetsetilly/ironnes/hardware/memory/memorymap"
)

// sizes of the parts of an iNES file.
const (
	HeaderSize  = 16
	TrainerSize = 512
	PRGBankSize = memorymap.BankSize
	CHRBankSize = 0x2000
	RAMBankSize = 0x2000
)

var magic = []uint8{'N', 'E', 'S', 0x1a}

// Mirroring describes how the nametables are arranged.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "MIRROR_HORIZONTAL"
	case Vertical:
		return "MIRROR_VERTICAL"
	case FourScreen:
		return "FOUR_SCREEN"
	}
	return "unknown mirroring"
}

// Region is the television standard the cartridge was made for.
type Region int

// List of valid Region values.
const (
	NTSC Region = iota
	PAL
)

func (r Region) String() string {
	if r == PAL {
		return "PAL"
	}
	return "NTSC"
}

// Cartridge is a parsed iNES file.
type Cartridge struct {
	Filename string
	Hash     string

	PRGBanks int
	CHRBanks int
	RAMBanks int

	Mirroring Mirroring
	Battery   bool
	Trainer   bool
	Mapper    int
	Region    Region

	// program and character ROM data. CHR is empty if the cartridge uses
	// CHR RAM
	PRG []uint8
	CHR []uint8
}

// NewCartridge parses the iNES data. Data after the character ROM is
// ignored.
func NewCartridge(data []uint8) (*Cartridge, error) {
	if len(data) < HeaderSize {
		return nil, curated.Errorf(errors.CartridgeError, "truncated header")
	}

	for i := range magic {
		if data[i] != magic[i] {
			return nil, curated.Errorf(errors.CartridgeError, "not an iNES file")
		}
	}

	if data[7]&0x0e != 0 || data[9]&0xfe != 0 {
		return nil, curated.Errorf(errors.CartridgeError, "reserved bits in header are not zero")
	}

	cart := &Cartridge{
		PRGBanks: int(data[4]),
		CHRBanks: int(data[5]),
		RAMBanks: int(data[8]),
		Battery:  data[6]&0x02 == 0x02,
		Trainer:  data[6]&0x04 == 0x04,
		Mapper:   int(data[6]>>4) | int(data[7]&0xf0),
	}

	switch {
	case data[6]&0x08 == 0x08:
		cart.Mirroring = FourScreen
	case data[6]&0x01 == 0x01:
		cart.Mirroring = Vertical
	default:
		cart.Mirroring = Horizontal
	}

	if data[9]&0x01 == 0x01 {
		cart.Region = PAL
	}

	if cart.Mapper != 0 {
		return nil, curated.Errorf(errors.CartridgeError, fmt.Sprintf("unsupported mapper (%s)", MapperName(cart.Mapper)))
	}

	if cart.PRGBanks == 0 {
		return nil, curated.Errorf(errors.CartridgeError, "no program ROM")
	}

	// the trainer is not used by the emulation
	offset := HeaderSize
	if cart.Trainer {
		offset += TrainerSize
	}

	prgEnd := offset + cart.PRGBanks*PRGBankSize
	chrEnd := prgEnd + cart.CHRBanks*CHRBankSize
	if len(data) < chrEnd {
		return nil, curated.Errorf(errors.CartridgeError, fmt.Sprintf("truncated data (%d bytes, expected %d)", len(data), chrEnd))
	}

	cart.PRG = make([]uint8, prgEnd-offset)
	copy(cart.PRG, data[offset:prgEnd])
	cart.CHR = make([]uint8, chrEnd-prgEnd)
	copy(cart.CHR, data[prgEnd:chrEnd])

	return cart, nil
}

// NewCartridgeFromLoader loads the data using the cartridge loader and
// parses it.
func NewCartridgeFromLoader(cl cartridgeloader.Loader) (*Cartridge, error) {
	err := cl.Load()
	if err != nil {
		return nil, err
	}

	cart, err := NewCartridge(cl.Data)
	if err != nil {
		return nil, err
	}
	cart.Filename = cl.Filename
	cart.Hash = cl.Hash

	return cart, nil
}

func (cart Cartridge) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("Cartridge %d kB ROM %d kB VROM %d kB RAM",
		cart.PRGBanks*PRGBankSize/1024, cart.CHRBanks*CHRBankSize/1024, cart.RAMBanks*RAMBankSize/1024))
	s.WriteString(fmt.Sprintf(" %s", cart.Mirroring))
	if cart.Battery {
		s.WriteString(" BATTERY")
	}
	if cart.Trainer {
		s.WriteString(" TRAINER")
	}
	s.WriteString(fmt.Sprintf(" %s MAPPER: %s", cart.Region, MapperName(cart.Mapper)))
	return s.String()
}
