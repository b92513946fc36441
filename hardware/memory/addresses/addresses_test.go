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

package addresses_test

import (
	"testing"

	"github.com/jetsetilly/ironnes/hardware/memory/addresses"
	"github.com/jetsetilly/ironnes/test"
)

func TestSymbols(t *testing.T) {
	s, ok := addresses.Symbol(0x2002)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "PPUSTATUS")

	// mirror of PPUADDR
	s, ok = addresses.Symbol(0x3ffe)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "PPUADDR")

	s, ok = addresses.Symbol(0x4014)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "OAMDMA")

	// gaps in the IO registers have no name
	_, ok = addresses.Symbol(0x4009)
	test.ExpectFailure(t, ok)

	_, ok = addresses.Symbol(0x0200)
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, addresses.PPURegister(9).String(), "unknown PPU register")
}
