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

package rbits_test

import (
	"testing"

	"github.com/jetsetilly/ironnes/hardware/cpu/registers/rbits"
	"github.com/jetsetilly/ironnes/test"
)

func TestBitSet(t *testing.T) {
	var b rbits.BitSet
	b.Load(0b11011001)
	test.ExpectSuccess(t, b.Get(3))
	test.ExpectFailure(t, b.Get(5))

	b.Set(3, false)
	b.Set(5, true)
	test.ExpectEquality(t, b.Value(), 0b11110001)
	test.ExpectEquality(t, b.String(), "11110001")

	// setting a bit to its current value changes nothing
	b.Set(0, true)
	b.Set(1, false)
	test.ExpectEquality(t, b.Value(), 0b11110001)
}

func TestBiasedBitSet(t *testing.T) {
	b := rbits.NewBiasedBitSet()
	b.Bias(3, false)
	b.Bias(5, true)
	b.Store(0b11011001)
	test.ExpectEquality(t, b.Value(), 0b11110001)

	// biased bits cannot be changed by Set()
	b.Set(3, true)
	b.Set(5, false)
	test.ExpectEquality(t, b.Value(), 0b11110001)

	// unbiased bits can
	b.Set(7, false)
	test.ExpectEquality(t, b.Value(), 0b01110001)

	// every store is constrained
	b.Store(0xff)
	test.ExpectEquality(t, b.Value(), 0b11110111)
	b.Store(0x00)
	test.ExpectEquality(t, b.Value(), 0b00100000)
}

func TestBiasAfterStore(t *testing.T) {
	b := rbits.NewBiasedBitSet()
	b.Store(0xff)
	test.ExpectEquality(t, b.Value(), 0xff)

	// biasing an already stored bit takes effect immediately
	b.Bias(6, false)
	test.ExpectEquality(t, b.Value(), 0xbf)
	test.ExpectFailure(t, b.Get(6))

	b.Store(0xff)
	test.ExpectEquality(t, b.Value(), 0xbf)
}
