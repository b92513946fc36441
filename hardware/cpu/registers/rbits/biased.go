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

package rbits

import "fmt"

// BiasedBitSet is a BitSet in which some bits can be fixed to a value.
// Biased bits are unaffected by Store() and Set().
type BiasedBitSet struct {
	value BitSet

	// bits that are clear in set0 are pinned to zero. bits that are set in
	// set1 are pinned to one
	set0 uint8
	set1 uint8
}

// NewBiasedBitSet is the preferred method of initialisation for the
// BiasedBitSet type. No bits are biased.
func NewBiasedBitSet() BiasedBitSet {
	return BiasedBitSet{set0: 0xff}
}

func (b *BiasedBitSet) sanitise(v uint8) BitSet {
	return BitSet((v & b.set0) | b.set1)
}

// Bias pins the bit to the value. Any previously stored value is adjusted
// immediately.
func (b *BiasedBitSet) Bias(bit int, v bool) {
	if v {
		b.set0 |= 1 << bit
		b.set1 |= 1 << bit
	} else {
		b.set0 &^= 1 << bit
		b.set1 &^= 1 << bit
	}
	b.value = b.sanitise(uint8(b.value))
}

// Store replaces the unbiased bits with those in the value.
func (b *BiasedBitSet) Store(v uint8) {
	b.value = b.sanitise(v)
}

// Set the bit to the value of v. Has no effect if the bit is biased.
func (b *BiasedBitSet) Set(bit int, v bool) {
	n := b.value
	n.Set(bit, v)
	b.value = b.sanitise(uint8(n))
}

// Get returns the state of the bit.
func (b BiasedBitSet) Get(bit int) bool {
	return b.value.Get(bit)
}

// Value returns the bits as a uint8.
func (b BiasedBitSet) Value() uint8 {
	return uint8(b.value)
}

func (b BiasedBitSet) String() string {
	return fmt.Sprintf("%s (set0 %08b set1 %08b)", b.value, b.set0, b.set1)
}
