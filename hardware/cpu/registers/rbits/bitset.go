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

// BitSet is an 8-bit value with access to individual bits. Bit 0 is the
// least significant bit.
type BitSet uint8

// Get returns the state of the bit.
func (b BitSet) Get(bit int) bool {
	return b&(1<<bit) != 0
}

// Set the bit to the value of v.
func (b *BitSet) Set(bit int, v bool) {
	if v {
		*b |= 1 << bit
	} else {
		*b &^= 1 << bit
	}
}

// Load replaces every bit with those in the value.
func (b *BitSet) Load(v uint8) {
	*b = BitSet(v)
}

// Value returns the bits as a uint8.
func (b BitSet) Value() uint8 {
	return uint8(b)
}

func (b BitSet) String() string {
	return fmt.Sprintf("%08b", uint8(b))
}
