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
	"strings"

	"github.com/jetsetilly/ironnes/hardware/cpu/registers/rbits"
)

// Flag identifies a bit in the status register.
type Flag int

// List of valid Flag values.
const (
	Carry Flag = iota
	Zero
	InterruptDisable
	Decimal
	Break
	Unused
	Overflow
	Negative
)

// the bits that PHP and BRK force on when pushing the status register. the
// same bits are preserved from the current value by PLP and RTI.
const (
	BreakBits = uint8(0x30)
)

// StatusRegister is the 6502 processor status register (the P register).
type StatusRegister struct {
	bits rbits.BitSet
}

// Get returns the state of the flag.
func (sr StatusRegister) Get(f Flag) bool {
	return sr.bits.Get(int(f))
}

// Set the state of the flag.
func (sr *StatusRegister) Set(f Flag, v bool) {
	sr.bits.Set(int(f), v)
}

// Value returns the status register as a byte.
func (sr StatusRegister) Value() uint8 {
	return sr.bits.Value()
}

// Load replaces every flag with the bits in the value.
func (sr *StatusRegister) Load(v uint8) {
	sr.bits.Load(v)
}

// UpdateZero sets the Zero flag if the low byte of the value is zero.
func (sr *StatusRegister) UpdateZero(v uint16) {
	sr.Set(Zero, v&0xff == 0)
}

// UpdateNegative sets the Negative flag from bit 7 of the value.
func (sr *StatusRegister) UpdateNegative(v uint16) {
	sr.Set(Negative, v&0x80 == 0x80)
}

// Label returns the canonical name of the register.
func (sr StatusRegister) Label() string {
	return "P"
}

// String returns the flags in the conventional order, with set flags in
// upper case. For example, "nv-bdIzC".
func (sr StatusRegister) String() string {
	const labels = "czidb-vn"

	s := strings.Builder{}
	for f := Negative; f >= Carry; f-- {
		r := rune(labels[f])
		if f == Unused {
			s.WriteRune(r)
			continue
		}
		if sr.Get(f) {
			r -= 'a' - 'A'
		}
		s.WriteRune(r)
	}
	return s.String()
}
