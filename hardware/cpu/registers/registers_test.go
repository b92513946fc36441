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

	"github.com/jetsetilly/ironnes/hardware/cpu/registers"
	"github.com/jetsetilly/ironnes/test"
)

func TestPowerOn(t *testing.T) {
	r := registers.NewRegisters()
	test.ExpectEquality(t, r.String(), "PC c000 SP fd A 00 X 00 Y 00 P 24")
	test.ExpectSuccess(t, r.P.Get(registers.InterruptDisable))
	test.ExpectSuccess(t, r.P.Get(registers.Unused))
	test.ExpectFailure(t, r.P.Get(registers.Break))
	test.ExpectEquality(t, r.P.String(), "nv-bdIzc")
}

func TestStatusFlags(t *testing.T) {
	var sr registers.StatusRegister

	sr.Set(registers.Carry, true)
	sr.Set(registers.Negative, true)
	test.ExpectEquality(t, sr.Value(), 0x81)
	test.ExpectEquality(t, sr.String(), "Nv-bdizC")

	sr.UpdateZero(0x100)
	test.ExpectSuccess(t, sr.Get(registers.Zero))
	sr.UpdateZero(0x01)
	test.ExpectFailure(t, sr.Get(registers.Zero))

	sr.UpdateNegative(0x7f)
	test.ExpectFailure(t, sr.Get(registers.Negative))
	sr.UpdateNegative(0x80)
	test.ExpectSuccess(t, sr.Get(registers.Negative))

	sr.Load(0x40)
	test.ExpectSuccess(t, sr.Get(registers.Overflow))
	test.ExpectFailure(t, sr.Get(registers.Carry))
	test.ExpectEquality(t, sr.Label(), "P")
}
