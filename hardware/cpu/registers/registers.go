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

import "fmt"

// power-on values of the registers.
const (
	PowerOnPC     = uint16(0xc000)
	PowerOnSP     = uint16(0xfd)
	PowerOnStatus = uint8(0x24)
)

// Registers is the complete register file of the CPU.
type Registers struct {
	PC uint16

	// only the low byte is meaningful. the stack page is at 0x0100
	SP uint16

	A uint8
	X uint8
	Y uint8
	P StatusRegister
}

// NewRegisters returns the registers in their power-on state.
func NewRegisters() Registers {
	r := Registers{
		PC: PowerOnPC,
		SP: PowerOnSP,
	}
	r.P.Load(PowerOnStatus)
	return r
}

func (r Registers) String() string {
	return fmt.Sprintf("PC %04x SP %02x A %02x X %02x Y %02x P %02x", r.PC, r.SP, r.A, r.X, r.Y, r.P.Value())
}
