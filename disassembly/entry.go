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

	"github.com/jetsetilly/ironnes/hardware/cpu/instructions"
)

// Entry is a single line of the disassembly.
type Entry struct {
	Address uint16
	Defn    instructions.Definition

	// bytes, mnemonic and operand in fixed columns
	Text string

	// the absolute destination of a branch instruction
	Target uint16

	// the entry is a lone byte at the end of the ROM that is too short for
	// the instruction its first byte describes
	Data bool
}

func (e Entry) String() string {
	if e.Defn.IsBranch() {
		return fmt.Sprintf("%04x  %s  ; $%04x", e.Address, e.Text, e.Target)
	}
	return fmt.Sprintf("%04x  %s", e.Address, e.Text)
}

// Operand returns the part of the entry after the mnemonic.
func (e Entry) Operand() string {
	if e.Data {
		return ""
	}
	_, op, _ := strings.Cut(e.Text, e.Defn.Mnemonic)
	return strings.TrimSpace(op)
}

// branchDestination returns the branch operand as the address of the branched
// PC, rather than an offset value. all branch instructions are two bytes long.
func branchDestination(address uint16, operand uint8) uint16 {
	return address + 2 + uint16(int8(operand))
}
