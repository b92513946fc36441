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

package instructions

import (
	"fmt"
	"strings"
)

// Definition describes a single opcode.
type Definition struct {
	OpCode   uint8
	Mnemonic string
	Bytes    int

	// base number of cycles before any penalties
	Cycles int

	// an extra cycle is taken if the operand is on a different page to the
	// base address
	PageSensitive bool

	AddressingMode AddressingMode
	Operator       Operator
	Effect         Category
}

// Lookup returns the definition for the opcode. Opcodes not supported by the
// CPU return a definition with the Illegal addressing mode.
func Lookup(opcode uint8) Definition {
	return definitions[opcode]
}

func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if the instruction is one of the conditional
// branches.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// IsUndocumented returns true if the instruction is not part of the
// documented 6502 instruction set.
func (defn Definition) IsUndocumented() bool {
	return strings.HasPrefix(defn.Mnemonic, "*")
}

// IsIllegal returns true if the opcode has no operator.
func (defn Definition) IsIllegal() bool {
	return defn.Operator == IllegalOperator
}
