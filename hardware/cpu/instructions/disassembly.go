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

import "fmt"

// Disassemble formats the instruction in fixed columns: the instruction
// bytes, the mnemonic and the operand. The p1 and p2 arguments are the two
// bytes following the opcode in memory. They are only used if the
// addressing mode requires them.
func (defn Definition) Disassemble(p1 uint8, p2 uint8) string {
	op := defn.OpCode
	mn := defn.Mnemonic

	switch defn.AddressingMode {
	case Accumulator:
		return fmt.Sprintf("%02x       %s A", op, mn)
	case Immediate:
		return fmt.Sprintf("%02x %02x    %s #$%02x", op, p1, mn, p1)
	case Absolute, Indirect:
		return fmt.Sprintf("%02x %02x %02x %s $%02x%02x", op, p1, p2, mn, p2, p1)
	case AbsoluteX:
		return fmt.Sprintf("%02x %02x %02x %s $%02x%02x, X", op, p1, p2, mn, p2, p1)
	case AbsoluteY:
		return fmt.Sprintf("%02x %02x %02x %s $%02x%02x, Y", op, p1, p2, mn, p2, p1)
	case IndirectX:
		return fmt.Sprintf("%02x %02x    %s ($%02x,X)", op, p1, mn, p1)
	case IndirectY:
		return fmt.Sprintf("%02x %02x    %s ($%02x,Y)", op, p1, mn, p1)
	case ZeroPage, Relative:
		return fmt.Sprintf("%02x %02x    %s $%02x", op, p1, mn, p1)
	case ZeroPageX:
		return fmt.Sprintf("%02x %02x    %s $%02x,X", op, p1, mn, p1)
	case ZeroPageY:
		return fmt.Sprintf("%02x %02x    %s $%02x,Y", op, p1, mn, p1)
	case Illegal:
		return fmt.Sprintf("%02x      %s $%02x", op, mn, op)
	}

	return fmt.Sprintf("%02x       %s ", op, mn)
}
