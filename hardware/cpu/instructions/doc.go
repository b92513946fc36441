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

// Package instructions defines the table of 6502 instruction definitions.
// Every opcode from 0x00 to 0xff has a definition. Opcodes that the NES CPU
// does not support have the Illegal addressing mode and the IllegalOperator
// operator.
//
// The table itself is generated from two CSV files in the generator
// directory. One lists the documented instructions and the other the
// undocumented instructions that are stable enough to be used by NES
// software. The table is regenerated with "go generate ./..." after either
// file is changed.
package instructions
