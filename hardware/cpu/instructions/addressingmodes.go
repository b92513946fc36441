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

// AddressingMode describes how the operand of an instruction is found.
type AddressingMode int

// List of valid AddressingMode values.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Absolute
	AbsoluteX // abs,X
	AbsoluteY // abs,Y
	Indirect  // (abs)
	IndirectX // (zp,X)
	IndirectY // (zp),Y
	ZeroPage
	ZeroPageX // zp,X
	ZeroPageY // zp,Y
	Relative  // branch instructions only
	Illegal
	Unknown
)

var modeTags = [...]string{
	Implied:     "IMP",
	Accumulator: "ACC",
	Immediate:   "IMM",
	Absolute:    "ABS",
	AbsoluteX:   "ABSX",
	AbsoluteY:   "ABSY",
	Indirect:    "IND",
	IndirectX:   "INDX",
	IndirectY:   "INDY",
	ZeroPage:    "ZP",
	ZeroPageX:   "ZPX",
	ZeroPageY:   "ZPY",
	Relative:    "REL",
	Illegal:     "ILL",
	Unknown:     "???",
}

// ParseAddressingMode converts the short tag used in the instruction CSV
// files to an AddressingMode. Unrecognised tags return Unknown.
func ParseAddressingMode(tag string) AddressingMode {
	for m, t := range modeTags {
		if t == tag && AddressingMode(m) != Unknown {
			return AddressingMode(m)
		}
	}
	return Unknown
}

// Tag returns the short form of the addressing mode. The inverse of
// ParseAddressingMode().
func (m AddressingMode) Tag() string {
	if m < Implied || m > Unknown {
		return modeTags[Unknown]
	}
	return modeTags[m]
}

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case Indirect:
		return "Indirect"
	case IndirectX:
		return "IndirectX"
	case IndirectY:
		return "IndirectY"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	case Relative:
		return "Relative"
	case Illegal:
		return "Illegal"
	}
	return "Unknown"
}

// Bytes returns the length of an instruction that uses the addressing mode,
// including the opcode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, IndirectX, IndirectY, Relative:
		return 2
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	}
	return 1
}

// IsMemory returns true if the resolved operand of the addressing mode is an
// address in memory rather than a value.
func (m AddressingMode) IsMemory() bool {
	switch m {
	case Absolute, AbsoluteX, AbsoluteY, ZeroPage, ZeroPageX, ZeroPageY, Indirect, IndirectX, IndirectY:
		return true
	}
	return false
}
