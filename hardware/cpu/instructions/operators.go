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

import "strings"

// Operator identifies the operation performed by an instruction, independent
// of addressing mode. The CPU dispatches on this value.
type Operator int

// List of valid Operator values. The zero value is IllegalOperator so that
// an uninitialised definition can never be executed.
const (
	IllegalOperator Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// undocumented
	Lax
	Sax
	Dcp
	Isc
	Slo
	Rla
	Rra
	Sre

	numOperators
)

var operatorNames = [numOperators]string{
	"ILLEGAL",
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL",
	"BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX", "CPY",
	"DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR", "LDA",
	"LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
	"LAX", "SAX", "DCP", "ISC", "SLO", "RLA", "RRA", "SRE",
}

func (o Operator) String() string {
	if o < 0 || o >= numOperators {
		return operatorNames[IllegalOperator]
	}
	return operatorNames[o]
}

// ParseOperator returns the Operator for the mnemonic. The asterisk used to
// mark undocumented instructions is ignored.
func ParseOperator(mnemonic string) (Operator, bool) {
	mnemonic = strings.ToUpper(strings.TrimPrefix(mnemonic, "*"))
	for i, n := range operatorNames {
		if i != int(IllegalOperator) && n == mnemonic {
			return Operator(i), true
		}
	}
	return IllegalOperator, false
}
