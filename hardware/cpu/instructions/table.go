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

// generated code - do not change

package instructions

// definitions is indexed by opcode
var definitions = [256]Definition{
	{OpCode: 0x00, Mnemonic: "BRK", Bytes: 1, Cycles: 7, PageSensitive: false, AddressingMode: Implied, Operator: Brk, Effect: Interrupt},
	{OpCode: 0x01, Mnemonic: "ORA", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: IndirectX, Operator: Ora, Effect: Read},
	{OpCode: 0x02, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x03, Mnemonic: "*SLO", Bytes: 2, Cycles: 8, PageSensitive: false, AddressingMode: IndirectX, Operator: Slo, Effect: Modify},
	{OpCode: 0x04, Mnemonic: "*NOP", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Nop, Effect: Read},
	{OpCode: 0x05, Mnemonic: "ORA", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Ora, Effect: Read},
	{OpCode: 0x06, Mnemonic: "ASL", Bytes: 2, Cycles: 5, PageSensitive: false, AddressingMode: ZeroPage, Operator: Asl, Effect: Modify},
	{OpCode: 0x07, Mnemonic: "*SLO", Bytes: 2, Cycles: 5, PageSensitive: false, AddressingMode: ZeroPage, Operator: Slo, Effect: Modify},
	{OpCode: 0x08, Mnemonic: "PHP", Bytes: 1, Cycles: 3, PageSensitive: false, AddressingMode: Implied, Operator: Php, Effect: Write},
	{OpCode: 0x09, Mnemonic: "ORA", Bytes: 2, Cycles: 2, PageSensitive: false, AddressingMode: Immediate, Operator: Ora, Effect: Read},
	{OpCode: 0x0a, Mnemonic: "ASL", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Accumulator, Operator: Asl, Effect: Modify},
	{OpCode: 0x0b, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x0c, Mnemonic: "*NOP", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: Nop, Effect: Read},
	{OpCode: 0x0d, Mnemonic: "ORA", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: Ora, Effect: Read},
	{OpCode: 0x0e, Mnemonic: "ASL", Bytes: 3, Cycles: 6, PageSensitive: false, AddressingMode: Absolute, Operator: Asl, Effect: Modify},
	{OpCode: 0x0f, Mnemonic: "*SLO", Bytes: 3, Cycles: 6, PageSensitive: false, AddressingMode: Absolute, Operator: Slo, Effect: Modify},
	{OpCode: 0x10, Mnemonic: "BPL", Bytes: 2, Cycles: 2, PageSensitive: true, AddressingMode: Relative, Operator: Bpl, Effect: Flow},
	{OpCode: 0x11, Mnemonic: "ORA", Bytes: 2, Cycles: 5, PageSensitive: true, AddressingMode: IndirectY, Operator: Ora, Effect: Read},
	{OpCode: 0x12, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x13, Mnemonic: "*SLO", Bytes: 2, Cycles: 8, PageSensitive: false, AddressingMode: IndirectY, Operator: Slo, Effect: Modify},
	{OpCode: 0x14, Mnemonic: "*NOP", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Nop, Effect: Read},
	{OpCode: 0x15, Mnemonic: "ORA", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Ora, Effect: Read},
	{OpCode: 0x16, Mnemonic: "ASL", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Asl, Effect: Modify},
	{OpCode: 0x17, Mnemonic: "*SLO", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Slo, Effect: Modify},
	{OpCode: 0x18, Mnemonic: "CLC", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Clc, Effect: Read},
	{OpCode: 0x19, Mnemonic: "ORA", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteY, Operator: Ora, Effect: Read},
	{OpCode: 0x1a, Mnemonic: "*NOP", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Nop, Effect: Read},
	{OpCode: 0x1b, Mnemonic: "*SLO", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteY, Operator: Slo, Effect: Modify},
	{OpCode: 0x1c, Mnemonic: "*NOP", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteX, Operator: Nop, Effect: Read},
	{OpCode: 0x1d, Mnemonic: "ORA", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteX, Operator: Ora, Effect: Read},
	{OpCode: 0x1e, Mnemonic: "ASL", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteX, Operator: Asl, Effect: Modify},
	{OpCode: 0x1f, Mnemonic: "*SLO", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteX, Operator: Slo, Effect: Modify},
	{OpCode: 0x20, Mnemonic: "JSR", Bytes: 3, Cycles: 6, PageSensitive: false, AddressingMode: Absolute, Operator: Jsr, Effect: Subroutine},
	{OpCode: 0x21, Mnemonic: "AND", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: IndirectX, Operator: And, Effect: Read},
	{OpCode: 0x22, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x23, Mnemonic: "*RLA", Bytes: 2, Cycles: 8, PageSensitive: false, AddressingMode: IndirectX, Operator: Rla, Effect: Modify},
	{OpCode: 0x24, Mnemonic: "BIT", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Bit, Effect: Read},
	{OpCode: 0x25, Mnemonic: "AND", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: And, Effect: Read},
	{OpCode: 0x26, Mnemonic: "ROL", Bytes: 2, Cycles: 5, PageSensitive: false, AddressingMode: ZeroPage, Operator: Rol, Effect: Modify},
	{OpCode: 0x27, Mnemonic: "*RLA", Bytes: 2, Cycles: 5, PageSensitive: false, AddressingMode: ZeroPage, Operator: Rla, Effect: Modify},
	{OpCode: 0x28, Mnemonic: "PLP", Bytes: 1, Cycles: 4, PageSensitive: false, AddressingMode: Implied, Operator: Plp, Effect: Read},
	{OpCode: 0x29, Mnemonic: "AND", Bytes: 2, Cycles: 2, PageSensitive: false, AddressingMode: Immediate, Operator: And, Effect: Read},
	{OpCode: 0x2a, Mnemonic: "ROL", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Accumulator, Operator: Rol, Effect: Modify},
	{OpCode: 0x2b, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x2c, Mnemonic: "BIT", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: Bit, Effect: Read},
	{OpCode: 0x2d, Mnemonic: "AND", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: And, Effect: Read},
	{OpCode: 0x2e, Mnemonic: "ROL", Bytes: 3, Cycles: 6, PageSensitive: false, AddressingMode: Absolute, Operator: Rol, Effect: Modify},
	{OpCode: 0x2f, Mnemonic: "*RLA", Bytes: 3, Cycles: 6, PageSensitive: false, AddressingMode: Absolute, Operator: Rla, Effect: Modify},
	{OpCode: 0x30, Mnemonic: "BMI", Bytes: 2, Cycles: 2, PageSensitive: true, AddressingMode: Relative, Operator: Bmi, Effect: Flow},
	{OpCode: 0x31, Mnemonic: "AND", Bytes: 2, Cycles: 5, PageSensitive: true, AddressingMode: IndirectY, Operator: And, Effect: Read},
	{OpCode: 0x32, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x33, Mnemonic: "*RLA", Bytes: 2, Cycles: 8, PageSensitive: false, AddressingMode: IndirectY, Operator: Rla, Effect: Modify},
	{OpCode: 0x34, Mnemonic: "*NOP", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Nop, Effect: Read},
	{OpCode: 0x35, Mnemonic: "AND", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageX, Operator: And, Effect: Read},
	{OpCode: 0x36, Mnemonic: "ROL", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Rol, Effect: Modify},
	{OpCode: 0x37, Mnemonic: "*RLA", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Rla, Effect: Modify},
	{OpCode: 0x38, Mnemonic: "SEC", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Sec, Effect: Read},
	{OpCode: 0x39, Mnemonic: "AND", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteY, Operator: And, Effect: Read},
	{OpCode: 0x3a, Mnemonic: "*NOP", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Nop, Effect: Read},
	{OpCode: 0x3b, Mnemonic: "*RLA", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteY, Operator: Rla, Effect: Modify},
	{OpCode: 0x3c, Mnemonic: "*NOP", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteX, Operator: Nop, Effect: Read},
	{OpCode: 0x3d, Mnemonic: "AND", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteX, Operator: And, Effect: Read},
	{OpCode: 0x3e, Mnemonic: "ROL", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteX, Operator: Rol, Effect: Modify},
	{OpCode: 0x3f, Mnemonic: "*RLA", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteX, Operator: Rla, Effect: Modify},
	{OpCode: 0x40, Mnemonic: "RTI", Bytes: 1, Cycles: 6, PageSensitive: false, AddressingMode: Implied, Operator: Rti, Effect: Interrupt},
	{OpCode: 0x41, Mnemonic: "EOR", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: IndirectX, Operator: Eor, Effect: Read},
	{OpCode: 0x42, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x43, Mnemonic: "*SRE", Bytes: 2, Cycles: 8, PageSensitive: false, AddressingMode: IndirectX, Operator: Sre, Effect: Modify},
	{OpCode: 0x44, Mnemonic: "*NOP", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Nop, Effect: Read},
	{OpCode: 0x45, Mnemonic: "EOR", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Eor, Effect: Read},
	{OpCode: 0x46, Mnemonic: "LSR", Bytes: 2, Cycles: 5, PageSensitive: false, AddressingMode: ZeroPage, Operator: Lsr, Effect: Modify},
	{OpCode: 0x47, Mnemonic: "*SRE", Bytes: 2, Cycles: 5, PageSensitive: false, AddressingMode: ZeroPage, Operator: Sre, Effect: Modify},
	{OpCode: 0x48, Mnemonic: "PHA", Bytes: 1, Cycles: 3, PageSensitive: false, AddressingMode: Implied, Operator: Pha, Effect: Write},
	{OpCode: 0x49, Mnemonic: "EOR", Bytes: 2, Cycles: 2, PageSensitive: false, AddressingMode: Immediate, Operator: Eor, Effect: Read},
	{OpCode: 0x4a, Mnemonic: "LSR", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Accumulator, Operator: Lsr, Effect: Modify},
	{OpCode: 0x4b, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x4c, Mnemonic: "JMP", Bytes: 3, Cycles: 3, PageSensitive: false, AddressingMode: Absolute, Operator: Jmp, Effect: Flow},
	{OpCode: 0x4d, Mnemonic: "EOR", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: Eor, Effect: Read},
	{OpCode: 0x4e, Mnemonic: "LSR", Bytes: 3, Cycles: 6, PageSensitive: false, AddressingMode: Absolute, Operator: Lsr, Effect: Modify},
	{OpCode: 0x4f, Mnemonic: "*SRE", Bytes: 3, Cycles: 6, PageSensitive: false, AddressingMode: Absolute, Operator: Sre, Effect: Modify},
	{OpCode: 0x50, Mnemonic: "BVC", Bytes: 2, Cycles: 2, PageSensitive: true, AddressingMode: Relative, Operator: Bvc, Effect: Flow},
	{OpCode: 0x51, Mnemonic: "EOR", Bytes: 2, Cycles: 5, PageSensitive: true, AddressingMode: IndirectY, Operator: Eor, Effect: Read},
	{OpCode: 0x52, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x53, Mnemonic: "*SRE", Bytes: 2, Cycles: 8, PageSensitive: false, AddressingMode: IndirectY, Operator: Sre, Effect: Modify},
	{OpCode: 0x54, Mnemonic: "*NOP", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Nop, Effect: Read},
	{OpCode: 0x55, Mnemonic: "EOR", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Eor, Effect: Read},
	{OpCode: 0x56, Mnemonic: "LSR", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Lsr, Effect: Modify},
	{OpCode: 0x57, Mnemonic: "*SRE", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Sre, Effect: Modify},
	{OpCode: 0x58, Mnemonic: "CLI", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Cli, Effect: Read},
	{OpCode: 0x59, Mnemonic: "EOR", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteY, Operator: Eor, Effect: Read},
	{OpCode: 0x5a, Mnemonic: "*NOP", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Nop, Effect: Read},
	{OpCode: 0x5b, Mnemonic: "*SRE", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteY, Operator: Sre, Effect: Modify},
	{OpCode: 0x5c, Mnemonic: "*NOP", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteX, Operator: Nop, Effect: Read},
	{OpCode: 0x5d, Mnemonic: "EOR", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteX, Operator: Eor, Effect: Read},
	{OpCode: 0x5e, Mnemonic: "LSR", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteX, Operator: Lsr, Effect: Modify},
	{OpCode: 0x5f, Mnemonic: "*SRE", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteX, Operator: Sre, Effect: Modify},
	{OpCode: 0x60, Mnemonic: "RTS", Bytes: 1, Cycles: 6, PageSensitive: false, AddressingMode: Implied, Operator: Rts, Effect: Subroutine},
	{OpCode: 0x61, Mnemonic: "ADC", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: IndirectX, Operator: Adc, Effect: Read},
	{OpCode: 0x62, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x63, Mnemonic: "*RRA", Bytes: 2, Cycles: 8, PageSensitive: false, AddressingMode: IndirectX, Operator: Rra, Effect: Modify},
	{OpCode: 0x64, Mnemonic: "*NOP", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Nop, Effect: Read},
	{OpCode: 0x65, Mnemonic: "ADC", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Adc, Effect: Read},
	{OpCode: 0x66, Mnemonic: "ROR", Bytes: 2, Cycles: 5, PageSensitive: false, AddressingMode: ZeroPage, Operator: Ror, Effect: Modify},
	{OpCode: 0x67, Mnemonic: "*RRA", Bytes: 2, Cycles: 5, PageSensitive: false, AddressingMode: ZeroPage, Operator: Rra, Effect: Modify},
	{OpCode: 0x68, Mnemonic: "PLA", Bytes: 1, Cycles: 4, PageSensitive: false, AddressingMode: Implied, Operator: Pla, Effect: Read},
	{OpCode: 0x69, Mnemonic: "ADC", Bytes: 2, Cycles: 2, PageSensitive: false, AddressingMode: Immediate, Operator: Adc, Effect: Read},
	{OpCode: 0x6a, Mnemonic: "ROR", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Accumulator, Operator: Ror, Effect: Modify},
	{OpCode: 0x6b, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x6c, Mnemonic: "JMP", Bytes: 3, Cycles: 5, PageSensitive: false, AddressingMode: Indirect, Operator: Jmp, Effect: Flow},
	{OpCode: 0x6d, Mnemonic: "ADC", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: Adc, Effect: Read},
	{OpCode: 0x6e, Mnemonic: "ROR", Bytes: 3, Cycles: 6, PageSensitive: false, AddressingMode: Absolute, Operator: Ror, Effect: Modify},
	{OpCode: 0x6f, Mnemonic: "*RRA", Bytes: 3, Cycles: 6, PageSensitive: false, AddressingMode: Absolute, Operator: Rra, Effect: Modify},
	{OpCode: 0x70, Mnemonic: "BVS", Bytes: 2, Cycles: 2, PageSensitive: true, AddressingMode: Relative, Operator: Bvs, Effect: Flow},
	{OpCode: 0x71, Mnemonic: "ADC", Bytes: 2, Cycles: 5, PageSensitive: true, AddressingMode: IndirectY, Operator: Adc, Effect: Read},
	{OpCode: 0x72, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x73, Mnemonic: "*RRA", Bytes: 2, Cycles: 8, PageSensitive: false, AddressingMode: IndirectY, Operator: Rra, Effect: Modify},
	{OpCode: 0x74, Mnemonic: "*NOP", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Nop, Effect: Read},
	{OpCode: 0x75, Mnemonic: "ADC", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Adc, Effect: Read},
	{OpCode: 0x76, Mnemonic: "ROR", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Ror, Effect: Modify},
	{OpCode: 0x77, Mnemonic: "*RRA", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Rra, Effect: Modify},
	{OpCode: 0x78, Mnemonic: "SEI", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Sei, Effect: Read},
	{OpCode: 0x79, Mnemonic: "ADC", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteY, Operator: Adc, Effect: Read},
	{OpCode: 0x7a, Mnemonic: "*NOP", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Nop, Effect: Read},
	{OpCode: 0x7b, Mnemonic: "*RRA", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteY, Operator: Rra, Effect: Modify},
	{OpCode: 0x7c, Mnemonic: "*NOP", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteX, Operator: Nop, Effect: Read},
	{OpCode: 0x7d, Mnemonic: "ADC", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteX, Operator: Adc, Effect: Read},
	{OpCode: 0x7e, Mnemonic: "ROR", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteX, Operator: Ror, Effect: Modify},
	{OpCode: 0x7f, Mnemonic: "*RRA", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteX, Operator: Rra, Effect: Modify},
	{OpCode: 0x80, Mnemonic: "*NOP", Bytes: 2, Cycles: 2, PageSensitive: false, AddressingMode: Immediate, Operator: Nop, Effect: Read},
	{OpCode: 0x81, Mnemonic: "STA", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: IndirectX, Operator: Sta, Effect: Write},
	{OpCode: 0x82, Mnemonic: "*NOP", Bytes: 2, Cycles: 2, PageSensitive: false, AddressingMode: Immediate, Operator: Nop, Effect: Read},
	{OpCode: 0x83, Mnemonic: "*SAX", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: IndirectX, Operator: Sax, Effect: Write},
	{OpCode: 0x84, Mnemonic: "STY", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Sty, Effect: Write},
	{OpCode: 0x85, Mnemonic: "STA", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Sta, Effect: Write},
	{OpCode: 0x86, Mnemonic: "STX", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Stx, Effect: Write},
	{OpCode: 0x87, Mnemonic: "*SAX", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Sax, Effect: Write},
	{OpCode: 0x88, Mnemonic: "DEY", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Dey, Effect: Read},
	{OpCode: 0x89, Mnemonic: "*NOP", Bytes: 2, Cycles: 2, PageSensitive: false, AddressingMode: Immediate, Operator: Nop, Effect: Read},
	{OpCode: 0x8a, Mnemonic: "TXA", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Txa, Effect: Read},
	{OpCode: 0x8b, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x8c, Mnemonic: "STY", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: Sty, Effect: Write},
	{OpCode: 0x8d, Mnemonic: "STA", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: Sta, Effect: Write},
	{OpCode: 0x8e, Mnemonic: "STX", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: Stx, Effect: Write},
	{OpCode: 0x8f, Mnemonic: "*SAX", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: Sax, Effect: Write},
	{OpCode: 0x90, Mnemonic: "BCC", Bytes: 2, Cycles: 2, PageSensitive: true, AddressingMode: Relative, Operator: Bcc, Effect: Flow},
	{OpCode: 0x91, Mnemonic: "STA", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: IndirectY, Operator: Sta, Effect: Write},
	{OpCode: 0x92, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x93, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x94, Mnemonic: "STY", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Sty, Effect: Write},
	{OpCode: 0x95, Mnemonic: "STA", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Sta, Effect: Write},
	{OpCode: 0x96, Mnemonic: "STX", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageY, Operator: Stx, Effect: Write},
	{OpCode: 0x97, Mnemonic: "*SAX", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageY, Operator: Sax, Effect: Write},
	{OpCode: 0x98, Mnemonic: "TYA", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Tya, Effect: Read},
	{OpCode: 0x99, Mnemonic: "STA", Bytes: 3, Cycles: 5, PageSensitive: false, AddressingMode: AbsoluteY, Operator: Sta, Effect: Write},
	{OpCode: 0x9a, Mnemonic: "TXS", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Txs, Effect: Read},
	{OpCode: 0x9b, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x9c, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x9d, Mnemonic: "STA", Bytes: 3, Cycles: 5, PageSensitive: false, AddressingMode: AbsoluteX, Operator: Sta, Effect: Write},
	{OpCode: 0x9e, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0x9f, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0xa0, Mnemonic: "LDY", Bytes: 2, Cycles: 2, PageSensitive: false, AddressingMode: Immediate, Operator: Ldy, Effect: Read},
	{OpCode: 0xa1, Mnemonic: "LDA", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: IndirectX, Operator: Lda, Effect: Read},
	{OpCode: 0xa2, Mnemonic: "LDX", Bytes: 2, Cycles: 2, PageSensitive: false, AddressingMode: Immediate, Operator: Ldx, Effect: Read},
	{OpCode: 0xa3, Mnemonic: "*LAX", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: IndirectX, Operator: Lax, Effect: Read},
	{OpCode: 0xa4, Mnemonic: "LDY", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Ldy, Effect: Read},
	{OpCode: 0xa5, Mnemonic: "LDA", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Lda, Effect: Read},
	{OpCode: 0xa6, Mnemonic: "LDX", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Ldx, Effect: Read},
	{OpCode: 0xa7, Mnemonic: "*LAX", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Lax, Effect: Read},
	{OpCode: 0xa8, Mnemonic: "TAY", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Tay, Effect: Read},
	{OpCode: 0xa9, Mnemonic: "LDA", Bytes: 2, Cycles: 2, PageSensitive: false, AddressingMode: Immediate, Operator: Lda, Effect: Read},
	{OpCode: 0xaa, Mnemonic: "TAX", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Tax, Effect: Read},
	{OpCode: 0xab, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0xac, Mnemonic: "LDY", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: Ldy, Effect: Read},
	{OpCode: 0xad, Mnemonic: "LDA", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: Lda, Effect: Read},
	{OpCode: 0xae, Mnemonic: "LDX", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: Ldx, Effect: Read},
	{OpCode: 0xaf, Mnemonic: "*LAX", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: Lax, Effect: Read},
	{OpCode: 0xb0, Mnemonic: "BCS", Bytes: 2, Cycles: 2, PageSensitive: true, AddressingMode: Relative, Operator: Bcs, Effect: Flow},
	{OpCode: 0xb1, Mnemonic: "LDA", Bytes: 2, Cycles: 5, PageSensitive: true, AddressingMode: IndirectY, Operator: Lda, Effect: Read},
	{OpCode: 0xb2, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0xb3, Mnemonic: "*LAX", Bytes: 2, Cycles: 5, PageSensitive: true, AddressingMode: IndirectY, Operator: Lax, Effect: Read},
	{OpCode: 0xb4, Mnemonic: "LDY", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Ldy, Effect: Read},
	{OpCode: 0xb5, Mnemonic: "LDA", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Lda, Effect: Read},
	{OpCode: 0xb6, Mnemonic: "LDX", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageY, Operator: Ldx, Effect: Read},
	{OpCode: 0xb7, Mnemonic: "*LAX", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageY, Operator: Lax, Effect: Read},
	{OpCode: 0xb8, Mnemonic: "CLV", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Clv, Effect: Read},
	{OpCode: 0xb9, Mnemonic: "LDA", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteY, Operator: Lda, Effect: Read},
	{OpCode: 0xba, Mnemonic: "TSX", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Tsx, Effect: Read},
	{OpCode: 0xbb, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0xbc, Mnemonic: "LDY", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteX, Operator: Ldy, Effect: Read},
	{OpCode: 0xbd, Mnemonic: "LDA", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteX, Operator: Lda, Effect: Read},
	{OpCode: 0xbe, Mnemonic: "LDX", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteY, Operator: Ldx, Effect: Read},
	{OpCode: 0xbf, Mnemonic: "*LAX", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteY, Operator: Lax, Effect: Read},
	{OpCode: 0xc0, Mnemonic: "CPY", Bytes: 2, Cycles: 2, PageSensitive: false, AddressingMode: Immediate, Operator: Cpy, Effect: Read},
	{OpCode: 0xc1, Mnemonic: "CMP", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: IndirectX, Operator: Cmp, Effect: Read},
	{OpCode: 0xc2, Mnemonic: "*NOP", Bytes: 2, Cycles: 2, PageSensitive: false, AddressingMode: Immediate, Operator: Nop, Effect: Read},
	{OpCode: 0xc3, Mnemonic: "*DCP", Bytes: 2, Cycles: 8, PageSensitive: false, AddressingMode: IndirectX, Operator: Dcp, Effect: Modify},
	{OpCode: 0xc4, Mnemonic: "CPY", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Cpy, Effect: Read},
	{OpCode: 0xc5, Mnemonic: "CMP", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Cmp, Effect: Read},
	{OpCode: 0xc6, Mnemonic: "DEC", Bytes: 2, Cycles: 5, PageSensitive: false, AddressingMode: ZeroPage, Operator: Dec, Effect: Modify},
	{OpCode: 0xc7, Mnemonic: "*DCP", Bytes: 2, Cycles: 5, PageSensitive: false, AddressingMode: ZeroPage, Operator: Dcp, Effect: Modify},
	{OpCode: 0xc8, Mnemonic: "INY", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Iny, Effect: Read},
	{OpCode: 0xc9, Mnemonic: "CMP", Bytes: 2, Cycles: 2, PageSensitive: false, AddressingMode: Immediate, Operator: Cmp, Effect: Read},
	{OpCode: 0xca, Mnemonic: "DEX", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Dex, Effect: Read},
	{OpCode: 0xcb, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0xcc, Mnemonic: "CPY", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: Cpy, Effect: Read},
	{OpCode: 0xcd, Mnemonic: "CMP", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: Cmp, Effect: Read},
	{OpCode: 0xce, Mnemonic: "DEC", Bytes: 3, Cycles: 6, PageSensitive: false, AddressingMode: Absolute, Operator: Dec, Effect: Modify},
	{OpCode: 0xcf, Mnemonic: "*DCP", Bytes: 3, Cycles: 6, PageSensitive: false, AddressingMode: Absolute, Operator: Dcp, Effect: Modify},
	{OpCode: 0xd0, Mnemonic: "BNE", Bytes: 2, Cycles: 2, PageSensitive: true, AddressingMode: Relative, Operator: Bne, Effect: Flow},
	{OpCode: 0xd1, Mnemonic: "CMP", Bytes: 2, Cycles: 5, PageSensitive: true, AddressingMode: IndirectY, Operator: Cmp, Effect: Read},
	{OpCode: 0xd2, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0xd3, Mnemonic: "*DCP", Bytes: 2, Cycles: 8, PageSensitive: false, AddressingMode: IndirectY, Operator: Dcp, Effect: Modify},
	{OpCode: 0xd4, Mnemonic: "*NOP", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Nop, Effect: Read},
	{OpCode: 0xd5, Mnemonic: "CMP", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Cmp, Effect: Read},
	{OpCode: 0xd6, Mnemonic: "DEC", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Dec, Effect: Modify},
	{OpCode: 0xd7, Mnemonic: "*DCP", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Dcp, Effect: Modify},
	{OpCode: 0xd8, Mnemonic: "CLD", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Cld, Effect: Read},
	{OpCode: 0xd9, Mnemonic: "CMP", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteY, Operator: Cmp, Effect: Read},
	{OpCode: 0xda, Mnemonic: "*NOP", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Nop, Effect: Read},
	{OpCode: 0xdb, Mnemonic: "*DCP", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteY, Operator: Dcp, Effect: Modify},
	{OpCode: 0xdc, Mnemonic: "*NOP", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteX, Operator: Nop, Effect: Read},
	{OpCode: 0xdd, Mnemonic: "CMP", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteX, Operator: Cmp, Effect: Read},
	{OpCode: 0xde, Mnemonic: "DEC", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteX, Operator: Dec, Effect: Modify},
	{OpCode: 0xdf, Mnemonic: "*DCP", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteX, Operator: Dcp, Effect: Modify},
	{OpCode: 0xe0, Mnemonic: "CPX", Bytes: 2, Cycles: 2, PageSensitive: false, AddressingMode: Immediate, Operator: Cpx, Effect: Read},
	{OpCode: 0xe1, Mnemonic: "SBC", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: IndirectX, Operator: Sbc, Effect: Read},
	{OpCode: 0xe2, Mnemonic: "*NOP", Bytes: 2, Cycles: 2, PageSensitive: false, AddressingMode: Immediate, Operator: Nop, Effect: Read},
	{OpCode: 0xe3, Mnemonic: "*ISC", Bytes: 2, Cycles: 8, PageSensitive: false, AddressingMode: IndirectX, Operator: Isc, Effect: Modify},
	{OpCode: 0xe4, Mnemonic: "CPX", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Cpx, Effect: Read},
	{OpCode: 0xe5, Mnemonic: "SBC", Bytes: 2, Cycles: 3, PageSensitive: false, AddressingMode: ZeroPage, Operator: Sbc, Effect: Read},
	{OpCode: 0xe6, Mnemonic: "INC", Bytes: 2, Cycles: 5, PageSensitive: false, AddressingMode: ZeroPage, Operator: Inc, Effect: Modify},
	{OpCode: 0xe7, Mnemonic: "*ISC", Bytes: 2, Cycles: 5, PageSensitive: false, AddressingMode: ZeroPage, Operator: Isc, Effect: Modify},
	{OpCode: 0xe8, Mnemonic: "INX", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Inx, Effect: Read},
	{OpCode: 0xe9, Mnemonic: "SBC", Bytes: 2, Cycles: 2, PageSensitive: false, AddressingMode: Immediate, Operator: Sbc, Effect: Read},
	{OpCode: 0xea, Mnemonic: "NOP", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Nop, Effect: Read},
	{OpCode: 0xeb, Mnemonic: "*SBC", Bytes: 2, Cycles: 2, PageSensitive: false, AddressingMode: Immediate, Operator: Sbc, Effect: Read},
	{OpCode: 0xec, Mnemonic: "CPX", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: Cpx, Effect: Read},
	{OpCode: 0xed, Mnemonic: "SBC", Bytes: 3, Cycles: 4, PageSensitive: false, AddressingMode: Absolute, Operator: Sbc, Effect: Read},
	{OpCode: 0xee, Mnemonic: "INC", Bytes: 3, Cycles: 6, PageSensitive: false, AddressingMode: Absolute, Operator: Inc, Effect: Modify},
	{OpCode: 0xef, Mnemonic: "*ISC", Bytes: 3, Cycles: 6, PageSensitive: false, AddressingMode: Absolute, Operator: Isc, Effect: Modify},
	{OpCode: 0xf0, Mnemonic: "BEQ", Bytes: 2, Cycles: 2, PageSensitive: true, AddressingMode: Relative, Operator: Beq, Effect: Flow},
	{OpCode: 0xf1, Mnemonic: "SBC", Bytes: 2, Cycles: 5, PageSensitive: true, AddressingMode: IndirectY, Operator: Sbc, Effect: Read},
	{OpCode: 0xf2, Mnemonic: "ILLEGAL", Bytes: 1, Cycles: 0, PageSensitive: false, AddressingMode: Illegal, Operator: IllegalOperator, Effect: Read},
	{OpCode: 0xf3, Mnemonic: "*ISC", Bytes: 2, Cycles: 8, PageSensitive: false, AddressingMode: IndirectY, Operator: Isc, Effect: Modify},
	{OpCode: 0xf4, Mnemonic: "*NOP", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Nop, Effect: Read},
	{OpCode: 0xf5, Mnemonic: "SBC", Bytes: 2, Cycles: 4, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Sbc, Effect: Read},
	{OpCode: 0xf6, Mnemonic: "INC", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Inc, Effect: Modify},
	{OpCode: 0xf7, Mnemonic: "*ISC", Bytes: 2, Cycles: 6, PageSensitive: false, AddressingMode: ZeroPageX, Operator: Isc, Effect: Modify},
	{OpCode: 0xf8, Mnemonic: "SED", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Sed, Effect: Read},
	{OpCode: 0xf9, Mnemonic: "SBC", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteY, Operator: Sbc, Effect: Read},
	{OpCode: 0xfa, Mnemonic: "*NOP", Bytes: 1, Cycles: 2, PageSensitive: false, AddressingMode: Implied, Operator: Nop, Effect: Read},
	{OpCode: 0xfb, Mnemonic: "*ISC", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteY, Operator: Isc, Effect: Modify},
	{OpCode: 0xfc, Mnemonic: "*NOP", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteX, Operator: Nop, Effect: Read},
	{OpCode: 0xfd, Mnemonic: "SBC", Bytes: 3, Cycles: 4, PageSensitive: true, AddressingMode: AbsoluteX, Operator: Sbc, Effect: Read},
	{OpCode: 0xfe, Mnemonic: "INC", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteX, Operator: Inc, Effect: Modify},
	{OpCode: 0xff, Mnemonic: "*ISC", Bytes: 3, Cycles: 7, PageSensitive: false, AddressingMode: AbsoluteX, Operator: Isc, Effect: Modify},
}
