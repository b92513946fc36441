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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/ironnes/curated"
	"github.com/jetsetilly/ironnes/errors"
	"github.com/jetsetilly/ironnes/hardware/cpu"
	"github.com/jetsetilly/ironnes/hardware/cpu/registers"
	"github.com/jetsetilly/ironnes/test"
)

func TestReset(t *testing.T) {
	mc, _ := newCPU(t)
	test.ExpectEquality(t, mc.Regs.PC, origin)
	test.ExpectEquality(t, mc.Regs.SP, registers.PowerOnSP)
	test.ExpectEquality(t, mc.Regs.P.Value(), registers.PowerOnStatus)
	test.ExpectEquality(t, mc.Cycles(), 0)

	mc.JSR(0xc000)
	test.ExpectEquality(t, mc.Regs.PC, 0xc000)
	test.ExpectEquality(t, mc.Cycles(), 6)
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := newCPU(t)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	mem.putInstructions(origin, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8, 0x08, 0x28)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Regs.P.String(), "nv-bdIzC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Regs.P.String(), "nv-bdIzc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Regs.P.String(), "nv-bdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Regs.P.String(), "nv-bdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Regs.P.String(), "nv-bDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Regs.P.String(), "nv-bdIzc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Regs.P.String(), "nv-bdIzc")

	// PHP always pushes the break bits
	step(t, mc) // PHP
	test.ExpectEquality(t, mc.Regs.SP, 0xfc)
	mem.assert(t, 0x01fd, 0x34)

	// mangle status register
	mc.Regs.P.Set(registers.Negative, true)
	mc.Regs.P.Set(registers.Overflow, true)

	// PLP restores everything but the break bits
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.Regs.SP, 0xfd)
	test.ExpectEquality(t, mc.Regs.P.Value(), 0x24)
}

func TestLoadAndStore(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA #$00; LDA #$80; LDX #$01; LDY #$02
	o := mem.putInstructions(origin, 0xa9, 0x00, 0xa9, 0x80, 0xa2, 0x01, 0xa0, 0x02)
	step(t, mc) // LDA #$00
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Zero), true)
	step(t, mc) // LDA #$80
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Zero), false)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Negative), true)
	step(t, mc) // LDX #$01
	test.ExpectEquality(t, mc.Regs.X, 0x01)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Negative), false)
	step(t, mc) // LDY #$02
	test.ExpectEquality(t, mc.Regs.Y, 0x02)

	// STA $10; STX $11; STY $0312
	o = mem.putInstructions(o, 0x85, 0x10, 0x86, 0x11, 0x8c, 0x12, 0x03)
	step(t, mc) // STA $10
	step(t, mc) // STX $11
	step(t, mc) // STY $0312
	mem.assert(t, 0x0010, 0x80)
	mem.assert(t, 0x0011, 0x01)
	mem.assert(t, 0x0312, 0x02)

	// LDA $10,X; TAX; TXS; TSX
	mem.putInstructions(o, 0xb5, 0x10, 0xaa, 0x9a, 0xa2, 0x00, 0xba)
	step(t, mc) // LDA $10,X
	test.ExpectEquality(t, mc.Regs.A, 0x01)
	step(t, mc) // TAX
	test.ExpectEquality(t, mc.Regs.X, 0x01)
	step(t, mc) // TXS
	test.ExpectEquality(t, mc.Regs.SP, 0x01)
	step(t, mc) // LDX #$00
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Zero), true)
	step(t, mc) // TSX
	test.ExpectEquality(t, mc.Regs.X, 0x01)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Zero), false)
}

func TestArithmetic(t *testing.T) {
	mc, mem := newCPU(t)

	// CLC; LDA #$50; ADC #$50; LDA #$ff; ADC #$01
	o := mem.putInstructions(origin, 0x18, 0xa9, 0x50, 0x69, 0x50, 0xa9, 0xff, 0x69, 0x01)
	step(t, mc) // CLC
	step(t, mc) // LDA #$50
	step(t, mc) // ADC #$50
	test.ExpectEquality(t, mc.Regs.A, 0xa0)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Overflow), true)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Carry), false)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Negative), true)
	step(t, mc) // LDA #$ff
	step(t, mc) // ADC #$01
	test.ExpectEquality(t, mc.Regs.A, 0x00)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Overflow), false)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Carry), true)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Zero), true)

	// SEC; LDA #$50; SBC #$f0; SEC; LDA #$50; SBC #$b0
	o = mem.putInstructions(o, 0x38, 0xa9, 0x50, 0xe9, 0xf0, 0x38, 0xa9, 0x50, 0xe9, 0xb0)
	step(t, mc) // SEC
	step(t, mc) // LDA #$50
	step(t, mc) // SBC #$f0
	test.ExpectEquality(t, mc.Regs.A, 0x60)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Carry), false)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Overflow), false)
	step(t, mc) // SEC
	step(t, mc) // LDA #$50
	step(t, mc) // SBC #$b0
	test.ExpectEquality(t, mc.Regs.A, 0xa0)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Carry), false)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Overflow), true)

	// the decimal flag has no effect
	// SED; CLC; LDA #$09; ADC #$01
	mem.putInstructions(o, 0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01)
	step(t, mc) // SED
	step(t, mc) // CLC
	step(t, mc) // LDA #$09
	step(t, mc) // ADC #$01
	test.ExpectEquality(t, mc.Regs.A, 0x0a)
}

func TestCompare(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA #$10; CMP #$10; CMP #$20; CMP #$05
	mem.putInstructions(origin, 0xa9, 0x10, 0xc9, 0x10, 0xc9, 0x20, 0xc9, 0x05)
	step(t, mc) // LDA #$10
	step(t, mc) // CMP #$10
	test.ExpectEquality(t, mc.Regs.P.String(), "nv-bdIZC")
	step(t, mc) // CMP #$20
	test.ExpectEquality(t, mc.Regs.P.String(), "Nv-bdIzc")
	step(t, mc) // CMP #$05
	test.ExpectEquality(t, mc.Regs.P.String(), "nv-bdIzC")
}

func TestBitwise(t *testing.T) {
	mc, mem := newCPU(t)
	mem.putInstructions(0x0040, 0xc0)

	// ORA #$ff; EOR #$f0; AND #$01; BIT $40; ASL A; LSR A; LSR A; ROL A; ROR A
	mem.putInstructions(origin, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01, 0x24, 0x40, 0x0a, 0x4a, 0x4a, 0x2a, 0x6a)
	step(t, mc) // ORA #$ff
	test.ExpectEquality(t, mc.Regs.A, 0xff)
	step(t, mc) // EOR #$f0
	test.ExpectEquality(t, mc.Regs.A, 0x0f)
	step(t, mc) // AND #$01
	test.ExpectEquality(t, mc.Regs.A, 0x01)
	step(t, mc) // BIT $40
	test.ExpectEquality(t, mc.Regs.P.String(), "NV-bdIZc")
	step(t, mc) // ASL A
	test.ExpectEquality(t, mc.Regs.A, 0x02)
	step(t, mc) // LSR A
	test.ExpectEquality(t, mc.Regs.A, 0x01)
	step(t, mc) // LSR A
	test.ExpectEquality(t, mc.Regs.A, 0x00)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Carry), true)
	step(t, mc) // ROL A
	test.ExpectEquality(t, mc.Regs.A, 0x01)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Carry), false)
	step(t, mc) // ROR A
	test.ExpectEquality(t, mc.Regs.A, 0x00)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Carry), true)
}

func TestReadModifyWrite(t *testing.T) {
	mc, mem := newCPU(t)
	mem.putInstructions(0x0010, 0x05, 0x81)

	// INC $10; DEC $10; DEC $10; ASL $11; ROR $11
	mem.putInstructions(origin, 0xe6, 0x10, 0xc6, 0x10, 0xc6, 0x10, 0x06, 0x11, 0x66, 0x11)
	step(t, mc) // INC $10
	mem.assert(t, 0x0010, 0x06)
	step(t, mc) // DEC $10
	step(t, mc) // DEC $10
	mem.assert(t, 0x0010, 0x04)
	step(t, mc) // ASL $11
	mem.assert(t, 0x0011, 0x02)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Carry), true)
	step(t, mc) // ROR $11
	mem.assert(t, 0x0011, 0x81)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Carry), false)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Negative), true)
}

func TestUndocumented(t *testing.T) {
	mc, mem := newCPU(t)
	mem.putInstructions(0x0010, 0x05)

	// LDA #$04; DCP $10; ISC $10; LAX $10; LDA #$0f; SAX $11
	mem.putInstructions(origin, 0xa9, 0x04, 0xc7, 0x10, 0xe7, 0x10, 0xa7, 0x10, 0xa9, 0x0f, 0x87, 0x11)
	step(t, mc) // LDA #$04
	step(t, mc) // DCP $10
	mem.assert(t, 0x0010, 0x04)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Zero), true)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Carry), true)
	step(t, mc) // ISC $10
	mem.assert(t, 0x0010, 0x05)
	test.ExpectEquality(t, mc.Regs.A, 0xff)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Carry), false)
	step(t, mc) // LAX $10
	test.ExpectEquality(t, mc.Regs.A, 0x05)
	test.ExpectEquality(t, mc.Regs.X, 0x05)
	step(t, mc) // LDA #$0f
	step(t, mc) // SAX $11
	mem.assert(t, 0x0011, 0x05)
}

func TestBranching(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA #$01; BNE +2
	mem.putInstructions(origin, 0xa9, 0x01, 0xd0, 0x02)
	step(t, mc) // LDA #$01
	step(t, mc) // BNE +2
	test.ExpectEquality(t, mc.Regs.PC, 0x0606)
	test.ExpectEquality(t, mc.LastResult.Cycles, 3)
	test.ExpectEquality(t, mc.LastResult.BranchSuccess, true)

	// BEQ +5; JMP $06fc
	mem.putInstructions(0x0606, 0xf0, 0x05, 0x4c, 0xfc, 0x06)
	step(t, mc) // BEQ +5
	test.ExpectEquality(t, mc.Regs.PC, 0x0608)
	test.ExpectEquality(t, mc.LastResult.Cycles, 2)
	test.ExpectEquality(t, mc.LastResult.BranchSuccess, false)
	step(t, mc) // JMP $06fc
	test.ExpectEquality(t, mc.Regs.PC, 0x06fc)

	// BNE +16 crosses into the next page
	mem.putInstructions(0x06fc, 0xd0, 0x10)
	step(t, mc) // BNE +16
	test.ExpectEquality(t, mc.Regs.PC, 0x070e)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)

	// BNE -16 stays in the page
	mem.putInstructions(0x070e, 0xd0, 0xf0)
	step(t, mc) // BNE -16
	test.ExpectEquality(t, mc.Regs.PC, 0x0700)
	test.ExpectEquality(t, mc.LastResult.Cycles, 3)
}

func TestPageCrossing(t *testing.T) {
	mc, mem := newCPU(t)
	mem.putInstructions(0x0020, 0xff, 0x06)

	// LDX #$01; LDA $06ff,X; LDA $0600,X; STA $06ff,X; LDY #$01; LDA ($20),Y
	mem.putInstructions(origin, 0xa2, 0x01, 0xbd, 0xff, 0x06, 0xbd, 0x00, 0x06, 0x9d, 0xff, 0x06, 0xa0, 0x01, 0xb1, 0x20)
	step(t, mc) // LDX #$01
	step(t, mc) // LDA $06ff,X
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)
	step(t, mc) // LDA $0600,X
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)
	test.ExpectEquality(t, mc.LastResult.PageFault, false)
	step(t, mc) // STA $06ff,X
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
	test.ExpectEquality(t, mc.LastResult.PageFault, false)
	step(t, mc) // LDY #$01
	step(t, mc) // LDA ($20),Y
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)

	test.ExpectEquality(t, mc.Cycles(), 2+5+4+5+2+6)
}

func TestSubroutine(t *testing.T) {
	mc, mem := newCPU(t)

	// JSR $0700; RTS
	mem.putInstructions(origin, 0x20, 0x00, 0x07)
	mem.putInstructions(0x0700, 0x60)
	step(t, mc) // JSR $0700
	test.ExpectEquality(t, mc.Regs.PC, 0x0700)
	test.ExpectEquality(t, mc.Regs.SP, 0xfb)
	mem.assert(t, 0x01fd, 0x06)
	mem.assert(t, 0x01fc, 0x02)
	step(t, mc) // RTS
	test.ExpectEquality(t, mc.Regs.PC, 0x0603)
	test.ExpectEquality(t, mc.Regs.SP, 0xfd)
}

func TestBreak(t *testing.T) {
	mc, mem := newCPU(t)

	// BRK; RTI
	mem.putInstructions(origin, 0x00)
	mem.putInstructions(irqOrigin, 0x40)
	step(t, mc) // BRK
	test.ExpectEquality(t, mc.Regs.PC, irqOrigin)
	test.ExpectEquality(t, mc.Regs.SP, 0xfa)
	test.ExpectEquality(t, mc.Cycles(), 7)
	mem.assert(t, 0x01fd, 0x06)
	mem.assert(t, 0x01fc, 0x02)
	mem.assert(t, 0x01fb, 0x34)
	step(t, mc) // RTI
	test.ExpectEquality(t, mc.Regs.PC, 0x0602)
	test.ExpectEquality(t, mc.Regs.SP, 0xfd)
}

func TestInterrupts(t *testing.T) {
	mc, mem := newCPU(t)

	// IRQ is ignored while the InterruptDisable flag is set
	test.ExpectSuccess(t, mc.Interrupt(cpu.IRQ))
	test.ExpectEquality(t, mc.Regs.PC, origin)
	test.ExpectEquality(t, mc.Regs.SP, registers.PowerOnSP)

	// CLI
	mem.putInstructions(origin, 0x58)
	step(t, mc)
	test.ExpectSuccess(t, mc.Interrupt(cpu.IRQ))
	test.ExpectEquality(t, mc.Regs.PC, irqOrigin)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.InterruptDisable), true)
	test.ExpectEquality(t, mc.Regs.P.Get(registers.Break), false)
	test.ExpectEquality(t, mc.Cycles(), 2+7)
	mem.assert(t, 0x01fb, 0x20)

	// NMI can't be disabled
	test.ExpectSuccess(t, mc.Interrupt(cpu.NMI))
	test.ExpectEquality(t, mc.Regs.PC, nmiOrigin)
	test.ExpectEquality(t, mc.Regs.SP, 0xf7)
}

func TestErrors(t *testing.T) {
	mc, mem := newCPU(t)

	// illegal opcode
	mem.putInstructions(origin, 0x02)
	_, err := mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, errors.IllegalInstruction))
	test.ExpectFailure(t, mc.LastResult.IsValid())

	// stack overflow
	mc, mem = newCPU(t)
	mem.putInstructions(origin, 0x48)
	mc.Regs.SP = 0x00
	_, err = mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, errors.MemoryError))

	// stack underflow
	mc, mem = newCPU(t)
	mem.putInstructions(origin, 0x68)
	mc.Regs.SP = 0xff
	_, err = mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, errors.MemoryError))

	// failed write
	mc, mem = newCPU(t)
	mem.putInstructions(origin, 0x8d, 0x00, 0xff)
	_, err = mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, errors.MemoryError))
}

func TestLogState(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA #$01
	mem.putInstructions(origin, 0xa9, 0x01)
	s, err := mc.LogState()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "0600 a9 01    LDA #$01            PC 0600 SP fd A 00 X 00 Y 00 P 24 CYC 0")

	// the instruction is not executed
	test.ExpectEquality(t, mc.Regs.PC, origin)
}
