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

package cpu

import (
	"github.com/jetsetilly/ironnes/hardware/cpu/instructions"
	"github.com/jetsetilly/ironnes/hardware/cpu/registers"
	"github.com/jetsetilly/ironnes/hardware/memory/bus"
	"github.com/jetsetilly/ironnes/logger"
)

// execute the operator of the instruction. the program counter has already
// been advanced past the instruction.
func (mc *CPU) execute(defn instructions.Definition) error {
	switch defn.Operator {
	case instructions.Nop:
		// the only NOP that can suffer a page fault
		if defn.AddressingMode == instructions.AbsoluteX {
			address, err := mc.resolve(defn)
			if err != nil {
				return err
			}
			mc.payPageCross(defn, address)
		}

	// flags
	case instructions.Clc:
		mc.Regs.P.Set(registers.Carry, false)
	case instructions.Sec:
		mc.Regs.P.Set(registers.Carry, true)
	case instructions.Cli:
		mc.Regs.P.Set(registers.InterruptDisable, false)
	case instructions.Sei:
		mc.Regs.P.Set(registers.InterruptDisable, true)
	case instructions.Cld:
		mc.Regs.P.Set(registers.Decimal, false)
	case instructions.Sed:
		mc.Regs.P.Set(registers.Decimal, true)
	case instructions.Clv:
		mc.Regs.P.Set(registers.Overflow, false)

	// transfers
	case instructions.Tax:
		mc.Regs.X = mc.Regs.A
		mc.setZN(mc.Regs.X)
	case instructions.Tay:
		mc.Regs.Y = mc.Regs.A
		mc.setZN(mc.Regs.Y)
	case instructions.Txa:
		mc.Regs.A = mc.Regs.X
		mc.setZN(mc.Regs.A)
	case instructions.Tya:
		mc.Regs.A = mc.Regs.Y
		mc.setZN(mc.Regs.A)
	case instructions.Tsx:
		mc.Regs.X = uint8(mc.Regs.SP)
		mc.setZN(mc.Regs.X)
	case instructions.Txs:
		mc.Regs.SP = uint16(mc.Regs.X)

	// increment and decrement registers
	case instructions.Inx:
		mc.Regs.X++
		mc.setZN(mc.Regs.X)
	case instructions.Iny:
		mc.Regs.Y++
		mc.setZN(mc.Regs.Y)
	case instructions.Dex:
		mc.Regs.X--
		mc.setZN(mc.Regs.X)
	case instructions.Dey:
		mc.Regs.Y--
		mc.setZN(mc.Regs.Y)

	// stack
	case instructions.Pha:
		return bus.Push(mc.mem, &mc.Regs.SP, mc.Regs.A)
	case instructions.Php:
		return bus.Push(mc.mem, &mc.Regs.SP, mc.Regs.P.Value()|registers.BreakBits)
	case instructions.Pla:
		v, err := bus.Pop(mc.mem, &mc.Regs.SP)
		if err != nil {
			return err
		}
		mc.Regs.A = v
		mc.setZN(mc.Regs.A)
	case instructions.Plp:
		return mc.pullStatus()

	// loads
	case instructions.Lda:
		return mc.lda(defn)
	case instructions.Ldx:
		_, v, err := mc.resolveOperand(defn)
		if err != nil {
			return err
		}
		mc.Regs.X = v
		mc.setZN(mc.Regs.X)
	case instructions.Ldy:
		_, v, err := mc.resolveOperand(defn)
		if err != nil {
			return err
		}
		mc.Regs.Y = v
		mc.setZN(mc.Regs.Y)
	case instructions.Lax:
		err := mc.lda(defn)
		if err != nil {
			return err
		}
		mc.Regs.X = mc.Regs.A

	// stores
	case instructions.Sta:
		return mc.store(defn, mc.Regs.A)
	case instructions.Stx:
		return mc.store(defn, mc.Regs.X)
	case instructions.Sty:
		return mc.store(defn, mc.Regs.Y)
	case instructions.Sax:
		return mc.store(defn, mc.Regs.A&mc.Regs.X)

	// logic
	case instructions.And:
		return mc.and(defn)
	case instructions.Ora:
		return mc.ora(defn)
	case instructions.Eor:
		return mc.eor(defn)
	case instructions.Bit:
		address, err := mc.resolve(defn)
		if err != nil {
			return err
		}
		v, err := mc.mem.Read(address)
		if err != nil {
			return err
		}
		mc.Regs.P.Set(registers.Zero, mc.Regs.A&v == 0)
		mc.Regs.P.Set(registers.Overflow, v&0x40 == 0x40)
		mc.Regs.P.Set(registers.Negative, v&0x80 == 0x80)

	// arithmetic
	case instructions.Adc:
		return mc.adc(defn)
	case instructions.Sbc:
		return mc.sbc(defn)
	case instructions.Cmp:
		return mc.compare(defn, mc.Regs.A)
	case instructions.Cpx:
		return mc.compare(defn, mc.Regs.X)
	case instructions.Cpy:
		return mc.compare(defn, mc.Regs.Y)

	// read-modify-write
	case instructions.Inc:
		return mc.incdec(defn, 1)
	case instructions.Dec:
		return mc.incdec(defn, 0xff)
	case instructions.Asl:
		return mc.asl(defn)
	case instructions.Lsr:
		return mc.lsr(defn)
	case instructions.Rol:
		return mc.rol(defn)
	case instructions.Ror:
		return mc.ror(defn)

	// undocumented read-modify-write instructions. these are performed as
	// two separate instructions, each resolving the address independently
	case instructions.Dcp:
		if err := mc.incdec(defn, 0xff); err != nil {
			return err
		}
		return mc.compare(defn, mc.Regs.A)
	case instructions.Isc:
		if err := mc.incdec(defn, 1); err != nil {
			return err
		}
		return mc.sbc(defn)
	case instructions.Slo:
		if err := mc.asl(defn); err != nil {
			return err
		}
		return mc.ora(defn)
	case instructions.Rla:
		if err := mc.rol(defn); err != nil {
			return err
		}
		return mc.and(defn)
	case instructions.Rra:
		if err := mc.ror(defn); err != nil {
			return err
		}
		return mc.adc(defn)
	case instructions.Sre:
		if err := mc.lsr(defn); err != nil {
			return err
		}
		return mc.eor(defn)

	// branches
	case instructions.Bcc:
		return mc.branch(defn, !mc.Regs.P.Get(registers.Carry))
	case instructions.Bcs:
		return mc.branch(defn, mc.Regs.P.Get(registers.Carry))
	case instructions.Bne:
		return mc.branch(defn, !mc.Regs.P.Get(registers.Zero))
	case instructions.Beq:
		return mc.branch(defn, mc.Regs.P.Get(registers.Zero))
	case instructions.Bpl:
		return mc.branch(defn, !mc.Regs.P.Get(registers.Negative))
	case instructions.Bmi:
		return mc.branch(defn, mc.Regs.P.Get(registers.Negative))
	case instructions.Bvc:
		return mc.branch(defn, !mc.Regs.P.Get(registers.Overflow))
	case instructions.Bvs:
		return mc.branch(defn, mc.Regs.P.Get(registers.Overflow))

	// flow
	case instructions.Jmp:
		address, err := mc.resolve(defn)
		if err != nil {
			return err
		}
		mc.Regs.PC = address
	case instructions.Jsr:
		address, err := mc.resolve(defn)
		if err != nil {
			return err
		}
		err = bus.PushAddress(mc.mem, &mc.Regs.SP, mc.Regs.PC-1)
		if err != nil {
			return err
		}
		mc.Regs.PC = address
	case instructions.Rts:
		address, err := bus.PopAddress(mc.mem, &mc.Regs.SP)
		if err != nil {
			return err
		}
		mc.Regs.PC = address + 1
	case instructions.Rti:
		if err := mc.pullStatus(); err != nil {
			return err
		}
		address, err := bus.PopAddress(mc.mem, &mc.Regs.SP)
		if err != nil {
			return err
		}
		mc.Regs.PC = address
	case instructions.Brk:
		return mc.Interrupt(BRK)

	default:
		return illegal(defn, mc.LastResult.Address)
	}

	return nil
}

func (mc *CPU) setZN(v uint8) {
	mc.Regs.P.UpdateZero(uint16(v))
	mc.Regs.P.UpdateNegative(uint16(v))
}

// pullStatus pops the status register from the stack. the break bits are
// not affected.
func (mc *CPU) pullStatus() error {
	v, err := bus.Pop(mc.mem, &mc.Regs.SP)
	if err != nil {
		return err
	}
	mc.Regs.P.Load(v&^registers.BreakBits | mc.Regs.P.Value()&registers.BreakBits)
	return nil
}

func (mc *CPU) lda(defn instructions.Definition) error {
	_, v, err := mc.resolveOperand(defn)
	if err != nil {
		return err
	}
	mc.Regs.A = v
	mc.setZN(mc.Regs.A)
	return nil
}

func (mc *CPU) store(defn instructions.Definition, v uint8) error {
	address, err := mc.resolve(defn)
	if err != nil {
		return err
	}
	return mc.mem.Write(address, v)
}

func (mc *CPU) and(defn instructions.Definition) error {
	_, v, err := mc.resolveOperand(defn)
	if err != nil {
		return err
	}
	mc.Regs.A &= v
	mc.setZN(mc.Regs.A)
	return nil
}

func (mc *CPU) ora(defn instructions.Definition) error {
	_, v, err := mc.resolveOperand(defn)
	if err != nil {
		return err
	}
	mc.Regs.A |= v
	mc.setZN(mc.Regs.A)
	return nil
}

func (mc *CPU) eor(defn instructions.Definition) error {
	_, v, err := mc.resolveOperand(defn)
	if err != nil {
		return err
	}
	mc.Regs.A ^= v
	mc.setZN(mc.Regs.A)
	return nil
}

func (mc *CPU) checkDecimal() {
	if mc.Regs.P.Get(registers.Decimal) {
		logger.Log(logger.Allow, "cpu", "BCD not supported on NES, using binary arithmetic")
	}
}

func (mc *CPU) adc(defn instructions.Definition) error {
	_, v, err := mc.resolveOperand(defn)
	if err != nil {
		return err
	}
	mc.checkDecimal()

	a := mc.Regs.A
	sum := uint16(a) + uint16(v)
	if mc.Regs.P.Get(registers.Carry) {
		sum++
	}

	// overflow if the operands have the same sign and the sign of the
	// result is different
	mc.Regs.P.Set(registers.Overflow, (a^v)&0x80 == 0 && (a^uint8(sum))&0x80 != 0)
	mc.Regs.P.Set(registers.Carry, sum > 0xff)
	mc.Regs.A = uint8(sum)
	mc.setZN(mc.Regs.A)
	return nil
}

func (mc *CPU) sbc(defn instructions.Definition) error {
	_, v, err := mc.resolveOperand(defn)
	if err != nil {
		return err
	}
	mc.checkDecimal()

	a := mc.Regs.A
	diff := int16(a) - int16(v)
	if !mc.Regs.P.Get(registers.Carry) {
		diff--
	}
	sum := uint16(diff)

	// overflow if the operands have different signs and the sign of the
	// result is different to the accumulator
	mc.Regs.P.Set(registers.Overflow, (a^v)&0x80 != 0 && (a^uint8(sum))&0x80 != 0)
	mc.Regs.P.Set(registers.Carry, sum < 0x100)
	mc.Regs.A = uint8(sum)
	mc.setZN(mc.Regs.A)
	return nil
}

func (mc *CPU) compare(defn instructions.Definition, r uint8) error {
	_, v, err := mc.resolveOperand(defn)
	if err != nil {
		return err
	}
	diff := uint16(int16(r) - int16(v))
	mc.Regs.P.Set(registers.Carry, diff < 0x100)
	mc.Regs.P.UpdateZero(diff)
	mc.Regs.P.UpdateNegative(diff)
	return nil
}

// incdec adds delta to the value in memory. a delta of 0xff decrements.
func (mc *CPU) incdec(defn instructions.Definition, delta uint8) error {
	address, v, err := mc.resolveOperand(defn)
	if err != nil {
		return err
	}
	v += delta
	mc.setZN(v)
	return mc.mem.Write(address, v)
}

// modify reads the operand, applies the function and writes the result back
// to the accumulator or to memory depending on the addressing mode. the
// carry flag is set by the function.
func (mc *CPU) modify(defn instructions.Definition, f func(v uint8) (uint8, bool)) error {
	address, v, err := mc.resolveOperand(defn)
	if err != nil {
		return err
	}

	v, carry := f(v)
	mc.Regs.P.Set(registers.Carry, carry)
	mc.setZN(v)

	if defn.AddressingMode == instructions.Accumulator {
		mc.Regs.A = v
		return nil
	}
	return mc.mem.Write(address, v)
}

func (mc *CPU) asl(defn instructions.Definition) error {
	return mc.modify(defn, func(v uint8) (uint8, bool) {
		return v << 1, v&0x80 == 0x80
	})
}

func (mc *CPU) lsr(defn instructions.Definition) error {
	return mc.modify(defn, func(v uint8) (uint8, bool) {
		return v >> 1, v&0x01 == 0x01
	})
}

func (mc *CPU) rol(defn instructions.Definition) error {
	var in uint8
	if mc.Regs.P.Get(registers.Carry) {
		in = 0x01
	}
	return mc.modify(defn, func(v uint8) (uint8, bool) {
		return v<<1 | in, v&0x80 == 0x80
	})
}

func (mc *CPU) ror(defn instructions.Definition) error {
	var in uint8
	if mc.Regs.P.Get(registers.Carry) {
		in = 0x80
	}
	return mc.modify(defn, func(v uint8) (uint8, bool) {
		return v>>1 | in, v&0x01 == 0x01
	})
}

// branch to the resolved address if the condition is true. a taken branch
// costs an extra cycle and another if it crosses a page.
func (mc *CPU) branch(defn instructions.Definition, condition bool) error {
	if !condition {
		return nil
	}

	address, err := mc.resolve(defn)
	if err != nil {
		return err
	}

	mc.addCycles(1)
	mc.payPageCross(defn, address)
	mc.Regs.PC = address
	mc.LastResult.BranchSuccess = true

	return nil
}
