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
	"fmt"

	"github.com/jetsetilly/ironnes/curated"
	"github.com/jetsetilly/ironnes/errors"
	"github.com/jetsetilly/ironnes/hardware/cpu/instructions"
	"github.com/jetsetilly/ironnes/hardware/cpu/registers"
	"github.com/jetsetilly/ironnes/hardware/memory/bus"
)

// Resolve the effective address for the addressing mode. The program counter
// in the registers should be pointing to the byte after the instruction.
// Operands are read backwards from the program counter.
//
// For the Accumulator and Immediate modes the result is a value and not an
// address.
func Resolve(mode instructions.AddressingMode, regs registers.Registers, mem bus.CPUBus) (uint16, error) {
	switch mode {
	case instructions.Accumulator:
		return uint16(regs.A), nil

	case instructions.Absolute:
		return bus.Read16(mem, regs.PC-2)

	case instructions.AbsoluteX:
		address, err := bus.Read16(mem, regs.PC-2)
		return address + uint16(regs.X), err

	case instructions.AbsoluteY:
		address, err := bus.Read16(mem, regs.PC-2)
		return address + uint16(regs.Y), err

	case instructions.Indirect:
		indirect, err := bus.Read16(mem, regs.PC-2)
		if err != nil {
			return 0, err
		}
		return bus.Read16(mem, indirect)

	case instructions.IndirectX:
		zp, err := mem.Read(regs.PC - 1)
		if err != nil {
			return 0, err
		}
		return bus.Read16(mem, uint16(zp+regs.X))

	case instructions.IndirectY:
		zp, err := mem.Read(regs.PC - 1)
		if err != nil {
			return 0, err
		}
		address, err := bus.Read16(mem, uint16(zp))
		return address + uint16(regs.Y), err

	case instructions.Immediate, instructions.ZeroPage:
		zp, err := mem.Read(regs.PC - 1)
		return uint16(zp), err

	case instructions.ZeroPageX:
		zp, err := mem.Read(regs.PC - 1)
		return uint16(zp + regs.X), err

	case instructions.ZeroPageY:
		zp, err := mem.Read(regs.PC - 1)
		return uint16(zp + regs.Y), err

	case instructions.Relative:
		offset, err := mem.Read(regs.PC - 1)
		return regs.PC + uint16(int16(int8(offset))), err
	}

	return 0, curated.Errorf(errors.IllegalInstruction, fmt.Sprintf("cannot resolve %s addressing", mode))
}

func (mc *CPU) resolve(defn instructions.Definition) (uint16, error) {
	return Resolve(defn.AddressingMode, mc.Regs, mc.mem)
}

// payPageCross adds a cycle if the effective address is on a different page
// to the address it was indexed from. For relative addressing the branch
// destination is compared with the program counter.
func (mc *CPU) payPageCross(defn instructions.Definition, address uint16) {
	if !defn.PageSensitive {
		return
	}

	var from uint16
	switch defn.AddressingMode {
	case instructions.Relative:
		from = mc.Regs.PC
	case instructions.AbsoluteX:
		from = address - uint16(mc.Regs.X)
	case instructions.AbsoluteY, instructions.IndirectY:
		from = address - uint16(mc.Regs.Y)
	default:
		from = address
	}

	if from&0xff00 != address&0xff00 {
		mc.addCycles(1)
		mc.LastResult.PageFault = true
	}
}

// fetchOperand returns the value the instruction operates on. For modes that
// address memory the value is read from memory, otherwise it is the low byte
// of the resolved address.
func (mc *CPU) fetchOperand(defn instructions.Definition, address uint16) (uint8, error) {
	mc.payPageCross(defn, address)
	if defn.AddressingMode.IsMemory() {
		return mc.mem.Read(address)
	}
	return uint8(address), nil
}

// resolveOperand is resolve() followed by fetchOperand(). The resolved
// address is returned alongside the operand.
func (mc *CPU) resolveOperand(defn instructions.Definition) (uint16, uint8, error) {
	address, err := mc.resolve(defn)
	if err != nil {
		return 0, 0, err
	}
	v, err := mc.fetchOperand(defn, address)
	return address, v, err
}
