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
	"github.com/jetsetilly/ironnes/hardware/cpu/execution"
	"github.com/jetsetilly/ironnes/hardware/cpu/instructions"
	"github.com/jetsetilly/ironnes/hardware/cpu/registers"
	"github.com/jetsetilly/ironnes/hardware/memory/addresses"
	"github.com/jetsetilly/ironnes/hardware/memory/bus"
	"github.com/jetsetilly/ironnes/logger"
)

// CPU implements the 6502 as found in the NES.
type CPU struct {
	Regs registers.Registers

	mem bus.CPUBus

	// total number of cycles executed since the last reset
	cycles int

	// LastResult is the result of the most recent instruction
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The registers are set to their power-on values.
func NewCPU(mem bus.CPUBus) *CPU {
	return &CPU{
		Regs: registers.NewRegisters(),
		mem:  mem,
	}
}

// Plumb CPU into a new memory bus.
func (mc *CPU) Plumb(mem bus.CPUBus) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return mc.Regs.String()
}

// Cycles returns the number of cycles executed since the last reset.
func (mc *CPU) Cycles() int {
	return mc.cycles
}

// Reset the CPU. The registers are put into their power-on state and the
// program counter is loaded from the reset vector.
func (mc *CPU) Reset() error {
	mc.cycles = 0
	mc.LastResult.Reset()
	mc.Regs = registers.NewRegisters()

	pc, err := bus.Read16(mc.mem, addresses.Reset)
	if err != nil {
		return curated.Errorf("cpu: reset: %v", err)
	}
	mc.Regs.PC = pc

	logger.Logf(logger.Allow, "cpu", "reset: PC set to $%04x", pc)

	return nil
}

// JSR sets the program counter to the address and charges the CPU for the
// cost of a JSR instruction. Nothing is pushed to the stack. This is useful
// for starting execution at a known address.
func (mc *CPU) JSR(address uint16) {
	mc.cycles += instructions.Lookup(0x20).Cycles
	mc.Regs.PC = address
}

// ExecuteInstruction steps the CPU forward one instruction. The definition of
// the executed instruction is returned.
func (mc *CPU) ExecuteInstruction() (instructions.Definition, error) {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.Regs.PC

	opcode, err := mc.mem.Read(mc.Regs.PC)
	if err != nil {
		return instructions.Definition{}, err
	}

	defn := instructions.Lookup(opcode)
	mc.LastResult.Defn = defn

	// the program counter points to the next instruction before the
	// operator is executed. addressing is relative to the new value
	mc.addCycles(defn.Cycles)
	mc.Regs.PC += uint16(defn.Bytes)

	err = mc.execute(defn)
	if err != nil {
		return defn, err
	}

	mc.LastResult.Final = true

	return defn, nil
}

func (mc *CPU) addCycles(n int) {
	mc.cycles += n
	mc.LastResult.Cycles += n
}

// LogState returns a single line summary of the instruction at the program
// counter and the state of the registers. The instruction is not executed.
func (mc *CPU) LogState() (string, error) {
	opcode, err := mc.peek(mc.Regs.PC)
	if err != nil {
		return "", err
	}
	defn := instructions.Lookup(opcode)

	var p1, p2 uint8
	if defn.Bytes > 1 {
		p1, err = mc.peek(mc.Regs.PC + 1)
		if err != nil {
			return "", err
		}
	}
	if defn.Bytes > 2 {
		p2, err = mc.peek(mc.Regs.PC + 2)
		if err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%04x %-28s %s CYC %d", mc.Regs.PC, defn.Disassemble(p1, p2), mc.Regs, mc.cycles), nil
}

// peek reads memory without side effects if the bus allows it.
func (mc *CPU) peek(address uint16) (uint8, error) {
	if dbg, ok := mc.mem.(bus.DebuggerBus); ok {
		return dbg.Peek(address)
	}
	return mc.mem.Read(address)
}

func illegal(defn instructions.Definition, address uint16) error {
	return curated.Errorf(errors.IllegalInstruction, fmt.Sprintf("opcode $%02x at $%04x", defn.OpCode, address))
}
