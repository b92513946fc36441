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
	"github.com/jetsetilly/ironnes/curated"
	"github.com/jetsetilly/ironnes/hardware/cpu/registers"
	"github.com/jetsetilly/ironnes/hardware/memory/addresses"
	"github.com/jetsetilly/ironnes/hardware/memory/bus"
	"github.com/jetsetilly/ironnes/logger"
)

// InterruptType distinguishes between the three ways the CPU can be
// interrupted.
type InterruptType int

// List of valid InterruptType values.
const (
	BRK InterruptType = iota
	IRQ
	NMI
)

func (it InterruptType) String() string {
	switch it {
	case BRK:
		return "BRK"
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	}
	return "unknown interrupt"
}

// the number of cycles taken to service a hardware interrupt. the cost of
// BRK is in the instruction definition.
const interruptCycles = 7

// Interrupt the CPU. The program counter and status register are pushed to
// the stack and the program counter is loaded from the interrupt's vector.
//
// An IRQ is ignored if the InterruptDisable flag is set.
func (mc *CPU) Interrupt(it InterruptType) error {
	if it == IRQ && mc.Regs.P.Get(registers.InterruptDisable) {
		logger.Log(logger.Allow, "cpu", "IRQ not allowed when I==1")
		return nil
	}

	// BRK has a padding byte after the opcode that the return address skips
	pc := mc.Regs.PC
	if it == BRK {
		pc++
	}

	err := bus.PushAddress(mc.mem, &mc.Regs.SP, pc)
	if err != nil {
		return curated.Errorf("cpu: %v: %v", it, err)
	}

	mc.Regs.P.Set(registers.Break, it == BRK)
	err = bus.Push(mc.mem, &mc.Regs.SP, mc.Regs.P.Value())
	if err != nil {
		return curated.Errorf("cpu: %v: %v", it, err)
	}
	mc.Regs.P.Set(registers.InterruptDisable, true)

	vector := addresses.IRQ
	if it == NMI {
		vector = addresses.NMI
	}
	mc.Regs.PC, err = bus.Read16(mc.mem, vector)
	if err != nil {
		return curated.Errorf("cpu: %v: %v", it, err)
	}

	if it != BRK {
		mc.cycles += interruptCycles
	}

	return nil
}
