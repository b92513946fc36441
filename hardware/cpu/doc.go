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

// Package cpu emulates the 6502 microprocessor found in the NES (the Ricoh
// 2A03). It implements all the documented instructions and the commonly used
// undocumented instructions. Binary coded decimal arithmetic is not
// supported because the 2A03 has the decimal circuitry disconnected.
//
// The CPU is instruction accurate but not cycle accurate. Each call to
// ExecuteInstruction() completes an entire instruction and the cycle count is
// advanced by the number of cycles the instruction would take on real
// hardware, including the page crossing and branching penalties.
//
// Memory is accessed through the bus.CPUBus interface. The CPU is not
// concerned with what is on the other side of the bus.
//
// The most recent instruction is recorded in LastResult. See the execution
// package for details.
package cpu
