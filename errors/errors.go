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

package errors

// the three error categories of the emulation core.
const (
	// bad iNES header, missing or truncated file, unsupported mapper or bank
	// configuration
	CartridgeError = "cartridge error: %v"

	// unmapped address, device offset out of range, stack overflow or
	// underflow, write to read-only memory
	MemoryError = "memory error: %v"

	// opcode with no operator or an addressing mode that cannot be resolved
	IllegalInstruction = "illegal instruction: %v"
)

// tooling errors.
const (
	// bad duration or profile, or failure to create a profile file
	PerformanceError = "performance error: %v"
)
