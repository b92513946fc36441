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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/ironnes/curated"
	"github.com/jetsetilly/ironnes/hardware/cpu/instructions"
)

// Step the emulator state one CPU instruction. If tracing is enabled the
// trace line is written before the instruction is executed.
func (nes *NES) Step() (instructions.Definition, error) {
	if nes.trace != nil {
		s, err := nes.CPU.LogState()
		if err != nil {
			return instructions.Definition{}, curated.Errorf("nes: %v", err)
		}
		fmt.Fprintln(nes.trace, s)
	}

	defn, err := nes.CPU.ExecuteInstruction()
	if err != nil {
		return defn, curated.Errorf("nes: %v", err)
	}

	return defn, nil
}
