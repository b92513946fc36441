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

package execution

import (
	"fmt"

	"github.com/jetsetilly/ironnes/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a copy of the instruction definition for the opcode
	Defn instructions.Definition

	// the actual number of cycles taken by the instruction, including any
	// page crossing and branching penalties
	Cycles int

	// whether the page crossing penalty was paid
	PageFault bool

	// whether a branch instruction took the branch
	BranchSuccess bool

	// whether the instruction has completed
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if !r.Final {
		return fmt.Sprintf("%04x %s (not final)", r.Address, r.Defn.Mnemonic)
	}

	s := fmt.Sprintf("%04x %s (%d cycles)", r.Address, r.Defn.Mnemonic, r.Cycles)
	if r.PageFault {
		s = fmt.Sprintf("%s [page fault]", s)
	}
	if r.Defn.IsBranch() && r.BranchSuccess {
		s = fmt.Sprintf("%s [branched]", s)
	}
	return s
}
