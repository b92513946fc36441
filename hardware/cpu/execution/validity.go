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

import "github.com/jetsetilly/ironnes/curated"

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && r.PageFault {
		return curated.Errorf("cpu: unexpected page fault")
	}

	if !r.Defn.IsBranch() && r.BranchSuccess {
		return curated.Errorf("cpu: unexpected branch for a non-branch instruction")
	}

	// cycle count. taken branches cost one cycle more and another if the
	// branch crosses a page
	extra := 0
	if r.BranchSuccess {
		extra++
	}
	if r.PageFault {
		extra++
	}

	if r.Cycles != r.Defn.Cycles+extra {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode,
			r.Defn.Mnemonic,
			r.Cycles,
			r.Defn.Cycles+extra)
	}

	return nil
}
