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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/ironnes/hardware/cpu/execution"
	"github.com/jetsetilly/ironnes/hardware/cpu/instructions"
	"github.com/jetsetilly/ironnes/test"
)

func TestValidity(t *testing.T) {
	var r execution.Result
	test.ExpectFailure(t, r.IsValid())

	// LDA abs,X
	r.Defn = instructions.Lookup(0xbd)
	r.Final = true
	r.Cycles = 4
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 5
	test.ExpectFailure(t, r.IsValid())
	r.PageFault = true
	test.ExpectSuccess(t, r.IsValid())

	// STA abs,X can't suffer a page fault
	r.Defn = instructions.Lookup(0x9d)
	test.ExpectFailure(t, r.IsValid())
	r.PageFault = false
	test.ExpectSuccess(t, r.IsValid())

	// BNE
	r.Reset()
	r.Defn = instructions.Lookup(0xd0)
	r.Final = true
	r.Cycles = 2
	test.ExpectSuccess(t, r.IsValid())
	r.Cycles = 3
	r.BranchSuccess = true
	test.ExpectSuccess(t, r.IsValid())
	r.Cycles = 4
	r.PageFault = true
	test.ExpectSuccess(t, r.IsValid())
	test.ExpectEquality(t, r.String(), "0000 BNE (4 cycles) [page fault] [branched]")
}
