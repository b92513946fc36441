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

package clocks_test

import (
	"testing"

	"github.com/jetsetilly/ironnes/hardware/clocks"
	"github.com/jetsetilly/ironnes/test"
)

func TestCyclesPerFrame(t *testing.T) {
	test.ExpectEquality(t, clocks.CyclesPerFrame(clocks.NTSC, clocks.NTSC_FPS), 29781)
	test.ExpectEquality(t, clocks.CyclesPerFrame(clocks.PAL, clocks.PAL_FPS), 33247)
	test.ExpectApproximate(t, clocks.NTSC_PPU, 5.369, 0.001)
}
