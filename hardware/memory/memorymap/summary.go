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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a table of the CPU address space for the ROM origin, one
// line per contiguous area.
func Summary(romOrigin uint16) string {
	s := strings.Builder{}

	_, current := MapCPU(0, romOrigin)
	start := 0

	for a := 1; a <= 0x10000; a++ {
		var area Area
		if a < 0x10000 {
			_, area = MapCPU(uint16(a), romOrigin)
			if area == current {
				continue
			}
		}

		fmt.Fprintf(&s, "%04x -> %04x\t%s\n", start, a-1, current)
		current = area
		start = a
	}

	return s.String()
}
