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

package instructions

// Category describes the effect an instruction has on the emulated machine.
type Category int

// List of valid Category values.
const (
	Read Category = iota
	Write
	Modify
	Flow
	Subroutine
	Interrupt
)

func (e Category) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Modify:
		return "Modify"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}

// ParseCategory converts the effect field of the instruction CSV files to a
// Category. The empty string is treated as READ.
func ParseCategory(s string) (Category, bool) {
	switch s {
	case "", "READ":
		return Read, true
	case "WRITE":
		return Write, true
	case "RMW":
		return Modify, true
	case "FLOW":
		return Flow, true
	case "SUB-ROUTINE":
		return Subroutine, true
	case "INTERRUPT":
		return Interrupt, true
	}
	return Read, false
}
