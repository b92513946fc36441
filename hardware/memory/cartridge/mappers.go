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

package cartridge

// names of the mapper ids that are likely to be found in an iNES header.
var mapperNames = map[int]string{
	0:  "No mapper",
	1:  "Nintendo MMC1",
	2:  "CNROM switch",
	3:  "UNROM switch",
	4:  "Nintendo MMC3",
	5:  "Nintendo MMC5",
	6:  "FFE F4xxx",
	7:  "AOROM switch",
	8:  "FFE F3xxx",
	9:  "Nintendo MMC2",
	10: "Nintendo MMC4",
	11: "ColorDreams chip",
	12: "FFE F6xxx",
	13: "CPROM switch",
	15: "100-in-1 switch",
	16: "Bandai chip",
	17: "FFE F8xxx",
	18: "Jaleco SS8806 chip",
	19: "Namcot 106 chip",
	20: "Nintendo DiskSystem",
	21: "Konami VRC4a",
	22: "Konami VRC2a",
	23: "Konami VRC2a",
	24: "Konami VRC6",
	25: "Konami VRC4b",
	32: "Irem G-101 chip",
	33: "Taito TC0190/TC0350",
	34: "Nina-1 board",
	64: "Tengen RAMBO-1 chip",
	65: "Irem H-3001 chip",
	66: "GNROM switch",
	67: "SunSoft3 chip",
	68: "SunSoft4 chip",
	69: "SunSoft5 FME-7 chip",
	71: "Camerica chip",
	78: "Irem 74HC161/32-based",
	79: "AVE Nina-3 board",
	81: "AVE Nina-6 board",
	91: "Pirate HK-SF3 chip",
}

// MapperName returns the name of the mapper with the id. The string
// "UNKNOWN" is returned for unlisted ids.
func MapperName(id int) string {
	if n, ok := mapperNames[id]; ok {
		return n
	}
	return "UNKNOWN"
}
