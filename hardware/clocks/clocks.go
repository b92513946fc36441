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

// Package clocks defines the constant values that define the speed of the
// CPU and PPU clocks in the NES console, and the rate at which television
// frames are produced.
//
// CPU and PPU clocks are in MHz. Frame rates are in Hz.
package clocks

const (
	NTSC = 1.789773
	PAL  = 1.662607
)

const (
	NTSC_PPU = NTSC * 3
	PAL_PPU  = PAL * 3.2
)

const (
	NTSC_FPS = 60.0988
	PAL_FPS  = 50.0070
)

// CyclesPerFrame returns the number of CPU cycles in one television frame,
// rounded to the nearest whole cycle.
func CyclesPerFrame(clock float64, fps float64) int {
	return int(clock*1000000/fps + 0.5)
}
