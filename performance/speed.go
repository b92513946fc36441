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

package performance

// CalcSpeed returns the effective clock speed in MHz of the emulation for the
// number of cycles executed over the duration (in seconds). The accuracy
// value is a percentage of the clock speed of the real hardware.
func CalcSpeed(clock float64, numCycles int, duration float64) (mhz float64, accuracy float64) {
	if duration <= 0 || clock <= 0 {
		return 0, 0
	}
	mhz = float64(numCycles) / duration / 1000000
	accuracy = 100 * mhz / clock
	return mhz, accuracy
}
