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

// Package performance is used to test the speed of the emulation core.
//
// The Check() function runs a cartridge for a specified duration and reports
// the effective clock speed of the CPU compared with the speed of the real
// hardware.
//
// The RunProfiler() function can be used to wrap any function with the Go
// runtime profilers. Profiles are written to the current working directory.
package performance
