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

// Package logger is the central logging facility for the emulation. Log
// entries are a tag and a detail string. Repeated entries are collapsed into
// a single entry with a repeat count and the number of entries is capped so
// that the oldest entries are dropped first.
//
// Most packages use the package level functions, which operate on a single
// central logger:
//
//	logger.Logf(logger.Allow, "CPU", "IRQ not allowed when I==1 (PC %04x)", pc)
//
// The Permission argument allows a caller to suppress logging without
// testing a condition at every call site. logger.Allow always permits
// logging.
package logger
