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

// Package errors lists the curated error patterns used by the emulation.
// Errors are created with curated.Errorf() using one of these patterns and
// tested for with curated.Is() or curated.Has().
//
//	err := curated.Errorf(errors.MemoryError, "stack overflow")
//	if curated.Has(err, errors.MemoryError) {
//		...
//	}
package errors
