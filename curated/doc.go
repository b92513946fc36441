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

// Package curated wraps the plain Go error type with a pattern based
// approach. An error is created with Errorf(), which records the formatting
// pattern and the values but does not format them until Error() is called.
//
// The pattern is the identity of the error. Is() checks the outermost
// pattern and Has() searches the whole chain of wrapped curated errors:
//
//	e := curated.Errorf("memory error: %v", "stack overflow")
//	f := curated.Errorf("nes: %v", e)
//
//	curated.Is(f, "memory error: %v")  // false
//	curated.Has(f, "memory error: %v") // true
//
// Error() normalises the message so that adjacent duplicate parts are
// removed. A function can therefore wrap an error with its own prefix
// without worrying whether a callee has used the same prefix.
package curated
