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

// Package test contains helper functions for the package tests.
//
// The Expect*() functions report a failed expectation with t.Errorf() and
// the test continues. The Demand*() functions report with t.Fatalf() and
// the test stops.
//
// Values passed to ExpectSuccess() and ExpectFailure() can be of type bool
// or error (nil being a successful error value).
package test
