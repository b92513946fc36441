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

// Package rbits contains the bit containers used to model 8-bit hardware
// registers.
//
// BitSet is a plain byte with independent access to each of its eight bits.
// BiasedBitSet additionally allows bits to be pinned to zero or one, which
// models register bits that are grounded or otherwise fixed in hardware.
// Stores to a BiasedBitSet are masked by the bias before being kept.
package rbits
