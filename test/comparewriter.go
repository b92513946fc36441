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

package test

import "strings"

// CompareWriter is an io.Writer that collects everything written to it so
// that it can be compared against an expected string. Useful for testing
// output that is destined for a terminal or a log file.
type CompareWriter struct {
	buffer strings.Builder
}

func (cw *CompareWriter) Write(p []byte) (n int, err error) {
	return cw.buffer.Write(p)
}

// Clear the buffer of previously written content.
func (cw *CompareWriter) Clear() {
	cw.buffer.Reset()
}

// Compare buffered output with the expected string.
func (cw *CompareWriter) Compare(s string) bool {
	return s == cw.buffer.String()
}

// Lines returns the buffered output split into lines. A trailing newline
// does not result in an empty final line.
func (cw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(cw.buffer.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (cw *CompareWriter) String() string {
	return cw.buffer.String()
}
