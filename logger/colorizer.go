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

package logger

import (
	"bytes"
	"io"
)

const (
	penTag    = "\033[2m"
	penNormal = "\033[0m"
)

// Colorizer wraps an io.Writer and dims the tag portion of every log line
// written through it. For use with SetEcho() when the output is a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

func (c Colorizer) Write(p []byte) (int, error) {
	var b bytes.Buffer

	for line := range bytes.Lines(p) {
		tag, detail, ok := bytes.Cut(line, []byte(": "))
		if !ok {
			b.Write(line)
			continue
		}
		b.WriteString(penTag)
		b.Write(tag)
		b.WriteString(penNormal)
		b.WriteString(": ")
		b.Write(detail)
	}

	if _, err := c.out.Write(b.Bytes()); err != nil {
		return 0, err
	}

	return len(p), nil
}
