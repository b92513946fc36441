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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer) error {
	_, err := fmt.Fprintf(output, "; NMI $%04x  RESET $%04x  IRQ $%04x\n", dsm.NMI, dsm.Reset, dsm.IRQ)
	if err != nil {
		return err
	}

	for _, e := range dsm.Entries {
		_, err = fmt.Fprintln(output, e.String())
		if err != nil {
			return err
		}
	}

	return nil
}

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepMnemonic GrepScope = iota
	GrepOperand
	GrepAll
)

// Grep searches the disassembly for the specified search string and writes
// matching entries to io.Writer.
func (dsm *Disassembly) Grep(output io.Writer, scope GrepScope, search string, caseSensitive bool) error {
	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	for _, e := range dsm.Entries {
		var s string

		switch scope {
		case GrepMnemonic:
			s = e.Defn.Mnemonic
		case GrepOperand:
			s = e.Operand()
		case GrepAll:
			s = e.String()
		}

		if !caseSensitive {
			s = strings.ToUpper(s)
		}

		if strings.Contains(s, search) {
			_, err := fmt.Fprintln(output, e.String())
			if err != nil {
				return err
			}
		}
	}

	return nil
}
