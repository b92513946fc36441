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

//go:generate go run instructions_gen.go

package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/ironnes/hardware/cpu/instructions"
)

// the CSV files are merged in this order. an opcode must not appear more
// than once in either file.
var definitionsCSVFiles = []string{"./legal.csv", "./unofficial.csv"}

const generatedGoFile = "../table.go"

const licenseHeader = "// This file is part of Gopher2600.\n" +
	"//\n" +
	"// Gopher2600 is free software: you can redistribute it and/or modify\n" +
	"// it under the terms of the GNU General Public License as published by\n" +
	"// the Free Software Foundation, either version 3 of the License, or\n" +
	"// (at your option) any later version.\n" +
	"//\n" +
	"// Gopher2600 is distributed in the hope that it will be useful,\n" +
	"// but WITHOUT ANY WARRANTY; without even the implied warranty of\n" +
	"// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the\n" +
	"// GNU General Public License for more details.\n" +
	"//\n" +
	"// You should have received a copy of the GNU General Public License\n" +
	"// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.\n"

const leadingBoilerPlate = licenseHeader + "\n// generated code - do not change\n\n" +
	"package instructions\n\n" +
	"// definitions is indexed by opcode\n" +
	"var definitions = [256]Definition{\n"

const trailingBoilerPlate = "}\n"

func parseCSV(filename string, deftable map[uint8]instructions.Definition) error {
	df, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = '#'
	csvr.TrimLeadingSpace = true

	// the effect field is optional
	csvr.FieldsPerRecord = -1

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		line, _ := csvr.FieldPos(0)

		if len(rec) != 4 && len(rec) != 5 {
			return fmt.Errorf("wrong number of fields in instruction definition (%s) [%s line %d]", rec, filename, line)
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		defn := instructions.Definition{}

		// field: opcode
		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return fmt.Errorf("invalid opcode (%s) [%s line %d]", rec[0], filename, line)
		}
		defn.OpCode = uint8(n)

		if _, ok := deftable[defn.OpCode]; ok {
			return fmt.Errorf("opcode %#02x defined more than once [%s line %d]", defn.OpCode, filename, line)
		}

		// field: mnemonic. the operator is derived from the mnemonic
		defn.Mnemonic = rec[1]
		var ok bool
		defn.Operator, ok = instructions.ParseOperator(defn.Mnemonic)
		if !ok {
			return fmt.Errorf("no operator for mnemonic %s [%s line %d]", defn.Mnemonic, filename, line)
		}

		// field: cycles. a value of the form N/M means the instruction is
		// sensitive to page crossing
		cycles, _, pageSensitive := strings.Cut(rec[2], "/")
		defn.PageSensitive = pageSensitive
		defn.Cycles, err = strconv.Atoi(cycles)
		if err != nil {
			return fmt.Errorf("invalid cycle count for %#02x (%s) [%s line %d]", defn.OpCode, rec[2], filename, line)
		}

		// field: addressing mode. the addressing mode also decides the number
		// of bytes in the instruction
		defn.AddressingMode = instructions.ParseAddressingMode(strings.ToUpper(rec[3]))
		if defn.AddressingMode == instructions.Unknown || defn.AddressingMode == instructions.Illegal {
			return fmt.Errorf("invalid addressing mode for %#02x (%s) [%s line %d]", defn.OpCode, rec[3], filename, line)
		}
		defn.Bytes = defn.AddressingMode.Bytes()

		// field: effect category
		if len(rec) == 5 {
			defn.Effect, ok = instructions.ParseCategory(rec[4])
			if !ok {
				return fmt.Errorf("unknown category for %#02x (%s) [%s line %d]", defn.OpCode, rec[4], filename, line)
			}
		}

		deftable[defn.OpCode] = defn
	}

	return nil
}

func entry(defn instructions.Definition) string {
	return fmt.Sprintf("{OpCode: 0x%02x, Mnemonic: %q, Bytes: %d, Cycles: %d, PageSensitive: %v, AddressingMode: %s, Operator: %s, Effect: %s},\n",
		defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.PageSensitive, defn.AddressingMode,
		goName(defn.Operator), defn.Effect)
}

// goName returns the name of the Operator constant.
func goName(o instructions.Operator) string {
	if o == instructions.IllegalOperator {
		return "IllegalOperator"
	}
	s := o.String()
	return s[:1] + strings.ToLower(s[1:])
}

func generate() (string, error) {
	deftable := make(map[uint8]instructions.Definition)

	for _, fn := range definitionsCSVFiles {
		if err := parseCSV(fn, deftable); err != nil {
			return "", err
		}
	}

	var output strings.Builder
	output.WriteString(leadingBoilerPlate)

	missing := 0
	for opcode := range 256 {
		defn, ok := deftable[uint8(opcode)]
		if !ok {
			missing++
			defn = instructions.Definition{
				OpCode:         uint8(opcode),
				Mnemonic:       "ILLEGAL",
				Bytes:          1,
				AddressingMode: instructions.Illegal,
				Operator:       instructions.IllegalOperator,
			}
		}
		output.WriteString(entry(defn))
	}

	output.WriteString(trailingBoilerPlate)

	fmt.Printf("%d opcodes defined, %d illegal\n", 256-missing, missing)

	return output.String(), nil
}

func main() {
	output, err := generate()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	formatted, err := format.Source([]byte(output))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, formatted, 0o644)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
