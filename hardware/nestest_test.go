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

package hardware_test

import (
	"bufio"
	"os"
	"regexp"
	"strconv"
	"testing"

	"github.com/jetsetilly/ironnes/cartridgeloader"
	"github.com/jetsetilly/ironnes/hardware"
	"github.com/jetsetilly/ironnes/hardware/memory/cartridge"
	"github.com/jetsetilly/ironnes/test"
)

const (
	nestestROM = "testdata/nestest.nes"
	nestestLog = "testdata/nestest.log"
)

// a line in the nestest log. for example:
//
// C000  4C F5 C5  JMP $C5F5        A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7
var nestestLine = regexp.MustCompile(`^([0-9A-F]{4}) .*A:([0-9A-F]{2}) X:([0-9A-F]{2}) Y:([0-9A-F]{2}) P:([0-9A-F]{2}) SP:([0-9A-F]{2}).*CYC:(\d+)`)

type nestestState struct {
	pc, a, x, y, p, sp uint64
	cycles             int
}

func parseNestestLine(t *testing.T, line string) nestestState {
	t.Helper()

	m := nestestLine.FindStringSubmatch(line)
	if m == nil {
		t.Fatalf("unrecognised nestest log line: %s", line)
	}

	var st nestestState
	for i, v := range []*uint64{&st.pc, &st.a, &st.x, &st.y, &st.p, &st.sp} {
		n, err := strconv.ParseUint(m[i+1], 16, 16)
		test.DemandSuccess(t, err)
		*v = n
	}

	var err error
	st.cycles, err = strconv.Atoi(m[7])
	test.DemandSuccess(t, err)

	return st
}

// TestNestest runs the automated mode of the nestest ROM and compares the
// state of the CPU before every instruction with the log from a reference
// emulator. The test is skipped if the ROM or the log is not available.
func TestNestest(t *testing.T) {
	if _, err := os.Stat(nestestROM); err != nil {
		t.Skipf("%s not available", nestestROM)
	}

	f, err := os.Open(nestestLog)
	if err != nil {
		t.Skipf("%s not available", nestestLog)
	}
	defer f.Close()

	cart, err := cartridge.NewCartridgeFromLoader(cartridgeloader.NewLoader(nestestROM))
	test.DemandSuccess(t, err)

	nes, err := hardware.NewNES(cart)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, nes.Reset())

	// automated mode starts at $c000
	nes.JSR(0xc000)

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	test.DemandSuccess(t, scanner.Err())

	offset := 0
	for i, line := range lines {
		st := parseNestestLine(t, line)

		// the reference emulator does not count cycles from zero
		if i == 0 {
			offset = st.cycles - nes.Cycles()
		}

		regs := nes.Registers()
		if uint64(regs.PC) != st.pc || uint64(regs.A) != st.a || uint64(regs.X) != st.x ||
			uint64(regs.Y) != st.y || uint64(regs.P.Value()) != st.p || uint64(regs.SP) != st.sp ||
			nes.Cycles()+offset != st.cycles {
			t.Fatalf("line %d: %s CYC %d\nwanted: %s", i+1, nes.CPU, nes.Cycles()+offset, line)
		}

		// the instruction on the final line is not executed
		if i == len(lines)-1 {
			break
		}

		_, err := nes.Step()
		test.DemandSuccess(t, err)

		// check cycle count and page faults for consistency
		test.DemandSuccess(t, nes.CPU.LastResult.IsValid())
	}
}
