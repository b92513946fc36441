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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/ironnes/curated"
	"github.com/jetsetilly/ironnes/errors"
	"github.com/jetsetilly/ironnes/hardware"
	"github.com/jetsetilly/ironnes/hardware/memory/cartridge"
	"github.com/jetsetilly/ironnes/performance"
	"github.com/jetsetilly/ironnes/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	p, err = performance.ParseProfile("cpu,MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU MEM")

	p, err = performance.ParseProfile("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "CPU MEM TRACE")

	_, err = performance.ParseProfile("cpu,gpu")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, errors.PerformanceError))
}

func TestCalcSpeed(t *testing.T) {
	mhz, accuracy := performance.CalcSpeed(2.0, 4000000, 2.0)
	test.ExpectApproximate(t, mhz, 2.0, 0.0001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.0001)

	mhz, accuracy = performance.CalcSpeed(2.0, 1000000, 1.0)
	test.ExpectApproximate(t, mhz, 1.0, 0.0001)
	test.ExpectApproximate(t, accuracy, 50.0, 0.0001)

	mhz, accuracy = performance.CalcSpeed(2.0, 1000000, 0.0)
	test.ExpectEquality(t, mhz, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestRunProfiler(t *testing.T) {
	header := filepath.Join(t.TempDir(), "test")

	var ran bool
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, header, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(header + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(header + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(header + "_trace.profile")
	test.ExpectFailure(t, err)

	// error from the run function is returned unchanged
	err = performance.RunProfiler(performance.ProfileNone, header, func() error {
		return curated.Errorf(errors.MemoryError, "test")
	})
	test.ExpectSuccess(t, curated.Is(err, errors.MemoryError))
}

func TestCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("performance check takes more than two seconds")
	}

	// JMP $c000 at the reset address
	prg := make([]uint8, cartridge.PRGBankSize)
	copy(prg, []uint8{0x4c, 0x00, 0xc0})
	copy(prg[0x3ffa:], []uint8{0x00, 0xc0, 0x00, 0xc0, 0x00, 0xc0})

	data := []uint8{'N', 'E', 'S', 0x1a, 0x01, 0x00, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	data = append(data, prg...)

	cart, err := cartridge.NewCartridge(data)
	test.DemandSuccess(t, err)
	nes, err := hardware.NewNES(cart)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, nes.Reset())

	output := &strings.Builder{}
	err = performance.Check(output, performance.ProfileNone, nes, "100ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(output.String(), "MHz"))
	test.ExpectSuccess(t, strings.Contains(output.String(), "fps"))

	err = performance.Check(output, performance.ProfileNone, nes, "one second")
	test.ExpectSuccess(t, curated.Is(err, errors.PerformanceError))
}
