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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/jetsetilly/ironnes/cartridgeloader"
	"github.com/jetsetilly/ironnes/disassembly"
	"github.com/jetsetilly/ironnes/hardware"
	"github.com/jetsetilly/ironnes/hardware/govern"
	"github.com/jetsetilly/ironnes/hardware/memory/cartridge"
	"github.com/jetsetilly/ironnes/logger"
	"github.com/jetsetilly/ironnes/modalflag"
	"github.com/jetsetilly/ironnes/performance"
	"github.com/jetsetilly/ironnes/performance/limiter"
	"github.com/jetsetilly/ironnes/statsview"
	"github.com/jetsetilly/ironnes/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])

	err := launch(md)
	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// launch parses the top level of the command line and runs the selected
// mode.
func launch(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "PERFORMANCE", "MEMVIZ", "VERSION")
	md.AdditionalHelp(version.String())

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	case "MEMVIZ":
		err = memvizMode(md)
	case "VERSION":
		_, err = fmt.Fprintln(md.Output, version.String())
	}

	return err
}

// setEcho echoes the central logger to stdout. the log is colorized if
// stdout is a terminal.
func setEcho(echo bool) {
	if !echo {
		logger.SetEcho(nil, false)
		return
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(os.Stdout, false)
	}
}

// loadNES loads the cartridge and attaches it to a newly reset NES.
func loadNES(md *modalflag.Modes, hash string) (*hardware.NES, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))
	cartload.Hash = hash

	cart, err := cartridge.NewCartridgeFromLoader(cartload)
	if err != nil {
		return nil, err
	}

	nes, err := hardware.NewNES(cart)
	if err != nil {
		return nil, err
	}

	err = nes.Reset()
	if err != nil {
		return nil, err
	}

	return nes, nil
}

// parseEntry parses a hexadecimal address. An empty string is not an error
// and returns false.
func parseEntry(s string) (uint16, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, false, fmt.Errorf("entry address: %w", err)
	}
	return uint16(v), true, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	hash := md.AddString("hash", "", "expected SHA1 hash of the cartridge")
	entry := md.AddString("entry", "", "hexadecimal address at which to start execution")
	trace := md.AddString("trace", "", "write CPU state before every instruction to file")
	steps := md.AddInt("steps", 0, "number of instructions to execute (0 is unlimited)")
	frames := md.AddInt("frames", 0, "number of frames to run for (0 is unlimited)")
	limit := md.AddBool("limit", false, "limit emulation to the speed of the hardware")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log)

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	nes, err := loadNES(md, *hash)
	if err != nil {
		return err
	}

	address, ok, err := parseEntry(*entry)
	if err != nil {
		return err
	}
	if ok {
		nes.JSR(address)
	}

	if *trace != "" {
		f, err := os.Create(*trace)
		if err != nil {
			return err
		}
		defer f.Close()

		w := bufio.NewWriter(f)
		defer w.Flush()
		nes.SetTrace(w)
	}

	var lim *limiter.Limiter
	if *limit {
		lim = limiter.NewLimiter(nes.FrameRate())
		defer lim.Stop()
	}

	// ctrl-c ends the emulation
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	stepCount := 0
	lastFrame := nes.Frame()
	performanceBrake := 0

	err = nes.RunForFrameCount(*frames, func(frame int) (govern.State, error) {
		stepCount++
		if *steps > 0 && stepCount >= *steps {
			return govern.Ending, nil
		}

		if lim != nil && frame != lastFrame {
			lastFrame = frame
			lim.Wait()
		}

		performanceBrake++
		if performanceBrake >= hardware.PerformanceBrake {
			performanceBrake = 0
			select {
			case <-intChan:
				return govern.Ending, nil
			default:
			}
		}

		return govern.Running, nil
	})

	fmt.Fprintln(md.Output, nes.String())

	return err
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	hash := md.AddString("hash", "", "expected SHA1 hash of the cartridge")
	grep := md.AddString("grep", "", "only show entries that contain the search string")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	nes, err := loadNES(md, *hash)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromCartridge(nes.Cart)
	if err != nil {
		return err
	}

	if *grep != "" {
		return dsm.Grep(md.Output, disassembly.GrepAll, *grep, false)
	}

	return dsm.Write(md.Output)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log)

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	nes, err := loadNES(md, "")
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, nes, *duration)
}

func memvizMode(md *modalflag.Modes) error {
	md.NewMode()

	output := md.AddString("out", "ironnes.dot", "file to write graphviz dot output to")
	steps := md.AddInt("steps", 0, "number of instructions to execute before writing output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	nes, err := loadNES(md, "")
	if err != nil {
		return err
	}

	for i := 0; i < *steps; i++ {
		_, err = nes.Step()
		if err != nil {
			return err
		}
	}

	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	defer f.Close()

	writeMemviz(f, nes)

	return nil
}

// writeMemviz writes the CPU registers and the most recent instruction result
// as a graphviz diagram. the memory arrays are not included.
func writeMemviz(w io.Writer, nes *hardware.NES) {
	regs := nes.Registers()
	result := nes.CPU.LastResult
	memviz.Map(w, &regs, &result)
}
