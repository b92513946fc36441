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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/ironnes/curated"
	"github.com/jetsetilly/ironnes/errors"
	"github.com/jetsetilly/ironnes/hardware"
	"github.com/jetsetilly/ironnes/hardware/govern"
)

// sentinel pattern returned by the continue check when the measurement period
// has elapsed.
const timedOut = "performance timed out"

// the emulation is allowed to run for a short time before measurement begins
const leadTime = 2 * time.Second

// Check runs the NES for the specified duration and writes the effective
// clock speed to output. The NES should have been reset before calling
// Check().
//
// The duration string is parsed with time.ParseDuration().
func Check(output io.Writer, profile Profile, nes *hardware.NES, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(errors.PerformanceError, err)
	}

	startCycles := nes.Cycles()
	startFrame := nes.Frame()

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has elapsed
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// checking the timerChan is relatively expensive
		performanceBrake := 0

		return nes.RunForFrameCount(0, func(frame int) (govern.State, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, curated.Errorf(timedOut)
				}

				// measurement begins
				startCycles = nes.Cycles()
				startFrame = frame
			default:
			}

			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !curated.Is(err, timedOut) {
		return curated.Errorf(errors.PerformanceError, err)
	}

	numCycles := nes.Cycles() - startCycles
	numFrames := nes.Frame() - startFrame
	mhz, accuracy := CalcSpeed(nes.ClockSpeed(), numCycles, dur.Seconds())

	_, err = fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, numCycles, dur.Seconds(), accuracy)
	if err != nil {
		return curated.Errorf(errors.PerformanceError, err)
	}
	_, err = fmt.Fprintf(output, "%.2f fps (%d frames)\n", float64(numFrames)/dur.Seconds(), numFrames)
	if err != nil {
		return curated.Errorf(errors.PerformanceError, err)
	}

	return nil
}
