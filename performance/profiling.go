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
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/ironnes/curated"
	"github.com/jetsetilly/ironnes/errors"
)

// Profile specifies which profiles are to be written by RunProfiler().
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone  Profile = 0
	ProfileCPU   Profile = 0b001
	ProfileMem   Profile = 0b010
	ProfileTrace Profile = 0b100
	ProfileAll   Profile = ProfileCPU | ProfileMem | ProfileTrace
)

func (p Profile) String() string {
	if p == ProfileNone {
		return "NONE"
	}

	s := strings.Builder{}
	if p&ProfileCPU == ProfileCPU {
		s.WriteString("CPU ")
	}
	if p&ProfileMem == ProfileMem {
		s.WriteString("MEM ")
	}
	if p&ProfileTrace == ProfileTrace {
		s.WriteString("TRACE ")
	}
	return strings.TrimSpace(s.String())
}

// ParseProfile converts a comma separated list of profile names into a
// Profile value. Valid names are NONE, CPU, MEM, TRACE and ALL. Names are not
// case sensitive.
func ParseProfile(s string) (Profile, error) {
	p := ProfileNone

	for _, n := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(n)) {
		case "", "NONE":
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "TRACE":
			p |= ProfileTrace
		case "ALL":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf(errors.PerformanceError, fmt.Sprintf("unknown profile (%s)", n))
		}
	}

	return p, nil
}

// RunProfiler runs the supplied function with the specified profiles
// active. Profile files are named with the filenameHeader followed by the
// profile type.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(errors.PerformanceError, err)
		}
		defer func() {
			err := f.Close()
			if err != nil && rerr == nil {
				rerr = curated.Errorf(errors.PerformanceError, err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(errors.PerformanceError, err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(fmt.Sprintf("%s_trace.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(errors.PerformanceError, err)
		}
		defer func() {
			err := f.Close()
			if err != nil && rerr == nil {
				rerr = curated.Errorf(errors.PerformanceError, err)
			}
		}()

		err = trace.Start(f)
		if err != nil {
			return curated.Errorf(errors.PerformanceError, err)
		}
		defer trace.Stop()
	}

	err := run()

	if profile&ProfileMem == ProfileMem {
		f, merr := os.Create(fmt.Sprintf("%s_mem.profile", filenameHeader))
		if merr != nil {
			return curated.Errorf(errors.PerformanceError, merr)
		}
		defer f.Close()

		runtime.GC()
		merr = pprof.WriteHeapProfile(f)
		if merr != nil {
			return curated.Errorf(errors.PerformanceError, merr)
		}
	}

	return err
}
