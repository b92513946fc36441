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

package logger_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/ironnes/logger"
	"github.com/jetsetilly/ironnes/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	test.ExpectFailure(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "CPU", "IRQ not allowed when I==1.")
	log.Log(logger.Allow, "CPU", "IRQ not allowed when I==1.")
	log.Log(logger.Allow, "CPU", "IRQ not allowed when I==1.")
	test.ExpectEquality(t, log.Len(), 1)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "CPU: IRQ not allowed when I==1. (repeat x3)\n")
}

func TestCapacity(t *testing.T) {
	log := logger.NewLogger(3)
	w := &strings.Builder{}

	for i := range 5 {
		log.Logf(logger.Allow, "tag", "%d", i)
	}
	test.ExpectEquality(t, log.Len(), 3)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 2\ntag: 3\ntag: 4\n")
}

func TestRecent(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "one")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "tag: one\n")

	w.Reset()
	log.Log(logger.Allow, "tag", "two")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "tag: two\n")

	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	echo := &test.CompareWriter{}

	log.Log(logger.Allow, "tag", "before")
	log.SetEcho(echo, true)
	test.ExpectSuccess(t, echo.Compare("tag: before\n"))

	log.Log(logger.Allow, "tag", "after")
	test.ExpectSuccess(t, echo.Compare("tag: before\ntag: after\n"))

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "tag", "silent")
	test.ExpectSuccess(t, echo.Compare("tag: before\ntag: after\n"))
}

type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	for _, a := range []int{0, 25, 50, 51, 75, 100} {
		p := prohibitLogging{allow: a}
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

type stringerTest struct{}

func (stringerTest) String() string {
	return "stringer test"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Logf(logger.Allow, "tag", "wrapped: %v", errors.New("test error"))
	log.Log(logger.Allow, "tag", stringerTest{})
	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: wrapped: test error\ntag: stringer test\ntag: 100\n")
}

func TestColorizer(t *testing.T) {
	w := &strings.Builder{}
	c := logger.NewColorizer(w)
	fmt.Fprint(c, "CPU: reset\n")
	test.ExpectEquality(t, w.String(), "\033[2mCPU\033[0m: reset\n")
}
