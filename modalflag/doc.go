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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows a different
// set of flags for each mode.
//
// Arguments are given with NewArgs() and then Parse() is called with no
// arguments. Non-flag arguments are retrieved with RemainingArgs() or
// GetArg():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//	_, _ = md.Parse()
//
// A mode is a special argument that puts the program into a different mode
// of operation, in the same way as the go command has build, test, etc.
// Modes are added with AddSubModes(). The first sub-mode is the default and
// comparisons are case insensitive.
//
//	md.AddSubModes("run", "disasm")
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		steps := md.AddInt("steps", 0, "number of instructions to run")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		run(md.GetArg(0), *steps)
//	}
//
// Modes can be nested to any depth by calling NewMode() and AddSubModes()
// again. Path() returns the list of modes encountered so far.
package modalflag
