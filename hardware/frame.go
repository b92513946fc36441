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

package hardware

import (
	"github.com/jetsetilly/ironnes/curated"
	"github.com/jetsetilly/ironnes/hardware/clocks"
	"github.com/jetsetilly/ironnes/hardware/govern"
	"github.com/jetsetilly/ironnes/hardware/memory/cartridge"
)

// the vertical blank lasts for 20 scanlines of 341 PPU cycles. there are
// three PPU cycles for every CPU cycle
const vblankCycles = 20 * 341 / 3

// frame timing is approximate. the PPU is not stepped with the CPU and so
// the vertical blank begins on the first instruction boundary after the
// frame's cycles have elapsed.
type frameTiming struct {
	cyclesPerFrame int

	// the current frame number and the cycle count at which it began
	frame      int
	frameStart int

	inVBlank bool
}

func newFrameTiming(region cartridge.Region) frameTiming {
	if region == cartridge.PAL {
		return frameTiming{cyclesPerFrame: clocks.CyclesPerFrame(clocks.PAL, clocks.PAL_FPS)}
	}
	return frameTiming{cyclesPerFrame: clocks.CyclesPerFrame(clocks.NTSC, clocks.NTSC_FPS)}
}

func (ft *frameTiming) reset() {
	ft.frame = 0
	ft.frameStart = 0
	ft.inVBlank = false
}

// ClockSpeed returns the speed of the CPU in MHz for the cartridge's region.
func (nes *NES) ClockSpeed() float64 {
	if nes.Cart.Region == cartridge.PAL {
		return clocks.PAL
	}
	return clocks.NTSC
}

// FrameRate returns the number of frames per second for the cartridge's
// region.
func (nes *NES) FrameRate() float64 {
	if nes.Cart.Region == cartridge.PAL {
		return clocks.PAL_FPS
	}
	return clocks.NTSC_FPS
}

// Frame returns the number of frames since the last reset.
func (nes *NES) Frame() int {
	return nes.timing.frame
}

// CyclesPerFrame returns the number of CPU cycles in a frame.
func (nes *NES) CyclesPerFrame() int {
	return nes.timing.cyclesPerFrame
}

// updateFrame ends the vertical blank when it has elapsed and begins a new
// frame when the frame's cycles have elapsed. The start of a new frame is
// the start of the vertical blank.
func (nes *NES) updateFrame() error {
	c := nes.CPU.Cycles() - nes.timing.frameStart

	if nes.timing.inVBlank && c >= vblankCycles {
		nes.timing.inVBlank = false
		nes.PPU.EndVBlank()
	}

	if c >= nes.timing.cyclesPerFrame {
		nes.timing.frame++
		nes.timing.frameStart += nes.timing.cyclesPerFrame
		nes.timing.inVBlank = true
		return nes.VBlank()
	}

	return nil
}

// RunForFrameCount sets emulator running for the specified number of frames.
// Unlike Run(), the vertical blank is signalled to the PPU at the start of
// every frame, raising an NMI if the program has enabled it.
//
// The continueCheck function is called after every instruction with the
// current frame number. A nil function runs until the number of frames have
// elapsed. A numFrames value of zero or less runs until continueCheck returns
// the Ending state.
func (nes *NES) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := nes.timing.frame + numFrames
	if numFrames <= 0 {
		targetFrame = -1
	}

	var err error

	state := govern.Running

	for nes.timing.frame != targetFrame && state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			_, err := nes.Step()
			if err != nil {
				return err
			}

			err = nes.updateFrame()
			if err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("nes: unsupported emulation state (%s) in RunForFrameCount() function", state)
		}

		state, err = continueCheck(nes.timing.frame)
		if err != nil {
			return err
		}
	}

	return nil
}
