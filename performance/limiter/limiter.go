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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(60)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		runFrame()
//	}
package limiter

import (
	"time"
)

// Limiter will trigger at a fixed rate.
type Limiter struct {
	period time.Duration
	tick   chan bool
	quit   chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The rate is in events per second.
func NewLimiter(rate float64) *Limiter {
	lim := &Limiter{
		period: time.Duration(float64(time.Second) / rate),
		tick:   make(chan bool),
		quit:   make(chan bool),
	}

	// the period is adjusted to compensate for sleeping for too long
	go func() {
		adjusted := lim.period
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}
			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.period
			t = nt
		}
	}()

	return lim
}

// Period returns the time between events.
func (lim *Limiter) Period() time.Duration {
	return lim.period
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if the trigger has happened and false if it is
// still yet to happen. It never blocks.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *Limiter) Stop() {
	close(lim.quit)
}
