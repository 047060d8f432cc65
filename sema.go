// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

import (
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Forever is the timeout sentinel meaning wait indefinitely.
// Any negative duration is treated the same.
const Forever time.Duration = -1

// sema is a counted completion signal: signal increments the count, wait
// consumes one unit or expires. A unit signalled after the waiter expired is
// never consumed; the clone it belongs to is torn down shortly after, so an
// unconsumed unit is harmless.
//
// The signal/consume pair is the synchronization edge for the result slot:
// the executor writes the result strictly before signal, and a successful
// wait consumes a unit ordered after that write. No lock is involved.
type sema struct {
	n atomix.Int32
}

// signal makes one unit available to a waiter. Never blocks.
func (s *sema) signal() {
	s.n.Add(1)
}

// wait blocks until it consumes one unit or timeout expires, reporting
// whether a unit was consumed. A negative timeout waits forever. Waiting is
// adaptive-backoff polling (iox.Backoff): crossing the readiness boundary
// spawns no goroutines and creates no channels.
func (s *sema) wait(timeout time.Duration) bool {
	var deadline time.Time
	if timeout >= 0 {
		deadline = time.Now().Add(timeout)
	}
	var bo iox.Backoff
	for {
		for {
			n := s.n.Load()
			if n <= 0 {
				break
			}
			if s.n.CompareAndSwap(n, n-1) {
				return true
			}
		}
		if timeout >= 0 && !time.Now().Before(deadline) {
			return false
		}
		bo.Wait()
	}
}
