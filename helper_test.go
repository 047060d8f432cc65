// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg_test

import (
	"testing"
	"time"

	"code.hybscloud.com/deleg"
	"code.hybscloud.com/iox"
)

// immediateExec delivers envelopes synchronously on Dispatch, on the
// caller's goroutine. Exercises the protocol with zero latency.
type immediateExec struct{}

func (immediateExec) Dispatch(m deleg.Message) error {
	m.Invoke()
	return nil
}

// delayExec delivers each envelope on its own goroutine after a fixed delay.
// Used to straddle caller timeouts in both orders.
type delayExec struct {
	delay time.Duration
}

func (e delayExec) Dispatch(m deleg.Message) error {
	go func() {
		time.Sleep(e.delay)
		m.Invoke()
	}()
	return nil
}

// refuseExec refuses every envelope, modeling a shut-down executor.
type refuseExec struct{}

func (refuseExec) Dispatch(deleg.Message) error {
	return deleg.ErrClosed
}

// stallExec returns ErrWouldBlock a fixed number of times before accepting,
// exercising the dispatch backoff retry path.
type stallExec struct {
	stalls int
	inner  deleg.Executor
}

func (e *stallExec) Dispatch(m deleg.Message) error {
	if e.stalls > 0 {
		e.stalls--
		return iox.ErrWouldBlock
	}
	return e.inner.Dispatch(m)
}

// dropExec accepts envelopes and never delivers them, modeling an executor
// discarded without draining its queue.
type dropExec struct {
	held []deleg.Message
}

func (e *dropExec) Dispatch(m deleg.Message) error {
	e.held = append(e.held, m)
	return nil
}

// waitOutstanding blocks until the outstanding gauge returns to want,
// failing the test after a generous deadline.
func waitOutstanding(t *testing.T, want int32) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for deleg.Outstanding() != want {
		if time.Now().After(deadline) {
			t.Fatalf("outstanding = %d, want %d", deleg.Outstanding(), want)
		}
		time.Sleep(time.Millisecond)
	}
}

func add(a, b int) int { return a + b }
