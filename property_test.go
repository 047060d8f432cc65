// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg_test

import (
	"testing"
	"testing/quick"
	"time"

	"code.hybscloud.com/deleg"
)

// TestPropertyCallEquivalence proves that for arbitrary arguments, a call
// through a bound executor that completes before timeout yields exactly the
// value of invoking the same callable directly.
func TestPropertyCallEquivalence(t *testing.T) {
	d := deleg.New(deleg.Func2(add), immediateExec{}, deleg.Forever)

	propertyEquivalent := func(a, b int) bool {
		got := deleg.Call2(d, a, b)
		return d.Succeeded() && got == add(a, b)
	}

	if err := quick.Check(propertyEquivalent, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyWorkerDelivery proves that for any arbitrarily generated
// payload, posting through a Worker delivers every element exactly once and
// in FIFO order.
func TestPropertyWorkerDelivery(t *testing.T) {
	skipRace(t)

	propertyFIFO := func(payload []int) bool {
		w := deleg.NewWorker()
		defer w.Close()

		received := make([]int, 0, len(payload))
		sink := deleg.NewAsync(deleg.Act1(func(n int) {
			received = append(received, n)
		}), w)
		for _, n := range payload {
			sink.Post(n)
		}

		// FIFO barrier: once the waited call returns, all posts ran.
		barrier := deleg.New(deleg.Func0(func() int { return 0 }), w, 5*time.Second)
		deleg.Call0(barrier)
		if !barrier.Succeeded() {
			return false
		}

		if len(received) != len(payload) {
			return false
		}
		for i, n := range received {
			if n != payload[i] {
				return false
			}
		}
		return true
	}

	if err := quick.Check(propertyFIFO, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyTeardownExactlyOnce proves that for any delivery delay and
// timeout pairing, the two-owner teardown runs exactly once: after all
// envelopes drain, the outstanding gauge is back to its baseline.
func TestPropertyTeardownExactlyOnce(t *testing.T) {
	base := deleg.Outstanding()

	propertyTeardown := func(delayMs, timeoutMs uint8) bool {
		delay := time.Duration(delayMs%8) * time.Millisecond
		timeout := time.Duration(timeoutMs%8) * time.Millisecond
		d := deleg.New(deleg.Func2(add), delayExec{delay: delay}, timeout)
		got := deleg.Call2(d, 3, 4)
		// Result only meaningful on success; teardown must hold either way.
		return !d.Succeeded() || got == 7
	}

	if err := quick.Check(propertyTeardown, nil); err != nil {
		t.Error(err)
	}

	waitOutstanding(t, base)
}
