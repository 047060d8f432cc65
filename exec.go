// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

import (
	"errors"

	"code.hybscloud.com/iox"
)

// Message is an envelope queued to an [Executor]: a per-call clone reference
// paired with the argument snapshot. An accepted Message must be delivered
// by calling Invoke exactly once, on the executor's own goroutine, at an
// unspecified later time.
type Message interface {
	// Invoke delivers the envelope into the call it belongs to.
	Invoke()
	// Serial returns the monotonic identifier assigned at dispatch.
	Serial() Serial
}

// Executor represents another goroutine of control that accepts queued work
// and executes it on its own schedule.
//
// Dispatch is non-blocking: it returns iox.ErrWouldBlock on backpressure and
// may return other errors (e.g. [ErrClosed]) to refuse the message outright.
// A nil error transfers ownership of the message to the executor. No latency
// or cross-message ordering is required, though the bundled [Worker] is FIFO.
type Executor interface {
	Dispatch(m Message) error
}

// dispatch hands m to exec, waiting past the iox.ErrWouldBlock boundary with
// adaptive backoff. Waits only for queue space, never for execution. Any
// other error refuses the message and is returned to the caller.
func dispatch(exec Executor, m Message) error {
	var bo iox.Backoff
	for {
		err := exec.Dispatch(m)
		if err == nil {
			return nil
		}
		if !errors.Is(err, iox.ErrWouldBlock) {
			return err
		}
		bo.Wait()
	}
}
