// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package deleg provides asynchronous delegate invocation with bounded wait:
// a caller invokes a bound function or method on another goroutine's
// [Executor] and blocks until the invocation completes or a timeout elapses.
//
// A call through a bound executor looks like an ordinary call to the issuing
// goroutine: it returns the callee's value and records whether the callee
// actually ran ([Delegate.Succeeded]). Coordination per call is a fresh
// two-owner clone torn down exactly once no matter which side, waiting
// caller or executing goroutine, finishes last.
//
// # Architecture
//
//   - Binding: [Binding] stores what to call (free function or
//     pointer-receiver method) and invokes it synchronously. Per-arity
//     constructors [Func0] through [Func5], [Act0] through [Act5],
//     [Method0] through [Method5], and [MethodAct0] through [MethodAct5]
//     collapse all signatures into one generic core.
//   - Transport: executors accept envelopes via non-blocking [Executor.Dispatch]
//     returning [code.hybscloud.com/iox.ErrWouldBlock] on backpressure. The
//     bundled [Worker] drains a bounded lock-free SPSC queue from
//     [code.hybscloud.com/lfq].
//   - Coordination: owner counting and completion signaling use atomics from
//     [code.hybscloud.com/atomix] polled with adaptive backoff from
//     [code.hybscloud.com/iox]. No mutex is held across the user callable.
//   - Results: [Delegate.Call] returns the value directly; [Delegate.CallEither]
//     returns [code.hybscloud.com/kont.Either]: Right on success, Left
//     [ErrTimeout] when the wait expired.
//
// # Timeout semantics
//
// A timed-out call is a normal outcome, not an error condition: the caller
// observes Succeeded() == false and no result. If the executor reaches the
// envelope only after the caller has departed, the user function is skipped
// entirely: a pending call is dropped rather than executed on behalf of
// no one. [Forever] waits indefinitely.
//
// # Example
//
//	w := deleg.NewWorker()
//	defer w.Close()
//	d := deleg.New(deleg.Func2(add), w, time.Second)
//	sum := deleg.Call2(d, 2, 3) // 5, executed on w's goroutine
//	if !d.Succeeded() {
//		// executor never ran add within 1s
//	}
package deleg
