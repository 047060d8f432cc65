// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

import (
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/kont"
)

// sharedOwners is the owner count of a freshly dispatched clone: one unit
// for the waiting caller, one transferred with the envelope to the executor.
const sharedOwners = 2

// Delegate invokes a [Binding] on a bound [Executor] and waits for the
// invocation to complete or the timeout to elapse. With a nil executor the
// call is a plain synchronous invocation.
//
// A Delegate may be stored and called repeatedly; every call coordinates
// through its own fresh clone, so per-call state never leaks between calls.
// The Delegate itself is not safe for concurrent callers: Call, Succeeded
// and Value belong to one issuing goroutine.
type Delegate[A, R any] struct {
	binding Binding[A, R]
	exec    Executor
	timeout time.Duration
	success bool
	value   R
}

// New binds a callable to an executor with the given wait bound.
// A nil executor makes Call synchronous; [Forever] waits indefinitely.
func New[A, R any](b Binding[A, R], exec Executor, timeout time.Duration) *Delegate[A, R] {
	return &Delegate[A, R]{binding: b, exec: exec, timeout: timeout}
}

// Sync binds a callable with no executor: Call invokes it directly.
func Sync[A, R any](b Binding[A, R]) *Delegate[A, R] {
	return &Delegate[A, R]{binding: b}
}

// Binding returns the bound callable.
func (d *Delegate[A, R]) Binding() Binding[A, R] {
	return d.binding
}

// Succeeded reports whether the last Call completed before its timeout.
func (d *Delegate[A, R]) Succeeded() bool {
	return d.success
}

// Value returns the last retrieved result. When Succeeded is false the
// value is stale or zero; callers are expected to check Succeeded first.
func (d *Delegate[A, R]) Value() R {
	return d.value
}

// Call invokes the binding on the bound executor and waits for completion
// up to the timeout. Returns the callee's value when the call completed in
// time; otherwise returns the stale value and records failure, queryable via
// [Delegate.Succeeded]. Arguments are snapshotted by value into the envelope.
func (d *Delegate[A, R]) Call(a A) R {
	if d.exec == nil {
		d.value = d.binding.Invoke(a)
		d.success = true
		return d.value
	}

	p := newPending(d.binding)
	m := &message[A, R]{call: p, args: a, serial: nextSerial()}

	// Hand the envelope to the executor. One owner unit transfers with it;
	// on refusal the envelope never left this goroutine, so reclaim both.
	if err := dispatch(d.exec, m); err != nil {
		p.drop()
		p.drop()
		d.success = false
		return d.value
	}

	d.success = p.sema.wait(d.timeout)
	if d.success {
		// Safe without further synchronization: the executor writes the
		// result strictly before signal, and a successful wait consumes
		// a unit ordered after that write.
		d.value = p.result
	}
	p.drop()
	return d.value
}

// CallEither invokes like [Delegate.Call] and returns the outcome as a sum:
// Right(result) when the call completed in time, Left([ErrTimeout]) when the
// wait expired or the executor refused the envelope.
func (d *Delegate[A, R]) CallEither(a A) kont.Either[error, R] {
	v := d.Call(a)
	if !d.success {
		return kont.Left[error, R](ErrTimeout)
	}
	return kont.Right[error](v)
}

// pending is the per-call clone: the owned copy of the binding plus the
// shared coordination state raced by caller and executor. Created fresh for
// every dispatched call, never reused.
type pending[A, R any] struct {
	binding Binding[A, R]
	sema    sema
	owners  atomix.Int32
	result  R
}

// newPending clones the binding into a fresh two-owner coordination state
// and charges one unit to the outstanding gauge.
func newPending[A, R any](b Binding[A, R]) *pending[A, R] {
	p := &pending[A, R]{binding: b}
	p.owners.Store(sharedOwners)
	outstanding.Add(1)
	return p
}

// execute delivers the envelope on the executor's goroutine: invoke the
// cloned binding with the snapshot, publish the result, signal the waiter.
//
// If the caller has already departed (owner count below sharedOwners), the
// user function is skipped entirely: no one can observe the result, and a
// pending call is dropped rather than run on behalf of no one. The decision
// is a single atomic load, so a caller may still time out while the callable
// is mid-run; the late signal is simply never consumed.
func (p *pending[A, R]) execute(a A) {
	if p.owners.Load() == sharedOwners {
		p.result = p.binding.Invoke(a)
		p.sema.signal()
	}
	p.drop()
}

// drop releases one owner unit. The unit count starts at sharedOwners and
// each participant drops exactly once; whichever drop reaches zero performs
// the exactly-once teardown. Dropping below zero is a protocol violation.
func (p *pending[A, R]) drop() {
	n := p.owners.Add(-1)
	if n == 0 {
		outstanding.Add(-1)
		return
	}
	if n < 0 {
		panic("deleg: owner unit dropped twice")
	}
}

// message is the envelope: a clone reference paired with the by-value
// argument snapshot. Pure data carrier; consumed exactly once by the
// executor's delivery callback.
type message[A, R any] struct {
	call   *pending[A, R]
	args   A
	serial Serial
}

// Invoke implements [Message].
func (m *message[A, R]) Invoke() {
	m.call.execute(m.args)
}

// Serial implements [Message].
func (m *message[A, R]) Serial() Serial {
	return m.serial
}
