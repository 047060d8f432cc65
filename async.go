// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

import "time"

// Async posts a void-return binding to an executor without waiting: fire and
// forget. The arguments are snapshotted by value into the envelope; the
// binding runs on the executor's goroutine at an unspecified later time.
// With a nil executor Post invokes synchronously.
type Async[A any] struct {
	binding Binding[A, Unit]
	exec    Executor
}

// NewAsync binds a void-return callable to an executor for posting.
func NewAsync[A any](b Binding[A, Unit], exec Executor) *Async[A] {
	return &Async[A]{binding: b, exec: exec}
}

// Binding returns the bound callable.
func (d *Async[A]) Binding() Binding[A, Unit] {
	return d.binding
}

// Post snapshots the arguments and enqueues the envelope, waiting only for
// queue space, never for execution. A refused dispatch (closed executor)
// drops the post silently; fire-and-forget has no failure surface.
func (d *Async[A]) Post(a A) {
	if d.exec == nil {
		d.binding.Invoke(a)
		return
	}
	m := &post[A]{binding: d.binding, args: a, serial: nextSerial()}
	outstanding.Add(1)
	if err := dispatch(d.exec, m); err != nil {
		outstanding.Add(-1)
	}
}

// Wait converts the fire-and-forget delegate into an async-wait [Delegate]
// on the same executor, for callers that need completion feedback.
func (d *Async[A]) Wait(timeout time.Duration) *Delegate[A, Unit] {
	return New(d.binding, d.exec, timeout)
}

// post is the fire-and-forget envelope: binding copy plus argument snapshot.
// Single-owner (the queue), so delivery releases its outstanding unit
// directly, with no shared count to race on.
type post[A any] struct {
	binding Binding[A, Unit]
	args    A
	serial  Serial
}

// Invoke implements [Message].
func (m *post[A]) Invoke() {
	m.binding.Invoke(m.args)
	outstanding.Add(-1)
}

// Serial implements [Message].
func (m *post[A]) Serial() Serial {
	return m.serial
}
