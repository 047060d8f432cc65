// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// workerCapacity is the bounded capacity for a Worker's envelope queue.
// 64 absorbs dispatch bursts from a single producer while keeping the
// ring buffer compact; overflow surfaces as iox.ErrWouldBlock.
const workerCapacity = 64

// Worker is the bundled executor: one consumer goroutine draining a bounded
// lock-free SPSC queue and delivering envelopes in FIFO order.
//
// The transport is single-producer single-consumer: at most one goroutine
// may Dispatch into a given Worker. Any number of delegates owned by that
// goroutine may share it.
type Worker struct {
	q      lfq.SPSC[Message]
	closed atomix.Uint32
	slot   Message
}

// NewWorker creates a Worker and starts its consumer goroutine.
func NewWorker() *Worker {
	w := &Worker{}
	w.q.Init(workerCapacity)
	go w.loop()
	return w
}

// Dispatch implements [Executor]. Non-blocking: returns iox.ErrWouldBlock
// when the queue is full and [ErrClosed] after Close. A nil error transfers
// ownership of the envelope to the consumer goroutine.
func (w *Worker) Dispatch(m Message) error {
	if w.closed.Load() != 0 {
		return ErrClosed
	}
	w.slot = m
	return w.q.Enqueue(&w.slot)
}

// Close stops the consumer goroutine. Dispatch refuses envelopes from this
// point on. The consumer drains what it observes before exiting; an envelope
// racing a concurrent Close may be discarded, in which case its waiter times
// out and its owner unit stays charged to [Outstanding]: leak by design,
// so drain before Close if the gauge must return to baseline.
func (w *Worker) Close() {
	w.closed.Add(1)
}

// loop is the consumer: dequeue with adaptive backoff, deliver in order.
func (w *Worker) loop() {
	var bo iox.Backoff
	for {
		m, err := w.q.Dequeue()
		if err == nil {
			bo.Reset()
			m.Invoke()
			continue
		}
		if w.closed.Load() != 0 {
			// Final drain: anything that beat the close flag is delivered.
			for {
				m, err := w.q.Dequeue()
				if err != nil {
					return
				}
				m.Invoke()
			}
		}
		bo.Wait()
	}
}
