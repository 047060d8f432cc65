// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

import "sync"

// Multicast is an ordered broadcast registry of fire-and-forget delegates.
// Post snapshots the subscriber list and posts to each in registration
// order; each subscriber runs on its own executor's goroutine.
//
// The registry is safe for concurrent use. The mutex guards only the
// subscriber slice; posting happens outside it.
type Multicast[A any] struct {
	mu   sync.Mutex
	subs []*Async[A]
}

// Add appends a subscriber to the registry.
func (mc *Multicast[A]) Add(d *Async[A]) {
	mc.mu.Lock()
	mc.subs = append(mc.subs, d)
	mc.mu.Unlock()
}

// Remove deletes the first subscriber whose binding and executor match d,
// preserving the order of the rest. No-op when absent.
func (mc *Multicast[A]) Remove(d *Async[A]) {
	mc.mu.Lock()
	for i, s := range mc.subs {
		if s.binding.Equal(d.binding) && s.exec == d.exec {
			mc.subs = append(mc.subs[:i], mc.subs[i+1:]...)
			break
		}
	}
	mc.mu.Unlock()
}

// Clear removes all subscribers.
func (mc *Multicast[A]) Clear() {
	mc.mu.Lock()
	mc.subs = nil
	mc.mu.Unlock()
}

// Empty reports whether the registry has no subscribers.
func (mc *Multicast[A]) Empty() bool {
	return mc.Len() == 0
}

// Len returns the number of subscribers.
func (mc *Multicast[A]) Len() int {
	mc.mu.Lock()
	n := len(mc.subs)
	mc.mu.Unlock()
	return n
}

// Post broadcasts the argument snapshot to every subscriber in registration
// order. Subscribers added or removed concurrently with a Post may or may
// not observe that broadcast.
func (mc *Multicast[A]) Post(a A) {
	mc.mu.Lock()
	subs := make([]*Async[A], len(mc.subs))
	copy(subs, mc.subs)
	mc.mu.Unlock()
	for _, s := range subs {
		s.Post(a)
	}
}
