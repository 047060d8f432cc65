// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg_test

import (
	"testing"
	"time"

	"code.hybscloud.com/deleg"
)

// BenchmarkSyncCall measures the no-executor pass-through.
func BenchmarkSyncCall(b *testing.B) {
	d := deleg.Sync(deleg.Func2(add))
	b.ReportAllocs()
	for b.Loop() {
		deleg.Call2(d, 2, 3)
	}
}

// BenchmarkImmediateCall measures the full clone/dispatch/wait/teardown
// protocol with a zero-latency executor.
func BenchmarkImmediateCall(b *testing.B) {
	d := deleg.New(deleg.Func2(add), immediateExec{}, deleg.Forever)
	b.ReportAllocs()
	for b.Loop() {
		deleg.Call2(d, 2, 3)
	}
}

// BenchmarkWorkerCall measures a cross-goroutine round trip through the
// bundled Worker.
func BenchmarkWorkerCall(b *testing.B) {
	skipRace(b)
	w := deleg.NewWorker()
	defer w.Close()
	d := deleg.New(deleg.Func2(add), w, time.Second)
	b.ReportAllocs()
	for b.Loop() {
		deleg.Call2(d, 2, 3)
	}
}

// BenchmarkWorkerPost measures fire-and-forget posting throughput.
func BenchmarkWorkerPost(b *testing.B) {
	skipRace(b)
	w := deleg.NewWorker()
	defer w.Close()
	a := deleg.NewAsync(deleg.Act1(func(int) {}), w)
	b.ReportAllocs()
	for b.Loop() {
		a.Post(1)
	}
}

// BenchmarkMulticastPost measures broadcasting to eight immediate subscribers.
func BenchmarkMulticastPost(b *testing.B) {
	var mc deleg.Multicast[int]
	for range 8 {
		mc.Add(deleg.NewAsync(deleg.Act1(func(int) {}), immediateExec{}))
	}
	b.ReportAllocs()
	for b.Loop() {
		mc.Post(1)
	}
}
