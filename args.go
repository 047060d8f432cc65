// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

// Argument packs snapshot call arguments by value at call time: the caller's
// stack frame may unwind before the executor's goroutine runs the envelope.
// Arity 0 uses [Unit]; arity 1 uses the bare parameter type.

// Args2 is the by-value snapshot of a two-argument call.
type Args2[P1, P2 any] struct {
	A P1
	B P2
}

// Args3 is the by-value snapshot of a three-argument call.
type Args3[P1, P2, P3 any] struct {
	A P1
	B P2
	C P3
}

// Args4 is the by-value snapshot of a four-argument call.
type Args4[P1, P2, P3, P4 any] struct {
	A P1
	B P2
	C P3
	D P4
}

// Args5 is the by-value snapshot of a five-argument call.
type Args5[P1, P2, P3, P4, P5 any] struct {
	A P1
	B P2
	C P3
	D P4
	E P5
}

// Pack2 builds an [Args2] with inferred type parameters.
func Pack2[P1, P2 any](p1 P1, p2 P2) Args2[P1, P2] {
	return Args2[P1, P2]{A: p1, B: p2}
}

// Pack3 builds an [Args3] with inferred type parameters.
func Pack3[P1, P2, P3 any](p1 P1, p2 P2, p3 P3) Args3[P1, P2, P3] {
	return Args3[P1, P2, P3]{A: p1, B: p2, C: p3}
}

// Pack4 builds an [Args4] with inferred type parameters.
func Pack4[P1, P2, P3, P4 any](p1 P1, p2 P2, p3 P3, p4 P4) Args4[P1, P2, P3, P4] {
	return Args4[P1, P2, P3, P4]{A: p1, B: p2, C: p3, D: p4}
}

// Pack5 builds an [Args5] with inferred type parameters.
func Pack5[P1, P2, P3, P4, P5 any](p1 P1, p2 P2, p3 P3, p4 P4, p5 P5) Args5[P1, P2, P3, P4, P5] {
	return Args5[P1, P2, P3, P4, P5]{A: p1, B: p2, C: p3, D: p4, E: p5}
}

// Call0 invokes a zero-argument delegate.
// Fuses Unit{} + [Delegate.Call].
func Call0[R any](d *Delegate[Unit, R]) R {
	return d.Call(Unit{})
}

// Call1 invokes a one-argument delegate.
func Call1[P1, R any](d *Delegate[P1, R], p1 P1) R {
	return d.Call(p1)
}

// Call2 invokes a two-argument delegate.
// Fuses [Pack2] + [Delegate.Call].
func Call2[P1, P2, R any](d *Delegate[Args2[P1, P2], R], p1 P1, p2 P2) R {
	return d.Call(Pack2(p1, p2))
}

// Call3 invokes a three-argument delegate.
// Fuses [Pack3] + [Delegate.Call].
func Call3[P1, P2, P3, R any](d *Delegate[Args3[P1, P2, P3], R], p1 P1, p2 P2, p3 P3) R {
	return d.Call(Pack3(p1, p2, p3))
}

// Call4 invokes a four-argument delegate.
// Fuses [Pack4] + [Delegate.Call].
func Call4[P1, P2, P3, P4, R any](d *Delegate[Args4[P1, P2, P3, P4], R], p1 P1, p2 P2, p3 P3, p4 P4) R {
	return d.Call(Pack4(p1, p2, p3, p4))
}

// Call5 invokes a five-argument delegate.
// Fuses [Pack5] + [Delegate.Call].
func Call5[P1, P2, P3, P4, P5, R any](d *Delegate[Args5[P1, P2, P3, P4, P5], R], p1 P1, p2 P2, p3 P3, p4 P4, p5 P5) R {
	return d.Call(Pack5(p1, p2, p3, p4, p5))
}
