// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

import (
	"reflect"
)

// Unit is the empty argument pack and the void result type.
// Act and MethodAct bindings return Unit; Call0 passes Unit.
type Unit = struct{}

// Binding stores what to call: a free function or a pointer-receiver method,
// adapted to a single func(A) R over the argument pack A. The value is
// immutable once bound; copying a Binding copies the callable identity,
// which is the clone operation for the callable side of an async call.
type Binding[A, R any] struct {
	fn   func(A) R
	code uintptr // identity of the bound function
	recv any     // receiver identity, nil for free functions
}

// Invoke calls the bound function synchronously with the argument pack.
// Invoking a zero Binding panics.
func (b Binding[A, R]) Invoke(a A) R {
	if b.fn == nil {
		panic("deleg: invoke of unbound Binding")
	}
	return b.fn(a)
}

// Bound reports whether the Binding holds a callable.
func (b Binding[A, R]) Bound() bool {
	return b.fn != nil
}

// Equal reports whether both bindings target the same function and the same
// receiver. Free-function bindings have a nil receiver; method bindings
// compare the receiver pointer.
func (b Binding[A, R]) Equal(o Binding[A, R]) bool {
	return b.code == o.code && b.recv == o.recv
}

// funcID returns a comparable identity for fn.
// Go funcs are not comparable; the code pointer is the identity source.
func funcID(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// bind adapts an already-packed function into a Binding with identity id
// and receiver recv.
func bind[A, R any](fn func(A) R, id any, recv any) Binding[A, R] {
	return Binding[A, R]{fn: fn, code: funcID(id), recv: recv}
}

// Func0 binds a zero-argument free function returning a value.
func Func0[R any](fn func() R) Binding[Unit, R] {
	return bind(func(Unit) R { return fn() }, fn, nil)
}

// Func1 binds a one-argument free function returning a value.
func Func1[P1, R any](fn func(P1) R) Binding[P1, R] {
	return bind(fn, fn, nil)
}

// Func2 binds a two-argument free function returning a value.
func Func2[P1, P2, R any](fn func(P1, P2) R) Binding[Args2[P1, P2], R] {
	return bind(func(a Args2[P1, P2]) R { return fn(a.A, a.B) }, fn, nil)
}

// Func3 binds a three-argument free function returning a value.
func Func3[P1, P2, P3, R any](fn func(P1, P2, P3) R) Binding[Args3[P1, P2, P3], R] {
	return bind(func(a Args3[P1, P2, P3]) R { return fn(a.A, a.B, a.C) }, fn, nil)
}

// Func4 binds a four-argument free function returning a value.
func Func4[P1, P2, P3, P4, R any](fn func(P1, P2, P3, P4) R) Binding[Args4[P1, P2, P3, P4], R] {
	return bind(func(a Args4[P1, P2, P3, P4]) R { return fn(a.A, a.B, a.C, a.D) }, fn, nil)
}

// Func5 binds a five-argument free function returning a value.
func Func5[P1, P2, P3, P4, P5, R any](fn func(P1, P2, P3, P4, P5) R) Binding[Args5[P1, P2, P3, P4, P5], R] {
	return bind(func(a Args5[P1, P2, P3, P4, P5]) R { return fn(a.A, a.B, a.C, a.D, a.E) }, fn, nil)
}

// Act0 binds a zero-argument free function returning nothing.
func Act0(fn func()) Binding[Unit, Unit] {
	return bind(func(Unit) Unit { fn(); return Unit{} }, fn, nil)
}

// Act1 binds a one-argument free function returning nothing.
func Act1[P1 any](fn func(P1)) Binding[P1, Unit] {
	return bind(func(p1 P1) Unit { fn(p1); return Unit{} }, fn, nil)
}

// Act2 binds a two-argument free function returning nothing.
func Act2[P1, P2 any](fn func(P1, P2)) Binding[Args2[P1, P2], Unit] {
	return bind(func(a Args2[P1, P2]) Unit { fn(a.A, a.B); return Unit{} }, fn, nil)
}

// Act3 binds a three-argument free function returning nothing.
func Act3[P1, P2, P3 any](fn func(P1, P2, P3)) Binding[Args3[P1, P2, P3], Unit] {
	return bind(func(a Args3[P1, P2, P3]) Unit { fn(a.A, a.B, a.C); return Unit{} }, fn, nil)
}

// Act4 binds a four-argument free function returning nothing.
func Act4[P1, P2, P3, P4 any](fn func(P1, P2, P3, P4)) Binding[Args4[P1, P2, P3, P4], Unit] {
	return bind(func(a Args4[P1, P2, P3, P4]) Unit { fn(a.A, a.B, a.C, a.D); return Unit{} }, fn, nil)
}

// Act5 binds a five-argument free function returning nothing.
func Act5[P1, P2, P3, P4, P5 any](fn func(P1, P2, P3, P4, P5)) Binding[Args5[P1, P2, P3, P4, P5], Unit] {
	return bind(func(a Args5[P1, P2, P3, P4, P5]) Unit { fn(a.A, a.B, a.C, a.D, a.E); return Unit{} }, fn, nil)
}

// Method0 binds a zero-argument method on recv returning a value.
func Method0[T any, R any](recv *T, m func(*T) R) Binding[Unit, R] {
	return bind(func(Unit) R { return m(recv) }, m, recv)
}

// Method1 binds a one-argument method on recv returning a value.
func Method1[T any, P1, R any](recv *T, m func(*T, P1) R) Binding[P1, R] {
	return bind(func(p1 P1) R { return m(recv, p1) }, m, recv)
}

// Method2 binds a two-argument method on recv returning a value.
func Method2[T any, P1, P2, R any](recv *T, m func(*T, P1, P2) R) Binding[Args2[P1, P2], R] {
	return bind(func(a Args2[P1, P2]) R { return m(recv, a.A, a.B) }, m, recv)
}

// Method3 binds a three-argument method on recv returning a value.
func Method3[T any, P1, P2, P3, R any](recv *T, m func(*T, P1, P2, P3) R) Binding[Args3[P1, P2, P3], R] {
	return bind(func(a Args3[P1, P2, P3]) R { return m(recv, a.A, a.B, a.C) }, m, recv)
}

// Method4 binds a four-argument method on recv returning a value.
func Method4[T any, P1, P2, P3, P4, R any](recv *T, m func(*T, P1, P2, P3, P4) R) Binding[Args4[P1, P2, P3, P4], R] {
	return bind(func(a Args4[P1, P2, P3, P4]) R { return m(recv, a.A, a.B, a.C, a.D) }, m, recv)
}

// Method5 binds a five-argument method on recv returning a value.
func Method5[T any, P1, P2, P3, P4, P5, R any](recv *T, m func(*T, P1, P2, P3, P4, P5) R) Binding[Args5[P1, P2, P3, P4, P5], R] {
	return bind(func(a Args5[P1, P2, P3, P4, P5]) R { return m(recv, a.A, a.B, a.C, a.D, a.E) }, m, recv)
}

// MethodAct0 binds a zero-argument method on recv returning nothing.
func MethodAct0[T any](recv *T, m func(*T)) Binding[Unit, Unit] {
	return bind(func(Unit) Unit { m(recv); return Unit{} }, m, recv)
}

// MethodAct1 binds a one-argument method on recv returning nothing.
func MethodAct1[T any, P1 any](recv *T, m func(*T, P1)) Binding[P1, Unit] {
	return bind(func(p1 P1) Unit { m(recv, p1); return Unit{} }, m, recv)
}

// MethodAct2 binds a two-argument method on recv returning nothing.
func MethodAct2[T any, P1, P2 any](recv *T, m func(*T, P1, P2)) Binding[Args2[P1, P2], Unit] {
	return bind(func(a Args2[P1, P2]) Unit { m(recv, a.A, a.B); return Unit{} }, m, recv)
}

// MethodAct3 binds a three-argument method on recv returning nothing.
func MethodAct3[T any, P1, P2, P3 any](recv *T, m func(*T, P1, P2, P3)) Binding[Args3[P1, P2, P3], Unit] {
	return bind(func(a Args3[P1, P2, P3]) Unit { m(recv, a.A, a.B, a.C); return Unit{} }, m, recv)
}

// MethodAct4 binds a four-argument method on recv returning nothing.
func MethodAct4[T any, P1, P2, P3, P4 any](recv *T, m func(*T, P1, P2, P3, P4)) Binding[Args4[P1, P2, P3, P4], Unit] {
	return bind(func(a Args4[P1, P2, P3, P4]) Unit { m(recv, a.A, a.B, a.C, a.D); return Unit{} }, m, recv)
}

// MethodAct5 binds a five-argument method on recv returning nothing.
func MethodAct5[T any, P1, P2, P3, P4, P5 any](recv *T, m func(*T, P1, P2, P3, P4, P5)) Binding[Args5[P1, P2, P3, P4, P5], Unit] {
	return bind(func(a Args5[P1, P2, P3, P4, P5]) Unit { m(recv, a.A, a.B, a.C, a.D, a.E); return Unit{} }, m, recv)
}
