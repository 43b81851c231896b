package delegate

import "errors"

// ErrEmptyDelegate is returned by Call on a delegate with no bound callable.
// An empty delegate is a precondition violation, not a recoverable state;
// the error exists to fail fast instead of dispatching through nil.
var ErrEmptyDelegate = errors.New("delegate: call on empty delegate")

// Delegate is a single-target reference to a callable taking P and
// returning R. The zero value is empty. Delegates are immutable values:
// binding produces a new delegate, never mutates an existing one.
type Delegate[P, R any] struct {
	inv invocation[P, R]
}

// Func binds a free function. The function's code pointer is the whole
// identity: every binding of the same declared function compares equal.
//
// Func is meant for declared functions and stored func values. To bind a
// closure by reference so that later reassignment of the variable is seen
// by the delegate, use Closure.
func Func[P, R any](fn func(P) R) Delegate[P, R] {
	if fn == nil {
		return Delegate[P, R]{}
	}
	return Delegate[P, R]{inv: invocation[P, R]{
		context: nil,
		call: func(_ any, payload P) R {
			return fn(payload)
		},
		id: callableID{function: pointerOf(fn)},
	}}
}

// Method binds a pointer-receiver method on obj, given as a method
// expression:
//
//	c := &Counter{}
//	d := delegate.Method(c, (*Counter).Add)
//
// The delegate holds obj's address, not a copy: calls observe and mutate
// obj's live state. Bindings of the same method on the same object compare
// equal; the same method on different objects does not.
func Method[T, P, R any](obj *T, m func(*T, P) R) Delegate[P, R] {
	if obj == nil || m == nil {
		return Delegate[P, R]{}
	}
	return Delegate[P, R]{inv: invocation[P, R]{
		context: obj,
		call: func(context any, payload P) R {
			return m(context.(*T), payload)
		},
		id: callableID{context: pointerOf(obj), function: pointerOf(m)},
	}}
}

// ValueMethod binds a value-receiver method on obj, given as a method
// expression (T.M). The receiver copy taken at call time cannot mutate the
// bound object, making this the read-only counterpart of Method. The
// delegate still references obj by address, so calls observe obj's state at
// call time, not at bind time.
func ValueMethod[T, P, R any](obj *T, m func(T, P) R) Delegate[P, R] {
	if obj == nil || m == nil {
		return Delegate[P, R]{}
	}
	return Delegate[P, R]{inv: invocation[P, R]{
		context: obj,
		call: func(context any, payload P) R {
			return m(*context.(*T), payload)
		},
		id: callableID{context: pointerOf(obj), function: pointerOf(m)},
	}}
}

// Closure binds the closure stored in *fn by address. The variable is
// referenced, never copied: the delegate calls whatever *fn holds at call
// time, so reassigning the variable redirects every delegate bound to it.
//
// Identity is the variable's address plus the code pointer of the closure
// held at bind time, so two delegates bound to the same variable compare
// equal, while delegates bound to distinct variables holding behaviorally
// identical closures do not.
func Closure[P, R any](fn *func(P) R) Delegate[P, R] {
	if fn == nil || *fn == nil {
		return Delegate[P, R]{}
	}
	return Delegate[P, R]{inv: invocation[P, R]{
		context: fn,
		call: func(context any, payload P) R {
			return (*context.(*func(P) R))(payload)
		},
		id: callableID{context: pointerOf(fn), function: pointerOf(*fn)},
	}}
}

// Call invokes the bound callable with payload. Calling an empty delegate
// returns ErrEmptyDelegate; any panic raised by the callable itself
// propagates unchanged.
func (d Delegate[P, R]) Call(payload P) (R, error) {
	if d.inv.empty() {
		var zero R
		return zero, ErrEmptyDelegate
	}
	return d.inv.call(d.inv.context, payload), nil
}

// Empty reports whether no callable is bound.
func (d Delegate[P, R]) Empty() bool { return d.inv.empty() }

// Equal reports identity-based equality: same context object and same bound
// function. Two empty delegates are equal; a bound delegate never equals an
// empty one.
func (d Delegate[P, R]) Equal(other Delegate[P, R]) bool {
	return d.inv.equal(other.inv)
}

// EqualMulti reports whether d equals the multicast m under the symmetric
// rule owned by MultiDelegate: m must hold exactly d's record, or both must
// be empty.
func (d Delegate[P, R]) EqualMulti(m *MultiDelegate[P, R]) bool {
	return m.EqualDelegate(d)
}
