package delegate

import "reflect"

// callableID is the comparable identity of a bound callable: the address of
// its context object (0 for free functions) and the code pointer of the
// function or method expression it was bound to. Go func values are not
// comparable, so both pointers are captured once at bind time via reflect.
type callableID struct {
	context  uintptr
	function uintptr
}

// invocation is the flattened (context, trampoline) pair behind a delegate.
// The context handle is untyped and non-owning; the trampoline restores the
// concrete type and performs the real dispatch. An invocation never mutates
// after construction and is copied freely.
type invocation[P, R any] struct {
	context any
	call    func(context any, payload P) R
	id      callableID
}

func (inv invocation[P, R]) empty() bool { return inv.call == nil }

// equal compares identity only: same context address, same bound function.
// Two empty invocations are equal.
func (inv invocation[P, R]) equal(other invocation[P, R]) bool {
	return inv.id == other.id
}

// pointerOf extracts the identity pointer of a func value (its code
// pointer) or of an object pointer (its address).
func pointerOf(v any) uintptr {
	return reflect.ValueOf(v).Pointer()
}
