// Package delegate provides single-target and multicast references to
// arbitrary callables with identity-based equality.
//
// A Delegate binds exactly one callable — a free function, a method on a
// live object, or a closure — behind a uniform (context, trampoline) pair.
// A MultiDelegate keeps an ordered, duplicate-preserving queue of such
// bindings and dispatches one call to all of them, optionally handing every
// return value to a caller-supplied collector.
//
// # Signature model
//
// A delegate's signature is one payload type P and one result type R,
// mirroring the handler shape func(P) R used throughout this module. Use
// struct{} for a position the callable does not need:
//
//	d := delegate.Func(func(n int) int { return n * n })
//	v, err := d.Call(7) // 49, nil
//
// # Identity, not value
//
// Two delegates are equal iff they were bound to the same callable on the
// same context object. Equality never inspects the referenced values: two
// distinct closures with identical behavior are unequal, and two bindings of
// the same method on the same object are equal regardless of the object's
// current state.
//
// # Lifetime
//
// A delegate references its target, it never copies it. The bound object
// (Method, ValueMethod) or closure variable (Closure) is held by pointer,
// so every call observes the target's state at call time, and the stored
// handle keeps the target reachable for the garbage collector. Mutating or
// reassigning the target between calls is visible to the delegate — bind a
// dedicated variable when that aliasing is unwanted.
//
// # Concurrency
//
// Delegates and multidelegates are plain synchronous values. Concurrent
// mutation or concurrent mutate-and-call of the same MultiDelegate is not
// supported; callers needing shared registration should synchronize
// externally (package events does exactly that).
package delegate
