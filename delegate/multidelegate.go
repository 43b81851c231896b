package delegate

import "github.com/stdexgo/stdex/buffer"

// MultiDelegate is an ordered queue of bound callables sharing one
// signature. The queue preserves insertion order, permits duplicates, and
// never contains an empty record. The zero value is an empty queue ready
// for use.
//
// A MultiDelegate owns copies of the invocation records, not the referenced
// callables or contexts; the lifetime obligations of each added Delegate
// carry over unchanged.
type MultiDelegate[P, R any] struct {
	queue buffer.Buffer[invocation[P, R]]
}

// Add appends d's record to the queue. Adding an empty delegate is a no-op.
// Returns the receiver so registrations chain.
func (m *MultiDelegate[P, R]) Add(d Delegate[P, R]) *MultiDelegate[P, R] {
	if !d.Empty() {
		m.queue.Append(d.inv)
	}
	return m
}

// AddAll appends every record of o in order, concatenating the queues.
// o may be the receiver itself: m.AddAll(m) doubles the queue.
func (m *MultiDelegate[P, R]) AddAll(o *MultiDelegate[P, R]) *MultiDelegate[P, R] {
	m.queue.Append(o.queue.Items()...)
	return m
}

// Remove deletes the first record equal to d's. Duplicates are removed one
// occurrence per call; removing a record that is not present is a no-op.
func (m *MultiDelegate[P, R]) Remove(d Delegate[P, R]) *MultiDelegate[P, R] {
	if d.Empty() {
		return m
	}
	if i := m.indexOf(d.inv); i >= 0 {
		m.queue.RemoveAt(i)
	}
	return m
}

// RemoveAll removes one occurrence per record contained in o, each looked
// up independently in order. Records of o not present in m are skipped.
func (m *MultiDelegate[P, R]) RemoveAll(o *MultiDelegate[P, R]) *MultiDelegate[P, R] {
	if m == o {
		m.Clear()
		return m
	}
	for _, inv := range o.queue.Items() {
		if i := m.indexOf(inv); i >= 0 {
			m.queue.RemoveAt(i)
		}
	}
	return m
}

// Invoke calls every record in queue order with the same payload,
// discarding results. Every member runs exactly once; there is no early
// exit.
func (m *MultiDelegate[P, R]) Invoke(payload P) {
	for _, inv := range m.queue.Items() {
		inv.call(inv.context, payload)
	}
}

// InvokeWith calls every record in queue order and hands each result to
// handler as (index, &result). The pointed-to result is scratch local to
// the dispatch loop: handlers may inspect it during the call but must copy
// the value out if they need it afterwards.
func (m *MultiDelegate[P, R]) InvokeWith(payload P, handler func(index int, result *R)) {
	for i, inv := range m.queue.Items() {
		result := inv.call(inv.context, payload)
		handler(i, &result)
	}
}

// Equal reports whether both queues hold equal records in the same order,
// duplicates included.
func (m *MultiDelegate[P, R]) Equal(o *MultiDelegate[P, R]) bool {
	return m.queue.EqualFunc(&o.queue, func(a, b invocation[P, R]) bool {
		return a.equal(b)
	})
}

// EqualDelegate reports whether the multicast is equivalent to the single
// delegate d: both empty, or the queue holds exactly one record equal to
// d's.
func (m *MultiDelegate[P, R]) EqualDelegate(d Delegate[P, R]) bool {
	if m.Empty() && d.Empty() {
		return true
	}
	if m.Len() != 1 || d.Empty() {
		return false
	}
	return m.queue.At(0).equal(d.inv)
}

// Len returns the number of registered records.
func (m *MultiDelegate[P, R]) Len() int { return m.queue.Len() }

// Empty reports whether no records are registered.
func (m *MultiDelegate[P, R]) Empty() bool { return m.queue.Empty() }

// Clear removes every record.
func (m *MultiDelegate[P, R]) Clear() { m.queue.Clear() }

// Clone returns a multicast with a copy of the queue. The records still
// reference the original contexts.
func (m *MultiDelegate[P, R]) Clone() *MultiDelegate[P, R] {
	return &MultiDelegate[P, R]{queue: *m.queue.Clone()}
}

func (m *MultiDelegate[P, R]) indexOf(inv invocation[P, R]) int {
	return m.queue.IndexFunc(func(candidate invocation[P, R]) bool {
		return candidate.equal(inv)
	})
}
