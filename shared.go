// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sharp

// Shared is a shared-ownership handle: it pairs a raw pointer to the managed
// object with a reference to the control block all owners of that object
// share. The zero value is a valid empty handle.
//
// Invariant: the pointer and the control block reference are nil together.
// A single Shared instance is not internally synchronized; distinct
// instances sharing one managed object are safe to use from different
// goroutines.
type Shared[T any] struct {
	ptr *T
	ctl *control
}

// New takes ownership of p for lifetime tracking only: no finalizer is
// bound, the garbage collector reclaims the memory. New(nil) yields an empty
// handle. Registering the same pointer with two independent owning
// constructions is a caller contract violation.
func New[T any](p *T) *Shared[T] {
	if p == nil {
		return &Shared[T]{}
	}
	return &Shared[T]{ptr: p, ctl: acquireControl(nil)}
}

// NewWith takes ownership of p and binds finalize to it. The finalizer runs
// exactly once, with p, when the last owner releases — regardless of which
// handle that last owner is or which goroutine releases it.
func NewWith[T any](p *T, finalize func(*T)) *Shared[T] {
	if p == nil {
		return &Shared[T]{}
	}
	return &Shared[T]{ptr: p, ctl: acquireControl(bindFinalizer(finalize, p))}
}

// Clone creates a new owner of the same managed object, sharing the control
// block. Cloning an empty handle yields an empty handle and touches no
// counter.
func (s *Shared[T]) Clone() *Shared[T] {
	if s.ctl == nil {
		return &Shared[T]{}
	}
	s.ctl.retain()
	return &Shared[T]{ptr: s.ptr, ctl: s.ctl}
}

// TryClone is Clone reporting emptiness: it returns (clone, true) for a
// non-empty handle, or (empty, false) when s owns nothing.
func (s *Shared[T]) TryClone() (*Shared[T], bool) {
	if s.ctl == nil {
		return &Shared[T]{}, false
	}
	return s.Clone(), true
}

// Move transfers ownership out of s into a fresh handle, leaving s empty.
// No counter traffic: the owner count is unchanged.
func (s *Shared[T]) Move() *Shared[T] {
	m := &Shared[T]{ptr: s.ptr, ctl: s.ctl}
	s.ptr, s.ctl = nil, nil
	return m
}

// Reset releases s's ownership and empties it. The releaser that observes
// the owner count reach zero runs the finalizer and recycles the control
// block. Resetting an empty handle is a no-op.
func (s *Shared[T]) Reset() {
	if s.ctl == nil {
		return
	}
	if s.ctl.release() == 0 {
		s.ctl.invoke()
		releaseControl(s.ctl)
	}
	s.ptr, s.ctl = nil, nil
}

// Get returns the managed pointer, or nil for an empty handle.
func (s *Shared[T]) Get() *T {
	return s.ptr
}

// Value dereferences the managed pointer. The handle must be non-empty.
func (s *Shared[T]) Value() T {
	return *s.ptr
}

// UseCount returns the number of live owners sharing s's managed object, or
// 0 for an empty handle. Under concurrency this is a snapshot: other owners
// may clone or release immediately after the read.
func (s *Shared[T]) UseCount() int64 {
	if s.ctl == nil {
		return 0
	}
	return s.ctl.useCount()
}

// IsNil reports whether the handle is empty.
func (s *Shared[T]) IsNil() bool {
	return s.ptr == nil
}

// Equal reports whether s and other manage the same object. Empty handles
// compare equal to one another.
func (s *Shared[T]) Equal(other *Shared[T]) bool {
	return s.ptr == other.ptr
}
