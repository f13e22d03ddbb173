// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sharp

// Set replaces the managed object with p, without a finalizer. Set(nil) is
// equivalent to Reset. Setting the pointer the handle already manages is a
// no-op.
func (s *Shared[T]) Set(p *T) {
	s.SetWith(p, nil)
}

// SetWith replaces the managed object with p, binding finalize to it. The
// new control block is acquired before the old ownership is released, so the
// handle is never observable in a torn state and keeps its previous object
// if construction cannot complete.
func (s *Shared[T]) SetWith(p *T, finalize func(*T)) {
	if s.ptr == p {
		return
	}
	var ctl *control
	if p != nil {
		ctl = acquireControl(bindFinalizer(finalize, p))
	}
	s.Reset()
	s.ptr, s.ctl = p, ctl
}

// Assign makes s share other's ownership, releasing what s held. Handles
// already managing the same object — s itself included — are left untouched,
// so self-assignment never reaches the finalizer.
func (s *Shared[T]) Assign(other *Shared[T]) {
	if s.Equal(other) {
		return
	}
	c := other.Clone()
	s.Reset()
	s.ptr, s.ctl = c.ptr, c.ctl
}

// Swap exchanges the managed objects of a and b. Field exchange only: no
// counter traffic, and neither object can be finalized mid-swap.
func Swap[T any](a, b *Shared[T]) {
	a.ptr, b.ptr = b.ptr, a.ptr
	a.ctl, b.ctl = b.ctl, a.ctl
}
