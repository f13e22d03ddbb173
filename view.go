// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sharp

// View is a read-only shared-ownership handle. It shares the managed
// object's control block with every Shared and View owner but exposes no
// mutable access to the pointee. Views are obtained from a Shared by ToView
// or MoveToView; there is no conversion back to a mutable handle.
//
// The zero value is a valid empty view.
type View[T any] struct {
	ptr *T
	ctl *control
}

// ToView creates a read-only owner of s's managed object, sharing the same
// control block (count +1). ToView on an empty handle yields an empty view.
func (s *Shared[T]) ToView() *View[T] {
	if s.ctl == nil {
		return &View[T]{}
	}
	s.ctl.retain()
	return &View[T]{ptr: s.ptr, ctl: s.ctl}
}

// MoveToView transfers s's ownership into a read-only handle, leaving s
// empty. No counter traffic.
func (s *Shared[T]) MoveToView() *View[T] {
	v := &View[T]{ptr: s.ptr, ctl: s.ctl}
	s.ptr, s.ctl = nil, nil
	return v
}

// Clone creates a new read-only owner of the same managed object.
func (v *View[T]) Clone() *View[T] {
	if v.ctl == nil {
		return &View[T]{}
	}
	v.ctl.retain()
	return &View[T]{ptr: v.ptr, ctl: v.ctl}
}

// Reset releases v's ownership and empties it, finalizing the managed
// object if v was the last owner. A no-op on an empty view.
func (v *View[T]) Reset() {
	if v.ctl == nil {
		return
	}
	if v.ctl.release() == 0 {
		v.ctl.invoke()
		releaseControl(v.ctl)
	}
	v.ptr, v.ctl = nil, nil
}

// Value returns a copy of the pointee. The view must be non-empty.
func (v *View[T]) Value() T {
	return *v.ptr
}

// UseCount returns the number of live owners — mutable and read-only alike —
// sharing v's managed object, or 0 for an empty view.
func (v *View[T]) UseCount() int64 {
	if v.ctl == nil {
		return 0
	}
	return v.ctl.useCount()
}

// IsNil reports whether the view is empty.
func (v *View[T]) IsNil() bool {
	return v.ptr == nil
}

// Equal reports whether v and other observe the same object. Empty views
// compare equal to one another.
func (v *View[T]) Equal(other *View[T]) bool {
	return v.ptr == other.ptr
}
