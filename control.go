// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sharp

import "sync/atomic"

// control is the control block shared by every handle owning one managed
// object: an atomic owner count plus the finalizer bound to the object at
// owning construction. No single handle owns the block — it is reclaimed
// through the release path by whichever goroutine observes the count reach
// zero.
type control struct {
	count    atomic.Int64
	finalize func()
}

// retain adds one owner. The caller holds a live reference to the block, so
// retain never races with the block's finalization.
func (c *control) retain() {
	c.count.Add(1)
}

// release drops one owner and returns the remaining count. Exactly one
// caller ever observes 0 for a given block; that caller must run invoke and
// then recycle the block. A negative remainder means ownership was released
// that was not held.
func (c *control) release() int64 {
	n := c.count.Add(-1)
	if n < 0 {
		panic("sharp: release of ownership that is not held")
	}
	return n
}

// invoke runs the bound finalizer, if any. Called at most once per block, by
// the releaser that observed the count reach zero.
func (c *control) invoke() {
	if c.finalize != nil {
		c.finalize()
	}
}

// useCount returns the current owner count. A snapshot: concurrent owners
// may change it immediately after the load.
func (c *control) useCount() int64 {
	return c.count.Load()
}

// bindFinalizer erases the element type: the caller's typed routine is
// closed over the concrete pointer, so the control block stores a plain
// nullary action and never learns T.
func bindFinalizer[T any](f func(*T), p *T) func() {
	if f == nil {
		return nil
	}
	return func() { f(p) }
}
