// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sharp

import "sync"

// Control blocks are recycled through a pool. A finalized block can never be
// observed again by a well-formed handle (the terminal zero is reached
// exactly once), so its memory is safe to reuse. The release path zeroes the
// finalizer before returning the block.

var controlPool = sync.Pool{New: func() any { return new(control) }}

// acquireControl returns a block owned by exactly one handle, with the given
// finalizer bound. finalize may be nil for lifetime tracking only.
func acquireControl(finalize func()) *control {
	c := controlPool.Get().(*control)
	c.finalize = finalize
	c.count.Store(1)
	return c
}

// releaseControl zeroes and recycles a finalized block.
func releaseControl(c *control) {
	c.finalize = nil
	controlPool.Put(c)
}
