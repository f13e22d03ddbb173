// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sharp provides a reference-counted shared-ownership handle in Go.
//
// The core type [Shared] lets multiple independent owners hold the same
// heap object and runs a finalizer bound at construction exactly once, when
// the last owner releases. It is a building block for structures that need
// deterministic, shared lifetime for resources the garbage collector cannot
// reclaim on its own (file handles, pooled buffers, native resources,
// external counters).
//
// # Ownership Model
//
// An owning handle is created from a raw pointer:
//
//   - [New]: take ownership for lifetime tracking only
//   - [NewWith]: take ownership and bind a finalizer to the pointer
//
// Every owning construction allocates one control block with count 1. The
// finalizer is type-erased at that point: the control block stores a plain
// nullary action closed over the concrete pointer, so handles carry the
// bound action through copies and moves instead of re-deriving it from the
// element type at release time.
//
// Ownership then flows through explicit operations:
//
//   - [Shared.Clone]: a new owner of the same object (count +1)
//   - [Shared.TryClone]: clone that reports emptiness instead of propagating it
//   - [Shared.Move]: transfer ownership to a fresh handle, no count traffic
//   - [Shared.Reset]: release ownership and empty the handle
//   - [Shared.Set], [Shared.SetWith]: re-point the handle at a new object
//   - [Shared.Assign]: share another handle's ownership
//   - [Swap]: exchange two handles' objects, no count traffic
//
// The zero value of [Shared] is a valid empty handle. Cloning, resetting, or
// moving an empty handle is a no-op that yields an empty result. A Shared
// must not be duplicated by plain struct assignment — only Clone creates an
// accounted owner.
//
// Observers:
//
//   - [Shared.Get]: the managed pointer, nil when empty
//   - [Shared.Value]: dereference (the handle must be non-empty)
//   - [Shared.UseCount]: current owner count, 0 when empty
//   - [Shared.IsNil], [Shared.Equal]
//
// # Read-Only Views
//
// [View] is the read-only flavor of a handle: it shares the same control
// block but exposes no mutable access to the pointee. A mutable handle
// converts to a view, never the other way:
//
//   - [Shared.ToView]: share ownership into a view (count +1)
//   - [Shared.MoveToView]: transfer ownership into a view, emptying the source
//
// # Concurrency
//
// The owner count is the only shared mutable state; it is a single atomic
// counter. Release is the synchronization point: the one goroutine whose
// decrement observes the count reach zero runs the finalizer and recycles
// the control block, which makes finalization exactly-once even under
// contended release. Go's sync/atomic operations are sequentially
// consistent, so the finalizer is ordered after every other owner's last
// access.
//
// A single handle instance is not internally synchronized: it must not be
// cloned, moved, or reset from two goroutines at once. Distinct handle
// instances that share one managed object are safe to use concurrently.
//
// # Contracts
//
// Registering one raw pointer with two independent owning constructions,
// dereferencing an empty handle, and mutating a single handle instance from
// two goroutines at once are caller contract violations; the handle does not
// defend against them. Releasing ownership that is not held corrupts no
// state: the control block panics rather than letting the count go negative.
package sharp
