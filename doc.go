// package darc provides reference counted handles that only pay for atomic
// operations once they are shared between goroutines.
//
// Consider a buffer that is handed to a few parts of a program which each
// release it when done, so that it can be returned to a pool once the last of
// them is finished. A typical way to write this is an atomic counter:
//
//	type buffer struct {
//		refs int64
//		data []byte
//	}
//
//	func (b *buffer) Retain() { atomic.AddInt64(&b.refs, 1) }
//
//	func (b *buffer) Release() {
//		if atomic.AddInt64(&b.refs, -1) == 0 {
//			pool.Put(b.data)
//		}
//	}
//
// Every Retain and Release is an atomic read-modify-write, even when the
// buffer never leaves the goroutine that created it. Using the types in this
// package, the count is updated with plain loads and stores until the value
// is actually shared:
//
//	buf := darc.NewWithRelease(pool.Get(), pool.Put)
//	tmp := buf.Clone() // no atomic add
//	tmp.Release()
//
//	shared := buf.Share() // every handle to the buffer is now atomic
//	go func() {
//		defer shared.Release()
//		consume(shared.Value())
//	}()
//
// A Ref is the single goroutine handle. A Ref, and every Ref cloned from it,
// must only be used by the goroutine that created it for as long as the count
// is in Single mode. A Shared is the handle that may cross goroutines. Turning
// any Ref into a Shared switches the count of every handle to the value into
// Multi mode, where it is updated atomically. A Shared can be turned back into
// a Ref with Shared.Ref, which keeps the count atomic, and Ref.Unshare
// switches the count back to Single mode if that Ref is the only reference
// left.
//
// Handles are small values. Cloning one does not allocate, and copying one
// does not add a reference, so each reference must be released through
// exactly one copy.
//
// Building with the darcdebug tag makes Single mode Refs panic when they are
// used from a goroutine other than their owner, and reports handles that are
// garbage collected without being released.
package darc
