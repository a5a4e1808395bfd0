package darc

// Ref is a reference counted handle to a value. Refs to a new value count
// references without atomic read-modify-writes, so they, and every Ref cloned
// from them, must only be used by one goroutine. Once any Ref to the value is
// turned into a Shared, every Ref to it switches to atomic counting.
//
// A Ref is a small value and cloning it does not allocate. Copying a Ref
// does not add a reference: use Clone for that. Release must be called
// exactly once per reference, and a Ref must not be used after it is
// released.
type Ref[T any] struct {
	t tracker // zero sized unless built with darcdebug
	b *block[T]
}

// New returns a Ref to value in Single mode.
func New[T any](value T) Ref[T] {
	return newRef(newBlock(value, nil))
}

// NewWithRelease is like New, but release is called with the value once the
// last handle to it is released.
func NewWithRelease[T any](value T, release func(T)) Ref[T] {
	return newRef(newBlock(value, release))
}

func newRef[T any](b *block[T]) Ref[T] {
	return Ref[T]{t: newTracker[Ref[T]](), b: b}
}

// block returns the block for the Ref, panicking if it has been released.
func (r Ref[T]) block() *block[T] {
	if r.b == nil {
		panic("darc: use of released Ref")
	}
	r.b.owner.check(&r.b.refs)
	return r.b
}

// take clears the Ref and returns its block, handing ownership of the
// reference to the caller.
func (r *Ref[T]) take() *block[T] {
	b := r.block()
	r.t.done()
	r.b = nil
	return b
}

// Clone returns a new Ref to the same value.
func (r Ref[T]) Clone() Ref[T] {
	b := r.block()
	b.refs.increment()
	return newRef(b)
}

// Release drops the Ref. It reports true if this was the last reference and
// the value has been released.
func (r *Ref[T]) Release() bool {
	b := r.take()
	if b.refs.decrement() != 0 {
		return false
	}
	b.free()
	return true
}

// Value returns the value the Ref points at.
func (r Ref[T]) Value() T { return r.block().value }

// Ptr returns a pointer to the value the Ref points at. The value is shared
// by every handle, so it must not be modified through the pointer. The
// pointer is only valid until the Ref is released.
func (r Ref[T]) Ptr() *T { return &r.block().value }

// Count returns the number of references to the value.
func (r Ref[T]) Count() uint64 { return r.block().refs.load() }

// Mode reports whether references to the value are counted atomically.
func (r Ref[T]) Mode() Mode { return r.block().refs.mode() }

// Share consumes the Ref and returns a Shared to the same value, switching
// every handle to the value to atomic counting. The Ref must not be used
// after the call.
func (r *Ref[T]) Share() Shared[T] {
	b := r.take()
	b.refs.promote()
	return newShared(b)
}

// Unshare attempts to switch references to the value back to Single mode.
// It reports true if the value is now in Single mode, which is only possible
// if r is the only reference left. On success the calling goroutine becomes
// the only one allowed to use r and its clones.
func (r *Ref[T]) Unshare() bool {
	b := r.block()
	if !b.refs.demote() {
		return false
	}
	b.owner.claim()
	return true
}
