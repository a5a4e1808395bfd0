package darc

// Shared is a reference counted handle to a value that may be sent to other
// goroutines. References to a value are always counted atomically while any
// Shared to it exists.
//
// Like Ref, a Shared is a small value, cloning it does not allocate, and
// copying it does not add a reference. Value, Ptr, Clone and Count are safe to
// call concurrently on the same Shared. Release and Ref consume the Shared
// and must not race with any other use of it.
type Shared[T any] struct {
	ref Ref[T]
}

// NewShared returns a Shared to value.
func NewShared[T any](value T) Shared[T] {
	r := New(value)
	return r.Share()
}

// NewSharedWithRelease is like NewShared, but release is called with the
// value once the last handle to it is released. It may be called on any
// goroutine.
func NewSharedWithRelease[T any](value T, release func(T)) Shared[T] {
	r := NewWithRelease(value, release)
	return r.Share()
}

func newShared[T any](b *block[T]) Shared[T] {
	return Shared[T]{ref: Ref[T]{t: newTracker[Shared[T]](), b: b}}
}

func (s Shared[T]) block() *block[T] { return s.ref.block() }

// Clone returns a new Shared to the same value.
func (s Shared[T]) Clone() Shared[T] {
	b := s.block()
	b.refs.increment()
	return newShared(b)
}

// Release drops the Shared. It reports true if this was the last reference
// and the value has been released.
func (s *Shared[T]) Release() bool { return s.ref.Release() }

// Value returns the value the Shared points at.
func (s Shared[T]) Value() T { return s.ref.Value() }

// Ptr returns a pointer to the value the Shared points at. The value is
// shared by every handle, so it must not be modified through the pointer.
func (s Shared[T]) Ptr() *T { return s.ref.Ptr() }

// Count returns the number of references to the value.
func (s Shared[T]) Count() uint64 { return s.ref.Count() }

// Ref consumes the Shared and returns a Ref to the same value without
// changing the count. References stay atomic, so the Ref may be used on any
// goroutine until a call to Unshare succeeds.
func (s *Shared[T]) Ref() Ref[T] {
	return newRef(s.ref.take())
}
