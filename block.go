package darc

// block is the single allocation shared by every handle to a value. All
// handles point at the same block and so share one counter.
type block[T any] struct {
	refs    counter
	owner   owner
	value   T
	release func(T)
}

// newBlock allocates a block in Single mode with one reference, owned by the
// calling goroutine.
func newBlock[T any](value T, release func(T)) *block[T] {
	b := &block[T]{value: value, release: release}
	b.refs.init(1)
	b.owner.claim()
	return b
}

// free destroys the value. It is called exactly once, by whichever handle
// dropped the count to zero. It is important to not perform any operations
// on the block after it has been freed.
func (b *block[T]) free() {
	release := b.release
	value := b.value

	var zero T
	b.value, b.release = zero, nil

	if release != nil {
		release(value)
	}
}
