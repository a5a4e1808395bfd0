package darc

import "sync/atomic"

const (
	// multiBit tags the counter as being in Multi mode. The remaining bits
	// hold the number of references.
	multiBit uint64 = 1 << 63

	// maxRefs is a soft limit on the number of references to a block. It is
	// half of what the count bits can hold so that increments racing past it
	// abort long before they could carry into multiBit.
	maxRefs uint64 = 1<<62 - 1
)

// Mode reports how a block's reference count is updated.
type Mode uint8

const (
	// Single means the count is updated without atomic read-modify-writes.
	// Every handle to the block must be used from one goroutine.
	Single Mode = iota

	// Multi means the count is updated atomically. Required while any
	// Shared handle to the block exists.
	Multi
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Single:
		return "Single"
	case Multi:
		return "Multi"
	default:
		return "Mode(?)"
	}
}

// counter is a reference count that is either owned by a single goroutine or
// shared between many. Both representations live in the same word so that
// switching modes mutates the storage every handle already points at.
type counter struct {
	state uint64
}

// init sets the counter to Single mode with the given count.
func (c *counter) init(n uint64) {
	c.state = n
}

// load returns the current count without the mode tag.
func (c *counter) load() uint64 {
	return atomic.LoadUint64(&c.state) &^ multiBit
}

// mode returns the current mode.
func (c *counter) mode() Mode {
	if atomic.LoadUint64(&c.state)&multiBit != 0 {
		return Multi
	}
	return Single
}

// increment adds a reference and returns the new count. It aborts the
// process if the count goes above maxRefs.
func (c *counter) increment() (n uint64) {
	// the tag is always read atomically: in Multi mode other goroutines are
	// adding to the same word. in Single mode we are the only goroutine that
	// can see it, so a plain store is enough.
	s := atomic.LoadUint64(&c.state)
	if s&multiBit == 0 {
		n = s + 1
		if n > maxRefs {
			abort()
		}
		c.state = n
		return n
	}

	// a new reference can't publish anything that wasn't already visible to
	// whoever is making it, so only the decrement side needs ordering.
	n = atomic.AddUint64(&c.state, 1) &^ multiBit
	if n > maxRefs {
		abort()
	}
	return n
}

// decrement drops a reference and returns the new count. When it returns
// zero, every write made by every previous owner is visible to the caller:
// sync/atomic operations are sequentially consistent, which covers both the
// release on each decrement and the acquire before destruction.
func (c *counter) decrement() (n uint64) {
	s := atomic.LoadUint64(&c.state)
	if s&multiBit == 0 {
		if s == 0 {
			panic("darc: reference count underflow")
		}
		c.state = s - 1
		return s - 1
	}

	s = atomic.AddUint64(&c.state, ^uint64(0))
	if s&multiBit == 0 {
		// we borrowed from the tag bit, so the count was already zero.
		panic("darc: reference count underflow")
	}
	return s &^ multiBit
}

// promote switches the counter to Multi mode, keeping the count. The caller
// must hold the only path through which other goroutines could reach the
// block, so no one can be updating it concurrently.
func (c *counter) promote() {
	s := atomic.LoadUint64(&c.state)
	if s&multiBit != 0 {
		return
	}
	atomic.StoreUint64(&c.state, s|multiBit)
}

// demote attempts to switch the counter back to Single mode. It only succeeds
// if the count is exactly one. The check and the switch are a single
// compare-and-swap so that a concurrent increment can never be lost between
// them.
func (c *counter) demote() bool {
	s := atomic.LoadUint64(&c.state)
	if s&multiBit == 0 {
		return true
	}
	return atomic.CompareAndSwapUint64(&c.state, multiBit|1, 1)
}
