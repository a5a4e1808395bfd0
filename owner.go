//go:build !darcdebug

package darc

// owner tracks the goroutine allowed to use a block while it is in Single
// mode. Without the darcdebug build tag it does nothing.
type owner struct{}

func (*owner) claim()              {}
func (*owner) check(refs *counter) {}

// tracker reports handles that are collected without being released. Without
// the darcdebug build tag it is zero sized and does nothing.
type tracker struct{}

func newTracker[H any]() tracker { return tracker{} }
func (tracker) done()            {}
